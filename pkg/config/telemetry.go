package config

import (
	"fmt"
	"strings"
)

type TelemetryConfig struct {
	Tracing TracingConfig `koanf:"tracing"`
}

type TracingConfig struct {
	Enabled     bool   `koanf:"enabled"`
	ServiceName string `koanf:"servicename"`
}

// String returns a string representation of the TelemetryConfig.
func (c *TelemetryConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Telemetry ---\n")
	b.WriteString(fmt.Sprintf("  tracing.enabled: %v\n", c.Tracing.Enabled))
	b.WriteString(fmt.Sprintf("  tracing.servicename: %s\n", c.Tracing.ServiceName))
	return b.String()
}

func (c *TelemetryConfig) Validate() error {
	if c.Tracing.Enabled && c.Tracing.ServiceName == "" {
		return fmt.Errorf("telemetry service name is not configured")
	}
	return nil
}
