package config

import (
	"fmt"
	"strings"
)

// OrdersConfig selects the order lifecycle policy.
type OrdersConfig struct {
	RestockOnCancel          bool `koanf:"restockoncancel"`
	HistoryIncludesCancelled bool `koanf:"historyincludescancelled"`
}

// String returns a string representation of the OrdersConfig.
func (c *OrdersConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Orders ---\n")
	b.WriteString(fmt.Sprintf("  restockoncancel: %t\n", c.RestockOnCancel))
	b.WriteString(fmt.Sprintf("  historyincludescancelled: %t\n", c.HistoryIncludesCancelled))
	return b.String()
}

func (c *OrdersConfig) Validate() error {
	return nil
}
