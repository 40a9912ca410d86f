package config

import (
	"fmt"
	"strings"
)

// CatalogConfig locates the product file imported at startup.
type CatalogConfig struct {
	File string `koanf:"file"`
}

// String returns a string representation of the CatalogConfig.
func (c *CatalogConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Catalog ---\n")
	b.WriteString(fmt.Sprintf("  file: %s\n", c.File))
	return b.String()
}

func (c *CatalogConfig) Validate() error {
	if strings.TrimSpace(c.File) == "" {
		return fmt.Errorf("catalog file is not configured")
	}
	return nil
}
