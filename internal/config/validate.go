package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	validLevels  = []string{"debug", "info", "warn", "error"}
	validFormats = []string{"console", "json"}
)

// Validate checks the loaded values and normalizes case.
func (c *Config) Validate() error {
	var errs []error

	if c.Batch.Workers < 1 {
		errs = append(errs, fmt.Errorf("batch.workers must be at least 1, got %d", c.Batch.Workers))
	}

	c.Log.Level = strings.ToLower(c.Log.Level)
	if !slices.Contains(validLevels, c.Log.Level) {
		errs = append(errs, fmt.Errorf("log.level must be one of %v, got %q", validLevels, c.Log.Level))
	}

	c.Log.Format = strings.ToLower(c.Log.Format)
	if !slices.Contains(validFormats, c.Log.Format) {
		errs = append(errs, fmt.Errorf("log.format must be one of %v, got %q", validFormats, c.Log.Format))
	}

	return errors.Join(errs...)
}
