package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	var errors ValidationErrors

	switch c.Output.Format {
	case "", "xlsx", "csv":
	default:
		errors = append(errors, ValidationError{
			Field:   "output.format",
			Message: fmt.Sprintf("must be xlsx or csv, got %q", c.Output.Format),
		})
	}

	if c.Output.Dir == "" {
		errors = append(errors, ValidationError{
			Field:   "output.dir",
			Message: "must not be empty",
		})
	}

	if c.ErrorLog.Path == "" {
		errors = append(errors, ValidationError{
			Field:   "error_log.path",
			Message: "must not be empty",
		})
	}

	switch c.Verification.Method {
	case "", "count", "none":
	default:
		errors = append(errors, ValidationError{
			Field:   "verification.method",
			Message: fmt.Sprintf("must be count or none, got %q", c.Verification.Method),
		})
	}

	if c.Watch.DebounceMillis < 0 {
		errors = append(errors, ValidationError{
			Field:   "watch.debounce_ms",
			Message: "must not be negative",
		})
	}

	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("must be debug, info, warn or error, got %q", c.Logging.Level),
		})
	}

	switch c.Logging.Format {
	case "", "json", "text":
	default:
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Message: fmt.Sprintf("must be json or text, got %q", c.Logging.Format),
		})
	}

	if len(errors) > 0 {
		return errors
	}
	return nil
}
