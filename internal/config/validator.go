package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "editor.tab_width")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// validLogLevels are the accepted logging.level values.
var validLogLevels = []string{"DEBUG", "INFO", "WARN", "ERROR"}

// Validate checks the configuration for invalid values. It returns all
// problems found, not just the first.
func (c *Config) Validate() []ValidationError {
	var errs []ValidationError

	if c.Editor.TabWidth < 1 || c.Editor.TabWidth > 16 {
		errs = append(errs, ValidationError{
			Field:   "editor.tab_width",
			Value:   c.Editor.TabWidth,
			Message: "must be between 1 and 16",
		})
	}
	if c.Editor.SyntaxMode == "" {
		errs = append(errs, ValidationError{
			Field:   "editor.syntax_mode",
			Value:   c.Editor.SyntaxMode,
			Message: "must not be empty",
		})
	}
	if c.Runner.TimeoutMs < 0 {
		errs = append(errs, ValidationError{
			Field:   "runner.timeout_ms",
			Value:   c.Runner.TimeoutMs,
			Message: "must not be negative",
		})
	}
	if c.Runner.FlashMs < 0 {
		errs = append(errs, ValidationError{
			Field:   "runner.flash_ms",
			Value:   c.Runner.FlashMs,
			Message: "must not be negative",
		})
	}
	if !slices.Contains(validLogLevels, strings.ToUpper(c.Logging.Level)) {
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of %s", strings.Join(validLogLevels, ", ")),
		})
	}

	return errs
}
