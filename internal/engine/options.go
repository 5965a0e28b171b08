package engine

import (
	"errors"
	"fmt"
)

// Defaults for the dropdown geometry
const (
	DefaultRowHeight      = 36
	DefaultViewportHeight = 240
	DefaultOverscan       = 6
	DefaultPlaceholder    = "Nothing selected"
)

// ErrInvalidConfig is wrapped by every configuration validation failure
var ErrInvalidConfig = errors.New("invalid configuration")

// ConfigError describes a single rejected configuration value
type ConfigError struct {
	Field  string
	Value  int
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s=%d: %s", e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// Options configures a Session
type Options struct {
	RowHeight      int
	ViewportHeight int
	Overscan       int
	Placeholder    string
}

// DefaultOptions returns the stock dropdown geometry
func DefaultOptions() Options {
	return Options{
		RowHeight:      DefaultRowHeight,
		ViewportHeight: DefaultViewportHeight,
		Overscan:       DefaultOverscan,
		Placeholder:    DefaultPlaceholder,
	}
}

// Validate rejects geometry that would produce degenerate windows
func (o Options) Validate() error {
	if o.RowHeight <= 0 {
		return &ConfigError{Field: "row_height", Value: o.RowHeight, Reason: "must be greater than zero"}
	}
	if o.ViewportHeight <= 0 {
		return &ConfigError{Field: "viewport_height", Value: o.ViewportHeight, Reason: "must be greater than zero"}
	}
	if o.Overscan < 0 {
		return &ConfigError{Field: "overscan", Value: o.Overscan, Reason: "must not be negative"}
	}
	return nil
}
