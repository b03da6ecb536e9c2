package app

import "go.trai.ch/hoist/internal/core/ports"

// LogFormatter is implemented by loggers that can switch to JSON output.
type LogFormatter interface {
	SetJSON(enable bool)
}

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

// NewComponents creates a new Components struct from dependencies.
func NewComponents(app *App, logger ports.Logger) *Components {
	return &Components{
		App:    app,
		Logger: logger,
	}
}

// SetJSONLogs switches the logger to JSON records when it supports it.
func (c *Components) SetJSONLogs(enable bool) {
	if f, ok := c.Logger.(LogFormatter); ok {
		f.SetJSON(enable)
	}
}
