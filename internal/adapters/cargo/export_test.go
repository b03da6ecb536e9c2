package cargo

import "go.trai.ch/hoist/internal/core/ports"

var ResolveEnvironment = resolveEnvironment

type LineWriter = lineWriter

func NewLineWriter(logger ports.Logger) *LineWriter {
	return &lineWriter{logger: logger}
}
