package ports

import (
	"context"
	"io"

	"go.trai.ch/hoist/internal/core/domain"
)

// Telemetry records registry steps as vertices of a progress tape.
//
//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks
type Telemetry interface {
	// Record starts a vertex named name.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes the recording session.
	Close() error
}

// TelemetryFactory opens a recording session for one release run.
type TelemetryFactory interface {
	// Open starts a session whose transcript is written to path.
	Open(path string) (Telemetry, error)
}

// Vertex is a single recorded unit of work.
type Vertex interface {
	// Stdout returns a writer for the standard output of the work.
	Stdout() io.Writer
	// Stderr returns a writer for the error output of the work.
	Stderr() io.Writer
	// Log records a message at the given level.
	Log(level domain.LogLevel, msg string)
	// Complete marks the vertex as finished, failed when err is non-nil.
	Complete(err error)
}
