package telemetry

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/vito/progrock"
	"go.trai.ch/hoist/internal/core/domain"
	"go.trai.ch/hoist/internal/core/ports"
	"go.trai.ch/zerr"
)

// Transcript is a progrock.Writer that renders status updates as plain text
// lines, one per vertex event or output line.
type Transcript struct {
	mu        sync.Mutex
	out       *bufio.Writer
	closer    io.Closer
	names     map[string]string
	started   map[string]bool
	completed map[string]bool
}

// NewTranscript creates a Transcript writing to w. If w is an io.Closer it is
// closed together with the transcript.
func NewTranscript(w io.Writer) *Transcript {
	t := &Transcript{
		out:       bufio.NewWriter(w),
		names:     make(map[string]string),
		started:   make(map[string]bool),
		completed: make(map[string]bool),
	}
	if c, ok := w.(io.Closer); ok {
		t.closer = c
	}
	return t
}

var _ progrock.Writer = (*Transcript)(nil)

// WriteStatus appends the events carried by update.
func (t *Transcript) WriteStatus(update *progrock.StatusUpdate) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, v := range update.Vertexes {
		t.names[v.Id] = v.Name
		if !t.started[v.Id] {
			t.started[v.Id] = true
			t.line(v.Name, "started")
		}
		if v.Completed != nil && !t.completed[v.Id] {
			t.completed[v.Id] = true
			switch {
			case v.Error != nil:
				t.line(v.Name, "failed: "+*v.Error)
			case v.Cached:
				t.line(v.Name, "cached")
			default:
				t.line(v.Name, "done")
			}
		}
	}

	for _, l := range update.Logs {
		name := t.names[l.Vertex]
		prefix := "out"
		if l.Stream == progrock.LogStream_STDERR {
			prefix = "err"
		}
		for _, text := range strings.Split(strings.TrimRight(string(l.Data), "\n"), "\n") {
			t.line(name, prefix+" | "+text)
		}
	}

	return t.out.Flush()
}

func (t *Transcript) line(name, text string) {
	_, _ = fmt.Fprintf(t.out, "[%s] %s\n", name, text)
}

// Close flushes pending output and closes the destination.
func (t *Transcript) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	err := t.out.Flush()
	if t.closer != nil {
		if cerr := t.closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// Factory implements ports.TelemetryFactory with file-backed transcripts.
type Factory struct{}

// NewFactory creates a new Factory.
func NewFactory() *Factory {
	return &Factory{}
}

var _ ports.TelemetryFactory = (*Factory)(nil)

// Open truncates the transcript at path and returns a Recorder writing to it.
func (f *Factory) Open(path string) (ports.Telemetry, error) {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create telemetry directory"), "path", path)
	}
	file, err := os.OpenFile(filepath.Clean(path), os.O_CREATE|os.O_TRUNC|os.O_WRONLY, domain.FilePerm)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open step transcript"), "path", path)
	}
	return NewRecorder(NewTranscript(file)), nil
}
