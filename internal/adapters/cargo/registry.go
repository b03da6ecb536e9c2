// Package cargo provides the registry adapter driving the cargo CLI.
package cargo

import (
	"bytes"
	"context"
	"errors"
	"maps"
	"os"
	"os/exec"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/hoist/internal/core/domain"
	"go.trai.ch/hoist/internal/core/ports"
	"go.trai.ch/zerr"
)

// Registry implements ports.Registry using os/exec.
type Registry struct {
	logger ports.Logger
}

// NewRegistry creates a new Registry.
func NewRegistry(logger ports.Logger) *Registry {
	return &Registry{logger: logger}
}

var _ ports.Registry = (*Registry)(nil)

// Args returns the registry CLI arguments for op.
func Args(op domain.Operation) ([]string, bool) {
	switch op {
	case domain.OpCheck:
		return []string{"check"}, true
	case domain.OpPackage:
		return []string{"package"}, true
	case domain.OpPublishDryRun:
		return []string{"publish", "--dry-run"}, true
	case domain.OpPublish:
		return []string{"publish"}, true
	default:
		return nil, false
	}
}

// Invoke runs op in the package directory.
// Standard output is forwarded to the logger line by line; standard error is
// captured and returned verbatim in the Invocation.
func (r *Registry) Invoke(
	ctx context.Context,
	cfg domain.RegistryConfig,
	pkg domain.Package,
	op domain.Operation,
) (domain.Invocation, error) {
	inv := domain.Invocation{Op: op, ExitCode: -1}

	args, ok := Args(op)
	if !ok {
		return inv, zerr.With(zerr.New("unknown registry operation"), "op", string(op))
	}

	command := cfg.Command
	if command == "" {
		command = domain.DefaultRegistryCommand
	}

	if err := ctx.Err(); err != nil {
		return inv, zerr.With(zerr.Wrap(err, "registry step interrupted"), "step", string(op))
	}

	cmd := exec.CommandContext(ctx, command, args...) //nolint:gosec // configured registry command
	cmd.Dir = pkg.Dir
	cmd.Env = resolveEnvironment(os.Environ(), cfg.Env)

	var stderr bytes.Buffer
	stdout := &lineWriter{logger: r.logger}
	cmd.Stdout = stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	stdout.Flush()
	inv.Stderr = stderr.String()

	if err == nil {
		inv.ExitCode = 0
		return inv, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		err = zerr.With(zerr.Wrap(ctxErr, "registry step interrupted"), "step", string(op))
		return inv, zerr.With(err, "package", pkg.Name)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		inv.ExitCode = exitErr.ExitCode()
		return inv, nil
	}

	err = zerr.With(zerr.Wrap(err, domain.ErrRegistryStartFailed.Error()), "command", command)
	err = zerr.With(err, "exit_code", -1)
	return inv, zerr.With(err, "package", pkg.Name)
}

// lineWriter forwards complete lines to the logger, buffering partial ones.
type lineWriter struct {
	logger ports.Logger
	mu     sync.Mutex
	buf    []byte
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.emit(string(w.buf[:i]))
		w.buf = w.buf[i+1:]
	}
	return len(p), nil
}

// Flush emits any buffered partial line.
func (w *lineWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.buf) > 0 {
		w.emit(string(w.buf))
		w.buf = nil
	}
}

func (w *lineWriter) emit(line string) {
	line = strings.TrimRight(line, "\r")
	if line == "" || w.logger == nil {
		return
	}
	w.logger.Info(line)
}

// resolveEnvironment overlays the registry environment on the system one.
func resolveEnvironment(sysEnv []string, extra map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(extra))
	for _, entry := range sysEnv {
		if k, v, ok := strings.Cut(entry, "="); ok {
			envMap[k] = v
		}
	}
	maps.Copy(envMap, extra)

	result := make([]string, 0, len(envMap))
	for _, k := range slices.Sorted(maps.Keys(envMap)) {
		result = append(result, k+"="+envMap[k])
	}
	return result
}
