package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/hoist/internal/adapters/logger"
)

func TestPrettyHandler_Handle_Levels(t *testing.T) {
	tests := []struct {
		name       string
		level      slog.Level
		msg        string
		goldenName string
	}{
		{name: "info level", level: slog.LevelInfo, msg: "information message", goldenName: "handler_info"},
		{name: "warn level", level: slog.LevelWarn, msg: "warning message", goldenName: "handler_warn"},
		{name: "error level", level: slog.LevelError, msg: "error message", goldenName: "handler_error"},
		{name: "debug level filtered", level: slog.LevelDebug, msg: "debug message", goldenName: "handler_debug_filtered"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			buf := &bytes.Buffer{}
			lg := slog.New(logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

			lg.Log(t.Context(), tt.level, tt.msg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestPrettyHandler_WithAttrs(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	handler := logger.NewPrettyHandler(buf, nil).
		WithAttrs([]slog.Attr{slog.String("package", "chamber-vault")})
	slog.New(handler).Info("published", slog.Int("group", 1))

	assert.Equal(t, "published (package=chamber-vault group=1)\n", buf.String())
}

func TestPrettyHandler_WithGroup(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	handler := logger.NewPrettyHandler(buf, nil).WithGroup("step")
	slog.New(handler).Info("ran", slog.String("op", "check"))

	assert.Equal(t, "ran (step.op=check)\n", buf.String())
}

func TestPrettyHandler_NestedGroups(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	handler := logger.NewPrettyHandler(buf, nil).
		WithGroup("run").
		WithAttrs([]slog.Attr{slog.Bool("dry_run", true)}).
		WithGroup("step")
	slog.New(handler).Warn("slow index",
		slog.Group("registry", slog.String("command", "cargo")),
		slog.Any("skipped", nil),
		slog.Attr{},
	)

	assert.Equal(t, "! slow index (run.dry_run=true run.step.registry.command=cargo run.step.skipped=<nil>)\n", buf.String())
}

func TestPrettyHandler_QuotesAmbiguousValues(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	slog.New(logger.NewPrettyHandler(buf, nil)).Error("step failed",
		slog.String("stderr", "error: could not compile"),
		slog.String("hint", ""),
	)

	assert.Equal(t, "✗ step failed (stderr=\"error: could not compile\" hint=\"\")\n", buf.String())
}

func TestPrettyHandler_DebugWhenEnabled(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	slog.New(logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})).Debug("resolved layout")

	assert.Equal(t, "… resolved layout\n", buf.String())
}

func TestPrettyHandler_Enabled(t *testing.T) {
	handler := logger.NewPrettyHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn})

	assert.False(t, handler.Enabled(t.Context(), slog.LevelInfo))
	assert.True(t, handler.Enabled(t.Context(), slog.LevelWarn))
	assert.True(t, handler.Enabled(t.Context(), slog.LevelError))
}
