package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/hoist/internal/ui/output"
	"go.trai.ch/hoist/internal/ui/style"
)

// mark is the icon and color a level is rendered with.
type mark struct {
	icon  string
	color lipgloss.Color
}

// markFor returns the rendering of level. Info lines carry no icon so that
// streamed registry output reads like the tool printed it.
func markFor(level slog.Level) mark {
	switch {
	case level >= slog.LevelError:
		return mark{icon: style.Cross, color: style.Red}
	case level >= slog.LevelWarn:
		return mark{icon: style.Warning, color: style.Yellow}
	case level >= slog.LevelInfo:
		return mark{color: style.Slate}
	default:
		return mark{icon: style.Pause, color: style.Slate}
	}
}

// PrettyHandler is a slog.Handler rendering one colored line per record,
// with attributes appended as a muted key=value list in parentheses.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	// prefix is prepended to attribute keys, e.g. "step.".
	prefix string
	// preformatted holds the attributes added through WithAttrs.
	preformatted []string
}

// NewPrettyHandler creates a PrettyHandler writing to w, or stderr when w is nil.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}
	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}
	return &PrettyHandler{out: output.New(w), level: level}
}

// Enabled reports whether records at level are rendered.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle renders the record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	m := markFor(r.Level)

	msg := r.Message
	if m.icon != "" {
		msg = m.icon + " " + msg
	}

	var b strings.Builder
	b.WriteString(h.out.String(msg).Foreground(h.out.Color(string(m.color))).String())

	attrs := append([]string(nil), h.preformatted...)
	r.Attrs(func(attr slog.Attr) bool {
		attrs = appendAttr(attrs, h.prefix, attr)
		return true
	})
	if len(attrs) > 0 {
		list := "(" + strings.Join(attrs, " ") + ")"
		b.WriteString(" ")
		b.WriteString(h.out.String(list).Foreground(h.out.Color(string(style.Slate))).String())
	}
	b.WriteString("\n")

	_, err := h.out.WriteString(b.String())
	return err
}

// WithAttrs returns a Handler that renders attrs on every record.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.preformatted = append([]string(nil), h.preformatted...)
	for _, attr := range attrs {
		next.preformatted = appendAttr(next.preformatted, h.prefix, attr)
	}
	return &next
}

// WithGroup returns a Handler that qualifies later attribute keys with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.prefix = h.prefix + name + "."
	return &next
}

// appendAttr renders attr as key=value, flattening groups into dotted keys.
// Empty attributes are dropped.
func appendAttr(dst []string, prefix string, attr slog.Attr) []string {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return dst
	}
	if attr.Value.Kind() == slog.KindGroup {
		inner := prefix
		if attr.Key != "" {
			inner += attr.Key + "."
		}
		for _, a := range attr.Value.Group() {
			dst = appendAttr(dst, inner, a)
		}
		return dst
	}
	return append(dst, prefix+attr.Key+"="+quoteValue(attr.Value.String()))
}

// quoteValue quotes values that would otherwise be ambiguous in a key=value list.
func quoteValue(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\n\"()=") {
		return strconv.Quote(s)
	}
	return s
}
