package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode"

	"github.com/muesli/termenv"
	"go.trai.ch/reqs/internal/ui/output"
	"go.trai.ch/reqs/internal/ui/style"
)

// detailIndent prefixes the attribute lines printed below warnings and errors.
const detailIndent = "    "

// PrettyHandler is a slog.Handler for terminal output.
//
// Info records print their attributes inline as key=value. Warnings and errors
// print each attribute on its own indented line below the message, which is
// where the metadata of a failed operation (manifest path, project, format)
// ends up.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	attrs []slog.Attr
	group string
}

// NewPrettyHandler creates a new PrettyHandler writing to w.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   output.New(w),
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and outputs the log record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	icon, color := levelStyle(r.Level)

	msg := r.Message
	if icon != "" {
		msg = icon + " " + msg
	}

	fields := make([]field, 0, len(h.attrs)+r.NumAttrs())
	for _, attr := range h.attrs {
		fields = append(fields, newField(h.group, attr))
	}
	r.Attrs(func(attr slog.Attr) bool {
		fields = append(fields, newField(h.group, attr))
		return true
	})

	var b strings.Builder
	if r.Level < slog.LevelWarn {
		b.WriteString(h.out.String(inline(msg, fields)).Foreground(color).String())
		b.WriteByte('\n')
	} else {
		b.WriteString(h.out.String(msg).Foreground(color).String())
		b.WriteByte('\n')
		slate := termenv.RGBColor(string(style.Slate))
		for _, f := range fields {
			line := detailIndent + f.key + ": " + f.value
			b.WriteString(h.out.String(line).Foreground(slate).String())
			b.WriteByte('\n')
		}
	}

	_, err := h.out.WriteString(b.String())
	return err
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	newAttrs = append(newAttrs, h.attrs...)
	newAttrs = append(newAttrs, attrs...)

	clone := *h
	clone.attrs = newAttrs
	return &clone
}

// WithGroup returns a new Handler with the given group name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	clone := *h
	clone.group = name
	return &clone
}

func levelStyle(level slog.Level) (string, termenv.Color) {
	switch {
	case level >= slog.LevelError:
		return style.Cross, termenv.RGBColor(string(style.Red))
	case level >= slog.LevelWarn:
		return style.Warning, termenv.RGBColor(string(style.Yellow))
	default:
		return "", termenv.RGBColor(string(style.Slate))
	}
}

type field struct {
	key   string
	value string
}

func newField(group string, attr slog.Attr) field {
	key := attr.Key
	if group != "" {
		key = group + "." + key
	}
	return field{key: key, value: formatValue(attr.Value.Resolve())}
}

func inline(msg string, fields []field) string {
	if len(fields) == 0 {
		return msg
	}
	parts := make([]string, 0, len(fields)+1)
	parts = append(parts, msg)
	for _, f := range fields {
		parts = append(parts, f.key+"="+f.value)
	}
	return strings.Join(parts, " ")
}

// formatValue quotes string values that are empty or carry leading or trailing
// whitespace, so a declaration such as "pandas " stays readable.
func formatValue(v slog.Value) string {
	if v.Kind() != slog.KindString {
		return v.String()
	}
	s := v.String()
	if s == "" || strings.TrimFunc(s, unicode.IsSpace) != s {
		return fmt.Sprintf("%q", s)
	}
	return s
}
