package modifier

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"pidplus/event"
)

// EventPrint renders every event it is handed as a textual record,
// indented by the dispatcher's current nesting depth, through a
// pluggable slog.Logger sink (slog.Default() unless overridden via
// WithLogger). HookStopped is rendered at whatever depth is current,
// never treated as one level deeper than the event it replaces.
type EventPrint struct {
	prefix string
	logger *slog.Logger
}

// depther is satisfied by pidplus.Controller; EventPrint type-asserts to
// it rather than importing pidplus, which would cycle back here.
type depther interface {
	Depth() int
}

// NewEventPrint returns an EventPrint logging through slog.Default()
// with the given line prefix.
func NewEventPrint(prefix string) *EventPrint {
	return &EventPrint{prefix: prefix}
}

// WithLogger redirects EventPrint's sink to logger. A nil logger falls
// back to slog.Default() the next time Handle runs.
func (m *EventPrint) WithLogger(logger *slog.Logger) *EventPrint {
	m.logger = logger
	return m
}

// String implements modifier.Modifier / event.ModifierRef.
func (m *EventPrint) String() string { return "EventPrint" }

// Handle implements modifier.Modifier.
func (m *EventPrint) Handle(ev event.Event) error {
	depth := m.currentDepth(ev)
	line := m.prefix + strings.Repeat("  ", depth) + Render(ev)
	m.logger0().LogAttrs(context.Background(), slog.LevelInfo, line,
		slog.String("kind", ev.Kind().String()), slog.Int("depth", depth))
	return nil
}

func (m *EventPrint) logger0() *slog.Logger {
	if m.logger != nil {
		return m.logger
	}
	return slog.Default()
}

func (m *EventPrint) currentDepth(ev event.Event) int {
	if d, ok := ev.(*event.HookStopped); ok {
		return m.currentDepth(d.Event())
	}
	if d, ok := ev.(*event.Failure); ok {
		return m.currentDepth(d.Event())
	}
	if pid, ok := pidOf(ev); ok {
		if d, ok := pid.(depther); ok {
			return d.Depth()
		}
	}
	return 0
}

// Render produces ev's EventName(field=value, ...) textual form, with
// fields in declaration order.
func Render(ev event.Event) string {
	fields := ev.Fields()
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = fmt.Sprintf("%s=%v", f.Name, f.Value)
	}
	return fmt.Sprintf("%s(%s)", ev.Kind(), strings.Join(parts, ", "))
}
