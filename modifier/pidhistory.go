package modifier

import "pidplus/event"

// HistoryEntry is one recorded event, optionally paired with a snapshot
// of the controller's public state at the moment it was captured.
type HistoryEntry struct {
	Event    event.Event
	Snapshot *StateSnapshot
}

// StateSnapshot is the public controller state PIDHistory records when
// constructed with detail=true.
type StateSnapshot struct {
	Setpoint    float64
	Integration float64
	PV          float64
}

// PIDHistory records every event delivered to it (the framework's
// catch-all on_default path, since it declares no per-kind handlers) in
// a bounded FIFO, and tallies how many events of each kind it has seen
// regardless of what the dispatcher ultimately did with them. Stateless
// with respect to attachment: sharing one across controllers merges
// their histories, which is rarely useful but not forbidden.
type PIDHistory struct {
	capacity int
	detail   bool

	entries     []HistoryEntry
	eventCounts map[string]int
}

// NewPIDHistory returns a PIDHistory retaining up to n entries (0 means
// unbounded). If detail is true, every entry also captures a state
// snapshot.
func NewPIDHistory(n int, detail bool) *PIDHistory {
	return &PIDHistory{capacity: n, detail: detail, eventCounts: make(map[string]int)}
}

// Entries returns the recorded entries, oldest first.
func (m *PIDHistory) Entries() []HistoryEntry {
	return m.entries
}

// EventCounts returns how many events of each kind have been observed.
func (m *PIDHistory) EventCounts() map[string]int {
	return m.eventCounts
}

// String implements modifier.Modifier / event.ModifierRef.
func (m *PIDHistory) String() string { return "PIDHistory" }

// Handle implements modifier.Modifier.
func (m *PIDHistory) Handle(ev event.Event) error {
	m.eventCounts[ev.Kind().String()]++

	// A modifier later in this same chain can still mutate ev's writable
	// fields (e.g. I_Windup's SetI); record a clone so this entry reflects
	// the event as it stood when PIDHistory observed it, not as it ends
	// up after the rest of the chain runs.
	entry := HistoryEntry{Event: ev.Clone()}
	if m.detail {
		entry.Snapshot = m.snapshot(ev)
	}

	m.entries = append(m.entries, entry)
	if m.capacity > 0 && len(m.entries) > m.capacity {
		m.entries = m.entries[len(m.entries)-m.capacity:]
	}
	return nil
}

func (m *PIDHistory) snapshot(ev event.Event) *StateSnapshot {
	pid, ok := pidOf(ev)
	if !ok {
		return nil
	}
	return &StateSnapshot{Setpoint: pid.Setpoint(), Integration: pid.Integration(), PV: pid.PV()}
}

func pidOf(ev event.Event) (event.Controller, bool) {
	for _, f := range ev.Fields() {
		if f.Name != "pid" {
			continue
		}
		pid, ok := f.Value.(event.Controller)
		return pid, ok
	}
	return nil, false
}
