package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// DefaultLogCapacity is how many records a LogPanel keeps.
const DefaultLogCapacity = 100

// LogEntry is one captured record, already flattened for display.
type LogEntry struct {
	Time    time.Time
	Level   slog.Level
	Message string
	Attrs   string
}

// String renders the entry on one line.
func (e LogEntry) String() string {
	s := e.Time.Format("15:04:05") + " " + e.Level.String() + " " + e.Message
	if e.Attrs != "" {
		s += " " + e.Attrs
	}
	return s
}

// logStore is the ring buffer shared by a LogPanel and every handler derived
// from it through WithAttrs or WithGroup.
type logStore struct {
	mu      sync.Mutex
	entries []LogEntry
	next    int
	full    bool
}

// LogPanel is a slog.Handler that keeps the most recent records in memory so
// the terminal UI can show them. It is safe for concurrent use.
type LogPanel struct {
	store  *logStore
	level  slog.Leveler
	attrs  []slog.Attr
	groups []string
}

// NewLogPanel returns a LogPanel holding up to capacity records at or above level.
// A capacity below 1 means DefaultLogCapacity.
func NewLogPanel(capacity int, level slog.Leveler) *LogPanel {
	if capacity < 1 {
		capacity = DefaultLogCapacity
	}
	if level == nil {
		level = slog.LevelInfo
	}
	return &LogPanel{
		store: &logStore{entries: make([]LogEntry, capacity)},
		level: level,
	}
}

func (p *LogPanel) Enabled(_ context.Context, l slog.Level) bool {
	return l >= p.level.Level()
}

func (p *LogPanel) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	for _, a := range p.attrs {
		writeAttr(&b, p.groups, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, p.groups, a)
		return true
	})

	s := p.store
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[s.next] = LogEntry{Time: r.Time, Level: r.Level, Message: r.Message, Attrs: b.String()}
	s.next = (s.next + 1) % len(s.entries)
	if s.next == 0 {
		s.full = true
	}
	return nil
}

func (p *LogPanel) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *p
	c.attrs = append(append([]slog.Attr(nil), p.attrs...), attrs...)
	return &c
}

func (p *LogPanel) WithGroup(name string) slog.Handler {
	if name == "" {
		return p
	}
	c := *p
	c.groups = append(append([]string(nil), p.groups...), name)
	return &c
}

// Entries returns the captured records, oldest first.
func (p *LogPanel) Entries() []LogEntry {
	s := p.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.full {
		return append([]LogEntry(nil), s.entries[:s.next]...)
	}
	out := make([]LogEntry, 0, len(s.entries))
	out = append(out, s.entries[s.next:]...)
	return append(out, s.entries[:s.next]...)
}

// Clear drops every captured record.
func (p *LogPanel) Clear() {
	s := p.store
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.entries)
	s.next = 0
	s.full = false
}

func writeAttr(b *strings.Builder, groups []string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		g := groups
		if a.Key != "" {
			g = append(append([]string(nil), groups...), a.Key)
		}
		for _, ga := range a.Value.Group() {
			writeAttr(b, g, ga)
		}
		return
	}
	if b.Len() > 0 {
		b.WriteByte(' ')
	}
	key := a.Key
	if len(groups) > 0 {
		key = strings.Join(groups, ".") + "." + key
	}
	fmt.Fprintf(b, "%s=%v", key, a.Value.Any())
}
