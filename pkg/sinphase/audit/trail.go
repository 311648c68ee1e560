// Package audit implements the append-only, timestamped event log owned by a
// pipeline context.
package audit

import (
	"errors"
	"strings"
	"time"
)

// TimeLayout is used when a trail is rendered as text.
const TimeLayout = "2006-01-02 15:04:05"

// ErrBufferFull is returned by Append when a bounded trail has no room left.
var ErrBufferFull = errors.New("audit trail is full")

// Entry is one immutable audit record.
type Entry struct {
	Time    time.Time
	Message string
}

func (e Entry) String() string {
	return "[" + e.Time.Format(TimeLayout) + "] " + e.Message
}

type Option func(*Trail)

// WithCapacity bounds the trail to n entries. Zero or less means unbounded.
func WithCapacity(n int) Option {
	return func(t *Trail) {
		if n > 0 {
			t.capacity = n
		}
	}
}

// WithClock replaces time.Now as the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(t *Trail) {
		if now != nil {
			t.now = now
		}
	}
}

// Trail is not safe for concurrent use; it is guarded by its owner.
type Trail struct {
	entries  []Entry
	capacity int
	now      func() time.Time
}

func New(opts ...Option) *Trail {
	t := &Trail{now: time.Now}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Append records msg. Timestamps never go backwards: a clock reading earlier
// than the previous entry is clamped to it.
func (t *Trail) Append(msg string) (Entry, error) {
	if t.Remaining() == 0 {
		return Entry{}, ErrBufferFull
	}

	ts := t.now()
	if n := len(t.entries); n > 0 && ts.Before(t.entries[n-1].Time) {
		ts = t.entries[n-1].Time
	}

	e := Entry{Time: ts, Message: msg}
	t.entries = append(t.entries, e)
	return e, nil
}

// Remaining reports how many more entries fit, or -1 when unbounded.
func (t *Trail) Remaining() int {
	if t.capacity == 0 {
		return -1
	}
	return t.capacity - len(t.entries)
}

func (t *Trail) Len() int {
	return len(t.entries)
}

// Last returns the most recent entry, if any.
func (t *Trail) Last() (Entry, bool) {
	if len(t.entries) == 0 {
		return Entry{}, false
	}
	return t.entries[len(t.entries)-1], true
}

// Entries returns a snapshot; mutating it does not affect the trail.
func (t *Trail) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// String renders the trail one entry per line.
func (t *Trail) String() string {
	var b strings.Builder
	for _, e := range t.entries {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}
