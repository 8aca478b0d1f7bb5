package day04

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/rcliao/aoc2018/internal/input"
)

// Timestamp is a log time ordered field by field, year first.
type Timestamp struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
}

// Compare returns -1, 0 or +1 as t sorts before, with, or after o.
func (t Timestamp) Compare(o Timestamp) int {
	if c := cmp.Compare(t.Year, o.Year); c != 0 {
		return c
	}
	if c := cmp.Compare(t.Month, o.Month); c != 0 {
		return c
	}
	if c := cmp.Compare(t.Day, o.Day); c != 0 {
		return c
	}
	if c := cmp.Compare(t.Hour, o.Hour); c != 0 {
		return c
	}
	return cmp.Compare(t.Minute, o.Minute)
}

func (t Timestamp) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d", t.Year, t.Month, t.Day, t.Hour, t.Minute)
}

// Kind tags the variant of an Event.
type Kind int

const (
	ShiftStart Kind = iota + 1
	SleepStart
	WakeUp
)

func (k Kind) String() string {
	switch k {
	case ShiftStart:
		return "shift start"
	case SleepStart:
		return "falls asleep"
	case WakeUp:
		return "wakes up"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Event is one log record. Guard is set only for ShiftStart; sleep and wake
// events belong to whichever guard's shift most recently started.
type Event struct {
	Time  Timestamp
	Kind  Kind
	Guard int

	// Line is the 1-based source line, 0 when the event was built in code.
	Line int
}

func (e Event) String() string {
	if e.Kind == ShiftStart {
		return fmt.Sprintf("[%s] Guard #%d begins shift", e.Time, e.Guard)
	}
	return fmt.Sprintf("[%s] %s", e.Time, e.Kind)
}

const (
	shiftPrefix = "Guard #"
	shiftSuffix = " begins shift"
	asleepText  = "falls asleep"
	wakeText    = "wakes up"
)

// ParseRecord parses one log line:
//
//	[YYYY-MM-DD HH:MM] Guard #<id> begins shift
//	[YYYY-MM-DD HH:MM] falls asleep
//	[YYYY-MM-DD HH:MM] wakes up
func ParseRecord(s string) (Event, error) {
	c := input.NewCursor(s)

	ts, err := parseTimestamp(c)
	if err != nil {
		return Event{}, &RecordError{Text: s, Reason: err.Error()}
	}
	if err := c.Expect(" "); err != nil {
		return Event{}, &RecordError{Text: s, Reason: err.Error()}
	}

	ev := Event{Time: ts}
	switch {
	case c.Peek(shiftPrefix):
		_ = c.Expect(shiftPrefix)
		id, err := c.Uint()
		if err != nil {
			return Event{}, &RecordError{Text: s, Reason: "guard id: " + err.Error()}
		}
		if err := c.Expect(shiftSuffix); err != nil {
			return Event{}, &RecordError{Text: s, Reason: err.Error()}
		}
		ev.Kind = ShiftStart
		ev.Guard = id
	case c.Peek(asleepText):
		_ = c.Expect(asleepText)
		ev.Kind = SleepStart
	case c.Peek(wakeText):
		_ = c.Expect(wakeText)
		ev.Kind = WakeUp
	default:
		return Event{}, &RecordError{Text: s, Reason: fmt.Sprintf("unknown action %q", c.Rest())}
	}

	if err := c.Done(); err != nil {
		return Event{}, &RecordError{Text: s, Reason: err.Error()}
	}
	return ev, nil
}

func parseTimestamp(c *input.Cursor) (Timestamp, error) {
	var ts Timestamp
	fields := []struct {
		lit    string
		digits int
		dst    *int
		lo, hi int
	}{
		{"[", 4, &ts.Year, 0, 9999},
		{"-", 2, &ts.Month, 1, 12},
		{"-", 2, &ts.Day, 1, 31},
		{" ", 2, &ts.Hour, 0, 23},
		{":", 2, &ts.Minute, 0, 59},
	}
	for _, f := range fields {
		if err := c.Expect(f.lit); err != nil {
			return Timestamp{}, err
		}
		v, err := c.Digits(f.digits)
		if err != nil {
			return Timestamp{}, err
		}
		if v < f.lo || v > f.hi {
			return Timestamp{}, fmt.Errorf("timestamp field %d out of range [%d, %d]", v, f.lo, f.hi)
		}
		*f.dst = v
	}
	if err := c.Expect("]"); err != nil {
		return Timestamp{}, err
	}
	return ts, nil
}

// Normalize parses every non-blank line of text and returns the events in
// timestamp order. Any malformed line fails the whole log.
func Normalize(text string) ([]Event, error) {
	lines := input.Lines(text)
	events := make([]Event, 0, len(lines))
	for _, l := range lines {
		ev, err := ParseRecord(l.Text)
		if err != nil {
			var re *RecordError
			if errors.As(err, &re) {
				re.Line = l.Num
			}
			return nil, err
		}
		ev.Line = l.Num
		events = append(events, ev)
	}
	SortEvents(events)
	return events, nil
}

// SortEvents stable-sorts events by timestamp in place.
func SortEvents(events []Event) {
	slices.SortStableFunc(events, func(a, b Event) int {
		return a.Time.Compare(b.Time)
	})
}
