package day04

import "sort"

// MinutesPerHour is the width of a histogram row; every sleep falls within
// the midnight hour.
const MinutesPerHour = 60

// Row counts, for one guard, how many intervals covered each minute.
type Row [MinutesPerHour]int

// Total is the guard's overall minutes asleep.
func (r *Row) Total() int {
	n := 0
	for _, c := range r {
		n += c
	}
	return n
}

// Peak returns the most frequent minute and its count. Ties go to the
// earliest minute.
func (r *Row) Peak() (minute, count int) {
	for m, c := range r {
		if c > count {
			minute, count = m, c
		}
	}
	return minute, count
}

// Histogram maps guard id to its minute row.
type Histogram struct {
	rows map[int]*Row
}

// NewHistogram folds intervals into a histogram.
func NewHistogram(intervals []SleepInterval) *Histogram {
	h := &Histogram{rows: make(map[int]*Row)}
	for _, iv := range intervals {
		h.Add(iv)
	}
	return h
}

// Add counts every minute of iv once. Minutes outside [0, MinutesPerHour)
// are dropped.
func (h *Histogram) Add(iv SleepInterval) {
	start := max(iv.Start, 0)
	end := min(iv.End, MinutesPerHour)
	if start >= end {
		return
	}
	row, ok := h.rows[iv.Guard]
	if !ok {
		row = new(Row)
		h.rows[iv.Guard] = row
	}
	for m := start; m < end; m++ {
		row[m]++
	}
}

// Row returns the guard's row, or nil if the guard never slept.
func (h *Histogram) Row(guard int) *Row {
	return h.rows[guard]
}

// Guards lists guards with at least one interval, ascending.
func (h *Histogram) Guards() []int {
	ids := make([]int, 0, len(h.rows))
	for id := range h.rows {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Sleepiest returns the guard with the most total minutes asleep. Ties go to
// the lowest guard id.
func (h *Histogram) Sleepiest() (guard, total int, err error) {
	if len(h.rows) == 0 {
		return 0, 0, ErrNoSleep
	}
	total = -1
	for _, id := range h.Guards() {
		if t := h.rows[id].Total(); t > total {
			guard, total = id, t
		}
	}
	return guard, total, nil
}

// MostFrequent returns the (guard, minute) pair slept through most often.
// Ties go to the lowest guard id, then the earliest minute.
func (h *Histogram) MostFrequent() (guard, minute, count int, err error) {
	if len(h.rows) == 0 {
		return 0, 0, 0, ErrNoSleep
	}
	count = -1
	for _, id := range h.Guards() {
		if m, c := h.rows[id].Peak(); c > count {
			guard, minute, count = id, m, c
		}
	}
	return guard, minute, count, nil
}
