// Package day04 solves "Repose Record".
//
// A guard post log is normalized into time-ordered events, replayed through
// a small shift state machine to recover sleep intervals, and folded into a
// per-guard minute histogram. Part 1 picks the guard asleep the longest and
// that guard's most frequent minute; part 2 picks the (guard, minute) pair
// seen asleep most often overall. Both answer guard id times minute.
package day04

// Solver implements puzzle.Solver for day 4.
type Solver struct{}

func (Solver) Day() int { return 4 }

// Part1 answers strategy 1.
func (Solver) Part1(text string) (int, error) {
	h, err := Analyze(text)
	if err != nil {
		return 0, err
	}
	guard, _, err := h.Sleepiest()
	if err != nil {
		return 0, err
	}
	minute, _ := h.Row(guard).Peak()
	return guard * minute, nil
}

// Part2 answers strategy 2.
func (Solver) Part2(text string) (int, error) {
	h, err := Analyze(text)
	if err != nil {
		return 0, err
	}
	guard, minute, _, err := h.MostFrequent()
	if err != nil {
		return 0, err
	}
	return guard * minute, nil
}

// Analyze runs the full pipeline from raw log text to histogram.
func Analyze(text string) (*Histogram, error) {
	events, err := Normalize(text)
	if err != nil {
		return nil, err
	}
	intervals, err := Reconstruct(events)
	if err != nil {
		return nil, err
	}
	return NewHistogram(intervals), nil
}
