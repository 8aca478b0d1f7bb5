// Package day01 solves "Chronal Calibration": summing frequency changes and
// finding the first frequency the device reaches twice.
package day01

import (
	"errors"
	"fmt"

	"github.com/rcliao/aoc2018/internal/input"
)

// maxPasses bounds part 2 for inputs that never revisit a frequency, e.g. "+1".
const maxPasses = 10000

var (
	ErrEmptyInput = errors.New("no frequency changes")
	ErrNoRepeat   = errors.New("no frequency reached twice")
)

// Solver implements puzzle.Solver for day 1.
type Solver struct{}

func (Solver) Day() int { return 1 }

// Part1 returns the resulting frequency after applying every change once.
func (Solver) Part1(text string) (int, error) {
	deltas, err := parse(text)
	if err != nil {
		return 0, err
	}
	freq := 0
	for _, d := range deltas {
		freq += d
	}
	return freq, nil
}

// Part2 returns the first frequency reached twice while cycling through the
// changes. The starting frequency 0 counts as seen.
func (Solver) Part2(text string) (int, error) {
	deltas, err := parse(text)
	if err != nil {
		return 0, err
	}

	seen := map[int]bool{0: true}
	freq := 0
	for pass := 0; pass < maxPasses; pass++ {
		for _, d := range deltas {
			freq += d
			if seen[freq] {
				return freq, nil
			}
			seen[freq] = true
		}
	}
	return 0, fmt.Errorf("%w after %d passes", ErrNoRepeat, maxPasses)
}

func parse(text string) ([]int, error) {
	lines := input.Lines(text)
	if len(lines) == 0 {
		return nil, ErrEmptyInput
	}

	deltas := make([]int, 0, len(lines))
	for _, l := range lines {
		c := input.NewCursor(l.Text)
		n, err := c.Int()
		if err == nil {
			err = c.Done()
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: parse delta %q: %w", l.Num, l.Text, err)
		}
		deltas = append(deltas, n)
	}
	return deltas, nil
}
