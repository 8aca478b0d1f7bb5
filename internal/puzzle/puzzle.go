// Package puzzle defines the solver contract shared by every day and a
// registry the CLI dispatches through.
package puzzle

import (
	"fmt"
	"sort"
)

// Solver computes both answers of one day from its raw input text.
type Solver interface {
	// Day is the puzzle day number, 1 through 25.
	Day() int

	Part1(input string) (int, error)
	Part2(input string) (int, error)
}

// Part runs part 1 or 2 of s.
func Part(s Solver, part int, input string) (int, error) {
	switch part {
	case 1:
		return s.Part1(input)
	case 2:
		return s.Part2(input)
	}
	return 0, fmt.Errorf("invalid part %d (must be 1 or 2)", part)
}

// Registry holds solvers keyed by day.
type Registry struct {
	solvers map[int]Solver
}

// NewRegistry registers the given solvers. Duplicate days are an error.
func NewRegistry(solvers ...Solver) (*Registry, error) {
	r := &Registry{solvers: make(map[int]Solver, len(solvers))}
	for _, s := range solvers {
		if err := r.Register(s); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds s.
func (r *Registry) Register(s Solver) error {
	day := s.Day()
	if day < 1 || day > 25 {
		return fmt.Errorf("invalid day %d", day)
	}
	if _, ok := r.solvers[day]; ok {
		return fmt.Errorf("day %d already registered", day)
	}
	r.solvers[day] = s
	return nil
}

// Lookup returns the solver for day.
func (r *Registry) Lookup(day int) (Solver, error) {
	s, ok := r.solvers[day]
	if !ok {
		return nil, fmt.Errorf("no solver for day %d", day)
	}
	return s, nil
}

// Days lists registered days in ascending order.
func (r *Registry) Days() []int {
	days := make([]int, 0, len(r.solvers))
	for d := range r.solvers {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}
