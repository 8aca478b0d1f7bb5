// Package day03 solves "No Matter How You Slice It": counting fabric covered
// by more than one claim and finding the one claim nobody else touches.
package day03

import (
	"errors"
)

var ErrNoIntactClaim = errors.New("every claim overlaps another")

// Solver implements puzzle.Solver for day 3.
type Solver struct{}

func (Solver) Day() int { return 3 }

// Part1 returns the number of square inches within two or more claims.
func (Solver) Part1(text string) (int, error) {
	claims, err := parse(text)
	if err != nil {
		return 0, err
	}

	g := newGrid(claims)
	for _, c := range claims {
		g.add(c)
	}
	return g.contested(), nil
}

// Part2 returns the ID of the first claim that overlaps no other claim.
func (Solver) Part2(text string) (int, error) {
	claims, err := parse(text)
	if err != nil {
		return 0, err
	}

	for i, c := range claims {
		intact := true
		for j, o := range claims {
			if i != j && c.Overlaps(o) {
				intact = false
				break
			}
		}
		if intact {
			return c.ID, nil
		}
	}
	return 0, ErrNoIntactClaim
}

// grid counts claims per square inch, sized to the furthest claim edge.
type grid struct {
	width int
	tiles []uint16
}

func newGrid(claims []Claim) *grid {
	w, h := 0, 0
	for _, c := range claims {
		w = max(w, c.X+c.W)
		h = max(h, c.Y+c.H)
	}
	return &grid{width: w, tiles: make([]uint16, w*h)}
}

func (g *grid) add(c Claim) {
	for y := c.Y; y < c.Y+c.H; y++ {
		row := y * g.width
		for x := c.X; x < c.X+c.W; x++ {
			g.tiles[row+x]++
		}
	}
}

func (g *grid) contested() int {
	n := 0
	for _, t := range g.tiles {
		if t > 1 {
			n++
		}
	}
	return n
}
