package day03

import (
	"errors"
	"fmt"

	"github.com/rcliao/aoc2018/internal/input"
)

var ErrMalformedClaim = errors.New("malformed claim")

// MaxExtent bounds the far edge of any claim on either axis, which keeps the
// overlap grid at most MaxExtent*MaxExtent squares.
const MaxExtent = 1 << 12

// Claim is a rectangle of fabric, X/Y measured from the top-left corner.
type Claim struct {
	ID int
	X  int
	Y  int
	W  int
	H  int
}

// Overlaps reports whether c and o share at least one square inch. Claims
// that only touch along an edge do not overlap.
func (c Claim) Overlaps(o Claim) bool {
	return !(c.X+c.W <= o.X ||
		o.X+o.W <= c.X ||
		c.Y+c.H <= o.Y ||
		o.Y+o.H <= c.Y)
}

// ParseClaim parses "#<id> @ <x>,<y>: <w>x<h>".
func ParseClaim(s string) (Claim, error) {
	var c Claim
	cur := input.NewCursor(s)

	steps := []struct {
		lit string
		dst *int
	}{
		{"#", &c.ID},
		{" @ ", &c.X},
		{",", &c.Y},
		{": ", &c.W},
		{"x", &c.H},
	}
	for _, st := range steps {
		if err := cur.Expect(st.lit); err != nil {
			return Claim{}, err
		}
		n, err := cur.Uint()
		if err != nil {
			return Claim{}, err
		}
		*st.dst = n
	}
	if err := cur.Done(); err != nil {
		return Claim{}, err
	}
	if c.W == 0 || c.H == 0 {
		return Claim{}, fmt.Errorf("empty rectangle %dx%d", c.W, c.H)
	}
	if c.X > MaxExtent-c.W || c.Y > MaxExtent-c.H {
		return Claim{}, fmt.Errorf("rectangle %dx%d at %d,%d extends past %d", c.W, c.H, c.X, c.Y, MaxExtent)
	}
	return c, nil
}

func parse(text string) ([]Claim, error) {
	lines := input.Lines(text)
	claims := make([]Claim, 0, len(lines))
	for _, l := range lines {
		c, err := ParseClaim(l.Text)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d %q: %v", ErrMalformedClaim, l.Num, l.Text, err)
		}
		claims = append(claims, c)
	}
	return claims, nil
}
