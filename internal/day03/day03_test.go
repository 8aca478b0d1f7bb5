package day03

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `
#1 @ 1,3: 4x4
#2 @ 3,1: 4x4
#3 @ 5,5: 2x2`

func TestPart1_Example(t *testing.T) {
	got, err := Solver{}.Part1(example)
	require.NoError(t, err)
	assert.Equal(t, 4, got)
}

func TestPart2_Example(t *testing.T) {
	got, err := Solver{}.Part2(example)
	require.NoError(t, err)
	assert.Equal(t, 3, got)
}

func TestParseClaim(t *testing.T) {
	c, err := ParseClaim("#123 @ 3,2: 5x4")
	require.NoError(t, err)
	assert.Equal(t, Claim{ID: 123, X: 3, Y: 2, W: 5, H: 4}, c)
}

func TestParseClaim_Malformed(t *testing.T) {
	for _, s := range []string{
		"",
		"123 @ 3,2: 5x4",
		"#123 @ 3,2 5x4",
		"#123 @ 3,2: 5x",
		"#123 @ -3,2: 5x4",
		"#123 @ 3,2: 5x4 extra",
		"#1 @ 0,0: 0x4",
		"#1 @ 65536,0: 1x1",
		"#1 @ 0,4000: 1x97",
	} {
		_, err := ParseClaim(s)
		assert.Error(t, err, s)
	}
}

func TestMalformedLineReportsLineNumber(t *testing.T) {
	_, err := Solver{}.Part1("#1 @ 1,3: 4x4\n#2 at 3,1: 4x4")
	require.ErrorIs(t, err, ErrMalformedClaim)
	assert.Contains(t, err.Error(), "line 2")
}

func TestOversizedClaimIsRejected(t *testing.T) {
	for _, text := range []string{
		"#1 @ 3037000500,3037000500: 1x1\n#2 @ 1,1: 2x2",
		"#1 @ 100000,100000: 1x1",
		"#1 @ 0,0: 9223372036854775807x2",
	} {
		_, err := Solver{}.Part1(text)
		assert.ErrorIs(t, err, ErrMalformedClaim, text)
		_, err = Solver{}.Part2(text)
		assert.ErrorIs(t, err, ErrMalformedClaim, text)
	}
}

func TestParseClaim_AtMaxExtent(t *testing.T) {
	c, err := ParseClaim("#7 @ 4095,0: 1x4096")
	require.NoError(t, err)
	assert.Equal(t, MaxExtent, c.X+c.W)
	assert.Equal(t, MaxExtent, c.Y+c.H)
}

func TestOverlaps(t *testing.T) {
	a := Claim{ID: 1, X: 1, Y: 3, W: 4, H: 4}
	b := Claim{ID: 2, X: 3, Y: 1, W: 4, H: 4}
	c := Claim{ID: 3, X: 5, Y: 5, W: 2, H: 2}

	assert.True(t, a.Overlaps(b))
	assert.True(t, b.Overlaps(a))
	assert.False(t, a.Overlaps(c), "edge-adjacent claims do not overlap")
	assert.False(t, b.Overlaps(c))
}

func TestPart1_FullyStacked(t *testing.T) {
	got, err := Solver{}.Part1("#1 @ 0,0: 2x2\n#2 @ 0,0: 2x2\n#3 @ 0,0: 2x2")
	require.NoError(t, err)
	assert.Equal(t, 4, got, "triple coverage still counts once per square")
}

func TestPart2_NoIntactClaim(t *testing.T) {
	_, err := Solver{}.Part2("#1 @ 0,0: 2x2\n#2 @ 1,1: 2x2")
	assert.ErrorIs(t, err, ErrNoIntactClaim)
}

func TestEmptyInput(t *testing.T) {
	got, err := Solver{}.Part1("")
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	_, err = Solver{}.Part2("")
	assert.ErrorIs(t, err, ErrNoIntactClaim)
}
