package day01

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lines(deltas ...string) string {
	return strings.Join(deltas, "\n")
}

func TestPart1_Examples(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{lines("+1", "-2", "+3", "+1"), 3},
		{lines("+1", "+1", "+1"), 3},
		{lines("+1", "+1", "-2"), 0},
		{lines("-1", "-2", "-3"), -6},
	}
	for _, tc := range cases {
		got, err := Solver{}.Part1(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestPart2_Examples(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{lines("+1", "-2", "+3", "+1"), 2},
		{lines("+1", "-1"), 0},
		{lines("+3", "+3", "+4", "-2", "-4"), 10},
		{lines("-6", "+3", "+8", "+5", "-6"), 5},
		{lines("+7", "+7", "-2", "-7", "-4"), 14},
	}
	for _, tc := range cases {
		got, err := Solver{}.Part2(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestPart2_NoRepeat(t *testing.T) {
	_, err := Solver{}.Part2("+1")
	assert.ErrorIs(t, err, ErrNoRepeat)
}

func TestEmptyInput(t *testing.T) {
	_, err := Solver{}.Part1("\n\n")
	assert.ErrorIs(t, err, ErrEmptyInput)
	_, err = Solver{}.Part2("")
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestMalformedDelta(t *testing.T) {
	_, err := Solver{}.Part1(lines("+1", "two", "+3"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")

	_, err = Solver{}.Part1("+1x")
	assert.Error(t, err)
}
