package puzzle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSolver struct {
	day int
}

func (f fakeSolver) Day() int { return f.day }

func (f fakeSolver) Part1(input string) (int, error) { return len(input), nil }

func (f fakeSolver) Part2(input string) (int, error) {
	if input == "" {
		return 0, errors.New("empty")
	}
	return -len(input), nil
}

func TestRegistry_DaysSorted(t *testing.T) {
	r, err := NewRegistry(fakeSolver{4}, fakeSolver{1}, fakeSolver{3})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 4}, r.Days())
}

func TestRegistry_Duplicate(t *testing.T) {
	_, err := NewRegistry(fakeSolver{1}, fakeSolver{1})
	assert.Error(t, err)
}

func TestRegistry_InvalidDay(t *testing.T) {
	_, err := NewRegistry(fakeSolver{0})
	assert.Error(t, err)
	_, err = NewRegistry(fakeSolver{26})
	assert.Error(t, err)
}

func TestRegistry_Lookup(t *testing.T) {
	r, err := NewRegistry(fakeSolver{3})
	require.NoError(t, err)

	s, err := r.Lookup(3)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Day())

	_, err = r.Lookup(5)
	assert.Error(t, err)
}

func TestPart(t *testing.T) {
	s := fakeSolver{1}

	got, err := Part(s, 1, "abc")
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	got, err = Part(s, 2, "abc")
	require.NoError(t, err)
	assert.Equal(t, -3, got)

	_, err = Part(s, 2, "")
	assert.Error(t, err)

	_, err = Part(s, 3, "abc")
	assert.Error(t, err)
}
