package dfa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	t.Run("testAcceptedRun", func(t *testing.T) {
		a, err := Validate(twoStateToggle())
		require.NoError(t, err)

		accepted, trace := a.Check("a")
		assert.True(t, accepted)
		assert.Equal(t, []string{"q0", "q1"}, trace)
	})

	t.Run("testRejectedRun", func(t *testing.T) {
		a, err := Validate(twoStateToggle())
		require.NoError(t, err)

		accepted, trace := a.Check("aa")
		assert.False(t, accepted)
		assert.Equal(t, []string{"q0", "q1", "q0"}, trace)
	})

	t.Run("testEmptyInput", func(t *testing.T) {
		a, err := Validate(twoStateToggle())
		require.NoError(t, err)

		accepted, trace := a.Check("")
		assert.False(t, accepted)
		assert.Equal(t, []string{"q0"}, trace)
	})

	t.Run("testEmptyInputAcceptingStart", func(t *testing.T) {
		raw := twoStateToggle()
		raw.Accepting = []string{"q0"}
		a, err := Validate(raw)
		require.NoError(t, err)

		accepted, trace := a.Check("")
		assert.True(t, accepted)
		assert.Equal(t, []string{"q0"}, trace)
	})

	t.Run("testStuckImmediately", func(t *testing.T) {
		raw := Automaton{
			States:      []string{"q0", "q1"},
			Alphabet:    []string{"a", "b"},
			Transitions: []Transition{{From: "q0", Input: "a", To: "q1"}},
			Start:       "q0",
			Accepting:   []string{"q1"},
		}
		a, err := Validate(raw)
		require.NoError(t, err)

		accepted, trace := a.Check("b")
		assert.False(t, accepted)
		assert.Equal(t, []string{"q0"}, trace)
	})

	t.Run("testStuckMidway", func(t *testing.T) {
		raw := Automaton{
			States:   []string{"q0", "q1", "q2"},
			Alphabet: []string{"a", "b"},
			Transitions: []Transition{
				{From: "q0", Input: "a", To: "q1"},
				{From: "q1", Input: "b", To: "q2"},
			},
			Start:     "q0",
			Accepting: []string{"q2"},
		}
		a, err := Validate(raw)
		require.NoError(t, err)

		accepted, trace := a.Check("aa")
		assert.False(t, accepted)
		assert.Equal(t, []string{"q0", "q1"}, trace)
	})

	t.Run("testUnrecognizedSymbolIsNotAnError", func(t *testing.T) {
		a, err := Validate(twoStateToggle())
		require.NoError(t, err)

		// "z" is not even in the alphabet; the run is simply stuck.
		accepted, trace := a.Check("z")
		assert.False(t, accepted)
		assert.Equal(t, []string{"q0"}, trace)
	})

	t.Run("testTraceAlignmentOnAcceptance", func(t *testing.T) {
		a, err := Validate(twoStateToggle())
		require.NoError(t, err)

		for _, input := range []string{"a", "aaa", "aaaaa"} {
			accepted, trace := a.Check(input)
			assert.True(t, accepted)
			assert.Len(t, trace, len(input)+1)
		}
	})
}
