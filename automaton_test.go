package dfa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoStateToggle() Automaton {
	return Automaton{
		States:   []string{"q0", "q1"},
		Alphabet: []string{"a"},
		Transitions: []Transition{
			{From: "q0", Input: "a", To: "q1"},
			{From: "q1", Input: "a", To: "q0"},
		},
		Start:     "q0",
		Accepting: []string{"q1"},
	}
}

func TestValidate(t *testing.T) {
	t.Run("testValid", func(t *testing.T) {
		a, err := Validate(twoStateToggle())
		require.NoError(t, err)
		assert.Equal(t, 2, a.NumStates())
		assert.Equal(t, "q0", a.Start)
	})

	t.Run("testEmptyStates", func(t *testing.T) {
		raw := twoStateToggle()
		raw.States = nil
		_, err := Validate(raw)
		assert.Error(t, err)
		var merr *MalformedAutomatonError
		assert.ErrorAs(t, err, &merr)
	})

	t.Run("testEmptyAlphabet", func(t *testing.T) {
		raw := twoStateToggle()
		raw.Alphabet = nil
		_, err := Validate(raw)
		var merr *MalformedAutomatonError
		assert.ErrorAs(t, err, &merr)
	})

	t.Run("testUnknownStart", func(t *testing.T) {
		raw := twoStateToggle()
		raw.Start = "qX"
		_, err := Validate(raw)
		var merr *MalformedAutomatonError
		require.ErrorAs(t, err, &merr)
		assert.Contains(t, merr.Reason, "qX")
	})

	t.Run("testUnknownAcceptingMember", func(t *testing.T) {
		raw := twoStateToggle()
		raw.Accepting = []string{"q1", "q9"}
		_, err := Validate(raw)
		var merr *MalformedAutomatonError
		require.ErrorAs(t, err, &merr)
		assert.Contains(t, merr.Reason, "q9")
	})

	t.Run("testUnknownTransitionSource", func(t *testing.T) {
		raw := twoStateToggle()
		raw.Transitions = append(raw.Transitions, Transition{From: "qZ", Input: "a", To: "q0"})
		_, err := Validate(raw)
		var merr *MalformedAutomatonError
		assert.ErrorAs(t, err, &merr)
	})

	t.Run("testUnknownTransitionTarget", func(t *testing.T) {
		raw := twoStateToggle()
		raw.Transitions = append(raw.Transitions, Transition{From: "q0", Input: "a", To: "qZ"})
		_, err := Validate(raw)
		var merr *MalformedAutomatonError
		assert.ErrorAs(t, err, &merr)
	})

	t.Run("testUnknownTransitionSymbol", func(t *testing.T) {
		raw := twoStateToggle()
		raw.Transitions = append(raw.Transitions, Transition{From: "q0", Input: "z", To: "q1"})
		_, err := Validate(raw)
		var merr *MalformedAutomatonError
		require.ErrorAs(t, err, &merr)
		assert.Contains(t, merr.Reason, "alphabet")
	})

	t.Run("testConflictingTransitions", func(t *testing.T) {
		raw := twoStateToggle()
		raw.Transitions = append(raw.Transitions, Transition{From: "q0", Input: "a", To: "q0"})
		_, err := Validate(raw)
		var merr *MalformedAutomatonError
		require.ErrorAs(t, err, &merr)
		assert.Contains(t, merr.Reason, "conflicting")
	})

	t.Run("testDuplicateTransitionTolerated", func(t *testing.T) {
		raw := twoStateToggle()
		raw.Transitions = append(raw.Transitions, Transition{From: "q0", Input: "a", To: "q1"})
		a, err := Validate(raw)
		require.NoError(t, err)
		assert.Len(t, a.Transitions, 2)
	})

	t.Run("testCanonicalOrdering", func(t *testing.T) {
		raw := twoStateToggle()
		raw.States = []string{"q1", "q0"}
		raw.Alphabet = []string{"a"}
		a, err := Validate(raw)
		require.NoError(t, err)
		assert.Equal(t, []string{"q0", "q1"}, a.States)
	})

	t.Run("testInputNotRetained", func(t *testing.T) {
		raw := twoStateToggle()
		a, err := Validate(raw)
		require.NoError(t, err)
		raw.States[0] = "mutated"
		assert.Equal(t, []string{"q0", "q1"}, a.States)
	})
}
