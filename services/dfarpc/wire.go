package dfarpc

import (
	"github.com/go-playground/validator/v10"

	"github.com/finitekit/dfa"
)

// shapeValidator checks the wire-level shape of decoded payloads
// (required fields, non-empty unique lists). Membership invariants
// such as "start belongs to states" stay in dfa.Validate.
var shapeValidator = validator.New()

// WireTransition is the transport form of a single transition edge.
type WireTransition struct {
	From  string `json:"from" validate:"required"`
	Input string `json:"input" validate:"required"`
	To    string `json:"to" validate:"required"`
}

// WireAutomaton is the transport form of an automaton, decoded from
// JSON-RPC params. Transitions may be absent entirely; the transition
// function is allowed to be partial.
type WireAutomaton struct {
	States      []string         `json:"states" validate:"required,min=1,unique"`
	Alphabet    []string         `json:"alphabet" validate:"required,min=1,unique"`
	Transitions []WireTransition `json:"transitions" validate:"omitempty,dive"`
	Start       string           `json:"start" validate:"required"`
	Accepting   []string         `json:"accepting" validate:"omitempty,unique"`
}

// toModel runs the wire shape check followed by the structural
// validation gate and returns an indexed automaton ready for the
// engine. Both failure modes report as a malformed automaton.
func (w *WireAutomaton) toModel() (*dfa.Automaton, error) {
	if err := shapeValidator.Struct(w); err != nil {
		return nil, &dfa.MalformedAutomatonError{Reason: err.Error()}
	}
	raw := dfa.Automaton{
		States:      w.States,
		Alphabet:    w.Alphabet,
		Transitions: make([]dfa.Transition, 0, len(w.Transitions)),
		Start:       w.Start,
		Accepting:   w.Accepting,
	}
	for _, t := range w.Transitions {
		raw.Transitions = append(raw.Transitions, dfa.Transition{From: t.From, Input: t.Input, To: t.To})
	}
	return dfa.Validate(raw)
}
