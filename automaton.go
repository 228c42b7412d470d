package dfa

import (
	"fmt"
	"sort"

	"github.com/bits-and-blooms/bitset"
)

// Transition is one defined (state, symbol) -> state edge. The
// transition function need not be total; a pair with no edge simply has
// no move.
type Transition struct {
	From  string `json:"from"`
	Input string `json:"input"`
	To    string `json:"to"`
}

// Automaton Represents a deterministic finite automaton over
// string-named states. States, Alphabet and Accepting carry set
// semantics; Validate canonicalizes them into sorted, duplicate-free
// form and builds the internal index that Check and Minimize run on.
// Values returned by Validate (and Minimize) are immutable: no method
// mutates the receiver, so one automaton can serve any number of
// concurrent calls.
type Automaton struct {
	States      []string     `json:"states"`
	Alphabet    []string     `json:"alphabet"`
	Transitions []Transition `json:"transitions"`
	Start       string       `json:"start"`
	Accepting   []string     `json:"accepting"`

	// Index built by Validate: dense state ids in sorted name order,
	// accept states as a bitset over those ids, and the transition
	// lookup table.
	ids    map[string]int
	names  []string
	accept *bitset.BitSet
	delta  map[string]map[string]string
}

// MalformedAutomatonError Reports a structural defect found while
// validating an automaton. It is raised before any algorithm touches
// the data and is never retried.
type MalformedAutomatonError struct {
	Reason string
}

func (e *MalformedAutomatonError) Error() string {
	return "malformed automaton: " + e.Reason
}

func malformed(format string, args ...any) error {
	return &MalformedAutomatonError{Reason: fmt.Sprintf(format, args...)}
}

// Validate Checks the structural invariants of raw and returns an
// indexed automaton ready for Check and Minimize:
//   - States and Alphabet are non-empty,
//   - Start belongs to States,
//   - Accepting is a subset of States,
//   - every transition endpoint belongs to States and every transition
//     symbol to Alphabet,
//   - no two transitions disagree on the same (state, symbol) pair.
//
// Any violation yields a *MalformedAutomatonError. The input value is
// not retained; the returned automaton holds canonicalized copies.
func Validate(raw Automaton) (*Automaton, error) {
	if len(raw.States) == 0 {
		return nil, malformed("state set is empty")
	}
	if len(raw.Alphabet) == 0 {
		return nil, malformed("alphabet is empty")
	}

	states := toSet(raw.States)
	symbols := toSet(raw.Alphabet)

	if _, ok := states[raw.Start]; !ok {
		return nil, malformed("start state %q is not in the state set", raw.Start)
	}
	for _, s := range raw.Accepting {
		if _, ok := states[s]; !ok {
			return nil, malformed("accepting state %q is not in the state set", s)
		}
	}

	delta := make(map[string]map[string]string, len(states))
	for _, t := range raw.Transitions {
		if _, ok := states[t.From]; !ok {
			return nil, malformed("transition source %q is not in the state set", t.From)
		}
		if _, ok := states[t.To]; !ok {
			return nil, malformed("transition target %q is not in the state set", t.To)
		}
		if _, ok := symbols[t.Input]; !ok {
			return nil, malformed("transition symbol %q is not in the alphabet", t.Input)
		}
		targets, ok := delta[t.From]
		if !ok {
			targets = make(map[string]string)
			delta[t.From] = targets
		}
		if prev, ok := targets[t.Input]; ok && prev != t.To {
			return nil, malformed("conflicting transitions from %q on %q", t.From, t.Input)
		}
		targets[t.Input] = t.To
	}

	acceptSet := toSet(raw.Accepting)
	a := Automaton{
		States:    sortedKeys(states),
		Alphabet:  sortedKeys(symbols),
		Start:     raw.Start,
		Accepting: sortedKeys(acceptSet),
		delta:     delta,
	}
	a.Transitions = flattenDelta(delta)
	a.buildIndex(acceptSet)
	return &a, nil
}

// buildIndex assigns dense ids in sorted name order and fills the
// accept bitset. Callers must have set States, Alphabet and delta.
func (a *Automaton) buildIndex(acceptSet map[string]struct{}) {
	a.names = a.States
	a.ids = make(map[string]int, len(a.names))
	a.accept = bitset.New(uint(len(a.names)))
	for i, name := range a.names {
		a.ids[name] = i
		if _, ok := acceptSet[name]; ok {
			a.accept.Set(uint(i))
		}
	}
}

// step performs the transition lookup for one symbol. ok is false when
// the automaton defines no move for the pair.
func (a *Automaton) step(state, symbol string) (string, bool) {
	targets, ok := a.delta[state]
	if !ok {
		return "", false
	}
	next, ok := targets[symbol]
	return next, ok
}

// isAccept Returns true if the named state is an accept state.
func (a *Automaton) isAccept(state string) bool {
	return a.accept.Test(uint(a.ids[state]))
}

// NumStates How many states this automaton has.
func (a *Automaton) NumStates() int {
	return len(a.names)
}

// flattenDelta rebuilds the canonical transition list, sorted by
// source, then symbol, then target.
func flattenDelta(delta map[string]map[string]string) []Transition {
	out := make([]Transition, 0, len(delta))
	for from, targets := range delta {
		for input, to := range targets {
			out = append(out, Transition{From: from, Input: input, To: to})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		if out[i].Input != out[j].Input {
			return out[i].Input < out[j].Input
		}
		return out[i].To < out[j].To
	})
	return out
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
