package dfa

// Check Runs the automaton over input, consuming one rune per symbol,
// and reports whether the run ends in an accepting state. The returned
// trace lists every state visited in order, starting with the start
// state, so an accepted run has a trace of length len(input)+1.
//
// A missing transition leaves the run stuck: Check stops consuming
// immediately, reports false, and the trace covers only the states
// reached up to that point. A stuck run is a first-class outcome, not
// an error; Check cannot fail on a validated automaton.
func (a *Automaton) Check(input string) (bool, []string) {
	current := a.Start
	trace := []string{current}

	for _, r := range input {
		next, ok := a.step(current, string(r))
		if !ok {
			return false, trace
		}
		current = next
		trace = append(trace, current)
	}

	return a.isAccept(current), trace
}
