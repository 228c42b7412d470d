package dfa

import (
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// RenamingMap Maps every reachable state of a minimized automaton to
// the name of the minimal state it collapsed into. Representatives map
// to themselves. Unreachable states never appear.
type RenamingMap map[string]string

// Minimize Reduces the automaton to its minimal equivalent via
// iterative partition refinement and returns it together with the
// renaming map. The receiver is never mutated.
//
// States unreachable from the start state are discarded up front: they
// contribute nothing to the recognized language, so they form no
// equivalence class and are absent from both outputs. The surviving
// states are split into accepting and non-accepting blocks, then
// blocks are refined by transition signature until a whole pass splits
// nothing. Each final block is named after its lexicographically
// smallest member, which makes independent runs over equal inputs
// produce identical names.
func (a *Automaton) Minimize() (*Automaton, RenamingMap) {
	reachable := a.reachableStates()

	// Initial partition: accepting / non-accepting. Block ids are
	// allocated on first member so an empty block never exists.
	blockOf := make(map[string]int, len(reachable))
	numBlocks := 0
	accBlock, rejBlock := -1, -1
	for _, s := range reachable {
		if a.isAccept(s) {
			if accBlock == -1 {
				accBlock = numBlocks
				numBlocks++
			}
			blockOf[s] = accBlock
		} else {
			if rejBlock == -1 {
				rejBlock = numBlocks
				numBlocks++
			}
			blockOf[s] = rejBlock
		}
	}

	// Refine to a fixpoint. A pass regroups every state by its current
	// block plus its transition signature; the block count can only
	// grow and is bounded by len(reachable), so this terminates.
	for {
		next := make(map[string]int, len(reachable))
		groups := make(map[string]int, numBlocks)
		count := 0
		for _, s := range reachable {
			key := strconv.Itoa(blockOf[s]) + "|" + a.signature(s, blockOf)
			id, ok := groups[key]
			if !ok {
				id = count
				count++
				groups[key] = id
			}
			next[s] = id
		}
		if count == numBlocks {
			// Every block produced exactly one group: nothing split.
			break
		}
		blockOf = next
		numBlocks = count
	}

	// Canonical naming: reachable is sorted, so the first member seen
	// for a block is its lexicographically smallest state.
	repOf := make([]string, numBlocks)
	named := make([]bool, numBlocks)
	for _, s := range reachable {
		if !named[blockOf[s]] {
			repOf[blockOf[s]] = s
			named[blockOf[s]] = true
		}
	}
	renaming := make(RenamingMap, len(reachable))
	for _, s := range reachable {
		renaming[s] = repOf[blockOf[s]]
	}

	return a.buildMinimal(reachable, renaming), renaming
}

// signature Encodes, for every alphabet symbol in canonical order,
// which block the transition target currently falls into. Symbols with
// no defined transition contribute a distinguished marker, so a state
// lacking a move is never merged with one that has it.
func (a *Automaton) signature(state string, blockOf map[string]int) string {
	var b strings.Builder
	for _, sym := range a.Alphabet {
		if target, ok := a.step(state, sym); ok {
			b.WriteString(strconv.Itoa(blockOf[target]))
		} else {
			b.WriteByte('x')
		}
		b.WriteByte(',')
	}
	return b.String()
}

// reachableStates Returns, in sorted name order, every state reachable
// from the start state by following defined transitions.
func (a *Automaton) reachableStates() []string {
	seen := bitset.New(uint(len(a.names)))
	seen.Set(uint(a.ids[a.Start]))

	workList := make([]string, 0, len(a.names))
	workList = append(workList, a.Start)
	for len(workList) > 0 {
		state := workList[0]
		workList = workList[1:]
		for _, sym := range a.Alphabet {
			next, ok := a.step(state, sym)
			if !ok {
				continue
			}
			if !seen.Test(uint(a.ids[next])) {
				seen.Set(uint(a.ids[next]))
				workList = append(workList, next)
			}
		}
	}

	out := make([]string, 0, seen.Count())
	for _, name := range a.names {
		if seen.Test(uint(a.ids[name])) {
			out = append(out, name)
		}
	}
	return out
}

// buildMinimal Constructs a fresh automaton with one state per block,
// mapping every original transition through the renaming map. States
// in one block agree on their per-symbol target blocks at the
// fixpoint, so the mapped transitions never conflict.
func (a *Automaton) buildMinimal(reachable []string, renaming RenamingMap) *Automaton {
	acceptSet := make(map[string]struct{})
	stateSet := make(map[string]struct{})
	delta := make(map[string]map[string]string)

	for _, s := range reachable {
		rep := renaming[s]
		stateSet[rep] = struct{}{}
		if a.isAccept(s) {
			acceptSet[rep] = struct{}{}
		}
		for _, sym := range a.Alphabet {
			target, ok := a.step(s, sym)
			if !ok {
				continue
			}
			targets, ok := delta[rep]
			if !ok {
				targets = make(map[string]string)
				delta[rep] = targets
			}
			targets[sym] = renaming[target]
		}
	}

	minimal := Automaton{
		States:    sortedKeys(stateSet),
		Alphabet:  append([]string(nil), a.Alphabet...),
		Start:     renaming[a.Start],
		Accepting: sortedKeys(acceptSet),
		delta:     delta,
	}
	minimal.Transitions = flattenDelta(delta)
	minimal.buildIndex(acceptSet)
	return &minimal
}
