package dfa

import "sort"

// RenamingGroups Maps each state of a minimal automaton to the set of
// original states that collapsed into it. The member lists are sorted
// and duplicate-free; every reachable original state appears in
// exactly one group and no group is empty.
type RenamingGroups map[string][]string

// GroupByNewName Inverts a renaming map into its caller-friendly form:
// instead of old name -> new name, every new name keyed to all old
// names that were merged into it. Operates on the map alone, with no
// dependency on the automaton it came from.
func GroupByNewName(renaming RenamingMap) RenamingGroups {
	groups := make(RenamingGroups, len(renaming))
	for oldName, newName := range renaming {
		members, ok := groups[newName]
		if !ok {
			members = make([]string, 0, 1)
		}
		groups[newName] = append(members, oldName)
	}
	for newName := range groups {
		sort.Strings(groups[newName])
	}
	return groups
}
