package hr

import (
	"fmt"
	"sort"
)

// Solve — many-to-one deferred acceptance (Hospital/Resident)
//
// Description:
//
//	Solve computes a stable assignment of mentees to capacity-bounded
//	mentors, given strict total preference orders on both sides. The
//	result is optimal for the requested side: every participant on that
//	side does at least as well as in any other stable assignment.
//
// Algorithm Outline:
//
//	MenteeOptimal — mentee-proposing deferred acceptance:
//	 1. Every mentee starts free, holding a cursor into its list.
//	 2. A free mentee proposes to the next mentor on its list.
//	 3. A mentor under capacity accepts; a full mentor accepts only if the
//	    proposer beats its worst current mentee, freeing that mentee.
//	 4. Repeat until no mentee is free with mentors left to try.
//
//	MentorOptimal — mentor-proposing deferred acceptance:
//	 1. Every mentor starts with its full capacity free.
//	 2. A mentor with free capacity proposes to the next mentee on its list.
//	 3. A free mentee accepts; a held mentee trades up only if the proposer
//	    beats its current mentor, returning a capacity unit to that mentor.
//	 4. Repeat until no mentor with free capacity has mentees left to try.
//
// Stability: no mentee/mentor pair exists that both strictly prefer over
// their outcome. With total lists and sum(capacities) ≥ #mentees, every
// mentee is assigned.
//
// Complexity:
//
//	Time   = O(n·m) proposals for n mentees and m mentors
//	Memory = O(n·m) for the inverted rank tables
//
// Errors:
//   - ErrUnknownParticipant — a preference list names a stranger.
//   - ErrNotTotal           — a list is not a permutation of the other side.
//   - ErrBadCapacity        — a capacity is missing or < 1.

// Optimality selects which side receives its best stable outcome.
type Optimality int

const (
	// MenteeOptimal makes mentees propose: each mentee gets the best mentor
	// it has in any stable assignment.
	MenteeOptimal Optimality = iota

	// MentorOptimal makes mentors propose: each mentor gets the best set of
	// mentees it has in any stable assignment.
	MentorOptimal
)

// Solve returns the side-optimal stable assignment as mentor → mentees.
// Every mentor in capacities appears as a key, possibly with no mentees.
//
// menteePrefs must rank every mentor in capacities and nothing else;
// mentorPrefs must rank every mentee in menteePrefs and nothing else.
// Use poset.Complete to obtain such total orders from partial input.
func Solve(menteePrefs, mentorPrefs map[string][]string, capacities map[string]int, optimal Optimality) (map[string][]string, error) {
	if err := checkTotal(menteePrefs, mentorPrefs, capacities); err != nil {
		return nil, err
	}

	var assigned map[string][]string
	if optimal == MentorOptimal {
		assigned = solveMentorOptimal(menteePrefs, mentorPrefs, capacities)
	} else {
		assigned = solveMenteeOptimal(menteePrefs, mentorPrefs, capacities)
	}

	for mentor := range capacities {
		if _, ok := assigned[mentor]; !ok {
			assigned[mentor] = nil
		}
	}

	return assigned, nil
}

// solveMenteeOptimal runs mentee-proposing deferred acceptance.
func solveMenteeOptimal(menteePrefs, mentorPrefs map[string][]string, capacities map[string]int) map[string][]string {
	mentorRank := invert(mentorPrefs)

	// Deterministic processing order; the outcome of deferred acceptance
	// is order-independent, this only stabilizes iteration.
	free := make([]string, 0, len(menteePrefs))
	for mentee := range menteePrefs {
		free = append(free, mentee)
	}
	sort.Strings(free)

	next := make(map[string]int, len(menteePrefs)) // cursor into each mentee's list
	assigned := make(map[string][]string, len(capacities))

	for len(free) > 0 {
		mentee := free[len(free)-1]
		free = free[:len(free)-1]

		prefs := menteePrefs[mentee]
		if next[mentee] >= len(prefs) {
			continue // exhausted list; stays unassigned
		}
		mentor := prefs[next[mentee]]
		next[mentee]++

		held := assigned[mentor]
		if len(held) < capacities[mentor] {
			assigned[mentor] = append(held, mentee)
			continue
		}

		// Full mentor: displace its worst mentee if the proposer is better.
		worst := 0
		for i := 1; i < len(held); i++ {
			if mentorRank[mentor][held[i]] > mentorRank[mentor][held[worst]] {
				worst = i
			}
		}
		if mentorRank[mentor][mentee] < mentorRank[mentor][held[worst]] {
			displaced := held[worst]
			held[worst] = mentee
			assigned[mentor] = held
			free = append(free, displaced)
		} else {
			free = append(free, mentee)
		}
	}

	return assigned
}

// solveMentorOptimal runs mentor-proposing deferred acceptance.
func solveMentorOptimal(menteePrefs, mentorPrefs map[string][]string, capacities map[string]int) map[string][]string {
	menteeRank := invert(menteePrefs)

	proposing := make([]string, 0, len(mentorPrefs))
	for mentor := range mentorPrefs {
		proposing = append(proposing, mentor)
	}
	sort.Strings(proposing)

	next := make(map[string]int, len(mentorPrefs))
	heldBy := make(map[string]string, len(menteePrefs)) // mentee → current mentor
	load := make(map[string]int, len(capacities))

	for len(proposing) > 0 {
		mentor := proposing[len(proposing)-1]
		prefs := mentorPrefs[mentor]

		if load[mentor] >= capacities[mentor] || next[mentor] >= len(prefs) {
			proposing = proposing[:len(proposing)-1]
			continue
		}
		mentee := prefs[next[mentor]]
		next[mentor]++

		current, held := heldBy[mentee]
		switch {
		case !held:
			heldBy[mentee] = mentor
			load[mentor]++
		case menteeRank[mentee][mentor] < menteeRank[mentee][current]:
			heldBy[mentee] = mentor
			load[mentor]++
			load[current]--
			proposing = append(proposing, current)
		}
	}

	assigned := make(map[string][]string, len(capacities))
	for mentee, mentor := range heldBy {
		assigned[mentor] = append(assigned[mentor], mentee)
	}

	return assigned
}

// checkTotal verifies that both preference maps are exact permutations of
// the opposite universe and that every capacity is strictly positive.
func checkTotal(menteePrefs, mentorPrefs map[string][]string, capacities map[string]int) error {
	for mentor, capacity := range capacities {
		if capacity < 1 {
			return fmt.Errorf("%w: mentor %s has capacity %d", ErrBadCapacity, mentor, capacity)
		}
		if _, ok := mentorPrefs[mentor]; !ok {
			return fmt.Errorf("%w: mentor %s has no preference list", ErrNotTotal, mentor)
		}
	}
	for mentor := range mentorPrefs {
		if _, ok := capacities[mentor]; !ok {
			return fmt.Errorf("%w: mentor %s has no capacity", ErrUnknownParticipant, mentor)
		}
	}

	for mentee, prefs := range menteePrefs {
		if err := permutationOf(prefs, capacities, "mentee", mentee); err != nil {
			return err
		}
	}
	menteeSet := make(map[string]int, len(menteePrefs))
	for mentee := range menteePrefs {
		menteeSet[mentee] = 1
	}
	for mentor, prefs := range mentorPrefs {
		if err := permutationOf(prefs, menteeSet, "mentor", mentor); err != nil {
			return err
		}
	}

	return nil
}

// permutationOf checks that prefs covers exactly the key set of universe.
func permutationOf(prefs []string, universe map[string]int, side, owner string) error {
	if len(prefs) != len(universe) {
		return fmt.Errorf("%w: %s %s ranks %d of %d opponents",
			ErrNotTotal, side, owner, len(prefs), len(universe))
	}
	seen := make(map[string]struct{}, len(prefs))
	for _, name := range prefs {
		if _, ok := universe[name]; !ok {
			return fmt.Errorf("%w: %s %s ranked %s", ErrUnknownParticipant, side, owner, name)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%w: %s %s ranks %s twice", ErrNotTotal, side, owner, name)
		}
		seen[name] = struct{}{}
	}

	return nil
}

// invert builds rank lookup tables: rank[owner][name] = position in
// owner's list (0 = most preferred).
func invert(prefs map[string][]string) map[string]map[string]int {
	rank := make(map[string]map[string]int, len(prefs))
	for owner, list := range prefs {
		table := make(map[string]int, len(list))
		for i, name := range list {
			table[name] = i
		}
		rank[owner] = table
	}

	return rank
}
