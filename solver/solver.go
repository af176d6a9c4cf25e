// Package solver is the adapter between a validated (possibly partial)
// problem statement and the hr deferred-acceptance engine: it completes
// the statement into total orders, invokes the solver, and translates the
// result back into plain identifier mappings.
//
// The pipeline it owns:
//
//	*match.ProblemStatement ──▶ poset.Complete ──▶ hr.Solve ──▶ Matching
//
// Mentors that receive no mentees are omitted from the returned Matching.
// Exactly one side gets its optimal stable outcome, per the Side argument.
package solver

import (
	"github.com/katalvlaran/mentormatch/hr"
	"github.com/katalvlaran/mentormatch/match"
	"github.com/katalvlaran/mentormatch/poset"
)

// Side selects which side of the market the stable assignment favors.
type Side int

const (
	// MenteeOptimal favors mentees (the default matching mode).
	MenteeOptimal Side = iota

	// MentorOptimal favors mentors.
	MentorOptimal
)

// Matching maps each mentor to the mentees assigned to it. Mentors with no
// assignment are absent.
type Matching map[string][]string

// Solve completes st into total orders (tie-breaking drawn from opts; nil
// selects fresh entropy) and returns the side-optimal stable assignment.
//
// The returned matching respects every capacity. Given aggregate capacity
// at or above the mentee count, which Normalize guarantees, it assigns
// every mentee exactly once.
func Solve(st *match.ProblemStatement, side Side, opts *poset.Options) (Matching, error) {
	total, err := poset.Complete(st, opts)
	if err != nil {
		return nil, err
	}

	optimal := hr.MenteeOptimal
	if side == MentorOptimal {
		optimal = hr.MentorOptimal
	}

	assigned, err := hr.Solve(
		toPrefs(total.MenteeRankings()),
		toPrefs(total.MentorRankings()),
		total.MentorCapacities(),
		optimal,
	)
	if err != nil {
		return nil, err
	}

	matching := make(Matching, len(assigned))
	for mentor, mentees := range assigned {
		if len(mentees) > 0 {
			matching[mentor] = mentees
		}
	}

	return matching, nil
}

func toPrefs(rankings match.RankingMap) map[string][]string {
	prefs := make(map[string][]string, len(rankings))
	for name, ranking := range rankings {
		prefs[name] = ranking
	}

	return prefs
}
