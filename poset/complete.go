package poset

import (
	"errors"
	"math/rand"
	"sort"

	"github.com/katalvlaran/mentormatch/match"
)

// Complete — fairness-preserving total-order expansion
//
// Description:
//
//	Complete expands a (possibly partial) problem statement into one where
//	every participant holds a strict total order over the entire opposite
//	side, so a deferred-acceptance solver can be applied directly.
//
// Algorithm Outline (per participant p on side A, opposite universe allB):
//  1. Tier 1 — explicit: p's stated ranking, verbatim, most-preferred first.
//  2. Tier 2 — reciprocated-unranked: members of B who ranked p but whom
//     p did not rank. Shuffled uniformly.
//  3. Tier 3 — mutually silent: the rest of allB. Shuffled independently
//     of Tier 2.
//  4. p's total order = Tier1 ++ Tier2 ++ Tier3 — exactly a permutation of
//     allB, no duplicates, no omissions.
//
// The same construction is applied symmetrically and independently to both
// sides: mentee totals use mentor rankings as the reciprocation signal and
// vice versa. Participants never mentioned in a side's ranking map (mentors
// present only in the capacity map) are given an empty starting ranking
// before tiering, so every known participant ends up total.
//
// Rationale:
//
//	Explicit preference is authoritative and is never reordered. Where a
//	participant stayed silent, an opponent who DID express interest carries
//	information the fair default would otherwise discard, so Tier 2 beats
//	Tier 3. Among truly symmetric ignorance the order is arbitrary, so it
//	is randomized rather than biased by input order.
//
// Complexity:
//
//	Time   = O(P·B) for P participants over an opposite universe of size B
//	Memory = O(P·B) for the completed ranking maps
//
// Errors:
//   - ErrNilStatement — if st is nil.
var (
	// ErrNilStatement indicates Complete was handed a nil statement.
	ErrNilStatement = errors.New("poset: problem statement must not be nil")
)

// Complete returns a new, independently valid statement in which every
// mentee totally orders every mentor and vice versa. The input statement
// is never mutated; capacities are copied through untouched.
//
// A nil opts (or nil opts.Rand) selects DefaultOptions: fresh entropy per
// call, so tie orders differ run to run. Use Seeded for reproducibility.
func Complete(st *match.ProblemStatement, opts *Options) (*match.ProblemStatement, error) {
	if st == nil {
		return nil, ErrNilStatement
	}
	if opts == nil || opts.Rand == nil {
		opts = DefaultOptions()
	}

	menteeRankings := st.MenteeRankings()
	mentorRankings := st.MentorRankings()
	mentees := st.Mentees()
	mentors := st.Mentors()

	completedMentees := completeSide(menteeRankings, mentorRankings, mentees, mentors, opts.Rand)
	completedMentors := completeSide(mentorRankings, menteeRankings, mentors, mentees, opts.Rand)

	return match.NewProblemStatement(completedMentees, completedMentors, st.MentorCapacities())
}

// completeSide builds total orders for every player over allOpponents.
// opponentRankings supplies the reciprocation signal: an opponent who
// ranked a player lands in that player's Tier 2 unless already in Tier 1.
func completeSide(playerRankings, opponentRankings match.RankingMap,
	allPlayers, allOpponents []string, rng *rand.Rand) match.RankingMap {
	// Invert the opposite side's rankings: who ranked whom.
	rankedBy := make(map[string]map[string]struct{}, len(allPlayers))
	for opponent, ranking := range opponentRankings {
		for _, player := range ranking {
			if rankedBy[player] == nil {
				rankedBy[player] = make(map[string]struct{})
			}
			rankedBy[player][opponent] = struct{}{}
		}
	}

	completed := make(match.RankingMap, len(allPlayers))
	for _, player := range allPlayers {
		stated := playerRankings[player] // absent players start empty

		inTier1 := make(map[string]struct{}, len(stated))
		for _, opponent := range stated {
			inTier1[opponent] = struct{}{}
		}

		tier2 := make([]string, 0, len(rankedBy[player]))
		for opponent := range rankedBy[player] {
			if _, ok := inTier1[opponent]; !ok {
				tier2 = append(tier2, opponent)
			}
		}
		// Sorted before shuffling so a seeded source is reproducible
		// regardless of map iteration order.
		sort.Strings(tier2)
		rng.Shuffle(len(tier2), func(i, j int) { tier2[i], tier2[j] = tier2[j], tier2[i] })

		tier3 := make([]string, 0, len(allOpponents)-len(stated)-len(tier2))
		inTier2 := make(map[string]struct{}, len(tier2))
		for _, opponent := range tier2 {
			inTier2[opponent] = struct{}{}
		}
		for _, opponent := range allOpponents {
			if _, ok := inTier1[opponent]; ok {
				continue
			}
			if _, ok := inTier2[opponent]; ok {
				continue
			}
			tier3 = append(tier3, opponent)
		}
		rng.Shuffle(len(tier3), func(i, j int) { tier3[i], tier3[j] = tier3[j], tier3[i] })

		total := make(match.Ranking, 0, len(allOpponents))
		total = append(total, stated...)
		total = append(total, tier2...)
		total = append(total, tier3...)
		completed[player] = total
	}

	return completed
}
