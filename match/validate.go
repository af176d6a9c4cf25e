package match

import (
	"sort"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// DefaultSimilarityCutoff is the minimum normalized similarity (0..1) a
// candidate must reach before it is offered as a typo suggestion.
// Calibrated so clearly-unrelated names are rejected.
const DefaultSimilarityCutoff = 0.5

// Scorer picks, from candidates, the name most similar to target.
// It reports false when nothing is similar enough to suggest.
// Scorers are advisory: they shape diagnostics, never validation outcomes.
type Scorer func(target string, candidates []string) (best string, ok bool)

// NewSimilarityScorer builds a Scorer backed by normalized Levenshtein
// similarity. Comparison is case-insensitive; the returned candidate keeps
// its original casing.
func NewSimilarityScorer(cutoff float64) Scorer {
	lev := metrics.NewLevenshtein()

	return func(target string, candidates []string) (string, bool) {
		var (
			best  string
			score float64
		)
		lowered := strings.ToLower(target)
		for _, candidate := range candidates {
			s := strutil.Similarity(lowered, strings.ToLower(candidate), lev)
			if s > score {
				best, score = candidate, s
			}
		}
		if score < cutoff {
			return "", false
		}

		return best, true
	}
}

// Validate verifies that the rankings and capacities form a structurally
// correct problem. The invariants checked, participant by participant in
// sorted order, short-circuiting on the first violation:
//
//   - no ranking list contains a duplicate entry (DuplicateRankingError);
//   - every mentor ranked by a mentee exists in capacities (UnknownMentorError);
//   - every mentor with a ranking row exists in capacities (MissingCapacityError);
//   - every mentee ranked by a mentor has a ranking row (UnknownMenteeError).
//
// A nil scorer selects NewSimilarityScorer(DefaultSimilarityCutoff).
func Validate(menteeRankings, mentorRankings RankingMap, capacities CapacityMap, scorer Scorer) error {
	if scorer == nil {
		scorer = NewSimilarityScorer(DefaultSimilarityCutoff)
	}

	// Sorted candidate lists keep suggestions deterministic under ties.
	mentorNames := make([]string, 0, len(capacities))
	for m := range capacities {
		mentorNames = append(mentorNames, m)
	}
	sort.Strings(mentorNames)
	menteeNames := sortedKeys(menteeRankings)

	for _, mentee := range menteeNames {
		ranking := menteeRankings[mentee]
		if dups := duplicates(ranking); len(dups) > 0 {
			return &DuplicateRankingError{Side: MenteeSide, Participant: mentee, Duplicates: dups}
		}
		for _, mentor := range ranking {
			if _, ok := capacities[mentor]; !ok {
				return &UnknownMentorError{
					Mentee:     mentee,
					Name:       mentor,
					Suggestion: suggest(scorer, mentor, mentorNames),
				}
			}
		}
	}

	for _, mentor := range sortedKeys(mentorRankings) {
		ranking := mentorRankings[mentor]
		if dups := duplicates(ranking); len(dups) > 0 {
			return &DuplicateRankingError{Side: MentorSide, Participant: mentor, Duplicates: dups}
		}
		if _, ok := capacities[mentor]; !ok {
			return &MissingCapacityError{Mentor: mentor}
		}
		for _, mentee := range ranking {
			if _, ok := menteeRankings[mentee]; !ok {
				return &UnknownMenteeError{
					Mentor:     mentor,
					Name:       mentee,
					Suggestion: suggest(scorer, mentee, menteeNames),
				}
			}
		}
	}

	return nil
}

// duplicates returns every entry occurring more than once, in first-seen order.
func duplicates(ranking Ranking) []string {
	seen := make(map[string]int, len(ranking))
	for _, name := range ranking {
		seen[name]++
	}

	var dups []string
	reported := make(map[string]bool, len(seen))
	for _, name := range ranking {
		if seen[name] > 1 && !reported[name] {
			dups = append(dups, name)
			reported[name] = true
		}
	}

	return dups
}

func suggest(scorer Scorer, target string, candidates []string) string {
	if best, ok := scorer(target, candidates); ok {
		return best
	}

	return UnknownSuggestion
}
