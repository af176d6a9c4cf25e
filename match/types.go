package match

import "sort"

// Side distinguishes the two halves of the market.
type Side int

const (
	// MenteeSide is the proposing-student half of the market.
	MenteeSide Side = iota

	// MentorSide is the capacity-bounded half of the market.
	MentorSide
)

// String renders the side as it appears in diagnostics.
func (s Side) String() string {
	if s == MentorSide {
		return "mentor"
	}

	return "mentee"
}

// Ranking is an ordered preference list, most-preferred first. It never
// contains duplicates and may be empty (no stated preference).
type Ranking []string

// RankingMap maps a participant to their Ranking of the opposite side.
type RankingMap map[string]Ranking

// CapacityMap maps a mentor to the maximum number of mentees it accepts.
// Every capacity is ≥ 1.
type CapacityMap map[string]int

// ProblemStatement is the immutable, validated formulation of one matching
// problem: mentee rankings of mentors, mentor rankings of mentees, and
// per-mentor capacities.
//
// The three maps are defensively copied at construction; mutating the
// caller's inputs afterwards cannot corrupt the statement, and accessors
// hand out fresh copies. A ProblemStatement is therefore safe to share.
//
// Aggregate capacity sufficiency is deliberately NOT an invariant here —
// it is a normalization-stage concern (see Normalize), so statements for
// unit tests can be built without it.
type ProblemStatement struct {
	menteeRankings RankingMap
	mentorRankings RankingMap
	capacities     CapacityMap
}

// NewProblemStatement validates the given maps and returns an immutable
// statement. The invariants enforced, in check order:
//
//  1. no ranking list contains a duplicate entry;
//  2. every mentor named in a mentee's ranking has a capacity entry;
//  3. every mentor with a ranking row has a capacity entry;
//  4. every mentee named in a mentor's ranking has a ranking row.
//
// Violations are reported through the ErrInvalidProblemStatement family
// with the default similarity scorer supplying typo suggestions.
func NewProblemStatement(menteeRankings, mentorRankings RankingMap, capacities CapacityMap) (*ProblemStatement, error) {
	if err := Validate(menteeRankings, mentorRankings, capacities, nil); err != nil {
		return nil, err
	}

	return &ProblemStatement{
		menteeRankings: copyRankings(menteeRankings),
		mentorRankings: copyRankings(mentorRankings),
		capacities:     copyCapacities(capacities),
	}, nil
}

// MenteeRankings returns a copy of the mentee→ranking map.
func (ps *ProblemStatement) MenteeRankings() RankingMap { return copyRankings(ps.menteeRankings) }

// MentorRankings returns a copy of the mentor→ranking map.
func (ps *ProblemStatement) MentorRankings() RankingMap { return copyRankings(ps.mentorRankings) }

// MentorCapacities returns a copy of the mentor→capacity map.
func (ps *ProblemStatement) MentorCapacities() CapacityMap { return copyCapacities(ps.capacities) }

// Mentees returns every known mentee in sorted order. The mentee universe
// is exactly the key set of the mentee-ranking map.
func (ps *ProblemStatement) Mentees() []string { return sortedKeys(ps.menteeRankings) }

// Mentors returns every known mentor in sorted order. The mentor universe
// is exactly the key set of the capacity map; validation guarantees every
// ranked or ranking mentor appears there.
func (ps *ProblemStatement) Mentors() []string {
	names := make([]string, 0, len(ps.capacities))
	for m := range ps.capacities {
		names = append(names, m)
	}
	sort.Strings(names)

	return names
}

func copyRankings(src RankingMap) RankingMap {
	dst := make(RankingMap, len(src))
	for name, ranking := range src {
		dst[name] = append(Ranking(nil), ranking...)
	}

	return dst
}

func copyCapacities(src CapacityMap) CapacityMap {
	dst := make(CapacityMap, len(src))
	for name, capacity := range src {
		dst[name] = capacity
	}

	return dst
}

func sortedKeys(m RankingMap) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
