package match

import (
	"strconv"
	"strings"
)

// Source names used in RowError diagnostics.
const (
	SourceMenteeRankings = "mentee rankings"
	SourceMentorRankings = "mentor rankings"
	SourceCapacities     = "mentor capacities"
)

// RankingRow is one parsed ranking record: a participant and their ranked
// opponents, most-preferred first.
type RankingRow struct {
	Name   string
	Ranked []string
}

// CapacityRow is one parsed capacity record. Capacity stays a string until
// normalization coerces it; the CSV layer performs no interpretation.
type CapacityRow struct {
	Mentor   string
	Capacity string
}

// Normalize converts raw ranking and capacity records into a validated
// ProblemStatement. Each record is `[name, opponent1, opponent2, ...]` for
// rankings and `[mentor, capacity]` for capacities.
//
// Checks, in order, failing fast:
//
//   - per-row shape defects (RowError: empty row, wrong capacity column
//     count, duplicate row keys, duplicate opponents within one row,
//     malformed or non-positive capacity);
//   - the full structural pass (Validate, with the given scorer);
//   - aggregate feasibility: sum(capacities) ≥ number of mentees
//     (ErrInsufficientCapacity, a global defect with no row context).
//
// A nil scorer selects the default similarity scorer.
func Normalize(menteeRows, mentorRows, capacityRows [][]string, scorer Scorer) (*ProblemStatement, error) {
	menteeRankings, err := parseRankingRows(SourceMenteeRankings, menteeRows)
	if err != nil {
		return nil, err
	}
	mentorRankings, err := parseRankingRows(SourceMentorRankings, mentorRows)
	if err != nil {
		return nil, err
	}
	capacities, err := parseCapacityRows(capacityRows)
	if err != nil {
		return nil, err
	}

	if err = Validate(menteeRankings, mentorRankings, capacities, scorer); err != nil {
		return nil, err
	}

	total := 0
	for _, capacity := range capacities {
		total += capacity
	}
	if total < len(menteeRankings) {
		return nil, ErrInsufficientCapacity
	}

	return &ProblemStatement{
		menteeRankings: menteeRankings,
		mentorRankings: mentorRankings,
		capacities:     capacities,
	}, nil
}

// parseRankingRows converts raw records into a RankingMap, rejecting empty
// rows, duplicate participants across rows, and duplicate opponents within
// one row. Rank is implicit: column position, left to right.
func parseRankingRows(source string, rows [][]string) (RankingMap, error) {
	rankings := make(RankingMap, len(rows))
	for idx, record := range rows {
		if len(record) == 0 || record[0] == "" {
			return nil, &RowError{Source: source, Index: idx, Err: ErrEmptyRow}
		}

		row := RankingRow{Name: record[0], Ranked: record[1:]}
		if _, ok := rankings[row.Name]; ok {
			return nil, &RowError{Source: source, Index: idx, Err: ErrDuplicateParticipantRow}
		}
		if hasRepeats(row.Ranked) {
			return nil, &RowError{Source: source, Index: idx, Err: ErrDuplicateOpponentInRow}
		}

		rankings[row.Name] = append(Ranking(nil), row.Ranked...)
	}

	return rankings, nil
}

// parseCapacityRows converts raw records into a CapacityMap, rejecting rows
// without exactly two columns, duplicate mentors, and capacity values that
// are not strictly positive integers.
func parseCapacityRows(rows [][]string) (CapacityMap, error) {
	capacities := make(CapacityMap, len(rows))
	for idx, record := range rows {
		if len(record) != 2 {
			return nil, &RowError{Source: SourceCapacities, Index: idx, Err: ErrCapacityRowShape}
		}

		row := CapacityRow{Mentor: record[0], Capacity: record[1]}
		if _, ok := capacities[row.Mentor]; ok {
			return nil, &RowError{Source: SourceCapacities, Index: idx, Err: ErrDuplicateCapacityRow}
		}

		capacity, err := strconv.Atoi(strings.TrimSpace(row.Capacity))
		if err != nil || capacity < 1 {
			return nil, &RowError{Source: SourceCapacities, Index: idx, Err: ErrBadCapacityValue}
		}

		capacities[row.Mentor] = capacity
	}

	return capacities, nil
}

func hasRepeats(names []string) bool {
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			return true
		}
		seen[name] = struct{}{}
	}

	return false
}
