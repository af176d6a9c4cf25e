package match

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidProblemStatement is the root of the error family: every defect
// reported by this module — structural, row-shape, feasibility, or I/O —
// satisfies errors.Is(err, ErrInvalidProblemStatement).
var ErrInvalidProblemStatement = errors.New("match: invalid problem statement")

// Sentinel row-level defects. Each wraps ErrInvalidProblemStatement and is
// normally seen inside a RowError carrying the offending row index.
var (
	// ErrEmptyRow indicates a ranking row with no participant name.
	ErrEmptyRow = fmt.Errorf("%w: ranking row has no participant name", ErrInvalidProblemStatement)

	// ErrCapacityRowShape indicates a capacity row without exactly two columns.
	ErrCapacityRowShape = fmt.Errorf("%w: every capacity row must have exactly two columns", ErrInvalidProblemStatement)

	// ErrDuplicateParticipantRow indicates the same participant keyed two ranking rows.
	ErrDuplicateParticipantRow = fmt.Errorf("%w: the same participant appears in more than one ranking row", ErrInvalidProblemStatement)

	// ErrDuplicateOpponentInRow indicates one ranking row naming an opponent twice.
	ErrDuplicateOpponentInRow = fmt.Errorf("%w: a ranking row names the same opponent twice", ErrInvalidProblemStatement)

	// ErrDuplicateCapacityRow indicates the same mentor keyed two capacity rows.
	ErrDuplicateCapacityRow = fmt.Errorf("%w: the same mentor appears in more than one capacity row", ErrInvalidProblemStatement)

	// ErrBadCapacityValue indicates a capacity that is not a strictly positive integer.
	ErrBadCapacityValue = fmt.Errorf("%w: capacities must be strictly positive (> 0) integer values", ErrInvalidProblemStatement)

	// ErrInsufficientCapacity indicates aggregate mentor capacity below the mentee count.
	// This is a global constraint; it carries no row context.
	ErrInsufficientCapacity = fmt.Errorf("%w: available mentor capacity is less than the number of mentees; increase capacity for one or more mentors", ErrInvalidProblemStatement)
)

// UnknownSuggestion is the sentinel suggestion used when no known name is
// similar enough to the misspelled one.
const UnknownSuggestion = "UNKNOWN"

// DuplicateRankingError reports a ranking list containing repeated entries.
type DuplicateRankingError struct {
	Side        Side     // which side's ranking list is defective
	Participant string   // owner of the defective list
	Duplicates  []string // every entry that appears more than once
}

func (e *DuplicateRankingError) Error() string {
	return fmt.Sprintf("match: %s %s has duplicate rankings [%s]",
		e.Side, e.Participant, strings.Join(e.Duplicates, ", "))
}

func (e *DuplicateRankingError) Unwrap() error { return ErrInvalidProblemStatement }

// UnknownMentorError reports a mentee ranking a mentor that is not present
// in the capacity map. Suggestion is advisory and may be UnknownSuggestion.
type UnknownMentorError struct {
	Mentee     string
	Name       string
	Suggestion string
}

func (e *UnknownMentorError) Error() string {
	return fmt.Sprintf("match: mentee %s ranked a mentor %s that does not exist; the closest candidate is %s",
		e.Mentee, e.Name, e.Suggestion)
}

func (e *UnknownMentorError) Unwrap() error { return ErrInvalidProblemStatement }

// UnknownMenteeError reports a mentor ranking a mentee that has no ranking
// row of its own. Suggestion is advisory and may be UnknownSuggestion.
type UnknownMenteeError struct {
	Mentor     string
	Name       string
	Suggestion string
}

func (e *UnknownMenteeError) Error() string {
	return fmt.Sprintf("match: mentor %s ranked a mentee %s that does not exist; the closest candidate is %s",
		e.Mentor, e.Name, e.Suggestion)
}

func (e *UnknownMenteeError) Unwrap() error { return ErrInvalidProblemStatement }

// MissingCapacityError reports a mentor with a ranking row but no entry in
// the capacity map.
type MissingCapacityError struct {
	Mentor string
}

func (e *MissingCapacityError) Error() string {
	return fmt.Sprintf("match: mentor %s is not listed in the mentor capacities", e.Mentor)
}

func (e *MissingCapacityError) Unwrap() error { return ErrInvalidProblemStatement }

// RowError scopes a defect to the row that caused it. Index is 0-based;
// the rendered message is 1-based to match how people count file lines.
type RowError struct {
	Source string // human name of the input, e.g. "mentor capacities"
	Index  int    // 0-based row index within that input
	Err    error  // the underlying defect
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%v (line %d of %s)", e.Err, e.Index+1, e.Source)
}

func (e *RowError) Unwrap() error { return e.Err }

// IOError wraps a raw filesystem failure into the domain error family so
// callers never see naked I/O errors. Op names the attempted operation,
// e.g. "read mentee rankings" or "write results".
type IOError struct {
	Path string
	Op   string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("match: failed to %s at %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() []error { return []error{ErrInvalidProblemStatement, e.Err} }
