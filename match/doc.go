// Package match formulates and validates the two-sided, capacitated
// mentee/mentor assignment problem. It owns the canonical data model
// (rankings and capacities), the structural validation pass, the raw-row
// normalization boundary, and the single error family every defect in the
// pipeline belongs to.
//
// The key entry points are:
//
//   - NewProblemStatement
//
//   - Builds the immutable ProblemStatement aggregate from canonical maps.
//
//   - Validates at construction; a statement that exists is well-formed.
//
//   - Defensively copies inputs; accessors return copies.
//
//   - Normalize
//
//   - Converts raw row records (rank implicit in column position) into a
//     validated ProblemStatement.
//
//   - Coerces capacity strings to integers exactly once, at this boundary.
//
//   - Tags each per-row defect with its 0-based row index and source name.
//
//   - Finishes with the aggregate feasibility check
//     sum(capacities) ≥ count(mentees).
//
//   - Validate
//
//   - The shared structural pass: duplicate entries, unknown opponent
//     references, missing capacity entries.
//
//   - Accepts an injected Scorer for typo suggestions; suggestions are
//     advisory and never change whether validation fails.
//
// # Universes
//
// The mentee universe is exactly the key set of the mentee-ranking map; the
// mentor universe is exactly the key set of the capacity map. Validation
// guarantees every name appearing inside any ranking belongs to the
// opposite universe, so downstream stages never re-check membership.
//
// # Errors
//
// Everything wraps ErrInvalidProblemStatement; branch on kind with
// errors.As, never by string matching:
//
//	DuplicateRankingError       - a ranking list repeats an entry.
//	UnknownMentorError          - mentee ranked a mentor with no capacity entry.
//	UnknownMenteeError          - mentor ranked a mentee with no ranking row.
//	MissingCapacityError        - mentor has rankings but no capacity.
//	RowError                    - any per-row defect, with index and source.
//	IOError                     - filesystem failure, re-wrapped by matchio.
//	ErrInsufficientCapacity     - aggregate capacity below the mentee count.
//
// All checks fail fast: the first violation stops the pipeline. Every
// failure is a deterministic input defect; nothing here retries.
package match
