// Package hr implements the many-to-one stable-matching algorithm for the
// Hospital/Resident problem: mentees are assigned to capacity-bounded
// mentors via deferred acceptance (a Gale–Shapley variant).
//
// Inputs are plain identifier maps — no graph machinery — because the
// problem is fully described by two preference tables and a capacity table:
//
//	menteePrefs map[string][]string  // mentee → mentors, best first
//	mentorPrefs map[string][]string  // mentor → mentees, best first
//	capacities  map[string]int       // mentor → max mentees (≥ 1)
//
// Both tables must hold strict total orders: every mentee ranks every
// mentor and vice versa. Partial rankings are not accepted here; expand
// them first with poset.Complete.
//
// Exactly one side receives its best-possible stable outcome, selected by
// the Optimality argument (MenteeOptimal or MentorOptimal). The returned
// assignment is always stable and capacity-respecting; with aggregate
// capacity at or above the mentee count, every mentee is assigned.
//
// # Errors
//
//	ErrNotTotal           - a list is not a permutation of the other side.
//	ErrUnknownParticipant - a list or capacity names a stranger.
//	ErrBadCapacity        - a capacity is < 1.
//
// See Solve for the algorithm outline and complexity.
package hr
