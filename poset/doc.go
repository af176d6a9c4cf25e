// Package poset expands partial preference rankings into strict total
// orders, the precondition every deferred-acceptance solver demands.
//
// A participant rarely ranks the whole opposite side. Complete closes that
// gap with three preference bands per participant:
//
//	Tier 1 — explicit:              the stated ranking, verbatim.
//	Tier 2 — reciprocated-unranked: opponents who ranked the participant
//	                                back but were not ranked themselves.
//	Tier 3 — mutually silent:       everyone else.
//
// Tier membership is deterministic; the order WITHIN Tiers 2 and 3 is
// uniformly shuffled, independently per tier and per call. Pass a seeded
// source via Options to pin tie orders under test; the default source is
// time-seeded so production runs stay unbiased run to run.
//
// Complete never mutates its input: it returns a brand-new, independently
// valid ProblemStatement with capacities copied through unchanged.
//
// See Complete for the full algorithm outline and rationale.
package poset
