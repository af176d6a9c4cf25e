// Package mentormatch turns messy, partial mentee/mentor preference lists
// into a solved, stable, capacity-bounded assignment — from CSV in to CSV out.
//
// 🚀 What is mentormatch?
//
//	A small, focused toolkit for the many-to-one (Hospital/Resident style)
//	matching market between mentees and mentors:
//		• Validation: structural checks over rankings & capacities with
//		  typo suggestions for near-miss names
//		• Normalization: raw CSV rows → an immutable, validated ProblemStatement
//		• Completion: partial rankings expanded into fair total orders
//		  (explicit > reciprocated-unranked > mutually-silent)
//		• Solving: capacity-bounded Gale–Shapley, mentee- or mentor-optimal
//
// ✨ Why choose mentormatch?
//
//   - Fail-fast diagnostics – every defect names the participant, row, and
//     the closest known name when a typo is the likely cause
//   - Fairness by construction – stated preferences are never reordered;
//     genuine ties are randomized, not biased by input order
//   - Reproducible when you need it – tie-breaking accepts a seeded source
//   - Pure, synchronous core – no goroutines, no global state, no surprises
//
// Everything is organized under five subpackages plus one binary:
//
//	match/    — ProblemStatement, validation, normalization & the error family
//	poset/    — partial-order → total-order completion (Tier 1/2/3)
//	hr/       — the Hospital/Resident deferred-acceptance solver
//	solver/   — adapter wiring completion and solving together
//	matchio/  — CSV reading/writing with domain-wrapped I/O errors
//	cmd/mentormatch — the command-line interface
//
// Quick pipeline sketch:
//
//	rows ──▶ match.Normalize ──▶ poset.Complete ──▶ solver.Solve ──▶ CSV
//
// Dive into each package's doc.go for the full contract, error catalogue,
// and worked examples.
package mentormatch
