package hr

import "errors"

var (
	// ErrNotTotal indicates a preference list that is not a strict total
	// order over the opposite side (wrong length, or a repeated entry).
	ErrNotTotal = errors.New("hr: preference lists must be total orders over the opposite side")

	// ErrUnknownParticipant indicates a preference list or capacity map
	// referencing a participant the other inputs do not know.
	ErrUnknownParticipant = errors.New("hr: participant not found")

	// ErrBadCapacity indicates a mentor capacity below one.
	ErrBadCapacity = errors.New("hr: capacities must be strictly positive")
)
