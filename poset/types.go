package poset

import (
	"math/rand"
	"time"
)

// Options configures Complete.
//
// Fields:
//   - Rand — the source used to shuffle tied tiers. Completion is
//     intentionally non-deterministic across calls when ties exist;
//     supply a seeded source to make tie orders reproducible.
//
// Example:
//
//	opts := poset.Seeded(42)       // reproducible ties
//	total, err := poset.Complete(st, opts)
//
//	total, err = poset.Complete(st, nil) // fresh entropy per call
type Options struct {
	Rand *rand.Rand
}

// DefaultOptions returns Options backed by a fresh time-seeded source, so
// repeated completions break ties differently run to run.
func DefaultOptions() *Options {
	return &Options{Rand: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Seeded returns Options backed by a deterministic source. Two completions
// of the same statement with the same seed produce identical total orders.
func Seeded(seed int64) *Options {
	return &Options{Rand: rand.New(rand.NewSource(seed))}
}
