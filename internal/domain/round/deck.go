package round

import (
	"math/rand"
)

// Deck deals question IDs in passes. Every pass is a fresh uniform permutation of
// all IDs; a new pass is shuffled once the previous one has been fully dealt.
// A Deck is not safe for concurrent use.
type Deck struct {
	size  int
	rng   *rand.Rand
	order []int
	next  int
	pass  int
}

// New creates a deck over IDs [0, size).
func New(size int) *Deck {
	return NewWithConfig(size, DefaultConfig())
}

// NewWithConfig creates a deck over IDs [0, size) using the given configuration.
func NewWithConfig(size int, config Config) *Deck {
	return &Deck{
		size: size,
		rng:  rand.New(rand.NewSource(config.seed())),
	}
}

// Next returns the next question ID, reshuffling when a pass completes.
// It returns -1 for an empty deck.
func (d *Deck) Next() int {
	if d.size <= 0 {
		return -1
	}
	if d.order == nil || d.next >= len(d.order) {
		d.order = shuffleIDs(d.rng, d.size)
		d.next = 0
		d.pass++
	}

	id := d.order[d.next]
	d.next++
	return id
}

// Pass returns the 1-based number of the pass currently being dealt (0 before the first Next).
func (d *Deck) Pass() int {
	return d.pass
}

// shuffleIDs returns a random permutation of [0, n).
func shuffleIDs(rng *rand.Rand, n int) []int {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i
	}

	rng.Shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})

	return ids
}
