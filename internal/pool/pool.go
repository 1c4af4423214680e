// Package pool implements the remaining-item multiset and the
// deterministic spirit-light batch provider the placement driver draws
// from (spec §3 "Item pool & Spirit-Light provider", §4.4 "Spirit-Light
// provider").
package pool

import (
	"sort"

	"github.com/owowisp/mosswright/internal/generrors"
	"github.com/owowisp/mosswright/internal/item"
	"github.com/owowisp/mosswright/internal/seedrng"
)

// Pool is a multiset of remaining, not-yet-placed items.
type Pool struct {
	counts map[string]uint32
	items  map[string]item.Item
}

// New returns an empty pool.
func New() *Pool {
	return &Pool{counts: make(map[string]uint32), items: make(map[string]item.Item)}
}

// Add inserts n copies of it into the pool.
func (p *Pool) Add(it item.Item, n uint32) {
	if n == 0 {
		return
	}
	code := it.Code()
	p.items[code] = it
	p.counts[code] += n
}

// Take removes one copy of it from the pool, returning false if none
// remain.
func (p *Pool) Take(it item.Item) bool {
	code := it.Code()
	if p.counts[code] == 0 {
		return false
	}
	p.counts[code]--
	return true
}

// Count returns how many copies of it remain.
func (p *Pool) Count(it item.Item) uint32 {
	return p.counts[it.Code()]
}

// Len returns the total number of items remaining across all kinds.
func (p *Pool) Len() int {
	total := 0
	for _, n := range p.counts {
		total += int(n)
	}
	return total
}

// Empty reports whether the pool has nothing left.
func (p *Pool) Empty() bool {
	return p.Len() == 0
}

// sortedCodes returns every item code with count > 0, in a stable sorted
// order — random draws iterate via this so that identical RNG draw
// sequences always see items in the same order regardless of Go's map
// iteration order (spec §5 ordering guarantees).
func (p *Pool) sortedCodes() []string {
	var out []string
	for code, n := range p.counts {
		if n > 0 {
			out = append(out, code)
		}
	}
	sort.Strings(out)
	return out
}

// RandomItem draws and removes a uniformly random remaining item. Returns
// false if the pool is empty.
func (p *Pool) RandomItem(r *seedrng.RNG) (item.Item, bool) {
	codes := p.sortedCodes()
	if len(codes) == 0 {
		return item.Item{}, false
	}
	weights := make([]float64, len(codes))
	for i, code := range codes {
		weights[i] = float64(p.counts[code])
	}
	idx := r.WeightedChoice(weights)
	if idx < 0 {
		return item.Item{}, false
	}
	code := codes[idx]
	p.counts[code]--
	return p.items[code], true
}

// Each iterates items with count > 0 in stable sorted order.
func (p *Pool) Each(fn func(it item.Item, count uint32)) {
	for _, code := range p.sortedCodes() {
		fn(p.items[code], p.counts[code])
	}
}

const totalSpiritLight = 20000

// SpiritLightProvider splits the fixed total spirit-light pool across
// remaining non-shop locations as the placement driver consumes slots.
type SpiritLightProvider struct {
	remainingAmount    uint64
	remainingLocations uint64
}

// NewSpiritLightProvider returns a provider seeded with the default total
// (spec §4.4 "Spirit-Light provider").
func NewSpiritLightProvider(totalLocations uint64) *SpiritLightProvider {
	return &SpiritLightProvider{remainingAmount: totalSpiritLight, remainingLocations: totalLocations}
}

// Next draws the next Spirit-Light batch size, jittered by a uniform factor
// in [0.75, 1.25] and clamped to the remaining amount. Decrements both the
// remaining amount and the remaining location counters.
func (s *SpiritLightProvider) Next(r *seedrng.RNG) uint32 {
	if s.remainingLocations == 0 {
		generrors.Invariant("pool: SpiritLightProvider.Next called with zero remaining locations")
	}
	jitter := r.Float64Range(0.75, 1.25)
	amount := float64(s.remainingAmount) / float64(s.remainingLocations) * jitter
	batch := uint64(amount)
	if batch > s.remainingAmount {
		batch = s.remainingAmount
	}
	s.remainingAmount -= batch
	s.remainingLocations--
	if batch > 1<<31 {
		generrors.Invariant("pool: spirit light batch overflowed uint32 range")
	}
	return uint32(batch)
}

// RemainingAmount reports the spirit-light total not yet distributed.
func (s *SpiritLightProvider) RemainingAmount() uint64 { return s.remainingAmount }

// RemainingLocations reports how many non-shop slots the provider still
// expects to fill.
func (s *SpiritLightProvider) RemainingLocations() uint64 { return s.remainingLocations }
