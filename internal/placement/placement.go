// Package placement implements the driver that interleaves reachability,
// forced-keystone progression, random placement, and forced progression
// until every world's locations are assigned an item (spec §4.4).
package placement

import (
	"github.com/owowisp/mosswright/internal/inventory"
	"github.com/owowisp/mosswright/internal/item"
	"github.com/owowisp/mosswright/internal/logic"
	"github.com/owowisp/mosswright/internal/orbs"
	"github.com/owowisp/mosswright/internal/pool"
	"github.com/owowisp/mosswright/internal/reach"
	"github.com/owowisp/mosswright/internal/seedoutput"
	"github.com/owowisp/mosswright/internal/seedrng"
	"github.com/owowisp/mosswright/internal/settings"
)

// Constants named verbatim after the original generator's constants of the
// same name (spec §5.1 supplemented features).
const (
	// SpawnSlots is the number of virtual slots at the spawn anchor the
	// driver may force-place items into when no reached slot is available.
	SpawnSlots = 7
	// PreferredSpawnSlots is how many of SpawnSlots are used before the
	// driver resorts to placeholders.
	PreferredSpawnSlots = 3
	// UnsharedItems is how many draws from a world's own pool are
	// preferred over a shared/multiworld pool before it falls back to
	// drawing from other worlds' pools.
	UnsharedItems = 5
	// TotalSpiritLight mirrors pool's internal total (see
	// internal/pool.NewSpiritLightProvider); named here too since the
	// placement driver is the component spec §4.4 attributes it to.
	TotalSpiritLight = 20000

	// maxGenerationAttempts bounds the driver's seed-retry loop (spec §4.4
	// "Error conditions": fatal after a fixed retry count, default 20).
	maxGenerationAttempts = 20
)

// KeystoneDoor names a door gated on N keystones, for force-keystone
// placement (spec §5.1: "Keystone-door forcing is per-world, not global").
type KeystoneDoor struct {
	Identifier string
	Count      int
}

// Preplacement is a `!preplace` directive: place a specific item at a named
// location, or at a uniformly random pickup location within a zone if
// NodeIdentifier is empty.
type Preplacement struct {
	NodeIdentifier string
	Zone           string
	Item           item.Item
	// TargetWorld selects the receiving world for a multiworld
	// preplacement; -1 means the same world as the origin.
	TargetWorld int
}

// WorldContext is the per-world mutable generation state (spec §3
// "WorldContext").
type WorldContext struct {
	Index int

	Graph         *logic.Graph
	Player        *inventory.Player
	Spawn         int
	SpawnOrbs     orbs.Orbs
	Pool          *pool.Pool
	SpiritLight   *pool.SpiritLightProvider
	KeystoneDoors []KeystoneDoor

	// NeedsPlacement holds every pickup/quest node index awaiting an item,
	// in the graph's stable node-index order.
	NeedsPlacement []int
	// Placed marks which of those node indices already carry an item.
	Placed map[int]bool
	// Placeholders marks reached empty slots deliberately left open for a
	// future forced-progression placement.
	Placeholders map[int]bool

	UnsharedItems int
	SpawnSlots    int

	Reach *reach.Result
	World *seedoutput.SeedWorld
}

// NewWorldContext builds a world's generation state. Its SpawnSlots and
// UnsharedItems counters start at the package constants of the same names.
func NewWorldContext(index int, g *logic.Graph, ws settings.WorldSettings, spawn int, spawnOrbs orbs.Orbs, p *pool.Pool, keystoneDoors []KeystoneDoor) *WorldContext {
	needsPlacement := g.PickupIndices()
	nonShop := 0
	for _, idx := range needsPlacement {
		if !g.Node(idx).Shop {
			nonShop++
		}
	}
	return &WorldContext{
		Index:          index,
		Graph:          g,
		Player:         inventory.NewPlayer(ws),
		Spawn:          spawn,
		SpawnOrbs:      spawnOrbs,
		Pool:           p,
		SpiritLight:    pool.NewSpiritLightProvider(uint64(nonShop)),
		KeystoneDoors:  keystoneDoors,
		NeedsPlacement: needsPlacement,
		Placed:         make(map[int]bool, len(needsPlacement)),
		Placeholders:   make(map[int]bool),
		UnsharedItems:  UnsharedItems,
		SpawnSlots:     SpawnSlots,
		World:          &seedoutput.SeedWorld{Index: index},
	}
}

// remainingSlots returns the NeedsPlacement node indices not yet assigned.
func (wc *WorldContext) remainingSlots() []int {
	var out []int
	for _, idx := range wc.NeedsPlacement {
		if !wc.Placed[idx] {
			out = append(out, idx)
		}
	}
	return out
}

// reachedEmptySlots returns remaining, unplaced slots the current reach
// result has reached, excluding ones already held as placeholders.
func (wc *WorldContext) reachedEmptySlots() []int {
	var out []int
	for _, idx := range wc.remainingSlots() {
		if wc.Placeholders[idx] {
			continue
		}
		if wc.Reach != nil && wc.Reach.IsReached(idx) {
			out = append(out, idx)
		}
	}
	return out
}

// placeholderSlots returns the unplaced slots currently held as
// placeholders; each was a reached empty slot when it was reserved, and no
// reach check is repeated here. These are eligible for forced progression
// placement.
func (wc *WorldContext) placeholderSlots() []int {
	var out []int
	for idx := range wc.Placeholders {
		if wc.Placed[idx] {
			continue
		}
		out = append(out, idx)
	}
	return out
}

// allReached reports whether every needs_placement node has been reached,
// the driver's main-loop exit condition (spec §4.4 step sequence: "If
// every needs_placement is reached, exit loop").
func (wc *WorldContext) allReached() bool {
	if wc.Reach == nil {
		return false
	}
	for _, idx := range wc.NeedsPlacement {
		if !wc.Reach.IsReached(idx) {
			return false
		}
	}
	return true
}

// Context is the top-level shared generation state across all worlds (spec
// §4.4 "Multiworld": "The counter k is drawn from a shared
// monotonically-increasing integer in the top-level Context").
type Context struct {
	Settings *settings.Settings
	Worlds   []*WorldContext
	Universe *seedoutput.SeedUniverse
	RNG      *seedrng.RNG

	crossRefCounter uint32
}

// nextCrossRef allocates the next multiworld cross-reference member id
// (UberIdentifier{group: 12, member: k}).
func (c *Context) nextCrossRef() uint32 {
	c.crossRefCounter++
	return c.crossRefCounter
}

const multiworldGroup = 12
