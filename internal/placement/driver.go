package placement

import (
	"sort"

	"github.com/owowisp/mosswright/internal/generrors"
	"github.com/owowisp/mosswright/internal/item"
	"github.com/owowisp/mosswright/internal/logic"
	"github.com/owowisp/mosswright/internal/progression"
	"github.com/owowisp/mosswright/internal/reach"
	"github.com/owowisp/mosswright/internal/seedoutput"
	"github.com/owowisp/mosswright/internal/seedrng"
	"github.com/owowisp/mosswright/internal/settings"
)

// BuildFunc constructs a fresh set of per-world generation states for one
// generation attempt, seeded by r. Run calls this once per retry (spec
// §4.4 "Error conditions": the driver retries with a fresh RNG seed
// derived from the outer seed), so callers must not share mutable Pool or
// Player state across invocations.
type BuildFunc func(r *seedrng.RNG) ([]*WorldContext, error)

// Run drives generation to completion: preplacements, then the main loop
// (spec §4.4 step sequence), retrying up to maxGenerationAttempts times on
// a progression-exhaustion failure before giving up fatally.
func Run(st *settings.Settings, masterSeed uint64, configHash []byte, preplacements []Preplacement, build BuildFunc) (*seedoutput.SeedUniverse, error) {
	topRNG := seedrng.New(masterSeed, "placement", configHash)

	var lastErr error
	for attempt := 0; attempt < maxGenerationAttempts; attempt++ {
		seedStr := topRNG.DerivedSeedString(attempt)
		attemptRNG := seedrng.New(masterSeed, "placement-attempt-"+seedStr, configHash)

		worlds, err := build(attemptRNG)
		if err != nil {
			return nil, err
		}

		universe := seedoutput.NewSeedUniverse(len(worlds), attemptRNG)
		for i, w := range worlds {
			universe.Worlds[i] = w.World
		}

		c := &Context{Settings: st, Worlds: worlds, RNG: attemptRNG, Universe: universe}
		if err := c.ProcessPreplacements(preplacements); err != nil {
			return nil, err
		}
		if err := c.runMainLoop(); err != nil {
			if !generrors.IsKind(err, generrors.KindGeneration) {
				return nil, err
			}
			lastErr = err
			continue
		}
		return c.Universe, nil
	}
	return nil, generrors.GenerationWrap(lastErr, "exhausted %d generation attempts", maxGenerationAttempts)
}

func (c *Context) runMainLoop() error {
	if err := c.validateSpawns(); err != nil {
		return err
	}

	for {
		for _, wc := range c.Worlds {
			wc.Reach = reach.Run(wc.Graph, wc.Spawn, wc.Player, wc.SpawnOrbs)
		}

		allDone := true
		for _, wc := range c.Worlds {
			if !wc.allReached() {
				allDone = false
				break
			}
		}
		if allDone {
			break
		}

		c.beginSpoilerGroup()
		c.recordReachable()

		c.forceKeystones()

		if !c.randomPlacementStep() {
			if !c.forcedProgressionStep() {
				// Solver exhaustion (spec §4.3 failure cascade): before
				// giving up on this attempt, try to flush the remaining
				// pool into any still-reachable empty slot. Only a flush
				// that still leaves locations unplaced is fatal.
				if err := c.FlushItemPool(); err != nil {
					return err
				}
				continue
			}
		}
	}

	if err := c.fillRemainder(); err != nil {
		return err
	}
	c.emitGoalEvents()
	return nil
}

// validateSpawns fails fatally if any world's configured spawn index isn't
// a spawnable anchor (spec §4.4 "Error conditions": "Missing spawn anchor
// -> fatal before loop starts").
func (c *Context) validateSpawns() error {
	for _, wc := range c.Worlds {
		if wc.Spawn < 0 || wc.Spawn >= len(wc.Graph.Nodes) {
			return generrors.Config("world %d: spawn index %d out of bounds", wc.Index, wc.Spawn)
		}
		node := wc.Graph.Node(wc.Spawn)
		if node.Kind != logic.NodeAnchor || !node.CanSpawn {
			return generrors.Config("world %d: node %q is not a valid spawn anchor", wc.Index, node.Identifier)
		}
	}
	return nil
}

// forceKeystones places missing keystones at reached empty slots whenever
// a reached door requires more than the player currently holds, preventing
// a key-lock (spec §4.4 step sequence, "Force keystones").
func (c *Context) forceKeystones() {
	for _, wc := range c.Worlds {
		for _, door := range wc.KeystoneDoors {
			idx, ok := wc.Graph.IndexOf(door.Identifier)
			if !ok || wc.Reach == nil || !wc.Reach.IsReached(idx) {
				continue
			}
			owned := int(wc.Player.Inventory.Resource(item.Keystone))
			for owned < door.Count {
				slots := wc.reachedEmptySlots()
				if len(slots) == 0 {
					break
				}
				sort.Ints(slots)
				keystoneItem := item.ResourceItem(item.Keystone)
				if !wc.Pool.Take(keystoneItem) {
					break
				}
				c.recordPlacement(wc, slots[0], wc, keystoneItem, false)
				owned++
			}
		}
	}
}

// randomPlacementStep fills a share of each world's reached empty slots,
// reserving roughly half as placeholders for a later forced-progression
// pass (spec §4.4 step sequence, "Random placement"). Returns whether any
// placement happened this step.
func (c *Context) randomPlacementStep() bool {
	placedAny := false
	for _, wc := range c.Worlds {
		empties := wc.reachedEmptySlots()
		if len(empties) == 0 {
			continue
		}

		order := append([]int(nil), empties...)
		c.RNG.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

		reserve := len(order) / 2
		for _, idx := range order[:reserve] {
			wc.Placeholders[idx] = true
		}

		for _, idx := range order[reserve:] {
			node := wc.Graph.Node(idx)

			remainingSpiritSlots := float64(wc.SpiritLight.RemainingLocations())
			remainingSlots := float64(len(wc.remainingSlots()))
			prob := 0.0
			if remainingSlots > 0 {
				prob = remainingSpiritSlots / remainingSlots
			}

			if !node.Shop && wc.SpiritLight.RemainingLocations() > 0 && c.RNG.Float64() < prob {
				amount := wc.SpiritLight.Next(c.RNG)
				c.recordPlacement(wc, idx, wc, item.SpiritLightItem(amount), false)
				placedAny = true
				continue
			}

			target := chooseTargetWorld(wc, c.Worlds, c.RNG)
			it, ok := target.Pool.RandomItem(c.RNG)
			if !ok {
				continue
			}
			if target.Index == wc.Index && wc.UnsharedItems > 0 {
				wc.UnsharedItems--
			}
			c.recordPlacement(wc, idx, target, it, false)
			placedAny = true
		}
	}
	return placedAny
}

// forcedProgressionStep invokes the progression solver for the world with
// the most remaining placements first (spec §5.1 "progression_slots()")
// and force-places its result, trying the next world down if the first
// yields nothing. Returns whether any world produced a placement.
func (c *Context) forcedProgressionStep() bool {
	for _, wc := range progressionWorldOrder(c.Worlds) {
		items := progression.Solve(wc.Graph, wc.Player, wc.Reach, wc.SpawnOrbs, wc.Spawn, wc.Pool, c.RNG)
		if items == nil {
			continue
		}
		for _, it := range items {
			wc.Pool.Take(it)
			if !c.forcePlaceOne(wc, it) {
				c.placeAtSpawn(wc, wc, it)
			}
		}
		return true
	}
	return false
}

func progressionWorldOrder(worlds []*WorldContext) []*WorldContext {
	out := append([]*WorldContext(nil), worlds...)
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i].remainingSlots()) > len(out[j].remainingSlots())
	})
	return out
}

// forcePlaceOne places it at a reached empty slot, falling back to one of
// the PreferredSpawnSlots virtual spawn slots while any remain, then to a
// placeholder slot, and finally to any remaining spawn slot (spec §4.4
// "Spawn slots and placeholders").
func (c *Context) forcePlaceOne(wc *WorldContext, it item.Item) bool {
	slots := wc.reachedEmptySlots()
	if len(slots) == 0 && wc.SpawnSlots > SpawnSlots-PreferredSpawnSlots {
		wc.SpawnSlots--
		c.placeAtSpawn(wc, wc, it)
		return true
	}
	if len(slots) == 0 {
		slots = wc.placeholderSlots()
	}
	if len(slots) > 0 {
		sort.Ints(slots)
		c.recordPlacement(wc, slots[0], wc, it, false)
		return true
	}
	if wc.SpawnSlots > 0 {
		wc.SpawnSlots--
		c.placeAtSpawn(wc, wc, it)
		return true
	}
	return false
}

// fillRemainder pads out every slot the main loop left unfilled with
// Spirit-Light, or Gorlek Ore for shop slots which cannot carry Spirit
// Light (spec §4.4 step sequence, step 3).
func (c *Context) fillRemainder() error {
	for _, wc := range c.Worlds {
		for _, idx := range wc.remainingSlots() {
			node := wc.Graph.Node(idx)
			if node.Shop || wc.SpiritLight.RemainingLocations() == 0 {
				c.recordPlacement(wc, idx, wc, item.ResourceItem(item.Ore), false)
				continue
			}
			amount := wc.SpiritLight.Next(c.RNG)
			c.recordPlacement(wc, idx, wc, item.SpiritLightItem(amount), false)
		}
	}
	return nil
}

// FlushItemPool attempts to force-place any pool items whose effect is
// safe as a last-resort default (pure cosmetic Message items) before
// giving up, improving on the original generator's always-failing TODO
// for this path (spec §5.1 "flush_item_pool failure path").
func (c *Context) FlushItemPool() error {
	var stuckWorld *WorldContext
	stuckRemaining := -1
	for _, wc := range c.Worlds {
		wc.Pool.Each(func(it item.Item, count uint32) {
			if it.Kind != item.KindMessage {
				return
			}
			for i := uint32(0); i < count; i++ {
				if !c.forcePlaceOne(wc, it) {
					break
				}
				wc.Pool.Take(it)
			}
		})
		remaining := len(wc.remainingSlots())
		if remaining > stuckRemaining {
			stuckRemaining = remaining
			stuckWorld = wc
		}
	}
	if stuckWorld != nil && stuckRemaining > 0 {
		return generrors.Generation("world %d: %d location(s) still unplaced after flushing the item pool", stuckWorld.Index, stuckRemaining)
	}
	return nil
}

func (c *Context) beginSpoilerGroup() {
	if c.Universe == nil || c.Universe.Spoiler == nil {
		return
	}
	c.Universe.Spoiler.Groups = append(c.Universe.Spoiler.Groups, seedoutput.SpoilerGroup{})
}

func (c *Context) recordReachable() {
	if c.Universe == nil || c.Universe.Spoiler == nil || len(c.Universe.Spoiler.Groups) == 0 {
		return
	}
	reachable := make([][]seedoutput.NodeSummary, len(c.Worlds))
	for i, wc := range c.Worlds {
		var list []seedoutput.NodeSummary
		for _, idx := range wc.NeedsPlacement {
			if wc.Reach != nil && wc.Reach.IsReached(idx) {
				n := wc.Graph.Node(idx)
				list = append(list, seedoutput.NodeSummary{Identifier: n.Identifier, Zone: n.Zone})
			}
		}
		reachable[i] = list
	}
	c.Universe.Spoiler.Groups[len(c.Universe.Spoiler.Groups)-1].Reachable = reachable
}

// recordPlacement applies the placement's events/inventory effects and
// files a SpoilerPlacement entry in the current group (or Preplacements).
func (c *Context) recordPlacement(origin *WorldContext, nodeIdx int, target *WorldContext, it item.Item, preplacement bool) {
	node := origin.Graph.Node(nodeIdx)
	c.grantAt(origin, nodeIdx, target, it)
	delete(origin.Placeholders, nodeIdx)

	if c.Universe == nil || c.Universe.Spoiler == nil {
		return
	}
	sp := seedoutput.SpoilerPlacement{
		OriginWorldIndex: origin.Index,
		TargetWorldIndex: target.Index,
		Location:         seedoutput.NodeSummary{Identifier: node.Identifier, Zone: node.Zone},
		Item:             seedoutput.SpoilerItem{Code: it.Code(), Name: it.String()},
	}
	if preplacement {
		c.Universe.Spoiler.Preplacements = append(c.Universe.Spoiler.Preplacements, sp)
		return
	}
	if len(c.Universe.Spoiler.Groups) == 0 {
		c.beginSpoilerGroup()
	}
	g := &c.Universe.Spoiler.Groups[len(c.Universe.Spoiler.Groups)-1]
	g.Placements = append(g.Placements, sp)
}

// placeAtSpawn grants it directly at the player's spawn, for forced
// progression that has run out of reached physical slots (spec §4.4
// "Spawn slots and placeholders").
func (c *Context) placeAtSpawn(origin, target *WorldContext, it item.Item) {
	trigger := seedoutput.SpawnTrigger()
	if origin.Index == target.Index {
		origin.World.AddEvent(seedoutput.PickupEvent(trigger, it))
	} else {
		member := c.nextCrossRef()
		origin.World.AddEvent(seedoutput.MultiworldSendEvent(trigger, multiworldGroup, member, target.Index))
		target.World.AddEvent(seedoutput.MultiworldReceiveEvent(multiworldGroup, member, it))
	}
	target.Player.Inventory.Grant(it, 1)

	if c.Universe == nil || c.Universe.Spoiler == nil || len(c.Universe.Spoiler.Groups) == 0 {
		return
	}
	g := &c.Universe.Spoiler.Groups[len(c.Universe.Spoiler.Groups)-1]
	g.ForcedItems = append(g.ForcedItems, seedoutput.SpoilerItem{Code: it.Code(), Name: it.String()})
}
