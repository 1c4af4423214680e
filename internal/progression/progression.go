// Package progression implements the solver that, when a placement step
// finds no newly-reachable locations, chooses an inventory delta likely to
// unlock further progress (spec §4.3).
package progression

import (
	"math"
	"sort"

	"github.com/owowisp/mosswright/internal/inventory"
	"github.com/owowisp/mosswright/internal/item"
	"github.com/owowisp/mosswright/internal/logic"
	"github.com/owowisp/mosswright/internal/orbs"
	"github.com/owowisp/mosswright/internal/pool"
	"github.com/owowisp/mosswright/internal/reach"
	"github.com/owowisp/mosswright/internal/requirement"
	"github.com/owowisp/mosswright/internal/seedrng"
)

// Candidate is an inventory delta the solver considered.
type Candidate struct {
	Items  []item.Item
	Weight float64
}

// Solve runs the blocking-requirement enumeration, candidate construction,
// weighting, and weighted sampling described in spec §4.3. Returns the
// sampled candidate's items, or nil if no candidate unlocks anything new.
func Solve(g *logic.Graph, p *inventory.Player, current *reach.Result, spawnOrbs orbs.Orbs, spawn int, avail *pool.Pool, r *seedrng.RNG) []item.Item {
	ctx := requirement.Context{Settings: p.Settings, IsReached: current.IsReached}

	blocking := collectBlockingLeaves(g, p, current, ctx)
	candidates := buildCandidates(blocking, avail, p)
	if len(candidates) == 0 {
		return nil
	}

	baseline := len(current.Reached)
	weights := make([]float64, len(candidates))
	for i, c := range candidates {
		trial := p.Clone()
		for _, it := range c.Items {
			trial.Inventory.Grant(it, 1)
		}
		trialResult := reach.Run(g, spawn, trial, spawnOrbs)
		gain := len(trialResult.Reached) - baseline
		if gain <= 0 {
			weights[i] = 0
			continue
		}
		cost := 1.0
		for _, it := range c.Items {
			cost += float64(it.Cost())
		}
		weights[i] = float64(gain) / math.Pow(cost, 1.5)
	}

	idx := r.WeightedChoice(weights)
	if idx < 0 {
		return nil
	}
	return candidates[idx].Items
}

// collectBlockingLeaves enumerates every leaf requirement that is currently
// failing on a connection or refill reachable from an already-reached
// anchor (spec §4.3 step 1).
func collectBlockingLeaves(g *logic.Graph, p *inventory.Player, current *reach.Result, ctx requirement.Context) []requirement.Requirement {
	var out []requirement.Requirement
	anchorIdxs := sortedReachedAnchors(g, current)
	for _, ai := range anchorIdxs {
		anchor := g.Node(ai)
		in := current.Orbs[ai]
		for _, conn := range anchor.Connections {
			if !conn.Requirement.Check(p, in, ctx).Empty() {
				continue
			}
			out = append(out, requirement.Leaves(conn.Requirement, ctx)...)
		}
		for _, refill := range anchor.Refills {
			if !refill.Requirement.Check(p, in, ctx).Empty() {
				continue
			}
			out = append(out, requirement.Leaves(refill.Requirement, ctx)...)
		}
	}
	return out
}

func sortedReachedAnchors(g *logic.Graph, current *reach.Result) []int {
	var out []int
	for i, n := range g.Nodes {
		if n.Kind == logic.NodeAnchor && current.IsReached(i) {
			out = append(out, i)
		}
	}
	sort.Ints(out)
	return out
}

// buildCandidates turns blocking leaves into concrete inventory deltas
// (spec §4.3 step 2-3), deduplicating by the item set's sorted code list
// and dropping deltas the pool can't actually supply.
func buildCandidates(leaves []requirement.Requirement, avail *pool.Pool, p *inventory.Player) []Candidate {
	seen := make(map[string]bool)
	var out []Candidate

	add := func(items []item.Item) {
		if len(items) == 0 {
			return
		}
		need := make(map[string]uint32)
		for _, it := range items {
			need[it.Code()]++
			if avail.Count(it) < need[it.Code()] {
				return
			}
		}
		key := candidateKey(items)
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, Candidate{Items: items})
	}

	for _, leaf := range leaves {
		switch leaf.Kind {
		case requirement.KSkill, requirement.KNonConsumingEnergySkill:
			if p.Inventory.HasSkill(leaf.Skill) {
				continue
			}
			add([]item.Item{item.SkillItem(leaf.Skill)})
		case requirement.KEnergySkill:
			items := []item.Item{}
			if !p.Inventory.HasSkill(leaf.Skill) {
				items = append(items, item.SkillItem(leaf.Skill))
			}
			needed := leaf.Uses * leaf.Skill.EnergyCost()
			haveEnergy := p.MaxEnergy()
			if needed > haveEnergy {
				fragments := uint32(math.Ceil(float64((needed - haveEnergy) / 0.5)))
				for i := uint32(0); i < fragments; i++ {
					items = append(items, item.ResourceItem(item.Energy))
				}
			}
			add(items)
		case requirement.KResource:
			owned := p.Inventory.Resource(leaf.Resource)
			if owned >= leaf.ResourceN {
				continue
			}
			missing := leaf.ResourceN - owned
			items := make([]item.Item, 0, missing)
			for i := uint32(0); i < missing; i++ {
				items = append(items, item.ResourceItem(leaf.Resource))
			}
			add(items)
		case requirement.KShard:
			if p.Inventory.HasShard(leaf.Shard) {
				continue
			}
			add([]item.Item{item.ShardItem(leaf.Shard)})
		case requirement.KTeleporter:
			if p.Inventory.HasTeleporter(leaf.Teleporter) {
				continue
			}
			add([]item.Item{item.TeleporterItem(leaf.Teleporter)})
		case requirement.KWater:
			if p.Inventory.HasWater() {
				continue
			}
			add([]item.Item{item.WaterItem})
		case requirement.KDamage:
			missing := leaf.Amount - p.MaxHealth()
			if missing <= 0 {
				continue
			}
			fragments := uint32(math.Ceil(float64(missing / 5)))
			items := make([]item.Item, 0, fragments)
			for i := uint32(0); i < fragments; i++ {
				items = append(items, item.ResourceItem(item.Health))
			}
			add(items)
		case requirement.KBoss, requirement.KBreakWall, requirement.KShurikenBreak, requirement.KSentryBreak:
			add(weaponAndEnergyCandidate(p))
		case requirement.KCombat:
			add(weaponAndEnergyCandidate(p))
		}
	}

	out = dropRedundant(out)
	return out
}

// weaponAndEnergyCandidate offers the first weapon the player doesn't yet
// own, in the fixed order Sword, Hammer, Bow, Shuriken, Grenade, Spear,
// Flash, Sentry, Blaze, as a candidate for weapon-gated leaves; it adds no
// Energy fragments. The solver's simulation pass (not this function) is
// what actually scores whether it helps.
func weaponAndEnergyCandidate(p *inventory.Player) []item.Item {
	for _, s := range []item.Skill{item.Sword, item.Hammer, item.Bow, item.Shuriken, item.Grenade, item.Spear, item.Flash, item.Sentry, item.Blaze} {
		if !p.Inventory.HasSkill(s) {
			return []item.Item{item.SkillItem(s)}
		}
	}
	return nil
}

func candidateKey(items []item.Item) string {
	codes := make([]string, len(items))
	for i, it := range items {
		codes[i] = it.Code()
	}
	sort.Strings(codes)
	key := ""
	for _, c := range codes {
		key += c + ";"
	}
	return key
}

// dropRedundant removes any candidate that is a strict superset of another
// candidate already in the list (spec §4.3 step 3): if candidate B
// contains every item of candidate A plus more, B adds no unlocking power
// A doesn't already offer and is dropped.
func dropRedundant(candidates []Candidate) []Candidate {
	isSubset := func(a, b []item.Item) bool {
		bCounts := make(map[string]int)
		for _, it := range b {
			bCounts[it.Code()]++
		}
		for _, it := range a {
			if bCounts[it.Code()] == 0 {
				return false
			}
			bCounts[it.Code()]--
		}
		return true
	}

	var out []Candidate
	for i, c := range candidates {
		redundant := false
		for j, other := range candidates {
			if i == j {
				continue
			}
			if len(other.Items) < len(c.Items) && isSubset(other.Items, c.Items) {
				redundant = true
				break
			}
		}
		if !redundant {
			out = append(out, c)
		}
	}
	return out
}
