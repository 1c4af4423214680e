// Package reach implements the fixed-point reachability engine (spec §4.2):
// from a spawn anchor, compute the reached node set and accumulated orb
// state under a player's current inventory.
package reach

import (
	"sort"

	"github.com/owowisp/mosswright/internal/generrors"
	"github.com/owowisp/mosswright/internal/inventory"
	"github.com/owowisp/mosswright/internal/logic"
	"github.com/owowisp/mosswright/internal/orbs"
	"github.com/owowisp/mosswright/internal/requirement"
)

// Result holds a completed reachability pass.
type Result struct {
	Reached map[int]bool
	Orbs    map[int]orbs.Set // per-anchor orb Pareto sets
}

// NewResult returns an empty result.
func NewResult() *Result {
	return &Result{Reached: make(map[int]bool), Orbs: make(map[int]orbs.Set)}
}

// IsReached reports whether node i has been reached.
func (r *Result) IsReached(i int) bool { return r.Reached[i] }

// Run executes the fixed-point traversal from spawn with the given player
// and graph, honoring settings for requirement evaluation.
func Run(g *logic.Graph, spawn int, p *inventory.Player, spawnOrbs orbs.Orbs) *Result {
	if spawn < 0 || spawn >= len(g.Nodes) {
		generrors.Invariant("reach: spawn index %d out of bounds", spawn)
	}

	result := NewResult()
	result.Reached[spawn] = true
	result.Orbs[spawn] = orbs.NewSet(spawnOrbs)

	reqCtx := requirement.Context{
		Settings:  p.Settings,
		IsReached: result.IsReached,
	}

	changed := true
	for changed {
		changed = false
		for _, anchorIdx := range sortedAnchorIndices(g) {
			if !result.Reached[anchorIdx] {
				continue
			}
			anchor := g.Node(anchorIdx)
			if anchor.Kind != logic.NodeAnchor {
				continue
			}

			cur := result.Orbs[anchorIdx]
			cur = applyRefills(anchor, p, cur, reqCtx, maxHealth(p), maxEnergy(p))
			if !sameSet(result.Orbs[anchorIdx], cur) {
				result.Orbs[anchorIdx] = cur
				changed = true
			}

			for _, conn := range anchor.Connections {
				out := conn.Requirement.Check(p, cur, reqCtx)
				if out.Empty() {
					continue
				}
				target := g.Node(conn.To)
				switch target.Kind {
				case logic.NodeAnchor:
					merged := orbs.Merge(result.Orbs[conn.To], out)
					if !result.Reached[conn.To] || !sameSet(result.Orbs[conn.To], merged) {
						result.Reached[conn.To] = true
						result.Orbs[conn.To] = merged
						changed = true
					}
				case logic.NodeState, logic.NodeLogicalState:
					if !result.Reached[conn.To] {
						result.Reached[conn.To] = true
						changed = true
					}
				case logic.NodePickup, logic.NodeQuest:
					if !result.Reached[conn.To] {
						result.Reached[conn.To] = true
						changed = true
					}
				}
			}
		}
	}
	return result
}

func applyRefills(anchor logic.Node, p *inventory.Player, cur orbs.Set, ctx requirement.Context, maxH, maxE float32) orbs.Set {
	out := cur
	for _, refill := range anchor.Refills {
		gated := refill.Requirement.Check(p, cur, ctx)
		if gated.Empty() {
			continue
		}
		for _, o := range gated.States() {
			switch refill.Value {
			case logic.RefillFull:
				out.Insert(orbs.Orbs{Health: maxH, Energy: maxE})
			case logic.RefillCheckpoint:
				out.Insert(orbs.Orbs{Health: maxH * 0.3, Energy: o.Energy})
			case logic.RefillHealth:
				out.Insert(o.Add(refill.Amount, 0, maxH, maxE))
			case logic.RefillEnergy:
				out.Insert(o.Add(0, refill.Amount, maxH, maxE))
			}
		}
	}
	return out
}

func maxHealth(p *inventory.Player) float32 { return p.MaxHealth() }
func maxEnergy(p *inventory.Player) float32 { return p.MaxEnergy() }

func sortedAnchorIndices(g *logic.Graph) []int {
	var out []int
	for i, n := range g.Nodes {
		if n.Kind == logic.NodeAnchor {
			out = append(out, i)
		}
	}
	sort.Ints(out)
	return out
}

// sameSet reports Pareto-set equality by comparing member states; used to
// detect fixed-point convergence. Two orb sets built by repeated Insert
// calls are equal iff they contain the same states in some order.
func sameSet(a, b orbs.Set) bool {
	if a.Len() != b.Len() {
		return false
	}
	as, bs := a.States(), b.States()
	matched := make([]bool, len(bs))
	for _, x := range as {
		found := false
		for j, y := range bs {
			if matched[j] {
				continue
			}
			if x == y {
				matched[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
