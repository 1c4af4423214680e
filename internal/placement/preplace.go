package placement

import (
	"sort"

	"github.com/owowisp/mosswright/internal/generrors"
	"github.com/owowisp/mosswright/internal/seedrng"
)

// ProcessPreplacements applies every `!preplace` directive before the main
// loop starts (spec §4.4 step sequence, step 1). Items drawn from a
// tracked pool are removed from it; items the pool doesn't carry (e.g.
// quest-specific grants) are placed directly.
func (c *Context) ProcessPreplacements(preplacements []Preplacement) error {
	if len(preplacements) > 0 && len(c.Worlds) == 0 {
		return generrors.Config("no worlds configured")
	}
	for _, pp := range preplacements {
		origin := c.Worlds[0]
		target := origin
		if pp.TargetWorld >= 0 && pp.TargetWorld < len(c.Worlds) {
			target = c.Worlds[pp.TargetWorld]
		}

		nodeIdx, ok := -1, false
		if pp.NodeIdentifier != "" {
			nodeIdx, ok = origin.Graph.IndexOf(pp.NodeIdentifier)
			if !ok {
				return generrors.Config("preplace: unknown node identifier %q", pp.NodeIdentifier)
			}
		} else {
			nodeIdx, ok = pickRandomZoneSlot(origin, pp.Zone, c.RNG)
			if !ok {
				return generrors.Config("preplace: no open slot in zone %q", pp.Zone)
			}
		}
		if origin.Placed[nodeIdx] {
			return generrors.Config("preplace: node %q already has a placement", origin.Graph.Node(nodeIdx).Identifier)
		}

		origin.Pool.Take(pp.Item)
		c.recordPlacement(origin, nodeIdx, target, pp.Item, true)
	}
	return nil
}

// pickRandomZoneSlot chooses uniformly among a world's unplaced pickup
// nodes in the given zone, in stable node-index order so the draw is
// reproducible for a given RNG state.
func pickRandomZoneSlot(wc *WorldContext, zone string, r *seedrng.RNG) (int, bool) {
	var candidates []int
	for _, idx := range wc.NeedsPlacement {
		if wc.Placed[idx] {
			continue
		}
		if wc.Graph.Node(idx).Zone != zone {
			continue
		}
		candidates = append(candidates, idx)
	}
	if len(candidates) == 0 {
		return 0, false
	}
	sort.Ints(candidates)
	return candidates[r.Intn(len(candidates))], true
}
