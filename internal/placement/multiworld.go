package placement

import (
	"sort"

	"github.com/owowisp/mosswright/internal/item"
	"github.com/owowisp/mosswright/internal/seedoutput"
	"github.com/owowisp/mosswright/internal/seedrng"
)

// grantAt records a placement's event(s) on the origin world, routing
// through the multiworld cross-reference protocol when origin != target
// (spec §4.4 "Multiworld").
func (c *Context) grantAt(origin *WorldContext, nodeIdx int, target *WorldContext, it item.Item) {
	node := origin.Graph.Node(nodeIdx)
	trigger := seedoutput.PickupTrigger(node.UberGroup, node.UberID)

	if target.Index == origin.Index {
		origin.World.AddEvent(seedoutput.PickupEvent(trigger, it))
	} else {
		member := c.nextCrossRef()
		origin.World.AddEvent(seedoutput.MultiworldSendEvent(trigger, multiworldGroup, member, target.Index))
		target.World.AddEvent(seedoutput.MultiworldReceiveEvent(multiworldGroup, member, it))
	}

	if node.Shop {
		price := shopPrice(it, c.RNG)
		origin.World.AddEvent(seedoutput.ShopPriceEvent(trigger, uint32(price.IntPart())))
		c.Universe.ShopPrices = append(c.Universe.ShopPrices, seedoutput.ShopPriceEntry{
			WorldIndex: origin.Index,
			Location:   node.Identifier,
			Price:      price,
		})
	}

	origin.Placed[nodeIdx] = true
	target.Player.Inventory.Grant(it, 1)
}

// chooseTargetWorld picks which world's pool should supply the item placed
// at a slot in the origin world: the origin's own pool is preferred while
// its UnsharedItems counter is still positive; otherwise a world is chosen
// uniformly among every world (including origin) whose pool is non-empty.
func chooseTargetWorld(origin *WorldContext, worlds []*WorldContext, r *seedrng.RNG) *WorldContext {
	if origin.UnsharedItems > 0 && !origin.Pool.Empty() {
		return origin
	}

	var candidates []*WorldContext
	for _, w := range worlds {
		if !w.Pool.Empty() {
			candidates = append(candidates, w)
		}
	}
	if len(candidates) == 0 {
		return origin
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].Index < candidates[j].Index })
	return candidates[r.Intn(len(candidates))]
}
