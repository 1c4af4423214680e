package exampleworld

import (
	"testing"

	"github.com/owowisp/mosswright/internal/inventory"
	"github.com/owowisp/mosswright/internal/item"
	"github.com/owowisp/mosswright/internal/logic"
	"github.com/owowisp/mosswright/internal/orbs"
	"github.com/owowisp/mosswright/internal/reach"
	"github.com/owowisp/mosswright/internal/settings"
)

func TestBuildSpawnIsValidAnchor(t *testing.T) {
	g, spawn, doors := Build()
	if spawn < 0 || spawn >= len(g.Nodes) {
		t.Fatalf("spawn index %d out of bounds", spawn)
	}
	node := g.Node(spawn)
	if node.Kind != logic.NodeAnchor || !node.CanSpawn {
		t.Fatalf("spawn node %q is not a valid spawn anchor", node.Identifier)
	}
	if len(doors) == 0 {
		t.Fatal("expected at least one keystone door")
	}
	for _, d := range doors {
		if _, ok := g.IndexOf(d.Identifier); !ok {
			t.Errorf("keystone door %q does not name a graph node", d.Identifier)
		}
	}
}

func TestBuildReachesEveryPickupGivenFullInventory(t *testing.T) {
	g, spawn, _ := Build()
	ws := settings.WorldSettings{Difficulty: settings.Unsafe}
	p := inventory.NewPlayer(ws)

	for _, s := range []item.Skill{
		item.Bash, item.DoubleJump, item.Launch, item.Glide, item.Grenade,
		item.Burrow, item.WaterDash, item.Sword,
	} {
		p.Inventory.Grant(item.SkillItem(s), 1)
	}
	p.Inventory.Grant(item.ResourceItem(item.Keystone), 10)
	p.Inventory.Grant(item.WaterItem, 1)

	result := reach.Run(g, spawn, p, orbs.Orbs{Health: 1000, Energy: 1000})
	for i, n := range g.Nodes {
		if !n.IsPickup() {
			continue
		}
		if !result.IsReached(i) {
			t.Errorf("pickup %q not reached with full inventory", n.Identifier)
		}
	}
}
