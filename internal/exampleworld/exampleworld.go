// Package exampleworld bundles a small, hand-authored area graph standing
// in for a real game-data compiler: a handful of zones, gated connections,
// a couple of refills, and two keystone doors. cmd/mosswright builds every
// world from it, and this package's test checks that a full inventory
// reaches every pickup on it.
package exampleworld

import (
	"github.com/owowisp/mosswright/internal/enemy"
	"github.com/owowisp/mosswright/internal/item"
	"github.com/owowisp/mosswright/internal/logic"
	"github.com/owowisp/mosswright/internal/placement"
	"github.com/owowisp/mosswright/internal/requirement"
)

// uberGroup is the single uber-group this bundled area uses for all of its
// pickup/quest/state flags; in a real data set each zone would carry its
// own group id.
const uberGroup uint32 = 1

func skill(s item.Skill) requirement.Requirement {
	return requirement.Requirement{Kind: requirement.KSkill, Skill: s}
}

func energySkill(s item.Skill, uses float32) requirement.Requirement {
	return requirement.Requirement{Kind: requirement.KEnergySkill, Skill: s, Uses: uses}
}

func keystones(n uint32) requirement.Requirement {
	return requirement.Requirement{Kind: requirement.KResource, Resource: item.Keystone, ResourceN: n}
}

// Build constructs the bundled graph. Returns the graph, the index of its
// single spawn anchor, and the KeystoneDoor table for the placement driver.
func Build() (*logic.Graph, int, []placement.KeystoneDoor) {
	n := newBuilder()

	spawn := n.anchor("GladesTown.Spawn", true, nil)
	gladesHub := n.anchor("GladesTown.Hub", false, nil)
	n.connect(spawn, gladesHub, requirement.Free)
	n.connect(gladesHub, spawn, requirement.Free)

	n.pickup("GladesTown.BashPickup", "Glades", false)
	n.pickup("GladesTown.HealthCell1", "Glades", false)
	n.pickup("GladesTown.EnergyCell1", "Glades", false)
	n.quest("GladesTown.MotherLupoQuest", "Glades")
	n.connect(gladesHub, n.idx("GladesTown.BashPickup"), requirement.Free)
	n.connect(gladesHub, n.idx("GladesTown.HealthCell1"), requirement.Free)
	n.connect(gladesHub, n.idx("GladesTown.EnergyCell1"), requirement.Free)
	n.connect(gladesHub, n.idx("GladesTown.MotherLupoQuest"), requirement.Free)

	gladesPond := n.anchor("GladesTown.Pond", false, []logic.Refill{
		{Value: logic.RefillEnergy, Amount: 3, Requirement: requirement.Free},
	})
	n.connect(gladesHub, gladesPond, requirement.Free)
	n.connect(gladesPond, gladesHub, requirement.Free)

	n.pickup("GladesTown.SecretWall", "Glades", false)
	n.connect(gladesPond, n.idx("GladesTown.SecretWall"),
		requirement.Requirement{Kind: requirement.KBreakWall, HP: 16})

	marshGate := n.anchor("MarshSpawn.Main", false, nil)
	n.connect(gladesHub, marshGate, skill(item.Bash))
	n.connect(marshGate, gladesHub, requirement.Free)

	n.pickup("MarshSpawn.EastPool", "Marsh", false)
	n.pickup("MarshSpawn.CaveHC", "Marsh", false)
	n.pickup("MarshSpawn.FirstPickup", "Marsh", false)
	n.connect(marshGate, n.idx("MarshSpawn.EastPool"), requirement.Free)
	n.connect(marshGate, n.idx("MarshSpawn.CaveHC"),
		requirement.Or(skill(item.DoubleJump), skill(item.Launch)))
	n.connect(marshGate, n.idx("MarshSpawn.FirstPickup"), requirement.Free)

	n.shop("MarshSpawn.ShopKeeper", "Marsh")
	n.connect(marshGate, n.idx("MarshSpawn.ShopKeeper"), requirement.Free)

	keystoneDoorIdx := n.anchor("MarshSpawn.KeystoneDoor", false, nil)
	n.connect(marshGate, keystoneDoorIdx, requirement.Free)
	beyondDoor := n.anchor("MarshSpawn.BeyondDoor", false, nil)
	n.connect(keystoneDoorIdx, beyondDoor, keystones(2))
	n.connect(beyondDoor, keystoneDoorIdx, requirement.Free)

	n.pickup("MarshSpawn.DeepPickup", "Marsh", false)
	n.pickup("MarshSpawn.BossReward", "Marsh", false)
	n.connect(beyondDoor, n.idx("MarshSpawn.DeepPickup"),
		requirement.Requirement{Kind: requirement.KCombat, Enemies: []requirement.EnemyCount{{Enemy: enemy.Mantis, Count: 2}}})
	n.connect(beyondDoor, n.idx("MarshSpawn.BossReward"),
		requirement.Requirement{Kind: requirement.KBoss, HP: 200})

	hollowGate := n.anchor("HollowGrove.Entrance", false, nil)
	n.connect(gladesHub, hollowGate, skill(item.DoubleJump))
	n.connect(hollowGate, gladesHub, requirement.Free)

	n.pickup("HollowGrove.TreeTop", "Hollow", false)
	n.pickup("HollowGrove.WindPath", "Hollow", false)
	n.connect(hollowGate, n.idx("HollowGrove.TreeTop"), skill(item.Glide))
	n.connect(hollowGate, n.idx("HollowGrove.WindPath"),
		requirement.And(skill(item.Glide), skill(item.DoubleJump)))

	hollowKeystoneDoor := n.anchor("HollowGrove.KeystoneDoor", false, nil)
	n.connect(hollowGate, hollowKeystoneDoor, requirement.Free)
	hollowInner := n.anchor("HollowGrove.Inner", false, []logic.Refill{
		{Value: logic.RefillHealth, Amount: 30, Requirement: requirement.Free},
	})
	n.connect(hollowKeystoneDoor, hollowInner, keystones(3))
	n.connect(hollowInner, hollowKeystoneDoor, requirement.Free)

	n.pickup("HollowGrove.InnerVault", "Hollow", false)
	n.pickup("HollowGrove.SpiderDen", "Hollow", false)
	n.connect(hollowInner, n.idx("HollowGrove.InnerVault"), energySkill(item.Grenade, 2))
	n.connect(hollowInner, n.idx("HollowGrove.SpiderDen"),
		requirement.Requirement{Kind: requirement.KDanger, Amount: 40})

	wellspringGate := n.anchor("WellspringGlades.Entrance", false, nil)
	n.connect(gladesHub, wellspringGate, skill(item.Burrow))
	n.connect(wellspringGate, gladesHub, requirement.Free)

	n.pickup("WellspringGlades.FirstRoom", "Wellspring", false)
	n.pickup("WellspringGlades.WaterBasin", "Wellspring", false)
	n.quest("WellspringGlades.KeeperQuest", "Wellspring")
	n.connect(wellspringGate, n.idx("WellspringGlades.FirstRoom"), requirement.Free)
	n.connect(wellspringGate, n.idx("WellspringGlades.WaterBasin"),
		requirement.Requirement{Kind: requirement.KWater})
	n.connect(wellspringGate, n.idx("WellspringGlades.KeeperQuest"), skill(item.WaterDash))

	wellspringDeep := n.anchor("WellspringGlades.Deep", false, nil)
	n.connect(wellspringGate, wellspringDeep,
		requirement.And(requirement.Requirement{Kind: requirement.KWater}, skill(item.WaterDash)))
	n.connect(wellspringDeep, wellspringGate, requirement.Free)

	n.pickup("WellspringGlades.DeepCache", "Wellspring", false)
	n.pickup("WellspringGlades.FinalVault", "Wellspring", false)
	n.connect(wellspringDeep, n.idx("WellspringGlades.DeepCache"), requirement.Free)
	n.connect(wellspringDeep, n.idx("WellspringGlades.FinalVault"), skill(item.Launch))

	n.quest("WellspringGlades.WaterWisp", "Wellspring")
	n.connect(wellspringDeep, n.idx("WellspringGlades.WaterWisp"), requirement.Free)

	n.shop("WellspringGlades.SecondShop", "Wellspring")
	n.connect(wellspringDeep, n.idx("WellspringGlades.SecondShop"), requirement.Free)

	n.pickup("GladesTown.FarShore", "Glades", false)
	n.connect(gladesHub, n.idx("GladesTown.FarShore"),
		requirement.Requirement{Kind: requirement.KDamage, Amount: 20})

	g := logic.NewGraph(n.nodes, nil)

	doors := []placement.KeystoneDoor{
		{Identifier: "MarshSpawn.KeystoneDoor", Count: 2},
		{Identifier: "HollowGrove.KeystoneDoor", Count: 3},
	}

	return g, spawn, doors
}

// builder assigns sequential uber ids per pickup/quest node as it appends,
// so callers never have to track indices by hand.
type builder struct {
	nodes   []logic.Node
	byName  map[string]int
	nextUID uint32
}

func newBuilder() *builder {
	return &builder{byName: make(map[string]int)}
}

func (b *builder) idx(identifier string) int {
	i, ok := b.byName[identifier]
	if !ok {
		panic("exampleworld: unknown node " + identifier)
	}
	return i
}

func (b *builder) append(nd logic.Node) int {
	i := len(b.nodes)
	b.nodes = append(b.nodes, nd)
	b.byName[nd.Identifier] = i
	return i
}

func (b *builder) anchor(identifier string, canSpawn bool, refills []logic.Refill) int {
	return b.append(logic.Node{
		Kind:       logic.NodeAnchor,
		Identifier: identifier,
		CanSpawn:   canSpawn,
		Refills:    refills,
	})
}

func (b *builder) pickup(identifier, zone string, shop bool) int {
	b.nextUID++
	return b.append(logic.Node{
		Kind:       logic.NodePickup,
		Identifier: identifier,
		Zone:       zone,
		UberGroup:  uberGroup,
		UberID:     b.nextUID,
		Shop:       shop,
	})
}

func (b *builder) shop(identifier, zone string) int {
	return b.pickup(identifier, zone, true)
}

func (b *builder) quest(identifier, zone string) int {
	b.nextUID++
	return b.append(logic.Node{
		Kind:       logic.NodeQuest,
		Identifier: identifier,
		Zone:       zone,
		UberGroup:  uberGroup,
		UberID:     b.nextUID,
	})
}

func (b *builder) connect(from, to int, req requirement.Requirement) {
	b.nodes[from].Connections = append(b.nodes[from].Connections, logic.Connection{To: to, Requirement: req})
}
