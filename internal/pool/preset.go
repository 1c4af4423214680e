package pool

import "github.com/owowisp/mosswright/internal/item"

// StandardPreset builds the default initial item multiset: one of each
// skill and shard, the named teleporters, Clean Water, and a generous
// supply of resource fragments. Spirit Light itself is not seeded here —
// the placement driver's remainder fill and SpiritLightProvider cover any
// location this preset doesn't.
func StandardPreset() *Pool {
	p := New()

	for _, s := range allSkills {
		p.Add(item.SkillItem(s), 1)
	}
	for _, s := range allShards {
		p.Add(item.ShardItem(s), 1)
	}
	for _, t := range allTeleporters {
		p.Add(item.TeleporterItem(t), 1)
	}
	p.Add(item.WaterItem, 1)

	p.Add(item.ResourceItem(item.Health), 24)
	p.Add(item.ResourceItem(item.Energy), 24)
	p.Add(item.ResourceItem(item.Ore), 40)
	p.Add(item.ResourceItem(item.Keystone), 34)
	p.Add(item.ResourceItem(item.ShardSlot), 10)

	for _, w := range allWeaponUpgrades {
		p.Add(item.WeaponUpgradeItem(w), 1)
	}

	return p
}

var allSkills = []item.Skill{
	item.Bash, item.WallJump, item.DoubleJump, item.Launch, item.Glide,
	item.WaterBreath, item.Grenade, item.Grapple, item.Flash, item.Spear,
	item.Regenerate, item.Bow, item.Hammer, item.Sword, item.Burrow,
	item.Dash, item.WaterDash, item.Shuriken, item.Seir, item.Blaze,
	item.Sentry, item.Flap, item.AncestralLight,
}

var allShards = []item.Shard{
	item.Overcharge, item.TripleJump, item.Wingclip, item.Bounty, item.Swap,
	item.Magnet, item.Splinter, item.Reckless, item.Quickshot, item.Resilience,
	item.SpiritLightHarvest, item.Vitality, item.LifeHarvest, item.EnergyHarvest,
	item.EnergyShard, item.LifePact, item.LastStand, item.Sense, item.UltraBash,
	item.UltraGrapple, item.Overflow, item.Thorn, item.Catalyst, item.Turmoil,
	item.Sticky, item.Finesse, item.SpiritSurge, item.Lifeforce, item.Deflector,
	item.Fracture, item.Arcing,
}

var allTeleporters = []item.Teleporter{
	item.Burrows, item.Den, item.EastLuma, item.Wellspring, item.Reach,
	item.Hollow, item.Depths, item.WestWoods, item.EastWoods, item.WestWastes,
	item.EastWastes, item.OuterRuins, item.Willow, item.WestLuma, item.InnerRuins,
	item.Shriek, item.Marsh, item.Glades,
}

var allWeaponUpgrades = []item.WeaponUpgrade{
	item.GrenadeSurfaceBurn, item.SpearPierce, item.HammerShockwave,
	item.BowPiercingArrow, item.SentryTracking, item.FlashWideBurst,
}
