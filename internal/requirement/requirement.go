// Package requirement implements the tagged expression tree that gates
// graph connections and refills, and its evaluation against a player and an
// orb-state Pareto set (spec §3 "Requirement", §4.1).
package requirement

import (
	"math"
	"sort"

	"github.com/owowisp/mosswright/internal/enemy"
	"github.com/owowisp/mosswright/internal/inventory"
	"github.com/owowisp/mosswright/internal/item"
	"github.com/owowisp/mosswright/internal/orbs"
	"github.com/owowisp/mosswright/internal/settings"
)

// Kind discriminates the Requirement tree's node types.
type Kind int

const (
	KFree Kind = iota
	KImpossible
	KDifficulty
	KTrick
	KSkill
	KEnergySkill
	KNonConsumingEnergySkill
	KSpiritLight
	KResource
	KShard
	KTeleporter
	KWater
	KState
	KDamage
	KDanger
	KCombat
	KBoss
	KBreakWall
	KShurikenBreak
	KSentryBreak
	KAnd
	KOr
)

// EnemyCount pairs an enemy type with how many must be defeated.
type EnemyCount struct {
	Enemy enemy.Enemy
	Count int
}

// Requirement is a tagged tree node. Exactly the fields relevant to Kind
// are meaningful.
type Requirement struct {
	Kind Kind

	Difficulty settings.Difficulty // KDifficulty
	Trick      settings.Trick      // KTrick
	Skill      item.Skill          // KSkill, KEnergySkill, KNonConsumingEnergySkill
	Uses       float32             // KEnergySkill
	SpiritLight uint32             // KSpiritLight
	Resource   item.Resource       // KResource
	ResourceN  uint32              // KResource
	Shard      item.Shard          // KShard
	Teleporter item.Teleporter     // KTeleporter
	NodeIndex  int                 // KState
	Amount     float32             // KDamage, KDanger
	HP         float32             // KBoss, KBreakWall, KShurikenBreak, KSentryBreak
	Enemies    []EnemyCount        // KCombat
	Children   []Requirement       // KAnd, KOr
}

// Free is the always-passing leaf.
var Free = Requirement{Kind: KFree}

// Impossible is the never-passing leaf.
var Impossible = Requirement{Kind: KImpossible}

// Context supplies the externally-maintained state Check needs beyond the
// player and orb set: the reached-node predicate (State leaves) and the
// active settings (tricks/difficulty/hard mode).
type Context struct {
	Settings  settings.WorldSettings
	IsReached func(nodeIndex int) bool
}

// Check evaluates the requirement against a player and an incoming Pareto
// set of orb states, returning the resulting Pareto set (empty = fails).
func (r Requirement) Check(p *inventory.Player, in orbs.Set, ctx Context) orbs.Set {
	switch r.Kind {
	case KFree:
		return in
	case KImpossible:
		return orbs.Set{}
	case KDifficulty:
		if ctx.Settings.Difficulty >= r.Difficulty {
			return in
		}
		return orbs.Set{}
	case KTrick:
		if ctx.Settings.Tricks.Has(r.Trick) {
			return in
		}
		return orbs.Set{}
	case KSkill:
		if p.Inventory.HasSkill(r.Skill) {
			return in
		}
		return orbs.Set{}
	case KEnergySkill:
		return r.checkEnergySkill(p, in, ctx)
	case KNonConsumingEnergySkill:
		if p.Inventory.HasSkill(r.Skill) {
			return in
		}
		return orbs.Set{}
	case KSpiritLight:
		if uint64(p.Inventory.SpiritLight()) >= uint64(r.SpiritLight) {
			return in
		}
		return orbs.Set{}
	case KResource:
		if p.Inventory.Resource(r.Resource) >= r.ResourceN {
			return in
		}
		return orbs.Set{}
	case KShard:
		if p.Inventory.HasShard(r.Shard) {
			return in
		}
		return orbs.Set{}
	case KTeleporter:
		if p.Inventory.HasTeleporter(r.Teleporter) {
			return in
		}
		return orbs.Set{}
	case KWater:
		if p.Inventory.HasWater() {
			return in
		}
		return orbs.Set{}
	case KState:
		if ctx.IsReached != nil && ctx.IsReached(r.NodeIndex) {
			return in
		}
		return orbs.Set{}
	case KDamage:
		return r.checkDamage(p, in, ctx)
	case KDanger:
		return r.checkDanger(p, in)
	case KCombat:
		return r.checkCombat(p, in, ctx)
	case KBoss:
		return r.checkWeaponGate(p, in, ctx, r.HP, true)
	case KBreakWall, KShurikenBreak, KSentryBreak:
		return r.checkWeaponGate(p, in, ctx, r.HP, false)
	case KAnd:
		cur := in
		for _, child := range r.Children {
			cur = child.Check(p, cur, ctx)
			if cur.Empty() {
				return orbs.Set{}
			}
		}
		return cur
	case KOr:
		out := orbs.Set{}
		for _, child := range r.Children {
			out = orbs.Merge(out, child.Check(p, in, ctx))
		}
		return out
	default:
		return orbs.Set{}
	}
}

func resilienceFactor(p *inventory.Player) float32 {
	if p.Inventory.HasShard(item.Resilience) {
		return 0.9
	}
	return 1.0
}

func (r Requirement) checkEnergySkill(p *inventory.Player, in orbs.Set, ctx Context) orbs.Set {
	if !p.Inventory.HasSkill(r.Skill) {
		return orbs.Set{}
	}
	cost := r.Uses * r.Skill.EnergyCost()
	return in.Map(func(o orbs.Orbs) (orbs.Orbs, bool) {
		return applyEnergyCost(p, o, cost)
	})
}

// applyEnergyCost subtracts cost energy from o, honoring the Overflow
// shard (excess energy drain spills into health loss instead of failing
// outright) — see DESIGN.md for the Overflow/Resilience interaction
// decision.
func applyEnergyCost(p *inventory.Player, o orbs.Orbs, cost float32) (orbs.Orbs, bool) {
	if o.Energy >= cost {
		o.Energy -= cost
		return o, true
	}
	if !p.Inventory.HasShard(item.Overflow) {
		return orbs.Orbs{}, false
	}
	deficit := cost - o.Energy
	healthCost := deficit * 10 * resilienceFactor(p)
	if o.Health <= healthCost {
		return orbs.Orbs{}, false
	}
	return orbs.Orbs{Health: o.Health - healthCost, Energy: 0}, true
}

func (r Requirement) checkDamage(p *inventory.Player, in orbs.Set, ctx Context) orbs.Set {
	scaled := r.Amount * resilienceFactor(p)
	out := orbs.Set{}
	for _, o := range in.States() {
		if o.Health > scaled {
			out.Insert(orbs.Orbs{Health: o.Health - scaled, Energy: o.Energy})
			continue
		}
		if !p.Inventory.HasSkill(item.Regenerate) {
			continue
		}
		deficit := scaled - o.Health + 1
		energyNeeded := float32(math.Ceil(float64(deficit/10))) * item.Regenerate.EnergyCost()
		if o.Energy >= energyNeeded {
			out.Insert(orbs.Orbs{Health: 1, Energy: o.Energy - energyNeeded})
		}
	}
	return out
}

func (r Requirement) checkDanger(p *inventory.Player, in orbs.Set) orbs.Set {
	scaled := r.Amount * resilienceFactor(p)
	out := orbs.Set{}
	for _, o := range in.States() {
		if o.Health > scaled {
			out.Insert(o)
		}
	}
	return out
}

// weaponCandidate is a weapon the player can use for a Boss/BreakWall/
// ShurikenBreak/SentryBreak-style gate.
type weaponCandidate struct {
	skill item.Skill
	cost  float32
}

func (r Requirement) weaponCandidates(p *inventory.Player, ctx Context, requireWallBreak bool) []weaponCandidate {
	var out []weaponCandidate
	for _, s := range allWeaponSkills {
		if !p.Inventory.HasSkill(s) {
			continue
		}
		if requireWallBreak && !s.IsWallBreaker() {
			continue
		}
		out = append(out, weaponCandidate{skill: s, cost: s.EnergyCost()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].cost < out[j].cost })
	return out
}

var allWeaponSkills = []item.Skill{
	item.Sword, item.Hammer, item.Bow, item.Shuriken, item.Grenade,
	item.Spear, item.Flash, item.Sentry, item.Blaze,
}

func (r Requirement) checkWeaponGate(p *inventory.Player, in orbs.Set, ctx Context, hp float32, boss bool) orbs.Set {
	if boss && ctx.Settings.Hard {
		hp *= 1.8
	}
	candidates := r.weaponCandidates(p, ctx, r.Kind != KBoss)
	if len(candidates) == 0 {
		return orbs.Set{}
	}
	best := candidates[0]
	hits := float32(math.Ceil(float64(hp / best.skill.Damage(ctx.Settings.Difficulty))))
	cost := hits * best.cost
	return in.Map(func(o orbs.Orbs) (orbs.Orbs, bool) {
		return applyEnergyCost(p, o, cost)
	})
}

func (r Requirement) checkCombat(p *inventory.Player, in orbs.Set, ctx Context) orbs.Set {
	var totalCost float32
	var maxHit float32
	for _, ec := range r.Enemies {
		cost, hit, ok := bestWeaponForEnemy(p, ctx, ec.Enemy)
		if !ok {
			return orbs.Set{}
		}
		totalCost += cost * float32(ec.Count)
		if hit > maxHit {
			maxHit = hit
		}
	}
	out := in.Map(func(o orbs.Orbs) (orbs.Orbs, bool) {
		return applyEnergyCost(p, o, totalCost)
	})
	danger := Requirement{Kind: KDanger, Amount: maxHit}
	return danger.Check(p, out, ctx)
}

func bestWeaponForEnemy(p *inventory.Player, ctx Context, e enemy.Enemy) (cost float32, maxHit float32, ok bool) {
	best := float32(-1)
	for _, s := range allWeaponSkills {
		if !p.Inventory.HasSkill(s) {
			continue
		}
		if e.Shielded() && !s.BreaksShields() {
			continue
		}
		if (e.Aerial() || e.Flying()) && !s.IsRanged() {
			continue
		}
		dmg := s.Damage(ctx.Settings.Difficulty)
		if e.Armored() && s != item.Spear {
			dmg *= 0.5
		}
		if e.Armored() && s == item.Spear && ctx.Settings.Difficulty >= settings.Unsafe {
			dmg *= 2
		}
		if dmg <= 0 {
			continue
		}
		hits := float32(math.Ceil(float64(e.Health(ctx.Settings.Difficulty) / dmg)))
		thisCost := hits * s.EnergyCost()
		if best < 0 || thisCost < best {
			best = thisCost
		}
	}
	if best < 0 {
		return 0, 0, false
	}
	return best, e.MaxHit(ctx.Settings.Difficulty), true
}

// Fold applies constant-folding: And with Impossible child ⇒ Impossible;
// Or with Free child ⇒ Free; singletons unwrap. The graph compiler is
// expected to have done this already (spec's invariant), but the progression
// solver's synthesized sub-trees run it too so they satisfy the same
// invariant before being merged into And/Or chains.
func Fold(r Requirement) Requirement {
	switch r.Kind {
	case KAnd:
		var kept []Requirement
		for _, c := range r.Children {
			c = Fold(c)
			if c.Kind == KImpossible {
				return Impossible
			}
			if c.Kind == KFree {
				continue
			}
			kept = append(kept, c)
		}
		if len(kept) == 0 {
			return Free
		}
		if len(kept) == 1 {
			return kept[0]
		}
		return Requirement{Kind: KAnd, Children: kept}
	case KOr:
		var kept []Requirement
		for _, c := range r.Children {
			c = Fold(c)
			if c.Kind == KFree {
				return Free
			}
			if c.Kind == KImpossible {
				continue
			}
			kept = append(kept, c)
		}
		if len(kept) == 0 {
			return Impossible
		}
		if len(kept) == 1 {
			return kept[0]
		}
		return Requirement{Kind: KOr, Children: kept}
	default:
		return r
	}
}

// And builds a constant-folded conjunction.
func And(children ...Requirement) Requirement {
	return Fold(Requirement{Kind: KAnd, Children: children})
}

// Or builds a constant-folded disjunction.
func Or(children ...Requirement) Requirement {
	return Fold(Requirement{Kind: KOr, Children: children})
}
