// Package inventory tracks how many of each item a player holds and derives
// the stat getters the requirement tree and reachability engine read (spec
// §3 "Inventory").
package inventory

import (
	"github.com/owowisp/mosswright/internal/item"
)

const (
	baseMaxHealth = 30.0
	baseMaxEnergy = 3.0
)

// Inventory maps an item's wire code to how many copies are held. The wire
// code (rather than the Item struct itself) is the map key because Item
// embeds non-comparable-looking payload fields for some variants but its
// Code() is always a stable, comparable string.
type Inventory struct {
	counts map[string]uint32
	items  map[string]item.Item
}

// New returns an empty inventory.
func New() *Inventory {
	return &Inventory{
		counts: make(map[string]uint32),
		items:  make(map[string]item.Item),
	}
}

// Grant adds n copies of it. Grant(Remove*, n) is just another grant; the
// caller is expected to pass the Remove variant directly when that's the
// intent (e.g. Inventory.Remove below for the common case).
func (inv *Inventory) Grant(it item.Item, n uint32) {
	code := it.Code()
	inv.items[code] = it
	inv.counts[code] += n
}

// Remove decrements count by n, saturating at zero.
func (inv *Inventory) Remove(it item.Item, n uint32) {
	code := it.Code()
	if inv.counts[code] <= n {
		inv.counts[code] = 0
		return
	}
	inv.counts[code] -= n
}

// Count returns how many copies of it are held.
func (inv *Inventory) Count(it item.Item) uint32 {
	return inv.counts[it.Code()]
}

// Has reports whether at least one copy of it is held.
func (inv *Inventory) Has(it item.Item) bool {
	return inv.Count(it) > 0
}

// HasSkill reports whether the player holds the given skill.
func (inv *Inventory) HasSkill(s item.Skill) bool {
	return inv.Has(item.SkillItem(s))
}

// HasShard reports whether the player holds the given shard.
func (inv *Inventory) HasShard(s item.Shard) bool {
	return inv.Has(item.ShardItem(s))
}

// HasTeleporter reports whether the player holds the given teleporter.
func (inv *Inventory) HasTeleporter(t item.Teleporter) bool {
	return inv.Has(item.TeleporterItem(t))
}

// HasWater reports whether the player holds Clean Water.
func (inv *Inventory) HasWater() bool {
	return inv.Has(item.WaterItem)
}

// HasWeaponUpgrade reports whether the player holds the given weapon
// upgrade.
func (inv *Inventory) HasWeaponUpgrade(w item.WeaponUpgrade) bool {
	return inv.Has(item.WeaponUpgradeItem(w))
}

// Resource returns how many of the given resource kind are held.
func (inv *Inventory) Resource(r item.Resource) uint32 {
	return inv.Count(item.ResourceItem(r))
}

// SpiritLight sums every SpiritLight(n) grant's n*count.
func (inv *Inventory) SpiritLight() uint64 {
	var total uint64
	for code, n := range inv.counts {
		it := inv.items[code]
		if it.Kind == item.KindSpiritLight {
			total += uint64(it.Amount) * uint64(n)
		}
	}
	return total
}

// MaxHealth is the player's maximum health: a base of 30 plus 5 per Health
// fragment, capped at maxCap (0 disables the cap).
func (inv *Inventory) MaxHealth(maxCap float32) float32 {
	v := baseMaxHealth + 5.0*float32(inv.Resource(item.Health))
	if maxCap > 0 && v > maxCap {
		return maxCap
	}
	return v
}

// MaxEnergy is the player's maximum energy: a base of 3 plus 0.5 per Energy
// fragment, capped at maxCap (0 disables the cap).
func (inv *Inventory) MaxEnergy(maxCap float32) float32 {
	v := baseMaxEnergy + 0.5*float32(inv.Resource(item.Energy))
	if maxCap > 0 && v > maxCap {
		return maxCap
	}
	return v
}

// Each iterates over every distinct item held with count > 0.
func (inv *Inventory) Each(fn func(it item.Item, count uint32)) {
	for code, n := range inv.counts {
		if n == 0 {
			continue
		}
		fn(inv.items[code], n)
	}
}

// Clone returns a deep copy, used when the progression solver needs to
// speculatively try an inventory delta without mutating the real player
// state.
func (inv *Inventory) Clone() *Inventory {
	c := New()
	for code, n := range inv.counts {
		c.counts[code] = n
		c.items[code] = inv.items[code]
	}
	return c
}
