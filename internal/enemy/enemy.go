// Package enemy defines the closed set of combat encounters the Combat and
// Boss requirement leaves reference (spec §3 "Enemy").
package enemy

import (
	"fmt"

	"github.com/owowisp/mosswright/internal/settings"
)

// Enemy is one of the world's combat encounter types.
type Enemy int

const (
	Mantis Enemy = iota
	Slug
	ShieldSlug
	Lizard
	Skeeto
	SneezeSlug
	Bat
	SmallSkeeto
	SkeetoSwarm
	CrystalMiner
	SpinCrystalMiner
	Balloon
	Nest
	Spiderling
	Waterworm
	Miner
	MaceMiner
	ShieldMiner
	BombSkeeto
	SpinStalker
	Turret
	Mantic
	ForestCreature
	SneezeSlugA
	ShieldCrystalMiner
)

var enemyNames = map[Enemy]string{
	Mantis:             "Mantis",
	Slug:               "Slug",
	ShieldSlug:         "Shield Slug",
	Lizard:             "Lizard",
	Skeeto:             "Skeeto",
	SneezeSlug:         "Sneeze Slug",
	Bat:                "Bat",
	SmallSkeeto:        "Small Skeeto",
	SkeetoSwarm:        "Skeeto Swarm",
	CrystalMiner:       "Crystal Miner",
	SpinCrystalMiner:   "Spin Crystal Miner",
	Balloon:            "Balloon",
	Nest:               "Nest",
	Spiderling:         "Spiderling",
	Waterworm:          "Waterworm",
	Miner:              "Miner",
	MaceMiner:          "Mace Miner",
	ShieldMiner:        "Shield Miner",
	BombSkeeto:         "Bomb Skeeto",
	SpinStalker:        "Spin Stalker",
	Turret:             "Turret",
	Mantic:             "Mantic",
	ForestCreature:     "Forest Creature",
	SneezeSlugA:        "Giant Sneeze Slug",
	ShieldCrystalMiner: "Shielded Crystal Miner",
}

func (e Enemy) String() string {
	if name, ok := enemyNames[e]; ok {
		return name
	}
	return fmt.Sprintf("Enemy(%d)", int(e))
}

// Health is the enemy's hit points. Each enemy has one flat value at every
// difficulty; d is not read.
func (e Enemy) Health(d settings.Difficulty) float32 {
	switch e {
	case Mantis:
		return 48
	case Slug:
		return 16
	case ShieldSlug:
		return 16
	case Lizard:
		return 40
	case Skeeto:
		return 8
	case SneezeSlug:
		return 20
	case Bat:
		return 24
	case SmallSkeeto:
		return 4
	case SkeetoSwarm:
		return 4
	case CrystalMiner, SpinCrystalMiner, ShieldCrystalMiner:
		return 32
	case Balloon:
		return 1
	case Nest:
		return 40
	case Spiderling:
		return 12
	case Waterworm:
		return 24
	case Miner, MaceMiner, ShieldMiner:
		return 36
	case BombSkeeto:
		return 8
	case SpinStalker:
		return 60
	case Turret:
		return 28
	case Mantic:
		return 80
	case ForestCreature:
		return 44
	case SneezeSlugA:
		return 60
	default:
		return 20
	}
}

// Shielded reports whether the enemy requires a shield-breaking weapon
// before it can take damage.
func (e Enemy) Shielded() bool {
	switch e {
	case ShieldSlug, ShieldMiner, ShieldCrystalMiner:
		return true
	default:
		return false
	}
}

// Armored reports whether the enemy takes half damage from every weapon
// except Spear (Spear ignores armor, and deals double damage on Unsafe).
func (e Enemy) Armored() bool {
	switch e {
	case CrystalMiner, SpinCrystalMiner, ShieldCrystalMiner, Turret, Mantic:
		return true
	default:
		return false
	}
}

// Aerial reports whether the enemy flies out of melee reach.
func (e Enemy) Aerial() bool {
	switch e {
	case Skeeto, SmallSkeeto, SkeetoSwarm, Bat, BombSkeeto, Balloon:
		return true
	default:
		return false
	}
}

// Ranged reports whether the enemy attacks from range, requiring Danger
// coverage even when the player stays at melee distance from its spawn.
func (e Enemy) Ranged() bool {
	switch e {
	case Turret, Mantic, SneezeSlug, SneezeSlugA, SpinStalker:
		return true
	default:
		return false
	}
}

// Dangerous reports whether the enemy's single-hit damage is high enough
// that a Danger requirement must be satisfied even for a trivial kill.
func (e Enemy) Dangerous() bool {
	switch e {
	case Mantic, SpinStalker, Nest, ForestCreature:
		return true
	default:
		return false
	}
}

// Flying is Aerial restricted to enemies that never land, for weapon
// selection rules that exclude ground-only tools outright.
func (e Enemy) Flying() bool {
	switch e {
	case Skeeto, SmallSkeeto, SkeetoSwarm, Bat, BombSkeeto:
		return true
	default:
		return false
	}
}

// MaxHit is the enemy's highest single-attack damage at the given
// difficulty, used to derive a per-enemy Danger requirement in Combat
// (spec §4.1.1).
func (e Enemy) MaxHit(d settings.Difficulty) float32 {
	switch {
	case e.Dangerous():
		return 16
	case e.Ranged():
		return 12
	default:
		return 8
	}
}
