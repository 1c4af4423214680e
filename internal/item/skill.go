package item

import (
	"fmt"

	"github.com/owowisp/mosswright/internal/settings"
)

// Skill is one of the player's ~23 movement/combat abilities.
type Skill int

const (
	Bash Skill = iota
	WallJump
	DoubleJump
	Launch
	Glide
	WaterBreath
	Grenade
	Grapple
	Flash
	Spear
	Regenerate
	Bow
	Hammer
	Sword
	Burrow
	Dash
	WaterDash
	Shuriken
	Seir
	Blaze
	Sentry
	Flap
	AncestralLight
)

var skillNames = map[Skill]string{
	Bash:           "Bash",
	WallJump:       "Wall Jump",
	DoubleJump:     "Double Jump",
	Launch:         "Launch",
	Glide:          "Glide",
	WaterBreath:    "Water Breath",
	Grenade:        "Grenade",
	Grapple:        "Grapple",
	Flash:          "Flash",
	Spear:          "Spear",
	Regenerate:     "Regenerate",
	Bow:            "Bow",
	Hammer:         "Hammer",
	Sword:          "Sword",
	Burrow:         "Burrow",
	Dash:           "Dash",
	WaterDash:      "Water Dash",
	Shuriken:       "Shuriken",
	Seir:           "Seir",
	Blaze:          "Blaze",
	Sentry:         "Sentry",
	Flap:           "Flap",
	AncestralLight: "Ancestral Light",
}

func (s Skill) String() string {
	if name, ok := skillNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Skill(%d)", int(s))
}

// wire IDs match the game client's item-effect protocol.
var skillToID = map[Skill]uint16{
	Bash:           0,
	WallJump:       3,
	DoubleJump:     5,
	Launch:         8,
	Glide:          14,
	WaterBreath:    23,
	Grenade:        51,
	Grapple:        57,
	Flash:          62,
	Spear:          74,
	Regenerate:     77,
	Bow:            97,
	Hammer:         98,
	Sword:          100,
	Burrow:         101,
	Dash:           102,
	WaterDash:      104,
	Shuriken:       106,
	Seir:           108,
	Blaze:          115,
	Sentry:         116,
	Flap:           118,
	AncestralLight: 120,
}

var idToSkill = func() map[uint16]Skill {
	m := make(map[uint16]Skill, len(skillToID))
	for s, id := range skillToID {
		m[id] = s
	}
	m[121] = AncestralLight // alternate wire id, see original_source
	return m
}()

// ID returns the wire-format skill id.
func (s Skill) ID() uint16 { return skillToID[s] }

// SkillFromID resolves a wire-format skill id back to a Skill.
func SkillFromID(id uint16) (Skill, bool) {
	s, ok := idToSkill[id]
	return s, ok
}

// EnergyCost is the energy consumed per use of a consuming skill.
func (s Skill) EnergyCost() float32 {
	switch s {
	case Bow:
		return 0.25
	case Shuriken:
		return 0.5
	case Grenade, Flash, Regenerate, Blaze, Sentry:
		return 1.0
	case Spear:
		return 2.0
	default:
		return 0.0
	}
}

// Damage is the direct hit damage a weapon skill deals, difficulty-scaled
// where the original game data scales it (Grenade on Unsafe).
func (s Skill) Damage(d settings.Difficulty) float32 {
	switch s {
	case Bow, Sword:
		return 4.0
	case Launch:
		return 5.0
	case Hammer, Flash:
		return 12.0
	case Shuriken:
		return 7.0
	case Grenade:
		if d >= settings.Unsafe {
			return 8.0
		}
		return 4.0
	case Spear:
		return 20.0
	case Blaze:
		return 3.0
	case Sentry:
		return 8.8
	default:
		return 0.0
	}
}

// BurnDamage is additional damage-over-time a weapon skill applies.
func (s Skill) BurnDamage() float32 {
	switch s {
	case Grenade:
		return 9.0
	case Blaze:
		return 10.8
	default:
		return 0.0
	}
}

// DamagePerEnergy estimates how much energy is required to deal 10 damage
// with this skill; used by the combat requirement to pick the cheapest
// feasible weapon. "how much energy do you need to deal 10 damage" produces
// a more realistic weapon ordering than raw damage-per-energy.
func (s Skill) DamagePerEnergy(d settings.Difficulty) float32 {
	total := s.Damage(d) + s.BurnDamage()
	if total <= 0 {
		return 0
	}
	cost := s.EnergyCost()
	if cost == 0 {
		return 0
	}
	hits := float32(int(10.0/total) + 1)
	if 10.0/total == float32(int(10.0/total)) {
		hits = float32(10.0 / total)
	}
	return hits * cost
}

// BreaksShields reports whether this weapon can break a shielded enemy's
// shield.
func (s Skill) BreaksShields() bool {
	switch s {
	case Hammer, Launch, Spear, Grenade:
		return true
	default:
		return false
	}
}

// IsRanged reports whether this weapon can hit flying/aerial enemies.
func (s Skill) IsRanged() bool {
	switch s {
	case Bow, Shuriken, Spear, Grenade, Flash, Sentry, Launch:
		return true
	default:
		return false
	}
}

// IsWallBreaker reports whether this weapon can be used against
// BreakWall/ShurikenBreak/SentryBreak style obstacles.
func (s Skill) IsWallBreaker() bool {
	switch s {
	case Sword, Hammer, Bow, Grenade, Shuriken, Spear, Sentry, Flash:
		return true
	default:
		return false
	}
}
