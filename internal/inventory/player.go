package inventory

import "github.com/owowisp/mosswright/internal/settings"

// MaxHealthCap and MaxEnergyCap bound how far fragments can push the
// player's stats; 0 disables a cap. The shipped default preset has no cap.
const (
	DefaultMaxHealthCap float32 = 0
	DefaultMaxEnergyCap float32 = 0
)

// Player pairs an Inventory with the settings that modify how its counts
// translate into stat values (spec component table: "Inventory & Player").
type Player struct {
	Inventory     *Inventory
	Settings      settings.WorldSettings
	MaxHealthCap  float32
	MaxEnergyCap  float32
}

// NewPlayer returns an empty player under the given world settings.
func NewPlayer(s settings.WorldSettings) *Player {
	return &Player{
		Inventory:    New(),
		Settings:     s,
		MaxHealthCap: DefaultMaxHealthCap,
		MaxEnergyCap: DefaultMaxEnergyCap,
	}
}

// MaxHealth is the player's current maximum health.
func (p *Player) MaxHealth() float32 {
	return p.Inventory.MaxHealth(p.MaxHealthCap)
}

// MaxEnergy is the player's current maximum energy.
func (p *Player) MaxEnergy() float32 {
	return p.Inventory.MaxEnergy(p.MaxEnergyCap)
}

// Clone deep-copies the player, used by the progression solver's
// speculative candidate simulation.
func (p *Player) Clone() *Player {
	return &Player{
		Inventory:    p.Inventory.Clone(),
		Settings:     p.Settings,
		MaxHealthCap: p.MaxHealthCap,
		MaxEnergyCap: p.MaxEnergyCap,
	}
}
