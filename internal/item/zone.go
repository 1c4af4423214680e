package item

import "fmt"

// Zone is a named region of the world, used by Relic placement and
// map-hint pricing.
type Zone int

const (
	ZoneMarsh Zone = iota
	ZoneHollow
	ZoneGlades
	ZoneWellspring
	ZoneWoods
	ZoneReach
	ZoneDepths
	ZonePools
	ZoneWastes
	ZoneRuins
	ZoneWillow
	ZoneBurrows
	ZoneVoid
)

var zoneNames = map[Zone]string{
	ZoneMarsh:      "Marsh",
	ZoneHollow:     "Hollow",
	ZoneGlades:     "Glades",
	ZoneWellspring: "Wellspring",
	ZoneWoods:      "Woods",
	ZoneReach:      "Reach",
	ZoneDepths:     "Depths",
	ZonePools:      "Pools",
	ZoneWastes:     "Wastes",
	ZoneRuins:      "Ruins",
	ZoneWillow:     "Willow",
	ZoneBurrows:    "Burrows",
	ZoneVoid:       "Void",
}

func (z Zone) String() string {
	if name, ok := zoneNames[z]; ok {
		return name
	}
	return fmt.Sprintf("Zone(%d)", int(z))
}

// ID returns the wire-format zone id.
func (z Zone) ID() uint16 { return uint16(z) }
