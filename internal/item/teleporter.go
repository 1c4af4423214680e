package item

import "fmt"

// Teleporter identifies one of the world's fast-travel anchors. Numeric
// values match the game client's teleporter table.
type Teleporter int

const (
	Burrows Teleporter = iota
	Den
	EastLuma
	Wellspring
	Reach
	Hollow
	Depths
	WestWoods
	EastWoods
	WestWastes
	EastWastes
	OuterRuins
	Willow
	WestLuma
	InnerRuins
	Shriek
	Marsh
	Glades
)

var teleporterNames = map[Teleporter]string{
	Burrows:    "Burrows",
	Den:        "Den",
	EastLuma:   "East Luma",
	Wellspring: "Wellspring",
	Reach:      "Reach",
	Hollow:     "Hollow",
	Depths:     "Depths",
	WestWoods:  "West Woods",
	EastWoods:  "East Woods",
	WestWastes: "West Wastes",
	EastWastes: "East Wastes",
	OuterRuins: "Outer Ruins",
	Willow:     "Willow",
	WestLuma:   "West Luma",
	InnerRuins: "Inner Ruins",
	Shriek:     "Shriek",
	Marsh:      "Marsh",
	Glades:     "Glades",
}

func (t Teleporter) String() string {
	if name, ok := teleporterNames[t]; ok {
		return name + " TP"
	}
	return fmt.Sprintf("Teleporter(%d)", int(t))
}

// ID returns the wire-format teleporter id.
func (t Teleporter) ID() uint16 { return uint16(t) }

// TeleporterFromID resolves a wire-format teleporter id back to a Teleporter.
func TeleporterFromID(id uint16) (Teleporter, bool) {
	t := Teleporter(id)
	_, ok := teleporterNames[t]
	return t, ok
}
