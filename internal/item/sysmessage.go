package item

import "fmt"

// SysMessage is a client-rendered status message; never progression.
type SysMessage int

const (
	RelicList SysMessage = iota
	MapRelicList
	PickupCount
	GoalProgress
)

var sysMessageNames = map[SysMessage]string{
	RelicList:    "relic list",
	MapRelicList: "map relic list",
	PickupCount:  "pickup count",
	GoalProgress: "goal progress",
}

func (m SysMessage) String() string {
	if name, ok := sysMessageNames[m]; ok {
		return name
	}
	return fmt.Sprintf("SysMessage(%d)", int(m))
}

func (m SysMessage) ID() uint16 { return uint16(m) }

// WheelBind names the ability slot a wheel entry is bound to.
type WheelBind int

const (
	WheelBindAll WheelBind = iota
	WheelBindAbility1
	WheelBindAbility2
	WheelBindAbility3
)

// WheelCommand configures an entry in the client's radial item wheel;
// UI-only, never progression.
type WheelCommand struct {
	Wheel    uint16
	Position uint8
	Name     string
	Bind     WheelBind
	Item     *Item
	ClearAll bool
}

func (w WheelCommand) String() string {
	if w.ClearAll {
		return "Clear wheel"
	}
	return fmt.Sprintf("Wheel %d slot %d: %s", w.Wheel, w.Position, w.Name)
}

func (w WheelCommand) Code() string {
	if w.ClearAll {
		return "8"
	}
	if w.Item != nil {
		return fmt.Sprintf("4|%d|%d|%d|%s", w.Wheel, w.Position, int(w.Bind), w.Item.Code())
	}
	return fmt.Sprintf("0|%d|%d|%s", w.Wheel, w.Position, w.Name)
}

// ShopCommand configures a shop listing's presentation; UI-only, never
// progression.
type ShopCommand struct {
	UberGroup uint32
	UberID    uint32
	Title     string
	Locked    bool
	Visible   bool
}

func (s ShopCommand) String() string {
	return fmt.Sprintf("Shop listing %d|%d: %q", s.UberGroup, s.UberID, s.Title)
}

func (s ShopCommand) Code() string {
	locked := 0
	if s.Locked {
		locked = 1
	}
	return fmt.Sprintf("3|%d|%d|%d", s.UberGroup, s.UberID, locked)
}

// ZoneHintType selects which facet of a zone a Hint reveals.
type ZoneHintType int

const (
	HintSkills ZoneHintType = iota + 1
	HintWarps
)

const HintAll ZoneHintType = 10

// Hint is a purchasable clue about a zone's contents.
type Hint struct {
	Zone Zone
	Type ZoneHintType
}

func (h Hint) String() string {
	return fmt.Sprintf("%s hint", h.Zone)
}

func (h Hint) Code() string {
	return fmt.Sprintf("%d|%d", h.Zone.ID(), int(h.Type))
}
