package item

import "fmt"

// ToggleTarget names a world-state flag a Toggle command flips.
type ToggleTarget int

const (
	ToggleKwolokDoor ToggleTarget = iota
	ToggleRain
	ToggleHowl
)

func (t ToggleTarget) String() string {
	switch t {
	case ToggleKwolokDoor:
		return "KwolokDoor"
	case ToggleRain:
		return "Rain"
	case ToggleHowl:
		return "Howl"
	default:
		return fmt.Sprintf("ToggleTarget(%d)", int(t))
	}
}

// CommandKind distinguishes the deferred-effect variants spec §3 groups
// under "Command(…)".
type CommandKind int

const (
	CommandAutosave CommandKind = iota
	CommandResource
	CommandCheckpoint
	CommandSetHealth
	CommandSetEnergy
	CommandSetSpiritLight
	CommandWarp
	CommandToggle
	CommandIfEqual
	CommandIfGreater
	CommandIfLess
)

// Command is a deferred effect pickup: never progression, always resolved
// by the client at pickup time rather than by the reachability engine.
type Command struct {
	Kind       CommandKind
	Resource   Resource // CommandResource
	Amount     int16    // CommandResource, CommandSetHealth/Energy/SpiritLight
	X, Y       int16    // CommandWarp
	Target     ToggleTarget
	On         bool           // CommandToggle
	UberGroup  uint32         // CommandIfEqual/Greater/Less
	UberState  uint32         // CommandIfEqual/Greater/Less
	Threshold  int32          // CommandIfEqual/Greater/Less
	Then       *Item          // CommandIfEqual/Greater/Less: pickup granted if the condition holds
}

func (c Command) String() string {
	switch c.Kind {
	case CommandAutosave:
		return "Autosave"
	case CommandResource:
		return fmt.Sprintf("Set %s by %d", c.Resource, c.Amount)
	case CommandCheckpoint:
		return "Checkpoint"
	case CommandSetHealth:
		return fmt.Sprintf("Set Health to %d", c.Amount)
	case CommandSetEnergy:
		return fmt.Sprintf("Set Energy to %d", c.Amount)
	case CommandSetSpiritLight:
		return fmt.Sprintf("Set Spirit Light to %d", c.Amount)
	case CommandWarp:
		return fmt.Sprintf("Warp to (%d, %d)", c.X, c.Y)
	case CommandToggle:
		return fmt.Sprintf("Toggle %s %v", c.Target, c.On)
	case CommandIfEqual, CommandIfGreater, CommandIfLess:
		return fmt.Sprintf("Conditional grant on uber state %d|%d", c.UberGroup, c.UberState)
	default:
		return "Command(unknown)"
	}
}

// Code returns the wire payload for a Command, nested under the top-level
// Item's "4|" prefix.
func (c Command) Code() string {
	switch c.Kind {
	case CommandAutosave:
		return "0"
	case CommandResource:
		return fmt.Sprintf("1|%d|%d", c.Resource.ID(), c.Amount)
	case CommandCheckpoint:
		return "2"
	case CommandSetHealth:
		return fmt.Sprintf("12|%d", c.Amount)
	case CommandSetEnergy:
		return fmt.Sprintf("13|%d", c.Amount)
	case CommandSetSpiritLight:
		return fmt.Sprintf("14|%d", c.Amount)
	case CommandWarp:
		return fmt.Sprintf("8|%d|%d", c.X, c.Y)
	case CommandToggle:
		on := 0
		if c.On {
			on = 1
		}
		return fmt.Sprintf("7|%d|%d", int(c.Target), on)
	case CommandIfEqual:
		return fmt.Sprintf("17|%d|%d|%d|%s", c.UberGroup, c.UberState, c.Threshold, c.Then.Code())
	case CommandIfGreater:
		return fmt.Sprintf("18|%d|%d|%d|%s", c.UberGroup, c.UberState, c.Threshold, c.Then.Code())
	case CommandIfLess:
		return fmt.Sprintf("19|%d|%d|%d|%s", c.UberGroup, c.UberState, c.Threshold, c.Then.Code())
	default:
		return "0"
	}
}
