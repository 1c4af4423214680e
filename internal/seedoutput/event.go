// Package seedoutput models the abstract per-world event stream and the
// spoiler log produced by a generation run (spec §4.5 "Seed output model",
// §6 "Output: SeedUniverse").
package seedoutput

import (
	"fmt"

	"github.com/owowisp/mosswright/internal/item"
)

// TriggerKind discriminates the Trigger sum type.
type TriggerKind int

const (
	TriggerClientEvent TriggerKind = iota
	TriggerBinding
	TriggerCondition
)

// ClientEvent names a built-in client lifecycle hook.
type ClientEvent int

const (
	ClientEventSpawn ClientEvent = iota
	ClientEventReload
	ClientEventDaytime
	ClientEventNighttime
)

func (c ClientEvent) String() string {
	switch c {
	case ClientEventSpawn:
		return "Spawn"
	case ClientEventReload:
		return "Reload"
	case ClientEventDaytime:
		return "Daytime"
	case ClientEventNighttime:
		return "Nighttime"
	default:
		return fmt.Sprintf("ClientEvent(%d)", int(c))
	}
}

// Trigger is the condition that fires an Event's Command.
type Trigger struct {
	Kind         TriggerKind
	ClientEvent  ClientEvent // TriggerClientEvent
	UberGroup    uint32      // TriggerBinding
	UberID       uint32      // TriggerBinding
	ConditionExpr string     // TriggerCondition: a small boolean expression, opaque to this package
}

func (t Trigger) String() string {
	switch t.Kind {
	case TriggerClientEvent:
		return t.ClientEvent.String()
	case TriggerBinding:
		return fmt.Sprintf("Binding(%d|%d)", t.UberGroup, t.UberID)
	case TriggerCondition:
		return fmt.Sprintf("Condition(%s)", t.ConditionExpr)
	default:
		return "Trigger(unknown)"
	}
}

// Event pairs a Trigger with the Item pickup command it grants (spec §4.5:
// "events: Vec<Event>, where Event = { trigger, command }"). The command is
// just the wire-format Item.Code() string — the generator doesn't need the
// richer command VM spec §4.5 sketches beyond what's needed to carry a
// pickup grant, a shop price, or a multiworld redirect.
type Event struct {
	Trigger Trigger
	Command string
}

// PickupEvent builds an Event granting it when Trigger fires.
func PickupEvent(t Trigger, it item.Item) Event {
	return Event{Trigger: t, Command: it.Code()}
}

// SpawnTrigger is the standard "grant this on file load" trigger.
func SpawnTrigger() Trigger {
	return Trigger{Kind: TriggerClientEvent, ClientEvent: ClientEventSpawn}
}

// PickupTrigger fires when the given uber state (the pickup's own flag) is
// set, i.e. when the player collects it.
func PickupTrigger(uberGroup, uberID uint32) Trigger {
	return Trigger{Kind: TriggerBinding, UberGroup: uberGroup, UberID: uberID}
}

// ShopPriceEvent builds the SetShopItemPrice event a shop location's item
// carries alongside its pickup grant (spec §4.4 "Shop pricing").
func ShopPriceEvent(t Trigger, price uint32) Event {
	return Event{Trigger: t, Command: fmt.Sprintf("shop_price|%d", price)}
}

// MultiworldSendEvent is the origin-world half of a cross-world placement:
// it sets the shared cross-reference uber state and queues the "world X's
// Y" message (spec §4.4 "Multiworld"). targetWorld is carried for the
// message text; the actual effect lives on the target world's
// MultiworldReceiveEvent, bound to the same (group, member) pair.
func MultiworldSendEvent(t Trigger, group, member uint32, targetWorld int) Event {
	return Event{Trigger: t, Command: fmt.Sprintf("multiworld_send|%d|%d|%d", group, member, targetWorld)}
}

// MultiworldReceiveEvent is the target-world half: a trigger bound to the
// (group, member) state that the origin world sets, applying its real
// grant.
func MultiworldReceiveEvent(group, member uint32, it item.Item) Event {
	return PickupEvent(Trigger{Kind: TriggerBinding, UberGroup: group, UberID: member}, it)
}
