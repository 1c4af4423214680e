// Package item defines the closed set of pickup variants (spec §3 "Items"):
// currency, resources, skills, shards, teleporters, weapon upgrades, and the
// various non-progression cosmetic/UI pickups, plus their wire-format
// encoding.
package item

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/owowisp/mosswright/internal/settings"
)

// Kind discriminates the Item sum type's variants.
type Kind int

const (
	KindSpiritLight Kind = iota
	KindRemoveSpiritLight
	KindResource
	KindSkill
	KindRemoveSkill
	KindShard
	KindRemoveShard
	KindCommand
	KindTeleporter
	KindRemoveTeleporter
	KindMessage
	KindUberStateSet
	KindWater
	KindRemoveWater
	KindWeaponUpgrade
	KindRemoveWeaponUpgrade
	KindBonusItem
	KindBonusUpgrade
	KindHint
	KindRelic
	KindSysMessage
	KindWheelCommand
	KindShopCommand
)

// Item is a closed sum of every pickup variant the generator can place.
// Exactly one of the payload fields is meaningful for a given Kind; callers
// should switch on Kind rather than inspect fields directly.
type Item struct {
	Kind Kind

	Amount uint32 // SpiritLight / RemoveSpiritLight

	Resource      Resource
	Skill         Skill
	Shard         Shard
	Teleporter    Teleporter
	WeaponUpgrade WeaponUpgrade
	BonusItem     BonusItem
	BonusUpgrade  BonusUpgrade
	Command       Command
	UberState     UberStateSet
	Hint          Hint
	SysMessage    SysMessage
	WheelCommand  WheelCommand
	ShopCommand   ShopCommand
	Relic         Zone
	Message       string
}

// SpiritLight constructs a stacked currency pickup.
func SpiritLightItem(n uint32) Item { return Item{Kind: KindSpiritLight, Amount: n} }

// RemoveSpiritLightItem constructs the inverse of SpiritLight.
func RemoveSpiritLightItem(n uint32) Item { return Item{Kind: KindRemoveSpiritLight, Amount: n} }

// ResourceItem constructs a Resource pickup.
func ResourceItem(r Resource) Item { return Item{Kind: KindResource, Resource: r} }

// SkillItem constructs a Skill pickup.
func SkillItem(s Skill) Item { return Item{Kind: KindSkill, Skill: s} }

// RemoveSkillItem constructs the inverse of Skill.
func RemoveSkillItem(s Skill) Item { return Item{Kind: KindRemoveSkill, Skill: s} }

// ShardItem constructs a Shard pickup.
func ShardItem(s Shard) Item { return Item{Kind: KindShard, Shard: s} }

// RemoveShardItem constructs the inverse of Shard.
func RemoveShardItem(s Shard) Item { return Item{Kind: KindRemoveShard, Shard: s} }

// TeleporterItem constructs a Teleporter pickup.
func TeleporterItem(t Teleporter) Item { return Item{Kind: KindTeleporter, Teleporter: t} }

// RemoveTeleporterItem constructs the inverse of Teleporter.
func RemoveTeleporterItem(t Teleporter) Item { return Item{Kind: KindRemoveTeleporter, Teleporter: t} }

// WeaponUpgradeItem constructs a WeaponUpgrade pickup.
func WeaponUpgradeItem(w WeaponUpgrade) Item { return Item{Kind: KindWeaponUpgrade, WeaponUpgrade: w} }

// RemoveWeaponUpgradeItem constructs the inverse of WeaponUpgrade.
func RemoveWeaponUpgradeItem(w WeaponUpgrade) Item {
	return Item{Kind: KindRemoveWeaponUpgrade, WeaponUpgrade: w}
}

// WaterItem is the boolean progression item "Clean Water".
var WaterItem = Item{Kind: KindWater}

// RemoveWaterItem is the inverse of Water.
var RemoveWaterItem = Item{Kind: KindRemoveWater}

// MessageItem constructs a text-only pickup.
func MessageItem(text string) Item { return Item{Kind: KindMessage, Message: text} }

// UberStateSetItem constructs a game-state-setting pickup.
func UberStateSetItem(u UberStateSet) Item { return Item{Kind: KindUberStateSet, UberState: u} }

// CommandItem constructs a deferred-effect pickup.
func CommandItem(c Command) Item { return Item{Kind: KindCommand, Command: c} }

// BonusItemItem constructs a cosmetic bonus pickup.
func BonusItemItem(b BonusItem) Item { return Item{Kind: KindBonusItem, BonusItem: b} }

// BonusUpgradeItem constructs a cosmetic weapon-efficiency pickup.
func BonusUpgradeItem(b BonusUpgrade) Item { return Item{Kind: KindBonusUpgrade, BonusUpgrade: b} }

// HintItem constructs a purchasable hint.
func HintItem(h Hint) Item { return Item{Kind: KindHint, Hint: h} }

// RelicItem constructs a zone relic pickup.
func RelicItem(z Zone) Item { return Item{Kind: KindRelic, Relic: z} }

// SysMessageItem constructs a client status message pickup.
func SysMessageItem(m SysMessage) Item { return Item{Kind: KindSysMessage, SysMessage: m} }

// WheelCommandItem constructs a radial-wheel configuration pickup.
func WheelCommandItem(w WheelCommand) Item { return Item{Kind: KindWheelCommand, WheelCommand: w} }

// ShopCommandItem constructs a shop-listing configuration pickup.
func ShopCommandItem(s ShopCommand) Item { return Item{Kind: KindShopCommand, ShopCommand: s} }

func (it Item) String() string {
	switch it.Kind {
	case KindSpiritLight:
		if it.Amount == 1 {
			return "Spirit Light"
		}
		return fmt.Sprintf("%d Spirit Light", it.Amount)
	case KindRemoveSpiritLight:
		return fmt.Sprintf("Remove %d Spirit Light", it.Amount)
	case KindResource:
		return it.Resource.String()
	case KindSkill:
		return it.Skill.String()
	case KindRemoveSkill:
		return "Remove " + it.Skill.String()
	case KindShard:
		return it.Shard.String()
	case KindRemoveShard:
		return "Remove " + it.Shard.String()
	case KindCommand:
		return it.Command.String()
	case KindTeleporter:
		return it.Teleporter.String()
	case KindRemoveTeleporter:
		return "Remove " + it.Teleporter.String()
	case KindMessage:
		return it.Message
	case KindUberStateSet:
		return it.UberState.String()
	case KindWater:
		return "Clean Water"
	case KindRemoveWater:
		return "Remove Clean Water"
	case KindWeaponUpgrade:
		return it.WeaponUpgrade.String()
	case KindRemoveWeaponUpgrade:
		return "Remove " + it.WeaponUpgrade.String()
	case KindBonusItem:
		return it.BonusItem.String()
	case KindBonusUpgrade:
		return it.BonusUpgrade.String()
	case KindHint:
		return it.Hint.String()
	case KindRelic:
		return it.Relic.String() + " Relic"
	case KindSysMessage:
		return it.SysMessage.String()
	case KindWheelCommand:
		return it.WheelCommand.String()
	case KindShopCommand:
		return it.ShopCommand.String()
	default:
		return "Item(unknown)"
	}
}

// Code returns the "<kind>|<payload>" wire format. ParseCode reads back
// only the codes of kinds 0, 1, 2, 3, 5, 6, 9, 10, 11, 14 and 18; Command,
// UberStateSet, Hint, SysMessage, WheelCommand and ShopCommand codes
// (kinds 4, 8, 12, 15, 16, 17) do not round-trip.
func (it Item) Code() string {
	switch it.Kind {
	case KindSpiritLight:
		return fmt.Sprintf("0|%d", it.Amount)
	case KindRemoveSpiritLight:
		return fmt.Sprintf("0|-%d", it.Amount)
	case KindResource:
		return fmt.Sprintf("1|%d", it.Resource.ID())
	case KindSkill:
		return fmt.Sprintf("2|%d", it.Skill.ID())
	case KindRemoveSkill:
		return fmt.Sprintf("2|-%d", it.Skill.ID())
	case KindShard:
		return fmt.Sprintf("3|%d", it.Shard.ID())
	case KindRemoveShard:
		return fmt.Sprintf("3|-%d", it.Shard.ID())
	case KindCommand:
		return "4|" + it.Command.Code()
	case KindTeleporter:
		return fmt.Sprintf("5|%d", it.Teleporter.ID())
	case KindRemoveTeleporter:
		return fmt.Sprintf("5|-%d", it.Teleporter.ID())
	case KindMessage:
		return "6|" + it.Message
	case KindUberStateSet:
		return "8|" + it.UberState.Code()
	case KindWater:
		return "9|0"
	case KindRemoveWater:
		return "9|-0"
	case KindWeaponUpgrade:
		return fmt.Sprintf("18|%d", it.WeaponUpgrade.ID())
	case KindRemoveWeaponUpgrade:
		return fmt.Sprintf("18|-%d", it.WeaponUpgrade.ID())
	case KindBonusItem:
		return fmt.Sprintf("10|%d", it.BonusItem.ID())
	case KindBonusUpgrade:
		return fmt.Sprintf("11|%d", it.BonusUpgrade.ID())
	case KindHint:
		return "12|" + it.Hint.Code()
	case KindRelic:
		return fmt.Sprintf("14|%d", it.Relic.ID())
	case KindSysMessage:
		if it.SysMessage == MapRelicList {
			return fmt.Sprintf("15|%d|%d", it.Relic.ID(), it.SysMessage.ID())
		}
		return fmt.Sprintf("15|%d", it.SysMessage.ID())
	case KindWheelCommand:
		return "16|" + it.WheelCommand.Code()
	case KindShopCommand:
		return "17|" + it.ShopCommand.Code()
	default:
		return "0|0"
	}
}

// ParseCode resolves a "<kind>|<payload>" wire string back into an Item.
// It handles kinds 0, 1, 2, 3, 5, 6, 9, 10, 11, 14 and 18; any other kind,
// including Command/UberStateSet/Hint/SysMessage/WheelCommand/ShopCommand
// (whose payloads nest further pipe-delimited fields), returns an error.
func ParseCode(code string) (Item, error) {
	parts := strings.SplitN(code, "|", 2)
	if len(parts) != 2 {
		return Item{}, fmt.Errorf("item: malformed code %q", code)
	}
	kindID, err := strconv.Atoi(parts[0])
	if err != nil {
		return Item{}, fmt.Errorf("item: malformed kind in code %q: %w", code, err)
	}
	payload := parts[1]

	switch kindID {
	case 0:
		return parseSpiritLight(payload)
	case 1:
		return parseResource(payload)
	case 2:
		return parseSkill(payload)
	case 3:
		return parseShard(payload)
	case 5:
		return parseTeleporter(payload)
	case 6:
		return MessageItem(payload), nil
	case 9:
		if payload == "-0" {
			return RemoveWaterItem, nil
		}
		return WaterItem, nil
	case 10:
		return parseBonusItem(payload)
	case 11:
		return parseBonusUpgrade(payload)
	case 14:
		return parseRelic(payload)
	case 18:
		return parseWeaponUpgrade(payload)
	default:
		return Item{}, fmt.Errorf("item: unsupported kind %d in code %q", kindID, code)
	}
}

func parseSpiritLight(payload string) (Item, error) {
	if strings.HasPrefix(payload, "-") {
		n, err := strconv.ParseUint(payload[1:], 10, 32)
		if err != nil {
			return Item{}, fmt.Errorf("item: bad RemoveSpiritLight amount %q: %w", payload, err)
		}
		return RemoveSpiritLightItem(uint32(n)), nil
	}
	n, err := strconv.ParseUint(payload, 10, 32)
	if err != nil {
		return Item{}, fmt.Errorf("item: bad SpiritLight amount %q: %w", payload, err)
	}
	return SpiritLightItem(uint32(n)), nil
}

func parseResource(payload string) (Item, error) {
	id, err := strconv.ParseUint(payload, 10, 16)
	if err != nil {
		return Item{}, fmt.Errorf("item: bad resource id %q: %w", payload, err)
	}
	r, ok := ResourceFromID(uint16(id))
	if !ok {
		return Item{}, fmt.Errorf("item: unknown resource id %d", id)
	}
	return ResourceItem(r), nil
}

func parseSkill(payload string) (Item, error) {
	remove := strings.HasPrefix(payload, "-")
	idStr := payload
	if remove {
		idStr = payload[1:]
	}
	id, err := strconv.ParseUint(idStr, 10, 16)
	if err != nil {
		return Item{}, fmt.Errorf("item: bad skill id %q: %w", payload, err)
	}
	s, ok := SkillFromID(uint16(id))
	if !ok {
		return Item{}, fmt.Errorf("item: unknown skill id %d", id)
	}
	if remove {
		return RemoveSkillItem(s), nil
	}
	return SkillItem(s), nil
}

func parseShard(payload string) (Item, error) {
	remove := strings.HasPrefix(payload, "-")
	idStr := payload
	if remove {
		idStr = payload[1:]
	}
	id, err := strconv.ParseUint(idStr, 10, 16)
	if err != nil {
		return Item{}, fmt.Errorf("item: bad shard id %q: %w", payload, err)
	}
	s, ok := ShardFromID(uint16(id))
	if !ok {
		return Item{}, fmt.Errorf("item: unknown shard id %d", id)
	}
	if remove {
		return RemoveShardItem(s), nil
	}
	return ShardItem(s), nil
}

func parseTeleporter(payload string) (Item, error) {
	remove := strings.HasPrefix(payload, "-")
	idStr := payload
	if remove {
		idStr = payload[1:]
	}
	id, err := strconv.ParseUint(idStr, 10, 16)
	if err != nil {
		return Item{}, fmt.Errorf("item: bad teleporter id %q: %w", payload, err)
	}
	t, ok := TeleporterFromID(uint16(id))
	if !ok {
		return Item{}, fmt.Errorf("item: unknown teleporter id %d", id)
	}
	if remove {
		return RemoveTeleporterItem(t), nil
	}
	return TeleporterItem(t), nil
}

func parseWeaponUpgrade(payload string) (Item, error) {
	remove := strings.HasPrefix(payload, "-")
	idStr := payload
	if remove {
		idStr = payload[1:]
	}
	id, err := strconv.ParseUint(idStr, 10, 16)
	if err != nil {
		return Item{}, fmt.Errorf("item: bad weapon upgrade id %q: %w", payload, err)
	}
	w, ok := WeaponUpgradeFromID(uint16(id))
	if !ok {
		return Item{}, fmt.Errorf("item: unknown weapon upgrade id %d", id)
	}
	if remove {
		return RemoveWeaponUpgradeItem(w), nil
	}
	return WeaponUpgradeItem(w), nil
}

func parseBonusItem(payload string) (Item, error) {
	id, err := strconv.ParseUint(payload, 10, 16)
	if err != nil {
		return Item{}, fmt.Errorf("item: bad bonus item id %q: %w", payload, err)
	}
	b, ok := BonusItemFromID(uint16(id))
	if !ok {
		return Item{}, fmt.Errorf("item: unknown bonus item id %d", id)
	}
	return BonusItemItem(b), nil
}

func parseBonusUpgrade(payload string) (Item, error) {
	id, err := strconv.ParseUint(payload, 10, 16)
	if err != nil {
		return Item{}, fmt.Errorf("item: bad bonus upgrade id %q: %w", payload, err)
	}
	b, ok := BonusUpgradeFromID(uint16(id))
	if !ok {
		return Item{}, fmt.Errorf("item: unknown bonus upgrade id %d", id)
	}
	return BonusUpgradeItem(b), nil
}

func parseRelic(payload string) (Item, error) {
	id, err := strconv.ParseUint(payload, 10, 16)
	if err != nil {
		return Item{}, fmt.Errorf("item: bad relic zone id %q: %w", payload, err)
	}
	return RelicItem(Zone(id)), nil
}

// Cost is the progression-weighting cost used by the progression solver's
// `new_reached_count / item_cost^1.5` scoring (spec §4.3). Larger costs make
// an item a less attractive early placement for a given reach gain.
func (it Item) Cost() uint16 {
	switch it.Kind {
	case KindSpiritLight:
		return uint16(it.Amount)
	case KindResource:
		switch it.Resource {
		case Ore:
			return 20
		case Health:
			return 240
		case Keystone, Energy:
			return 320
		case ShardSlot:
			return 480
		}
	case KindSkill:
		switch it.Skill {
		case Regenerate, WaterBreath:
			return 200
		case Sword, Hammer:
			return 600
		case WallJump, DoubleJump, Dash:
			return 1200
		case Glide, Grapple:
			return 1400
		case Bow, Shuriken:
			return 1600
		case Burrow, Bash, Flap, WaterDash, Grenade, Flash, Seir:
			return 1800
		case Blaze, Sentry, Spear:
			return 2800
		case AncestralLight:
			return 3000
		case Launch:
			return 40000
		}
	case KindWater:
		return 1800
	case KindShard:
		return 1000
	case KindTeleporter:
		if it.Teleporter == Marsh {
			return 30000
		}
		return 25000
	}
	return 400
}

// ShopPrice is the spirit-light price a shop charges for this item, before
// any RandomShopPrice() jitter is applied.
func (it Item) ShopPrice() uint16 {
	switch it.Kind {
	case KindResource:
		switch it.Resource {
		case Health:
			return 200
		case Energy:
			return 150
		case Ore, Keystone:
			return 100
		case ShardSlot:
			return 400
		}
	case KindSkill:
		if it.Skill == Blaze {
			return 420
		}
		return 500
	case KindWater:
		return 400
	case KindTeleporter:
		return 250
	case KindShard, KindBonusItem:
		return 300
	case KindBonusUpgrade:
		if it.BonusUpgrade == SentryEfficiency || it.BonusUpgrade == RapidHammer {
			return 600
		}
		return 300
	case KindHint:
		switch it.Hint.Zone {
		case ZoneBurrows, ZoneWillow:
			return 50
		case ZoneHollow, ZoneWellspring, ZoneWoods, ZoneReach, ZoneDepths, ZonePools, ZoneWastes, ZoneRuins:
			return 150
		case ZoneMarsh, ZoneGlades:
			return 200
		default:
			return 150
		}
	}
	return 200
}

// RandomShopPrice reports whether the shop applies random jitter on top of
// ShopPrice for this item.
func (it Item) RandomShopPrice() bool {
	switch it.Kind {
	case KindResource:
		return true
	case KindSkill:
		return it.Skill != Blaze
	case KindWater, KindTeleporter, KindShard, KindBonusItem, KindHint:
		return true
	default:
		return false
	}
}

// IsProgression reports whether the reachability engine must track holding
// this item (as opposed to merely whether it has been placed somewhere
// reachable).
func (it Item) IsProgression(d settings.Difficulty) bool {
	switch it.Kind {
	case KindResource:
		switch it.Resource {
		case ShardSlot:
			return d >= settings.Unsafe
		case Health, Energy, Ore, Keystone:
			return true
		}
		return false
	case KindSkill:
		switch it.Skill {
		case AncestralLight:
			return d >= settings.Unsafe
		case Shuriken, Blaze, Sentry:
			return d >= settings.Gorlek
		case Seir, WallJump:
			return false
		default:
			return true
		}
	case KindShard:
		switch it.Shard {
		case Overcharge, Wingclip, Magnet, Splinter, Reckless, LifePact, LastStand,
			UltraBash, UltraGrapple, Overflow, Thorn, Catalyst, Sticky, Finesse,
			SpiritSurge, Lifeforce, Deflector, Fracture:
			return d >= settings.Unsafe
		case TripleJump, Resilience, Vitality, EnergyShard:
			return d >= settings.Gorlek
		default:
			return false
		}
	case KindSpiritLight, KindTeleporter, KindWater, KindUberStateSet:
		return true
	case KindWeaponUpgrade:
		return d >= settings.Gorlek
	default:
		return false
	}
}

// IsMultiworldSpread reports whether this item participates in multiworld
// cross-world sharing (everything except stacked SpiritLight, which each
// world accumulates independently).
func (it Item) IsMultiworldSpread() bool {
	return it.Kind != KindSpiritLight
}

// IsSingleInstance reports whether the world model places at most one copy
// of this exact item.
func (it Item) IsSingleInstance() bool {
	switch it.Kind {
	case KindSpiritLight, KindRemoveSpiritLight, KindResource,
		KindBonusItem, KindBonusUpgrade, KindUberStateSet, KindCommand, KindMessage:
		return false
	case KindSkill:
		return it.Skill != AncestralLight
	default:
		return true
	}
}

// IsCheckable reports whether this item corresponds to a UI checklist entry
// (skill/shard/teleporter/water), as opposed to an invisible state change.
func (it Item) IsCheckable() bool {
	switch it.Kind {
	case KindSkill, KindShard, KindTeleporter, KindWater:
		return true
	default:
		return false
	}
}
