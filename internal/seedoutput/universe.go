package seedoutput

import (
	"encoding/binary"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/owowisp/mosswright/internal/seedrng"
)

// SeedWorld is one world's ordered event stream plus its identifying
// metadata.
type SeedWorld struct {
	Index      int
	SpawnAnchor string
	Events     []Event
}

// AddEvent appends an event to the world's stream, preserving emission
// order — the spec's "within a world, placement is processed in the order
// reached-slots were enumerated (stable)" guarantee depends on callers
// never reordering this slice.
func (w *SeedWorld) AddEvent(e Event) {
	w.Events = append(w.Events, e)
}

// NodeSummary is a compact, serialization-friendly reference to a graph
// node for spoiler display.
type NodeSummary struct {
	Identifier string
	Zone       string
}

// SpoilerItem is a serialization-friendly reference to a placed item.
type SpoilerItem struct {
	Code string
	Name string
}

// SpoilerPlacement records one placement decision for the human-readable
// spoiler log.
type SpoilerPlacement struct {
	OriginWorldIndex int
	TargetWorldIndex int
	Location         NodeSummary
	Item             SpoilerItem
}

// SpoilerGroup is one placement step's worth of reachability/placement
// data.
type SpoilerGroup struct {
	Reachable   [][]NodeSummary
	ForcedItems []SpoilerItem
	Placements  []SpoilerPlacement
}

// SeedSpoiler is the full per-run diagnostic/spoiler structure (spec §6).
type SeedSpoiler struct {
	RunID         uuid.UUID
	Spawns        []string
	Doors         [][][2]string
	Preplacements []SpoilerPlacement
	Groups        []SpoilerGroup
}

// ShopPriceEntry records the exact spirit-light price charged for an item
// at a shop location. decimal.Decimal carries the post-jitter price so the
// serialized seed reproduces the exact integer-valued price the generator
// computed, with no binary-float rounding drift between generation and
// output.
type ShopPriceEntry struct {
	WorldIndex int
	Location   string
	Price      decimal.Decimal
}

// SeedUniverse is the top-level generation output (spec §3 "SeedUniverse").
type SeedUniverse struct {
	RunID      uuid.UUID
	Worlds     []*SeedWorld
	Spoiler    *SeedSpoiler
	ShopPrices []ShopPriceEntry
}

// NewSeedUniverse allocates a universe with n worlds and a run id derived
// deterministically from r, so that two generation runs with the same seed
// produce byte-identical output (spec §5 "Determinism test") — uuid.New()
// itself pulls from crypto/rand and would break that invariant.
func NewSeedUniverse(n int, r *seedrng.RNG) *SeedUniverse {
	var buf [16]byte
	binary.BigEndian.PutUint64(buf[0:8], r.Uint64())
	binary.BigEndian.PutUint64(buf[8:16], r.Uint64())
	id, err := uuid.FromBytes(buf[:])
	if err != nil {
		id = uuid.Nil
	}
	worlds := make([]*SeedWorld, n)
	for i := range worlds {
		worlds[i] = &SeedWorld{Index: i}
	}
	return &SeedUniverse{
		RunID:  id,
		Worlds: worlds,
		Spoiler: &SeedSpoiler{
			RunID: id,
		},
	}
}
