package item

// Resource is a stackable, non-skill pickup: health/energy fragments, ore,
// keystones, and shard slots.
type Resource int

const (
	Health Resource = iota
	Energy
	Ore
	Keystone
	ShardSlot
)

var resourceNames = map[Resource]string{
	Health:    "Health",
	Energy:    "Energy",
	Ore:       "Ore",
	Keystone:  "Keystone",
	ShardSlot: "Shard Slot",
}

func (r Resource) String() string {
	if name, ok := resourceNames[r]; ok {
		return name
	}
	return "Resource(unknown)"
}

var resourceToID = map[Resource]uint16{
	Health:    0,
	Energy:    1,
	Ore:       2,
	Keystone:  3,
	ShardSlot: 4,
}

var idToResource = func() map[uint16]Resource {
	m := make(map[uint16]Resource, len(resourceToID))
	for r, id := range resourceToID {
		m[id] = r
	}
	return m
}()

// ID returns the wire-format resource id.
func (r Resource) ID() uint16 { return resourceToID[r] }

// ResourceFromID resolves a wire-format resource id back to a Resource.
func ResourceFromID(id uint16) (Resource, bool) {
	r, ok := idToResource[id]
	return r, ok
}

// GrantAmount is how much of the underlying stat a single pickup of this
// resource grants: 5 max health per Health fragment and half a point of
// max energy per Energy fragment (as Inventory.MaxHealth/MaxEnergy count
// them); ore/keystones/shard slots grant whole units.
func (r Resource) GrantAmount() float32 {
	switch r {
	case Health:
		return 5.0
	case Energy:
		return 0.5
	default:
		return 1.0
	}
}
