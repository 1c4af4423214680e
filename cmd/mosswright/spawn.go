package main

import (
	"fmt"
	"sort"

	"github.com/owowisp/mosswright/internal/logic"
	"github.com/owowisp/mosswright/internal/seedrng"
	"github.com/owowisp/mosswright/internal/settings"
)

// resolveSpawnIndex picks a world's starting anchor per its SpawnMode.
// Random and FullyRandom both draw from the graph's flagged spawn anchors
// rather than every anchor node — the bundled example world names a single
// anchor spawnable, and the placement driver rejects a non-spawnable
// anchor outright, so "fully random" only ever has one real choice here.
func resolveSpawnIndex(g *logic.Graph, defaultSpawn int, ws settings.WorldSettings, r *seedrng.RNG) (int, error) {
	switch ws.Spawn {
	case settings.SpawnDefault:
		return defaultSpawn, nil
	case settings.SpawnRandom, settings.SpawnFullyRandom:
		anchors := g.SpawnAnchors()
		if len(anchors) == 0 {
			return 0, fmt.Errorf("no spawnable anchors in graph")
		}
		sort.Ints(anchors)
		return anchors[r.Intn(len(anchors))], nil
	case settings.SpawnNamed:
		idx, ok := g.IndexOf(ws.SpawnName)
		if !ok {
			return 0, fmt.Errorf("unknown spawn anchor %q", ws.SpawnName)
		}
		node := g.Node(idx)
		if node.Kind != logic.NodeAnchor || !node.CanSpawn {
			return 0, fmt.Errorf("node %q is not a valid spawn anchor", ws.SpawnName)
		}
		return idx, nil
	default:
		return 0, fmt.Errorf("unknown spawn mode %v", ws.Spawn)
	}
}
