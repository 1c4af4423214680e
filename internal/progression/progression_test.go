package progression

import (
	"testing"

	"github.com/owowisp/mosswright/internal/inventory"
	"github.com/owowisp/mosswright/internal/item"
	"github.com/owowisp/mosswright/internal/logic"
	"github.com/owowisp/mosswright/internal/orbs"
	"github.com/owowisp/mosswright/internal/pool"
	"github.com/owowisp/mosswright/internal/reach"
	"github.com/owowisp/mosswright/internal/requirement"
	"github.com/owowisp/mosswright/internal/seedrng"
	"github.com/owowisp/mosswright/internal/settings"
)

func gatedGraph() *logic.Graph {
	nodes := []logic.Node{
		{Kind: logic.NodeAnchor, Identifier: "spawn", CanSpawn: true, Connections: []logic.Connection{
			{To: 1, Requirement: requirement.Requirement{Kind: requirement.KSkill, Skill: item.Bash}},
		}},
		{Kind: logic.NodePickup, Identifier: "p0"},
	}
	return logic.NewGraph(nodes, nil)
}

func TestSolveFindsUnlockingCandidate(t *testing.T) {
	g := gatedGraph()
	p := inventory.NewPlayer(settings.WorldSettings{})
	spawnOrbs := orbs.Orbs{Health: 30, Energy: 3}
	current := reach.Run(g, 0, p, spawnOrbs)

	avail := pool.New()
	avail.Add(item.SkillItem(item.Bash), 1)

	r := seedrng.New(1, "progression-test", nil)
	items := Solve(g, p, current, spawnOrbs, 0, avail, r)
	if len(items) != 1 || items[0].Code() != item.SkillItem(item.Bash).Code() {
		t.Fatalf("expected solver to propose Bash, got %+v", items)
	}
}

func TestSolveReturnsNilWhenPoolLacksSolution(t *testing.T) {
	g := gatedGraph()
	p := inventory.NewPlayer(settings.WorldSettings{})
	spawnOrbs := orbs.Orbs{Health: 30, Energy: 3}
	current := reach.Run(g, 0, p, spawnOrbs)

	avail := pool.New() // empty: Bash unavailable
	r := seedrng.New(1, "progression-test-2", nil)
	items := Solve(g, p, current, spawnOrbs, 0, avail, r)
	if items != nil {
		t.Fatalf("expected nil candidate when pool cannot supply the unlock, got %+v", items)
	}
}
