package reach

import (
	"testing"

	"github.com/owowisp/mosswright/internal/inventory"
	"github.com/owowisp/mosswright/internal/item"
	"github.com/owowisp/mosswright/internal/logic"
	"github.com/owowisp/mosswright/internal/orbs"
	"github.com/owowisp/mosswright/internal/requirement"
	"github.com/owowisp/mosswright/internal/settings"
)

func smallGraph() *logic.Graph {
	nodes := []logic.Node{
		{Kind: logic.NodeAnchor, Identifier: "spawn", CanSpawn: true, Connections: []logic.Connection{
			{To: 1, Requirement: requirement.Free},
			{To: 2, Requirement: requirement.Requirement{Kind: requirement.KSkill, Skill: item.Bash}},
		}},
		{Kind: logic.NodePickup, Identifier: "p0"},
		{Kind: logic.NodeAnchor, Identifier: "mid", Connections: []logic.Connection{
			{To: 3, Requirement: requirement.Free},
		}},
		{Kind: logic.NodePickup, Identifier: "p1"},
	}
	return logic.NewGraph(nodes, nil)
}

func TestRunReachesFreeConnections(t *testing.T) {
	g := smallGraph()
	p := inventory.NewPlayer(settings.WorldSettings{})
	result := Run(g, 0, p, orbs.Orbs{Health: 30, Energy: 3})

	if !result.IsReached(1) {
		t.Fatalf("expected p0 to be reached via Free connection")
	}
	if result.IsReached(2) {
		t.Fatalf("expected mid anchor to require Bash")
	}
}

func TestRunPropagatesThroughAnchorsOnceUnlocked(t *testing.T) {
	g := smallGraph()
	p := inventory.NewPlayer(settings.WorldSettings{})
	p.Inventory.Grant(item.SkillItem(item.Bash), 1)
	result := Run(g, 0, p, orbs.Orbs{Health: 30, Energy: 3})

	if !result.IsReached(2) {
		t.Fatalf("expected mid anchor reached with Bash")
	}
	if !result.IsReached(3) {
		t.Fatalf("expected p1 reached transitively through mid")
	}
}
