package placement

import (
	"testing"

	"github.com/owowisp/mosswright/internal/item"
	"github.com/owowisp/mosswright/internal/logic"
	"github.com/owowisp/mosswright/internal/orbs"
	"github.com/owowisp/mosswright/internal/pool"
	"github.com/owowisp/mosswright/internal/requirement"
	"github.com/owowisp/mosswright/internal/seedrng"
	"github.com/owowisp/mosswright/internal/settings"
)

func smallGatedGraph() *logic.Graph {
	nodes := []logic.Node{
		{Kind: logic.NodeAnchor, Identifier: "spawn", CanSpawn: true, Connections: []logic.Connection{
			{To: 1, Requirement: requirement.Free},
			{To: 2, Requirement: requirement.Requirement{Kind: requirement.KSkill, Skill: item.Bash}},
		}},
		{Kind: logic.NodePickup, Identifier: "p0", Zone: "Glades"},
		{Kind: logic.NodePickup, Identifier: "p1", Zone: "Glades"},
	}
	return logic.NewGraph(nodes, nil)
}

func TestRunFillsEveryLocation(t *testing.T) {
	st := &settings.Settings{WorldCount: 1, Seed: "placement-test-1", Difficulty: settings.Moki}

	build := func(r *seedrng.RNG) ([]*WorldContext, error) {
		g := smallGatedGraph()
		p := pool.New()
		p.Add(item.SkillItem(item.Bash), 1)
		spawnIdx, _ := g.IndexOf("spawn")
		wc := NewWorldContext(0, g, st.ForWorld(0), spawnIdx, orbs.Orbs{Health: 30, Energy: 3}, p, nil)
		return []*WorldContext{wc}, nil
	}

	universe, err := Run(st, 1, nil, nil, build)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if len(universe.Worlds) != 1 {
		t.Fatalf("expected 1 world, got %d", len(universe.Worlds))
	}
	if len(universe.Worlds[0].Events) < 2 {
		t.Fatalf("expected at least 2 placement events, got %d", len(universe.Worlds[0].Events))
	}
}

func TestRunFailsOnMissingSpawnAnchor(t *testing.T) {
	st := &settings.Settings{WorldCount: 1, Seed: "placement-test-2", Difficulty: settings.Moki}

	build := func(r *seedrng.RNG) ([]*WorldContext, error) {
		g := smallGatedGraph()
		p := pool.New()
		wc := NewWorldContext(0, g, st.ForWorld(0), 1 /* a Pickup, not an Anchor */, orbs.Orbs{Health: 30, Energy: 3}, p, nil)
		return []*WorldContext{wc}, nil
	}

	if _, err := Run(st, 1, nil, nil, build); err == nil {
		t.Fatal("expected an error for a non-anchor spawn index")
	}
}

func TestRunExhaustsRetriesWhenPoolCannotUnlockEverything(t *testing.T) {
	st := &settings.Settings{WorldCount: 1, Seed: "placement-test-3", Difficulty: settings.Moki}

	build := func(r *seedrng.RNG) ([]*WorldContext, error) {
		nodes := []logic.Node{
			{Kind: logic.NodeAnchor, Identifier: "spawn", CanSpawn: true, Connections: []logic.Connection{
				{To: 1, Requirement: requirement.Requirement{Kind: requirement.KSkill, Skill: item.DoubleJump}},
			}},
			{Kind: logic.NodePickup, Identifier: "p0", Zone: "Glades"},
		}
		g := logic.NewGraph(nodes, nil)
		p := pool.New() // empty: DoubleJump is never available
		spawnIdx, _ := g.IndexOf("spawn")
		wc := NewWorldContext(0, g, st.ForWorld(0), spawnIdx, orbs.Orbs{Health: 30, Energy: 3}, p, nil)
		return []*WorldContext{wc}, nil
	}

	if _, err := Run(st, 1, nil, nil, build); err == nil {
		t.Fatal("expected generation to fail when no candidate can ever unlock the remaining location")
	}
}
