package requirement

import (
	"testing"

	"github.com/owowisp/mosswright/internal/inventory"
	"github.com/owowisp/mosswright/internal/item"
	"github.com/owowisp/mosswright/internal/orbs"
	"github.com/owowisp/mosswright/internal/settings"
)

func newTestContext(d settings.Difficulty) Context {
	return Context{
		Settings:  settings.WorldSettings{Difficulty: d, Tricks: settings.NewTrickSet()},
		IsReached: func(int) bool { return false },
	}
}

func TestFreeAndImpossible(t *testing.T) {
	p := inventory.NewPlayer(settings.WorldSettings{})
	in := orbs.NewSet(orbs.Orbs{Health: 30, Energy: 3})
	ctx := newTestContext(settings.Moki)

	if out := Free.Check(p, in, ctx); out.Empty() {
		t.Fatalf("Free must never fail")
	}
	if out := Impossible.Check(p, in, ctx); !out.Empty() {
		t.Fatalf("Impossible must never pass")
	}
}

func TestSkillRequirement(t *testing.T) {
	p := inventory.NewPlayer(settings.WorldSettings{})
	in := orbs.NewSet(orbs.Orbs{Health: 30, Energy: 3})
	ctx := newTestContext(settings.Moki)

	req := Requirement{Kind: KSkill, Skill: item.Bash}
	if out := req.Check(p, in, ctx); !out.Empty() {
		t.Fatalf("expected Bash requirement to fail without the skill")
	}
	p.Inventory.Grant(item.SkillItem(item.Bash), 1)
	if out := req.Check(p, in, ctx); out.Empty() {
		t.Fatalf("expected Bash requirement to pass once held")
	}
}

func TestEnergySkillConsumesEnergy(t *testing.T) {
	p := inventory.NewPlayer(settings.WorldSettings{})
	p.Inventory.Grant(item.SkillItem(item.Grenade), 1)
	in := orbs.NewSet(orbs.Orbs{Health: 30, Energy: 2})
	ctx := newTestContext(settings.Moki)

	req := Requirement{Kind: KEnergySkill, Skill: item.Grenade, Uses: 1}
	out := req.Check(p, in, ctx)
	best, ok := out.Best()
	if !ok {
		t.Fatalf("expected EnergySkill to pass with enough energy")
	}
	if best.Energy != 1 {
		t.Fatalf("expected 1 energy remaining after Grenade use, got %v", best.Energy)
	}
}

func TestEnergySkillFailsWithoutOverflow(t *testing.T) {
	p := inventory.NewPlayer(settings.WorldSettings{})
	p.Inventory.Grant(item.SkillItem(item.Spear), 1)
	in := orbs.NewSet(orbs.Orbs{Health: 30, Energy: 0})
	ctx := newTestContext(settings.Moki)

	req := Requirement{Kind: KEnergySkill, Skill: item.Spear, Uses: 1}
	if out := req.Check(p, in, ctx); !out.Empty() {
		t.Fatalf("expected EnergySkill to fail with insufficient energy and no Overflow shard")
	}
}

func TestEnergySkillOverflowSpillsToHealth(t *testing.T) {
	p := inventory.NewPlayer(settings.WorldSettings{})
	p.Inventory.Grant(item.SkillItem(item.Spear), 1)
	p.Inventory.Grant(item.ShardItem(item.Overflow), 1)
	in := orbs.NewSet(orbs.Orbs{Health: 30, Energy: 0})
	ctx := newTestContext(settings.Moki)

	req := Requirement{Kind: KEnergySkill, Skill: item.Spear, Uses: 1}
	out := req.Check(p, in, ctx)
	if out.Empty() {
		t.Fatalf("expected Overflow shard to let the requirement pass via health spillover")
	}
}

func TestDamageRequirementRegenerate(t *testing.T) {
	p := inventory.NewPlayer(settings.WorldSettings{})
	p.Inventory.Grant(item.SkillItem(item.Regenerate), 1)
	in := orbs.NewSet(orbs.Orbs{Health: 5, Energy: 3})
	ctx := newTestContext(settings.Moki)

	req := Requirement{Kind: KDamage, Amount: 20}
	out := req.Check(p, in, ctx)
	if out.Empty() {
		t.Fatalf("expected Regenerate to allow surviving lethal damage via energy")
	}
}

func TestAndShortCircuitsOnEmpty(t *testing.T) {
	p := inventory.NewPlayer(settings.WorldSettings{})
	in := orbs.NewSet(orbs.Orbs{Health: 30, Energy: 3})
	ctx := newTestContext(settings.Moki)

	req := And(Requirement{Kind: KSkill, Skill: item.Launch}, Free)
	if out := req.Check(p, in, ctx); !out.Empty() {
		t.Fatalf("expected And to fail when one child fails")
	}
}

func TestOrUnionsResults(t *testing.T) {
	p := inventory.NewPlayer(settings.WorldSettings{})
	p.Inventory.Grant(item.SkillItem(item.Bash), 1)
	in := orbs.NewSet(orbs.Orbs{Health: 30, Energy: 3})
	ctx := newTestContext(settings.Moki)

	req := Or(Requirement{Kind: KSkill, Skill: item.Launch}, Requirement{Kind: KSkill, Skill: item.Bash})
	if out := req.Check(p, in, ctx); out.Empty() {
		t.Fatalf("expected Or to pass when any child passes")
	}
}

func TestFoldUnwrapsSingleton(t *testing.T) {
	folded := Fold(Requirement{Kind: KAnd, Children: []Requirement{
		{Kind: KSkill, Skill: item.Bash},
	}})
	if folded.Kind != KSkill {
		t.Fatalf("expected singleton And to unwrap, got kind %v", folded.Kind)
	}
}

func TestFoldPropagatesImpossible(t *testing.T) {
	folded := Fold(Requirement{Kind: KAnd, Children: []Requirement{Free, Impossible}})
	if folded.Kind != KImpossible {
		t.Fatalf("expected And containing Impossible to fold to Impossible")
	}
}

func TestLeavesFiltersSatisfiedDifficulty(t *testing.T) {
	ctx := newTestContext(settings.Unsafe)
	tree := And(
		Requirement{Kind: KDifficulty, Difficulty: settings.Gorlek},
		Requirement{Kind: KSkill, Skill: item.Bash},
	)
	leaves := Leaves(tree, ctx)
	for _, l := range leaves {
		if l.Kind == KDifficulty {
			t.Fatalf("expected satisfied Difficulty leaf to be filtered out")
		}
	}
}
