package inventory

import (
	"testing"

	"github.com/owowisp/mosswright/internal/item"
)

func TestGrantAndCount(t *testing.T) {
	inv := New()
	inv.Grant(item.SkillItem(item.Bash), 1)
	if !inv.HasSkill(item.Bash) {
		t.Fatalf("expected Bash to be held after grant")
	}
	if inv.Count(item.SkillItem(item.Bash)) != 1 {
		t.Fatalf("expected count 1")
	}
}

func TestRemoveSaturatesAtZero(t *testing.T) {
	inv := New()
	inv.Grant(item.ResourceItem(item.Ore), 2)
	inv.Remove(item.ResourceItem(item.Ore), 5)
	if inv.Resource(item.Ore) != 0 {
		t.Fatalf("expected saturation at zero, got %d", inv.Resource(item.Ore))
	}
}

func TestMaxHealthAndEnergy(t *testing.T) {
	inv := New()
	if got := inv.MaxHealth(0); got != 30 {
		t.Fatalf("base max health = %v, want 30", got)
	}
	inv.Grant(item.ResourceItem(item.Health), 3)
	if got := inv.MaxHealth(0); got != 45 {
		t.Fatalf("max health with 3 fragments = %v, want 45", got)
	}
	if got := inv.MaxHealth(40); got != 40 {
		t.Fatalf("max health cap not applied: got %v", got)
	}

	inv.Grant(item.ResourceItem(item.Energy), 4)
	if got := inv.MaxEnergy(0); got != 5 {
		t.Fatalf("max energy with 4 fragments = %v, want 5", got)
	}
}

func TestSpiritLightSums(t *testing.T) {
	inv := New()
	inv.Grant(item.SpiritLightItem(50), 3)
	inv.Grant(item.SpiritLightItem(10), 1)
	if got := inv.SpiritLight(); got != 160 {
		t.Fatalf("spirit light total = %d, want 160", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	inv := New()
	inv.Grant(item.SkillItem(item.Dash), 1)
	clone := inv.Clone()
	clone.Grant(item.SkillItem(item.Bash), 1)
	if inv.HasSkill(item.Bash) {
		t.Fatalf("mutating clone must not affect original")
	}
}
