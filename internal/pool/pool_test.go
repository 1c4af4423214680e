package pool

import (
	"testing"

	"github.com/owowisp/mosswright/internal/item"
	"github.com/owowisp/mosswright/internal/seedrng"
)

func TestAddTakeCount(t *testing.T) {
	p := New()
	p.Add(item.ResourceItem(item.Ore), 3)
	if p.Count(item.ResourceItem(item.Ore)) != 3 {
		t.Fatalf("expected 3 ore in pool")
	}
	if !p.Take(item.ResourceItem(item.Ore)) {
		t.Fatalf("expected Take to succeed")
	}
	if p.Count(item.ResourceItem(item.Ore)) != 2 {
		t.Fatalf("expected 2 ore remaining")
	}
}

func TestTakeFromEmptyFails(t *testing.T) {
	p := New()
	if p.Take(item.ResourceItem(item.Ore)) {
		t.Fatalf("expected Take to fail on empty pool")
	}
}

func TestRandomItemIsDeterministic(t *testing.T) {
	build := func() *Pool {
		p := New()
		p.Add(item.SkillItem(item.Bash), 1)
		p.Add(item.SkillItem(item.Dash), 1)
		p.Add(item.SkillItem(item.Launch), 1)
		return p
	}

	r1 := seedrng.New(1, "pool-test", nil)
	r2 := seedrng.New(1, "pool-test", nil)
	p1, p2 := build(), build()

	for i := 0; i < 3; i++ {
		it1, ok1 := p1.RandomItem(r1)
		it2, ok2 := p2.RandomItem(r2)
		if ok1 != ok2 || it1.Code() != it2.Code() {
			t.Fatalf("expected identical draws from identical seeds at iteration %d", i)
		}
	}
}

func TestSpiritLightProviderClampsAndConserves(t *testing.T) {
	r := seedrng.New(1, "sl-test", nil)
	sp := NewSpiritLightProvider(5)
	var total uint64
	for i := 0; i < 5; i++ {
		total += uint64(sp.Next(r))
	}
	if sp.RemainingLocations() != 0 {
		t.Fatalf("expected all locations consumed")
	}
	if sp.RemainingAmount() != 20000-total {
		t.Fatalf("remaining amount inconsistent with distributed total")
	}
}

func TestStandardPresetNonEmpty(t *testing.T) {
	p := StandardPreset()
	if p.Empty() {
		t.Fatalf("expected standard preset to be non-empty")
	}
}
