package orbs

import "testing"

func TestDominates(t *testing.T) {
	a := Orbs{Health: 30, Energy: 3}
	b := Orbs{Health: 20, Energy: 2}
	if !a.Dominates(b) {
		t.Fatalf("expected a to dominate b")
	}
	if b.Dominates(a) {
		t.Fatalf("b must not dominate a")
	}
}

func TestSetInsertPrunesDominated(t *testing.T) {
	s := NewSet(Orbs{Health: 30, Energy: 3})
	s.Insert(Orbs{Health: 20, Energy: 1}) // dominated, should be dropped
	if s.Len() != 1 {
		t.Fatalf("expected dominated state to be pruned, got %d states", s.Len())
	}

	s.Insert(Orbs{Health: 10, Energy: 10}) // incomparable, should be kept
	if s.Len() != 2 {
		t.Fatalf("expected incomparable state to be kept, got %d states", s.Len())
	}
}

func TestSetInsertReplacesDominatedByNew(t *testing.T) {
	s := NewSet(Orbs{Health: 10, Energy: 1})
	s.Insert(Orbs{Health: 20, Energy: 2})
	if s.Len() != 1 {
		t.Fatalf("expected the earlier dominated state to be replaced, got %d", s.Len())
	}
	best, ok := s.Best()
	if !ok || best.Health != 20 {
		t.Fatalf("expected surviving state to have health 20, got %+v", best)
	}
}

func TestSubFailsWhenInsufficient(t *testing.T) {
	o := Orbs{Health: 10, Energy: 1}
	if _, ok := o.Sub(20, 0); ok {
		t.Fatalf("expected Sub to fail when health insufficient")
	}
	next, ok := o.Sub(5, 1)
	if !ok || next.Health != 5 || next.Energy != 0 {
		t.Fatalf("unexpected Sub result: %+v, ok=%v", next, ok)
	}
}

func TestAddCaps(t *testing.T) {
	o := Orbs{Health: 25, Energy: 2}
	next := o.Add(10, 10, 30, 3)
	if next.Health != 30 || next.Energy != 3 {
		t.Fatalf("expected Add to cap at max, got %+v", next)
	}
}

func TestMergeUnion(t *testing.T) {
	a := NewSet(Orbs{Health: 30, Energy: 1})
	b := NewSet(Orbs{Health: 5, Energy: 3})
	merged := Merge(a, b)
	if merged.Len() != 2 {
		t.Fatalf("expected both incomparable states kept, got %d", merged.Len())
	}
}

func TestEmptySet(t *testing.T) {
	var s Set
	if !s.Empty() {
		t.Fatalf("zero-value Set must be empty")
	}
}
