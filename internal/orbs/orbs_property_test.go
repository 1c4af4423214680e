package orbs

import (
	"testing"

	"pgregory.net/rapid"
)

func rapidOrbs(t *rapid.T, label string) Orbs {
	return Orbs{
		Health: float32(rapid.Float64Range(0, 200).Draw(t, label+"_health")),
		Energy: float32(rapid.Float64Range(0, 200).Draw(t, label+"_energy")),
	}
}

// TestProperty_SetNeverHoldsADominatedPair verifies the set's core
// invariant: after any sequence of Insert calls, no member dominates
// another.
func TestProperty_SetNeverHoldsADominatedPair(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 12).Draw(t, "n")
		var s Set
		for i := 0; i < n; i++ {
			s.Insert(rapidOrbs(t, "o"))
		}
		states := s.States()
		for i := range states {
			for j := range states {
				if i == j {
					continue
				}
				if states[i].Dominates(states[j]) {
					t.Fatalf("state %+v dominates %+v but both survived in %v", states[i], states[j], states)
				}
			}
		}
	})
}

// TestProperty_MergeIsIdempotent checks that merging a set with itself
// changes nothing — the Pareto union of a set and itself is that set.
func TestProperty_MergeIsIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 8).Draw(t, "n")
		var s Set
		for i := 0; i < n; i++ {
			s.Insert(rapidOrbs(t, "o"))
		}
		merged := Merge(s, s)
		if merged.Len() != s.Len() {
			t.Fatalf("Merge(s, s) produced %d states, want %d", merged.Len(), s.Len())
		}
	})
}

// TestProperty_MergeCommutes checks Merge(a, b) and Merge(b, a) settle on
// the same Pareto frontier regardless of insertion order.
func TestProperty_MergeCommutes(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		na := rapid.IntRange(0, 6).Draw(t, "na")
		nb := rapid.IntRange(0, 6).Draw(t, "nb")
		var a, b Set
		for i := 0; i < na; i++ {
			a.Insert(rapidOrbs(t, "a"))
		}
		for i := 0; i < nb; i++ {
			b.Insert(rapidOrbs(t, "b"))
		}
		ab := Merge(a, b)
		ba := Merge(b, a)
		if ab.Len() != ba.Len() {
			t.Fatalf("Merge(a,b) has %d states, Merge(b,a) has %d", ab.Len(), ba.Len())
		}
	})
}

// TestProperty_SubAddRoundTrip checks that subtracting then re-adding the
// same amount (capped at the original max) returns the starting orbs,
// as long as the subtraction succeeded.
func TestProperty_SubAddRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		maxH := float32(rapid.Float64Range(1, 200).Draw(t, "maxH"))
		maxE := float32(rapid.Float64Range(1, 200).Draw(t, "maxE"))
		o := Orbs{
			Health: float32(rapid.Float64Range(0, float64(maxH)).Draw(t, "h")),
			Energy: float32(rapid.Float64Range(0, float64(maxE)).Draw(t, "e")),
		}
		dh := float32(rapid.Float64Range(0, float64(o.Health)).Draw(t, "dh"))
		de := float32(rapid.Float64Range(0, float64(o.Energy)).Draw(t, "de"))

		reduced, ok := o.Sub(dh, de)
		if !ok {
			t.Fatalf("Sub(%v, %v) unexpectedly failed on %+v", dh, de, o)
		}
		restored := reduced.Add(dh, de, maxH, maxE)
		if restored != o {
			t.Fatalf("Sub then Add did not round-trip: got %+v, want %+v", restored, o)
		}
	})
}
