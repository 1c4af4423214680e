package requirement

// Leaves descends And/Or nodes and returns every non-structural leaf that
// an item could still unlock under ctx.Settings. Difficulty/Trick leaves
// are always dropped: the settings alone decide them, so one the settings
// satisfy is not blocking and one they rule out can never be unlocked.
// Used by the progression solver (spec §4.3 step 1) to enumerate blocking
// requirements.
func Leaves(r Requirement, ctx Context) []Requirement {
	var out []Requirement
	collectLeaves(r, ctx, &out)
	return out
}

func collectLeaves(r Requirement, ctx Context, out *[]Requirement) {
	switch r.Kind {
	case KAnd, KOr:
		for _, c := range r.Children {
			collectLeaves(c, ctx, out)
		}
	case KFree, KImpossible:
		// structural, never a progression candidate
	case KDifficulty, KTrick:
		// settled by the settings alone, never a progression candidate
	default:
		*out = append(*out, r)
	}
}
