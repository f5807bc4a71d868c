package scoring

import "sort"

// dimensionStat is the internal per-dimension working record used by
// selection and report assembly.
type dimensionStat struct {
	id    Dimension
	score DimensionScore
}

// selectDominant picks the single most salient dimension. Primary key:
// quadrant severity descending. Tie-break: SL+PM descending. Final tie-break:
// the fixed dominantPriority order, so selection never depends on map
// iteration order.
func selectDominant(stats []dimensionStat) dimensionStat {
	ranked := make([]dimensionStat, len(stats))
	copy(ranked, stats)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		sa, sb := a.score.State.severity(), b.score.State.severity()
		if sa != sb {
			return sa > sb
		}
		ma, mb := a.score.SL+a.score.PM, b.score.SL+b.score.PM
		if ma != mb {
			return ma > mb
		}
		return priorityIndex(a.id) < priorityIndex(b.id)
	})

	return ranked[0]
}

func priorityIndex(dim Dimension) int {
	for i, d := range dominantPriority {
		if d == dim {
			return i
		}
	}
	return len(dominantPriority)
}

// deriveTriggers returns the dimensions in an activated state (Amplified
// Distress or Self-Regulation) ordered by SL descending, truncated to the
// top 3. Equal SL values keep declaration order.
func deriveTriggers(stats []dimensionStat) []Dimension {
	activated := make([]dimensionStat, 0, len(stats))
	for _, s := range stats {
		if s.score.State == QuadrantAmplifiedDistress || s.score.State == QuadrantSelfRegulation {
			activated = append(activated, s)
		}
	}
	sort.SliceStable(activated, func(i, j int) bool {
		return activated[i].score.SL > activated[j].score.SL
	})
	if len(activated) > 3 {
		activated = activated[:3]
	}
	out := make([]Dimension, 0, len(activated))
	for _, s := range activated {
		out = append(out, s.id)
	}
	return out
}

// deriveMisreadRisks returns all dimensions in Detached Cynicism, in
// declaration order.
func deriveMisreadRisks(stats []dimensionStat) []Dimension {
	out := make([]Dimension, 0, len(stats))
	for _, s := range stats {
		if s.score.State == QuadrantDetachedCynicism {
			out = append(out, s.id)
		}
	}
	return out
}
