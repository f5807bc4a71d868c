package scoring

import (
	"fmt"
	"math"
)

// normalizeAnswers maps raw 1-5 ordinal answers onto [0,1], flipping
// reverse-coded items. Raw values outside [1,5] are rejected here, at the
// ingestion boundary, so out-of-range data can never reach aggregation.
func normalizeAnswers(answers map[int]int) (map[int]float64, error) {
	normalized := make(map[int]float64, len(answers))
	for questionID, raw := range answers {
		if raw < rawMin || raw > rawMax {
			return nil, fmt.Errorf("%w: question %d has value %d, want %d-%d", ErrInvalidAnswer, questionID, raw, rawMin, rawMax)
		}
		norm := float64(raw-1) / 4
		if reverseCoded[questionID] {
			norm = 1 - norm
		}
		normalized[questionID] = norm
	}
	return normalized, nil
}

// reverse flips a normalized value; applying it twice is an involution.
func reverse(norm float64) float64 {
	return 1 - norm
}

// axisScore reduces the normalized values of the given question ids to a
// 0-100 integer. Ids absent from the input are excluded; an empty group
// scores 0 by definition, not as an error.
func axisScore(normalized map[int]float64, questionIDs []int) int {
	var sum float64
	var count int
	for _, id := range questionIDs {
		norm, ok := normalized[id]
		if !ok {
			continue
		}
		sum += norm
		count++
	}
	if count == 0 {
		return 0
	}
	return int(math.Round(sum / float64(count) * 100))
}
