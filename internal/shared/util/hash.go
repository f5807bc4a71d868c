package util

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
)

// HashAnswers returns a stable digest for an answer map. Identical answer
// sets hash identically regardless of map iteration order.
func HashAnswers(answers map[int]int) string {
	ids := make([]int, 0, len(answers))
	for id := range answers {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	var b strings.Builder
	for _, id := range ids {
		fmt.Fprintf(&b, "%d=%d;", id, answers[id])
	}
	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
