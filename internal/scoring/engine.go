package scoring

import (
	"fmt"
	"math"
	"strings"

	"mri-backend/internal/compat"
	"mri-backend/internal/scoring/content"
)

// Engine scores questionnaire submissions against an injected immutable
// content bank. Construct once, share freely; CalculateScore is pure and
// idempotent.
type Engine struct {
	bank *content.Bank
}

// NewEngine validates that the bank covers every (dimension, state) pair plus
// the core-need and event-trigger tables, and returns a ready engine. An
// incomplete bank is a fatal configuration error.
func NewEngine(bank *content.Bank) (*Engine, error) {
	if bank == nil {
		return nil, fmt.Errorf("%w: nil bank", ErrBankIncomplete)
	}
	states := []Quadrant{
		QuadrantAmplifiedDistress,
		QuadrantSelfRegulation,
		QuadrantDetachedCynicism,
		QuadrantSecureFlow,
	}
	var missing []string
	for _, dim := range Dimensions() {
		for _, state := range states {
			if _, ok := bank.Prescription(string(dim), string(state)); !ok {
				missing = append(missing, fmt.Sprintf("prescription %s/%s", dim, state))
			}
		}
		if _, ok := bank.CoreNeed(string(dim)); !ok {
			missing = append(missing, fmt.Sprintf("core need %s", dim))
		}
		if _, ok := bank.EventTrigger(string(dim)); !ok {
			missing = append(missing, fmt.Sprintf("event trigger %s", dim))
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrBankIncomplete, strings.Join(missing, ", "))
	}
	return &Engine{bank: bank}, nil
}

// CalculateScore scores a raw answer map and optional profile into a full
// structured result. Missing answers degrade axis scores toward 0; raw values
// outside 1-5 are rejected with ErrInvalidAnswer. Identical inputs always
// produce identical output.
func (e *Engine) CalculateScore(answers map[int]int, profile *Profile) (ScoreResult, error) {
	normalized, err := normalizeAnswers(answers)
	if err != nil {
		return ScoreResult{}, err
	}

	dimensions := make(map[Dimension]DimensionScore, len(axisQuestions))
	stats := make([]dimensionStat, 0, len(axisQuestions))
	for _, dim := range Dimensions() {
		groups := axisQuestions[dim]
		pm := axisScore(normalized, groups[AxisPM])
		sl := axisScore(normalized, groups[AxisSL])
		state := Classify(sl, pm)
		prescription, _ := e.bank.Prescription(string(dim), string(state))

		score := DimensionScore{
			PM:           pm,
			SL:           sl,
			Mismatch:     abs(sl - pm),
			State:        state,
			Prescription: prescription,
			Health:       100 - int(math.Round(float64(sl+pm)/2)),
		}
		dimensions[dim] = score
		stats = append(stats, dimensionStat{id: dim, score: score})
	}

	dominant := selectDominant(stats)
	triggers := deriveTriggers(stats)
	misreadRisks := deriveMisreadRisks(stats)

	var compatibility *compat.Result
	if profile != nil && strings.TrimSpace(profile.PartnerConflictStyle) != "" {
		result := compat.Estimate(compat.Input{
			DominantDimension:    string(dominant.id),
			DominantState:        string(dominant.score.State),
			PartnerConflictStyle: profile.PartnerConflictStyle,
			FightFrequency:       defaultString(profile.FightFrequency, "Monthly"),
			RepairFrequency:      defaultString(profile.RepairFrequency, "Sometimes"),
		})
		compatibility = &result
	}

	report := e.assembleReport(stats, dominant, dimensions, compatibility)

	duration := ""
	if profile != nil {
		duration = profile.RelationshipDuration
	}

	return ScoreResult{
		Dimensions:      dimensions,
		DominantLens:    dominant.id,
		Triggers:        triggers,
		MisreadRisks:    misreadRisks,
		Report:          report,
		Preview:         e.preview(dominant),
		AttachmentStyle: attachmentStyle(dimensions),
		Phase:           relationshipPhase(stats, duration),
	}, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func defaultString(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
