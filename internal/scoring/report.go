package scoring

import (
	"fmt"
	"strings"

	"mri-backend/internal/compat"
)

// assembleReport composes the final presentation object from already-scored
// dimensions. Pure relabeling and grouping; no new scoring happens here.
func (e *Engine) assembleReport(
	stats []dimensionStat,
	dominant dimensionStat,
	dimensions map[Dimension]DimensionScore,
	compatibility *compat.Result,
) FullReport {
	coreNeed, _ := e.bank.CoreNeed(string(dominant.id))
	eventTrigger, _ := e.bank.EventTrigger(string(dominant.id))
	prescription := dominant.score.Prescription

	alignedAreas := make([]AlignedArea, 0, len(stats))
	misreadAreas := make([]MisreadArea, 0, len(stats))
	for _, s := range stats {
		if s.score.State == QuadrantSecureFlow {
			alignedAreas = append(alignedAreas, AlignedArea{
				Dimension: s.id,
				Text:      s.score.Prescription.Analysis,
			})
			continue
		}
		misreadAreas = append(misreadAreas, MisreadArea{
			Dimension:        s.id,
			Feel:             "State: " + s.score.Prescription.StateName,
			Assume:           s.score.Prescription.Analysis,
			DistortionOrigin: "Based on MRI Scan.",
		})
	}

	detailed := make([]DimensionDetail, 0, len(stats))
	visualData := make([]VisualPoint, 0, len(stats))
	scripts := make([]ScriptEntry, 0, len(stats))
	translations := make([]TranslationEntry, 0, len(stats))
	questions := make([]QuestionSet, 0, len(stats))
	for _, s := range stats {
		detailed = append(detailed, DimensionDetail{ID: s.id, Score: s.score})
		visualData = append(visualData, VisualPoint{
			Dimension:      s.id,
			Label:          dimensionLabel(s.id),
			Sensitivity:    s.score.SL,
			Interpretation: s.score.PM,
		})
		scripts = append(scripts, ScriptEntry{
			Dimension:   s.id,
			InTheMoment: s.score.Prescription.Scripts.InTheMoment,
			Repair:      s.score.Prescription.Scripts.Repair,
		})
		translations = append(translations, TranslationEntry{
			Dimension: s.id,
			Text:      s.score.Prescription.PartnerTranslation,
		})
		questions = append(questions, QuestionSet{
			Dimension: s.id,
			Questions: e.bank.Questions(string(s.id)),
		})
	}

	summary := fmt.Sprintf(
		"Your relationship is suffering from a critical breakdown in %s. You are currently in the %q trap.",
		strings.ToUpper(strings.ReplaceAll(string(dominant.id), "_", " ")),
		prescription.StateName,
	)

	return FullReport{
		Cover: Cover{
			Title:    "Relationship MRI Report",
			Subtitle: "Diagnostic Scan & Treatment Plan",
			Opening:  "We have analyzed the 5 Vital Signs of your relationship. Here is the diagnosis.",
		},
		Snapshot: Snapshot{
			Summary:      summary,
			DominantLens: dominant.id,
			Dimensions:   dimensions,
		},
		PrimaryLens: PrimaryLens{
			LensName:  dominant.id,
			Activates: eventTrigger,
			Need:      coreNeed.Need,
			Fear:      coreNeed.Fear,
			StateName: prescription.StateName,
			Analysis:  prescription.Analysis,
		},
		DimensionsDetailed:  detailed,
		AlignedAreas:        alignedAreas,
		MisreadAreas:        misreadAreas,
		VisualData:          visualData,
		Scripts:             scripts,
		PartnerTranslations: translations,
		Questions:           questions,
		Compatibility:       compatibility,
		Closing:             "This is your starting point. Use the scripts.",
	}
}

// preview derives the short teaser from the dominant dimension's resolved
// prescription.
func (e *Engine) preview(dominant dimensionStat) Preview {
	return Preview{
		Headline: fmt.Sprintf(
			"CRITICAL ALERT: You are in the %q regarding %s.",
			dominant.score.Prescription.StateName,
			strings.ReplaceAll(string(dominant.id), "_", " "),
		),
		Insight: "Your scan shows this is the #1 threat to your relationship right now.",
		Hook:    "We have a specific protocol to fix this today.",
		CTA:     "Unlock Your Diagnosis",
	}
}

// dimensionLabel renders a dimension id as a display label, e.g.
// "emotional_safety" -> "Emotional Safety".
func dimensionLabel(dim Dimension) string {
	words := strings.Split(string(dim), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
