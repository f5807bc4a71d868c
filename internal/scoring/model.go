// Package scoring implements the deterministic questionnaire scoring engine:
// answer normalization, per-dimension two-axis aggregation, quadrant
// classification, dominant-pattern selection, and report assembly. The engine
// is a pure function of its input; it holds no state across calls and is safe
// for concurrent use once constructed.
package scoring

import (
	"mri-backend/internal/compat"
	"mri-backend/internal/scoring/content"
)

// Dimension is one of the five fixed relationship facets scored independently.
type Dimension string

const (
	DimCommunication    Dimension = "communication"
	DimEmotionalSafety  Dimension = "emotional_safety"
	DimPhysicalIntimacy Dimension = "physical_intimacy"
	DimPowerFairness    Dimension = "power_fairness"
	DimFutureValues     Dimension = "future_values"
)

// Dimensions returns the fixed dimension set in declaration order. Scoring
// output ordering always follows this slice, never map iteration order.
func Dimensions() []Dimension {
	return []Dimension{
		DimCommunication,
		DimEmotionalSafety,
		DimPhysicalIntimacy,
		DimPowerFairness,
		DimFutureValues,
	}
}

// dominantPriority is the documented final tie-break for dominant-pattern
// selection: when severity and combined magnitude are equal, the earlier
// dimension in this list wins.
var dominantPriority = []Dimension{
	DimPhysicalIntimacy,
	DimPowerFairness,
	DimEmotionalSafety,
	DimFutureValues,
	DimCommunication,
}

// Axis identifies one of the two sub-scores of a dimension.
type Axis string

const (
	// AxisPM measures threat / negative interpretation.
	AxisPM Axis = "PM"
	// AxisSL measures sensitivity / need intensity.
	AxisSL Axis = "SL"
)

// Quadrant is the behavioral state derived from thresholding both axes.
type Quadrant string

const (
	QuadrantAmplifiedDistress Quadrant = "Amplified Distress"
	QuadrantSelfRegulation    Quadrant = "Self-Regulation"
	QuadrantDetachedCynicism  Quadrant = "Detached Cynicism"
	QuadrantSecureFlow        Quadrant = "Secure Flow"
)

// severity ranks quadrants for dominant-pattern selection; higher is more
// salient.
func (q Quadrant) severity() int {
	switch q {
	case QuadrantAmplifiedDistress:
		return 4
	case QuadrantDetachedCynicism:
		return 3
	case QuadrantSelfRegulation:
		return 2
	default:
		return 1
	}
}

// DimensionScore is the scored view of a single dimension. Values are frozen
// at scoring time and never mutated afterwards.
type DimensionScore struct {
	PM           int                  `json:"PM"`
	SL           int                  `json:"SL"`
	Mismatch     int                  `json:"mismatch"`
	State        Quadrant             `json:"state"`
	Prescription content.Prescription `json:"prescription"`
	Health       int                  `json:"health"`
}

// Profile carries the optional self-reported relationship context consumed by
// compatibility scoring and the phase heuristic. Fields are loosely validated
// upstream form values, not strict enums.
type Profile struct {
	RelationshipStatus   string `json:"relationshipStatus,omitempty"`
	RelationshipDuration string `json:"relationshipDuration,omitempty"`
	PartnerConflictStyle string `json:"partnerConflictStyle,omitempty"`
	FightFrequency       string `json:"fightFrequency,omitempty"`
	RepairFrequency      string `json:"repairFrequency,omitempty"`
	BiggestFear          string `json:"biggestFear,omitempty"`
}

// AttachmentStyle is a coarse attachment classification derived from the
// emotional-safety and physical-intimacy axis scores.
type AttachmentStyle string

const (
	AttachmentSecure             AttachmentStyle = "Secure"
	AttachmentAnxiousPreoccupied AttachmentStyle = "Anxious-Preoccupied"
	AttachmentDismissiveAvoidant AttachmentStyle = "Dismissive-Avoidant"
	AttachmentFearfulAvoidant    AttachmentStyle = "Fearful-Avoidant"
)

// RelationshipPhase is a coarse phase classification derived from distress
// counts plus the reported relationship duration.
type RelationshipPhase string

const (
	PhaseHoneymoon     RelationshipPhase = "The Honeymoon"
	PhasePowerStruggle RelationshipPhase = "The Power Struggle"
	PhaseDeadZone      RelationshipPhase = "The Dead Zone"
	PhasePartnership   RelationshipPhase = "The Partnership"
)

// Preview is the short teaser derived from the dominant dimension's resolved
// prescription; it involves no computation beyond lookups.
type Preview struct {
	Headline string `json:"headline"`
	Insight  string `json:"insight"`
	Hook     string `json:"hook"`
	CTA      string `json:"cta"`
}

// ScoreResult is the top-level output of one scoring invocation.
type ScoreResult struct {
	Dimensions      map[Dimension]DimensionScore `json:"dimensions"`
	DominantLens    Dimension                    `json:"dominantLens"`
	Triggers        []Dimension                  `json:"triggers"`
	MisreadRisks    []Dimension                  `json:"misreadRisks"`
	Report          FullReport                   `json:"report"`
	Preview         Preview                      `json:"preview"`
	AttachmentStyle AttachmentStyle              `json:"attachmentStyle"`
	Phase           RelationshipPhase            `json:"phase"`
}

// FullReport is the denormalized presentation object composed from scoring
// output. It contains no scoring logic of its own.
type FullReport struct {
	Cover               Cover              `json:"cover"`
	Snapshot            Snapshot           `json:"snapshot"`
	PrimaryLens         PrimaryLens        `json:"primaryLens"`
	DimensionsDetailed  []DimensionDetail  `json:"dimensionsDetailed"`
	AlignedAreas        []AlignedArea      `json:"alignedAreas"`
	MisreadAreas        []MisreadArea      `json:"misreadAreas"`
	VisualData          []VisualPoint      `json:"visualData"`
	Scripts             []ScriptEntry      `json:"scripts"`
	PartnerTranslations []TranslationEntry `json:"partnerTranslations"`
	Questions           []QuestionSet      `json:"questions"`
	Compatibility       *compat.Result     `json:"compatibility,omitempty"`
	Closing             string             `json:"closing"`
}

// Cover holds the report's title block.
type Cover struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Opening  string `json:"opening"`
}

// Snapshot summarizes the whole profile.
type Snapshot struct {
	Summary      string                       `json:"summary"`
	DominantLens Dimension                    `json:"dominantLens"`
	Dimensions   map[Dimension]DimensionScore `json:"dimensions"`
}

// PrimaryLens details the dominant dimension.
type PrimaryLens struct {
	LensName  Dimension `json:"lensName"`
	Activates string    `json:"activates"`
	Need      string    `json:"need"`
	Fear      string    `json:"fear"`
	StateName string    `json:"stateName"`
	Analysis  string    `json:"analysis"`
}

// DimensionDetail pairs a dimension id with its score for ordered rendering.
type DimensionDetail struct {
	ID    Dimension      `json:"id"`
	Score DimensionScore `json:"score"`
}

// AlignedArea is a dimension currently in Secure Flow.
type AlignedArea struct {
	Dimension Dimension `json:"dimension"`
	Text      string    `json:"text"`
}

// MisreadArea is a dimension outside Secure Flow, annotated with its
// prescription text.
type MisreadArea struct {
	Dimension        Dimension `json:"dimension"`
	Feel             string    `json:"feel"`
	Assume           string    `json:"assume"`
	DistortionOrigin string    `json:"distortion_origin"`
}

// VisualPoint feeds chart rendering.
type VisualPoint struct {
	Dimension      Dimension `json:"dimension"`
	Label          string    `json:"label"`
	Sensitivity    int       `json:"sensitivity"`
	Interpretation int       `json:"interpretation"`
}

// ScriptEntry carries one dimension's behavioral scripts.
type ScriptEntry struct {
	Dimension   Dimension `json:"dimension"`
	InTheMoment string    `json:"inTheMoment"`
	Repair      string    `json:"repair"`
}

// TranslationEntry carries one dimension's partner-facing translation.
type TranslationEntry struct {
	Dimension Dimension `json:"dimension"`
	Text      string    `json:"text"`
}

// QuestionSet carries one dimension's reflection questions.
type QuestionSet struct {
	Dimension Dimension `json:"dimension"`
	Questions []string  `json:"questions"`
}
