// Package insights derives twelve supplemental 0-100 indices from the raw
// questionnaire answers plus profile context. Like the scoring engine it is a
// pure, deterministic pass with no I/O; unlike it, the indices read
// individual questions directly rather than dimension aggregates.
package insights

// Profile carries the profile fields the index formulas read.
type Profile struct {
	RelationshipDuration string
	PartnerConflictStyle string
	FightFrequency       string
	RepairFrequency      string
	BiggestFear          string
}

// Flags are the boolean screens derived alongside the indices.
type Flags struct {
	// SafetyTrigger fires on a strongly endorsed deliberate-hurt item or any
	// reported fear; downstream surfaces escalate instead of coaching.
	SafetyTrigger bool `json:"safetyTrigger"`
	// PositivePotential fires when affection remains high alongside a high
	// roommate-dynamic score.
	PositivePotential bool `json:"positivePotential"`
	// SilentDivorceHighRisk fires when the silent-divorce index exceeds 70.
	SilentDivorceHighRisk bool `json:"silentDivorceHighRisk"`
}

// Indices holds all derived index values.
type Indices struct {
	SustainabilityForecast int   `json:"sustainability_forecast"`
	EroticDeathSpiral      int   `json:"erotic_death_spiral"`
	BetrayalVulnerability  int   `json:"betrayal_vulnerability"`
	RepairEfficiency       int   `json:"repair_efficiency"`
	DutySexIndex           int   `json:"duty_sex_index"`
	CEOVsIntern            int   `json:"ceo_vs_intern"`
	SilentDivorceRisk      int   `json:"silent_divorce_risk"`
	CompatibilityQuotient  int   `json:"compatibility_quotient"`
	InternalizedMalice     int   `json:"internalized_malice"`
	NervousSystemLoad      int   `json:"nervous_system_load"`
	EroticPotential        int   `json:"erotic_potential"`
	ResilienceBattery      int   `json:"resilience_battery"`
	Flags                  Flags `json:"flags"`
}

// Definition describes one index for presentation layers.
type Definition struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	Description        string `json:"description"`
	ClinicalImportance int    `json:"clinicalImportance"`
	UserInterest       int    `json:"userInterest"`
}

// Catalog returns the static index catalog in display order.
func Catalog() []Definition {
	return []Definition{
		{ID: "sustainability_forecast", Title: "The Crystal Ball", Description: "Predicts if your current path leads to long-term growth or a dead end.", ClinicalImportance: 10, UserInterest: 10},
		{ID: "erotic_death_spiral", Title: "The Parent-Trap", Description: "Measures how much 'managing' your partner is killing your sex life.", ClinicalImportance: 8, UserInterest: 10},
		{ID: "betrayal_vulnerability", Title: "The Open Door", Description: "How likely an outside emotional or physical connection could disrupt the bond.", ClinicalImportance: 8, UserInterest: 10},
		{ID: "repair_efficiency", Title: "The Bounce Back", Description: "Your relationship's 'immune system', how quickly you recover after a fight.", ClinicalImportance: 10, UserInterest: 7},
		{ID: "duty_sex_index", Title: "The Tactical Truce", Description: "Are you having sex because you want to, or just to keep the peace?", ClinicalImportance: 9, UserInterest: 9},
		{ID: "ceo_vs_intern", Title: "The Office Manager", Description: "Measures the imbalance of 'worrying and planning' vs. just 'showing up'.", ClinicalImportance: 7, UserInterest: 9},
		{ID: "silent_divorce_risk", Title: "The Quiet Quit", Description: "High risk for couples who 'never fight' but have emotionally checked out.", ClinicalImportance: 10, UserInterest: 8},
		{ID: "compatibility_quotient", Title: "The Soulmate Sync", Description: "Measures if your core life values and 'future dreams' actually match.", ClinicalImportance: 7, UserInterest: 9},
		{ID: "internalized_malice", Title: "The Enemy Within", Description: "Are you starting to see your partner as a 'bad person' rather than a teammate?", ClinicalImportance: 10, UserInterest: 6},
		{ID: "nervous_system_load", Title: "The Burnout Rate", Description: "The physical and mental toll this relationship is taking on your body.", ClinicalImportance: 9, UserInterest: 8},
		{ID: "erotic_potential", Title: "The Hidden Spark", Description: "Tells you if the 'fire' is still there but just covered by domestic stress.", ClinicalImportance: 6, UserInterest: 9},
		{ID: "resilience_battery", Title: "The Anchor Score", Description: "How much 'shared history' and core trust you have to survive a crisis.", ClinicalImportance: 9, UserInterest: 7},
	}
}
