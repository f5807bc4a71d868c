package insights

import (
	"math"
	"strings"

	"mri-backend/internal/compat"
	"mri-backend/internal/scoring"
)

// questionCodes maps the formula notation D<dimension>.<item> onto
// questionnaire ids. The codes mirror the questionnaire authoring sheet.
var questionCodes = map[string]int{
	"D1.1": 1, "D1.2": 2, "D1.3": 3, "D1.4": 4, "D1.5": 5, "D1.6": 6,
	"D2.1": 7, "D2.2": 8, "D2.3": 9, "D2.4": 10, "D2.5": 11, "D2.6": 12,
	"D3.1": 13, "D3.2": 14, "D3.3": 15, "D3.4": 16, "D3.5": 17, "D3.6": 18,
	"D4.1": 19, "D4.2": 20, "D4.3": 21, "D4.4": 22, "D4.5": 23, "D4.6": 24,
	"D5.1": 25, "D5.2": 26, "D5.3": 27, "D5.4": 28,
}

const neutralRaw = 3

// Calculate derives all indices from raw answers plus profile context.
// Missing answers read as the neutral midpoint; unparseable profile fields
// fall back to their documented defaults.
func Calculate(answers map[int]int, profile Profile) Indices {
	raw := func(code string) int {
		id, ok := questionCodes[code]
		if !ok {
			return neutralRaw
		}
		v, ok := answers[id]
		if !ok {
			return neutralRaw
		}
		return v
	}

	// distress puts every item on a 1=best, 5=worst scale: reverse-coded
	// (positive) items flip, negative items pass through.
	distress := func(code string) float64 {
		r := raw(code)
		if id, ok := questionCodes[code]; ok && scoring.IsReverseCoded(id) {
			return float64(6 - r)
		}
		return float64(r)
	}
	d := distress

	repairScale := repairToScale(profile.RepairFrequency)
	fightFreq := compat.ParseFightFrequency(profile.FightFrequency)
	partnerEngages := compat.ParseConflictStyle(profile.PartnerConflictStyle) == compat.ConflictStyleEngages

	fearScore := 0.0
	if strings.TrimSpace(profile.BiggestFear) != "" {
		fearScore = 5
	}
	fearLove := 0.0
	if strings.Contains(strings.ToLower(profile.BiggestFear), "love") {
		fearLove = 5
	}

	sustainability := ((6 - d("D2.5")) + (6 - d("D5.4")) + (6 - d("D1.6"))) / 15 * 100
	switch repairScale {
	case 4:
		sustainability *= 1.5
	case 1:
		sustainability *= 0.5
	}
	sustainability = math.Min(100, sustainability)

	parentTrap := (d("D4.1") + d("D4.2") + d("D3.1") + d("D3.4")) / 20 * 100
	openDoor := (d("D2.1") + d("D2.3") + fearScore) / 15 * 100
	bounceBack := (float64(repairScale) + (6 - d("D2.6")) + (6 - d("D1.4"))) / 14 * 100
	dutySex := ((6 - d("D3.6")) + d("D1.5") + d("D3.5")) / 15 * 100

	engageTerm := 5.0
	if partnerEngages {
		engageTerm = 0
	}
	ceoVsIntern := (d("D4.1") + d("D4.4") + engageTerm) / 15 * 100

	rarelyTerm := 0.0
	if fightFreq == compat.FrequencyRarely {
		rarelyTerm = 5
	}
	silentDivorce := (rarelyTerm + d("D5.3") + fearLove) / 15 * 100

	compatQuotient := ((6 - d("D5.4")) + (6 - d("D4.6")) + (6 - d("D5.1"))) / 15 * 100

	neverTerm := 0.0
	if repairScale == 1 {
		neverTerm = 5
	}
	malice := (d("D2.2") + d("D2.1") + neverTerm) / 15 * 100

	burnout := (d("D1.1") + d("D2.4") + d("D4.3")) / 15 * 100
	eroticPotential := ((6 - d("D3.6")) - d("D3.1") + 5) / 10 * 100
	resilience := (float64(durationToScale(profile.RelationshipDuration)) + (6 - d("D2.5")) + (6 - d("D1.6"))) / 15 * 100

	return Indices{
		SustainabilityForecast: round(sustainability),
		EroticDeathSpiral:      round(parentTrap),
		BetrayalVulnerability:  round(openDoor),
		RepairEfficiency:       round(bounceBack),
		DutySexIndex:           round(dutySex),
		CEOVsIntern:            round(ceoVsIntern),
		SilentDivorceRisk:      round(silentDivorce),
		CompatibilityQuotient:  round(compatQuotient),
		InternalizedMalice:     round(malice),
		NervousSystemLoad:      round(burnout),
		EroticPotential:        round(eroticPotential),
		ResilienceBattery:      round(resilience),
		Flags: Flags{
			SafetyTrigger:         d("D2.2") == 5 || fearScore == 5,
			PositivePotential:     raw("D3.6") >= 4 && raw("D3.1") >= 4,
			SilentDivorceHighRisk: silentDivorce > 70,
		},
	}
}

// repairToScale maps the repair habit onto the 1-4 formula scale; unknown
// values read as "sometimes".
func repairToScale(raw string) int {
	switch compat.ParseRepairFrequency(raw) {
	case compat.RepairNever:
		return 1
	case compat.RepairRarely:
		return 2
	case compat.RepairAlways:
		return 4
	default:
		return 3
	}
}

// durationToScale maps the relationship-duration bucket onto the 1-5 formula
// scale; unknown values read as the midpoint.
func durationToScale(raw string) int {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "0-6mo":
		return 1
	case "6mo-2yr":
		return 2
	case "2-5yr":
		return 3
	case "5-10yr":
		return 4
	case "10+yr":
		return 5
	default:
		return 3
	}
}

func round(v float64) int {
	return int(math.Round(v))
}
