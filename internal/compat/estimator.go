package compat

import "strings"

// withdrawalDimension marks the dominant dimension whose holders read as
// withdrawal-oriented in the conflict-style symmetry factor.
const withdrawalDimension = "communication"

// Estimate runs the compatibility pass: a neutral base of 50, ordered
// additive factors (each appending a breakdown entry), a [0,100] clamp, a
// risk tier, and one recommendation chosen by a fixed priority cascade.
// Absent input fields skip their factor; no factor is mandatory.
func Estimate(input Input) Result {
	score := 50
	breakdown := make([]Factor, 0, 4)

	apply := func(delta int, f Factor) {
		score += delta
		breakdown = append(breakdown, f)
	}

	userWithdraws := input.DominantDimension == withdrawalDimension
	partnerStyle := ParseConflictStyle(input.PartnerConflictStyle)

	if input.PartnerConflictStyle != "" && partnerStyle != ConflictStyleUnknown {
		partnerWithdraws := partnerStyle == ConflictStyleWithdraws
		switch {
		case userWithdraws && partnerWithdraws:
			apply(10, Factor{
				Dimension: "Conflict Style",
				Score:     60,
				Status:    StatusAligned,
				Insight:   "You both avoid conflict, which reduces tension but may leave issues unresolved.",
			})
		case !userWithdraws && !partnerWithdraws:
			apply(5, Factor{
				Dimension: "Conflict Style",
				Score:     55,
				Status:    StatusAligned,
				Insight:   "You both engage in conflict, which can be intense but leads to resolution.",
			})
		default:
			apply(-15, Factor{
				Dimension: "Conflict Style",
				Score:     35,
				Status:    StatusOpposite,
				Insight:   "Classic pursuer-withdrawer dynamic. One seeks connection, the other needs space.",
			})
		}
	}

	fightFreq := FrequencyOther
	if input.FightFrequency != "" {
		fightFreq = ParseFightFrequency(input.FightFrequency)
		switch fightFreq {
		case FrequencyDaily:
			apply(-20, Factor{
				Dimension: "Conflict Frequency",
				Score:     30,
				Status:    StatusMismatched,
				Insight:   "Daily conflicts indicate high stress. Your nervous systems are in constant activation.",
			})
		case FrequencyWeekly:
			apply(-10, Factor{
				Dimension: "Conflict Frequency",
				Score:     40,
				Status:    StatusMismatched,
				Insight:   "Weekly conflicts are manageable but suggest ongoing tension.",
			})
		case FrequencyMonthly:
			apply(10, Factor{
				Dimension: "Conflict Frequency",
				Score:     70,
				Status:    StatusAligned,
				Insight:   "Monthly conflicts are normal. You handle stress well together.",
			})
		default:
			apply(15, Factor{
				Dimension: "Conflict Frequency",
				Score:     85,
				Status:    StatusAligned,
				Insight:   "Rare conflicts suggest strong compatibility or effective communication.",
			})
		}
	}

	repair := RepairOther
	if input.RepairFrequency != "" {
		repair = ParseRepairFrequency(input.RepairFrequency)
		switch repair {
		case RepairAlways:
			apply(25, Factor{
				Dimension: "Repair Ability",
				Score:     95,
				Status:    StatusAligned,
				Insight:   "Strong repair ability is the #1 predictor of relationship success. You have this.",
			})
		case RepairSometimes:
			apply(5, Factor{
				Dimension: "Repair Ability",
				Score:     55,
				Status:    StatusAligned,
				Insight:   "Inconsistent repair. When you do reconnect, it works. The challenge is consistency.",
			})
		case RepairRarely:
			apply(-15, Factor{
				Dimension: "Repair Ability",
				Score:     35,
				Status:    StatusMismatched,
				Insight:   "Rare repair is a red flag. Unresolved conflicts erode connection over time.",
			})
		default:
			apply(-30, Factor{
				Dimension: "Repair Ability",
				Score:     20,
				Status:    StatusOpposite,
				Insight:   "No repair is critical. Issues are piling up, creating resentment and distance.",
			})
		}
	}

	state := strings.ToLower(input.DominantState)
	switch {
	case strings.Contains(state, "amplified"):
		apply(-10, Factor{
			Dimension: "Your Nervous System",
			Score:     40,
			Status:    StatusMismatched,
			Insight:   "Your heightened sensitivity makes conflicts feel more intense than they are.",
		})
	case strings.Contains(state, "secure"):
		apply(10, Factor{
			Dimension: "Your Nervous System",
			Score:     80,
			Status:    StatusAligned,
			Insight:   "Your regulated nervous system helps you navigate conflicts calmly.",
		})
	}

	final := clamp(score, 0, 100)

	return Result{
		OverallScore:      final,
		Breakdown:         breakdown,
		RiskLevel:         riskLevel(final),
		TopRecommendation: recommend(input, repair, fightFreq, partnerStyle, userWithdraws),
	}
}

func riskLevel(score int) RiskLevel {
	switch {
	case score >= 70:
		return RiskLow
	case score >= 40:
		return RiskMedium
	default:
		return RiskHigh
	}
}

// recommend picks the single top recommendation by a fixed priority cascade:
// broken repair beats daily fighting beats the pursuer-withdrawer pattern
// beats the maintenance fallback. Order matters; the first match wins.
func recommend(input Input, repair RepairHabit, fightFreq Frequency, partnerStyle ConflictStyle, userWithdraws bool) string {
	if input.RepairFrequency != "" && (repair == RepairNever || repair == RepairRarely) {
		return "Learn repair skills. This is your #1 priority. Use the scripts in your report."
	}
	if input.FightFrequency != "" && fightFreq == FrequencyDaily {
		return "Reduce conflict frequency by addressing triggers before they escalate."
	}
	if partnerStyle == ConflictStyleWithdraws && !userWithdraws {
		return "Break the pursuer-withdrawer cycle. Give your partner space, then reconnect."
	}
	return "Focus on maintaining your repair rituals. This is your strength."
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
