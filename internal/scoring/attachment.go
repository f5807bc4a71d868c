package scoring

import "strings"

// attachmentStyle derives a coarse attachment classification from the
// emotional-safety and physical-intimacy scores. High SL on either reads as
// high need for reassurance/connection; high safety PM reads as distrust.
func attachmentStyle(dimensions map[Dimension]DimensionScore) AttachmentStyle {
	safety, okSafety := dimensions[DimEmotionalSafety]
	intimacy, okIntimacy := dimensions[DimPhysicalIntimacy]
	if !okSafety || !okIntimacy {
		return AttachmentSecure
	}

	highNeed := safety.SL > 60 || intimacy.SL > 60
	highDistrust := safety.PM > 60
	lowNeed := intimacy.SL < 40

	switch {
	case !highNeed && !highDistrust:
		return AttachmentSecure
	case highNeed && !highDistrust:
		return AttachmentAnxiousPreoccupied
	case highDistrust && lowNeed:
		return AttachmentDismissiveAvoidant
	case highDistrust && highNeed:
		return AttachmentFearfulAvoidant
	case highNeed:
		return AttachmentAnxiousPreoccupied
	default:
		return AttachmentDismissiveAvoidant
	}
}

// relationshipPhase derives a coarse phase from the count of distressed
// states plus the reported relationship duration.
func relationshipPhase(stats []dimensionStat, duration string) RelationshipPhase {
	distressCount := 0
	hasCynicism := false
	for _, s := range stats {
		switch s.score.State {
		case QuadrantAmplifiedDistress:
			distressCount++
		case QuadrantDetachedCynicism:
			distressCount++
			hasCynicism = true
		}
	}

	if duration == "" || strings.Contains(strings.ToLower(duration), "less than 1") {
		return PhaseHoneymoon
	}
	if distressCount >= 3 {
		return PhasePowerStruggle
	}
	if hasCynicism {
		return PhaseDeadZone
	}
	if distressCount == 0 {
		return PhasePartnership
	}
	return PhasePowerStruggle
}
