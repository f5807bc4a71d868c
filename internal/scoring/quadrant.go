package scoring

// Classify maps a dimension's two axis scores to its behavioral state. The
// threshold is 50, inclusive-high on both axes; the function is total over
// all integer inputs and a one-point change can flip the state at the
// boundary.
func Classify(sl, pm int) Quadrant {
	highSL := sl >= 50
	highPM := pm >= 50

	switch {
	case highSL && highPM:
		return QuadrantAmplifiedDistress
	case highSL:
		return QuadrantSelfRegulation
	case highPM:
		return QuadrantDetachedCynicism
	default:
		return QuadrantSecureFlow
	}
}
