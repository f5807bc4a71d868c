package scoring

// The question binding table is configuration, not runtime state: each of the
// 28 questionnaire items belongs to exactly one (dimension, axis) group, and a
// handful are reverse-coded. The engine's table is authoritative even when
// callers redundantly supply dimension/axis per answer.

const (
	rawMin = 1
	rawMax = 5
)

// axisQuestions maps each dimension to its PM and SL question id groups.
var axisQuestions = map[Dimension]map[Axis][]int{
	DimCommunication:    {AxisPM: {2, 4, 5}, AxisSL: {1, 3, 6}},
	DimEmotionalSafety:  {AxisPM: {8, 11, 12}, AxisSL: {7, 9, 10}},
	DimPhysicalIntimacy: {AxisPM: {15, 16, 18}, AxisSL: {13, 14, 17}},
	DimPowerFairness:    {AxisPM: {20, 24}, AxisSL: {19, 21, 22, 23}},
	DimFutureValues:     {AxisPM: {26, 28}, AxisSL: {25, 27}},
}

// reverseCoded marks items whose agreement indicates health rather than
// distress; their normalized value is flipped.
var reverseCoded = map[int]bool{
	6:  true,
	11: true,
	18: true,
	24: true,
	28: true,
}

// QuestionCount is the number of configured questionnaire items.
const QuestionCount = 28

// QuestionIDs returns all configured question ids in ascending order.
func QuestionIDs() []int {
	ids := make([]int, 0, QuestionCount)
	for i := 1; i <= QuestionCount; i++ {
		ids = append(ids, i)
	}
	return ids
}

// IsReverseCoded reports whether the given question id is reverse-coded.
func IsReverseCoded(questionID int) bool {
	return reverseCoded[questionID]
}

// IsKnownQuestion reports whether the given id is a configured item.
func IsKnownQuestion(questionID int) bool {
	return questionID >= 1 && questionID <= QuestionCount
}

// IsValidAnswer reports whether a raw answer value is on the Likert scale.
func IsValidAnswer(value int) bool {
	return value >= rawMin && value <= rawMax
}
