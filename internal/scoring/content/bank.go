// Package content holds the static prescriptive text bank the scoring engine
// resolves against. The bank is external data: it is assembled once, injected
// into the engine, and never mutated afterwards, so concurrent readers need no
// synchronization.
package content

// Scripts are the two behavioral scripts attached to a prescription.
type Scripts struct {
	InTheMoment string `json:"inTheMoment"`
	Repair      string `json:"repair"`
}

// Prescription is the prewritten text bundle for one (dimension, state) pair.
type Prescription struct {
	StateName          string  `json:"stateName"`
	Analysis           string  `json:"analysis"`
	Scripts            Scripts `json:"scripts"`
	PartnerTranslation string  `json:"partnerTranslation"`
}

// CoreNeed describes the need/fear pair behind a dimension.
type CoreNeed struct {
	Need string `json:"need"`
	Fear string `json:"fear"`
}

// Bank is an immutable lookup table keyed by dimension and quadrant-state
// names. Construct it with New or Default; the zero value resolves nothing.
type Bank struct {
	prescriptions map[string]map[string]Prescription
	coreNeeds     map[string]CoreNeed
	eventTriggers map[string]string
	questions     map[string][]string
}

// New copies the supplied tables into a Bank. Callers keep no way to mutate
// the bank afterwards.
func New(
	prescriptions map[string]map[string]Prescription,
	coreNeeds map[string]CoreNeed,
	eventTriggers map[string]string,
	questions map[string][]string,
) *Bank {
	b := &Bank{
		prescriptions: make(map[string]map[string]Prescription, len(prescriptions)),
		coreNeeds:     make(map[string]CoreNeed, len(coreNeeds)),
		eventTriggers: make(map[string]string, len(eventTriggers)),
		questions:     make(map[string][]string, len(questions)),
	}
	for dim, byState := range prescriptions {
		inner := make(map[string]Prescription, len(byState))
		for state, p := range byState {
			inner[state] = p
		}
		b.prescriptions[dim] = inner
	}
	for dim, need := range coreNeeds {
		b.coreNeeds[dim] = need
	}
	for dim, trigger := range eventTriggers {
		b.eventTriggers[dim] = trigger
	}
	for dim, qs := range questions {
		copied := make([]string, len(qs))
		copy(copied, qs)
		b.questions[dim] = copied
	}
	return b
}

// Prescription resolves the bundle for a (dimension, state) pair.
func (b *Bank) Prescription(dimension, state string) (Prescription, bool) {
	byState, ok := b.prescriptions[dimension]
	if !ok {
		return Prescription{}, false
	}
	p, ok := byState[state]
	return p, ok
}

// CoreNeed returns the need/fear pair for a dimension.
func (b *Bank) CoreNeed(dimension string) (CoreNeed, bool) {
	need, ok := b.coreNeeds[dimension]
	return need, ok
}

// EventTrigger returns the situational trigger sentence for a dimension.
func (b *Bank) EventTrigger(dimension string) (string, bool) {
	trigger, ok := b.eventTriggers[dimension]
	return trigger, ok
}

// Questions returns the reflection questions for a dimension. The returned
// slice is a copy.
func (b *Bank) Questions(dimension string) []string {
	qs, ok := b.questions[dimension]
	if !ok {
		return nil
	}
	out := make([]string, len(qs))
	copy(out, qs)
	return out
}
