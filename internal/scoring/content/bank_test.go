package content

import "testing"

var allDimensions = []string{
	"communication",
	"emotional_safety",
	"physical_intimacy",
	"power_fairness",
	"future_values",
}

var allStates = []string{
	"Amplified Distress",
	"Self-Regulation",
	"Detached Cynicism",
	"Secure Flow",
}

func TestDefaultBankCoversEveryPair(t *testing.T) {
	bank := Default()
	for _, dim := range allDimensions {
		for _, state := range allStates {
			p, ok := bank.Prescription(dim, state)
			if !ok {
				t.Fatalf("missing prescription %s/%s", dim, state)
			}
			if p.StateName == "" || p.Analysis == "" {
				t.Fatalf("incomplete prescription %s/%s", dim, state)
			}
			if p.Scripts.InTheMoment == "" || p.Scripts.Repair == "" {
				t.Fatalf("incomplete scripts %s/%s", dim, state)
			}
			if p.PartnerTranslation == "" {
				t.Fatalf("missing partner translation %s/%s", dim, state)
			}
		}

		need, ok := bank.CoreNeed(dim)
		if !ok || need.Need == "" || need.Fear == "" {
			t.Fatalf("incomplete core need for %s", dim)
		}
		trigger, ok := bank.EventTrigger(dim)
		if !ok || trigger == "" {
			t.Fatalf("missing event trigger for %s", dim)
		}
		if qs := bank.Questions(dim); len(qs) == 0 {
			t.Fatalf("missing questions for %s", dim)
		}
	}
}

func TestBankResolvesUnknownKeys(t *testing.T) {
	bank := Default()
	if _, ok := bank.Prescription("finances", "Secure Flow"); ok {
		t.Fatalf("unexpected prescription for unknown dimension")
	}
	if _, ok := bank.Prescription("communication", "Total Meltdown"); ok {
		t.Fatalf("unexpected prescription for unknown state")
	}
	if _, ok := bank.CoreNeed("finances"); ok {
		t.Fatalf("unexpected core need for unknown dimension")
	}
	if qs := bank.Questions("finances"); qs != nil {
		t.Fatalf("expected nil questions for unknown dimension")
	}
}

func TestQuestionsReturnsCopy(t *testing.T) {
	bank := Default()
	first := bank.Questions("communication")
	first[0] = "mutated"
	second := bank.Questions("communication")
	if second[0] == "mutated" {
		t.Fatalf("Questions leaked internal slice")
	}
}

func TestNewCopiesInputs(t *testing.T) {
	prescriptions := map[string]map[string]Prescription{
		"communication": {"Secure Flow": {StateName: "x"}},
	}
	bank := New(prescriptions, nil, nil, map[string][]string{"communication": {"q1"}})

	prescriptions["communication"]["Secure Flow"] = Prescription{StateName: "changed"}
	if p, _ := bank.Prescription("communication", "Secure Flow"); p.StateName != "x" {
		t.Fatalf("New did not copy prescriptions")
	}
}
