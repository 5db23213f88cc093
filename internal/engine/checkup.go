package engine

// Symptom categories for the electrolyte self-checkup.
const (
	catSaltDeficit = "salt_deficiency"
	catDehydration = "dehydration"
	catSaltExcess  = "excess_salt"
)

// Symptom is one selectable item in the checkup list.
type Symptom struct {
	ID       string
	Label    string
	Category string
}

// Symptoms returns the checkup list in display order.
func Symptoms() []Symptom {
	return []Symptom{
		{"headache", "Headache", catSaltDeficit},
		{"dizziness", "Dizziness when standing", catSaltDeficit},
		{"fatigue", "Fatigue / lethargy", catSaltDeficit},
		{"brainfog", "Brain fog", catSaltDeficit},
		{"thirst", "Strong thirst", catDehydration},
		{"drymouth", "Dry mouth", catDehydration},
		{"urine_dark", "Dark urine", catDehydration},
		{"cramps", "Muscle cramps", catSaltDeficit},
		{"palpitations", "Heart palpitations", catSaltDeficit},
		{"edema", "Swollen hands or feet", catSaltExcess},
	}
}

// Diagnosis is the checkup verdict with a suggested action.
type Diagnosis struct {
	Title  string
	Detail string
	Action string
	Color  string
}

// Diagnose weighs the selected symptoms by category and returns the
// dominant verdict. Pure function; it never touches the ledger.
func Diagnose(selected []string) Diagnosis {
	byID := make(map[string]Symptom)
	for _, s := range Symptoms() {
		byID[s.ID] = s
	}

	var deficit, dehydration, excess int
	for _, id := range selected {
		sym, ok := byID[id]
		if !ok {
			continue
		}
		switch sym.Category {
		case catSaltDeficit:
			deficit++
		case catDehydration:
			dehydration++
		case catSaltExcess:
			excess++
		}
	}

	switch {
	case excess > 0 && deficit == 0:
		return Diagnosis{
			Title:  "Possible sodium overload",
			Detail: "Swelling suggests excess sodium. Pause salt intake and drink plain water.",
			Action: "Drink 500ml plain water, hold the salt",
			Color:  "#FF9800",
		}
	case deficit > 0 && deficit >= dehydration:
		return Diagnosis{
			Title:  "Sodium deficit",
			Detail: "Headache and lethargy are early low-sodium signals. Replenish salt now.",
			Action: "Take 2-3g salt with 500ml water",
			Color:  "#F44336",
		}
	case dehydration > deficit:
		return Diagnosis{
			Title:  "Dehydration",
			Detail: "Thirst and dark urine point to dehydration. Prioritize plain water over salt.",
			Action: "Sip 300ml plain water slowly",
			Color:  "#2196F3",
		}
	default:
		return Diagnosis{
			Title:  "All clear",
			Detail: "No electrolyte imbalance signals detected. Keep the current routine.",
			Action: "Maintain the water and salt balance",
			Color:  "#4CAF50",
		}
	}
}
