// README: Prompt builder tests (purity, field order, omission).
package plan

import (
	"strings"
	"testing"
)

func TestSystemPromptIsStable(t *testing.T) {
	a, b := SystemPrompt(), SystemPrompt()
	if a != b {
		t.Fatal("system prompt differs between calls")
	}
	// The worked example must advertise the same wire contract the validator
	// enforces.
	for _, key := range []string{"reiseziele", "reisezeitraum", "personen", "budget", "unterkunft", "tagesplan", "tipps", "premiumEmpfehlung"} {
		if !strings.Contains(a, `"`+key+`"`) {
			t.Errorf("system prompt is missing schema key %q", key)
		}
	}
}

func TestUserPromptFullRequest(t *testing.T) {
	req := TravelRequest{
		"besondereWuensche": "barrierefrei",
		"ziel":              "Rom",
		"personen":          float64(4),
		"abflughafen":       "MUC",
		"reisezeitraum":     "10.05.2026 - 15.05.2026",
		"interessen":        "Geschichte, Essen",
		"budget":            "hoch",
		"unterkunft":        "Boutique-Hotel",
		"reisestil":         "entspannt",
	}

	want := strings.Join([]string{
		"Ziel(e): Rom",
		"Startflughafen: MUC",
		"Reisezeitraum: 10.05.2026 - 15.05.2026",
		"Budget: hoch",
		"Personen: 4",
		"Interessen: Geschichte, Essen",
		"Reisestil: entspannt",
		"Unterkunft: Boutique-Hotel",
		"Besondere Wünsche: barrierefrei",
	}, "\n")

	if got := UserPrompt(req); got != want {
		t.Errorf("user prompt mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestUserPromptOmitsAbsentFields(t *testing.T) {
	req := TravelRequest{"ziel": "Lissabon", "budget": "niedrig"}
	want := "Ziel(e): Lissabon\nBudget: niedrig"
	if got := UserPrompt(req); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	if got := UserPrompt(TravelRequest{}); got != "" {
		t.Errorf("empty request must render empty prompt, got %q", got)
	}
	if got := UserPrompt(nil); got != "" {
		t.Errorf("nil request must render empty prompt, got %q", got)
	}
}

func TestUserPromptIsPure(t *testing.T) {
	req := TravelRequest{"ziel": "Kyoto", "personen": 2, "unbekanntesFeld": "x"}
	first := UserPrompt(req)
	for i := 0; i < 5; i++ {
		if got := UserPrompt(req); got != first {
			t.Fatalf("call %d produced different output", i)
		}
	}
	// Unknown request fields are never rendered into the prompt.
	if strings.Contains(first, "unbekanntesFeld") {
		t.Error("unknown field leaked into the prompt")
	}
}

func TestUserPromptSkipsUnusableValues(t *testing.T) {
	// Whitespace-only and non-renderable values are treated as absent; string
	// values pass through as the user typed them.
	req := TravelRequest{"ziel": "  ", "budget": true, "personen": "vier"}
	if got := UserPrompt(req); got != "Personen: vier" {
		t.Errorf("got %q, want %q", got, "Personen: vier")
	}
}
