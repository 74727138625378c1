// README: Candidate itinerary generation (model-backed and fallback strategies).
package plan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"fernweh/internal/ai"
)

// ErrEmptyGeneration signals that the generative backend returned nothing
// usable (no payload, a transport failure, or a timeout).
var ErrEmptyGeneration = errors.New("generative backend returned no content")

// MalformedGenerationError signals that the backend returned text that could
// not be parsed as an itinerary document. Detail carries the parse error and
// Raw the offending payload for diagnostics.
type MalformedGenerationError struct {
	Detail error
	Raw    string
}

func (e *MalformedGenerationError) Error() string {
	return fmt.Sprintf("failed to parse generated plan as JSON: %v", e.Detail)
}

func (e *MalformedGenerationError) Unwrap() error { return e.Detail }

// Strategy produces a candidate itinerary from a travel request. The candidate
// is unvalidated; the orchestrator is agnostic to which strategy produced it.
type Strategy interface {
	GeneratePlan(ctx context.Context, req TravelRequest) (Itinerary, error)
}

// ModelStrategy asks the generative backend for a plan and parses the text
// payload. It never retries; retry policy belongs to the caller.
type ModelStrategy struct {
	backend ai.TextGenerator
}

func NewModelStrategy(backend ai.TextGenerator) *ModelStrategy {
	return &ModelStrategy{backend: backend}
}

func (s *ModelStrategy) GeneratePlan(ctx context.Context, req TravelRequest) (Itinerary, error) {
	text, err := s.backend.Generate(ctx, SystemPrompt(), UserPrompt(req))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmptyGeneration, err)
	}

	// Strip markdown fences before parsing; JSON response mode should prevent
	// them, but model output is untrusted free text.
	cleaned := cleanJSONString(text)
	if cleaned == "" {
		return nil, ErrEmptyGeneration
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(cleaned), &doc); err != nil {
		return nil, &MalformedGenerationError{Detail: err, Raw: cleaned}
	}
	return Itinerary(doc), nil
}

// FallbackStrategy synthesizes a minimal itinerary directly from the request
// when no generative backend is configured. It never fails and its output
// always passes Validate: it is the system's safety net, so any unusable
// request field is replaced by a placeholder rather than carried through.
type FallbackStrategy struct{}

func NewFallbackStrategy() *FallbackStrategy {
	return &FallbackStrategy{}
}

func (s *FallbackStrategy) GeneratePlan(_ context.Context, req TravelRequest) (Itinerary, error) {
	destination := req.String("ziel")
	if destination == "" {
		destination = "Paris"
	}

	dateRange := req.String("reisezeitraum")
	if !rangePattern.MatchString(dateRange) {
		dateRange = "01.01.2026 - 05.01.2026"
	}

	travelers, ok := req.Int("personen")
	if !ok || travelers < 1 {
		travelers = 2
	}

	budget := req.String("budget")
	if !containsString(BudgetTiers, budget) {
		budget = "mittel"
	}

	firstDay := strings.SplitN(dateRange, " - ", 2)[0]

	return Itinerary{
		"reiseziele":    []any{destination},
		"reisezeitraum": dateRange,
		"personen":      travelers,
		"budget":        budget,
		"unterkunft": map[string]any{
			"vorschlag":     "Hotel Demo",
			"preisProNacht": "100€",
			"affiliateLink": "https://booking.com/demo",
		},
		"tagesplan": []any{
			map[string]any{
				"tag":          1,
				"datum":        firstDay,
				"beschreibung": "Ankunft und erster Spaziergang durch die Stadt.",
				"aktivitaeten": []any{
					map[string]any{
						"titel":         "Stadtbesichtigung",
						"beschreibung":  "Erkunden Sie die Altstadt und genießen Sie lokale Spezialitäten.",
						"affiliateLink": "https://viator.com/demo-tour",
					},
				},
				"restaurant": "Demo Restaurant",
				"bemerkung":  "Leichtes Programm am Ankunftstag.",
			},
		},
		"tipps": []any{"Vergessen Sie bequeme Schuhe nicht."},
		"premiumEmpfehlung": map[string]any{
			"beschreibung":    "Concierge-Service für persönliche Beratung & Echtzeitpreise",
			"preis":           "29€",
			"jetztBuchenLink": "https://deinservice.com/upgrade",
		},
	}, nil
}

// cleanJSONString removes markdown code blocks if present (e.g. ```json ... ```)
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
