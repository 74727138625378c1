package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"fernweh/internal/ai"
	"fernweh/internal/modules/plan"
)

func main() {
	ctx := context.Background()

	var strategy plan.Strategy = plan.NewFallbackStrategy()
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		provider, err := ai.NewGeminiProvider(ctx, apiKey, os.Getenv("GEMINI_MODEL"))
		if err != nil {
			log.Fatalf("Failed to initialize AI provider: %v", err)
		}
		defer provider.Close()
		strategy = plan.NewModelStrategy(provider)
	} else {
		fmt.Println("GEMINI_API_KEY not set, using fallback generator")
	}

	req := plan.TravelRequest{
		"ziel":          "Rom",
		"reisezeitraum": "10.05.2026 - 15.05.2026",
		"budget":        "hoch",
		"personen":      4,
		"interessen":    "Geschichte, Essen",
	}

	svc := plan.NewService(strategy, plan.NewEnricher(nil), nil, nil)
	itinerary, err := svc.Plan(ctx, req)
	if err != nil {
		log.Fatalf("Error generating plan: %v", err)
	}

	out, _ := json.MarshalIndent(itinerary, "", "  ")
	fmt.Println(string(out))
}
