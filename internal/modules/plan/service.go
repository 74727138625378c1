// README: Plan service orchestrates generate → validate → enrich → persist.
package plan

import (
	"context"
	"fmt"
	"log"
	"time"
)

// Persister stores a request/plan pair. Failures are reported but must never
// change the outcome of the request that produced the plan.
type Persister interface {
	SavePlan(ctx context.Context, req TravelRequest, plan Itinerary) error
}

// PlanCache is an optional read-through cache for enriched plans.
type PlanCache interface {
	Get(ctx context.Context, req TravelRequest) (Itinerary, bool, error)
	Set(ctx context.Context, req TravelRequest, plan Itinerary) error
}

// ValidationError carries the exhaustive violation list for a rejected
// candidate. The invalid document itself is never returned to the caller.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid travel plan (%d violation(s))", len(e.Violations))
}

// persistTimeout bounds the detached persistence/cache write so a slow backend
// cannot leak goroutines indefinitely.
const persistTimeout = 5 * time.Second

// Service runs one request through the planning pipeline. All collaborators
// are injected; store and cache may be nil, which turns the corresponding
// stage into a no-op.
type Service struct {
	strategy Strategy
	enricher *Enricher
	store    Persister
	cache    PlanCache
}

func NewService(strategy Strategy, enricher *Enricher, store Persister, cache PlanCache) *Service {
	if enricher == nil {
		enricher = NewEnricher(nil)
	}
	return &Service{strategy: strategy, enricher: enricher, store: store, cache: cache}
}

// Plan executes one pass of the pipeline: cache lookup, generation,
// validation, enrichment, then fire-and-forget persistence. Nothing is
// retried; generation failures and schema violations are fatal to the request,
// persistence and cache failures are logged only.
func (s *Service) Plan(ctx context.Context, req TravelRequest) (Itinerary, error) {
	if s.cache != nil {
		if cached, ok, err := s.cache.Get(ctx, req); err != nil {
			log.Printf("plan cache read: %v", err)
		} else if ok {
			return cached, nil
		}
	}

	candidate, err := s.strategy.GeneratePlan(ctx, req)
	if err != nil {
		return nil, err
	}

	if violations := Validate(candidate); len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	enriched := s.enricher.Enrich(ctx, candidate)

	// Persistence and cache fill are fire-and-forget: the response must not
	// wait on them, and their failure never reaches the caller.
	if s.store != nil || s.cache != nil {
		go s.record(req, enriched)
	}

	return enriched, nil
}

func (s *Service) record(req TravelRequest, plan Itinerary) {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	if s.store != nil {
		if err := s.store.SavePlan(ctx, req, plan); err != nil {
			log.Printf("persist plan: %v", err)
		}
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, req, plan); err != nil {
			log.Printf("plan cache write: %v", err)
		}
	}
}
