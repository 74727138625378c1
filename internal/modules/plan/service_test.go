// README: Orchestrator tests (pipeline outcomes + persistence isolation).
package plan

import (
	"context"
	"errors"
	"reflect"
	"sync/atomic"
	"testing"
	"time"
)

// fakeStrategy returns a fixed candidate or error.
type fakeStrategy struct {
	doc   Itinerary
	err   error
	calls int64
}

func (s *fakeStrategy) GeneratePlan(_ context.Context, _ TravelRequest) (Itinerary, error) {
	atomic.AddInt64(&s.calls, 1)
	if s.err != nil {
		return nil, s.err
	}
	return s.doc.Clone(), nil
}

// recordingStore signals every save attempt and optionally fails.
type recordingStore struct {
	err   error
	saved chan Itinerary
}

func newRecordingStore(err error) *recordingStore {
	return &recordingStore{err: err, saved: make(chan Itinerary, 1)}
}

func (s *recordingStore) SavePlan(_ context.Context, _ TravelRequest, plan Itinerary) error {
	select {
	case s.saved <- plan:
	default:
	}
	return s.err
}

// fakeCache is an in-memory PlanCache.
type fakeCache struct {
	entries map[string]Itinerary
	getErr  error
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]Itinerary{}}
}

func (c *fakeCache) Get(_ context.Context, req TravelRequest) (Itinerary, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	doc, ok := c.entries[req.String("ziel")]
	return doc, ok, nil
}

func (c *fakeCache) Set(_ context.Context, req TravelRequest, plan Itinerary) error {
	c.entries[req.String("ziel")] = plan
	return nil
}

func awaitSave(t *testing.T, store *recordingStore) Itinerary {
	t.Helper()
	select {
	case doc := <-store.saved:
		return doc
	case <-time.After(2 * time.Second):
		t.Fatal("persistence was never attempted")
		return nil
	}
}

func TestPlanHappyPath(t *testing.T) {
	store := newRecordingStore(nil)
	svc := NewService(NewFallbackStrategy(), NewEnricher(nil), store, nil)

	got, err := svc.Plan(context.Background(), TravelRequest{"ziel": "Rom"})
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if got["enriched"] != true {
		t.Error("returned plan is not enriched")
	}
	if v := Validate(got); len(v) != 0 {
		t.Errorf("returned plan is invalid: %v", v)
	}

	saved := awaitSave(t, store)
	if saved["enriched"] != true {
		t.Error("persisted plan is not the enriched document")
	}
}

func TestPlanRejectsInvalidCandidate(t *testing.T) {
	invalid := validDoc(t)
	delete(invalid, "unterkunft")
	store := newRecordingStore(nil)
	svc := NewService(&fakeStrategy{doc: invalid}, NewEnricher(nil), store, nil)

	got, err := svc.Plan(context.Background(), TravelRequest{})
	if got != nil {
		t.Error("invalid document must not be returned")
	}

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("got %v, want ValidationError", err)
	}
	if len(ve.Violations) != 1 {
		t.Errorf("expected exactly 1 violation, got %v", ve.Violations)
	}

	select {
	case <-store.saved:
		t.Error("rejected plan must not be persisted")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestPlanGenerationFailureShortCircuits(t *testing.T) {
	svc := NewService(&fakeStrategy{err: ErrEmptyGeneration}, NewEnricher(nil), nil, nil)
	_, err := svc.Plan(context.Background(), TravelRequest{})
	if !errors.Is(err, ErrEmptyGeneration) {
		t.Fatalf("got %v, want ErrEmptyGeneration", err)
	}
}

// TestPlanPersistenceFailureIsolated: a store that fails on every call must
// not change the returned plan in any way.
func TestPlanPersistenceFailureIsolated(t *testing.T) {
	req := TravelRequest{"ziel": "Rom", "personen": 2}

	okStore := newRecordingStore(nil)
	failStore := newRecordingStore(errors.New("database down"))

	okSvc := NewService(NewFallbackStrategy(), NewEnricher(nil), okStore, nil)
	failSvc := NewService(NewFallbackStrategy(), NewEnricher(nil), failStore, nil)

	okPlan, okErr := okSvc.Plan(context.Background(), req)
	failPlan, failErr := failSvc.Plan(context.Background(), req)

	if okErr != nil || failErr != nil {
		t.Fatalf("unexpected errors: %v / %v", okErr, failErr)
	}
	if !reflect.DeepEqual(okPlan, failPlan) {
		t.Error("persistence failure changed the returned plan")
	}
	awaitSave(t, failStore)
}

func TestPlanCacheHitSkipsGeneration(t *testing.T) {
	cached := NewEnricher(nil).Enrich(context.Background(), validDoc(t))
	cache := newFakeCache()
	cache.entries["Rom"] = cached

	strategy := &fakeStrategy{doc: validDoc(t)}
	svc := NewService(strategy, NewEnricher(nil), nil, cache)

	got, err := svc.Plan(context.Background(), TravelRequest{"ziel": "Rom"})
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if !reflect.DeepEqual(got, cached) {
		t.Error("cache hit did not return the cached plan")
	}
	if atomic.LoadInt64(&strategy.calls) != 0 {
		t.Error("strategy was invoked despite a cache hit")
	}
}

func TestPlanCacheErrorDegradesToMiss(t *testing.T) {
	cache := newFakeCache()
	cache.getErr = errors.New("redis down")

	svc := NewService(NewFallbackStrategy(), NewEnricher(nil), nil, cache)
	got, err := svc.Plan(context.Background(), TravelRequest{"ziel": "Rom"})
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if got["enriched"] != true {
		t.Error("degraded cache path did not produce a plan")
	}
}
