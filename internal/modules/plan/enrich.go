// README: Additive enrichment of a validated itinerary.
package plan

import (
	"context"
	"log"
	"sync"
)

// LinkResolver resolves a booking link for a named accommodation or activity
// near a destination. Implementations are external collaborators; a failure
// must never cost the caller an otherwise valid document.
type LinkResolver interface {
	ResolveLink(ctx context.Context, name, destination string) (string, error)
}

// Enricher performs deterministic post-validation augmentation. It only ever
// adds fields: the enrichment marker always, and resolved affiliate links for
// activities that lack one when a resolver is configured.
type Enricher struct {
	resolver LinkResolver
}

// NewEnricher creates an Enricher. resolver may be nil, in which case only the
// enrichment marker is added.
func NewEnricher(resolver LinkResolver) *Enricher {
	return &Enricher{resolver: resolver}
}

// Enrich returns an augmented copy of an already-valid document. The input is
// never mutated, validated fields are never overwritten or removed, and the
// result passes Validate whenever the input did. Resolver failures are logged
// and skipped.
func (e *Enricher) Enrich(ctx context.Context, doc Itinerary) Itinerary {
	out := doc.Clone()
	out["enriched"] = true

	if e.resolver == nil {
		return out
	}

	destination := firstDestination(out)

	// Resolve links for all activities that lack one, one goroutine per entry.
	// Each goroutine writes into a distinct activity object.
	var wg sync.WaitGroup
	for _, activity := range activitiesWithoutLink(out) {
		wg.Add(1)
		go func(a map[string]any) {
			defer wg.Done()
			title, _ := a["titel"].(string)
			link, err := e.resolver.ResolveLink(ctx, title, destination)
			if err != nil {
				log.Printf("enrich: resolve link for %q: %v", title, err)
				return
			}
			// A malformed resolver result would break the validated contract.
			if !isURI(link) {
				log.Printf("enrich: resolver returned invalid URI for %q: %q", title, link)
				return
			}
			a["affiliateLink"] = link
		}(activity)
	}
	wg.Wait()

	return out
}

func firstDestination(doc Itinerary) string {
	ziele, _ := doc["reiseziele"].([]any)
	if len(ziele) == 0 {
		return ""
	}
	s, _ := ziele[0].(string)
	return s
}

// activitiesWithoutLink collects every activity object missing an
// affiliateLink, in day order.
func activitiesWithoutLink(doc Itinerary) []map[string]any {
	var out []map[string]any
	days, _ := doc["tagesplan"].([]any)
	for _, d := range days {
		day, ok := d.(map[string]any)
		if !ok {
			continue
		}
		activities, _ := day["aktivitaeten"].([]any)
		for _, a := range activities {
			activity, ok := a.(map[string]any)
			if !ok {
				continue
			}
			if _, has := activity["affiliateLink"]; !has {
				out = append(out, activity)
			}
		}
	}
	return out
}
