// README: Booking-link resolver backed by the Google Places API.
package affiliate

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"
)

// PlacesResolver resolves activity and accommodation names to bookable place
// links via Places text search. It is the optional collaborator behind the
// enrichment stage; when no API key is configured the stage runs without it.
type PlacesResolver struct {
	client *maps.Client
}

// NewPlacesResolver creates a new PlacesResolver with the given API Key.
func NewPlacesResolver(apiKey string) (*PlacesResolver, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &PlacesResolver{client: client}, nil
}

// ResolveLink searches for the named place near the destination and returns a
// stable place link for the best-rated usable result.
func (r *PlacesResolver) ResolveLink(ctx context.Context, name, destination string) (string, error) {
	query := name
	if destination != "" {
		query = fmt.Sprintf("%s near %s", name, destination)
	}

	resp, err := r.client.TextSearch(ctx, &maps.TextSearchRequest{
		Query:    query,
		Language: "de",
	})
	if err != nil {
		return "", fmt.Errorf("places api error: %w", err)
	}

	for _, result := range resp.Results {
		if result.PlaceID == "" {
			continue
		}
		// Skip poorly rated places; an unrated result is still acceptable.
		if result.UserRatingsTotal > 0 && result.Rating < 4.0 {
			continue
		}
		return placeLink(result.PlaceID), nil
	}
	return "", fmt.Errorf("no place found for %q", name)
}

func placeLink(placeID string) string {
	return "https://www.google.com/maps/place/?q=place_id:" + placeID
}
