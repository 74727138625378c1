// README: Plan store backed by PostgreSQL (request + plan as JSONB).
package plan

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// EnsureSchema creates the plans table when it does not exist yet.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `
        CREATE TABLE IF NOT EXISTS plans (
            id         UUID PRIMARY KEY,
            request    JSONB NOT NULL,
            plan       JSONB NOT NULL,
            created_at TIMESTAMPTZ NOT NULL
        )`)
	return err
}

// SavePlan stores the originating request and the enriched plan under a fresh
// identity.
func (s *Store) SavePlan(ctx context.Context, req TravelRequest, plan Itinerary) error {
	reqJSON, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	planJSON, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("marshal plan: %w", err)
	}

	_, err = s.db.Exec(ctx, `
        INSERT INTO plans (id, request, plan, created_at)
        VALUES ($1, $2, $3, $4)`,
		uuid.NewString(),
		reqJSON,
		planJSON,
		time.Now().UTC(),
	)
	return err
}
