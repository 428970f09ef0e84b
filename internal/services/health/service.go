package health

import (
	"context"
	"database/sql"
	"time"
)

// Service encapsulates health-related checks.
type Service struct {
	QuestionCount int
	CatalogHash   string
	DB            *sql.DB
}

// NewService constructs a new health service.
func NewService(questionCount int, catalogHash string, db *sql.DB) *Service {
	return &Service{QuestionCount: questionCount, CatalogHash: catalogHash, DB: db}
}

// Status reports catalog and storage health.
func (s *Service) Status(ctx context.Context) map[string]any {
	out := map[string]any{
		"ok":        true,
		"questions": s.QuestionCount,
		"catalog":   s.CatalogHash,
		"storage":   "memory",
	}
	if s.DB != nil {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := s.DB.PingContext(pingCtx); err != nil {
			out["ok"] = false
			out["storage"] = "postgres:unreachable"
		} else {
			out["storage"] = "postgres"
		}
	}
	return out
}
