package health

import (
	"context"
	"database/sql"
	"time"

	"lifespan-backend/internal/shared/storage/db"
)

const pingTimeout = 2 * time.Second

// DB states reported by Status.
const (
	DBUp       = "up"
	DBDown     = "down"
	DBDisabled = "memory"
)

// Status is the health payload.
type Status struct {
	OK bool   `json:"ok"`
	DB string `json:"db"`
}

// Service encapsulates health-related checks.
type Service struct {
	DB *sql.DB
}

// NewService constructs a new health service. A nil database means the
// in-memory repositories are in use.
func NewService(database *sql.DB) *Service {
	return &Service{DB: database}
}

// Status reports liveness and database reachability.
func (s *Service) Status(ctx context.Context) Status {
	if s == nil || s.DB == nil {
		return Status{OK: true, DB: DBDisabled}
	}
	if err := db.Ping(ctx, s.DB, pingTimeout); err != nil {
		return Status{OK: false, DB: DBDown}
	}
	return Status{OK: true, DB: DBUp}
}
