package calculations

import "context"

// Repo defines persistence operations for calculations. Every read and write
// is scoped to the owning user.
type Repo interface {
	Create(ctx context.Context, calc Calculation) error
	GetByID(ctx context.Context, userID, id string) (Calculation, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Calculation, error)
	SoftDelete(ctx context.Context, userID, id string) error
}

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
