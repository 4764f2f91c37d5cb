package calculations

import (
	"time"

	"lifespan-backend/internal/lifecalc"
)

// Calculation is a stored scoring run owned by a user.
type Calculation struct {
	ID        string
	UserID    string
	Factors   lifecalc.FactorRecord
	Result    lifecalc.CalculationResult
	CreatedAt time.Time
}
