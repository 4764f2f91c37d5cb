package calculations

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"lifespan-backend/internal/lifecalc"
	"lifespan-backend/internal/shared/metrics"
	"lifespan-backend/internal/shared/telemetry"
)

// Service scores factor records and manages the calculation history.
type Service struct {
	Repo   Repo
	Engine lifecalc.Calculator
	Now    func() time.Time
}

// NewService builds a Service. A nil engine uses the built-in tables.
func NewService(repo Repo, engine lifecalc.Calculator) *Service {
	if engine == nil {
		engine = lifecalc.NewEngine()
	}
	return &Service{Repo: repo, Engine: engine, Now: time.Now}
}

// Calculate scores f without storing it.
func (s *Service) Calculate(ctx context.Context, f lifecalc.FactorRecord) (lifecalc.CalculationResult, error) {
	if err := ctx.Err(); err != nil {
		return lifecalc.CalculationResult{}, err
	}
	start := time.Now()
	result := s.Engine.Calculate(f)
	metrics.ObserveCalculation(string(result.HealthScore), result.AdjustedLifespan, time.Since(start))
	return result, nil
}

// Save scores f and stores the run for userID.
func (s *Service) Save(ctx context.Context, userID string, f lifecalc.FactorRecord) (Calculation, error) {
	if userID == "" {
		return Calculation{}, fmt.Errorf("%w: user id required", ErrInvalidInput)
	}
	result, err := s.Calculate(ctx, f)
	if err != nil {
		return Calculation{}, err
	}

	calc := Calculation{
		ID:        uuid.NewString(),
		UserID:    userID,
		Factors:   f.Normalize(),
		Result:    result,
		CreatedAt: s.now(),
	}
	if err := s.Repo.Create(ctx, calc); err != nil {
		telemetry.Error("calculation.save_failed", map[string]any{
			"user_id": userID,
			"err":     err,
		})
		return Calculation{}, fmt.Errorf("store calculation: %w", err)
	}

	telemetry.Info("calculation.saved", map[string]any{
		"calculation_id":    calc.ID,
		"user_id":           userID,
		"adjusted_lifespan": result.AdjustedLifespan,
		"health_score":      result.HealthScore,
	})
	return calc, nil
}

// Get returns one of the user's calculations.
func (s *Service) Get(ctx context.Context, userID, id string) (Calculation, error) {
	if _, err := uuid.Parse(id); err != nil {
		return Calculation{}, ErrNotFound
	}
	return s.Repo.GetByID(ctx, userID, id)
}

// List returns the user's calculations newest first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Calculation, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id required", ErrInvalidInput)
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

// Delete soft-deletes one of the user's calculations.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}
	if err := s.Repo.SoftDelete(ctx, userID, id); err != nil {
		return err
	}
	telemetry.Info("calculation.deleted", map[string]any{
		"calculation_id": id,
		"user_id":        userID,
	})
	return nil
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now().UTC()
}
