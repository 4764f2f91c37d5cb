package lifecalc

import (
	"github.com/shopspring/decimal"
)

// HealthScore is the coarse band derived from the total adjustment.
type HealthScore string

const (
	HealthExcellent    HealthScore = "excellent"
	HealthGood         HealthScore = "good"
	HealthAverage      HealthScore = "average"
	HealthBelowAverage HealthScore = "below-average"
	HealthPoor         HealthScore = "poor"
)

// MinimumLifespan is the floor applied to the adjusted lifespan.
const MinimumLifespan = 45.0

// CalculationResult is the engine output for one FactorRecord.
type CalculationResult struct {
	BaseLifespan     float64          `json:"baseLifespan"`
	AdjustedLifespan float64          `json:"adjustedLifespan"`
	TotalAdjustment  float64          `json:"totalAdjustment"`
	Adjustments      []Adjustment     `json:"adjustments"`
	AgeModifier      AgeModifier      `json:"ageModifier"`
	HealthScore      HealthScore      `json:"healthScore"`
	Country          string           `json:"country"`
	Gender           string           `json:"gender"`
	Recommendations  []Recommendation `json:"recommendations"`
}

// Breakdown returns the display rows in emission order, with the age
// modifier as the final row.
func (r CalculationResult) Breakdown() []BreakdownEntry {
	out := make([]BreakdownEntry, 0, len(r.Adjustments)+1)
	for i := range r.Adjustments {
		out = append(out, BreakdownEntry{Adjustment: &r.Adjustments[i]})
	}
	modifier := r.AgeModifier
	out = append(out, BreakdownEntry{Modifier: &modifier})
	return out
}

// Calculator computes a CalculationResult from a FactorRecord.
type Calculator interface {
	Calculate(f FactorRecord) CalculationResult
}

// Engine is the stateless scoring engine. It is safe for concurrent use.
type Engine struct {
	baseline BaselineTable
	registry []Group
}

// Option configures an Engine.
type Option func(*Engine)

// WithBaselineTable replaces the built-in baseline table.
func WithBaselineTable(t BaselineTable) Option {
	return func(e *Engine) {
		e.baseline = t
	}
}

// WithRegistry replaces the evaluator registry.
func WithRegistry(groups []Group) Option {
	return func(e *Engine) {
		e.registry = groups
	}
}

// NewEngine builds an Engine with the built-in tables unless overridden.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		baseline: DefaultBaselineTable(),
		registry: DefaultRegistry(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Baseline exposes the table the engine resolves base lifespans from.
func (e *Engine) Baseline() BaselineTable {
	return e.baseline
}

var defaultEngine = NewEngine()

// Calculate scores f with the built-in tables.
func Calculate(f FactorRecord) CalculationResult {
	return defaultEngine.Calculate(f)
}

// Calculate runs the baseline lookup, every evaluator group in registry
// order and the age modifier, then aggregates the result.
func (e *Engine) Calculate(f FactorRecord) CalculationResult {
	f = f.Normalize()
	base, country, gender := e.baseline.Lookup(f.Country, f.Gender)

	adjustments := make([]Adjustment, 0, len(e.registry))
	var total float64
	for _, group := range e.registry {
		entries, contribution := group.evaluate(f)
		adjustments = append(adjustments, entries...)
		total += contribution
	}

	modifier := AgeModifierFor(f.CurrentAge)
	scaled := decimal.NewFromFloat(total).Mul(decimal.NewFromFloat(modifier.Multiplier))
	adjusted, rounded := aggregate(base, scaled)

	return CalculationResult{
		BaseLifespan:     base,
		AdjustedLifespan: adjusted,
		TotalAdjustment:  rounded,
		Adjustments:      adjustments,
		AgeModifier:      modifier,
		HealthScore:      Classify(scaled.InexactFloat64()),
		Country:          country,
		Gender:           gender,
		Recommendations:  GenerateRecommendations(f),
	}
}

// aggregate floors base+total at MinimumLifespan and rounds both the lifespan
// and the total to one decimal. The floor compares unrounded values.
func aggregate(base float64, total decimal.Decimal) (float64, float64) {
	adjusted := decimal.NewFromFloat(base).Add(total)
	floor := decimal.NewFromFloat(MinimumLifespan)
	if adjusted.LessThan(floor) {
		adjusted = floor
	}
	return RoundOneDecimal(adjusted), RoundOneDecimal(total)
}

// RoundOneDecimal rounds half up to one decimal place, so -2.25 becomes -2.2
// and 2.25 becomes 2.3.
func RoundOneDecimal(d decimal.Decimal) float64 {
	return d.Shift(1).Add(decimal.NewFromFloat(0.5)).Floor().Shift(-1).InexactFloat64()
}

// Classify maps an unrounded total adjustment to its health band.
func Classify(total float64) HealthScore {
	switch {
	case total > 5:
		return HealthExcellent
	case total > 2:
		return HealthGood
	case total < -5:
		return HealthPoor
	case total < -2:
		return HealthBelowAverage
	default:
		return HealthAverage
	}
}
