package lifecalc

// Polarity tags the direction of an adjustment.
type Polarity string

const (
	PolarityPositive Polarity = "positive"
	PolarityNegative Polarity = "negative"
	PolarityNeutral  Polarity = "neutral"
)

// Impact is the display tier of an adjustment.
type Impact string

const (
	ImpactNone     Impact = "none"
	ImpactLow      Impact = "low"
	ImpactMedium   Impact = "medium"
	ImpactHigh     Impact = "high"
	ImpactSevere   Impact = "severe"
	ImpactModifier Impact = "modifier"
)

// Adjustment is one named, signed contribution to the lifespan delta.
type Adjustment struct {
	Dimension Dimension `json:"dimension"`
	Factor    string    `json:"factor"`
	Delta     float64   `json:"adjustment"`
	Type      Polarity  `json:"type"`
	Impact    Impact    `json:"impact"`
}

// AgeModifier describes the multiplier applied to the accumulated total.
// It is never part of the numeric adjustment list.
type AgeModifier struct {
	Factor      string   `json:"factor"`
	Multiplier  float64  `json:"multiplier"`
	Description string   `json:"adjustment"`
	Type        Polarity `json:"type"`
	Impact      Impact   `json:"impact"`
}

// BreakdownEntry is one display row: either a numeric adjustment or the age modifier.
type BreakdownEntry struct {
	Adjustment *Adjustment  `json:"adjustment,omitempty"`
	Modifier   *AgeModifier `json:"modifier,omitempty"`
}

// IsModifier reports whether the row carries the age modifier.
func (e BreakdownEntry) IsModifier() bool {
	return e.Modifier != nil
}

// Label returns the row's display label.
func (e BreakdownEntry) Label() string {
	if e.Modifier != nil {
		return e.Modifier.Factor
	}
	if e.Adjustment != nil {
		return e.Adjustment.Factor
	}
	return ""
}

func polarityOf(delta float64) Polarity {
	switch {
	case delta > 0:
		return PolarityPositive
	case delta < 0:
		return PolarityNegative
	default:
		return PolarityNeutral
	}
}

// SumDeltas adds the numeric deltas of the given adjustments.
func SumDeltas(adjustments []Adjustment) float64 {
	var total float64
	for _, a := range adjustments {
		total += a.Delta
	}
	return total
}
