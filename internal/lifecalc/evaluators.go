package lifecalc

import (
	"fmt"
	"strconv"
)

// Evaluator scores a single dimension from the fields it owns.
type Evaluator struct {
	Dimension Dimension
	Evaluate  func(FactorRecord) []Adjustment
}

// Group is one step of the registry. Current holds the evaluators for the
// finer-grained fields; Legacy replaces all of them, and only runs, when none
// of the Current fields is supplied. A positive Cap limits how much the group
// may add to the total while its entries keep their own deltas.
type Group struct {
	Name     string
	Current  []Evaluator
	Legacy   *Evaluator
	Supplied func(FactorRecord) bool
	Cap      float64
}

// evaluate runs the selected strategy and returns the entries together with
// the amount to add to the running total.
func (g Group) evaluate(f FactorRecord) ([]Adjustment, float64) {
	evaluators := g.Current
	if g.UsesLegacy(f) {
		evaluators = []Evaluator{*g.Legacy}
	}

	var out []Adjustment
	for _, ev := range evaluators {
		out = append(out, ev.Evaluate(f)...)
	}
	contribution := SumDeltas(out)
	if g.Cap > 0 && contribution > g.Cap {
		contribution = g.Cap
	}
	return out, contribution
}

// UsesLegacy reports whether the legacy evaluator is selected for f.
func (g Group) UsesLegacy(f FactorRecord) bool {
	return g.Legacy != nil && (g.Supplied == nil || !g.Supplied(f))
}

const (
	GroupActivity  = "activity"
	GroupNutrition = "nutrition"

	activityCap = 10
)

// DefaultRegistry returns the evaluator groups in emission order.
func DefaultRegistry() []Group {
	return []Group{
		single(Evaluator{Dimension: DimensionBMI, Evaluate: evaluateBMI}),
		single(Evaluator{Dimension: DimensionSmoking, Evaluate: evaluateSmoking}),
		single(coded(DimensionAlcohol, func(f FactorRecord) string { return f.AlcoholConsumption })),
		{
			Name: GroupActivity,
			Current: []Evaluator{
				coded(DimensionExerciseFrequency, func(f FactorRecord) string { return f.ExerciseFrequency }),
				coded(DimensionExerciseType, func(f FactorRecord) string { return f.ExerciseType }),
				coded(DimensionDailySteps, func(f FactorRecord) string { return f.DailySteps }),
			},
			Legacy:   evaluatorPtr(coded(DimensionFitnessLevel, func(f FactorRecord) string { return f.FitnessLevel })),
			Supplied: activitySupplied,
			Cap:      activityCap,
		},
		{
			Name: GroupNutrition,
			Current: []Evaluator{
				coded(DimensionWaterIntake, func(f FactorRecord) string { return f.WaterIntake }),
				coded(DimensionFruitsVegetables, func(f FactorRecord) string { return f.FruitsVegetables }),
				coded(DimensionProcessedFood, func(f FactorRecord) string { return f.ProcessedFood }),
				coded(DimensionMealRegularity, func(f FactorRecord) string { return f.MealRegularity }),
			},
			Legacy:   evaluatorPtr(coded(DimensionDietQuality, func(f FactorRecord) string { return f.DietQuality })),
			Supplied: nutritionSupplied,
		},
		single(coded(DimensionStress, func(f FactorRecord) string { return f.StressLevel })),
		single(coded(DimensionSleep, func(f FactorRecord) string { return f.SleepQuality })),
		single(coded(DimensionMentalOutlook, func(f FactorRecord) string { return f.MentalOutlook })),
		single(coded(DimensionSocialConnections, func(f FactorRecord) string { return f.SocialConnections })),
		single(coded(DimensionWorkLifeBalance, func(f FactorRecord) string { return f.WorkLifeBalance })),
		single(coded(DimensionLifeSatisfaction, func(f FactorRecord) string { return f.LifeSatisfaction })),
		single(coded(DimensionPurpose, func(f FactorRecord) string { return f.Purpose })),
		single(coded(DimensionMeditation, func(f FactorRecord) string { return f.Meditation })),
		single(coded(DimensionMedicalCheckups, func(f FactorRecord) string { return f.MedicalCheckups })),
		single(coded(DimensionPreventiveCare, func(f FactorRecord) string { return f.PreventiveCare })),
		single(coded(DimensionSupplements, func(f FactorRecord) string { return f.Supplements })),
		single(coded(DimensionDentalCare, func(f FactorRecord) string { return f.DentalCare })),
		single(coded(DimensionResilience, func(f FactorRecord) string { return f.Resilience })),
		single(coded(DimensionGratitude, func(f FactorRecord) string { return f.Gratitude })),
		single(coded(DimensionLearning, func(f FactorRecord) string { return f.Learning })),
		single(coded(DimensionCreativity, func(f FactorRecord) string { return f.Creativity })),
		single(coded(DimensionScreenTime, func(f FactorRecord) string { return f.ScreenTime })),
		single(coded(DimensionNatureTime, func(f FactorRecord) string { return f.NatureTime })),
		single(coded(DimensionMorningRoutine, func(f FactorRecord) string { return f.MorningRoutine })),
		single(coded(DimensionEveningRoutine, func(f FactorRecord) string { return f.EveningRoutine })),
		single(coded(DimensionHobbies, func(f FactorRecord) string { return f.Hobbies })),
		single(coded(DimensionVolunteering, func(f FactorRecord) string { return f.Volunteering })),
		single(coded(DimensionSpiritualPractice, func(f FactorRecord) string { return f.SpiritualPractice })),
	}
}

func single(ev Evaluator) Group {
	return Group{Name: string(ev.Dimension), Current: []Evaluator{ev}}
}

func evaluatorPtr(ev Evaluator) *Evaluator {
	return &ev
}

func activitySupplied(f FactorRecord) bool {
	return f.ExerciseFrequency != "" || f.ExerciseType != "" || f.DailySteps != ""
}

func nutritionSupplied(f FactorRecord) bool {
	return f.WaterIntake != "" || f.FruitsVegetables != "" || f.ProcessedFood != "" || f.MealRegularity != ""
}

// coded builds an evaluator backed by the dimension's code table.
func coded(dim Dimension, field func(FactorRecord) string) Evaluator {
	table := codeTables[dim]
	return Evaluator{
		Dimension: dim,
		Evaluate: func(f FactorRecord) []Adjustment {
			code := field(f)
			if code == "" {
				return nil
			}
			row, ok := table.lookup(code)
			if !ok || row.Silent {
				return nil
			}
			return []Adjustment{{
				Dimension: dim,
				Factor:    row.Label,
				Delta:     row.Delta,
				Type:      polarityOf(row.Delta),
				Impact:    row.Impact,
			}}
		},
	}
}

type bmiBand struct {
	min, max float64
	maxOpen  bool
	delta    float64
	label    string
	impact   Impact
}

// Bands are reproduced as published, including the gaps between 24.9 and 25
// and the other one-decimal edges.
var bmiBands = []bmiBand{
	{min: 0, max: 16, maxOpen: true, delta: -4, label: "Severely Underweight BMI", impact: ImpactHigh},
	{min: 16, max: 18.5, maxOpen: true, delta: -2, label: "Underweight BMI", impact: ImpactMedium},
	{min: 18.5, max: 24.9, delta: 2, label: "Healthy BMI Range", impact: ImpactMedium},
	{min: 25, max: 29.9, delta: -1.5, label: "Overweight BMI", impact: ImpactLow},
	{min: 30, max: 34.9, delta: -3, label: "Class I Obesity", impact: ImpactMedium},
	{min: 35, max: 39.9, delta: -5, label: "Class II Obesity", impact: ImpactHigh},
	{min: 40, max: 0, delta: -8, label: "Morbid Obesity", impact: ImpactSevere},
}

func (b bmiBand) contains(v float64) bool {
	if v < b.min {
		return false
	}
	if b.max == 0 {
		return true
	}
	if b.maxOpen {
		return v < b.max
	}
	return v <= b.max
}

func evaluateBMI(f FactorRecord) []Adjustment {
	if f.BMI <= 0 {
		return nil
	}
	for _, band := range bmiBands {
		if band.contains(f.BMI) {
			return []Adjustment{{
				Dimension: DimensionBMI,
				Factor:    band.label,
				Delta:     band.delta,
				Type:      polarityOf(band.delta),
				Impact:    band.impact,
			}}
		}
	}
	return nil
}

type packYearBand struct {
	below   float64
	penalty float64
}

var packYearBands = []packYearBand{
	{below: 10, penalty: 2},
	{below: 20, penalty: 4},
	{below: 40, penalty: 7},
	{below: 60, penalty: 10},
}

const heavySmokerPenalty = 13

// SmokingPenalty returns the lifespan penalty, in years, for the given pack-years.
func SmokingPenalty(packYears float64) float64 {
	for _, band := range packYearBands {
		if packYears < band.below {
			return band.penalty
		}
	}
	return heavySmokerPenalty
}

func evaluateSmoking(f FactorRecord) []Adjustment {
	if !f.Smoking || f.PacksPerDay <= 0 || f.SmokingYears <= 0 {
		return nil
	}
	packYears := f.PackYears()
	penalty := SmokingPenalty(packYears)

	impact := ImpactMedium
	switch {
	case packYears > 40:
		impact = ImpactSevere
	case packYears > 20:
		impact = ImpactHigh
	}
	return []Adjustment{{
		Dimension: DimensionSmoking,
		Factor:    fmt.Sprintf("Smoking History (%s pack-years)", strconv.FormatFloat(packYears, 'f', -1, 64)),
		Delta:     -penalty,
		Type:      PolarityNegative,
		Impact:    impact,
	}}
}
