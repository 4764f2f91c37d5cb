package lifecalc

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func riskProfile() FactorRecord {
	return FactorRecord{
		Country:            "us",
		Gender:             "male",
		CurrentAge:         45,
		BMI:                32,
		Smoking:            true,
		PacksPerDay:        2,
		SmokingYears:       20,
		AlcoholConsumption: "heavy",
		FitnessLevel:       "sedentary",
		DietQuality:        "poor",
		StressLevel:        "high",
		SleepQuality:       "poor",
		MentalOutlook:      "pessimistic",
	}
}

func labels(adjustments []Adjustment) []string {
	out := make([]string, 0, len(adjustments))
	for _, a := range adjustments {
		out = append(out, a.Factor)
	}
	return out
}

func TestCalculateRiskProfile(t *testing.T) {
	result := Calculate(riskProfile())

	assert.Equal(t, 76.4, result.BaseLifespan)
	assert.Equal(t, []string{
		"Class I Obesity",
		"Smoking History (40 pack-years)",
		"Heavy Alcohol Consumption",
		"Sedentary Lifestyle",
		"Poor Diet Quality",
		"High Chronic Stress",
		"Poor Sleep Quality",
		"Pessimistic Outlook",
	}, labels(result.Adjustments))

	// 40 pack-years sits in the [40,60) band.
	assert.Equal(t, -10.0, result.Adjustments[1].Delta)
	assert.Equal(t, -33.0, result.TotalAdjustment)
	assert.Equal(t, 45.0, result.AdjustedLifespan)
	assert.Equal(t, HealthPoor, result.HealthScore)
	assert.Equal(t, "us", result.Country)
	assert.Equal(t, GenderMale, result.Gender)
	assert.Equal(t, 1.0, result.AgeModifier.Multiplier)
	assert.Equal(t, PolarityNeutral, result.AgeModifier.Type)
}

func TestCalculateAdjustedNeverBelowFloor(t *testing.T) {
	f := riskProfile()
	f.CurrentAge = 20
	f.BMI = 45
	f.SocialConnections = "isolated"
	f.ScreenTime = "over-8"

	result := Calculate(f)
	assert.Equal(t, MinimumLifespan, result.AdjustedLifespan)
	assert.Less(t, result.TotalAdjustment, -40.0)
}

func TestCalculateDeterministic(t *testing.T) {
	f := riskProfile()
	f.ExerciseFrequency = "daily"
	f.Gratitude = "daily"

	first := Calculate(f)
	second := Calculate(f)
	assert.Equal(t, first, second)
}

func TestCalculateBMIBoundaries(t *testing.T) {
	cases := []struct {
		name  string
		bmi   float64
		label string
		delta float64
		none  bool
	}{
		{name: "severely_underweight", bmi: 15.9, label: "Severely Underweight BMI", delta: -4},
		{name: "underweight_lower_edge", bmi: 16, label: "Underweight BMI", delta: -2},
		{name: "healthy_lower_edge", bmi: 18.5, label: "Healthy BMI Range", delta: 2},
		{name: "healthy_upper_edge", bmi: 24.9, label: "Healthy BMI Range", delta: 2},
		{name: "gap", bmi: 24.95, none: true},
		{name: "overweight_lower_edge", bmi: 25.0, label: "Overweight BMI", delta: -1.5},
		{name: "class_two", bmi: 39.9, label: "Class II Obesity", delta: -5},
		{name: "morbid", bmi: 40, label: "Morbid Obesity", delta: -8},
		{name: "absent", bmi: 0, none: true},
		{name: "negative", bmi: -3, none: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := evaluateBMI(FactorRecord{BMI: tc.bmi}.Normalize())
			if tc.none {
				assert.Empty(t, got)
				return
			}
			require.Len(t, got, 1)
			assert.Equal(t, tc.label, got[0].Factor)
			assert.Equal(t, tc.delta, got[0].Delta)
		})
	}
}

func TestSmokingPenaltyBands(t *testing.T) {
	assert.Equal(t, 2.0, SmokingPenalty(9.9))
	assert.Equal(t, 4.0, SmokingPenalty(10))
	assert.Equal(t, 7.0, SmokingPenalty(20))
	assert.Equal(t, 10.0, SmokingPenalty(40))
	assert.Equal(t, 13.0, SmokingPenalty(60))

	got := evaluateSmoking(FactorRecord{Smoking: true, PacksPerDay: 1, SmokingYears: 10})
	require.Len(t, got, 1)
	assert.Equal(t, -4.0, got[0].Delta)
	assert.Equal(t, "Smoking History (10 pack-years)", got[0].Factor)
	assert.Equal(t, ImpactMedium, got[0].Impact)

	half := evaluateSmoking(FactorRecord{Smoking: true, PacksPerDay: 0.5, SmokingYears: 45})
	require.Len(t, half, 1)
	assert.Equal(t, "Smoking History (22.5 pack-years)", half[0].Factor)
	assert.Equal(t, ImpactHigh, half[0].Impact)

	assert.Empty(t, evaluateSmoking(FactorRecord{Smoking: true, PacksPerDay: 1}))
	assert.Empty(t, evaluateSmoking(FactorRecord{PacksPerDay: 1, SmokingYears: 10}))
}

func TestCalculateActivityCap(t *testing.T) {
	result := Calculate(FactorRecord{
		CurrentAge:        45,
		ExerciseFrequency: "daily",
		ExerciseType:      "mixed",
		DailySteps:        "over-10000",
	})

	assert.Equal(t, 11.0, SumDeltas(result.Adjustments))
	assert.Equal(t, 10.0, result.TotalAdjustment)
	assert.Equal(t, 86.4, result.AdjustedLifespan)
	assert.Equal(t, HealthExcellent, result.HealthScore)
}

func TestCalculateLegacyExclusivity(t *testing.T) {
	result := Calculate(FactorRecord{
		ExerciseFrequency: "daily",
		FitnessLevel:      "athlete",
		WaterIntake:       "over-8",
		DietQuality:       "excellent",
	})
	assert.Equal(t, []string{"Daily Exercise", "Excellent Hydration (8+ glasses)"}, labels(result.Adjustments))

	legacy := Calculate(FactorRecord{FitnessLevel: "athlete", DietQuality: "excellent"})
	assert.Equal(t, []string{"Elite Athletic Fitness", "Excellent Diet (Mediterranean-style)"}, labels(legacy.Adjustments))
}

func TestCalculateAgeModifier(t *testing.T) {
	young := Calculate(FactorRecord{CurrentAge: 25, StressLevel: "low"})
	assert.Equal(t, 2.4, young.TotalAdjustment)
	assert.Equal(t, "Young Age Advantage", young.AgeModifier.Factor)
	assert.Equal(t, HealthGood, young.HealthScore)

	senior := Calculate(FactorRecord{CurrentAge: 70, StressLevel: "low"})
	assert.Equal(t, 1.4, senior.TotalAdjustment)
	assert.Equal(t, "-30% to lifestyle factors", senior.AgeModifier.Description)
	assert.Equal(t, HealthAverage, senior.HealthScore)

	for _, age := range []float64{0, 30, 65} {
		r := Calculate(FactorRecord{CurrentAge: age, StressLevel: "low"})
		assert.Equal(t, 2.0, r.TotalAdjustment, "age %v", age)
	}
}

func TestCalculateNeutralEntries(t *testing.T) {
	result := Calculate(FactorRecord{
		AlcoholConsumption: "occasional",
		StressLevel:        "moderate",
		MentalOutlook:      "neutral",
		DentalCare:         "fair",
		Supplements:        "none",
		DailySteps:         "3000-5000",
	})

	assert.Equal(t, []string{
		"Occasional Light Drinking",
		"Moderate Stress",
		"Neutral Mental Outlook",
	}, labels(result.Adjustments))
	for _, a := range result.Adjustments {
		assert.Equal(t, PolarityNeutral, a.Type)
		assert.Equal(t, ImpactNone, a.Impact)
	}
	assert.Equal(t, 0.0, result.TotalAdjustment)
	assert.Equal(t, HealthAverage, result.HealthScore)
}

func TestCalculateUnknownCodesAreAbsent(t *testing.T) {
	result := Calculate(FactorRecord{
		StressLevel:  "bogus",
		SleepQuality: "  EXCELLENT ",
		BMI:          -12,
	})
	assert.Equal(t, []string{"Excellent Sleep Quality"}, labels(result.Adjustments))
	assert.Equal(t, 3.0, result.TotalAdjustment)
}

func TestCalculateBreakdownEndsWithModifier(t *testing.T) {
	result := Calculate(FactorRecord{CurrentAge: 22, Hobbies: "multiple"})
	rows := result.Breakdown()

	require.Len(t, rows, 2)
	assert.False(t, rows[0].IsModifier())
	assert.True(t, rows[1].IsModifier())
	assert.Equal(t, "Young Age Advantage", rows[1].Label())
}

func TestRoundOneDecimal(t *testing.T) {
	assert.Equal(t, 2.3, RoundOneDecimal(decimal.RequireFromString("2.25")))
	assert.Equal(t, -2.2, RoundOneDecimal(decimal.RequireFromString("-2.25")))
	assert.Equal(t, 46.4, RoundOneDecimal(decimal.RequireFromString("46.44")))
}

func TestClassify(t *testing.T) {
	assert.Equal(t, HealthExcellent, Classify(5.1))
	assert.Equal(t, HealthGood, Classify(5))
	assert.Equal(t, HealthAverage, Classify(2))
	assert.Equal(t, HealthAverage, Classify(-2))
	assert.Equal(t, HealthBelowAverage, Classify(-2.1))
	assert.Equal(t, HealthBelowAverage, Classify(-5))
	assert.Equal(t, HealthPoor, Classify(-5.1))
}

func recordWith(t *testing.T, field, code string) FactorRecord {
	t.Helper()
	raw, err := json.Marshal(map[string]string{field: code})
	require.NoError(t, err)
	var f FactorRecord
	require.NoError(t, json.Unmarshal(raw, &f))
	return f
}

type codeDelta struct {
	code  string
	delta float64
}

var scoredCodes = map[string][]codeDelta{
	"alcoholConsumption": {{"never", 0.5}, {"occasional", 0}, {"moderate", 1}, {"regular", -2}, {"heavy", -6}},
	"exerciseFrequency":  {{"never", -4}, {"rarely", -2}, {"1-2-times", 1}, {"3-4-times", 3}, {"5-6-times", 5}, {"daily", 6}},
	"exerciseType":       {{"cardio", 1}, {"strength", 1}, {"mixed", 2}, {"sports", 1.5}},
	"dailySteps":         {{"under-3000", -1}, {"5000-8000", 1}, {"8000-10000", 2}, {"over-10000", 3}},
	"fitnessLevel":       {{"sedentary", -4}, {"light", -1}, {"moderate", 3}, {"active", 5}, {"athlete", 7}},
	"waterIntake":        {{"under-4", -1}, {"6-8", 0.5}, {"over-8", 1}},
	"fruitsVegetables":   {{"under-2", -2}, {"2-3", 0.5}, {"4-5", 2}, {"over-5", 3}},
	"processedFood":      {{"daily", -3}, {"few-times-week", -1.5}, {"weekly", -0.5}, {"rarely", 1}, {"never", 2}},
	"mealRegularity":     {{"irregular", -1}, {"regular", 1}, {"very-regular", 1.5}},
	"dietQuality":        {{"poor", -3}, {"average", 0}, {"good", 2}, {"excellent", 4}},
	"stressLevel":        {{"low", 2}, {"moderate", 0}, {"high", -2}, {"extreme", -4}},
	"sleepQuality":       {{"poor", -3}, {"fair", -1}, {"good", 1}, {"excellent", 3}},
	"mentalOutlook":      {{"pessimistic", -2}, {"neutral", 0}, {"optimistic", 2}, {"very-positive", 3}},
	"socialConnections":  {{"isolated", -4}, {"few-friends", -1}, {"moderate-social", 1}, {"very-social", 3}},
	"workLifeBalance":    {{"poor", -2}, {"fair", -0.5}, {"good", 1}, {"excellent", 2}},
	"lifeSatisfaction":   {{"very-low", -3}, {"low", -1.5}, {"high", 2}, {"very-high", 3}},
	"purpose":            {{"none", -2}, {"little", -0.5}, {"some", 0.5}, {"strong", 2}, {"very-strong", 3}},
	"meditation":         {{"rarely", 0.5}, {"weekly", 1.5}, {"daily", 2.5}},
	"medicalCheckups":    {{"never", -2}, {"few-years", -0.5}, {"annually", 1}, {"bi-annually", 2}},
	"preventiveCare":     {{"none", -1.5}, {"basic", 0.5}, {"comprehensive", 2}, {"very-comprehensive", 3}},
	"supplements":        {{"basic-vitamins", 0.5}, {"targeted", 1}, {"comprehensive", 1.5}},
	"dentalCare":         {{"poor", -1}, {"good", 0.5}, {"excellent", 1}},
	"resilience":         {{"very-low", -3}, {"low", -1.5}, {"high", 2}, {"very-high", 3}},
	"gratitude":          {{"rarely", 0.5}, {"sometimes", 1}, {"daily", 2}, {"multiple-daily", 2.5}},
	"learning":           {{"none", -1}, {"occasional", 0.5}, {"regular", 1.5}, {"daily", 2.5}, {"passionate", 3}},
	"creativity":         {{"none", -0.5}, {"occasional", 0.5}, {"regular", 1.5}, {"daily", 2}, {"professional", 2.5}},
	"screenTime":         {{"under-2", 1}, {"4-6", -0.5}, {"6-8", -1.5}, {"over-8", -3}},
	"natureTime":         {{"never", -1}, {"monthly", 0.5}, {"weekly", 1}, {"few-times-week", 1.5}, {"daily", 2}},
	"morningRoutine":     {{"chaotic", -1}, {"inconsistent", -0.5}, {"basic", 0.5}, {"structured", 1}, {"optimized", 1.5}},
	"eveningRoutine":     {{"poor", -1}, {"good", 1}, {"excellent", 1.5}},
	"hobbies":            {{"none", -1}, {"passive", -0.5}, {"some-active", 1}, {"multiple", 2}, {"passionate", 2.5}},
	"volunteering":       {{"occasionally", 0.5}, {"few-times-year", 1}, {"monthly", 1.5}, {"weekly", 2.5}},
	"spiritualPractice":  {{"occasional", 0.5}, {"regular", 1.5}, {"daily", 2}, {"deeply-committed", 2.5}},
}

// Zero-delta codes that are accepted but produce no breakdown row.
var silentCodes = map[string][]string{
	"dailySteps":        {"3000-5000"},
	"waterIntake":       {"4-6"},
	"mealRegularity":    {"somewhat-regular"},
	"lifeSatisfaction":  {"moderate"},
	"meditation":        {"never"},
	"supplements":       {"none"},
	"dentalCare":        {"fair"},
	"resilience":        {"moderate"},
	"gratitude":         {"never"},
	"screenTime":        {"2-4"},
	"eveningRoutine":    {"minimal"},
	"volunteering":      {"never"},
	"spiritualPractice": {"none"},
}

func acceptedCode(f FactorRecord, dim Dimension) string {
	n := f.Normalize()
	for _, field := range n.codedFields() {
		if field.dimension == dim {
			return *field.value
		}
	}
	return ""
}

func TestEveryScoredCodeEmitsItsDelta(t *testing.T) {
	for field, rows := range scoredCodes {
		for _, row := range rows {
			result := Calculate(recordWith(t, field, row.code))

			require.Len(t, result.Adjustments, 1, "%s=%s", field, row.code)
			adj := result.Adjustments[0]
			assert.Equal(t, Dimension(field), adj.Dimension, "%s=%s", field, row.code)
			assert.Equal(t, row.delta, adj.Delta, "%s=%s", field, row.code)
			assert.Equal(t, row.delta, result.TotalAdjustment, "%s=%s", field, row.code)
			assert.NotEmpty(t, adj.Factor, "%s=%s", field, row.code)

			switch {
			case row.delta > 0:
				assert.Equal(t, PolarityPositive, adj.Type, "%s=%s", field, row.code)
			case row.delta < 0:
				assert.Equal(t, PolarityNegative, adj.Type, "%s=%s", field, row.code)
			default:
				assert.Equal(t, PolarityNeutral, adj.Type, "%s=%s", field, row.code)
				assert.Equal(t, ImpactNone, adj.Impact, "%s=%s", field, row.code)
			}
		}
	}
}

func TestSilentCodesEmitNothing(t *testing.T) {
	for field, codes := range silentCodes {
		for _, code := range codes {
			f := recordWith(t, field, code)
			assert.Equal(t, code, acceptedCode(f, Dimension(field)), "%s=%s should be accepted", field, code)

			result := Calculate(f)
			assert.Empty(t, result.Adjustments, "%s=%s", field, code)
			assert.Equal(t, 0.0, result.TotalAdjustment, "%s=%s", field, code)
		}
	}
}

func TestCodeTablesMatchScoredAndSilentCodes(t *testing.T) {
	for dim, table := range codeTables {
		want := len(scoredCodes[string(dim)]) + len(silentCodes[string(dim)])
		assert.Len(t, table, want, "%s", dim)
	}
	assert.Len(t, scoredCodes, len(codeTables))
}
