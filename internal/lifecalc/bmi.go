package lifecalc

// BMIAnalysis is a display-only classification of a BMI value.
type BMIAnalysis struct {
	Category       string `json:"category"`
	HealthNote     string `json:"healthNote"`
	Recommendation string `json:"recommendation"`
}

const bmiCategoryNormal = "Normal Weight"

// ClassifyBMI returns the banner classification for bmi. The second value is
// false when bmi is not positive.
//
// Unlike the scoring bands these categories are contiguous, so a value such as
// 24.95 is classified as overweight even though it earns no adjustment.
func ClassifyBMI(bmi float64) (BMIAnalysis, bool) {
	bmi = sanitizeNumber(bmi)
	if bmi <= 0 {
		return BMIAnalysis{}, false
	}
	switch {
	case bmi < 16:
		return BMIAnalysis{
			Category:       "Severely Underweight",
			HealthNote:     "High risk of malnutrition and health complications",
			Recommendation: "Consult healthcare provider immediately",
		}, true
	case bmi < 18.5:
		return BMIAnalysis{
			Category:       "Underweight",
			HealthNote:     "May indicate malnutrition or underlying health issues",
			Recommendation: "Consider consulting healthcare provider",
		}, true
	case bmi <= 24.9:
		return BMIAnalysis{
			Category:       bmiCategoryNormal,
			HealthNote:     "Optimal weight range for health",
			Recommendation: "Maintain current healthy lifestyle",
		}, true
	case bmi <= 29.9:
		return BMIAnalysis{
			Category:       "Overweight",
			HealthNote:     "Increased risk of heart disease and diabetes",
			Recommendation: "Consider lifestyle changes for weight management",
		}, true
	case bmi <= 34.9:
		return BMIAnalysis{
			Category:       "Class I Obesity",
			HealthNote:     "Moderate health risks",
			Recommendation: "Consult healthcare provider for weight management plan",
		}, true
	case bmi <= 39.9:
		return BMIAnalysis{
			Category:       "Class II Obesity",
			HealthNote:     "High health risks",
			Recommendation: "Medical supervision recommended for weight loss",
		}, true
	default:
		return BMIAnalysis{
			Category:       "Class III Obesity",
			HealthNote:     "Very high health risks",
			Recommendation: "Immediate medical intervention recommended",
		}, true
	}
}

// ComputeBMI derives BMI from height in centimetres and weight in kilograms.
// It returns 0 when either input is not positive.
func ComputeBMI(heightCm, weightKg float64) float64 {
	heightCm = sanitizeNumber(heightCm)
	weightKg = sanitizeNumber(weightKg)
	if heightCm <= 0 || weightKg <= 0 {
		return 0
	}
	heightM := heightCm / 100
	return weightKg / (heightM * heightM)
}
