package lifecalc

import "sort"

// Priority ranks a recommendation.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// Recommendation is one actionable suggestion.
type Recommendation struct {
	Category   string   `json:"category"`
	Suggestion string   `json:"suggestion"`
	Priority   Priority `json:"priority"`
}

type rule func(FactorRecord) (Recommendation, bool)

// recommendationRules are evaluated in order; each contributes at most one item.
var recommendationRules = []rule{
	weightRule,
	activityRule,
	stepsRule,
	smokingRule,
	codeRule(func(f FactorRecord) string { return f.FruitsVegetables }, map[string]Priority{"under-2": PriorityHigh},
		"Nutrition", "Increase fruits and vegetables to 5+ servings daily - start by adding one extra serving per meal"),
	codeRule(func(f FactorRecord) string { return f.ProcessedFood }, map[string]Priority{"daily": PriorityHigh, "few-times-week": PriorityHigh},
		"Nutrition", "Reduce processed foods - cook more meals at home using whole, unprocessed ingredients"),
	codeRule(func(f FactorRecord) string { return f.WaterIntake }, map[string]Priority{"under-4": PriorityMedium},
		"Hydration", "Increase water intake to 6-8 glasses daily - keep a water bottle nearby as a reminder"),
	codeRule(func(f FactorRecord) string { return f.MealRegularity }, map[string]Priority{"irregular": PriorityMedium},
		"Nutrition", "Establish regular meal times - eating at consistent times improves metabolism and energy"),
	codeRule(func(f FactorRecord) string { return f.SocialConnections }, map[string]Priority{"isolated": PriorityHigh},
		"Social Wellbeing", "Build social connections through community groups, volunteering, or shared interest activities"),
	codeRule(func(f FactorRecord) string { return f.WorkLifeBalance }, map[string]Priority{"poor": PriorityHigh},
		"Work-Life Balance", "Set boundaries between work and personal time - consider discussing workload with supervisor"),
	codeRule(func(f FactorRecord) string { return f.LifeSatisfaction }, map[string]Priority{"very-low": PriorityHigh, "low": PriorityHigh},
		"Mental Health", "Consider speaking with a counselor or therapist to address life satisfaction concerns"),
	codeRule(func(f FactorRecord) string { return f.Purpose }, map[string]Priority{"none": PriorityMedium, "little": PriorityMedium},
		"Purpose & Meaning", "Explore volunteer work, creative pursuits, or mentoring to find deeper meaning and purpose"),
	codeRule(func(f FactorRecord) string { return f.Meditation }, map[string]Priority{"never": PriorityMedium},
		"Stress Management", "Try 5-10 minutes of daily meditation or mindfulness - use apps like Headspace or Calm to start"),
	codeRule(func(f FactorRecord) string { return f.MedicalCheckups }, map[string]Priority{"never": PriorityHigh, "few-years": PriorityHigh},
		"Preventive Care", "Schedule annual medical checkups - early detection is key to preventing serious health issues"),
	codeRule(func(f FactorRecord) string { return f.PreventiveCare }, map[string]Priority{"none": PriorityHigh},
		"Preventive Care", "Discuss age-appropriate screenings with your doctor (blood pressure, cholesterol, cancer screenings)"),
	codeRule(func(f FactorRecord) string { return f.DentalCare }, map[string]Priority{"poor": PriorityMedium},
		"Dental Health", "Schedule dental cleanings every 6 months and maintain daily brushing and flossing routine"),
	legacyDietRule,
	codeRule(func(f FactorRecord) string { return f.StressLevel }, map[string]Priority{"high": PriorityMedium, "extreme": PriorityMedium},
		"Stress Management", "Consider stress reduction techniques: meditation, therapy, exercise, or time management strategies"),
	codeRule(func(f FactorRecord) string { return f.SleepQuality }, map[string]Priority{"poor": PriorityMedium},
		"Sleep Hygiene", "Establish consistent sleep schedule, aim for 7-9 hours nightly, limit screens before bed"),
	codeRule(func(f FactorRecord) string { return f.AlcoholConsumption }, map[string]Priority{"heavy": PriorityHigh, "regular": PriorityMedium},
		"Alcohol Consumption", "Consider reducing alcohol intake - speak with healthcare provider about safe consumption levels"),
}

var maintenanceRecommendation = Recommendation{
	Category:   "Lifestyle Maintenance",
	Suggestion: "Great job maintaining healthy lifestyle habits! Continue your current routine for optimal longevity",
	Priority:   PriorityLow,
}

// GenerateRecommendations derives the prioritized suggestions for f. It reads
// the factor fields directly and does not depend on the adjustment list.
func GenerateRecommendations(f FactorRecord) []Recommendation {
	f = f.Normalize()
	out := make([]Recommendation, 0, 8)
	for _, r := range recommendationRules {
		if rec, ok := r(f); ok {
			out = append(out, rec)
		}
	}
	if len(out) == 0 {
		return []Recommendation{maintenanceRecommendation}
	}
	sortRecommendations(out)
	return out
}

func priorityRank(p Priority) int {
	switch p {
	case PriorityCritical:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	default:
		return 3
	}
}

func sortRecommendations(items []Recommendation) {
	sort.SliceStable(items, func(i, j int) bool {
		return priorityRank(items[i].Priority) < priorityRank(items[j].Priority)
	})
}

func codeRule(field func(FactorRecord) string, priorities map[string]Priority, category, suggestion string) rule {
	return func(f FactorRecord) (Recommendation, bool) {
		priority, ok := priorities[field(f)]
		if !ok {
			return Recommendation{}, false
		}
		return Recommendation{Category: category, Suggestion: suggestion, Priority: priority}, true
	}
}

func weightRule(f FactorRecord) (Recommendation, bool) {
	analysis, ok := ClassifyBMI(f.BMI)
	if !ok || analysis.Category == bmiCategoryNormal {
		return Recommendation{}, false
	}
	priority := PriorityHigh
	if f.BMI > 30 {
		priority = PriorityCritical
	}
	return Recommendation{
		Category:   "Weight Management",
		Suggestion: analysis.Recommendation,
		Priority:   priority,
	}, true
}

func activityRule(f FactorRecord) (Recommendation, bool) {
	const category = "Physical Activity"
	switch {
	case f.ExerciseFrequency == "never" || f.FitnessLevel == "sedentary":
		return Recommendation{
			Category:   category,
			Suggestion: "Start with 10-15 minutes of daily walking, gradually increase to 150 minutes per week",
			Priority:   PriorityCritical,
		}, true
	case f.ExerciseFrequency == "rarely" || f.FitnessLevel == "light":
		return Recommendation{
			Category:   category,
			Suggestion: "Increase to 3-4 exercise sessions per week, aim for 150 minutes of moderate activity",
			Priority:   PriorityHigh,
		}, true
	case f.ExerciseType == "" || f.ExerciseType == "cardio":
		return Recommendation{
			Category:   category,
			Suggestion: "Add strength training 2-3 times per week to complement your cardio routine",
			Priority:   PriorityMedium,
		}, true
	}
	return Recommendation{}, false
}

func stepsRule(f FactorRecord) (Recommendation, bool) {
	const category = "Daily Movement"
	switch f.DailySteps {
	case "under-3000":
		return Recommendation{
			Category:   category,
			Suggestion: "Aim for at least 5,000 daily steps - take stairs, park farther, walk during breaks",
			Priority:   PriorityHigh,
		}, true
	case "3000-5000":
		return Recommendation{
			Category:   category,
			Suggestion: "Great start! Try to reach 8,000-10,000 steps daily for optimal health benefits",
			Priority:   PriorityMedium,
		}, true
	}
	return Recommendation{}, false
}

func smokingRule(f FactorRecord) (Recommendation, bool) {
	if !f.Smoking {
		return Recommendation{}, false
	}
	return Recommendation{
		Category:   "Smoking Cessation",
		Suggestion: "Consider smoking cessation programs - quitting at any age provides immediate health benefits",
		Priority:   PriorityCritical,
	}, true
}

func legacyDietRule(f FactorRecord) (Recommendation, bool) {
	if f.DietQuality != "poor" || f.FruitsVegetables != "" {
		return Recommendation{}, false
	}
	return Recommendation{
		Category:   "Nutrition",
		Suggestion: "Focus on whole foods, vegetables, and reducing processed food intake",
		Priority:   PriorityHigh,
	}, true
}
