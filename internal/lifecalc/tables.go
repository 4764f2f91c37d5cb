package lifecalc

// Dimension identifies one lifestyle dimension scored by the engine.
type Dimension string

const (
	DimensionBMI               Dimension = "bmi"
	DimensionSmoking           Dimension = "smoking"
	DimensionAlcohol           Dimension = "alcoholConsumption"
	DimensionExerciseFrequency Dimension = "exerciseFrequency"
	DimensionExerciseType      Dimension = "exerciseType"
	DimensionDailySteps        Dimension = "dailySteps"
	DimensionFitnessLevel      Dimension = "fitnessLevel"
	DimensionWaterIntake       Dimension = "waterIntake"
	DimensionFruitsVegetables  Dimension = "fruitsVegetables"
	DimensionProcessedFood     Dimension = "processedFood"
	DimensionMealRegularity    Dimension = "mealRegularity"
	DimensionDietQuality       Dimension = "dietQuality"
	DimensionStress            Dimension = "stressLevel"
	DimensionSleep             Dimension = "sleepQuality"
	DimensionMentalOutlook     Dimension = "mentalOutlook"
	DimensionSocialConnections Dimension = "socialConnections"
	DimensionWorkLifeBalance   Dimension = "workLifeBalance"
	DimensionLifeSatisfaction  Dimension = "lifeSatisfaction"
	DimensionPurpose           Dimension = "purpose"
	DimensionMeditation        Dimension = "meditation"
	DimensionMedicalCheckups   Dimension = "medicalCheckups"
	DimensionPreventiveCare    Dimension = "preventiveCare"
	DimensionSupplements       Dimension = "supplements"
	DimensionDentalCare        Dimension = "dentalCare"
	DimensionResilience        Dimension = "resilience"
	DimensionGratitude         Dimension = "gratitude"
	DimensionLearning          Dimension = "learning"
	DimensionCreativity        Dimension = "creativity"
	DimensionScreenTime        Dimension = "screenTime"
	DimensionNatureTime        Dimension = "natureTime"
	DimensionMorningRoutine    Dimension = "morningRoutine"
	DimensionEveningRoutine    Dimension = "eveningRoutine"
	DimensionHobbies           Dimension = "hobbies"
	DimensionVolunteering      Dimension = "volunteering"
	DimensionSpiritualPractice Dimension = "spiritualPractice"
	DimensionAge               Dimension = "currentAge"
)

// tier is one accepted code of a dimension. Silent tiers are valid input but
// emit no adjustment.
type tier struct {
	Code   string
	Delta  float64
	Label  string
	Impact Impact
	Silent bool
}

type codeTable []tier

func (t codeTable) lookup(code string) (tier, bool) {
	for _, row := range t {
		if row.Code == code {
			return row, true
		}
	}
	return tier{}, false
}

func quiet(code string) tier {
	return tier{Code: code, Impact: ImpactNone, Silent: true}
}

var codeTables = map[Dimension]codeTable{
	DimensionAlcohol: {
		{"never", 0.5, "No Alcohol Consumption", ImpactLow, false},
		{"occasional", 0, "Occasional Light Drinking", ImpactNone, false},
		{"moderate", 1, "Moderate Alcohol (Heart Benefits)", ImpactLow, false},
		{"regular", -2, "Regular Daily Drinking", ImpactMedium, false},
		{"heavy", -6, "Heavy Alcohol Consumption", ImpactHigh, false},
	},
	DimensionExerciseFrequency: {
		{"never", -4, "No Exercise", ImpactHigh, false},
		{"rarely", -2, "Rarely Exercise", ImpactMedium, false},
		{"1-2-times", 1, "Light Exercise (1-2x/week)", ImpactLow, false},
		{"3-4-times", 3, "Regular Exercise (3-4x/week)", ImpactMedium, false},
		{"5-6-times", 5, "Very Active (5-6x/week)", ImpactHigh, false},
		{"daily", 6, "Daily Exercise", ImpactHigh, false},
	},
	DimensionExerciseType: {
		{"cardio", 1, "Cardio Focus", ImpactLow, false},
		{"strength", 1, "Strength Training", ImpactLow, false},
		{"mixed", 2, "Mixed Exercise Types", ImpactMedium, false},
		{"sports", 1.5, "Sports Activities", ImpactMedium, false},
	},
	DimensionDailySteps: {
		{"under-3000", -1, "Low Daily Steps (<3K)", ImpactLow, false},
		quiet("3000-5000"),
		{"5000-8000", 1, "Good Daily Steps (5-8K)", ImpactLow, false},
		{"8000-10000", 2, "High Daily Steps (8-10K)", ImpactMedium, false},
		{"over-10000", 3, "Very High Daily Steps (10K+)", ImpactMedium, false},
	},
	DimensionFitnessLevel: {
		{"sedentary", -4, "Sedentary Lifestyle", ImpactHigh, false},
		{"light", -1, "Light Exercise", ImpactLow, false},
		{"moderate", 3, "Regular Moderate Exercise", ImpactMedium, false},
		{"active", 5, "Very Active Lifestyle", ImpactHigh, false},
		{"athlete", 7, "Elite Athletic Fitness", ImpactHigh, false},
	},
	DimensionWaterIntake: {
		{"under-4", -1, "Low Water Intake (<4 glasses)", ImpactLow, false},
		quiet("4-6"),
		{"6-8", 0.5, "Good Hydration (6-8 glasses)", ImpactLow, false},
		{"over-8", 1, "Excellent Hydration (8+ glasses)", ImpactLow, false},
	},
	DimensionFruitsVegetables: {
		{"under-2", -2, "Low Fruit/Vegetable Intake", ImpactMedium, false},
		{"2-3", 0.5, "Moderate Fruit/Vegetable Intake", ImpactLow, false},
		{"4-5", 2, "Good Fruit/Vegetable Intake (4-5)", ImpactMedium, false},
		{"over-5", 3, "Excellent Fruit/Vegetable Intake (5+)", ImpactHigh, false},
	},
	DimensionProcessedFood: {
		{"daily", -3, "Daily Processed Food", ImpactHigh, false},
		{"few-times-week", -1.5, "Regular Processed Food", ImpactMedium, false},
		{"weekly", -0.5, "Weekly Processed Food", ImpactLow, false},
		{"rarely", 1, "Minimal Processed Food", ImpactLow, false},
		{"never", 2, "No Processed Food", ImpactMedium, false},
	},
	DimensionMealRegularity: {
		{"irregular", -1, "Irregular Eating Pattern", ImpactLow, false},
		quiet("somewhat-regular"),
		{"regular", 1, "Regular Meal Schedule", ImpactLow, false},
		{"very-regular", 1.5, "Very Regular Meal Schedule", ImpactMedium, false},
	},
	DimensionDietQuality: {
		{"poor", -3, "Poor Diet Quality", ImpactMedium, false},
		{"average", 0, "Average Diet", ImpactNone, false},
		{"good", 2, "Balanced Healthy Diet", ImpactMedium, false},
		{"excellent", 4, "Excellent Diet (Mediterranean-style)", ImpactHigh, false},
	},
	DimensionStress: {
		{"low", 2, "Low Stress Levels", ImpactMedium, false},
		{"moderate", 0, "Moderate Stress", ImpactNone, false},
		{"high", -2, "High Chronic Stress", ImpactMedium, false},
		{"extreme", -4, "Extreme Chronic Stress", ImpactHigh, false},
	},
	DimensionSleep: {
		{"poor", -3, "Poor Sleep Quality", ImpactMedium, false},
		{"fair", -1, "Fair Sleep Quality", ImpactLow, false},
		{"good", 1, "Good Sleep Quality", ImpactLow, false},
		{"excellent", 3, "Excellent Sleep Quality", ImpactMedium, false},
	},
	DimensionMentalOutlook: {
		{"pessimistic", -2, "Pessimistic Outlook", ImpactMedium, false},
		{"neutral", 0, "Neutral Mental Outlook", ImpactNone, false},
		{"optimistic", 2, "Optimistic Outlook", ImpactMedium, false},
		{"very-positive", 3, "Very Positive Outlook", ImpactMedium, false},
	},
	DimensionSocialConnections: {
		{"isolated", -4, "Social Isolation", ImpactHigh, false},
		{"few-friends", -1, "Limited Social Circle", ImpactLow, false},
		{"moderate-social", 1, "Moderate Social Connections", ImpactLow, false},
		{"very-social", 3, "Strong Social Network", ImpactMedium, false},
	},
	DimensionWorkLifeBalance: {
		{"poor", -2, "Poor Work-Life Balance", ImpactMedium, false},
		{"fair", -0.5, "Fair Work-Life Balance", ImpactLow, false},
		{"good", 1, "Good Work-Life Balance", ImpactLow, false},
		{"excellent", 2, "Excellent Work-Life Balance", ImpactMedium, false},
	},
	DimensionLifeSatisfaction: {
		{"very-low", -3, "Very Low Life Satisfaction", ImpactHigh, false},
		{"low", -1.5, "Low Life Satisfaction", ImpactMedium, false},
		quiet("moderate"),
		{"high", 2, "High Life Satisfaction", ImpactMedium, false},
		{"very-high", 3, "Very High Life Satisfaction", ImpactHigh, false},
	},
	DimensionPurpose: {
		{"none", -2, "No Sense of Purpose", ImpactMedium, false},
		{"little", -0.5, "Little Sense of Purpose", ImpactLow, false},
		{"some", 0.5, "Some Sense of Purpose", ImpactLow, false},
		{"strong", 2, "Strong Sense of Purpose", ImpactMedium, false},
		{"very-strong", 3, "Very Strong Sense of Purpose", ImpactHigh, false},
	},
	DimensionMeditation: {
		quiet("never"),
		{"rarely", 0.5, "Occasional Mindfulness", ImpactLow, false},
		{"weekly", 1.5, "Weekly Meditation Practice", ImpactMedium, false},
		{"daily", 2.5, "Daily Meditation Practice", ImpactHigh, false},
	},
	DimensionMedicalCheckups: {
		{"never", -2, "No Regular Checkups", ImpactMedium, false},
		{"few-years", -0.5, "Infrequent Medical Checkups", ImpactLow, false},
		{"annually", 1, "Annual Medical Checkups", ImpactMedium, false},
		{"bi-annually", 2, "Frequent Medical Monitoring", ImpactHigh, false},
	},
	DimensionPreventiveCare: {
		{"none", -1.5, "No Preventive Care", ImpactMedium, false},
		{"basic", 0.5, "Basic Preventive Screenings", ImpactLow, false},
		{"comprehensive", 2, "Comprehensive Preventive Care", ImpactMedium, false},
		{"very-comprehensive", 3, "Proactive Health Management", ImpactHigh, false},
	},
	DimensionSupplements: {
		quiet("none"),
		{"basic-vitamins", 0.5, "Basic Vitamin Supplementation", ImpactLow, false},
		{"targeted", 1, "Targeted Supplementation", ImpactLow, false},
		{"comprehensive", 1.5, "Comprehensive Supplement Regimen", ImpactMedium, false},
	},
	DimensionDentalCare: {
		{"poor", -1, "Poor Dental Hygiene", ImpactLow, false},
		quiet("fair"),
		{"good", 0.5, "Good Dental Care", ImpactLow, false},
		{"excellent", 1, "Excellent Dental Care", ImpactLow, false},
	},
	DimensionResilience: {
		{"very-low", -3, "Very Low Mental Resilience", ImpactHigh, false},
		{"low", -1.5, "Low Mental Resilience", ImpactMedium, false},
		quiet("moderate"),
		{"high", 2, "High Mental Resilience", ImpactMedium, false},
		{"very-high", 3, "Very High Mental Resilience", ImpactHigh, false},
	},
	DimensionGratitude: {
		quiet("never"),
		{"rarely", 0.5, "Occasional Gratitude", ImpactLow, false},
		{"sometimes", 1, "Regular Gratitude Practice", ImpactLow, false},
		{"daily", 2, "Daily Gratitude Practice", ImpactMedium, false},
		{"multiple-daily", 2.5, "Multiple Daily Gratitude", ImpactMedium, false},
	},
	DimensionLearning: {
		{"none", -1, "No Learning Activities", ImpactLow, false},
		{"occasional", 0.5, "Occasional Learning", ImpactLow, false},
		{"regular", 1.5, "Regular Learning Habits", ImpactMedium, false},
		{"daily", 2.5, "Daily Learning Routine", ImpactMedium, false},
		{"passionate", 3, "Passionate Lifelong Learner", ImpactHigh, false},
	},
	DimensionCreativity: {
		{"none", -0.5, "No Creative Activities", ImpactLow, false},
		{"occasional", 0.5, "Occasional Creative Hobbies", ImpactLow, false},
		{"regular", 1.5, "Regular Creative Practice", ImpactMedium, false},
		{"daily", 2, "Daily Creative Expression", ImpactMedium, false},
		{"professional", 2.5, "Professional Creative Work", ImpactHigh, false},
	},
	DimensionScreenTime: {
		{"under-2", 1, "Low Screen Time (<2h)", ImpactLow, false},
		quiet("2-4"),
		{"4-6", -0.5, "Moderate Screen Time (4-6h)", ImpactLow, false},
		{"6-8", -1.5, "High Screen Time (6-8h)", ImpactMedium, false},
		{"over-8", -3, "Excessive Screen Time (8h+)", ImpactHigh, false},
	},
	DimensionNatureTime: {
		{"never", -1, "No Nature Exposure", ImpactLow, false},
		{"monthly", 0.5, "Monthly Nature Time", ImpactLow, false},
		{"weekly", 1, "Weekly Nature Time", ImpactLow, false},
		{"few-times-week", 1.5, "Regular Nature Exposure", ImpactMedium, false},
		{"daily", 2, "Daily Outdoor Time", ImpactMedium, false},
	},
	DimensionMorningRoutine: {
		{"chaotic", -1, "Chaotic Mornings", ImpactLow, false},
		{"inconsistent", -0.5, "Inconsistent Morning Routine", ImpactLow, false},
		{"basic", 0.5, "Basic Morning Routine", ImpactLow, false},
		{"structured", 1, "Well-Structured Morning Routine", ImpactLow, false},
		{"optimized", 1.5, "Optimized Morning Routine", ImpactMedium, false},
	},
	DimensionEveningRoutine: {
		{"poor", -1, "Poor Evening Routine", ImpactLow, false},
		quiet("minimal"),
		{"good", 1, "Good Evening Wind-Down", ImpactLow, false},
		{"excellent", 1.5, "Excellent Sleep Preparation", ImpactMedium, false},
	},
	DimensionHobbies: {
		{"none", -1, "No Regular Hobbies", ImpactLow, false},
		{"passive", -0.5, "Mostly Passive Activities", ImpactLow, false},
		{"some-active", 1, "Some Active Hobbies", ImpactLow, false},
		{"multiple", 2, "Multiple Engaging Hobbies", ImpactMedium, false},
		{"passionate", 2.5, "Passionate About Hobbies", ImpactMedium, false},
	},
	DimensionVolunteering: {
		quiet("never"),
		{"occasionally", 0.5, "Occasional Volunteering", ImpactLow, false},
		{"few-times-year", 1, "Regular Volunteering", ImpactLow, false},
		{"monthly", 1.5, "Monthly Community Service", ImpactMedium, false},
		{"weekly", 2.5, "Weekly Volunteer Work", ImpactHigh, false},
	},
	DimensionSpiritualPractice: {
		quiet("none"),
		{"occasional", 0.5, "Occasional Spiritual Practice", ImpactLow, false},
		{"regular", 1.5, "Regular Spiritual Practice", ImpactMedium, false},
		{"daily", 2, "Daily Spiritual Practice", ImpactMedium, false},
		{"deeply-committed", 2.5, "Deeply Committed Spiritual Practice", ImpactHigh, false},
	},
}
