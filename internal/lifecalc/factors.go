package lifecalc

import (
	"math"
	"strings"
)

// FactorRecord is the self-reported input for a single calculation.
// Empty strings and zero numerics mean "not supplied".
type FactorRecord struct {
	Gender     string  `json:"gender,omitempty" yaml:"gender"`
	Country    string  `json:"country,omitempty" yaml:"country"`
	CurrentAge float64 `json:"currentAge,omitempty" yaml:"currentAge" binding:"omitempty,gte=0,lte=150"`

	BMI float64 `json:"bmi,omitempty" yaml:"bmi" binding:"omitempty,gte=0"`

	Smoking            bool    `json:"smoking,omitempty" yaml:"smoking"`
	PacksPerDay        float64 `json:"packsPerDay,omitempty" yaml:"packsPerDay" binding:"omitempty,gte=0"`
	SmokingYears       float64 `json:"smokingYears,omitempty" yaml:"smokingYears" binding:"omitempty,gte=0"`
	AlcoholConsumption string  `json:"alcoholConsumption,omitempty" yaml:"alcoholConsumption"`

	ExerciseFrequency string `json:"exerciseFrequency,omitempty" yaml:"exerciseFrequency"`
	ExerciseType      string `json:"exerciseType,omitempty" yaml:"exerciseType"`
	DailySteps        string `json:"dailySteps,omitempty" yaml:"dailySteps"`
	FitnessLevel      string `json:"fitnessLevel,omitempty" yaml:"fitnessLevel"`

	WaterIntake      string `json:"waterIntake,omitempty" yaml:"waterIntake"`
	FruitsVegetables string `json:"fruitsVegetables,omitempty" yaml:"fruitsVegetables"`
	ProcessedFood    string `json:"processedFood,omitempty" yaml:"processedFood"`
	MealRegularity   string `json:"mealRegularity,omitempty" yaml:"mealRegularity"`
	DietQuality      string `json:"dietQuality,omitempty" yaml:"dietQuality"`

	StressLevel       string `json:"stressLevel,omitempty" yaml:"stressLevel"`
	SleepQuality      string `json:"sleepQuality,omitempty" yaml:"sleepQuality"`
	MentalOutlook     string `json:"mentalOutlook,omitempty" yaml:"mentalOutlook"`
	SocialConnections string `json:"socialConnections,omitempty" yaml:"socialConnections"`
	WorkLifeBalance   string `json:"workLifeBalance,omitempty" yaml:"workLifeBalance"`
	LifeSatisfaction  string `json:"lifeSatisfaction,omitempty" yaml:"lifeSatisfaction"`
	Purpose           string `json:"purpose,omitempty" yaml:"purpose"`
	Meditation        string `json:"meditation,omitempty" yaml:"meditation"`

	MedicalCheckups string `json:"medicalCheckups,omitempty" yaml:"medicalCheckups"`
	PreventiveCare  string `json:"preventiveCare,omitempty" yaml:"preventiveCare"`
	Supplements     string `json:"supplements,omitempty" yaml:"supplements"`
	DentalCare      string `json:"dentalCare,omitempty" yaml:"dentalCare"`

	Resilience        string `json:"resilience,omitempty" yaml:"resilience"`
	Gratitude         string `json:"gratitude,omitempty" yaml:"gratitude"`
	Learning          string `json:"learning,omitempty" yaml:"learning"`
	Creativity        string `json:"creativity,omitempty" yaml:"creativity"`
	ScreenTime        string `json:"screenTime,omitempty" yaml:"screenTime"`
	NatureTime        string `json:"natureTime,omitempty" yaml:"natureTime"`
	MorningRoutine    string `json:"morningRoutine,omitempty" yaml:"morningRoutine"`
	EveningRoutine    string `json:"eveningRoutine,omitempty" yaml:"eveningRoutine"`
	Hobbies           string `json:"hobbies,omitempty" yaml:"hobbies"`
	Volunteering      string `json:"volunteering,omitempty" yaml:"volunteering"`
	SpiritualPractice string `json:"spiritualPractice,omitempty" yaml:"spiritualPractice"`
}

const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"

	CountryOther = "other"

	defaultGender  = GenderMale
	defaultCountry = "us"
)

// Normalize returns a copy of the record with codes lower-cased and trimmed,
// unrecognized codes cleared and unusable numerics zeroed.
func (f FactorRecord) Normalize() FactorRecord {
	out := f
	out.Gender = normalizeCode(f.Gender)
	out.Country = normalizeCode(f.Country)
	out.CurrentAge = sanitizeNumber(f.CurrentAge)
	out.BMI = sanitizeNumber(f.BMI)
	out.PacksPerDay = sanitizeNumber(f.PacksPerDay)
	out.SmokingYears = sanitizeNumber(f.SmokingYears)

	for _, field := range out.codedFields() {
		*field.value = recognize(field.dimension, *field.value)
	}
	return out
}

type codedField struct {
	dimension Dimension
	value     *string
}

// codedFields lists every enumerated field with the dimension whose table
// defines its accepted codes.
func (f *FactorRecord) codedFields() []codedField {
	return []codedField{
		{DimensionAlcohol, &f.AlcoholConsumption},
		{DimensionExerciseFrequency, &f.ExerciseFrequency},
		{DimensionExerciseType, &f.ExerciseType},
		{DimensionDailySteps, &f.DailySteps},
		{DimensionFitnessLevel, &f.FitnessLevel},
		{DimensionWaterIntake, &f.WaterIntake},
		{DimensionFruitsVegetables, &f.FruitsVegetables},
		{DimensionProcessedFood, &f.ProcessedFood},
		{DimensionMealRegularity, &f.MealRegularity},
		{DimensionDietQuality, &f.DietQuality},
		{DimensionStress, &f.StressLevel},
		{DimensionSleep, &f.SleepQuality},
		{DimensionMentalOutlook, &f.MentalOutlook},
		{DimensionSocialConnections, &f.SocialConnections},
		{DimensionWorkLifeBalance, &f.WorkLifeBalance},
		{DimensionLifeSatisfaction, &f.LifeSatisfaction},
		{DimensionPurpose, &f.Purpose},
		{DimensionMeditation, &f.Meditation},
		{DimensionMedicalCheckups, &f.MedicalCheckups},
		{DimensionPreventiveCare, &f.PreventiveCare},
		{DimensionSupplements, &f.Supplements},
		{DimensionDentalCare, &f.DentalCare},
		{DimensionResilience, &f.Resilience},
		{DimensionGratitude, &f.Gratitude},
		{DimensionLearning, &f.Learning},
		{DimensionCreativity, &f.Creativity},
		{DimensionScreenTime, &f.ScreenTime},
		{DimensionNatureTime, &f.NatureTime},
		{DimensionMorningRoutine, &f.MorningRoutine},
		{DimensionEveningRoutine, &f.EveningRoutine},
		{DimensionHobbies, &f.Hobbies},
		{DimensionVolunteering, &f.Volunteering},
		{DimensionSpiritualPractice, &f.SpiritualPractice},
	}
}

func recognize(dim Dimension, raw string) string {
	code := normalizeCode(raw)
	if code == "" {
		return ""
	}
	table, ok := codeTables[dim]
	if !ok {
		return ""
	}
	if _, ok := table.lookup(code); !ok {
		return ""
	}
	return code
}

func normalizeCode(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func sanitizeNumber(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// PackYears returns packsPerDay × smokingYears.
func (f FactorRecord) PackYears() float64 {
	return f.PacksPerDay * f.SmokingYears
}
