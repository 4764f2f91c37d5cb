package lifecalc

const (
	youngAgeLimit  = 30
	seniorAgeLimit = 65

	youngMultiplier  = 1.2
	seniorMultiplier = 0.7
)

// AgeModifierFor returns the multiplier entry for the given age. Ages 30 to 65
// inclusive, and an absent age, leave the total unchanged.
func AgeModifierFor(age float64) AgeModifier {
	switch {
	case age > 0 && age < youngAgeLimit:
		return AgeModifier{
			Factor:      "Young Age Advantage",
			Multiplier:  youngMultiplier,
			Description: "+20% to lifestyle factors",
			Type:        PolarityPositive,
			Impact:      ImpactModifier,
		}
	case age > seniorAgeLimit:
		return AgeModifier{
			Factor:      "Advanced Age Factor",
			Multiplier:  seniorMultiplier,
			Description: "-30% to lifestyle factors",
			Type:        PolarityNegative,
			Impact:      ImpactModifier,
		}
	default:
		return AgeModifier{
			Factor:      "Standard Age Factor",
			Multiplier:  1,
			Description: "No age adjustment",
			Type:        PolarityNeutral,
			Impact:      ImpactModifier,
		}
	}
}
