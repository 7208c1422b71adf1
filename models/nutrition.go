package models

// NutritionRecord is the structured result of one food analysis, parsed out
// of the model's reply. Immutable once created.
type NutritionRecord struct {
	Food      string          `json:"food"`
	Calories  float64         `json:"calories"`
	Macros    Macros          `json:"macros"`
	Vitamins  Vitamins        `json:"vitamins"`
	Minerals  Minerals        `json:"minerals"`
	RenalDiet RenalAssessment `json:"renalDiet"`
}

type Macros struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
	Fiber   float64 `json:"fiber"`
	Sugar   float64 `json:"sugar"`
}

// All vitamin amounts are per the analyzed portion. Units follow the prompt
// contract: A/D/K/B12/folate in mcg, the rest in mg.
type Vitamins struct {
	VitaminA   float64 `json:"vitaminA"`
	VitaminC   float64 `json:"vitaminC"`
	VitaminD   float64 `json:"vitaminD"`
	VitaminE   float64 `json:"vitaminE"`
	VitaminK   float64 `json:"vitaminK"`
	Thiamin    float64 `json:"thiamin"`
	Riboflavin float64 `json:"riboflavin"`
	Niacin     float64 `json:"niacin"`
	VitaminB6  float64 `json:"vitaminB6"`
	VitaminB12 float64 `json:"vitaminB12"`
	Folate     float64 `json:"folate"`
}

type Minerals struct {
	Calcium    float64 `json:"calcium"`
	Iron       float64 `json:"iron"`
	Magnesium  float64 `json:"magnesium"`
	Phosphorus float64 `json:"phosphorus"`
	Potassium  float64 `json:"potassium"`
	Sodium     float64 `json:"sodium"`
	Zinc       float64 `json:"zinc"`
	Selenium   float64 `json:"selenium"`
}

// Safety flag vocabulary for RenalAssessment.OverallSafetyFlag.
const (
	SafetySafe    = "safe"
	SafetyCaution = "caution"
	SafetyAvoid   = "avoid"
)

// Level vocabulary for the per-nutrient categorical ratings.
const (
	LevelLow      = "low"
	LevelModerate = "moderate"
	LevelHigh     = "high"
)

// RenalAssessment is the kidney-diet suitability verdict nested in every
// NutritionRecord. Enum-valued fields stay in the fixed English vocabulary
// regardless of the requested response language.
type RenalAssessment struct {
	SuitableForKidneyDisease bool     `json:"suitableForKidneyDisease"`
	OverallSafetyFlag        string   `json:"overallSafetyFlag"`
	PrimaryConcerns          []string `json:"primaryConcerns"`
	PotassiumLevel           string   `json:"potassiumLevel"`
	PhosphorusLevel          string   `json:"phosphorusLevel"`
	SodiumLevel              string   `json:"sodiumLevel"`
	ProteinLevel             string   `json:"proteinLevel"`
	Recommendation           string   `json:"recommendation"`
	Modifications            string   `json:"modifications"`
	Warnings                 []string `json:"warnings"`

	// Optional extensions. RecommendedPortionGrams absent means the model
	// found no safe portion at all.
	AntioxidantInfo         *AntioxidantInfo `json:"antioxidantInfo,omitempty"`
	RecommendedPortionGrams *float64         `json:"recommendedPortionGrams,omitempty"`
	TraceMinerals           *TraceMinerals   `json:"traceMinerals,omitempty"`
	KidneyMetadata          *KidneyMetadata  `json:"kidneyMetadata,omitempty"`
}

type AntioxidantInfo struct {
	Level        string `json:"level"`
	KeySources   string `json:"keySources"`
	RenalBenefit string `json:"renalBenefit"`
}

type TraceMinerals struct {
	Copper    float64 `json:"copper"`
	Manganese float64 `json:"manganese"`
	Iodine    float64 `json:"iodine"`
	Chromium  float64 `json:"chromium"`
}

type KidneyMetadata struct {
	DialysisFriendly    bool    `json:"dialysisFriendly"`
	FluidContentPercent float64 `json:"fluidContentPercent"`
	AcidLoad            string  `json:"acidLoad"`
	StageGuidance       string  `json:"stageGuidance"`
}

// WeightEstimate is the model's best guess for a photographed portion.
// Confidence is normalized to 0..1 at parse time.
type WeightEstimate struct {
	WeightGrams float64  `json:"weightGrams"`
	FoodLabel   string   `json:"foodLabel"`
	Confidence  float64  `json:"confidence"`
	Reasoning   string   `json:"reasoning"`
	VolumeML    *float64 `json:"volumeMl,omitempty"`
}
