package models

// RecipeSummary is one candidate from a renal-safe recipe search. PerServing
// figures must already satisfy the hard thresholds embedded in the prompt.
type RecipeSummary struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	PrepMinutes int      `json:"prepMinutes"`
	CookMinutes int      `json:"cookMinutes"`
	Servings    int      `json:"servings"`
	PerServing  struct {
		Calories   float64 `json:"calories"`
		Protein    float64 `json:"protein"`
		Potassium  float64 `json:"potassium"`
		Phosphorus float64 `json:"phosphorus"`
		Sodium     float64 `json:"sodium"`
	} `json:"perServing"`
	Tags []string `json:"tags,omitempty"`
}

type RecipeIngredient struct {
	Name      string `json:"name"`
	Amount    string `json:"amount"`
	RenalNote string `json:"renalNote,omitempty"`
}

// RecipeDetail is the full recipe for a selected candidate.
type RecipeDetail struct {
	Name                string             `json:"name"`
	Servings            int                `json:"servings"`
	Ingredients         []RecipeIngredient `json:"ingredients"`
	Instructions        []string           `json:"instructions"`
	RenalModifications  []string           `json:"renalModifications"`
	NutritionPerServing NutritionRecord    `json:"nutritionPerServing"`
	Tips                []string           `json:"tips,omitempty"`
	Storage             string             `json:"storage,omitempty"`
	Variations          []string           `json:"variations,omitempty"`
}
