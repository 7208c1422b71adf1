package models

import "time"

// DateLayout is the local calendar date key used throughout the daily log.
// Zero-padded ISO, so lexicographic order equals chronological order.
const DateLayout = "2006-01-02"

// LogEntry is one consumed-food record for a specific local date. Either
// HistoryID points at the analysis it came from, or CustomNutrition carries
// an inline snapshot for manual entries; both may be empty.
type LogEntry struct {
	ID          string    `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	Date        string    `json:"date"` // YYYY-MM-DD, local time
	FoodName    string    `json:"foodName"`
	WeightGrams float64   `json:"weightGrams"`
	Calories    float64   `json:"calories"`

	// The three restricted minerals, denormalized for cheap aggregation.
	Potassium  float64 `json:"potassium"`
	Phosphorus float64 `json:"phosphorus"`
	Sodium     float64 `json:"sodium"`

	HistoryID       string           `json:"historyId,omitempty"`
	CustomNutrition *NutritionRecord `json:"customNutrition,omitempty"`
}

// LogEntryUpdate is a partial update; nil fields are left untouched. Its main
// use is attaching the deferred history back-reference once a save completes.
type LogEntryUpdate struct {
	FoodName    *string  `json:"foodName,omitempty"`
	WeightGrams *float64 `json:"weightGrams,omitempty"`
	Calories    *float64 `json:"calories,omitempty"`
	Potassium   *float64 `json:"potassium,omitempty"`
	Phosphorus  *float64 `json:"phosphorus,omitempty"`
	Sodium      *float64 `json:"sodium,omitempty"`
	HistoryID   *string  `json:"historyId,omitempty"`
}

// DailyAggregate is derived on every read, never stored.
type DailyAggregate struct {
	Date            string     `json:"date"`
	Entries         []LogEntry `json:"entries"`
	TotalWeight     float64    `json:"totalWeight"`
	TotalCalories   float64    `json:"totalCalories"`
	TotalPotassium  float64    `json:"totalPotassium"`
	TotalPhosphorus float64    `json:"totalPhosphorus"`
	TotalSodium     float64    `json:"totalSodium"`
}

// NutrientTotals holds one figure per tracked nutrient.
type NutrientTotals struct {
	Calories   float64 `json:"calories"`
	Potassium  float64 `json:"potassium"`
	Phosphorus float64 `json:"phosphorus"`
	Sodium     float64 `json:"sodium"`
}

// DailyLimits are the daily allowance thresholds. Defaults approximate CKD
// stage 3-4 guidance; runtime-configurable, never persisted.
type DailyLimits = NutrientTotals

func DefaultDailyLimits() DailyLimits {
	return DailyLimits{
		Calories:   2000,
		Potassium:  2000,
		Phosphorus: 1000,
		Sodium:     2000,
	}
}

// NutritionContext parameterizes outgoing prompts: today's intake, the
// configured limits, and the remainder floored at zero.
type NutritionContext struct {
	Current   NutrientTotals `json:"current"`
	Limits    DailyLimits    `json:"limits"`
	Remaining NutrientTotals `json:"remaining"`
}
