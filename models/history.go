package models

import "time"

// MaxHistoryEntries caps the persisted analysis history; saves beyond the cap
// evict the oldest entries.
const MaxHistoryEntries = 50

// NutrientAmount is a name/amount/unit triple used by the denormalized
// history summary so list screens don't need the full record.
type NutrientAmount struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

type NutritionSummary struct {
	Calories float64          `json:"calories"`
	Macros   Macros           `json:"macros"`
	Vitamins []NutrientAmount `json:"vitamins"`
	Minerals []NutrientAmount `json:"minerals"`
}

// HistoryEntry is one persisted past analysis. ImageRef is empty for
// text-based searches. Legacy entries may carry only Summary; they are
// upgraded to a full NutritionData shape at read time (see history service).
type HistoryEntry struct {
	ID            string            `json:"id"`
	Timestamp     time.Time         `json:"timestamp"`
	ImageRef      string            `json:"imageRef,omitempty"`
	WeightGrams   float64           `json:"weightGrams"`
	FoodName      string            `json:"foodName"`
	Calories      float64           `json:"calories"`
	Confidence    float64           `json:"confidence"`
	SearchText    string            `json:"searchText,omitempty"`
	NutritionData *NutritionRecord  `json:"nutritionData,omitempty"`
	Summary       *NutritionSummary `json:"summary,omitempty"`
}

// HistoryStats buckets entries by age relative to "now" (rolling windows,
// not calendar-aware; boundary entries are excluded).
type HistoryStats struct {
	Total      int `json:"total"`
	Last7Days  int `json:"last_7_days"`
	Last30Days int `json:"last_30_days"`
}
