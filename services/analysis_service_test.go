package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nishantjoshi-007/NutriScan/models"
	"github.com/nishantjoshi-007/NutriScan/storage"
)

// fakeModel returns a canned reply and records the last prompt.
type fakeModel struct {
	reply      string
	err        error
	lastPrompt string
	calls      int
}

func (f *fakeModel) GenerateText(_ context.Context, prompt string) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	return f.reply, f.err
}

func (f *fakeModel) GenerateWithImage(_ context.Context, prompt string, _ []byte, _ string) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	return f.reply, f.err
}

const appleReply = `Here is the analysis you requested:
{
  "food": "Apple",
  "calories": 78,
  "macros": {"protein": 0.4, "carbs": 21, "fat": 0.3, "fiber": 3.6, "sugar": 15.6},
  "vitamins": {"vitaminC": 8.4},
  "minerals": {"potassium": 160, "phosphorus": 16, "sodium": 2},
  "renalDiet": {
    "suitableForKidneyDisease": true,
    "overallSafetyFlag": "safe",
    "primaryConcerns": [],
    "potassiumLevel": "low",
    "phosphorusLevel": "low",
    "sodiumLevel": "low",
    "proteinLevel": "low",
    "recommendation": "Fine in moderation.",
    "modifications": "",
    "warnings": [],
    "recommendedPortionGrams": 75
  }
}
Stay hydrated within your fluid allowance!`

func newAnalysisService(model ModelClient) (*AnalysisService, *DailyLogService, *HistoryService) {
	store := storage.NewMemoryStore()
	history := NewHistoryService(store, nil)
	logs := NewDailyLogService(store, history, nil)
	return NewAnalysisService(model, logs), logs, history
}

func TestAnalyzeText_ParsesProseWrappedJSON(t *testing.T) {
	model := &fakeModel{reply: appleReply}
	svc, _, history := newAnalysisService(model)

	rec, err := svc.AnalyzeText(context.Background(), "one medium apple", 150, "g", "en")
	require.NoError(t, err)
	assert.Equal(t, "Apple", rec.Food)
	assert.Equal(t, 78.0, rec.Calories)
	assert.Equal(t, models.SafetySafe, rec.RenalDiet.OverallSafetyFlag)
	assert.True(t, rec.RenalDiet.SuitableForKidneyDisease)

	// analysis -> history -> getAll surfaces the entry
	history.Save(models.HistoryEntry{FoodName: rec.Food, WeightGrams: 150, Calories: rec.Calories, NutritionData: rec})
	entries := history.GetAll()
	require.Len(t, entries, 1)
	assert.Equal(t, "Apple", entries[0].FoodName)
}

func TestAnalyzeImage_ParsesReply(t *testing.T) {
	model := &fakeModel{reply: appleReply}
	svc, _, _ := newAnalysisService(model)

	rec, err := svc.AnalyzeImage(context.Background(), []byte{0xff, 0xd8}, "image/jpeg", 150, "en")
	require.NoError(t, err)
	assert.Equal(t, "Apple", rec.Food)
}

func TestAnalyze_NoJSONInReply(t *testing.T) {
	model := &fakeModel{reply: "I could not identify any food in this image."}
	svc, _, _ := newAnalysisService(model)

	_, err := svc.AnalyzeText(context.Background(), "mystery", 100, "g", "en")
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestAnalyze_TransportFailure(t *testing.T) {
	model := &fakeModel{err: errors.New("connection refused")}
	svc, _, _ := newAnalysisService(model)

	_, err := svc.AnalyzeText(context.Background(), "apple", 100, "g", "en")
	assert.ErrorIs(t, err, ErrAnalysisFailed)
	assert.NotContains(t, err.Error(), "connection refused", "raw cause stays server-side")
}

func TestAnalyze_InvalidWeightSkipsModelCall(t *testing.T) {
	model := &fakeModel{reply: appleReply}
	svc, _, _ := newAnalysisService(model)

	_, err := svc.AnalyzeText(context.Background(), "apple", 0, "g", "en")
	require.Error(t, err)
	_, err = svc.AnalyzeImage(context.Background(), nil, "image/jpeg", -5, "en")
	require.Error(t, err)
	assert.Zero(t, model.calls, "validation failures must not reach the model")
}

func TestDailyLimits_SetGetAndDefaults(t *testing.T) {
	svc, _, _ := newAnalysisService(&fakeModel{})

	assert.Equal(t, models.DefaultDailyLimits(), svc.GetDailyLimits())

	custom := models.DailyLimits{Calories: 1800, Potassium: 1500, Phosphorus: 800, Sodium: 1500}
	svc.SetDailyLimits(custom)
	assert.Equal(t, custom, svc.GetDailyLimits())
}

func TestNutritionContext_RemainingMath(t *testing.T) {
	svc, logs, _ := newAnalysisService(&fakeModel{})

	// today's intake: 1800 mg potassium against the 2000 mg default limit
	logs.AddEntry(models.LogEntry{FoodName: "Potato salad", Calories: 600, Potassium: 1100, Phosphorus: 200, Sodium: 700})
	logs.AddEntry(models.LogEntry{FoodName: "Orange juice", Calories: 110, Potassium: 700, Phosphorus: 40, Sodium: 10})

	nctx := svc.NutritionContext()
	assert.Equal(t, 1800.0, nctx.Current.Potassium)
	assert.Equal(t, 200.0, nctx.Remaining.Potassium)
	assert.Equal(t, 1290.0, nctx.Remaining.Calories)
}

func TestNutritionContext_RemainingFlooredAtZero(t *testing.T) {
	svc, logs, _ := newAnalysisService(&fakeModel{})
	logs.AddEntry(models.LogEntry{FoodName: "Ramen", Sodium: 4500})

	nctx := svc.NutritionContext()
	assert.Zero(t, nctx.Remaining.Sodium)
}

func TestPrompt_CarriesPersonalizationAndLanguage(t *testing.T) {
	model := &fakeModel{reply: appleReply}
	svc, logs, _ := newAnalysisService(model)
	logs.AddEntry(models.LogEntry{FoodName: "Potato salad", Potassium: 1800})

	rec, err := svc.AnalyzeText(context.Background(), "apple", 100, "g", "es")
	require.NoError(t, err)

	assert.Contains(t, model.lastPrompt, "potassium: 1800 of 2000, 200 remaining")
	assert.Contains(t, model.lastPrompt, "Spanish")
	assert.Contains(t, model.lastPrompt, "recommendedPortionGrams")

	// the portion suggestion is model-owned; only a coarse sanity bound holds
	require.NotNil(t, rec.RenalDiet.RecommendedPortionGrams)
	assert.LessOrEqual(t, *rec.RenalDiet.RecommendedPortionGrams*2.5, 200.0)
}

func TestPrompt_UnknownLanguageFallsBackToEnglish(t *testing.T) {
	model := &fakeModel{reply: appleReply}
	svc, _, _ := newAnalysisService(model)

	_, err := svc.AnalyzeText(context.Background(), "apple", 100, "g", "xx")
	require.NoError(t, err)
	assert.Contains(t, model.lastPrompt, "English")
}

func TestEstimateWeight_RescalesConfidence(t *testing.T) {
	model := &fakeModel{reply: `The portion looks modest.
{"weightGrams": 182, "foodLabel": "Apple", "confidence": 85, "reasoning": "typical medium apple", "volumeMl": 210}`}
	svc, _, _ := newAnalysisService(model)

	est, err := svc.EstimateWeightFromImage(context.Background(), []byte{0xff}, "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, 182.0, est.WeightGrams)
	assert.Equal(t, "Apple", est.FoodLabel)
	assert.InDelta(t, 0.85, est.Confidence, 1e-9)
	require.NotNil(t, est.VolumeML)
	assert.Equal(t, 210.0, *est.VolumeML)
}

func TestEstimateWeight_LowConfidenceNotInflated(t *testing.T) {
	model := &fakeModel{reply: `{"weightGrams": 40, "foodLabel": "Grape", "confidence": 1, "reasoning": "hard to tell from this angle"}`}
	svc, _, _ := newAnalysisService(model)

	est, err := svc.EstimateWeightFromImage(context.Background(), []byte{0xff}, "image/jpeg")
	require.NoError(t, err)
	assert.InDelta(t, 0.01, est.Confidence, 1e-9, "1 on the 0-100 scale is 1%, not certainty")
}

func TestSearchRecipes_ParsesArrayAndEmbedsThresholds(t *testing.T) {
	model := &fakeModel{reply: `Here you go:
[
  {"name": "Cabbage stir fry", "description": "Quick and kidney friendly", "prepMinutes": 10, "cookMinutes": 10, "servings": 2,
   "perServing": {"calories": 120, "protein": 3, "potassium": 150, "phosphorus": 40, "sodium": 180}},
  {"name": "Rice porridge", "description": "Gentle and low mineral", "prepMinutes": 5, "cookMinutes": 25, "servings": 2,
   "perServing": {"calories": 150, "protein": 3, "potassium": 60, "phosphorus": 55, "sodium": 95}}
]`}
	svc, _, _ := newAnalysisService(model)

	recipes, err := svc.SearchRecipes(context.Background(), "asian dinner", "en")
	require.NoError(t, err)
	require.Len(t, recipes, 2)
	assert.Equal(t, "Cabbage stir fry", recipes[0].Name)
	assert.Equal(t, 150.0, recipes[0].PerServing.Potassium)

	assert.Contains(t, model.lastPrompt, "potassium under 200 mg")
	assert.Contains(t, model.lastPrompt, "phosphorus under 150 mg")
	assert.Contains(t, model.lastPrompt, "sodium under 300 mg")
	assert.Contains(t, model.lastPrompt, "star fruit")
}

func TestSearchRecipes_NoArray(t *testing.T) {
	model := &fakeModel{reply: "no recipes today, sorry"}
	svc, _, _ := newAnalysisService(model)

	_, err := svc.SearchRecipes(context.Background(), "anything", "en")
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestGetRecipeDetails_ParsesObject(t *testing.T) {
	reply := fmt.Sprintf(`{
  "name": "Rice porridge",
  "servings": 4,
  "ingredients": [{"name": "white rice", "amount": "1 cup", "renalNote": "lower potassium than brown rice"}],
  "instructions": ["Rinse the rice.", "Simmer for 25 minutes."],
  "renalModifications": ["No added salt."],
  "nutritionPerServing": {"food": "Rice porridge", "calories": %d, "macros": {}, "vitamins": {}, "minerals": {}, "renalDiet": {"suitableForKidneyDisease": true, "overallSafetyFlag": "safe"}},
  "tips": ["Serve warm."],
  "storage": "Refrigerate up to 3 days.",
  "variations": ["Add a little ginger."]
}`, 150)
	model := &fakeModel{reply: reply}
	svc, _, _ := newAnalysisService(model)

	detail, err := svc.GetRecipeDetails(context.Background(), "Rice porridge", 4, "en")
	require.NoError(t, err)
	assert.Equal(t, "Rice porridge", detail.Name)
	assert.Equal(t, 4, detail.Servings)
	require.Len(t, detail.Ingredients, 1)
	assert.Equal(t, "white rice", detail.Ingredients[0].Name)
	assert.Len(t, detail.Instructions, 2)
	assert.Equal(t, 150.0, detail.NutritionPerServing.Calories)
	assert.Contains(t, model.lastPrompt, "4 servings")
}
