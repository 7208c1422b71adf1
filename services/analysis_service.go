package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/nishantjoshi-007/NutriScan/models"
	"github.com/nishantjoshi-007/NutriScan/utils"
)

// User-facing error taxonomy. Transport failures and unparseable replies are
// terminal for the triggering call; the client offers manual retry. The
// underlying cause is logged server-side and never put in the message.
var (
	ErrAnalysisFailed  = errors.New("analysis failed, please check your configuration and try again")
	ErrInvalidResponse = errors.New("invalid response format")
)

// AnalysisService turns a food photo or description into a NutritionRecord by
// delegating to the external model. Stateless per call except for the
// runtime-configurable daily limits, which reset to defaults on restart.
type AnalysisService struct {
	model ModelClient
	logs  *DailyLogService

	mu     sync.RWMutex
	limits models.DailyLimits
}

func NewAnalysisService(model ModelClient, logs *DailyLogService) *AnalysisService {
	return &AnalysisService{
		model:  model,
		logs:   logs,
		limits: models.DefaultDailyLimits(),
	}
}

func (s *AnalysisService) SetDailyLimits(limits models.DailyLimits) {
	s.mu.Lock()
	s.limits = limits
	s.mu.Unlock()
}

func (s *AnalysisService) GetDailyLimits() models.DailyLimits {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.limits
}

// NutritionContext sums today's logged intake against the configured limits.
// Remainders are floored at zero.
func (s *AnalysisService) NutritionContext() models.NutritionContext {
	limits := s.GetDailyLimits()

	var current models.NutrientTotals
	if s.logs != nil {
		for _, e := range s.logs.GetForDate(utils.LocalDate(time.Now())) {
			current.Calories += e.Calories
			current.Potassium += e.Potassium
			current.Phosphorus += e.Phosphorus
			current.Sodium += e.Sodium
		}
	}

	floor := func(v float64) float64 {
		if v < 0 {
			return 0
		}
		return v
	}
	return models.NutritionContext{
		Current: current,
		Limits:  limits,
		Remaining: models.NutrientTotals{
			Calories:   floor(limits.Calories - current.Calories),
			Potassium:  floor(limits.Potassium - current.Potassium),
			Phosphorus: floor(limits.Phosphorus - current.Phosphorus),
			Sodium:     floor(limits.Sodium - current.Sodium),
		},
	}
}

// AnalyzeImage analyzes a photographed food at the given portion weight.
func (s *AnalysisService) AnalyzeImage(ctx context.Context, image []byte, mimeType string, weightGrams float64, lang string) (*models.NutritionRecord, error) {
	if err := utils.ValidateWeight(weightGrams); err != nil {
		return nil, err
	}

	prompt := s.buildNutritionPrompt(fmt.Sprintf("the food shown in the image, portion weight %.0f g", weightGrams), lang)
	reply, err := s.model.GenerateWithImage(ctx, prompt, image, mimeType)
	if err != nil {
		log.Printf("image analysis call failed: %v", err)
		return nil, ErrAnalysisFailed
	}
	return parseNutrition(reply)
}

// AnalyzeText analyzes a described food. Unit defaults to grams and is only
// prompt text; the weight validation applies to gram inputs.
func (s *AnalysisService) AnalyzeText(ctx context.Context, description string, weight float64, unit, lang string) (*models.NutritionRecord, error) {
	if unit == "" {
		unit = "g"
	}
	if unit == "g" {
		if err := utils.ValidateWeight(weight); err != nil {
			return nil, err
		}
	} else if weight <= 0 {
		return nil, errors.New("weight must be positive")
	}

	subject := fmt.Sprintf("%q, portion %.1f %s", description, weight, unit)
	prompt := s.buildNutritionPrompt(subject, lang)
	reply, err := s.model.GenerateText(ctx, prompt)
	if err != nil {
		log.Printf("text analysis call failed: %v", err)
		return nil, ErrAnalysisFailed
	}
	return parseNutrition(reply)
}

// EstimateWeightFromImage asks the model for a best-guess portion weight.
// The model reports confidence 0-100; it is rescaled to 0..1 here.
func (s *AnalysisService) EstimateWeightFromImage(ctx context.Context, image []byte, mimeType string) (*models.WeightEstimate, error) {
	prompt := `Look at the food in this image and estimate its weight.
Respond with a single JSON object, no other text:
{
  "weightGrams": <estimated weight in grams>,
  "foodLabel": "<identified food>",
  "confidence": <0-100>,
  "reasoning": "<how you arrived at the estimate>",
  "volumeMl": <estimated volume in ml, omit if not applicable>
}`

	reply, err := s.model.GenerateWithImage(ctx, prompt, image, mimeType)
	if err != nil {
		log.Printf("weight estimation call failed: %v", err)
		return nil, ErrAnalysisFailed
	}

	span, err := utils.ExtractJSONObject(reply)
	if err != nil {
		return nil, ErrInvalidResponse
	}
	var est models.WeightEstimate
	if err := json.Unmarshal([]byte(span), &est); err != nil {
		log.Printf("weight estimate parse failed: %v", err)
		return nil, ErrInvalidResponse
	}
	// the prompt contract is 0-100, so the rescale is unconditional: a
	// reply of exactly 1 means 1%, not full confidence
	est.Confidence /= 100
	return &est, nil
}

// SearchRecipes returns renal-safe recipe candidates for a cuisine or
// ingredient query. The safety thresholds are part of the prompt contract,
// not enforced locally.
func (s *AnalysisService) SearchRecipes(ctx context.Context, query, lang string) ([]models.RecipeSummary, error) {
	var sb strings.Builder
	sb.WriteString("Suggest 5 recipes for the query: ")
	sb.WriteString(query)
	sb.WriteString(`
Only include recipes that meet ALL of these kidney-diet limits per serving:
- potassium under 200 mg
- phosphorus under 150 mg
- sodium under 300 mg
- low or moderate protein
Never include: star fruit, bananas, oranges, avocados, tomatoes, potatoes, spinach, dried fruit, processed meats, canned soups, dark colas, dairy-heavy dishes, nuts and seeds, whole-grain heavy dishes.
Respond with a single JSON array, no other text. Each element:
{
  "name": "...",
  "description": "...",
  "prepMinutes": 0,
  "cookMinutes": 0,
  "servings": 0,
  "perServing": {"calories": 0, "protein": 0, "potassium": 0, "phosphorus": 0, "sodium": 0},
  "tags": ["..."]
}
`)
	sb.WriteString(languageDirective(lang))

	reply, err := s.model.GenerateText(ctx, sb.String())
	if err != nil {
		log.Printf("recipe search call failed: %v", err)
		return nil, ErrAnalysisFailed
	}

	span, err := utils.ExtractJSONArray(reply)
	if err != nil {
		return nil, ErrInvalidResponse
	}
	var recipes []models.RecipeSummary
	if err := json.Unmarshal([]byte(span), &recipes); err != nil {
		log.Printf("recipe search parse failed: %v", err)
		return nil, ErrInvalidResponse
	}
	return recipes, nil
}

// GetRecipeDetails expands one recipe candidate into a full renal-adapted
// recipe scaled to the requested servings.
func (s *AnalysisService) GetRecipeDetails(ctx context.Context, name string, servings int, lang string) (*models.RecipeDetail, error) {
	if servings <= 0 {
		servings = 2
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Give the full kidney-diet-friendly recipe for %q, scaled to %d servings.\n", name, servings)
	sb.WriteString(`Respond with a single JSON object, no other text:
{
  "name": "...",
  "servings": 0,
  "ingredients": [{"name": "...", "amount": "...", "renalNote": "..."}],
  "instructions": ["step 1", "step 2"],
  "renalModifications": ["..."],
  "nutritionPerServing": ` + nutritionSchema + `,
  "tips": ["..."],
  "storage": "...",
  "variations": ["..."]
}
`)
	sb.WriteString(languageDirective(lang))

	reply, err := s.model.GenerateText(ctx, sb.String())
	if err != nil {
		log.Printf("recipe details call failed: %v", err)
		return nil, ErrAnalysisFailed
	}

	span, err := utils.ExtractJSONObject(reply)
	if err != nil {
		return nil, ErrInvalidResponse
	}
	var detail models.RecipeDetail
	if err := json.Unmarshal([]byte(span), &detail); err != nil {
		log.Printf("recipe details parse failed: %v", err)
		return nil, ErrInvalidResponse
	}
	return &detail, nil
}

// nutritionSchema is the exact reply shape the model is instructed to
// produce for a nutrition analysis.
const nutritionSchema = `{
  "food": "<identified food name>",
  "calories": 0,
  "macros": {"protein": 0, "carbs": 0, "fat": 0, "fiber": 0, "sugar": 0},
  "vitamins": {"vitaminA": 0, "vitaminC": 0, "vitaminD": 0, "vitaminE": 0, "vitaminK": 0, "thiamin": 0, "riboflavin": 0, "niacin": 0, "vitaminB6": 0, "vitaminB12": 0, "folate": 0},
  "minerals": {"calcium": 0, "iron": 0, "magnesium": 0, "phosphorus": 0, "potassium": 0, "sodium": 0, "zinc": 0, "selenium": 0},
  "renalDiet": {
    "suitableForKidneyDisease": true,
    "overallSafetyFlag": "safe|caution|avoid",
    "primaryConcerns": ["..."],
    "potassiumLevel": "low|moderate|high",
    "phosphorusLevel": "low|moderate|high",
    "sodiumLevel": "low|moderate|high",
    "proteinLevel": "low|moderate|high",
    "recommendation": "...",
    "modifications": "...",
    "warnings": ["..."],
    "antioxidantInfo": {"level": "...", "keySources": "...", "renalBenefit": "..."},
    "recommendedPortionGrams": 0,
    "traceMinerals": {"copper": 0, "manganese": 0, "iodine": 0, "chromium": 0},
    "kidneyMetadata": {"dialysisFriendly": true, "fluidContentPercent": 0, "acidLoad": "low|moderate|high", "stageGuidance": "..."}
  }
}`

func (s *AnalysisService) buildNutritionPrompt(subject, lang string) string {
	nctx := s.NutritionContext()

	var sb strings.Builder
	fmt.Fprintf(&sb, "Analyze %s for a chronic kidney disease patient.\n", subject)
	sb.WriteString("Respond with a single JSON object exactly matching this shape, no other text:\n")
	sb.WriteString(nutritionSchema)
	sb.WriteString("\nAmounts are for the stated portion. Vitamins A/D/K/B12/folate in mcg, other vitamins in mg; all minerals in mg.\n")

	sb.WriteString("\nThe patient's intake so far today versus their daily limits (mg, calories in kcal):\n")
	fmt.Fprintf(&sb, "- calories: %.0f of %.0f, %.0f remaining\n", nctx.Current.Calories, nctx.Limits.Calories, nctx.Remaining.Calories)
	fmt.Fprintf(&sb, "- potassium: %.0f of %.0f, %.0f remaining\n", nctx.Current.Potassium, nctx.Limits.Potassium, nctx.Remaining.Potassium)
	fmt.Fprintf(&sb, "- phosphorus: %.0f of %.0f, %.0f remaining\n", nctx.Current.Phosphorus, nctx.Limits.Phosphorus, nctx.Remaining.Phosphorus)
	fmt.Fprintf(&sb, "- sodium: %.0f of %.0f, %.0f remaining\n", nctx.Current.Sodium, nctx.Limits.Sodium, nctx.Remaining.Sodium)

	sb.WriteString(`Size recommendedPortionGrams against the tightest remaining allowance:
- over 50% of the allowance remaining: a standard or larger portion is fine
- 25-50% remaining: recommend a moderate portion
- 10-25% remaining: recommend a small portion
- under 10% remaining: recommend a very small portion, or omit recommendedPortionGrams entirely if no portion is safe
`)

	sb.WriteString(languageDirective(lang))
	return sb.String()
}

var languageNames = map[string]string{
	"en": "English",
	"es": "Spanish",
	"fr": "French",
	"de": "German",
	"hi": "Hindi",
	"gu": "Gujarati",
	"zh": "Chinese",
	"ja": "Japanese",
	"pt": "Portuguese",
	"ar": "Arabic",
}

// languageDirective selects the language of free-text fields only. Numbers
// and enum values keep the fixed vocabulary regardless.
func languageDirective(lang string) string {
	name, ok := languageNames[lang]
	if !ok {
		name = "English"
	}
	return fmt.Sprintf("Write all free-text fields in %s. Keep every number and every enum value (safe/caution/avoid, low/moderate/high) exactly as specified, in English.\n", name)
}

func parseNutrition(reply string) (*models.NutritionRecord, error) {
	span, err := utils.ExtractJSONObject(reply)
	if err != nil {
		return nil, ErrInvalidResponse
	}
	var rec models.NutritionRecord
	if err := json.Unmarshal([]byte(span), &rec); err != nil {
		log.Printf("nutrition parse failed: %v", err)
		return nil, ErrInvalidResponse
	}
	return &rec, nil
}
