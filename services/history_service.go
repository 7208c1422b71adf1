package services

import (
	"encoding/json"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/nishantjoshi-007/NutriScan/models"
	"github.com/nishantjoshi-007/NutriScan/storage"
	"github.com/nishantjoshi-007/NutriScan/utils"
)

const historyKey = "food_analysis_history"

// HistoryService keeps the capped, newest-first record of past analyses.
// Persistence is best-effort: failures surface as a notice, never as an error
// to the caller, because history must not block an already-computed analysis.
type HistoryService struct {
	store storage.Store
	bus   *NoticeBus
}

func NewHistoryService(store storage.Store, bus *NoticeBus) *HistoryService {
	return &HistoryService{store: store, bus: bus}
}

// Save assigns a fresh id and timestamp, prepends the entry, truncates to the
// cap and rewrites the whole list.
func (s *HistoryService) Save(item models.HistoryEntry) *models.HistoryEntry {
	item.ID = uuid.NewString()
	item.Timestamp = time.Now()

	entries := s.readAll()
	entries = append([]models.HistoryEntry{item}, entries...)
	if len(entries) > models.MaxHistoryEntries {
		entries = entries[:models.MaxHistoryEntries]
	}
	s.writeAll(entries)

	return &item
}

// GetAll returns all entries newest first, upgrading legacy summary-only
// entries to the full shape on the way out. The upgrade is read-time only; it
// is not written back until the next save rewrites the list.
func (s *HistoryService) GetAll() []models.HistoryEntry {
	entries := s.readAll()
	for i := range entries {
		entries[i] = migrateEntry(entries[i])
	}
	// storage order should already be newest first; re-sort defensively
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
	return entries
}

// DeleteOne removes the entry with the given id; absent ids are a no-op.
func (s *HistoryService) DeleteOne(id string) {
	entries := s.readAll()
	kept := entries[:0]
	for _, e := range entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(entries) {
		return
	}
	s.writeAll(kept)
}

func (s *HistoryService) ClearAll() {
	if err := s.store.Delete(historyKey); err != nil {
		log.Printf("history clear failed: %v", err)
		s.bus.Notify("history", "Could not clear history. Please try again.")
	}
}

// Stats counts entries inside rolling 7- and 30-day windows ending now.
// Plain subtraction, not calendar-aware; boundary entries are excluded.
func (s *HistoryService) Stats() models.HistoryStats {
	entries := s.readAll()
	now := time.Now()
	week := now.Add(-7 * 24 * time.Hour)
	month := now.Add(-30 * 24 * time.Hour)

	stats := models.HistoryStats{Total: len(entries)}
	for _, e := range entries {
		if e.Timestamp.After(week) {
			stats.Last7Days++
		}
		if e.Timestamp.After(month) {
			stats.Last30Days++
		}
	}
	return stats
}

// FormatTimestamp renders an entry timestamp for list display.
func (s *HistoryService) FormatTimestamp(ts time.Time) string {
	return utils.FormatTimestamp(ts, time.Now())
}

func (s *HistoryService) readAll() []models.HistoryEntry {
	raw, ok, err := s.store.Get(historyKey)
	if err != nil {
		log.Printf("history read failed: %v", err)
		return nil
	}
	if !ok {
		return nil
	}
	var entries []models.HistoryEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		log.Printf("history decode failed: %v", err)
		return nil
	}
	return entries
}

func (s *HistoryService) writeAll(entries []models.HistoryEntry) {
	raw, err := json.Marshal(entries)
	if err != nil {
		log.Printf("history encode failed: %v", err)
		return
	}
	if err := s.store.Set(historyKey, raw); err != nil {
		log.Printf("history write failed: %v", err)
		s.bus.Notify("history", "Could not save to history. Your analysis is unaffected.")
	}
}

// migrateEntry synthesizes a full nutrition record for legacy entries that
// only carry the display summary. Unknown numerics stay zero; the
// recommendation text flags the upgrade.
func migrateEntry(e models.HistoryEntry) models.HistoryEntry {
	if e.NutritionData != nil || e.Summary == nil {
		return e
	}

	rec := &models.NutritionRecord{
		Food:     e.FoodName,
		Calories: e.Summary.Calories,
		Macros:   e.Summary.Macros,
		RenalDiet: models.RenalAssessment{
			OverallSafetyFlag: models.SafetyCaution,
			PotassiumLevel:    models.LevelModerate,
			PhosphorusLevel:   models.LevelModerate,
			SodiumLevel:       models.LevelModerate,
			ProteinLevel:      models.LevelModerate,
			Recommendation:    "Migrated from summary data; re-analyze for a full assessment.",
		},
	}
	for _, v := range e.Summary.Vitamins {
		switch v.Name {
		case "vitaminA":
			rec.Vitamins.VitaminA = v.Amount
		case "vitaminC":
			rec.Vitamins.VitaminC = v.Amount
		case "vitaminD":
			rec.Vitamins.VitaminD = v.Amount
		case "vitaminE":
			rec.Vitamins.VitaminE = v.Amount
		case "vitaminK":
			rec.Vitamins.VitaminK = v.Amount
		case "thiamin":
			rec.Vitamins.Thiamin = v.Amount
		case "riboflavin":
			rec.Vitamins.Riboflavin = v.Amount
		case "niacin":
			rec.Vitamins.Niacin = v.Amount
		case "vitaminB6":
			rec.Vitamins.VitaminB6 = v.Amount
		case "vitaminB12":
			rec.Vitamins.VitaminB12 = v.Amount
		case "folate":
			rec.Vitamins.Folate = v.Amount
		}
	}
	for _, m := range e.Summary.Minerals {
		switch m.Name {
		case "calcium":
			rec.Minerals.Calcium = m.Amount
		case "iron":
			rec.Minerals.Iron = m.Amount
		case "magnesium":
			rec.Minerals.Magnesium = m.Amount
		case "phosphorus":
			rec.Minerals.Phosphorus = m.Amount
		case "potassium":
			rec.Minerals.Potassium = m.Amount
		case "sodium":
			rec.Minerals.Sodium = m.Amount
		case "zinc":
			rec.Minerals.Zinc = m.Amount
		case "selenium":
			rec.Minerals.Selenium = m.Amount
		}
	}

	e.NutritionData = rec
	return e
}
