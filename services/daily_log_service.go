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

const dailyLogKey = "daily_food_logs"

// DailyLogService is the per-date consumption ledger. Same best-effort
// persistence policy as the history service.
type DailyLogService struct {
	store   storage.Store
	history *HistoryService
	bus     *NoticeBus
}

func NewDailyLogService(store storage.Store, history *HistoryService, bus *NoticeBus) *DailyLogService {
	return &DailyLogService{store: store, history: history, bus: bus}
}

// AddEntry assigns an id and timestamp, defaults the date to local today and
// appends to the list. Insertion order, not display order.
func (s *DailyLogService) AddEntry(entry models.LogEntry) *models.LogEntry {
	entry.ID = uuid.NewString()
	entry.Timestamp = time.Now()
	if entry.Date == "" {
		entry.Date = utils.LocalDate(entry.Timestamp)
	}

	entries := s.readAll()
	entries = append(entries, entry)
	s.writeAll(entries)

	return &entry
}

func (s *DailyLogService) GetAll() []models.LogEntry {
	return s.readAll()
}

// GetForDate filters by exact date-string equality.
func (s *DailyLogService) GetForDate(date string) []models.LogEntry {
	var out []models.LogEntry
	for _, e := range s.readAll() {
		if e.Date == date {
			out = append(out, e)
		}
	}
	return out
}

// GetDailyAggregates groups entries by date and sums the tracked figures per
// bucket. Sums are order-independent; buckets come back sorted descending by
// date string, which is chronological because the format is zero-padded ISO.
func (s *DailyLogService) GetDailyAggregates() []models.DailyAggregate {
	buckets := make(map[string]*models.DailyAggregate)
	for _, e := range s.readAll() {
		agg, ok := buckets[e.Date]
		if !ok {
			agg = &models.DailyAggregate{Date: e.Date}
			buckets[e.Date] = agg
		}
		agg.Entries = append(agg.Entries, e)
		agg.TotalWeight += e.WeightGrams
		agg.TotalCalories += e.Calories
		agg.TotalPotassium += e.Potassium
		agg.TotalPhosphorus += e.Phosphorus
		agg.TotalSodium += e.Sodium
	}

	out := make([]models.DailyAggregate, 0, len(buckets))
	for _, agg := range buckets {
		out = append(out, *agg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}

// DeleteEntry removes by id; absent ids are a no-op.
func (s *DailyLogService) DeleteEntry(id string) {
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

func (s *DailyLogService) ClearAll() {
	if err := s.store.Delete(dailyLogKey); err != nil {
		log.Printf("daily log clear failed: %v", err)
		s.bus.Notify("daily_log", "Could not clear the food log. Please try again.")
	}
}

// UpdateEntry merges the non-nil fields of upd into the matching entry. Its
// main caller attaches the history back-reference once a deferred history
// save completes.
func (s *DailyLogService) UpdateEntry(id string, upd models.LogEntryUpdate) *models.LogEntry {
	entries := s.readAll()
	var updated *models.LogEntry
	for i := range entries {
		if entries[i].ID != id {
			continue
		}
		e := &entries[i]
		if upd.FoodName != nil {
			e.FoodName = *upd.FoodName
		}
		if upd.WeightGrams != nil {
			e.WeightGrams = *upd.WeightGrams
		}
		if upd.Calories != nil {
			e.Calories = *upd.Calories
		}
		if upd.Potassium != nil {
			e.Potassium = *upd.Potassium
		}
		if upd.Phosphorus != nil {
			e.Phosphorus = *upd.Phosphorus
		}
		if upd.Sodium != nil {
			e.Sodium = *upd.Sodium
		}
		if upd.HistoryID != nil {
			e.HistoryID = *upd.HistoryID
		}
		updated = e
		break
	}
	if updated == nil {
		return nil
	}
	s.writeAll(entries)
	return updated
}

// GetFullNutritionData resolves an entry's nutrition: through its history
// back-reference when present, else its inline custom snapshot, else nil.
// This is the join point between the two stores.
func (s *DailyLogService) GetFullNutritionData(entry models.LogEntry) *models.NutritionRecord {
	if entry.HistoryID != "" && s.history != nil {
		for _, h := range s.history.GetAll() {
			if h.ID == entry.HistoryID {
				return h.NutritionData
			}
		}
	}
	return entry.CustomNutrition
}

// FormatDate renders a log date for display ("Today", "Yesterday", ...).
func (s *DailyLogService) FormatDate(date string) string {
	return utils.FormatDate(date, time.Now())
}

func (s *DailyLogService) readAll() []models.LogEntry {
	raw, ok, err := s.store.Get(dailyLogKey)
	if err != nil {
		log.Printf("daily log read failed: %v", err)
		return nil
	}
	if !ok {
		return nil
	}
	var entries []models.LogEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		log.Printf("daily log decode failed: %v", err)
		return nil
	}
	return entries
}

func (s *DailyLogService) writeAll(entries []models.LogEntry) {
	raw, err := json.Marshal(entries)
	if err != nil {
		log.Printf("daily log encode failed: %v", err)
		return
	}
	if err := s.store.Set(dailyLogKey, raw); err != nil {
		log.Printf("daily log write failed: %v", err)
		s.bus.Notify("daily_log", "Could not save to your food log. Please try again.")
	}
}
