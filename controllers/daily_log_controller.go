package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nishantjoshi-007/NutriScan/models"
	"github.com/nishantjoshi-007/NutriScan/services"
)

type DailyLogController struct {
	svc *services.DailyLogService
}

func NewDailyLogController(svc *services.DailyLogService) *DailyLogController {
	return &DailyLogController{svc: svc}
}

// POST /logs
func (dc *DailyLogController) Add(c *gin.Context) {
	var entry models.LogEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if entry.FoodName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "foodName is required"})
		return
	}
	if entry.Date != "" && !validDate(entry.Date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	added := dc.svc.AddEntry(entry)
	c.JSON(http.StatusOK, added)
}

// GET /logs
func (dc *DailyLogController) GetAll(c *gin.Context) {
	c.JSON(http.StatusOK, dc.svc.GetAll())
}

// GET /logs/aggregates
func (dc *DailyLogController) Aggregates(c *gin.Context) {
	aggs := dc.svc.GetDailyAggregates()

	type aggView struct {
		models.DailyAggregate
		DisplayDate string `json:"displayDate"`
	}
	out := make([]aggView, 0, len(aggs))
	for _, a := range aggs {
		out = append(out, aggView{
			DailyAggregate: a,
			DisplayDate:    dc.svc.FormatDate(a.Date),
		})
	}
	c.JSON(http.StatusOK, out)
}

// GET /logs/date/:date
func (dc *DailyLogController) ForDate(c *gin.Context) {
	date := c.Param("date")
	if !validDate(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}
	c.JSON(http.StatusOK, dc.svc.GetForDate(date))
}

// PATCH /logs/:id
func (dc *DailyLogController) Update(c *gin.Context) {
	var upd models.LogEntryUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	updated := dc.svc.UpdateEntry(c.Param("id"), upd)
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "log entry not found"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DELETE /logs/:id
func (dc *DailyLogController) Delete(c *gin.Context) {
	dc.svc.DeleteEntry(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}

// DELETE /logs
func (dc *DailyLogController) ClearAll(c *gin.Context) {
	dc.svc.ClearAll()
	c.JSON(http.StatusOK, gin.H{"cleared": true})
}

// GET /logs/:id/nutrition — resolves the entry's full nutrition record via
// its history back-reference or inline snapshot.
func (dc *DailyLogController) Nutrition(c *gin.Context) {
	id := c.Param("id")
	for _, e := range dc.svc.GetAll() {
		if e.ID != id {
			continue
		}
		rec := dc.svc.GetFullNutritionData(e)
		if rec == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "no nutrition data for this entry"})
			return
		}
		c.JSON(http.StatusOK, rec)
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "log entry not found"})
}

func validDate(date string) bool {
	_, err := time.Parse(models.DateLayout, date)
	return err == nil
}
