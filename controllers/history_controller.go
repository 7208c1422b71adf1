package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nishantjoshi-007/NutriScan/models"
	"github.com/nishantjoshi-007/NutriScan/services"
)

type HistoryController struct {
	svc *services.HistoryService
}

func NewHistoryController(svc *services.HistoryService) *HistoryController {
	return &HistoryController{svc: svc}
}

// POST /history
// Persistence is best-effort by design: the entry is always returned with its
// new id, even if the write behind it failed (the client gets a notice over
// the websocket channel in that case).
func (hc *HistoryController) Save(c *gin.Context) {
	var entry models.HistoryEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	saved := hc.svc.Save(entry)
	c.JSON(http.StatusOK, saved)
}

// GET /history
func (hc *HistoryController) GetAll(c *gin.Context) {
	entries := hc.svc.GetAll()

	type entryView struct {
		models.HistoryEntry
		DisplayTime string `json:"displayTime"`
	}
	out := make([]entryView, 0, len(entries))
	for _, e := range entries {
		out = append(out, entryView{
			HistoryEntry: e,
			DisplayTime:  hc.svc.FormatTimestamp(e.Timestamp),
		})
	}
	c.JSON(http.StatusOK, out)
}

// GET /history/stats
func (hc *HistoryController) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, hc.svc.Stats())
}

// DELETE /history/:id — deleting an unknown id is a no-op, not an error.
func (hc *HistoryController) DeleteOne(c *gin.Context) {
	hc.svc.DeleteOne(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}

// DELETE /history
func (hc *HistoryController) ClearAll(c *gin.Context) {
	hc.svc.ClearAll()
	c.JSON(http.StatusOK, gin.H{"cleared": true})
}
