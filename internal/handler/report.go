package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/verbquiz/api/internal/service"
)

type ReportHandler struct {
	reporting *service.Reporting
}

func NewReportHandler(reporting *service.Reporting) *ReportHandler {
	return &ReportHandler{reporting: reporting}
}

// Suivi renders the parent dashboard. Storage failures degrade to an empty
// report rather than an error page.
func (h *ReportHandler) Suivi(c *gin.Context) {
	sessions, err := h.reporting.ListCompletedSessions()
	if err != nil {
		log.Printf("Failed to list completed sessions: %v", err)
		sessions = []service.CompletedSession{}
	}

	hardVerbs, err := h.reporting.HardestVerbs(10)
	if err != nil {
		log.Printf("Failed to rank hardest verbs: %v", err)
		hardVerbs = []service.HardestVerb{}
	}

	stats := h.reporting.SummaryStats(sessions)

	c.HTML(http.StatusOK, "suivi.html", gin.H{
		"sessions":   sessions,
		"hard_verbs": hardVerbs,
		"stats":      stats,
	})
}
