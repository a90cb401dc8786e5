package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/verbquiz/api/internal/middleware"
	"github.com/verbquiz/api/internal/service"
)

type SessionHandler struct {
	lifecycle *service.Lifecycle
}

func NewSessionHandler(lifecycle *service.Lifecycle) *SessionHandler {
	return &SessionHandler{lifecycle: lifecycle}
}

// Request bodies are bound permissively: missing fields default to their zero
// value instead of producing a 400. The quiz client is trusted.
type CreateSessionRequest struct {
	Mode       string `json:"mode"`
	TotalVerbs int    `json:"total_verbs"`
}

type CompleteSessionRequest struct {
	TotalCorrect int                  `json:"total_correct"`
	TotalErrors  int                  `json:"total_errors"`
	Rounds       int                  `json:"rounds"`
	Errors       []service.ErrorTally `json:"errors"`
}

type PauseSessionRequest struct {
	State        json.RawMessage `json:"state"`
	TotalCorrect int             `json:"total_correct"`
	TotalErrors  int             `json:"total_errors"`
	Rounds       int             `json:"rounds"`
}

func (h *SessionHandler) Create(c *gin.Context) {
	var req CreateSessionRequest
	c.ShouldBindJSON(&req)

	id, err := h.lifecycle.StartSession(req.Mode, req.TotalVerbs)
	if err != nil {
		log.Printf("Failed to create session: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	middleware.RecordSessionStarted(req.Mode)
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *SessionHandler) Complete(c *gin.Context) {
	// An unparsable or unknown id makes the update a zero-row no-op; the
	// call still reports success.
	sessionID, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	var req CompleteSessionRequest
	c.ShouldBindJSON(&req)

	if err := h.lifecycle.CompleteSession(sessionID, req.TotalCorrect, req.TotalErrors, req.Rounds, req.Errors); err != nil {
		log.Printf("Failed to complete session %d: %v", sessionID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	middleware.RecordSessionCompleted()
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *SessionHandler) Pause(c *gin.Context) {
	sessionID, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	var req PauseSessionRequest
	c.ShouldBindJSON(&req)

	if err := h.lifecycle.PauseSession(sessionID, req.TotalCorrect, req.TotalErrors, req.Rounds, req.State); err != nil {
		log.Printf("Failed to pause session %d: %v", sessionID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Pending returns the resumable session, or a JSON null when there is none.
func (h *SessionHandler) Pending(c *gin.Context) {
	pending, err := h.lifecycle.GetPendingSession()
	if err != nil {
		log.Printf("Failed to fetch pending session: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	c.JSON(http.StatusOK, pending)
}
