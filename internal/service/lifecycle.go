package service

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/verbquiz/api/internal/catalog"
	"github.com/verbquiz/api/internal/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Lifecycle drives a session from creation through pause checkpoints to
// completion. Writes against missing or already-completed sessions affect
// zero rows and are reported as success; callers get an error only when the
// store itself fails.
type Lifecycle struct {
	db      *gorm.DB
	catalog *catalog.Catalog
}

func NewLifecycle(db *gorm.DB, cat *catalog.Catalog) *Lifecycle {
	return &Lifecycle{db: db, catalog: cat}
}

// ErrorTally is one client-reported (verb, miss count) pair.
type ErrorTally struct {
	VerbID int64 `json:"verb_id"`
	Count  int   `json:"count"`
}

// PendingSession is an open, paused session with its saved quiz state
// decoded for the client.
type PendingSession struct {
	ID           int64           `json:"id"`
	StartedAt    time.Time       `json:"started_at"`
	Mode         string          `json:"mode"`
	TotalVerbs   int             `json:"total_verbs"`
	TotalCorrect int             `json:"total_correct"`
	TotalErrors  int             `json:"total_errors"`
	Rounds       int             `json:"rounds"`
	State        json.RawMessage `json:"state"`
}

// StartSession creates an open session and returns its id. Mode is an opaque
// client tag; a negative verb count is normalized to zero.
func (s *Lifecycle) StartSession(mode string, totalVerbs int) (int64, error) {
	if totalVerbs < 0 {
		totalVerbs = 0
	}

	session := model.Session{
		StartedAt:  time.Now(),
		Mode:       mode,
		TotalVerbs: totalVerbs,
	}
	if err := s.db.Create(&session).Error; err != nil {
		return 0, err
	}

	return session.ID, nil
}

// CompleteSession finalizes a session: sets completed_at, overwrites the
// counters, clears any pause checkpoint and records the error tallies.
// Tallies referencing verbs outside the catalog are skipped.
func (s *Lifecycle) CompleteSession(sessionID int64, totalCorrect, totalErrors, rounds int, tallies []ErrorTally) error {
	updates := map[string]interface{}{
		"completed_at":  time.Now(),
		"total_correct": totalCorrect,
		"total_errors":  totalErrors,
		"rounds":        rounds,
		"pause_state":   nil,
	}
	if err := s.db.Model(&model.Session{}).Where("id = ?", sessionID).Updates(updates).Error; err != nil {
		return err
	}

	for _, t := range tallies {
		if t.Count < 1 {
			continue
		}
		if !s.catalog.Has(t.VerbID) {
			log.Printf("Skipping error tally for unknown verb %d (session %d)", t.VerbID, sessionID)
			continue
		}
		row := model.SessionError{
			SessionID:  sessionID,
			VerbID:     t.VerbID,
			ErrorCount: t.Count,
		}
		if err := s.db.Create(&row).Error; err != nil {
			return err
		}
	}

	return nil
}

// PauseSession saves a checkpoint on an open session. The update is
// conditioned on completed_at being null: pausing a completed or missing
// session changes nothing and still succeeds.
func (s *Lifecycle) PauseSession(sessionID int64, totalCorrect, totalErrors, rounds int, state json.RawMessage) error {
	if len(state) == 0 {
		state = json.RawMessage("null")
	}

	result := s.db.Model(&model.Session{}).
		Where("id = ? AND completed_at IS NULL", sessionID).
		Updates(map[string]interface{}{
			"total_correct": totalCorrect,
			"total_errors":  totalErrors,
			"rounds":        rounds,
			"pause_state":   datatypes.JSON(state),
		})
	if result.Error != nil {
		return result.Error
	}

	return nil
}

// GetPendingSession returns the most recently started open session that has a
// saved checkpoint, or nil when there is none.
func (s *Lifecycle) GetPendingSession() (*PendingSession, error) {
	var session model.Session
	err := s.db.
		Where("completed_at IS NULL AND pause_state IS NOT NULL").
		Order("started_at DESC").
		First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &PendingSession{
		ID:           session.ID,
		StartedAt:    session.StartedAt,
		Mode:         session.Mode,
		TotalVerbs:   session.TotalVerbs,
		TotalCorrect: session.TotalCorrect,
		TotalErrors:  session.TotalErrors,
		Rounds:       session.Rounds,
		State:        json.RawMessage(session.PauseState),
	}, nil
}
