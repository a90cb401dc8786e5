package model

import (
	"time"

	"gorm.io/datatypes"
)

// Session is one quiz attempt. A session is open while CompletedAt is nil;
// once CompletedAt is set the row is never written again.
type Session struct {
	ID           int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	StartedAt    time.Time      `gorm:"not null;index" json:"started_at"`
	CompletedAt  *time.Time     `json:"completed_at"`
	Mode         string         `gorm:"size:50" json:"mode"`
	TotalVerbs   int            `gorm:"not null;default:0" json:"total_verbs"`
	TotalCorrect int            `gorm:"not null;default:0" json:"total_correct"`
	TotalErrors  int            `gorm:"not null;default:0" json:"total_errors"`
	Rounds       int            `gorm:"not null;default:0" json:"rounds"`
	PauseState   datatypes.JSON `json:"-"`
}

func (Session) TableName() string {
	return "sessions"
}

// Completed reports whether the session has been finalized.
func (s *Session) Completed() bool {
	return s.CompletedAt != nil
}

// SessionError records how many times one verb was missed within one session.
// Rows are inserted at completion only; duplicates for the same (session, verb)
// pair are allowed, so readers must aggregate with SUM.
type SessionError struct {
	ID         int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	SessionID  int64 `gorm:"not null;index" json:"session_id"`
	VerbID     int64 `gorm:"not null;index" json:"verb_id"`
	ErrorCount int   `gorm:"not null" json:"error_count"`
}

func (SessionError) TableName() string {
	return "session_errors"
}
