package service

import (
	"math"
	"time"

	"github.com/verbquiz/api/internal/model"
	"gorm.io/gorm"
)

// Reporting aggregates completed sessions for the parent dashboard. All
// queries tolerate an empty store and return zero values rather than errors.
type Reporting struct {
	db *gorm.DB
}

func NewReporting(db *gorm.DB) *Reporting {
	return &Reporting{db: db}
}

// ErrorVerb is a verb missed during one session, with its summed miss count.
type ErrorVerb struct {
	VerbID         int64  `json:"verb_id"`
	Infinitive     string `json:"infinitive"`
	PastSimple     string `json:"past_simple"`
	PastParticiple string `json:"past_participle"`
	French         string `json:"french"`
	ErrorCount     int    `json:"error_count"`
}

// CompletedSession is a finished session enriched for display.
type CompletedSession struct {
	ID           int64       `json:"id"`
	StartedAt    time.Time   `json:"started_at"`
	CompletedAt  time.Time   `json:"completed_at"`
	Mode         string      `json:"mode"`
	TotalVerbs   int         `json:"total_verbs"`
	TotalCorrect int         `json:"total_correct"`
	TotalErrors  int         `json:"total_errors"`
	Rounds       int         `json:"rounds"`
	Accuracy     int         `json:"accuracy"`
	ErrorVerbs   []ErrorVerb `json:"error_verbs"`
}

// HardestVerb is a verb ranked by errors accumulated across all sessions.
type HardestVerb struct {
	VerbID            int64  `json:"verb_id"`
	Infinitive        string `json:"infinitive"`
	PastSimple        string `json:"past_simple"`
	PastParticiple    string `json:"past_participle"`
	French            string `json:"french"`
	TotalErrors       int    `json:"total_errors"`
	SessionsWithError int    `json:"sessions_with_error"`
}

// Summary holds the dashboard headline numbers.
type Summary struct {
	TotalSessions int     `json:"total_sessions"`
	AvgAccuracy   int     `json:"avg_accuracy"`
	AvgRounds     float64 `json:"avg_rounds"`
}

// ListCompletedSessions returns finished sessions newest-first, each with its
// error verbs ordered by descending miss count. Duplicate (session, verb)
// rows are summed.
func (r *Reporting) ListCompletedSessions() ([]CompletedSession, error) {
	var sessions []model.Session
	err := r.db.
		Where("completed_at IS NOT NULL").
		Order("started_at DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}

	out := make([]CompletedSession, 0, len(sessions))
	for _, s := range sessions {
		var errorVerbs []ErrorVerb
		err := r.db.Raw(`
			SELECT v.id AS verb_id, v.infinitive, v.past_simple, v.past_participle, v.french,
			       SUM(se.error_count) AS error_count
			FROM session_errors se
			INNER JOIN verbs v ON v.id = se.verb_id
			WHERE se.session_id = ?
			GROUP BY v.id, v.infinitive, v.past_simple, v.past_participle, v.french
			ORDER BY error_count DESC
		`, s.ID).Scan(&errorVerbs).Error
		if err != nil {
			return nil, err
		}

		out = append(out, CompletedSession{
			ID:           s.ID,
			StartedAt:    s.StartedAt,
			CompletedAt:  *s.CompletedAt,
			Mode:         s.Mode,
			TotalVerbs:   s.TotalVerbs,
			TotalCorrect: s.TotalCorrect,
			TotalErrors:  s.TotalErrors,
			Rounds:       s.Rounds,
			Accuracy:     Accuracy(s.TotalCorrect, s.TotalErrors),
			ErrorVerbs:   errorVerbs,
		})
	}

	return out, nil
}

// HardestVerbs ranks verbs by errors summed across every session, most
// missed first. A non-positive limit falls back to 10.
func (r *Reporting) HardestVerbs(limit int) ([]HardestVerb, error) {
	if limit <= 0 {
		limit = 10
	}

	var verbs []HardestVerb
	err := r.db.Raw(`
		SELECT v.id AS verb_id, v.infinitive, v.past_simple, v.past_participle, v.french,
		       SUM(se.error_count) AS total_errors,
		       COUNT(DISTINCT se.session_id) AS sessions_with_error
		FROM session_errors se
		INNER JOIN verbs v ON v.id = se.verb_id
		GROUP BY v.id, v.infinitive, v.past_simple, v.past_participle, v.french
		ORDER BY total_errors DESC
		LIMIT ?
	`, limit).Scan(&verbs).Error
	if err != nil {
		return nil, err
	}

	return verbs, nil
}

// SummaryStats computes the headline numbers for a completed-session list.
func (r *Reporting) SummaryStats(sessions []CompletedSession) Summary {
	if len(sessions) == 0 {
		return Summary{}
	}

	var accuracySum, roundsSum int
	for _, s := range sessions {
		accuracySum += s.Accuracy
		roundsSum += s.Rounds
	}

	n := float64(len(sessions))
	return Summary{
		TotalSessions: len(sessions),
		AvgAccuracy:   int(math.Round(float64(accuracySum) / n)),
		AvgRounds:     math.Round(float64(roundsSum)/n*10) / 10,
	}
}

// Accuracy is the percentage of correct answers, 0 when nothing was answered.
func Accuracy(correct, errors int) int {
	total := correct + errors
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}
