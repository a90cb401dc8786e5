package service

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/verbquiz/api/internal/catalog"
	"github.com/verbquiz/api/internal/database"
	"github.com/verbquiz/api/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// A pooled :memory: DSN would hand each connection its own database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	if err := database.Seed(db); err != nil {
		t.Fatalf("failed to seed test database: %v", err)
	}

	return db
}

type LifecycleTestSuite struct {
	suite.Suite
	db        *gorm.DB
	lifecycle *Lifecycle
}

func (s *LifecycleTestSuite) SetupTest() {
	s.db = openTestDB(s.T())

	cat, err := catalog.New(s.db)
	s.Require().NoError(err)

	s.lifecycle = NewLifecycle(s.db, cat)
}

func TestLifecycleTestSuite(t *testing.T) {
	suite.Run(t, new(LifecycleTestSuite))
}

func (s *LifecycleTestSuite) TestStartSession() {
	id, err := s.lifecycle.StartSession("random", 20)
	s.Require().NoError(err)
	s.Require().NotZero(id)

	var session model.Session
	s.Require().NoError(s.db.First(&session, id).Error)
	s.Equal("random", session.Mode)
	s.Equal(20, session.TotalVerbs)
	s.Equal(0, session.TotalCorrect)
	s.Equal(0, session.TotalErrors)
	s.Equal(0, session.Rounds)
	s.Nil(session.CompletedAt)
	s.False(session.StartedAt.IsZero())
}

func (s *LifecycleTestSuite) TestStartSessionNormalizesNegativeCount() {
	id, err := s.lifecycle.StartSession("", -5)
	s.Require().NoError(err)

	var session model.Session
	s.Require().NoError(s.db.First(&session, id).Error)
	s.Equal(0, session.TotalVerbs)
	s.Equal("", session.Mode)
}

func (s *LifecycleTestSuite) TestFreshSessionIsNotPending() {
	_, err := s.lifecycle.StartSession("random", 20)
	s.Require().NoError(err)

	pending, err := s.lifecycle.GetPendingSession()
	s.Require().NoError(err)
	s.Nil(pending)
}

func (s *LifecycleTestSuite) TestPauseThenResume() {
	id, err := s.lifecycle.StartSession("random", 20)
	s.Require().NoError(err)

	state := json.RawMessage(`{"round":3,"remaining":[7,12]}`)
	s.Require().NoError(s.lifecycle.PauseSession(id, 5, 2, 3, state))

	pending, err := s.lifecycle.GetPendingSession()
	s.Require().NoError(err)
	s.Require().NotNil(pending)
	s.Equal(id, pending.ID)
	s.Equal(5, pending.TotalCorrect)
	s.Equal(2, pending.TotalErrors)
	s.Equal(3, pending.Rounds)
	s.JSONEq(string(state), string(pending.State))
}

func (s *LifecycleTestSuite) TestPendingPicksMostRecentlyStarted() {
	older := model.Session{StartedAt: time.Now().Add(-time.Hour), Mode: "random", TotalVerbs: 10}
	newer := model.Session{StartedAt: time.Now(), Mode: "random", TotalVerbs: 10}
	s.Require().NoError(s.db.Create(&older).Error)
	s.Require().NoError(s.db.Create(&newer).Error)

	s.Require().NoError(s.lifecycle.PauseSession(older.ID, 1, 1, 1, json.RawMessage(`{"round":1}`)))
	s.Require().NoError(s.lifecycle.PauseSession(newer.ID, 2, 0, 1, json.RawMessage(`{"round":2}`)))

	pending, err := s.lifecycle.GetPendingSession()
	s.Require().NoError(err)
	s.Require().NotNil(pending)
	s.Equal(newer.ID, pending.ID)
}

func (s *LifecycleTestSuite) TestCompleteSession() {
	id, err := s.lifecycle.StartSession("random", 20)
	s.Require().NoError(err)
	s.Require().NoError(s.lifecycle.PauseSession(id, 5, 2, 3, json.RawMessage(`{"round":3}`)))

	err = s.lifecycle.CompleteSession(id, 18, 2, 4, []ErrorTally{{VerbID: 7, Count: 2}})
	s.Require().NoError(err)

	// No longer resumable
	pending, err := s.lifecycle.GetPendingSession()
	s.Require().NoError(err)
	s.Nil(pending)

	var session model.Session
	s.Require().NoError(s.db.First(&session, id).Error)
	s.Require().NotNil(session.CompletedAt)
	s.Equal(18, session.TotalCorrect)
	s.Equal(2, session.TotalErrors)
	s.Equal(4, session.Rounds)

	var tallies []model.SessionError
	s.Require().NoError(s.db.Where("session_id = ?", id).Find(&tallies).Error)
	s.Require().Len(tallies, 1)
	s.Equal(int64(7), tallies[0].VerbID)
	s.Equal(2, tallies[0].ErrorCount)
}

func (s *LifecycleTestSuite) TestCompleteSkipsUnknownVerbs() {
	id, err := s.lifecycle.StartSession("random", 20)
	s.Require().NoError(err)

	err = s.lifecycle.CompleteSession(id, 10, 3, 2, []ErrorTally{
		{VerbID: 9999, Count: 3},
		{VerbID: 7, Count: 1},
		{VerbID: 3, Count: 0},
	})
	s.Require().NoError(err)

	var tallies []model.SessionError
	s.Require().NoError(s.db.Where("session_id = ?", id).Find(&tallies).Error)
	s.Require().Len(tallies, 1)
	s.Equal(int64(7), tallies[0].VerbID)
}

func (s *LifecycleTestSuite) TestCompleteMissingSessionIsNoOp() {
	err := s.lifecycle.CompleteSession(424242, 10, 0, 1, nil)
	s.Require().NoError(err)

	var count int64
	s.Require().NoError(s.db.Model(&model.Session{}).Count(&count).Error)
	s.Zero(count)
}

func (s *LifecycleTestSuite) TestPauseCompletedSessionLeavesRowUnchanged() {
	id, err := s.lifecycle.StartSession("random", 20)
	s.Require().NoError(err)
	s.Require().NoError(s.lifecycle.CompleteSession(id, 18, 2, 4, nil))

	err = s.lifecycle.PauseSession(id, 1, 1, 1, json.RawMessage(`{"round":1}`))
	s.Require().NoError(err)

	var session model.Session
	s.Require().NoError(s.db.First(&session, id).Error)
	s.Equal(18, session.TotalCorrect)
	s.Equal(2, session.TotalErrors)
	s.Equal(4, session.Rounds)
	s.Empty(session.PauseState)

	pending, err := s.lifecycle.GetPendingSession()
	s.Require().NoError(err)
	s.Nil(pending)
}

func (s *LifecycleTestSuite) TestPauseWithoutStateStillPending() {
	id, err := s.lifecycle.StartSession("random", 20)
	s.Require().NoError(err)

	s.Require().NoError(s.lifecycle.PauseSession(id, 0, 0, 1, nil))

	pending, err := s.lifecycle.GetPendingSession()
	s.Require().NoError(err)
	s.Require().NotNil(pending)
	s.Equal(id, pending.ID)
}
