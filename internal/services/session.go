package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/HumoyunMamasodiqov/level-test/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SessionService struct {
	db       *gorm.DB
	notifier *NotifierService
}

func NewSessionService(db *gorm.DB, notifier *NotifierService) *SessionService {
	return &SessionService{db: db, notifier: notifier}
}

type StartSessionInput struct {
	LevelID     uint
	FirstName   string
	LastName    string
	PhoneNumber string
}

type StartSessionResult struct {
	SessionID     string
	TimeLimit     int
	QuestionCount int
}

// StartSession validates the candidate's identity fields, persists a new
// TestSession and announces it to the admin channel. The announcement is
// best effort and never fails the session creation.
func (s *SessionService) StartSession(input StartSessionInput) (*StartSessionResult, error) {
	if input.LevelID == 0 {
		return nil, fmt.Errorf("%w: level_id is required", ErrValidation)
	}

	firstName := strings.TrimSpace(input.FirstName)
	lastName := strings.TrimSpace(input.LastName)
	if firstName == "" || lastName == "" {
		return nil, fmt.Errorf("%w: first_name and last_name are required", ErrValidation)
	}

	var level models.Level
	if err := s.db.First(&level, input.LevelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLevelNotFound
		}
		return nil, err
	}

	session := models.TestSession{
		SessionID:   generateSessionID(),
		LevelID:     &level.ID,
		FirstName:   firstName,
		LastName:    lastName,
		PhoneNumber: strings.TrimSpace(input.PhoneNumber),
	}
	if err := s.db.Create(&session).Error; err != nil {
		return nil, err
	}

	s.notifier.NotifySessionStarted(&session, &level)

	return &StartSessionResult{
		SessionID:     session.SessionID,
		TimeLimit:     level.TimeLimit,
		QuestionCount: level.QuestionCount,
	}, nil
}

// GetByToken looks up a session by its public session_id, with its level.
func (s *SessionService) GetByToken(sessionID string) (*models.TestSession, error) {
	var session models.TestSession
	err := s.db.Preload("Level").
		Where("session_id = ?", sessionID).
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

// generateSessionID builds a date-stamped token like IT_20250901_3F2A8B1C.
// Collision safety comes from the random suffix; the token is not reverified
// against storage.
func generateSessionID() string {
	suffix := strings.ToUpper(uuid.NewString()[:8])
	return fmt.Sprintf("IT_%s_%s", time.Now().Format("20060102"), suffix)
}
