package services

import (
	"errors"
	"log"
	"math"
	"time"

	"github.com/HumoyunMamasodiqov/level-test/internal/models"

	"gorm.io/gorm"
)

type ScoringService struct {
	db       *gorm.DB
	notifier *NotifierService
}

func NewScoringService(db *gorm.DB, notifier *NotifierService) *ScoringService {
	return &ScoringService{db: db, notifier: notifier}
}

type SubmittedAnswer struct {
	AnswerID uint `json:"answer_id"`
}

type SubmitResult struct {
	SessionID     string  `json:"session_id"`
	Correct       int     `json:"correct"`
	Total         int     `json:"total"`
	Score         float64 `json:"score"`
	TimeTaken     int     `json:"time_taken"`
	TelegramSent  bool    `json:"telegram_sent"`
	AdminNotified bool    `json:"admin_notified"`
}

// SubmitTest grades a submission and persists exactly one TestResult per
// session. Answer ids are resolved server-side; an unknown id counts as an
// incorrect answer, so the denominator is always the number of submitted
// pairs. A second submission for the same session is a Conflict, enforced by
// the unique index on test_results.session_id.
func (s *ScoringService) SubmitTest(sessionID string, submitted []SubmittedAnswer, timeTaken int) (*SubmitResult, error) {
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

	var existing models.TestResult
	if err := s.db.Where("session_id = ?", session.ID).First(&existing).Error; err == nil {
		return nil, ErrAlreadySubmitted
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	correct, total, err := s.grade(submitted)
	if err != nil {
		return nil, err
	}
	score := computeScore(correct, total)

	result := models.TestResult{
		TestSessionID:  session.ID,
		CorrectAnswers: correct,
		TotalQuestions: total,
		Score:          score,
		TimeTaken:      timeTaken,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		session.Completed = true
		session.EndTime = &now
		if err := tx.Save(&session).Error; err != nil {
			return err
		}
		return tx.Create(&result).Error
	})
	if err != nil {
		// two near-simultaneous submissions race to the unique index
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadySubmitted
		}
		return nil, err
	}

	levelName := ""
	if session.Level != nil {
		levelName = session.Level.Name
	}

	telegramSent := false
	if isNumeric(session.PhoneNumber) {
		telegramSent = s.notifier.SendCandidateResult(&session, &result, levelName).Sent
	}
	adminNotified := s.notifier.NotifyAdminResult(&session, &result, levelName).Sent

	if telegramSent || adminNotified {
		err := s.db.Model(&result).Updates(map[string]interface{}{
			"telegram_sent":  telegramSent,
			"admin_notified": adminNotified,
		}).Error
		if err != nil {
			// the result row itself is already committed
			log.Printf("recording notification flags for %s failed: %v", session.SessionID, err)
		}
	}

	return &SubmitResult{
		SessionID:     session.SessionID,
		Correct:       correct,
		Total:         total,
		Score:         score,
		TimeTaken:     timeTaken,
		TelegramSent:  telegramSent,
		AdminNotified: adminNotified,
	}, nil
}

func (s *ScoringService) grade(submitted []SubmittedAnswer) (correct, total int, err error) {
	total = len(submitted)
	if total == 0 {
		return 0, 0, nil
	}

	ids := make([]uint, 0, total)
	for _, sa := range submitted {
		ids = append(ids, sa.AnswerID)
	}

	var answers []models.Answer
	if err := s.db.Where("id IN ?", ids).Find(&answers).Error; err != nil {
		return 0, 0, err
	}

	correctness := make(map[uint]bool, len(answers))
	for _, a := range answers {
		correctness[a.ID] = a.IsCorrect
	}

	for _, sa := range submitted {
		if correctness[sa.AnswerID] {
			correct++
		}
	}
	return correct, total, nil
}

func computeScore(correct, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(correct)/float64(total)*1000) / 10
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
