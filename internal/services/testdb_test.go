package services

import (
	"fmt"
	"testing"

	"github.com/HumoyunMamasodiqov/level-test/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	err = db.AutoMigrate(
		&models.Level{},
		&models.Question{},
		&models.Answer{},
		&models.TestSession{},
		&models.TestResult{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	return db
}

type sentMessage struct {
	ChatID string
	Text   string
}

type fakeSink struct {
	sent []sentMessage
	err  error
}

func (f *fakeSink) SendMessage(chatID, text string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMessage{ChatID: chatID, Text: text})
	return nil
}

func seedLevel(t *testing.T, db *gorm.DB, code string, questionCount, timeLimit int) *models.Level {
	t.Helper()

	level := models.Level{
		Name:          "Level " + code,
		Code:          code,
		TimeLimit:     timeLimit,
		QuestionCount: questionCount,
		IsActive:      true,
	}
	if err := db.Create(&level).Error; err != nil {
		t.Fatalf("seed level: %v", err)
	}
	return &level
}

// seedQuestion creates an active question with one correct answer followed by
// two wrong ones. Returns the question with its answers loaded.
func seedQuestion(t *testing.T, db *gorm.DB, levelID uint, text string) *models.Question {
	t.Helper()

	question := models.Question{
		LevelID:      levelID,
		QuestionText: text,
		IsActive:     true,
		Answers: []models.Answer{
			{AnswerText: "right", IsCorrect: true, Order: 1},
			{AnswerText: "wrong one", IsCorrect: false, Order: 2},
			{AnswerText: "wrong two", IsCorrect: false, Order: 3},
		},
	}
	if err := db.Create(&question).Error; err != nil {
		t.Fatalf("seed question: %v", err)
	}
	return &question
}

func correctAnswerID(t *testing.T, q *models.Question) uint {
	t.Helper()
	for _, a := range q.Answers {
		if a.IsCorrect {
			return a.ID
		}
	}
	t.Fatalf("question %d has no correct answer", q.ID)
	return 0
}

func wrongAnswerID(t *testing.T, q *models.Question) uint {
	t.Helper()
	for _, a := range q.Answers {
		if !a.IsCorrect {
			return a.ID
		}
	}
	t.Fatalf("question %d has no wrong answer", q.ID)
	return 0
}

func startSession(t *testing.T, db *gorm.DB, notifier *NotifierService, levelID uint) string {
	t.Helper()

	svc := NewSessionService(db, notifier)
	res, err := svc.StartSession(StartSessionInput{
		LevelID:   levelID,
		FirstName: "Ali",
		LastName:  "Valiyev",
	})
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	return res.SessionID
}

func silentNotifier() *NotifierService {
	return NewNotifierService(&fakeSink{}, "admin-chat")
}

func boolPtr(b bool) *bool {
	return &b
}
