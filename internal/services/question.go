package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/HumoyunMamasodiqov/level-test/internal/models"

	"gorm.io/gorm"
)

type QuestionService struct {
	db           *gorm.DB
	mediaBaseURL string
}

func NewQuestionService(db *gorm.DB, mediaBaseURL string) *QuestionService {
	return &QuestionService{db: db, mediaBaseURL: mediaBaseURL}
}

// AnswerOption deliberately omits the correctness flag: grading happens
// server-side only, the client never learns which option is right.
type AnswerOption struct {
	ID         uint   `json:"id"`
	AnswerText string `json:"answer_text"`
}

type DeliveredQuestion struct {
	ID           uint           `json:"id"`
	QuestionText string         `json:"question_text"`
	Answers      []AnswerOption `json:"answers"`
	ImageURL     string         `json:"image_url,omitempty"`
}

type QuestionSet struct {
	Questions []DeliveredQuestion
	LevelName string
	TimeLimit int
}

// GetQuestionsForSession picks a random sample of active questions for the
// session's level, sized to the level's question count. Fewer available
// questions than requested is not an error: everything there is gets served.
func (s *QuestionService) GetQuestionsForSession(sessionID string) (*QuestionSet, error) {
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
	if session.Level == nil {
		return nil, ErrLevelNotFound
	}
	level := session.Level

	var questions []models.Question
	err = s.db.Where("level_id = ? AND is_active = ?", level.ID, true).
		Order("RANDOM()").
		Limit(level.QuestionCount).
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order(`"order" ASC`)
		}).
		Find(&questions).Error
	if err != nil {
		return nil, err
	}

	delivered := make([]DeliveredQuestion, 0, len(questions))
	for _, q := range questions {
		answers := make([]AnswerOption, 0, len(q.Answers))
		for _, a := range q.Answers {
			answers = append(answers, AnswerOption{ID: a.ID, AnswerText: a.AnswerText})
		}

		dq := DeliveredQuestion{
			ID:           q.ID,
			QuestionText: q.QuestionText,
			Answers:      answers,
		}
		if q.Image != "" {
			dq.ImageURL = s.imageURL(q.Image)
		}
		delivered = append(delivered, dq)
	}

	return &QuestionSet{
		Questions: delivered,
		LevelName: level.Name,
		TimeLimit: level.TimeLimit,
	}, nil
}

func (s *QuestionService) imageURL(image string) string {
	return strings.TrimRight(s.mediaBaseURL, "/") + "/" + strings.TrimLeft(image, "/")
}

type AnswerInput struct {
	AnswerText string `json:"answer_text" binding:"required"`
	IsCorrect  bool   `json:"is_correct"`
	Order      int    `json:"order"`
}

type QuestionInput struct {
	QuestionText string        `json:"question_text"`
	Explanation  string        `json:"explanation"`
	Image        string        `json:"image"`
	IsActive     *bool         `json:"is_active"`
	Answers      []AnswerInput `json:"answers"`
}

func (i QuestionInput) validate() error {
	if strings.TrimSpace(i.QuestionText) == "" {
		return fmt.Errorf("%w: question_text is required", ErrValidation)
	}
	return nil
}

func (s *QuestionService) CreateQuestion(levelID uint, input QuestionInput) (*models.Question, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	var level models.Level
	if err := s.db.First(&level, levelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLevelNotFound
		}
		return nil, err
	}

	question := models.Question{
		LevelID:      level.ID,
		QuestionText: input.QuestionText,
		Explanation:  input.Explanation,
		Image:        input.Image,
		IsActive:     activeOrDefault(input.IsActive),
	}
	for _, a := range input.Answers {
		question.Answers = append(question.Answers, models.Answer{
			AnswerText: a.AnswerText,
			IsCorrect:  a.IsCorrect,
			Order:      a.Order,
		})
	}

	if err := s.db.Create(&question).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

// UpdateQuestion rewrites the question row and replaces its answer rows
// wholesale, keeping display order authoritative from the input.
func (s *QuestionService) UpdateQuestion(questionID uint, input QuestionInput) (*models.Question, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	var question models.Question
	if err := s.db.First(&question, questionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		question.QuestionText = input.QuestionText
		question.Explanation = input.Explanation
		question.Image = input.Image
		question.IsActive = activeOrDefault(input.IsActive)
		if err := tx.Save(&question).Error; err != nil {
			return err
		}

		if err := tx.Where("question_id = ?", question.ID).Delete(&models.Answer{}).Error; err != nil {
			return err
		}
		for _, a := range input.Answers {
			answer := models.Answer{
				QuestionID: question.ID,
				AnswerText: a.AnswerText,
				IsCorrect:  a.IsCorrect,
				Order:      a.Order,
			}
			if err := tx.Create(&answer).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = s.db.Preload("Answers", func(db *gorm.DB) *gorm.DB {
		return db.Order(`"order" ASC`)
	}).First(&question, question.ID).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (s *QuestionService) DeleteQuestion(questionID uint) error {
	res := s.db.Delete(&models.Question{}, questionID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrQuestionNotFound
	}
	return nil
}
