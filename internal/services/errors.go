package services

import "errors"

var (
	ErrValidation       = errors.New("validation failed")
	ErrLevelNotFound    = errors.New("level not found")
	ErrSessionNotFound  = errors.New("session not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrResultNotFound   = errors.New("test result not found")
	ErrAlreadySubmitted = errors.New("test already submitted")
)
