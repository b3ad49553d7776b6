package services

import (
	"fmt"
	"log"

	"github.com/HumoyunMamasodiqov/level-test/internal/models"
)

// Sink is the outbound messaging dependency. Implemented by telegram.Client;
// tests inject fakes.
type Sink interface {
	SendMessage(chatID, text string) error
}

// NotificationOutcome reports whether a best-effort message went out.
// Failures are carried back to the caller instead of being raised.
type NotificationOutcome struct {
	Sent bool
	Err  error
}

// NotifierService formats and sends session/result messages. All sends are
// best effort: a failed delivery is logged and returned as a failed outcome,
// never an error to the workflow.
type NotifierService struct {
	sink        Sink
	adminChatID string
}

func NewNotifierService(sink Sink, adminChatID string) *NotifierService {
	return &NotifierService{sink: sink, adminChatID: adminChatID}
}

func (n *NotifierService) send(chatID, text string) NotificationOutcome {
	if n.sink == nil || chatID == "" {
		return NotificationOutcome{Sent: false, Err: fmt.Errorf("notification sink not configured")}
	}
	if err := n.sink.SendMessage(chatID, text); err != nil {
		log.Printf("notification to %s failed: %v", chatID, err)
		return NotificationOutcome{Sent: false, Err: err}
	}
	return NotificationOutcome{Sent: true}
}

func (n *NotifierService) NotifySessionStarted(session *models.TestSession, level *models.Level) NotificationOutcome {
	phone := session.PhoneNumber
	if phone == "" {
		phone = "not provided"
	}
	text := fmt.Sprintf(
		"🎯 *New test started*\n\n"+
			"👤 *Name:* %s\n"+
			"📞 *Phone:* %s\n"+
			"📊 *Level:* %s\n"+
			"🆔 *Session ID:* `%s`\n"+
			"⏰ *Time limit:* %d min",
		session.FullName(), phone, level.Name, session.SessionID, level.TimeLimit,
	)
	return n.send(n.adminChatID, text)
}

func (n *NotifierService) SendCandidateResult(session *models.TestSession, result *models.TestResult, levelName string) NotificationOutcome {
	text := fmt.Sprintf(
		"🎓 *Level Test Result*\n\n"+
			"👤 *Candidate:* %s\n"+
			"📊 *Level:* %s\n"+
			"⏰ *Time taken:* %s\n\n"+
			"✅ Correct answers: %d/%d\n"+
			"🏆 Score: %.1f%%\n\n"+
			"🆔 *ID:* `%s`\n"+
			"📅 *Date:* %s",
		session.FullName(), levelName, result.TimeTakenDisplay(),
		result.CorrectAnswers, result.TotalQuestions, result.Score,
		session.SessionID, result.CreatedAt.Format("02.01.2006 15:04"),
	)

	switch {
	case result.Score >= 80:
		text += "\n\n🎉 Excellent result! You have mastered this level."
	case result.Score >= 60:
		text += "\n\n👍 Good result! A bit more practice will take you further."
	default:
		text += "\n\n💪 Keep practicing and try again!"
	}

	return n.send(session.PhoneNumber, text)
}

func (n *NotifierService) NotifyAdminResult(session *models.TestSession, result *models.TestResult, levelName string) NotificationOutcome {
	phone := session.PhoneNumber
	if phone == "" {
		phone = "not provided"
	}
	text := fmt.Sprintf(
		"📊 *TEST COMPLETED*\n\n"+
			"👤 *Candidate:* %s\n"+
			"📞 *Phone:* %s\n"+
			"📚 *Level:* %s\n"+
			"⏱ *Time:* %s\n\n"+
			"🎯 Correct answers: %d/%d\n"+
			"🏆 Score: %.1f%%\n\n"+
			"🆔 *Session ID:* `%s`\n"+
			"📅 *Finished at:* %s",
		session.FullName(), phone, levelName, result.TimeTakenDisplay(),
		result.CorrectAnswers, result.TotalQuestions, result.Score,
		session.SessionID, result.CreatedAt.Format("02.01.2006 15:04:05"),
	)
	return n.send(n.adminChatID, text)
}
