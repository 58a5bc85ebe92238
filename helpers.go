package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadolammi/atsworker/internal/ats"
	"github.com/streadway/amqp"
)

// CleanAgentText strips a surrounding markdown code fence from agent output.
func CleanAgentText(input string) string {
	clean := strings.TrimSpace(input)

	// Remove opening ``` with optional language tag
	if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
		if nl := strings.IndexAny(clean, "\r\n"); nl >= 0 && !strings.Contains(clean[:nl], " ") {
			clean = clean[nl:]
		}
	}
	clean = strings.TrimLeft(clean, "\r\n")
	clean = strings.TrimSuffix(clean, "```")

	return strings.TrimSpace(clean)
}

// maxNarrativeResumeChars keeps the agent prompt bounded.
const maxNarrativeResumeChars = 6000

// narrativeMessage builds the agent input from the computed report.
func narrativeMessage(session Session, resumeText string, report ats.Result) (string, error) {
	reportJSON, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}
	if r := []rune(resumeText); len(r) > maxNarrativeResumeChars {
		resumeText = string(r[:maxNarrativeResumeChars])
	}
	return fmt.Sprintf(
		"Job Title:\n%s\n\nJob Description:\n%s\n\nATS Report:\n%s\n\nResume:\n%s",
		session.JobTitle,
		session.JobDescription,
		reportJSON,
		resumeText,
	), nil
}

func statusUpdate(sessionID uuid.UUID, status, message string) map[string]any {
	return map[string]any{
		"session_id": sessionID,
		"status":     status,
		"message":    message,
		"timestamp":  time.Now(),
	}
}

type amqpPublisher struct {
	conn     *amqp.Connection
	exchange string
}

// newAMQPPublisher declares the topic exchange session updates go to.
func newAMQPPublisher(conn *amqp.Connection, exchange string) (*amqpPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	defer ch.Close()
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}
	return &amqpPublisher{conn: conn, exchange: exchange}, nil
}

func (p *amqpPublisher) Publish(sessionID string, update map[string]any) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	body, err := json.Marshal(update)
	if err != nil {
		return err
	}

	return ch.Publish(
		p.exchange,
		routingKey(sessionID),
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}

func routingKey(sessionID string) string {
	return fmt.Sprintf("session.%s", sessionID)
}
