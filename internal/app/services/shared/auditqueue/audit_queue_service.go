package auditqueue

import (
	"context"
	"medrecord-service/internal/pkg/constvars"
	"medrecord-service/internal/pkg/exceptions"
	"sync"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// AuditEvent is the payload published for every record mutation.
type AuditEvent struct {
	ID         string    `json:"id"`
	Action     string    `json:"action"`
	PatientID  string    `json:"patient_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// AuditPublisher is the capability record mutations publish through.
type AuditPublisher interface {
	Publish(ctx context.Context, event AuditEvent) error
}

// Service publishes audit events to a durable RabbitMQ queue.
type Service struct {
	ch  *amqp.Channel
	log *zap.Logger
	mu  sync.Mutex
}

// NewService opens a channel and declares the durable audit queue.
func NewService(conn *amqp.Connection, log *zap.Logger) (*Service, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		constvars.AuditQueueName, // name
		true,                     // durable
		false,                    // autoDelete
		false,                    // exclusive
		false,                    // noWait
		nil,                      // args
	)
	if err != nil {
		return nil, err
	}

	return &Service{
		ch:  ch,
		log: log,
	}, nil
}

func (s *Service) Publish(ctx context.Context, event AuditEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err = s.ch.PublishWithContext(ctx,
		"",                       // exchange
		constvars.AuditQueueName, // routing key
		false,                    // mandatory
		false,                    // immediate
		amqp.Publishing{
			ContentType:  constvars.MIMEApplicationJSON,
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, constvars.AuditQueueName)
	}

	s.log.Debug("audit event published",
		zap.String("action", event.Action),
		zap.String(constvars.LoggingPatientIDKey, event.PatientID),
	)
	return nil
}
