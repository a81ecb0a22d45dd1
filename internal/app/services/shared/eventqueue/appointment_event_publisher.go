package eventqueue

import (
	"context"
	"fmt"
	"hospital-web-service/internal/app/contracts"
	"hospital-web-service/internal/app/models"
	"hospital-web-service/internal/pkg/constvars"
	"hospital-web-service/internal/pkg/exceptions"
	"hospital-web-service/internal/pkg/utils"
	"sync"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Publisher sends appointment events to a durable queue and waits for the
// broker to confirm each message.
type Publisher struct {
	ch        *amqp.Channel
	log       *zap.Logger
	queueName string
	confirms  chan amqp.Confirmation
	mu        sync.Mutex
}

func NewPublisher(conn *amqp.Connection, queueName string, log *zap.Logger) (*Publisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	)
	if err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	return &Publisher{
		ch:        ch,
		log:       log,
		queueName: queueName,
		confirms:  ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
	}, nil
}

func (p *Publisher) PublishAppointmentBooked(ctx context.Context, event *models.AppointmentBookedEvent) error {
	requestID := utils.GetRequestID(ctx)
	p.log.Info("Publisher.PublishAppointmentBooked called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, p.queueName),
	)

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:   constvars.MIMEApplicationJSON,
		Body:          body,
		DeliveryMode:  amqp.Persistent,
		CorrelationId: requestID,
		Type:          "appointment.booked",
	}

	if err := p.ch.PublishWithContext(ctx, "", p.queueName, false, false, msg); err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.queueName)
	}

	select {
	case confirmed := <-p.confirms:
		if !confirmed.Ack {
			return exceptions.ErrRabbitMQPublishMessage(fmt.Errorf("message not confirmed"), p.queueName)
		}
	case <-ctx.Done():
		return exceptions.ErrRabbitMQPublishMessage(ctx.Err(), p.queueName)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.ch.Close()
}

type logPublisher struct {
	log *zap.Logger
}

// NewLogPublisher returns a publisher that only logs events, for
// deployments without a broker.
func NewLogPublisher(log *zap.Logger) contracts.EventPublisher {
	return &logPublisher{log: log}
}

func (p *logPublisher) PublishAppointmentBooked(ctx context.Context, event *models.AppointmentBookedEvent) error {
	utils.LogBusinessEvent(p.log, "appointment.booked", event.RequestID,
		zap.Int(constvars.LoggingDoctorIDKey, event.DoctorID),
		zap.String("start", event.Start),
	)
	return nil
}
