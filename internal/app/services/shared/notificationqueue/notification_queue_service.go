package notificationqueue

import (
	"context"
	"fmt"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/exceptions"
	"sync"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Service manages the durable RabbitMQ queues carrying notification events.
// Messages that cannot be decoded are parked on the DLQ so a poison message
// never blocks the consumer.
type Service struct {
	ch        *amqp.Channel
	log       *zap.Logger
	queueName string
	dlqName   string
	confirms  chan amqp.Confirmation
	mu        sync.Mutex
}

// NewService declares the durable queue plus its DLQ, enables publisher
// confirms and sets QoS before any message moves.
func NewService(conn *amqp.Connection, log *zap.Logger, queueName, dlqName string, prefetch int) (*Service, error) {
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

	_, err = ch.QueueDeclare(
		dlqName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, err
	}

	if prefetch <= 0 {
		prefetch = 1
	}
	if err := ch.Qos(prefetch, 0, false); err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	svc := &Service{
		ch:        ch,
		log:       log,
		queueName: queueName,
		dlqName:   dlqName,
		confirms:  ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
	}

	return svc, nil
}

// Publish puts an event on the queue with persistence and waits for the
// broker confirm.
func (s *Service) Publish(ctx context.Context, event *contracts.NotificationEvent) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.log.Info("NotificationQueue.Publish called", zap.String(constvars.LoggingRequestIDKey, requestID))

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	return s.publishRaw(ctx, s.queueName, body)
}

// QueuedItem is a fetched delivery and its decoded payload.
type QueuedItem struct {
	DeliveryTag uint64
	Event       contracts.NotificationEvent
}

// FetchN retrieves up to n messages using basic.get without auto-ack.
func (s *Service) FetchN(ctx context.Context, n int) ([]QueuedItem, error) {
	if n <= 0 {
		n = 1
	}
	items := make([]QueuedItem, 0, n)

	for i := 0; i < n; i++ {
		d, ok, err := s.ch.Get(s.queueName, false)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		var payload contracts.NotificationEvent
		if err := json.Unmarshal(d.Body, &payload); err != nil {
			_ = d.Ack(false)
			_ = s.publishRaw(ctx, s.dlqName, d.Body)
			continue
		}
		items = append(items, QueuedItem{DeliveryTag: d.DeliveryTag, Event: payload})
	}

	return items, nil
}

// AckMessage acknowledges a delivery so it is removed from the queue.
func (s *Service) AckMessage(deliveryTag uint64) error {
	return s.ch.Ack(deliveryTag, false)
}

// EnqueueToDeadQueue parks an event on the DLQ after repeated delivery failures.
func (s *Service) EnqueueToDeadQueue(ctx context.Context, event *contracts.NotificationEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	return s.publishRaw(ctx, s.dlqName, body)
}

func (s *Service) publishRaw(ctx context.Context, queue string, body []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}

	if err := s.ch.PublishWithContext(ctx, "", queue, false, false, msg); err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, queue)
	}

	select {
	case confirmed := <-s.confirms:
		if !confirmed.Ack {
			return exceptions.ErrRabbitMQPublishMessage(fmt.Errorf("message not confirmed"), queue)
		}
	case <-ctx.Done():
		return exceptions.ErrRabbitMQPublishMessage(ctx.Err(), queue)
	}
	return nil
}
