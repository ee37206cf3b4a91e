package notify

import (
	"context"

	"bunueleria-system/internal/connections/rabbitmq"
	"bunueleria-system/internal/logger"
)

// Subscriber drains the notifications queue and hands every event to the
// WebSocket hub.
type Subscriber struct {
	client *rabbitmq.Client
	hub    *Hub
	log    *logger.Logger
}

func NewSubscriber(client *rabbitmq.Client, hub *Hub, log *logger.Logger) *Subscriber {
	return &Subscriber{client: client, hub: hub, log: log}
}

// Run declares and binds the queue, then consumes until ctx is cancelled.
func (s *Subscriber) Run(ctx context.Context) error {
	ch := s.client.Channel()

	err := ch.ExchangeDeclare(Exchange, "fanout", true, false, false, false, nil)
	if err != nil {
		return err
	}
	_, err = ch.QueueDeclare(QueueName, true, false, false, false, nil)
	if err != nil {
		return err
	}
	if err := ch.QueueBind(QueueName, "", Exchange, false, nil); err != nil {
		return err
	}

	msgs, err := ch.Consume(
		QueueName,
		"dashboard-notifier",
		true,  // auto-ack: the feed is advisory, a lost event costs one sound
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return err
	}

	s.log.Info("subscriber_started", map[string]any{"queue": QueueName})
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-msgs:
			if !ok {
				return nil
			}
			s.hub.Broadcast(msg.Body)
		}
	}
}
