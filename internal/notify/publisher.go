// Package notify carries order events from the API to the admin dashboard:
// events go out through a RabbitMQ fanout exchange and come back in through
// an in-process subscriber that feeds connected WebSocket clients.
package notify

import (
	"context"
	"encoding/json"
	"time"

	"bunueleria-system/internal/connections/rabbitmq"
	"bunueleria-system/internal/domain"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	Exchange  = "notifications"
	QueueName = "notifications_queue"

	EventOrderCreated       = "order_created"
	EventOrderStatusChanged = "order_status_changed"
)

// Event is the wire shape of a dashboard notification.
type Event struct {
	Type         string             `json:"type"`
	OrderID      int64              `json:"orderId"`
	OrderCode    string             `json:"orderCode,omitempty"`
	TurnNumber   string             `json:"turnNumber,omitempty"`
	CustomerName string             `json:"customerName,omitempty"`
	QueueType    domain.QueueType   `json:"queueType,omitempty"`
	Status       domain.OrderStatus `json:"status,omitempty"`
	Total        int64              `json:"total,omitempty"`
	OccurredAt   time.Time          `json:"occurredAt"`
}

type Publisher struct {
	client *rabbitmq.Client
}

// NewPublisher declares the fanout exchange and returns a publisher bound
// to it.
func NewPublisher(client *rabbitmq.Client) (*Publisher, error) {
	err := client.Channel().ExchangeDeclare(
		Exchange,
		"fanout",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		return nil, err
	}
	return &Publisher{client: client}, nil
}

func (p *Publisher) OrderCreated(ctx context.Context, o domain.Order) error {
	return p.publish(ctx, Event{
		Type:         EventOrderCreated,
		OrderID:      o.ID,
		OrderCode:    o.OrderCode,
		TurnNumber:   o.TurnNumber,
		CustomerName: o.CustomerName,
		QueueType:    o.QueueType,
		Status:       o.Status,
		Total:        o.Total,
		OccurredAt:   time.Now().UTC(),
	})
}

func (p *Publisher) OrderStatusChanged(ctx context.Context, id int64, status domain.OrderStatus) error {
	return p.publish(ctx, Event{
		Type:       EventOrderStatusChanged,
		OrderID:    id,
		Status:     status,
		OccurredAt: time.Now().UTC(),
	})
}

func (p *Publisher) publish(ctx context.Context, ev Event) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return p.client.Publish(ctx, Exchange, "", body,
		amqp.Table{"x-source": "bunueleria"}, "application/json", true)
}
