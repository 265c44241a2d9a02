package rabbitmq

import (
	"context"
	"encoding/json"
	"time"

	"github.com/muhammadheryan/contact-store/model"
	"github.com/rabbitmq/amqp091-go"
)

// ContactEventPublisher emits contact change notifications.
type ContactEventPublisher interface {
	PublishContactEvent(ctx context.Context, msg ContactEventMessage) error
	Close() error
}

type ContactEventMessage struct {
	Event      string         `json:"event"`
	ContactID  uint64         `json:"contact_id"`
	Contact    *model.Contact `json:"contact,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}

type Publisher struct {
	conn     *amqp091.Connection
	channel  *amqp091.Channel
	exchange string
}

// NewPublisher dials the broker and declares a durable topic exchange.
// Messages are routed by event name, e.g. "contact.created".
func NewPublisher(dsn, exchange string) (*Publisher, error) {
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	err = channel.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-delete
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	return &Publisher{conn: conn, channel: channel, exchange: exchange}, nil
}

func (p *Publisher) PublishContactEvent(ctx context.Context, msg ContactEventMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return p.channel.PublishWithContext(
		ctx,
		p.exchange, // exchange
		msg.Event,  // routing key
		false,      // mandatory
		false,      // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    msg.OccurredAt,
			Body:         body,
		},
	)
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}
