package notify

import (
	"context"
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
)

// RabbitMQChannel publishes notifications to a topic exchange.
type RabbitMQChannel struct {
	conn       *amqp.Connection
	ch         *amqp.Channel
	exchange   string
	routingKey string
}

func NewRabbitMQChannel(url, exchange, routingKey, queueName string, durable bool) (*RabbitMQChannel, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	if exchange != "" {
		if err := ch.ExchangeDeclare(exchange, "topic", durable, false, false, false, nil); err != nil {
			ch.Close()
			conn.Close()
			return nil, err
		}
	}
	if queueName != "" {
		q, _ := ch.QueueDeclare(queueName, durable, false, false, false, nil)
		ch.QueueBind(q.Name, routingKey, exchange, false, nil)
	}
	return &RabbitMQChannel{conn: conn, ch: ch, exchange: exchange, routingKey: routingKey}, nil
}

func (r *RabbitMQChannel) Name() string { return "rabbitmq" }

func (r *RabbitMQChannel) Send(ctx context.Context, n Notification) error {
	data, err := json.Marshal(n)
	if err != nil {
		return err
	}
	return r.ch.PublishWithContext(ctx, r.exchange, r.routingKey, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        data,
	})
}

func (r *RabbitMQChannel) Close() error {
	r.ch.Close()
	return r.conn.Close()
}
