// Package events publishes rental events to the configured message broker.
package events

//go:generate mockgen -source=events.go -destination=events_mock.go -package=events

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sbilibin2017/vidly/internal/config"
	"github.com/sbilibin2017/vidly/internal/logger"
	"github.com/sbilibin2017/vidly/internal/models"
	"github.com/segmentio/kafka-go"
)

// Publisher delivers rental events and releases its broker resources on Close.
type Publisher interface {
	Publish(ctx context.Context, event models.RentalEvent) error
	Close() error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// AMQPChannel is the part of *amqp.Channel used for publishing.
type AMQPChannel interface {
	PublishWithContext(ctx context.Context, exchange string, key string, mandatory bool, immediate bool, msg amqp.Publishing) error
	Close() error
}

// New builds the publisher selected by cfg.Events.Broker.
// It returns a nil Publisher when publishing is disabled.
func New(cfg *config.Config) (Publisher, error) {
	switch cfg.Events.Broker {
	case config.BrokerKafka:
		writer := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Events.KafkaBrokers...),
			Topic:                  cfg.Events.KafkaTopic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
		}
		logger.Log.Infow("kafka publisher configured", "brokers", cfg.Events.KafkaBrokers, "topic", cfg.Events.KafkaTopic)
		return NewKafkaPublisher(writer), nil

	case config.BrokerRabbitMQ:
		conn, err := amqp.Dial(cfg.Events.RabbitMQURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
		}

		ch, err := conn.Channel()
		if err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to open a channel: %w", err)
		}

		if _, err := ch.QueueDeclare(
			cfg.Events.RabbitMQQueue, // name
			true,                     // durable
			false,                    // delete when unused
			false,                    // exclusive
			false,                    // no-wait
			nil,                      // arguments
		); err != nil {
			ch.Close()
			conn.Close()
			return nil, fmt.Errorf("failed to declare a queue: %w", err)
		}

		logger.Log.Infow("rabbitmq publisher configured", "queue", cfg.Events.RabbitMQQueue)
		return NewRabbitPublisher(ch, conn, cfg.Events.RabbitMQQueue), nil

	default:
		return nil, nil
	}
}

// KafkaPublisher writes events to a Kafka topic keyed by rental id, so all
// events of one rental land on the same partition.
type KafkaPublisher struct {
	writer KafkaWriter
}

// NewKafkaPublisher creates a new KafkaPublisher.
func NewKafkaPublisher(writer KafkaWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

// Publish implements Publisher.
func (p *KafkaPublisher) Publish(ctx context.Context, event models.RentalEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.RentalID),
		Value: data,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(event.Type)},
		},
	}
	return p.writer.WriteMessages(ctx, msg)
}

// Close implements Publisher.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// RabbitPublisher sends persistent JSON messages to a queue through the
// default exchange.
type RabbitPublisher struct {
	channel AMQPChannel
	conn    io.Closer
	queue   string
}

// NewRabbitPublisher creates a new RabbitPublisher. conn may be nil when the
// caller owns the connection.
func NewRabbitPublisher(channel AMQPChannel, conn io.Closer, queue string) *RabbitPublisher {
	return &RabbitPublisher{channel: channel, conn: conn, queue: queue}
}

// Publish implements Publisher.
func (p *RabbitPublisher) Publish(ctx context.Context, event models.RentalEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.EventID,
		Type:         event.Type,
		Timestamp:    time.Unix(event.Timestamp, 0).UTC(),
		Body:         body,
	}

	return p.channel.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key = queue name
		false,   // mandatory
		false,   // immediate
		pub,
	)
}

// Close implements Publisher.
func (p *RabbitPublisher) Close() error {
	err := p.channel.Close()
	if p.conn != nil {
		if cerr := p.conn.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
