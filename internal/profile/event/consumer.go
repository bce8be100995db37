package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"github.com/Team-DAS/profile-cell/internal/profile/models"
)

// ShellCreator seeds a new profile when an account is verified. Implemented
// by the profile service; kept narrow so the consumer stays transport-only.
type ShellCreator interface {
	CreateShell(ctx context.Context, ev *models.AccountVerifiedEvent) (*models.Profile, error)
}

type Consumer interface {
	Start() error
	Close() error
}

// EventConsumer binds a durable queue to the account.events exchange and
// turns account.verified messages into profile shells.
type EventConsumer struct {
	conn      *amqp091.Connection
	channel   *amqp091.Channel
	queueName string
	shells    ShellCreator
	shutdown  chan struct{}
	wg        sync.WaitGroup
	enabled   bool
}

func NewEventConsumer(rabbitURI string, shells ShellCreator) (*EventConsumer, error) {
	if rabbitURI == "" {
		log.Println("Warning: RabbitMQ URI is empty, event consumption is disabled")
		return &EventConsumer{
			shells:   shells,
			shutdown: make(chan struct{}),
			enabled:  false,
		}, nil
	}

	conn, err := amqp091.Dial(rabbitURI)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	err = channel.Qos(
		10,    // prefetch count
		0,     // prefetch size
		false, // global
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to set QoS: %w", err)
	}

	return &EventConsumer{
		conn:      conn,
		channel:   channel,
		queueName: "profile-service-events",
		shells:    shells,
		shutdown:  make(chan struct{}),
		enabled:   true,
	}, nil
}

func (c *EventConsumer) Start() error {
	if !c.enabled {
		log.Println("Event consumption is disabled, not starting consumer")
		return nil
	}

	err := c.channel.ExchangeDeclare(
		"account.events", // name
		"topic",          // type
		true,             // durable
		false,            // auto-deleted
		false,            // internal
		false,            // no-wait
		nil,              // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare exchange account.events: %w", err)
	}

	_, err = c.channel.QueueDeclare(
		c.queueName, // name
		true,        // durable
		false,       // delete when unused
		false,       // exclusive
		false,       // no-wait
		nil,         // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue: %w", err)
	}

	err = c.channel.QueueBind(
		c.queueName,        // queue name
		"account.verified", // routing key
		"account.events",   // exchange
		false,              // no-wait
		nil,                // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to bind queue to account.events: %w", err)
	}

	msgs, err := c.channel.Consume(
		c.queueName, // queue
		"",          // consumer
		false,       // auto-ack
		false,       // exclusive
		false,       // no-local
		false,       // no-wait
		nil,         // args
	)
	if err != nil {
		return fmt.Errorf("failed to register a consumer: %w", err)
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.consume(msgs)
	}()

	log.Printf("Event consumer started on queue %s", c.queueName)
	return nil
}

func (c *EventConsumer) consume(msgs <-chan amqp091.Delivery) {
	for {
		select {
		case <-c.shutdown:
			log.Println("Stopping event consumer")
			return
		case msg, ok := <-msgs:
			if !ok {
				log.Println("Message channel closed")
				return
			}

			err := c.processMessage(msg)
			if err != nil {
				log.Printf("Error processing message: %v", err)
				if err := msg.Nack(false, true); err != nil {
					log.Printf("Error NACKing message: %v", err)
				}
			} else {
				if err := msg.Ack(false); err != nil {
					log.Printf("Error ACKing message: %v", err)
				}
			}
		}
	}
}

func (c *EventConsumer) processMessage(msg amqp091.Delivery) error {
	switch msg.RoutingKey {
	case "account.verified":
		return c.handleAccountVerified(msg.Body)
	default:
		log.Printf("Unknown routing key: %s, dropping message", msg.RoutingKey)
		return nil
	}
}

func (c *EventConsumer) handleAccountVerified(body []byte) error {
	var ev models.AccountVerifiedEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		// Malformed payloads will never parse; drop instead of requeue.
		log.Printf("Dropping malformed account.verified event: %v", err)
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	profile, err := c.shells.CreateShell(ctx, &ev)
	if err != nil {
		return fmt.Errorf("failed to create profile shell for account %s: %w", ev.AccountID, err)
	}

	log.Printf("Profile shell ready for account %s (created %s)", ev.AccountID, profile.Metadata.CreatedAt.Format(time.RFC3339))
	return nil
}

func (c *EventConsumer) Close() error {
	if !c.enabled {
		return nil
	}

	close(c.shutdown)
	c.wg.Wait()

	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			log.Printf("Error closing RabbitMQ channel: %v", err)
		}
	}

	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			return fmt.Errorf("error closing RabbitMQ connection: %w", err)
		}
	}

	return nil
}
