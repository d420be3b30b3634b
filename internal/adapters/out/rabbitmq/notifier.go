// Package rabbitmq publishes accepted status changes to a topic exchange so
// downstream consumers (notification service, dashboards) can react without
// polling the ledger.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"manufacturing/internal/core/domain/model/history"

	"github.com/rabbitmq/amqp091-go"
)

// StatusExchange is the topic exchange status changes are published to.
// Routing keys follow "status.<entity_type>.<new_status>", so a consumer can
// bind "status.order.*" or "status.#" depending on its interest.
const StatusExchange = "status_changes"

// StatusNotifier implements ports.StatusNotifier over an AMQP channel.
type StatusNotifier struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	logger  *slog.Logger
}

// NewStatusNotifier dials the broker, opens a channel, and declares the status
// exchange. Close must be called when the notifier is no longer needed.
func NewStatusNotifier(url string, logger *slog.Logger) (*StatusNotifier, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to dial RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		StatusExchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	return &StatusNotifier{
		conn:    conn,
		channel: channel,
		logger:  logger.With("component", "status_notifier"),
	}, nil
}

// statusChangedMessage is the wire form of a published change record.
type statusChangedMessage struct {
	EntityType string            `json:"entity_type"`
	EntityID   string            `json:"entity_id"`
	FromStatus string            `json:"from_status,omitempty"`
	ToStatus   string            `json:"to_status"`
	ChangedAt  time.Time         `json:"changed_at"`
	ChangedBy  string            `json:"changed_by,omitempty"`
	Reason     string            `json:"reason,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// NotifyStatusChanged publishes one change record. Callers invoke this after
// commit; a failure here is logged by the caller and never undoes the change.
func (n *StatusNotifier) NotifyStatusChanged(ctx context.Context, record history.ChangeRecord) error {
	body, err := json.Marshal(messageFromRecord(record))
	if err != nil {
		return fmt.Errorf("failed to marshal status change: %w", err)
	}

	key := routingKey(record)
	err = n.channel.PublishWithContext(
		ctx,
		StatusExchange,
		key,
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    record.ChangedAt,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish status change: %w", err)
	}

	n.logger.Debug("status change published",
		"entity_type", string(record.EntityType),
		"entity_id", record.EntityID.String(),
		"routing_key", key,
	)
	return nil
}

// Close closes the channel and the connection.
func (n *StatusNotifier) Close() error {
	if err := n.channel.Close(); err != nil {
		return fmt.Errorf("error closing channel: %w", err)
	}
	if err := n.conn.Close(); err != nil {
		return fmt.Errorf("error closing connection: %w", err)
	}
	return nil
}

func messageFromRecord(record history.ChangeRecord) statusChangedMessage {
	return statusChangedMessage{
		EntityType: string(record.EntityType),
		EntityID:   record.EntityID.String(),
		FromStatus: record.FromStatus,
		ToStatus:   record.ToStatus,
		ChangedAt:  record.ChangedAt,
		ChangedBy:  record.ChangedBy,
		Reason:     record.Reason,
		Metadata:   record.Metadata,
	}
}

func routingKey(record history.ChangeRecord) string {
	return fmt.Sprintf("status.%s.%s", record.EntityType, record.ToStatus)
}
