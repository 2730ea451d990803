package events

import (
	"context"
	"encoding/json"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/turfbook/service-booking/internal/notifier"
	"github.com/turfbook/service-booking/pkg/kafka"
)

// ApprovalConsumer listens to booking events and sends the confirmation mail
// when a booking transitions into approved. It is the server-side observer of
// the status mutation: the transition has already committed by the time the
// event arrives, so delivery failures are logged and never rolled back.
type ApprovalConsumer struct {
	consumer *kafka.Consumer
	notifier notifier.Notifier
	logger   *zap.Logger
}

// NewApprovalConsumer creates a new ApprovalConsumer.
func NewApprovalConsumer(
	brokers []string,
	groupID string,
	n notifier.Notifier,
	logger *zap.Logger,
) *ApprovalConsumer {
	consumer := kafka.NewConsumer(brokers, groupID, TopicBookingEvents, logger)
	return &ApprovalConsumer{
		consumer: consumer,
		notifier: n,
		logger:   logger,
	}
}

// Start begins consuming booking events. This blocks until the context is cancelled.
func (c *ApprovalConsumer) Start(ctx context.Context) error {
	return c.consumer.Consume(ctx, c.handleMessage)
}

// Close closes the underlying Kafka consumer.
func (c *ApprovalConsumer) Close() error {
	return c.consumer.Close()
}

func (c *ApprovalConsumer) handleMessage(ctx context.Context, msg kafkago.Message) error {
	var cloudEvent kafka.CloudEvent
	if err := json.Unmarshal(msg.Value, &cloudEvent); err != nil {
		c.logger.Error("failed to parse cloud event from booking topic",
			zap.Error(err),
			zap.String("raw", string(msg.Value)),
		)
		return nil // Don't retry malformed messages
	}

	switch cloudEvent.Type {
	case BookingApproved:
		return c.handleBookingApproved(cloudEvent)
	default:
		c.logger.Debug("ignoring unhandled booking event type",
			zap.String("type", cloudEvent.Type),
		)
		return nil
	}
}

func (c *ApprovalConsumer) handleBookingApproved(cloudEvent kafka.CloudEvent) error {
	var evt BookingApprovedEvent
	if err := cloudEvent.ParseData(&evt); err != nil {
		c.logger.Error("failed to parse BookingApprovedEvent data",
			zap.Error(err),
		)
		return nil // Don't retry malformed data
	}

	msg := notifier.BuildApprovalMessage(notifier.ApprovalDetails{
		Name:       evt.Name,
		Email:      evt.Email,
		Date:       evt.Date,
		TimeSlot:   evt.TimeSlot,
		GroundType: evt.GroundType,
	})

	// Best effort: the status change is already committed, so a failed send
	// is logged and the message is still acknowledged.
	if err := c.notifier.Send(msg); err != nil {
		c.logger.Error("failed to send approval confirmation",
			zap.String("booking_id", evt.BookingID.String()),
			zap.Error(err),
		)
		return nil
	}

	c.logger.Info("approval confirmation sent",
		zap.String("booking_id", evt.BookingID.String()),
		zap.String("to", evt.Email),
	)
	return nil
}
