//go:build integration

package main_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turfbook/service-booking/internal/application"
	"github.com/turfbook/service-booking/internal/domain/booking"
	bookingEvents "github.com/turfbook/service-booking/internal/events"
)

// TestBookingLifecycleIntegration exercises the full booking flow against real
// PostgreSQL and Kafka: create a pending booking, approve it, verify the
// persisted transition, the published event, and the confirmation mail.
func TestBookingLifecycleIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	infra := setupContainers(t)
	defer infra.Cleanup()

	stack := setupBookingStack(t, infra.DB, infra.KafkaBrokers)
	defer stack.CleanupProducer()

	consumerCtx, cancelConsumer := context.WithCancel(context.Background())
	defer cancelConsumer()
	go func() {
		if err := stack.Consumer.Start(consumerCtx); err != nil && consumerCtx.Err() == nil {
			t.Logf("approval consumer stopped: %v", err)
		}
	}()
	defer stack.Consumer.Close()

	ctx := context.Background()

	t.Run("create booking starts pending", func(t *testing.T) {
		created, err := stack.Service.CreateBooking(ctx, application.CreateBookingRequest{
			Name:       "Asha Pillai",
			Email:      "asha@example.com",
			Phone:      "9876501234",
			Date:       "2026-09-12",
			TimeSlot:   "06:00 AM - 08:00 AM",
			GroundType: "Cricket",
		})
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, string(booking.StatusPending), created.Status)

		stored := waitForBookingStatus(t, infra.DB, created.ID, string(booking.StatusPending), 5*time.Second)
		assert.Equal(t, "asha@example.com", stored.Email)
		assert.Equal(t, int64(1), stored.Version)
	})

	t.Run("approve commits transition and notifies", func(t *testing.T) {
		created, err := stack.Service.CreateBooking(ctx, application.CreateBookingRequest{
			Name:       "Rahul Nair",
			Email:      "rahul@example.com",
			Phone:      "9123456780",
			Date:       "2026-09-13",
			TimeSlot:   "04:00 PM - 06:00 PM",
			GroundType: "Football",
		})
		require.NoError(t, err)

		approved, err := stack.Service.ApproveBooking(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, string(booking.StatusApproved), approved.Status)

		stored := waitForBookingStatus(t, infra.DB, created.ID, string(booking.StatusApproved), 10*time.Second)
		assert.Equal(t, int64(2), stored.Version)

		ce := consumeOneEvent(t, infra.KafkaBrokers, bookingEvents.TopicBookingEvents, bookingEvents.BookingApproved, 30*time.Second)
		var evt bookingEvents.BookingApprovedEvent
		require.NoError(t, ce.ParseData(&evt))
		assert.Equal(t, created.ID, evt.BookingID)
		assert.Equal(t, "rahul@example.com", evt.Email)
		assert.Equal(t, string(booking.StatusApproved), evt.Status)

		// The approval consumer should pick the event up and send the mail.
		require.Eventually(t, func() bool {
			for _, msg := range stack.Notifier.Sent() {
				if msg.To == "rahul@example.com" {
					return true
				}
			}
			return false
		}, 30*time.Second, 500*time.Millisecond, "confirmation mail was not sent")

		sent := stack.Notifier.Sent()
		require.NotEmpty(t, sent)
		last := sent[len(sent)-1]
		assert.Equal(t, "Your Booking has been Approved!", last.Subject)
		assert.Contains(t, last.HTML, "Rahul Nair")
	})

	t.Run("second transition on same booking conflicts", func(t *testing.T) {
		created, err := stack.Service.CreateBooking(ctx, application.CreateBookingRequest{
			Name:       "Meera Iyer",
			Email:      "meera@example.com",
			Phone:      "9988776655",
			Date:       "2026-09-14",
			TimeSlot:   "08:00 AM - 10:00 AM",
			GroundType: "Cricket",
		})
		require.NoError(t, err)

		_, err = stack.Service.RejectBooking(ctx, created.ID)
		require.NoError(t, err)

		_, err = stack.Service.ApproveBooking(ctx, created.ID)
		require.Error(t, err, "approving a rejected booking must fail")

		stored := waitForBookingStatus(t, infra.DB, created.ID, string(booking.StatusRejected), 5*time.Second)
		assert.Equal(t, string(booking.StatusRejected), stored.Status)
	})

	t.Run("unknown booking id is not found", func(t *testing.T) {
		_, err := stack.Service.GetBooking(ctx, uuid.New())
		require.Error(t, err)
	})
}
