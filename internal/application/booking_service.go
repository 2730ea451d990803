package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	bookingDomain "github.com/turfbook/service-booking/internal/domain/booking"
	"github.com/turfbook/service-booking/internal/events"
	"github.com/turfbook/service-booking/pkg/domain"
	"github.com/turfbook/service-booking/pkg/kafka"
)

// dateLayout is the wire format for calendar dates.
const dateLayout = "2006-01-02"

// CreateBookingRequest holds the data needed to create a new booking request.
type CreateBookingRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Date       string `json:"date"`
	TimeSlot   string `json:"timeSlot"`
	GroundType string `json:"groundType"`
}

// BookingDTO is the response representation of a booking. Field names follow
// the persisted record shape the mobile clients already depend on.
type BookingDTO struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Date       string    `json:"date"`
	TimeSlot   string    `json:"timeSlot"`
	GroundType string    `json:"groundType"`
	Timestamp  time.Time `json:"timestamp"`
	Status     string    `json:"status"`
}

// EventPublisher publishes CloudEvents to a topic. *kafka.Producer satisfies it.
type EventPublisher interface {
	PublishEvent(ctx context.Context, topic string, event kafka.CloudEvent) error
}

// BookingService is the application service orchestrating booking use cases.
type BookingService struct {
	repo     bookingDomain.BookingRepository
	producer EventPublisher
	logger   *zap.Logger
}

// NewBookingService creates a new BookingService.
func NewBookingService(
	repo bookingDomain.BookingRepository,
	producer EventPublisher,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		repo:     repo,
		producer: producer,
		logger:   logger,
	}
}

// CreateBooking validates the request and persists a new pending booking.
// Validation runs before any store call, so a rejected request never leaves
// a partial write behind.
func (s *BookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*BookingDTO, error) {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, domain.NewFieldValidationError(domain.CodeInvalidInput, "date", "date must be YYYY-MM-DD")
	}

	groundType, err := bookingDomain.ParseGroundType(req.GroundType)
	if err != nil {
		return nil, domain.NewFieldValidationError(domain.CodeInvalidInput, "groundType", err.Error())
	}

	bk, err := bookingDomain.NewBooking(req.Name, req.Email, req.Phone, date, req.TimeSlot, groundType)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, bk); err != nil {
		return nil, fmt.Errorf("failed to save booking: %w", err)
	}

	s.publishBookingRequested(ctx, bk)

	result := toBookingDTO(bk)
	return &result, nil
}

// GetBooking retrieves a single booking by ID.
func (s *BookingService) GetBooking(ctx context.Context, bookingID uuid.UUID) (*BookingDTO, error) {
	bk, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	result := toBookingDTO(bk)
	return &result, nil
}

// ApproveBooking transitions a pending booking to approved. The store update
// is conditional on the booking still being pending, so a concurrent
// administrator acting on the same booking gets a conflict rather than a
// silent overwrite. A BookingApprovedEvent is published only after the
// transition has committed.
func (s *BookingService) ApproveBooking(ctx context.Context, bookingID uuid.UUID) (*BookingDTO, error) {
	bk, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	priorStatus := bk.Status()
	if err := bk.Approve(); err != nil {
		return nil, err
	}

	bk.IncrementVersion()
	if err := s.repo.UpdateStatus(ctx, bk, priorStatus); err != nil {
		return nil, err
	}

	evt := events.BookingApprovedEvent{
		BookingID:  bk.ID(),
		Name:       bk.Name(),
		Email:      bk.Email(),
		Phone:      bk.Phone(),
		Date:       bk.Date(),
		TimeSlot:   bk.TimeSlot(),
		GroundType: string(bk.GroundType()),
		Status:     string(bk.Status()),
		OccurredAt: time.Now().UTC(),
	}
	s.publishEvent(ctx, events.TopicBookingEvents, events.BookingApproved, evt)

	result := toBookingDTO(bk)
	return &result, nil
}

// RejectBooking transitions a pending booking to rejected, with the same
// conditional-update protection as approval. No confirmation mail is sent
// for rejections.
func (s *BookingService) RejectBooking(ctx context.Context, bookingID uuid.UUID) (*BookingDTO, error) {
	bk, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	priorStatus := bk.Status()
	if err := bk.Reject(); err != nil {
		return nil, err
	}

	bk.IncrementVersion()
	if err := s.repo.UpdateStatus(ctx, bk, priorStatus); err != nil {
		return nil, err
	}

	evt := events.BookingRejectedEvent{
		BookingID:  bk.ID(),
		Email:      bk.Email(),
		Date:       bk.Date(),
		TimeSlot:   bk.TimeSlot(),
		GroundType: string(bk.GroundType()),
		OccurredAt: time.Now().UTC(),
	}
	s.publishEvent(ctx, events.TopicBookingEvents, events.BookingRejected, evt)

	result := toBookingDTO(bk)
	return &result, nil
}

// ListBookings returns a paginated page of bookings narrowed by the filter
// spec. Status narrowing happens in the store query; a date range is applied
// to the materialized set, matching how the dashboard consumes it.
func (s *BookingService) ListBookings(ctx context.Context, spec bookingDomain.FilterSpec, page, limit int) (*domain.PaginatedResult[BookingDTO], error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	if spec.Range == nil {
		bookings, total, err := s.repo.ListByStatus(ctx, spec.Status, page, limit)
		if err != nil {
			return nil, err
		}
		dtos := make([]BookingDTO, len(bookings))
		for i, bk := range bookings {
			dtos[i] = toBookingDTO(bk)
		}
		result := domain.NewPaginatedResult(dtos, total, page, limit)
		return &result, nil
	}

	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	filtered := spec.Apply(all)

	total := int64(len(filtered))
	start := (page - 1) * limit
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + limit
	if end > len(filtered) {
		end = len(filtered)
	}

	dtos := make([]BookingDTO, 0, end-start)
	for _, bk := range filtered[start:end] {
		dtos = append(dtos, toBookingDTO(bk))
	}
	result := domain.NewPaginatedResult(dtos, total, page, limit)
	return &result, nil
}

// BuildReport recomputes the reporting tally for the given window over the
// full booking collection.
func (s *BookingService) BuildReport(ctx context.Context, window bookingDomain.ReportWindow) (*bookingDomain.Report, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for report: %w", err)
	}
	report := bookingDomain.BuildReport(all, window)
	return &report, nil
}

// --- Helpers ---

func toBookingDTO(bk *bookingDomain.Booking) BookingDTO {
	return BookingDTO{
		ID:         bk.ID(),
		Name:       bk.Name(),
		Email:      bk.Email(),
		Phone:      bk.Phone(),
		Date:       bk.Date().Format(dateLayout),
		TimeSlot:   bk.TimeSlot(),
		GroundType: string(bk.GroundType()),
		Timestamp:  bk.CreatedAt(),
		Status:     string(bk.Status()),
	}
}

func (s *BookingService) publishBookingRequested(ctx context.Context, bk *bookingDomain.Booking) {
	evt := events.BookingRequestedEvent{
		BookingID:  bk.ID(),
		Name:       bk.Name(),
		Email:      bk.Email(),
		Date:       bk.Date(),
		TimeSlot:   bk.TimeSlot(),
		GroundType: string(bk.GroundType()),
		OccurredAt: time.Now().UTC(),
	}
	s.publishEvent(ctx, events.TopicBookingEvents, events.BookingRequested, evt)
}

func (s *BookingService) publishEvent(ctx context.Context, topic, eventType string, data interface{}) {
	cloudEvent, err := kafka.NewCloudEvent("service-booking", eventType, data)
	if err != nil {
		s.logger.Error("failed to create cloud event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return
	}

	if err := s.producer.PublishEvent(ctx, topic, cloudEvent); err != nil {
		s.logger.Error("failed to publish event",
			zap.String("topic", topic),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
}
