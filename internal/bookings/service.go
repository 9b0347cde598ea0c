package bookings

import (
	"context"
	"fmt"
	"strconv"

	"cinebook/internal/seats"
	"cinebook/pkg/logger"

	"github.com/google/uuid"
)

// PaymentInitiator creates the payment record for a fresh booking and, for
// gateway methods, the redirect URL. Declared here so payments can depend
// on bookings without a cycle.
type PaymentInitiator interface {
	InitiatePayment(ctx context.Context, booking *Booking, method string, clientIP string) (*PaymentInfo, error)
}

// EventPublisher pushes booking lifecycle events to the message broker
type EventPublisher interface {
	PublishBookingCreated(ctx context.Context, booking *Booking) error
}

// PaymentInfo is the payment summary embedded in booking responses
type PaymentInfo struct {
	PaymentID  string  `json:"payment_id"`
	Method     string  `json:"method"`
	Status     string  `json:"status"`
	Amount     float64 `json:"amount"`
	PaymentURL string  `json:"payment_url,omitempty"`
}

type Service interface {
	// CreateBooking turns the user's active seat holds into a booking and
	// kicks off payment. clientIP feeds the gateway URL.
	CreateBooking(ctx context.Context, userID uuid.UUID, req CreateBookingRequest, clientIP string) (*BookingResponse, error)

	GetBooking(ctx context.Context, bookingID, userID uuid.UUID) (*BookingResponse, error)
	GetUserBookings(ctx context.Context, userID uuid.UUID, limit, offset int) ([]BookingResponse, int64, error)
}

type service struct {
	repo        Repository
	seatService seats.Service
	payments    PaymentInitiator
	publisher   EventPublisher
}

// NewService creates the booking orchestrator. publisher may be nil when
// the broker is disabled.
func NewService(repo Repository, seatService seats.Service, payments PaymentInitiator, publisher EventPublisher) Service {
	return &service{
		repo:        repo,
		seatService: seatService,
		payments:    payments,
		publisher:   publisher,
	}
}

func (s *service) CreateBooking(ctx context.Context, userID uuid.UUID, req CreateBookingRequest, clientIP string) (*BookingResponse, error) {
	booking, err := s.repo.CreateBookingWithItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	// The booking exists from here on. Payment-URL trouble is reported to
	// the caller through the payment status, not by undoing the booking;
	// the gateway callback settles it either way.
	var paymentInfo *PaymentInfo
	if s.payments != nil {
		paymentInfo, err = s.payments.InitiatePayment(ctx, booking, req.PaymentMethod, clientIP)
		if err != nil {
			logger.GetDefault().WithError(err).Error("Failed to initiate payment for booking", "booking_id", booking.ID.String())
			paymentInfo = nil
		}
	}

	for _, showtimeID := range distinctItemShowtimes(booking.Items) {
		s.seatService.InvalidateAvailability(ctx, showtimeID)
	}

	if s.publisher != nil {
		if err := s.publisher.PublishBookingCreated(ctx, booking); err != nil {
			logger.GetDefault().WithError(err).Warn("Failed to publish booking created event", "booking_id", booking.ID.String())
		}
	}

	logger.GetDefault().LogBookingCreated(ctx, booking.ID.String(), userID.String(), booking.TotalPrice)

	return toBookingResponse(booking, paymentInfo), nil
}

func (s *service) GetBooking(ctx context.Context, bookingID, userID uuid.UUID) (*BookingResponse, error) {
	booking, err := s.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID {
		// Do not leak existence of other users' bookings
		return nil, ErrBookingNotFound
	}
	return toBookingResponse(booking, nil), nil
}

func (s *service) GetUserBookings(ctx context.Context, userID uuid.UUID, limit, offset int) ([]BookingResponse, int64, error) {
	userBookings, total, err := s.repo.GetUserBookings(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get bookings: %w", err)
	}

	responses := make([]BookingResponse, 0, len(userBookings))
	for i := range userBookings {
		responses = append(responses, *toBookingResponse(&userBookings[i], nil))
	}
	return responses, total, nil
}

func distinctItemShowtimes(items []BookingItem) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(items))
	out := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		if seen[item.ShowTimeID] {
			continue
		}
		seen[item.ShowTimeID] = true
		out = append(out, item.ShowTimeID)
	}
	return out
}

func fmtSeatLabel(row string, number int) string {
	return row + strconv.Itoa(number)
}
