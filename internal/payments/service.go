package payments

import (
	"context"
	"fmt"

	"cinebook/internal/bookings"
	"cinebook/internal/seats"
	"cinebook/pkg/logger"

	"github.com/google/uuid"
)

// EventPublisher pushes payment settlement events to the message broker
type EventPublisher interface {
	PublishPaymentSettled(ctx context.Context, payment *Payment, success bool) error
}

// CallbackResult summarizes a processed gateway callback
type CallbackResult struct {
	PaymentID string `json:"payment_id"`
	BookingID string `json:"booking_id"`
	Success   bool   `json:"success"`
	Code      string `json:"response_code"`
}

type Service interface {
	// InitiatePayment records the payment for a fresh booking; gateway
	// methods also get a signed redirect URL.
	InitiatePayment(ctx context.Context, booking *bookings.Booking, method string, clientIP string) (*bookings.PaymentInfo, error)

	// HandleGatewayCallback settles a payment from the gateway redirect.
	// Success confirms the booking; failure deletes it, which frees the
	// seats through the item cascade.
	HandleGatewayCallback(ctx context.Context, params map[string]string) (*CallbackResult, error)

	GetPaymentByID(ctx context.Context, id uuid.UUID) (*Payment, error)
	GetPaymentsByBookingID(ctx context.Context, bookingID uuid.UUID) ([]Payment, error)
}

type service struct {
	repo        Repository
	bookingRepo bookings.Repository
	seatService seats.Service
	gateway     *VNPayClient
	publisher   EventPublisher
}

// NewService creates the payment service. publisher may be nil when the
// broker is disabled.
func NewService(repo Repository, bookingRepo bookings.Repository, seatService seats.Service, gateway *VNPayClient, publisher EventPublisher) Service {
	return &service{
		repo:        repo,
		bookingRepo: bookingRepo,
		seatService: seatService,
		gateway:     gateway,
		publisher:   publisher,
	}
}

func (s *service) InitiatePayment(ctx context.Context, booking *bookings.Booking, method string, clientIP string) (*bookings.PaymentInfo, error) {
	paymentMethod := Method(method)
	if !paymentMethod.IsValid() {
		return nil, ErrInvalidMethod
	}

	payment := &Payment{
		BookingID:      booking.ID,
		Method:         paymentMethod,
		Status:         StatusUnpaid,
		TransactionRef: uuid.NewString(),
	}
	if err := s.repo.CreatePayment(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	info := &bookings.PaymentInfo{
		PaymentID: payment.ID.String(),
		Method:    payment.Method.String(),
		Status:    payment.Status.String(),
		Amount:    booking.TotalPrice,
	}

	if paymentMethod.RequiresGateway() {
		orderInfo := fmt.Sprintf("Ticket payment for booking %s", booking.ID)
		paymentURL, err := s.gateway.CreatePaymentURL(payment.TransactionRef, booking.TotalPrice, orderInfo, clientIP)
		if err != nil {
			// The payment row stays UNPAID; the client can request a
			// fresh URL later instead of losing the booking.
			logger.GetDefault().WithError(err).Error("Failed to create payment URL", "payment_id", payment.ID.String())
		} else {
			info.PaymentURL = paymentURL
		}
	}

	logger.GetDefault().LogPaymentEvent(ctx, payment.ID.String(), booking.ID.String(), payment.Status.String())
	return info, nil
}

func (s *service) HandleGatewayCallback(ctx context.Context, params map[string]string) (*CallbackResult, error) {
	if !s.gateway.VerifyCallback(params) {
		return nil, ErrInvalidSignature
	}

	payment, err := s.repo.GetPaymentByTransactionRef(ctx, params["vnp_TxnRef"])
	if err != nil {
		return nil, err
	}

	responseCode := params["vnp_ResponseCode"]
	result := &CallbackResult{
		PaymentID: payment.ID.String(),
		BookingID: payment.BookingID.String(),
		Success:   responseCode == vnpSuccessCode,
		Code:      responseCode,
	}

	if result.Success {
		if err := s.repo.UpdatePaymentStatus(ctx, payment.ID, StatusPaid); err != nil {
			return nil, fmt.Errorf("failed to mark payment paid: %w", err)
		}
		if err := s.bookingRepo.UpdateBookingStatus(ctx, payment.BookingID, bookings.StatusConfirmed); err != nil {
			return nil, fmt.Errorf("failed to confirm booking: %w", err)
		}
	} else {
		if err := s.repo.UpdatePaymentStatus(ctx, payment.ID, StatusFailed); err != nil {
			return nil, fmt.Errorf("failed to mark payment failed: %w", err)
		}
		if err := s.releaseBooking(ctx, payment.BookingID); err != nil {
			return nil, err
		}
	}

	if s.publisher != nil {
		if err := s.publisher.PublishPaymentSettled(ctx, payment, result.Success); err != nil {
			logger.GetDefault().WithError(err).Warn("Failed to publish payment settled event", "payment_id", payment.ID.String())
		}
	}

	logger.GetDefault().LogPaymentEvent(ctx, payment.ID.String(), payment.BookingID.String(), string(statusForCode(responseCode)))
	return result, nil
}

// releaseBooking deletes the failed booking. The item cascade frees the
// seats; the availability cache for the affected showtimes is dropped so
// they reappear promptly.
func (s *service) releaseBooking(ctx context.Context, bookingID uuid.UUID) error {
	booking, err := s.bookingRepo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("failed to load booking for release: %w", err)
	}

	if err := s.bookingRepo.DeleteBooking(ctx, bookingID); err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}

	seen := make(map[uuid.UUID]bool, len(booking.Items))
	for _, item := range booking.Items {
		if seen[item.ShowTimeID] {
			continue
		}
		seen[item.ShowTimeID] = true
		s.seatService.InvalidateAvailability(ctx, item.ShowTimeID)
	}
	return nil
}

func (s *service) GetPaymentByID(ctx context.Context, id uuid.UUID) (*Payment, error) {
	return s.repo.GetPaymentByID(ctx, id)
}

func (s *service) GetPaymentsByBookingID(ctx context.Context, bookingID uuid.UUID) ([]Payment, error) {
	return s.repo.GetPaymentsByBookingID(ctx, bookingID)
}

func statusForCode(responseCode string) Status {
	if responseCode == vnpSuccessCode {
		return StatusPaid
	}
	return StatusFailed
}
