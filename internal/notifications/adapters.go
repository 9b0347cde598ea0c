package notifications

import (
	"context"

	"cinebook/internal/bookings"
	"cinebook/internal/payments"
)

// BookingPublisherAdapter adapts Producer to the publisher interface the
// booking service declares.
type BookingPublisherAdapter struct {
	producer Producer
}

func NewBookingPublisherAdapter(producer Producer) bookings.EventPublisher {
	return &BookingPublisherAdapter{producer: producer}
}

func (a *BookingPublisherAdapter) PublishBookingCreated(ctx context.Context, booking *bookings.Booking) error {
	event, err := NewEvent(EventBookingCreated, BookingCreatedPayload{
		BookingID:  booking.ID.String(),
		UserID:     booking.UserID.String(),
		TotalPrice: booking.TotalPrice,
		SeatCount:  len(booking.Items),
	})
	if err != nil {
		return err
	}
	return a.producer.PublishEvent(ctx, event)
}

// PaymentPublisherAdapter adapts Producer to the publisher interface the
// payment service declares.
type PaymentPublisherAdapter struct {
	producer Producer
}

func NewPaymentPublisherAdapter(producer Producer) payments.EventPublisher {
	return &PaymentPublisherAdapter{producer: producer}
}

func (a *PaymentPublisherAdapter) PublishPaymentSettled(ctx context.Context, payment *payments.Payment, success bool) error {
	event, err := NewEvent(EventPaymentSettled, PaymentSettledPayload{
		PaymentID: payment.ID.String(),
		BookingID: payment.BookingID.String(),
		Method:    payment.Method.String(),
		Success:   success,
	})
	if err != nil {
		return err
	}
	return a.producer.PublishEvent(ctx, event)
}
