package notifications

import (
	"encoding/json"
	"time"
)

type EventType string

const (
	EventBookingCreated EventType = "booking.created"
	EventPaymentSettled EventType = "payment.settled"
)

// BookingEvent is the wire format for every message on the booking topic.
// Payload shape depends on Type.
type BookingEvent struct {
	Type       EventType       `json:"type"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload"`
}

// BookingCreatedPayload announces a freshly materialized booking
type BookingCreatedPayload struct {
	BookingID  string  `json:"booking_id"`
	UserID     string  `json:"user_id"`
	TotalPrice float64 `json:"total_price"`
	SeatCount  int     `json:"seat_count"`
}

// PaymentSettledPayload announces the outcome of a payment attempt
type PaymentSettledPayload struct {
	PaymentID string `json:"payment_id"`
	BookingID string `json:"booking_id"`
	Method    string `json:"method"`
	Success   bool   `json:"success"`
}

func (e *BookingEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// PartitionKey routes all events of one booking to the same partition so
// created/settled ordering survives consumption.
func (e *BookingEvent) PartitionKey() string {
	var probe struct {
		BookingID string `json:"booking_id"`
	}
	if err := json.Unmarshal(e.Payload, &probe); err == nil && probe.BookingID != "" {
		return probe.BookingID
	}
	return string(e.Type)
}
