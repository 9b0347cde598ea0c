package notifications

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEventEnvelope(t *testing.T) {
	event, err := NewEvent(EventBookingCreated, BookingCreatedPayload{
		BookingID:  "b-1",
		UserID:     "u-1",
		TotalPrice: 160000,
		SeatCount:  2,
	})
	require.NoError(t, err)
	assert.Equal(t, EventBookingCreated, event.Type)
	assert.False(t, event.OccurredAt.IsZero())

	var payload BookingCreatedPayload
	require.NoError(t, json.Unmarshal(event.Payload, &payload))
	assert.Equal(t, "b-1", payload.BookingID)
	assert.Equal(t, 2, payload.SeatCount)
}

func TestPartitionKey(t *testing.T) {
	event, err := NewEvent(EventPaymentSettled, PaymentSettledPayload{
		PaymentID: "p-1",
		BookingID: "b-1",
		Method:    "VNPAY",
		Success:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, "b-1", event.PartitionKey())
}

func TestPartitionKeyFallsBackToType(t *testing.T) {
	event := &BookingEvent{Type: EventBookingCreated, Payload: json.RawMessage(`{}`)}
	assert.Equal(t, string(EventBookingCreated), event.PartitionKey())
}
