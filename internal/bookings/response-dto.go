package bookings

import "time"

type BookingItemResponse struct {
	SeatID     string  `json:"seat_id"`
	ShowtimeID string  `json:"showtime_id"`
	SeatLabel  string  `json:"seat_label,omitempty"`
	Price      float64 `json:"price"`
}

type BookingResponse struct {
	ID         string                `json:"id"`
	Status     string                `json:"status"`
	TotalPrice float64               `json:"total_price"`
	CreatedAt  time.Time             `json:"created_at"`
	Items      []BookingItemResponse `json:"items"`
	Payment    *PaymentInfo          `json:"payment,omitempty"`
}

func toBookingResponse(booking *Booking, payment *PaymentInfo) *BookingResponse {
	resp := &BookingResponse{
		ID:         booking.ID.String(),
		Status:     booking.Status.String(),
		TotalPrice: booking.TotalPrice,
		CreatedAt:  booking.CreatedAt,
		Items:      make([]BookingItemResponse, 0, len(booking.Items)),
		Payment:    payment,
	}
	for _, item := range booking.Items {
		itemResp := BookingItemResponse{
			SeatID:     item.SeatID.String(),
			ShowtimeID: item.ShowTimeID.String(),
			Price:      item.Price,
		}
		if item.Seat != nil {
			itemResp.SeatLabel = fmtSeatLabel(item.Seat.Row, item.Seat.Number)
		}
		resp.Items = append(resp.Items, itemResp)
	}
	return resp
}
