package bookings

type CreateBookingRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required,oneof=CASH VNPAY"`
}
