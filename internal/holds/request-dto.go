package holds

// CreateHoldsRequest is the payload for POST /seat-holds
type CreateHoldsRequest struct {
	ShowtimeID string   `json:"showtime_id" validate:"required,uuid"`
	SeatIDs    []string `json:"seat_ids" validate:"required,min=1,dive,uuid"`
}
