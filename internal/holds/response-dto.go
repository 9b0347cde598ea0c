package holds

import "time"

// HoldResponse is one seat hold as returned to the client
type HoldResponse struct {
	ID         string    `json:"id"`
	SeatID     string    `json:"seat_id"`
	ShowtimeID string    `json:"showtime_id"`
	ExpiresAt  time.Time `json:"expires_at"`
}

func toHoldResponses(userHolds []SeatHold) []HoldResponse {
	out := make([]HoldResponse, 0, len(userHolds))
	for _, h := range userHolds {
		out = append(out, HoldResponse{
			ID:         h.ID.String(),
			SeatID:     h.SeatID.String(),
			ShowtimeID: h.ShowTimeID.String(),
			ExpiresAt:  h.ExpiresAt,
		})
	}
	return out
}
