package bookings

import (
	"testing"

	"cinebook/internal/catalog"
	"cinebook/internal/holds"
	"cinebook/internal/seats"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHoldPrice(t *testing.T) {
	hold := &holds.SeatHold{
		SeatID:     uuid.New(),
		ShowTimeID: uuid.New(),
		Seat: &seats.Seat{
			Variant: &catalog.SeatVariant{SeatType: "VIP", BasePrice: 100000, Bonus: 10000},
		},
		ShowTime: &catalog.ShowTime{
			Film: &catalog.Film{Price: 50000},
		},
	}

	price, err := holdPrice(hold)
	require.NoError(t, err)
	assert.Equal(t, float64(160000), price)
}

func TestHoldPriceMissingVariant(t *testing.T) {
	hold := &holds.SeatHold{
		SeatID: uuid.New(),
		Seat:   &seats.Seat{},
		ShowTime: &catalog.ShowTime{
			Film: &catalog.Film{Price: 50000},
		},
	}

	_, err := holdPrice(hold)
	assert.Error(t, err)
}

func TestHoldPriceMissingFilm(t *testing.T) {
	hold := &holds.SeatHold{
		SeatID: uuid.New(),
		Seat: &seats.Seat{
			Variant: &catalog.SeatVariant{BasePrice: 100000},
		},
		ShowTime: &catalog.ShowTime{},
	}

	_, err := holdPrice(hold)
	assert.Error(t, err)
}
