package bookings

import (
	"context"
	"errors"
	"testing"

	"cinebook/internal/seats"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRepository struct {
	createBookingWithItems func(ctx context.Context, userID uuid.UUID) (*Booking, error)
	getBookingByID         func(ctx context.Context, id uuid.UUID) (*Booking, error)
	getUserBookings        func(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Booking, int64, error)
	updateBookingStatus    func(ctx context.Context, id uuid.UUID, status Status) error
	deleteBooking          func(ctx context.Context, id uuid.UUID) error
}

func (m *mockRepository) CreateBookingWithItems(ctx context.Context, userID uuid.UUID) (*Booking, error) {
	return m.createBookingWithItems(ctx, userID)
}

func (m *mockRepository) GetBookingByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	return m.getBookingByID(ctx, id)
}

func (m *mockRepository) GetUserBookings(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Booking, int64, error) {
	return m.getUserBookings(ctx, userID, limit, offset)
}

func (m *mockRepository) UpdateBookingStatus(ctx context.Context, id uuid.UUID, status Status) error {
	return m.updateBookingStatus(ctx, id, status)
}

func (m *mockRepository) DeleteBooking(ctx context.Context, id uuid.UUID) error {
	return m.deleteBooking(ctx, id)
}

type mockPaymentInitiator struct {
	initiate func(ctx context.Context, booking *Booking, method string, clientIP string) (*PaymentInfo, error)
}

func (m *mockPaymentInitiator) InitiatePayment(ctx context.Context, booking *Booking, method string, clientIP string) (*PaymentInfo, error) {
	return m.initiate(ctx, booking, method, clientIP)
}

type stubSeatService struct {
	invalidated []uuid.UUID
}

func (s *stubSeatService) GetAvailability(ctx context.Context, showtimeID string) ([]seats.SeatAvailability, error) {
	return nil, nil
}

func (s *stubSeatService) InvalidateAvailability(ctx context.Context, showtimeID uuid.UUID) {
	s.invalidated = append(s.invalidated, showtimeID)
}

type stubPublisher struct {
	published []*Booking
	err       error
}

func (p *stubPublisher) PublishBookingCreated(ctx context.Context, booking *Booking) error {
	p.published = append(p.published, booking)
	return p.err
}

func sampleBooking(userID uuid.UUID) *Booking {
	showtimeID := uuid.New()
	return &Booking{
		ID:         uuid.New(),
		UserID:     userID,
		Status:     StatusPending,
		TotalPrice: 160000,
		Items: []BookingItem{
			{SeatID: uuid.New(), ShowTimeID: showtimeID, Price: 160000},
		},
	}
}

func TestCreateBooking(t *testing.T) {
	userID := uuid.New()
	booking := sampleBooking(userID)

	repo := &mockRepository{
		createBookingWithItems: func(ctx context.Context, id uuid.UUID) (*Booking, error) {
			assert.Equal(t, userID, id)
			return booking, nil
		},
	}
	paymentInitiator := &mockPaymentInitiator{
		initiate: func(ctx context.Context, b *Booking, method string, clientIP string) (*PaymentInfo, error) {
			assert.Equal(t, booking.ID, b.ID)
			assert.Equal(t, "VNPAY", method)
			assert.Equal(t, "203.0.113.9", clientIP)
			return &PaymentInfo{
				PaymentID:  uuid.NewString(),
				Method:     method,
				Status:     "UNPAID",
				Amount:     b.TotalPrice,
				PaymentURL: "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html?vnp_TxnRef=x",
			}, nil
		},
	}
	seatSvc := &stubSeatService{}
	publisher := &stubPublisher{}

	svc := NewService(repo, seatSvc, paymentInitiator, publisher)

	resp, err := svc.CreateBooking(context.Background(), userID, CreateBookingRequest{PaymentMethod: "VNPAY"}, "203.0.113.9")
	require.NoError(t, err)

	assert.Equal(t, booking.ID.String(), resp.ID)
	assert.Equal(t, float64(160000), resp.TotalPrice)
	require.NotNil(t, resp.Payment)
	assert.NotEmpty(t, resp.Payment.PaymentURL)
	assert.Len(t, publisher.published, 1)
	assert.Equal(t, []uuid.UUID{booking.Items[0].ShowTimeID}, seatSvc.invalidated)
}

func TestCreateBookingNoHolds(t *testing.T) {
	repo := &mockRepository{
		createBookingWithItems: func(ctx context.Context, id uuid.UUID) (*Booking, error) {
			return nil, ErrNoHoldsAvailable
		},
	}
	paymentCalled := false
	paymentInitiator := &mockPaymentInitiator{
		initiate: func(ctx context.Context, b *Booking, method string, clientIP string) (*PaymentInfo, error) {
			paymentCalled = true
			return nil, nil
		},
	}

	svc := NewService(repo, &stubSeatService{}, paymentInitiator, nil)

	_, err := svc.CreateBooking(context.Background(), uuid.New(), CreateBookingRequest{PaymentMethod: "CASH"}, "")
	assert.ErrorIs(t, err, ErrNoHoldsAvailable)
	assert.False(t, paymentCalled)
}

func TestCreateBookingSurvivesPaymentFailure(t *testing.T) {
	userID := uuid.New()
	booking := sampleBooking(userID)

	repo := &mockRepository{
		createBookingWithItems: func(ctx context.Context, id uuid.UUID) (*Booking, error) {
			return booking, nil
		},
	}
	paymentInitiator := &mockPaymentInitiator{
		initiate: func(ctx context.Context, b *Booking, method string, clientIP string) (*PaymentInfo, error) {
			return nil, errors.New("gateway unreachable")
		},
	}

	svc := NewService(repo, &stubSeatService{}, paymentInitiator, nil)

	resp, err := svc.CreateBooking(context.Background(), userID, CreateBookingRequest{PaymentMethod: "VNPAY"}, "")
	require.NoError(t, err, "payment trouble must not undo the booking")
	assert.Equal(t, booking.ID.String(), resp.ID)
	assert.Nil(t, resp.Payment)
}

func TestCreateBookingSurvivesPublishFailure(t *testing.T) {
	userID := uuid.New()
	booking := sampleBooking(userID)

	repo := &mockRepository{
		createBookingWithItems: func(ctx context.Context, id uuid.UUID) (*Booking, error) {
			return booking, nil
		},
	}
	publisher := &stubPublisher{err: errors.New("broker down")}

	svc := NewService(repo, &stubSeatService{}, nil, publisher)

	resp, err := svc.CreateBooking(context.Background(), userID, CreateBookingRequest{PaymentMethod: "CASH"}, "")
	require.NoError(t, err)
	assert.Equal(t, booking.ID.String(), resp.ID)
}

func TestGetBookingHidesOtherUsers(t *testing.T) {
	owner := uuid.New()
	booking := sampleBooking(owner)

	repo := &mockRepository{
		getBookingByID: func(ctx context.Context, id uuid.UUID) (*Booking, error) {
			return booking, nil
		},
	}

	svc := NewService(repo, &stubSeatService{}, nil, nil)

	_, err := svc.GetBooking(context.Background(), booking.ID, uuid.New())
	assert.ErrorIs(t, err, ErrBookingNotFound)

	resp, err := svc.GetBooking(context.Background(), booking.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, booking.ID.String(), resp.ID)
}

func TestDistinctItemShowtimes(t *testing.T) {
	showtimeA := uuid.New()
	showtimeB := uuid.New()

	items := []BookingItem{
		{ShowTimeID: showtimeA},
		{ShowTimeID: showtimeB},
		{ShowTimeID: showtimeA},
	}

	assert.ElementsMatch(t, []uuid.UUID{showtimeA, showtimeB}, distinctItemShowtimes(items))
}
