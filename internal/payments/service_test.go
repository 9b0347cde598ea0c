package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"cinebook/internal/bookings"
	"cinebook/internal/seats"
	"cinebook/internal/shared/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRepository struct {
	createPayment              func(ctx context.Context, payment *Payment) error
	getPaymentByID             func(ctx context.Context, id uuid.UUID) (*Payment, error)
	getPaymentByTransactionRef func(ctx context.Context, ref string) (*Payment, error)
	getPaymentsByBookingID     func(ctx context.Context, bookingID uuid.UUID) ([]Payment, error)
	updatePaymentStatus        func(ctx context.Context, id uuid.UUID, status Status) error
}

func (m *mockRepository) CreatePayment(ctx context.Context, payment *Payment) error {
	return m.createPayment(ctx, payment)
}

func (m *mockRepository) GetPaymentByID(ctx context.Context, id uuid.UUID) (*Payment, error) {
	return m.getPaymentByID(ctx, id)
}

func (m *mockRepository) GetPaymentByTransactionRef(ctx context.Context, ref string) (*Payment, error) {
	return m.getPaymentByTransactionRef(ctx, ref)
}

func (m *mockRepository) GetPaymentsByBookingID(ctx context.Context, bookingID uuid.UUID) ([]Payment, error) {
	return m.getPaymentsByBookingID(ctx, bookingID)
}

func (m *mockRepository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status Status) error {
	return m.updatePaymentStatus(ctx, id, status)
}

type mockBookingRepository struct {
	getBookingByID      func(ctx context.Context, id uuid.UUID) (*bookings.Booking, error)
	updateBookingStatus func(ctx context.Context, id uuid.UUID, status bookings.Status) error
	deleteBooking       func(ctx context.Context, id uuid.UUID) error
}

func (m *mockBookingRepository) CreateBookingWithItems(ctx context.Context, userID uuid.UUID) (*bookings.Booking, error) {
	panic("not expected in payment tests")
}

func (m *mockBookingRepository) GetBookingByID(ctx context.Context, id uuid.UUID) (*bookings.Booking, error) {
	return m.getBookingByID(ctx, id)
}

func (m *mockBookingRepository) GetUserBookings(ctx context.Context, userID uuid.UUID, limit, offset int) ([]bookings.Booking, int64, error) {
	panic("not expected in payment tests")
}

func (m *mockBookingRepository) UpdateBookingStatus(ctx context.Context, id uuid.UUID, status bookings.Status) error {
	return m.updateBookingStatus(ctx, id, status)
}

func (m *mockBookingRepository) DeleteBooking(ctx context.Context, id uuid.UUID) error {
	return m.deleteBooking(ctx, id)
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

func signedParams(secret string, params map[string]string) map[string]string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write([]byte(encodeParams(params)))
	params["vnp_SecureHash"] = hex.EncodeToString(mac.Sum(nil))
	return params
}

func TestInitiatePaymentCash(t *testing.T) {
	booking := &bookings.Booking{ID: uuid.New(), TotalPrice: 160000}

	var created *Payment
	repo := &mockRepository{
		createPayment: func(ctx context.Context, payment *Payment) error {
			payment.ID = uuid.New()
			created = payment
			return nil
		},
	}

	svc := NewService(repo, &mockBookingRepository{}, &stubSeatService{}, testClient(), nil)

	info, err := svc.InitiatePayment(context.Background(), booking, "CASH", "")
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Equal(t, booking.ID, created.BookingID)
	assert.Equal(t, MethodCash, created.Method)
	assert.Equal(t, StatusUnpaid, created.Status)
	assert.NotEmpty(t, created.TransactionRef)

	assert.Equal(t, float64(160000), info.Amount)
	assert.Empty(t, info.PaymentURL, "cash payments have no gateway redirect")
}

func TestInitiatePaymentVNPay(t *testing.T) {
	booking := &bookings.Booking{ID: uuid.New(), TotalPrice: 160000}

	repo := &mockRepository{
		createPayment: func(ctx context.Context, payment *Payment) error {
			payment.ID = uuid.New()
			return nil
		},
	}

	svc := NewService(repo, &mockBookingRepository{}, &stubSeatService{}, testClient(), nil)

	info, err := svc.InitiatePayment(context.Background(), booking, "VNPAY", "203.0.113.9")
	require.NoError(t, err)
	assert.Contains(t, info.PaymentURL, "vnp_SecureHash=")
}

func TestInitiatePaymentVNPayUnconfiguredGateway(t *testing.T) {
	booking := &bookings.Booking{ID: uuid.New(), TotalPrice: 160000}

	repo := &mockRepository{
		createPayment: func(ctx context.Context, payment *Payment) error {
			payment.ID = uuid.New()
			return nil
		},
	}
	gateway := NewVNPayClient(config.VNPayConfig{})

	svc := NewService(repo, &mockBookingRepository{}, &stubSeatService{}, gateway, nil)

	info, err := svc.InitiatePayment(context.Background(), booking, "VNPAY", "203.0.113.9")
	require.NoError(t, err, "URL trouble must not fail payment creation")
	assert.Empty(t, info.PaymentURL)
	assert.Equal(t, "UNPAID", info.Status)
}

func TestInitiatePaymentInvalidMethod(t *testing.T) {
	repoCalled := false
	repo := &mockRepository{
		createPayment: func(ctx context.Context, payment *Payment) error {
			repoCalled = true
			return nil
		},
	}

	svc := NewService(repo, &mockBookingRepository{}, &stubSeatService{}, testClient(), nil)

	_, err := svc.InitiatePayment(context.Background(), &bookings.Booking{ID: uuid.New()}, "CRYPTO", "")
	assert.ErrorIs(t, err, ErrInvalidMethod)
	assert.False(t, repoCalled)
}

func TestHandleGatewayCallbackSuccess(t *testing.T) {
	payment := &Payment{ID: uuid.New(), BookingID: uuid.New(), TransactionRef: "ref-123", Status: StatusUnpaid}

	var paymentStatus Status
	repo := &mockRepository{
		getPaymentByTransactionRef: func(ctx context.Context, ref string) (*Payment, error) {
			assert.Equal(t, "ref-123", ref)
			return payment, nil
		},
		updatePaymentStatus: func(ctx context.Context, id uuid.UUID, status Status) error {
			paymentStatus = status
			return nil
		},
	}
	var bookingStatus bookings.Status
	bookingRepo := &mockBookingRepository{
		updateBookingStatus: func(ctx context.Context, id uuid.UUID, status bookings.Status) error {
			assert.Equal(t, payment.BookingID, id)
			bookingStatus = status
			return nil
		},
	}

	svc := NewService(repo, bookingRepo, &stubSeatService{}, testClient(), nil)

	params := signedParams("test-secret", map[string]string{
		"vnp_TxnRef":       "ref-123",
		"vnp_ResponseCode": "00",
		"vnp_Amount":       "16000000",
	})

	result, err := svc.HandleGatewayCallback(context.Background(), params)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, "00", result.Code)
	assert.Equal(t, StatusPaid, paymentStatus)
	assert.Equal(t, bookings.StatusConfirmed, bookingStatus)
}

func TestHandleGatewayCallbackFailure(t *testing.T) {
	showtimeID := uuid.New()
	payment := &Payment{ID: uuid.New(), BookingID: uuid.New(), TransactionRef: "ref-123", Status: StatusUnpaid}
	booking := &bookings.Booking{
		ID: payment.BookingID,
		Items: []bookings.BookingItem{
			{SeatID: uuid.New(), ShowTimeID: showtimeID},
			{SeatID: uuid.New(), ShowTimeID: showtimeID},
		},
	}

	var paymentStatus Status
	repo := &mockRepository{
		getPaymentByTransactionRef: func(ctx context.Context, ref string) (*Payment, error) {
			return payment, nil
		},
		updatePaymentStatus: func(ctx context.Context, id uuid.UUID, status Status) error {
			paymentStatus = status
			return nil
		},
	}
	deleted := false
	bookingRepo := &mockBookingRepository{
		getBookingByID: func(ctx context.Context, id uuid.UUID) (*bookings.Booking, error) {
			return booking, nil
		},
		deleteBooking: func(ctx context.Context, id uuid.UUID) error {
			assert.Equal(t, payment.BookingID, id)
			deleted = true
			return nil
		},
	}
	seatSvc := &stubSeatService{}

	svc := NewService(repo, bookingRepo, seatSvc, testClient(), nil)

	params := signedParams("test-secret", map[string]string{
		"vnp_TxnRef":       "ref-123",
		"vnp_ResponseCode": "24",
	})

	result, err := svc.HandleGatewayCallback(context.Background(), params)
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, StatusFailed, paymentStatus)
	assert.True(t, deleted, "failed payment releases the booking")
	assert.Equal(t, []uuid.UUID{showtimeID}, seatSvc.invalidated)
}

func TestHandleGatewayCallbackBadSignature(t *testing.T) {
	lookedUp := false
	repo := &mockRepository{
		getPaymentByTransactionRef: func(ctx context.Context, ref string) (*Payment, error) {
			lookedUp = true
			return nil, ErrPaymentNotFound
		},
	}

	svc := NewService(repo, &mockBookingRepository{}, &stubSeatService{}, testClient(), nil)

	params := map[string]string{
		"vnp_TxnRef":       "ref-123",
		"vnp_ResponseCode": "00",
		"vnp_SecureHash":   "deadbeef",
	}

	_, err := svc.HandleGatewayCallback(context.Background(), params)
	assert.ErrorIs(t, err, ErrInvalidSignature)
	assert.False(t, lookedUp)
}

func TestHandleGatewayCallbackUnknownRef(t *testing.T) {
	repo := &mockRepository{
		getPaymentByTransactionRef: func(ctx context.Context, ref string) (*Payment, error) {
			return nil, ErrPaymentNotFound
		},
	}

	svc := NewService(repo, &mockBookingRepository{}, &stubSeatService{}, testClient(), nil)

	params := signedParams("test-secret", map[string]string{
		"vnp_TxnRef":       "missing",
		"vnp_ResponseCode": "00",
	})

	_, err := svc.HandleGatewayCallback(context.Background(), params)
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}
