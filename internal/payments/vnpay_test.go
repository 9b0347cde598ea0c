package payments

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"net/url"
	"strings"
	"testing"
	"time"

	"cinebook/internal/shared/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient() *VNPayClient {
	client := NewVNPayClient(config.VNPayConfig{
		TmnCode:    "TESTCODE",
		HashSecret: "test-secret",
		PayURL:     "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html",
		ReturnURL:  "http://localhost:8080/api/v1/payments/vnpay-callback",
		Version:    "2.1.0",
	})
	client.now = func() time.Time {
		return time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)
	}
	return client
}

func TestCreatePaymentURL(t *testing.T) {
	client := testClient()

	paymentURL, err := client.CreatePaymentURL("ref-123", 160000, "Booking payment", "203.0.113.9")
	require.NoError(t, err)

	parsed, err := url.Parse(paymentURL)
	require.NoError(t, err)
	assert.Equal(t, "sandbox.vnpayment.vn", parsed.Host)

	query := parsed.Query()
	assert.Equal(t, "16000000", query.Get("vnp_Amount"), "amount is VND times 100")
	assert.Equal(t, "ref-123", query.Get("vnp_TxnRef"))
	assert.Equal(t, "TESTCODE", query.Get("vnp_TmnCode"))
	assert.Equal(t, "pay", query.Get("vnp_Command"))
	// 10:30 UTC is 17:30 in the gateway's timezone
	assert.Equal(t, "20250315173000", query.Get("vnp_CreateDate"))
	assert.Equal(t, "20250315174500", query.Get("vnp_ExpireDate"))
	assert.NotEmpty(t, query.Get("vnp_SecureHash"))
}

func TestCreatePaymentURLIsDeterministic(t *testing.T) {
	client := testClient()

	first, err := client.CreatePaymentURL("ref-123", 160000, "Booking payment", "203.0.113.9")
	require.NoError(t, err)
	second, err := client.CreatePaymentURL("ref-123", 160000, "Booking payment", "203.0.113.9")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCreatePaymentURLUnconfigured(t *testing.T) {
	client := NewVNPayClient(config.VNPayConfig{})

	_, err := client.CreatePaymentURL("ref-123", 160000, "Booking payment", "203.0.113.9")
	assert.Error(t, err)
}

func TestVerifyCallback(t *testing.T) {
	client := testClient()

	params := map[string]string{
		"vnp_Amount":        "16000000",
		"vnp_TxnRef":        "ref-123",
		"vnp_ResponseCode":  "00",
		"vnp_TransactionNo": "14212345",
	}
	mac := hmac.New(sha512.New, []byte("test-secret"))
	mac.Write([]byte(encodeParams(params)))
	params["vnp_SecureHash"] = hex.EncodeToString(mac.Sum(nil))

	assert.True(t, client.VerifyCallback(params))
}

func TestVerifyCallbackRejectsTampering(t *testing.T) {
	client := testClient()

	params := map[string]string{
		"vnp_Amount":       "16000000",
		"vnp_TxnRef":       "ref-123",
		"vnp_ResponseCode": "24",
	}
	mac := hmac.New(sha512.New, []byte("test-secret"))
	mac.Write([]byte(encodeParams(params)))
	params["vnp_SecureHash"] = hex.EncodeToString(mac.Sum(nil))

	params["vnp_ResponseCode"] = "00"
	assert.False(t, client.VerifyCallback(params))
}

func TestVerifyCallbackRequiresHash(t *testing.T) {
	client := testClient()

	assert.False(t, client.VerifyCallback(map[string]string{
		"vnp_TxnRef": "ref-123",
	}))
}

func TestVerifyCallbackRoundTrip(t *testing.T) {
	client := testClient()

	paymentURL, err := client.CreatePaymentURL("ref-456", 100000, "Booking payment", "203.0.113.9")
	require.NoError(t, err)

	parsed, err := url.Parse(paymentURL)
	require.NoError(t, err)

	params := make(map[string]string)
	for k, v := range parsed.Query() {
		params[k] = v[0]
	}
	assert.True(t, client.VerifyCallback(params))
}

func TestEncodeParams(t *testing.T) {
	encoded := encodeParams(map[string]string{
		"b": "two words",
		"a": "1",
		"c": "",
	})

	assert.Equal(t, "a=1&b=two+words", encoded)
	assert.False(t, strings.Contains(encoded, "c="), "empty values are dropped")
}
