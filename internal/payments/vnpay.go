package payments

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"cinebook/internal/shared/config"
)

const (
	vnpCommand     = "pay"
	vnpCurrency    = "VND"
	vnpLocale      = "vn"
	vnpOrderType   = "other"
	vnpSuccessCode = "00"
	vnpURLLifetime = 15 * time.Minute
)

// gateway clock; VNPay expects timestamps in Vietnam local time
var vnpTimezone = time.FixedZone("GMT+7", 7*60*60)

// VNPayClient signs payment URLs and verifies gateway callbacks.
// Signature scheme: HMAC-SHA512 over the sorted, URL-encoded parameter
// string, hex-encoded.
type VNPayClient struct {
	cfg config.VNPayConfig
	now func() time.Time
}

func NewVNPayClient(cfg config.VNPayConfig) *VNPayClient {
	return &VNPayClient{cfg: cfg, now: time.Now}
}

// CreatePaymentURL builds the signed redirect URL for one transaction.
// amount is in VND; the gateway wants it multiplied by 100.
func (c *VNPayClient) CreatePaymentURL(transactionRef string, amount float64, orderInfo, clientIP string) (string, error) {
	if c.cfg.TmnCode == "" || c.cfg.HashSecret == "" {
		return "", fmt.Errorf("vnpay gateway is not configured")
	}

	createdAt := c.now().In(vnpTimezone)
	params := map[string]string{
		"vnp_Version":    c.cfg.Version,
		"vnp_Command":    vnpCommand,
		"vnp_TmnCode":    c.cfg.TmnCode,
		"vnp_Amount":     fmt.Sprintf("%d", int64(amount*100)),
		"vnp_CurrCode":   vnpCurrency,
		"vnp_TxnRef":     transactionRef,
		"vnp_OrderInfo":  orderInfo,
		"vnp_OrderType":  vnpOrderType,
		"vnp_Locale":     vnpLocale,
		"vnp_ReturnUrl":  c.cfg.ReturnURL,
		"vnp_IpAddr":     clientIP,
		"vnp_CreateDate": createdAt.Format("20060102150405"),
		"vnp_ExpireDate": createdAt.Add(vnpURLLifetime).Format("20060102150405"),
	}

	query := encodeParams(params)
	signature := c.sign(query)

	return c.cfg.PayURL + "?" + query + "&vnp_SecureHash=" + signature, nil
}

// VerifyCallback checks the signature on a gateway callback. The
// vnp_SecureHash parameters themselves are excluded from the hash input.
func (c *VNPayClient) VerifyCallback(params map[string]string) bool {
	received := params["vnp_SecureHash"]
	if received == "" {
		return false
	}

	filtered := make(map[string]string, len(params))
	for k, v := range params {
		if k == "vnp_SecureHash" || k == "vnp_SecureHashType" {
			continue
		}
		filtered[k] = v
	}

	expected := c.sign(encodeParams(filtered))
	return hmac.Equal([]byte(expected), []byte(received))
}

func (c *VNPayClient) sign(data string) string {
	mac := hmac.New(sha512.New, []byte(c.cfg.HashSecret))
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}

// encodeParams renders params as key=value&... with keys sorted and
// values query-escaped, skipping empty values. This exact form is both
// the hash input and the query string.
func encodeParams(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if v == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(params[k]))
	}
	return b.String()
}
