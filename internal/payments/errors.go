package payments

import "errors"

var (
	ErrPaymentNotFound  = errors.New("payment not found")
	ErrInvalidSignature = errors.New("invalid gateway signature")
	ErrInvalidMethod    = errors.New("invalid payment method")
)
