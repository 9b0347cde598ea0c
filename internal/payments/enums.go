package payments

type Method string

const (
	MethodCash  Method = "CASH"
	MethodVNPay Method = "VNPAY"
)

func (m Method) IsValid() bool {
	switch m {
	case MethodCash, MethodVNPay:
		return true
	}
	return false
}

func (m Method) String() string {
	return string(m)
}

// RequiresGateway reports whether the method needs a redirect URL
func (m Method) RequiresGateway() bool {
	return m == MethodVNPay
}

type Status string

const (
	StatusUnpaid Status = "UNPAID"
	StatusPaid   Status = "PAID"
	StatusFailed Status = "FAILED"
)

func (s Status) String() string {
	return string(s)
}
