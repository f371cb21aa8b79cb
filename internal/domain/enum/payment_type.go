package enum

// PaymentType represents how a sale was paid for
type PaymentType string

const (
	PaymentTypeCash  PaymentType = "cash"
	PaymentTypeGCash PaymentType = "gcash"
	PaymentTypeCard  PaymentType = "card"
)

// IsValid reports whether the payment type is one of the accepted values
func (p PaymentType) IsValid() bool {
	switch p {
	case PaymentTypeCash, PaymentTypeGCash, PaymentTypeCard:
		return true
	}
	return false
}

func (p PaymentType) String() string {
	return string(p)
}
