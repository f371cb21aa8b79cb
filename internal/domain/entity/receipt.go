package entity

// ReceiptHeader holds the store/business header printed at the top of a receipt.
type ReceiptHeader struct {
	StoreName string `json:"store_name"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
}

// ReceiptItem represents a single line item on a receipt.
type ReceiptItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Subtotal  float64 `json:"subtotal"`
}

// Receipt is a value object representing a printable receipt. It is not
// stored: it is recomputed from transaction data and settings on every view
// or reprint request.
type Receipt struct {
	Header            ReceiptHeader `json:"header"`
	TransactionNumber string        `json:"transaction_number"`
	Date              string        `json:"date"`
	Cashier           string        `json:"cashier,omitempty"`
	PaymentType       string        `json:"payment_type"`
	Items             []ReceiptItem `json:"items"`
	TotalAmount       float64       `json:"total_amount"`
	AmountPaid        float64       `json:"amount_paid"`
	ChangeAmount      float64       `json:"change_amount"`
	Notes             string        `json:"notes,omitempty"`
	Footer            string        `json:"footer,omitempty"`
}
