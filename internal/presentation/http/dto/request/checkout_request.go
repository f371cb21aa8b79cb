package request

import "github.com/google/uuid"

// CheckoutItemRequest is one submitted cart line. No price field: prices
// come from the server catalog, never from the client.
type CheckoutItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

// CheckoutRequest is the payload for committing a sale. Amounts are decimal.
type CheckoutRequest struct {
	Items       []CheckoutItemRequest `json:"items" binding:"required,min=1,dive"`
	PaymentType string                `json:"payment_type" binding:"required"`
	AmountPaid  float64               `json:"amount_paid" binding:"required,min=0"`
	Notes       string                `json:"notes" binding:"max=1000"`
}

// QuoteRequest prices a cart without committing it
type QuoteRequest struct {
	Items      []CheckoutItemRequest `json:"items" binding:"required,min=1,dive"`
	AmountPaid float64               `json:"amount_paid" binding:"min=0"`
}
