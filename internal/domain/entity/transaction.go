package entity

import (
	"encoding/json"
	"time"

	"github.com/atkinsguitar/pos-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Transaction represents a completed sale. Rows are immutable once written:
// reprints and reports only ever read them back.
type Transaction struct {
	ID                uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	TransactionNumber string           `gorm:"size:100;unique;not null" json:"transaction_number"`
	CashierID         uuid.UUID        `gorm:"type:uuid;not null;index" json:"cashier_id"`
	CashierName       string           `gorm:"size:255;not null" json:"cashier_name"`
	TotalAmount       int64            `gorm:"not null" json:"-"` // Stored in cents
	PaymentType       enum.PaymentType `gorm:"size:50;not null" json:"payment_type"`
	AmountPaid        int64            `gorm:"not null" json:"-"` // Stored in cents
	ChangeAmount      int64            `gorm:"not null" json:"-"` // Stored in cents
	Notes             *string          `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt         time.Time        `gorm:"index" json:"created_at"`

	// Relationships
	Items []TransactionItem `gorm:"foreignKey:TransactionID" json:"items,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (t Transaction) MarshalJSON() ([]byte, error) {
	type Alias Transaction
	return json.Marshal(&struct {
		Alias
		TotalAmount  float64 `json:"total_amount"`
		AmountPaid   float64 `json:"amount_paid"`
		ChangeAmount float64 `json:"change_amount"`
	}{
		Alias:        Alias(t),
		TotalAmount:  float64(t.TotalAmount) / 100,
		AmountPaid:   float64(t.AmountPaid) / 100,
		ChangeAmount: float64(t.ChangeAmount) / 100,
	})
}

// UnmarshalJSON mirrors MarshalJSON so a serialized transaction round-trips
// losslessly: decimal amounts are converted back to cents.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	type Alias Transaction
	aux := &struct {
		*Alias
		TotalAmount  float64 `json:"total_amount"`
		AmountPaid   float64 `json:"amount_paid"`
		ChangeAmount float64 `json:"change_amount"`
	}{Alias: (*Alias)(t)}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}
	t.TotalAmount = decimalToCents(aux.TotalAmount)
	t.AmountPaid = decimalToCents(aux.AmountPaid)
	t.ChangeAmount = decimalToCents(aux.ChangeAmount)
	return nil
}

// BeforeCreate generates a UUID before creating a new transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Transaction model
func (Transaction) TableName() string {
	return "transactions"
}

// TransactionItem is a line of a transaction, a snapshot of the cart line
// at commit time. Items belong to exactly one transaction.
type TransactionItem struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	TransactionID uuid.UUID `gorm:"type:uuid;not null;index" json:"transaction_id"`
	ProductID     uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	ProductName   string    `gorm:"size:255;not null" json:"product_name"`
	Quantity      int       `gorm:"not null" json:"quantity"`
	PriceEach     int64     `gorm:"not null" json:"-"` // Stored in cents
	Subtotal      int64     `gorm:"not null" json:"-"` // Stored in cents
	CreatedAt     time.Time `json:"created_at"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (ti TransactionItem) MarshalJSON() ([]byte, error) {
	type Alias TransactionItem
	return json.Marshal(&struct {
		Alias
		PriceEach float64 `json:"price_each"`
		Subtotal  float64 `json:"subtotal"`
	}{
		Alias:     Alias(ti),
		PriceEach: float64(ti.PriceEach) / 100,
		Subtotal:  float64(ti.Subtotal) / 100,
	})
}

// UnmarshalJSON mirrors MarshalJSON so a serialized item round-trips
// losslessly.
func (ti *TransactionItem) UnmarshalJSON(data []byte) error {
	type Alias TransactionItem
	aux := &struct {
		*Alias
		PriceEach float64 `json:"price_each"`
		Subtotal  float64 `json:"subtotal"`
	}{Alias: (*Alias)(ti)}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}
	ti.PriceEach = decimalToCents(aux.PriceEach)
	ti.Subtotal = decimalToCents(aux.Subtotal)
	return nil
}

// BeforeCreate generates a UUID before creating a new transaction item
func (ti *TransactionItem) BeforeCreate(tx *gorm.DB) error {
	if ti.ID == uuid.Nil {
		ti.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the TransactionItem model
func (TransactionItem) TableName() string {
	return "transaction_items"
}

// TransactionCounter allocates monotonic per-day sequence numbers for
// human-readable transaction numbers. Incremented inside the commit
// transaction so numbers are unique even under concurrent checkouts.
type TransactionCounter struct {
	Day     string `gorm:"size:8;primary_key"`
	LastSeq int    `gorm:"not null;default:0"`
}

// TableName returns the table name for the TransactionCounter model
func (TransactionCounter) TableName() string {
	return "transaction_counters"
}
