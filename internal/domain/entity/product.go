package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product represents a sellable item in the store catalog
type Product struct {
	ID                uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name              string         `gorm:"size:255;not null" json:"name"`
	Category          string         `gorm:"size:100;index" json:"category"`
	Brand             string         `gorm:"size:100" json:"brand"`
	Description       *string        `gorm:"type:text" json:"description,omitempty"`
	Price             int64          `gorm:"not null;default:0" json:"-"` // Stored in cents
	Stock             int            `gorm:"not null;default:0;check:stock >= 0" json:"stock"`
	MinStockThreshold int            `gorm:"default:5" json:"min_stock_threshold"`
	ImageURL          *string        `gorm:"size:512" json:"image_url,omitempty"`
	IsActive          bool           `gorm:"default:true" json:"is_active"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (p Product) MarshalJSON() ([]byte, error) {
	type Alias Product
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
	}{
		Alias: Alias(p),
		Price: float64(p.Price) / 100,
	})
}

// UnmarshalJSON mirrors MarshalJSON so a serialized product round-trips
// losslessly: the decimal price field is converted back to cents.
func (p *Product) UnmarshalJSON(data []byte) error {
	type Alias Product
	aux := &struct {
		*Alias
		Price float64 `json:"price"`
	}{Alias: (*Alias)(p)}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}
	p.Price = decimalToCents(aux.Price)
	return nil
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// GetPriceDecimal returns the selling price as a decimal (for display)
func (p *Product) GetPriceDecimal() float64 {
	return float64(p.Price) / 100
}

// SetPriceFromDecimal sets the selling price from a decimal value
func (p *Product) SetPriceFromDecimal(price float64) {
	p.Price = decimalToCents(price)
}

// IsLowStock reports whether stock has fallen to or below the alert threshold
func (p *Product) IsLowStock() bool {
	return p.Stock <= p.MinStockThreshold
}
