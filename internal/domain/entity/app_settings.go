package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppSettings holds store identity and receipt configuration. The table is a
// singleton: the first row wins, and updates go through an upsert.
type AppSettings struct {
	ID                       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	StoreName                string    `gorm:"size:255;not null" json:"store_name"`
	StoreAddress             string    `gorm:"size:512" json:"store_address"`
	StorePhone               string    `gorm:"size:50" json:"store_phone"`
	StoreEmail               string    `gorm:"size:255" json:"store_email"`
	DefaultLowStockThreshold int       `gorm:"default:5" json:"default_low_stock_threshold"`
	ReceiptFooter            string    `gorm:"size:512" json:"receipt_footer"`
	CreatedAt                time.Time `json:"created_at"`
	UpdatedAt                time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating new settings
func (s *AppSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the AppSettings model
func (AppSettings) TableName() string {
	return "app_settings"
}

// DefaultAppSettings returns the hardcoded fallback used when no settings
// row exists or the settings read fails. Receipts must still render.
func DefaultAppSettings() *AppSettings {
	return &AppSettings{
		StoreName:                "Atkins Guitar Store",
		StoreAddress:             "123 Main Street, City",
		StorePhone:               "(123) 456-7890",
		StoreEmail:               "info@atkinsguitar.com",
		DefaultLowStockThreshold: 5,
		ReceiptFooter:            "Thank you for your purchase!",
	}
}
