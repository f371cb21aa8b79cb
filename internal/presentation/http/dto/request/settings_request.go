package request

// UpdateSettingsRequest replaces the store settings
type UpdateSettingsRequest struct {
	StoreName                string `json:"store_name" binding:"required,max=255"`
	StoreAddress             string `json:"store_address" binding:"max=512"`
	StorePhone               string `json:"store_phone" binding:"max=50"`
	StoreEmail               string `json:"store_email" binding:"omitempty,email,max=255"`
	DefaultLowStockThreshold int    `json:"default_low_stock_threshold" binding:"min=0"`
	ReceiptFooter            string `json:"receipt_footer" binding:"max=512"`
}
