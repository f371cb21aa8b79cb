package request

// CreateProductRequest is the payload for creating a product. Price is a
// decimal amount.
type CreateProductRequest struct {
	Name              string  `json:"name" binding:"required,max=255"`
	Category          string  `json:"category" binding:"max=100"`
	Brand             string  `json:"brand" binding:"max=100"`
	Description       *string `json:"description"`
	Price             float64 `json:"price" binding:"min=0"`
	Stock             int     `json:"stock" binding:"min=0"`
	MinStockThreshold int     `json:"min_stock_threshold" binding:"min=0"`
	ImageURL          *string `json:"image_url"`
}

// UpdateProductRequest is the payload for a partial product update
type UpdateProductRequest struct {
	Name              *string  `json:"name" binding:"omitempty,max=255"`
	Category          *string  `json:"category" binding:"omitempty,max=100"`
	Brand             *string  `json:"brand" binding:"omitempty,max=100"`
	Description       *string  `json:"description"`
	Price             *float64 `json:"price" binding:"omitempty,min=0"`
	Stock             *int     `json:"stock" binding:"omitempty,min=0"`
	MinStockThreshold *int     `json:"min_stock_threshold" binding:"omitempty,min=0"`
	ImageURL          *string  `json:"image_url"`
	IsActive          *bool    `json:"is_active"`
}

// ListProductsRequest holds the query parameters for the product list
type ListProductsRequest struct {
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
	Search    string `form:"search"`
	Category  string `form:"category"`
	Active    bool   `form:"active"`
	LowStock  bool   `form:"low_stock"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
}
