package repository

import (
	"context"

	"github.com/atkinsguitar/pos-api/internal/domain/entity"
	"github.com/atkinsguitar/pos-api/pkg/pagination"
	"github.com/google/uuid"
)

// ProductFilterParams holds filtering options for listing products
type ProductFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Category   string
	ActiveOnly bool
	LowStock   bool
	SortBy     string
	SortOrder  string
}

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ProductFilterParams) ([]entity.Product, int64, error)
	ListActive(ctx context.Context) ([]entity.Product, error)
	ListCategories(ctx context.Context) ([]string, error)
	GetLowStock(ctx context.Context) ([]entity.Product, error)
}
