package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/atkinsguitar/pos-api/internal/domain/entity"
	"github.com/atkinsguitar/pos-api/internal/domain/repository"
	"github.com/atkinsguitar/pos-api/pkg/apperror"
	"github.com/atkinsguitar/pos-api/pkg/pagination"
)

// ProductService owns catalog management: the CRUD surface used by admins
// and the read paths the register depends on.
type ProductService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// CreateProductInput carries a new product. Price is a decimal amount,
// converted to cents before storage.
type CreateProductInput struct {
	Name              string
	Category          string
	Brand             string
	Description       *string
	Price             float64
	Stock             int
	MinStockThreshold int
	ImageURL          *string
}

func (s *ProductService) Create(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	if input.Price < 0 {
		return nil, apperror.NewBadRequestError("price cannot be negative")
	}
	if input.Stock < 0 {
		return nil, apperror.NewBadRequestError("stock cannot be negative")
	}

	product := &entity.Product{
		Name:              input.Name,
		Category:          input.Category,
		Brand:             input.Brand,
		Description:       input.Description,
		Stock:             input.Stock,
		MinStockThreshold: input.MinStockThreshold,
		ImageURL:          input.ImageURL,
		IsActive:          true,
	}
	product.SetPriceFromDecimal(input.Price)
	if product.MinStockThreshold <= 0 {
		product.MinStockThreshold = 5
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// UpdateProductInput carries a partial product update. Nil fields are left
// unchanged.
type UpdateProductInput struct {
	Name              *string
	Category          *string
	Brand             *string
	Description       *string
	Price             *float64
	Stock             *int
	MinStockThreshold *int
	ImageURL          *string
	IsActive          *bool
}

func (s *ProductService) Update(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.Brand != nil {
		product.Brand = *input.Brand
	}
	if input.Description != nil {
		product.Description = input.Description
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, apperror.NewBadRequestError("price cannot be negative")
		}
		product.SetPriceFromDecimal(*input.Price)
	}
	if input.Stock != nil {
		if *input.Stock < 0 {
			return nil, apperror.NewBadRequestError("stock cannot be negative")
		}
		product.Stock = *input.Stock
	}
	if input.MinStockThreshold != nil {
		product.MinStockThreshold = *input.MinStockThreshold
	}
	if input.ImageURL != nil {
		product.ImageURL = input.ImageURL
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete soft-deletes a product. Transaction history lines keep their own
// name and price snapshot, so past receipts are unaffected.
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, id)
}

func (s *ProductService) List(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	meta := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, meta), nil
}

// Catalog returns all sellable products, the register's working set.
func (s *ProductService) Catalog(ctx context.Context) ([]entity.Product, error) {
	return s.productRepo.ListActive(ctx)
}

func (s *ProductService) ListCategories(ctx context.Context) ([]string, error) {
	return s.productRepo.ListCategories(ctx)
}

func (s *ProductService) GetLowStock(ctx context.Context) ([]entity.Product, error) {
	return s.productRepo.GetLowStock(ctx)
}
