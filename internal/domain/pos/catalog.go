package pos

import "github.com/google/uuid"

// Product is the catalog view the cart works against: the fields a register
// needs to price and stock-check a line, nothing more.
type Product struct {
	ID    uuid.UUID
	Name  string
	Price int64 // cents
	Stock int
}

// CatalogSnapshot is the set of sellable products as of the last catalog
// read. It is read-only for the lifetime of a checkout session; concurrent
// sales from other terminals are not visible until a new snapshot is built.
// The authoritative stock check happens again inside the commit transaction.
type CatalogSnapshot struct {
	products map[uuid.UUID]Product
}

// NewCatalogSnapshot builds a snapshot from a set of products.
func NewCatalogSnapshot(products []Product) *CatalogSnapshot {
	m := make(map[uuid.UUID]Product, len(products))
	for _, p := range products {
		m[p.ID] = p
	}
	return &CatalogSnapshot{products: m}
}

// Lookup returns the product for the given id, if present.
func (s *CatalogSnapshot) Lookup(id uuid.UUID) (Product, bool) {
	p, ok := s.products[id]
	return p, ok
}

// StockFor returns the known stock for the given product id, or 0 if the
// product is not in the snapshot.
func (s *CatalogSnapshot) StockFor(id uuid.UUID) int {
	return s.products[id].Stock
}

// Len returns the number of products in the snapshot.
func (s *CatalogSnapshot) Len() int {
	return len(s.products)
}
