package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/atkinsguitar/pos-api/internal/domain/entity"
	"github.com/atkinsguitar/pos-api/internal/domain/repository"
)

// In-memory repository fakes shared by the service tests. They are mutexed
// so concurrency tests can hammer them from multiple goroutines.

type mockProductRepo struct {
	mu       sync.Mutex
	products map[uuid.UUID]*entity.Product
}

func newMockProductRepo(products ...*entity.Product) *mockProductRepo {
	m := &mockProductRepo{products: make(map[uuid.UUID]*entity.Product)}
	for _, p := range products {
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		m.products[p.ID] = p
	}
	return m
}

func (m *mockProductRepo) Create(ctx context.Context, p *entity.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.CreatedAt = time.Now()
	m.products[p.ID] = p
	return nil
}

func (m *mockProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *mockProductRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entity.Product
	for _, id := range ids {
		if p, ok := m.products[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *mockProductRepo) Update(ctx context.Context, p *entity.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products[p.ID] = p
	return nil
}

func (m *mockProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.products, id)
	return nil
}

func (m *mockProductRepo) List(ctx context.Context, params *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entity.Product
	for _, p := range m.products {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (m *mockProductRepo) ListActive(ctx context.Context) ([]entity.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entity.Product
	for _, p := range m.products {
		if p.IsActive {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *mockProductRepo) ListCategories(ctx context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	seen := map[string]bool{}
	var out []string
	for _, p := range m.products {
		if p.Category != "" && !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out, nil
}

func (m *mockProductRepo) GetLowStock(ctx context.Context) ([]entity.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entity.Product
	for _, p := range m.products {
		if p.IsActive && p.IsLowStock() {
			out = append(out, *p)
		}
	}
	return out, nil
}

// mockTxnRepo implements CommitSale with the same conditional-decrement
// semantics as the real repository: stock is re-checked under the lock and
// a losing line rejects the whole sale.
type mockTxnRepo struct {
	mu       sync.Mutex
	products *mockProductRepo
	txns     map[uuid.UUID]*entity.Transaction
	order    []uuid.UUID
	seq      int

	lastListLimit   int
	getWithItemsErr error
}

func newMockTxnRepo(products *mockProductRepo) *mockTxnRepo {
	return &mockTxnRepo{
		products: products,
		txns:     make(map[uuid.UUID]*entity.Transaction),
	}
}

func (m *mockTxnRepo) CommitSale(ctx context.Context, input *repository.SaleInput) (*repository.SaleResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products.mu.Lock()
	defer m.products.mu.Unlock()

	var conflicts []string
	for _, line := range input.Lines {
		p, ok := m.products.products[line.ProductID]
		if !ok || !p.IsActive || p.Stock < line.Quantity {
			conflicts = append(conflicts, line.Name)
		}
	}
	if len(conflicts) > 0 {
		return nil, &repository.StockConflictError{ProductNames: conflicts}
	}

	for _, line := range input.Lines {
		m.products.products[line.ProductID].Stock -= line.Quantity
	}

	m.seq++
	var total int64
	for _, line := range input.Lines {
		total += line.UnitPrice * int64(line.Quantity)
	}

	txn := &entity.Transaction{
		ID:                uuid.New(),
		TransactionNumber: fmt.Sprintf("TXN-%s-%04d", time.Now().Format("20060102"), m.seq),
		CashierID:         input.CashierID,
		CashierName:       input.CashierName,
		TotalAmount:       total,
		PaymentType:       input.PaymentType,
		AmountPaid:        input.AmountPaid,
		ChangeAmount:      input.AmountPaid - total,
		CreatedAt:         time.Now(),
	}
	if input.Notes != "" {
		notes := input.Notes
		txn.Notes = &notes
	}
	for _, line := range input.Lines {
		txn.Items = append(txn.Items, entity.TransactionItem{
			ID:            uuid.New(),
			TransactionID: txn.ID,
			ProductID:     line.ProductID,
			ProductName:   line.Name,
			Quantity:      line.Quantity,
			PriceEach:     line.UnitPrice,
			Subtotal:      line.UnitPrice * int64(line.Quantity),
		})
	}

	m.txns[txn.ID] = txn
	m.order = append(m.order, txn.ID)

	return &repository.SaleResult{
		TransactionID:     txn.ID,
		TransactionNumber: txn.TransactionNumber,
	}, nil
}

func (m *mockTxnRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getWithItemsErr != nil {
		return nil, m.getWithItemsErr
	}
	txn, ok := m.txns[id]
	if !ok {
		return nil, nil
	}
	cp := *txn
	return &cp, nil
}

func (m *mockTxnRepo) List(ctx context.Context, limit int) ([]entity.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastListLimit = limit
	var out []entity.Transaction
	// Newest first.
	for i := len(m.order) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, *m.txns[m.order[i]])
	}
	return out, nil
}

func (m *mockTxnRepo) ListByDateRange(ctx context.Context, start, end string) ([]entity.Transaction, error) {
	return m.List(ctx, len(m.order))
}

type mockUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newMockUserRepo(users ...*entity.User) *mockUserRepo {
	m := &mockUserRepo{users: make(map[uuid.UUID]*entity.User)}
	for _, u := range users {
		if u.ID == uuid.Nil {
			u.ID = uuid.New()
		}
		m.users[u.ID] = u
	}
	return m
}

func (m *mockUserRepo) Create(ctx context.Context, u *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.CreatedAt = time.Now()
	m.users[u.ID] = u
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) Update(ctx context.Context, u *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[u.ID] = u
	return nil
}

func (m *mockUserRepo) List(ctx context.Context) ([]entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entity.User
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, nil
}

type mockSettingsRepo struct {
	mu       sync.Mutex
	settings *entity.AppSettings
}

func (m *mockSettingsRepo) Get(ctx context.Context) (*entity.AppSettings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.settings == nil {
		return nil, nil
	}
	cp := *m.settings
	return &cp, nil
}

func (m *mockSettingsRepo) Save(ctx context.Context, s *entity.AppSettings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings = s
	return nil
}
