package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/atkinsguitar/pos-api/internal/domain/entity"
	"github.com/atkinsguitar/pos-api/internal/domain/enum"
	"github.com/atkinsguitar/pos-api/internal/domain/pos"
	"github.com/atkinsguitar/pos-api/internal/domain/repository"
	"github.com/atkinsguitar/pos-api/pkg/apperror"
)

var (
	checkoutsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pos_checkouts_total",
		Help: "Checkout attempts by outcome",
	}, []string{"outcome"})

	checkoutAmount = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pos_checkout_amount_cents_total",
		Help: "Total value of committed sales in cents",
	})
)

// CommitUnconfirmedError reports that the sale was committed but the
// confirmation read failed. The money and stock moved; callers must present
// this as "committed, confirmation pending", never as a failure, or a retry
// would ring the sale twice.
type CommitUnconfirmedError struct {
	TransactionID     uuid.UUID
	TransactionNumber string
}

func (e *CommitUnconfirmedError) Error() string {
	return "sale " + e.TransactionNumber + " committed but could not be confirmed"
}

// CheckoutLine is one submitted cart line: the product and how many units.
// Prices are never taken from the client; they are read from the catalog at
// submission time.
type CheckoutLine struct {
	ProductID uuid.UUID
	Quantity  int
}

// CheckoutInput is a submitted sale.
type CheckoutInput struct {
	CashierID   uuid.UUID
	PaymentType enum.PaymentType
	AmountPaid  int64 // cents
	Notes       string
	Lines       []CheckoutLine
}

// QuoteLine is a priced cart line returned by Quote.
type QuoteLine struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unit_price"`
	Subtotal  float64   `json:"subtotal"`
}

// Quote is a server-priced view of a cart before checkout.
type Quote struct {
	Lines        []QuoteLine `json:"lines"`
	TotalAmount  float64     `json:"total_amount"`
	AmountPaid   float64     `json:"amount_paid,omitempty"`
	ChangeAmount float64     `json:"change_amount"`
}

// CheckoutService owns the sale flow: pricing a cart against the live
// catalog, validating payment, and committing the sale atomically.
type CheckoutService struct {
	productRepo repository.ProductRepository
	txnRepo     repository.TransactionRepository
	userRepo    repository.UserRepository
}

func NewCheckoutService(
	productRepo repository.ProductRepository,
	txnRepo repository.TransactionRepository,
	userRepo repository.UserRepository,
) *CheckoutService {
	return &CheckoutService{
		productRepo: productRepo,
		txnRepo:     txnRepo,
		userRepo:    userRepo,
	}
}

// buildCart reads a fresh catalog snapshot and replays the submitted lines
// through the cart engine. Stock problems surface here before any write.
func (s *CheckoutService) buildCart(ctx context.Context, lines []CheckoutLine) (*pos.Cart, error) {
	if len(lines) == 0 {
		return nil, apperror.ErrEmptyCart
	}

	ids := make([]uuid.UUID, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.ProductID)
	}

	products, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	catalog := make([]pos.Product, 0, len(products))
	for _, p := range products {
		if !p.IsActive {
			continue
		}
		catalog = append(catalog, pos.Product{
			ID:    p.ID,
			Name:  p.Name,
			Price: p.Price,
			Stock: p.Stock,
		})
	}
	snapshot := pos.NewCatalogSnapshot(catalog)

	cart := pos.NewCart(snapshot)
	for _, l := range lines {
		if l.Quantity < 1 {
			return nil, apperror.NewBadRequestError("quantity must be at least 1")
		}
		if err := cart.AddItem(l.ProductID); err != nil {
			return nil, cartError(err)
		}
		if l.Quantity > 1 {
			if err := cart.SetQuantity(l.ProductID, l.Quantity); err != nil {
				return nil, cartError(err)
			}
		}
	}

	return cart, nil
}

func cartError(err error) error {
	switch {
	case errors.Is(err, pos.ErrUnknownProduct):
		return apperror.NewNotFoundError("Product")
	case errors.Is(err, pos.ErrOutOfStock), errors.Is(err, pos.ErrInsufficientStock):
		return apperror.NewBadRequestError(err.Error())
	default:
		return err
	}
}

// Quote prices a cart against the current catalog without committing
// anything. Used by the register UI to show live totals and change.
func (s *CheckoutService) Quote(ctx context.Context, lines []CheckoutLine, amountPaid int64) (*Quote, error) {
	cart, err := s.buildCart(ctx, lines)
	if err != nil {
		return nil, err
	}

	quote := &Quote{
		TotalAmount:  float64(cart.Total()) / 100,
		AmountPaid:   float64(amountPaid) / 100,
		ChangeAmount: float64(cart.Change(amountPaid)) / 100,
	}
	for _, l := range cart.Lines() {
		quote.Lines = append(quote.Lines, QuoteLine{
			ProductID: l.ProductID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: float64(l.UnitPrice) / 100,
			Subtotal:  float64(l.Subtotal()) / 100,
		})
	}
	return quote, nil
}

// Checkout validates and commits a sale. On success it returns the persisted
// transaction read back with its items, confirming the commit landed.
func (s *CheckoutService) Checkout(ctx context.Context, input *CheckoutInput) (*entity.Transaction, error) {
	if !input.PaymentType.IsValid() {
		checkoutsTotal.WithLabelValues("rejected").Inc()
		return nil, apperror.NewBadRequestError("invalid payment type")
	}

	cashier, err := s.userRepo.GetByID(ctx, input.CashierID)
	if err != nil {
		return nil, err
	}
	if cashier == nil {
		checkoutsTotal.WithLabelValues("rejected").Inc()
		return nil, apperror.NewNotFoundError("Cashier")
	}
	if !cashier.IsActive {
		checkoutsTotal.WithLabelValues("rejected").Inc()
		return nil, apperror.ErrAccountDeactivated
	}

	cart, err := s.buildCart(ctx, input.Lines)
	if err != nil {
		checkoutsTotal.WithLabelValues("rejected").Inc()
		return nil, err
	}

	total := cart.Total()
	if input.AmountPaid < total {
		checkoutsTotal.WithLabelValues("rejected").Inc()
		return nil, apperror.ErrInsufficientPayment
	}

	saleLines := make([]repository.SaleLine, 0, len(cart.Lines()))
	for _, l := range cart.Lines() {
		saleLines = append(saleLines, repository.SaleLine{
			ProductID: l.ProductID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		})
	}

	result, err := s.txnRepo.CommitSale(ctx, &repository.SaleInput{
		CashierID:   cashier.ID,
		CashierName: cashier.Name,
		PaymentType: input.PaymentType,
		AmountPaid:  input.AmountPaid,
		Notes:       input.Notes,
		Lines:       saleLines,
	})
	if err != nil {
		var conflict *repository.StockConflictError
		if errors.As(err, &conflict) {
			checkoutsTotal.WithLabelValues("stock_conflict").Inc()
			return nil, apperror.NewConflictError(conflict.Error())
		}
		checkoutsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	checkoutsTotal.WithLabelValues("committed").Inc()
	checkoutAmount.Add(float64(total))

	// Read the committed row back so the caller gets the authoritative
	// record, not an in-memory reconstruction. The commit has already
	// landed: a failure here is an unconfirmed sale, not a failed one.
	txn, err := s.txnRepo.GetWithItems(ctx, result.TransactionID)
	if err != nil || txn == nil {
		return nil, &CommitUnconfirmedError{
			TransactionID:     result.TransactionID,
			TransactionNumber: result.TransactionNumber,
		}
	}

	return txn, nil
}
