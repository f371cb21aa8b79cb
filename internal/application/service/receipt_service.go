package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/atkinsguitar/pos-api/internal/domain/entity"
	"github.com/atkinsguitar/pos-api/internal/domain/repository"
	"github.com/atkinsguitar/pos-api/pkg/apperror"
	"github.com/atkinsguitar/pos-api/pkg/printer"
)

// standardWidth is the character width of the plain-text receipt layout.
const standardWidth = 48

// ReceiptService builds printable receipts from transaction data. Receipts
// are never stored; a reprint rebuilds the receipt from the transaction row
// and whatever the store settings are at that moment.
type ReceiptService struct {
	txnRepo      repository.TransactionRepository
	settingsRepo repository.SettingsRepository
}

func NewReceiptService(txnRepo repository.TransactionRepository, settingsRepo repository.SettingsRepository) *ReceiptService {
	return &ReceiptService{txnRepo: txnRepo, settingsRepo: settingsRepo}
}

// Build fetches a transaction and assembles its receipt. A missing or
// unreadable settings row falls back to the built-in defaults so a reprint
// always succeeds.
func (s *ReceiptService) Build(ctx context.Context, transactionID uuid.UUID) (*entity.Receipt, error) {
	txn, err := s.txnRepo.GetWithItems(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn == nil {
		return nil, apperror.NewNotFoundError("Transaction")
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil || settings == nil {
		settings = entity.DefaultAppSettings()
	}

	return BuildReceipt(txn, settings), nil
}

// BuildReceipt assembles a receipt value from a transaction and settings.
// Pure: no I/O, so layout tests can drive it directly.
func BuildReceipt(txn *entity.Transaction, settings *entity.AppSettings) *entity.Receipt {
	receipt := &entity.Receipt{
		Header: entity.ReceiptHeader{
			StoreName: settings.StoreName,
			Address:   settings.StoreAddress,
			Phone:     settings.StorePhone,
			Email:     settings.StoreEmail,
		},
		TransactionNumber: txn.TransactionNumber,
		Date:              txn.CreatedAt.Format("2006-01-02 15:04:05"),
		Cashier:           txn.CashierName,
		PaymentType:       strings.ToUpper(txn.PaymentType.String()),
		TotalAmount:       float64(txn.TotalAmount) / 100,
		AmountPaid:        float64(txn.AmountPaid) / 100,
		ChangeAmount:      float64(txn.ChangeAmount) / 100,
		Footer:            settings.ReceiptFooter,
	}
	if txn.Notes != nil {
		receipt.Notes = *txn.Notes
	}
	for _, item := range txn.Items {
		receipt.Items = append(receipt.Items, entity.ReceiptItem{
			Name:      item.ProductName,
			Quantity:  item.Quantity,
			UnitPrice: float64(item.PriceEach) / 100,
			Subtotal:  float64(item.Subtotal) / 100,
		})
	}
	return receipt
}

// RenderText renders the receipt as plain text for on-screen display or a
// standard printer. Same fields as the thermal layout, wider paper.
func (s *ReceiptService) RenderText(receipt *entity.Receipt) string {
	var b strings.Builder
	rule := strings.Repeat("-", standardWidth)

	center := func(text string) {
		if pad := (standardWidth - len(text)) / 2; pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		b.WriteString(text)
		b.WriteByte('\n')
	}
	keyValue := func(key, value string) {
		pad := standardWidth - len(key) - len(value)
		if pad < 1 {
			pad = 1
		}
		b.WriteString(key + strings.Repeat(" ", pad) + value + "\n")
	}

	center(receipt.Header.StoreName)
	if receipt.Header.Address != "" {
		center(receipt.Header.Address)
	}
	if receipt.Header.Phone != "" {
		center(receipt.Header.Phone)
	}
	if receipt.Header.Email != "" {
		center(receipt.Header.Email)
	}
	b.WriteString(rule + "\n")

	keyValue("Receipt:", receipt.TransactionNumber)
	keyValue("Date:", receipt.Date)
	if receipt.Cashier != "" {
		keyValue("Cashier:", receipt.Cashier)
	}
	b.WriteString(rule + "\n")

	for _, item := range receipt.Items {
		b.WriteString(item.Name + "\n")
		detail := fmt.Sprintf("  %d x %s", item.Quantity, formatAmount(item.UnitPrice))
		keyValue(detail, formatAmount(item.Subtotal))
	}
	b.WriteString(rule + "\n")

	keyValue("TOTAL:", formatAmount(receipt.TotalAmount))
	keyValue(receipt.PaymentType+":", formatAmount(receipt.AmountPaid))
	keyValue("CHANGE:", formatAmount(receipt.ChangeAmount))

	if receipt.Notes != "" {
		b.WriteString(rule + "\n")
		b.WriteString("Notes: " + receipt.Notes + "\n")
	}
	if receipt.Footer != "" {
		b.WriteString(rule + "\n")
		center(receipt.Footer)
	}

	return b.String()
}

// RenderThermal renders the receipt as an ESC/POS byte stream for a 58mm
// thermal printer. Field for field the same content as RenderText.
func (s *ReceiptService) RenderThermal(receipt *entity.Receipt) []byte {
	doc := printer.NewDocument(printer.Width58mm)

	doc.AlignCenter().Bold(true).Line(receipt.Header.StoreName).Bold(false)
	if receipt.Header.Address != "" {
		doc.Line(receipt.Header.Address)
	}
	if receipt.Header.Phone != "" {
		doc.Line(receipt.Header.Phone)
	}
	if receipt.Header.Email != "" {
		doc.Line(receipt.Header.Email)
	}

	doc.AlignLeft().Rule()
	doc.KeyValue("Receipt:", receipt.TransactionNumber)
	doc.KeyValue("Date:", receipt.Date)
	if receipt.Cashier != "" {
		doc.KeyValue("Cashier:", receipt.Cashier)
	}
	doc.Rule()

	for _, item := range receipt.Items {
		doc.ItemLine(item.Name, item.Quantity, formatAmount(item.UnitPrice), formatAmount(item.Subtotal))
	}
	doc.Rule()

	doc.Bold(true).KeyValue("TOTAL:", formatAmount(receipt.TotalAmount)).Bold(false)
	doc.KeyValue(receipt.PaymentType+":", formatAmount(receipt.AmountPaid))
	doc.KeyValue("CHANGE:", formatAmount(receipt.ChangeAmount))

	if receipt.Notes != "" {
		doc.Rule()
		doc.Line("Notes: " + receipt.Notes)
	}
	if receipt.Footer != "" {
		doc.Rule()
		doc.AlignCenter().Line(receipt.Footer)
	}

	doc.Cut()
	return doc.Bytes()
}

// formatAmount renders a decimal amount with two digits and thousands
// separators, e.g. 1499.5 -> "1,499.50".
func formatAmount(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	s := fmt.Sprintf("%.2f", amount)

	dot := strings.IndexByte(s, '.')
	intPart, frac := s[:dot], s[dot:]
	for i := len(intPart) - 3; i > 0; i -= 3 {
		intPart = intPart[:i] + "," + intPart[i:]
	}
	if neg {
		return "-" + intPart + frac
	}
	return intPart + frac
}
