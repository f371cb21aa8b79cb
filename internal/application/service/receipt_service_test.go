package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atkinsguitar/pos-api/internal/domain/entity"
	"github.com/atkinsguitar/pos-api/internal/domain/enum"
)

func sampleTransaction() *entity.Transaction {
	notes := "Customer requested gift wrap"
	return &entity.Transaction{
		ID:                uuid.New(),
		TransactionNumber: "TXN-20260830-0042",
		CashierName:       "John Doe",
		TotalAmount:       164000,
		PaymentType:       enum.PaymentTypeCash,
		AmountPaid:        170000,
		ChangeAmount:      6000,
		Notes:             &notes,
		CreatedAt:         time.Date(2026, 8, 30, 14, 30, 0, 0, time.UTC),
		Items: []entity.TransactionItem{
			{ProductName: "Stratocaster", Quantity: 1, PriceEach: 149900, Subtotal: 149900},
			{ProductName: "Guitar Strings", Quantity: 2, PriceEach: 1500, Subtotal: 3000},
		},
	}
}

func TestBuildReceipt_FieldsFromTransactionAndSettings(t *testing.T) {
	settings := &entity.AppSettings{
		StoreName:     "Atkins Guitar Store",
		StoreAddress:  "123 Main Street, City",
		StorePhone:    "(123) 456-7890",
		ReceiptFooter: "Thank you for your purchase!",
	}

	receipt := BuildReceipt(sampleTransaction(), settings)

	assert.Equal(t, "Atkins Guitar Store", receipt.Header.StoreName)
	assert.Equal(t, "TXN-20260830-0042", receipt.TransactionNumber)
	assert.Equal(t, "2026-08-30 14:30:00", receipt.Date)
	assert.Equal(t, "John Doe", receipt.Cashier)
	assert.Equal(t, "CASH", receipt.PaymentType)
	assert.InDelta(t, 1640.0, receipt.TotalAmount, 0.001)
	assert.InDelta(t, 1700.0, receipt.AmountPaid, 0.001)
	assert.InDelta(t, 60.0, receipt.ChangeAmount, 0.001)
	assert.Equal(t, "Customer requested gift wrap", receipt.Notes)
	assert.Equal(t, "Thank you for your purchase!", receipt.Footer)

	require.Len(t, receipt.Items, 2)
	assert.Equal(t, "Stratocaster", receipt.Items[0].Name)
	assert.InDelta(t, 1499.0, receipt.Items[0].UnitPrice, 0.001)
	assert.InDelta(t, 30.0, receipt.Items[1].Subtotal, 0.001)
}

func TestBuild_FallsBackToDefaultSettings(t *testing.T) {
	productRepo := newMockProductRepo()
	txnRepo := newMockTxnRepo(productRepo)
	cashier := &entity.User{ID: uuid.New(), Name: "John Doe"}
	ids := seedSales(t, txnRepo, cashier, 1)

	// No settings row saved.
	svc := NewReceiptService(txnRepo, &mockSettingsRepo{})

	receipt, err := svc.Build(context.Background(), ids[0])
	require.NoError(t, err)

	defaults := entity.DefaultAppSettings()
	assert.Equal(t, defaults.StoreName, receipt.Header.StoreName)
	assert.Equal(t, defaults.ReceiptFooter, receipt.Footer)
}

func TestRenderText_ContainsAllFields(t *testing.T) {
	svc := NewReceiptService(nil, nil)
	receipt := BuildReceipt(sampleTransaction(), entity.DefaultAppSettings())

	out := svc.RenderText(receipt)

	for _, want := range []string{
		"Atkins Guitar Store",
		"TXN-20260830-0042",
		"John Doe",
		"Stratocaster",
		"2 x 15.00",
		"1,640.00",
		"CASH:",
		"1,700.00",
		"CHANGE:",
		"60.00",
		"Customer requested gift wrap",
		"Thank you for your purchase!",
	} {
		assert.Contains(t, out, want)
	}

	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, len(line), 48, "line exceeds layout width: %q", line)
	}
}

func TestRenderThermal_SameContentAsText(t *testing.T) {
	svc := NewReceiptService(nil, nil)
	receipt := BuildReceipt(sampleTransaction(), entity.DefaultAppSettings())

	out := string(svc.RenderThermal(receipt))

	// Same fields present in both layouts, only width and control codes differ.
	for _, want := range []string{
		"Atkins Guitar Store",
		"TXN-20260830-0042",
		"John Doe",
		"1,640.00",
		"CASH:",
		"CHANGE:",
		"Thank you for your purchase!",
	} {
		assert.Contains(t, out, want)
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "0.00", formatAmount(0))
	assert.Equal(t, "15.00", formatAmount(15))
	assert.Equal(t, "1,499.50", formatAmount(1499.5))
	assert.Equal(t, "1,234,567.89", formatAmount(1234567.89))
	assert.Equal(t, "-60.00", formatAmount(-60))
}
