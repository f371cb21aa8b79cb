package service

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/atkinsguitar/pos-api/pkg/apperror"
	"github.com/atkinsguitar/pos-api/pkg/printer"
)

// PrinterService sends rendered receipts to the configured hardware printer.
type PrinterService struct {
	receipts *ReceiptService
	device   printer.Printer
}

func NewPrinterService(receipts *ReceiptService, device printer.Printer) *PrinterService {
	return &PrinterService{receipts: receipts, device: device}
}

// PrintReceipt rebuilds the receipt for a transaction and prints it. Works
// for fresh sales and reprints alike.
func (s *PrinterService) PrintReceipt(ctx context.Context, transactionID uuid.UUID) error {
	if !s.device.IsConnected() {
		return apperror.NewAppError(http.StatusServiceUnavailable, "printer is not connected")
	}

	receipt, err := s.receipts.Build(ctx, transactionID)
	if err != nil {
		return err
	}
	return s.device.Print(s.receipts.RenderThermal(receipt))
}

// Status reports whether the printer hardware is reachable.
func (s *PrinterService) Status() bool {
	return s.device.IsConnected()
}
