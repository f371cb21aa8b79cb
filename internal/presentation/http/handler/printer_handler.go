package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atkinsguitar/pos-api/internal/application/service"
	"github.com/atkinsguitar/pos-api/internal/presentation/http/dto/response"
)

type PrinterHandler struct {
	printerService *service.PrinterService
}

func NewPrinterHandler(printerService *service.PrinterService) *PrinterHandler {
	return &PrinterHandler{printerService: printerService}
}

// Print handles POST /transactions/:id/print: send the receipt to the
// configured thermal printer.
func (h *PrinterHandler) Print(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.printerService.PrintReceipt(c.Request.Context(), id); err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Receipt sent to printer", nil)
}

// Status handles GET /printer/status
func (h *PrinterHandler) Status(c *gin.Context) {
	response.Success(c, http.StatusOK, "", gin.H{
		"connected": h.printerService.Status(),
	})
}
