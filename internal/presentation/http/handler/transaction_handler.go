package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/atkinsguitar/pos-api/internal/application/service"
	"github.com/atkinsguitar/pos-api/internal/presentation/http/dto/response"
)

type TransactionHandler struct {
	transactionService *service.TransactionService
	receiptService     *service.ReceiptService
}

func NewTransactionHandler(transactionService *service.TransactionService, receiptService *service.ReceiptService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService, receiptService: receiptService}
}

// List handles GET /transactions. Supports ?limit= and an optional
// ?start=&end= date range.
func (h *TransactionHandler) List(c *gin.Context) {
	start := c.Query("start")
	end := c.Query("end")
	if start != "" || end != "" {
		if start == "" || end == "" {
			response.Error(c, http.StatusBadRequest, "Both start and end dates are required", nil)
			return
		}
		txns, err := h.transactionService.ListByDateRange(c.Request.Context(), start, end)
		if err != nil {
			response.HandleError(c, err)
			return
		}
		response.Success(c, http.StatusOK, "", txns)
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	txns, err := h.transactionService.List(c.Request.Context(), limit)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", txns)
}

// Get handles GET /transactions/:id
func (h *TransactionHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	txn, err := h.transactionService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", txn)
}

// Receipt handles GET /transactions/:id/receipt. Rebuilds the receipt from
// the stored transaction, for reprints and detail views. ?format=text
// returns the rendered plain-text layout instead of the structured receipt.
func (h *TransactionHandler) Receipt(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	receipt, err := h.receiptService.Build(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	if c.Query("format") == "text" {
		c.String(http.StatusOK, h.receiptService.RenderText(receipt))
		return
	}

	response.Success(c, http.StatusOK, "", receipt)
}
