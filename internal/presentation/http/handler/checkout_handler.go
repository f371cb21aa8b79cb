package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atkinsguitar/pos-api/internal/application/service"
	"github.com/atkinsguitar/pos-api/internal/domain/enum"
	"github.com/atkinsguitar/pos-api/internal/presentation/http/dto/request"
	"github.com/atkinsguitar/pos-api/internal/presentation/http/dto/response"
	"github.com/atkinsguitar/pos-api/internal/presentation/http/middleware"
)

type CheckoutHandler struct {
	checkoutService *service.CheckoutService
	receiptService  *service.ReceiptService
}

func NewCheckoutHandler(checkoutService *service.CheckoutService, receiptService *service.ReceiptService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService, receiptService: receiptService}
}

func toCheckoutLines(items []request.CheckoutItemRequest) []service.CheckoutLine {
	lines := make([]service.CheckoutLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, service.CheckoutLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	return lines
}

// Quote handles POST /pos/cart/quote: price a cart against the live catalog
// without committing anything.
func (h *CheckoutHandler) Quote(c *gin.Context) {
	var req request.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	quote, err := h.checkoutService.Quote(c.Request.Context(), toCheckoutLines(req.Items), toCents(req.AmountPaid))
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", quote)
}

// Checkout handles POST /pos/checkout. The route carries the idempotency
// middleware, so a lost response can be replayed with the same key.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	var req request.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	txn, err := h.checkoutService.Checkout(c.Request.Context(), &service.CheckoutInput{
		CashierID:   userID,
		PaymentType: enum.PaymentType(req.PaymentType),
		AmountPaid:  toCents(req.AmountPaid),
		Notes:       req.Notes,
		Lines:       toCheckoutLines(req.Items),
	})
	if err != nil {
		// The commit landed but the confirmation read did not. Not a
		// failure: answer below 5xx so the idempotency layer caches it and
		// a retry with the same key replays this instead of re-committing.
		var unconfirmed *service.CommitUnconfirmedError
		if errors.As(err, &unconfirmed) {
			response.Success(c, http.StatusAccepted, "Sale committed, confirmation pending", gin.H{
				"transaction_id":     unconfirmed.TransactionID,
				"transaction_number": unconfirmed.TransactionNumber,
			})
			return
		}
		response.HandleError(c, err)
		return
	}

	receipt, err := h.receiptService.Build(c.Request.Context(), txn.ID)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Sale completed", gin.H{
		"transaction": txn,
		"receipt":     receipt,
	})
}

// toCents converts a decimal amount to cents, rounding to the nearest cent.
func toCents(amount float64) int64 {
	if amount < 0 {
		return -int64(-amount*100 + 0.5)
	}
	return int64(amount*100 + 0.5)
}
