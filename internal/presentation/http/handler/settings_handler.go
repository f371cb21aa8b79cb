package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atkinsguitar/pos-api/internal/application/service"
	"github.com/atkinsguitar/pos-api/internal/presentation/http/dto/request"
	"github.com/atkinsguitar/pos-api/internal/presentation/http/dto/response"
)

type SettingsHandler struct {
	settingsService *service.SettingsService
}

func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// Get handles GET /settings
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsService.Get(c.Request.Context())
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", settings)
}

// Update handles PUT /settings
func (h *SettingsHandler) Update(c *gin.Context) {
	var req request.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	settings, err := h.settingsService.Update(c.Request.Context(), &service.UpdateSettingsInput{
		StoreName:                req.StoreName,
		StoreAddress:             req.StoreAddress,
		StorePhone:               req.StorePhone,
		StoreEmail:               req.StoreEmail,
		DefaultLowStockThreshold: req.DefaultLowStockThreshold,
		ReceiptFooter:            req.ReceiptFooter,
	})
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Settings updated", settings)
}
