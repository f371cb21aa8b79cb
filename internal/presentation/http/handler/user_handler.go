package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atkinsguitar/pos-api/internal/application/service"
	"github.com/atkinsguitar/pos-api/internal/domain/enum"
	"github.com/atkinsguitar/pos-api/internal/presentation/http/dto/request"
	"github.com/atkinsguitar/pos-api/internal/presentation/http/dto/response"
	"github.com/atkinsguitar/pos-api/internal/presentation/http/middleware"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Create handles POST /users
func (h *UserHandler) Create(c *gin.Context) {
	var req request.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	user, err := h.userService.Create(c.Request.Context(), &service.CreateUserInput{
		Username: req.Username,
		Name:     req.Name,
		Password: req.Password,
		Role:     enum.UserRole(req.Role),
	})
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "User created", user)
}

// List handles GET /users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", users)
}

// Get handles GET /users/:id
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", user)
}

// Update handles PUT /users/:id
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req request.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	input := &service.UpdateUserInput{
		Name:     req.Name,
		Password: req.Password,
		IsActive: req.IsActive,
	}
	if req.Role != nil {
		role := enum.UserRole(*req.Role)
		input.Role = &role
	}

	user, err := h.userService.Update(c.Request.Context(), id, input)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "User updated", user)
}

// Deactivate handles DELETE /users/:id. Accounts are deactivated, never
// deleted, so transaction history keeps its cashier names.
func (h *UserHandler) Deactivate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	actorID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	if err := h.userService.Deactivate(c.Request.Context(), actorID, id); err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "User deactivated", nil)
}
