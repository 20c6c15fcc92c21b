package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"techsync/internal/domain"
	"techsync/internal/repository"
	"techsync/internal/service"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	auth   service.AuthService
	orders service.WorkOrderService
	logger *logrus.Logger
}

func NewHandler(auth service.AuthService, orders service.WorkOrderService, logger *logrus.Logger) *Handler {
	return &Handler{
		auth:   auth,
		orders: orders,
		logger: logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(requestIDMiddleware(), h.loggingMiddleware(), corsMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "techsync-api"})
	})

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", h.register)
		authGroup.POST("/login", h.login)
		authGroup.GET("/me", h.authenticate(), h.me)
	}

	orders := router.Group("/work-orders", h.authenticate())
	{
		orders.GET("", h.listWorkOrders)
		orders.POST("", h.createWorkOrder)
		orders.GET("/:id", h.getWorkOrder)
		orders.PUT("/:id", h.updateWorkOrder)
	}
	router.DELETE("/work-orders/:id", h.requireRole(domain.RoleAdmin), h.deleteWorkOrder)
}

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name" binding:"required"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type workOrderRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
}

type UserResponse struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type WorkOrderResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.auth.Register(c.Request.Context(), service.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Role:     domain.Role(req.Role),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, userToResponse(user))
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, TokenResponse{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
	})
}

func (h *Handler) me(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		h.writeError(c, service.ErrUnauthorized)
		return
	}
	c.JSON(http.StatusOK, userToResponse(user))
}

func (h *Handler) createWorkOrder(c *gin.Context) {
	var req workOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orders.Create(c.Request.Context(), workOrderInput(req))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, orderToResponse(*order))
}

func (h *Handler) listWorkOrders(c *gin.Context) {
	orders, err := h.orders.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := make([]WorkOrderResponse, len(orders))
	for i := range orders {
		resp[i] = orderToResponse(orders[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) getWorkOrder(c *gin.Context) {
	id, ok := workOrderID(c)
	if !ok {
		return
	}

	order, err := h.orders.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, orderToResponse(*order))
}

func (h *Handler) updateWorkOrder(c *gin.Context) {
	id, ok := workOrderID(c)
	if !ok {
		return
	}

	var req workOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orders.Update(c.Request.Context(), id, workOrderInput(req))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, orderToResponse(*order))
}

func (h *Handler) deleteWorkOrder(c *gin.Context) {
	id, ok := workOrderID(c)
	if !ok {
		return
	}

	if err := h.orders.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

func workOrderID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid work order id"})
		return 0, false
	}
	return id, true
}

func workOrderInput(req workOrderRequest) service.WorkOrderInput {
	return service.WorkOrderInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.WorkOrderStatus(req.Status),
	}
}

// writeError maps service and repository errors to HTTP responses. Unexpected
// errors are logged with the request id and hidden behind a generic message.
func (h *Handler) writeError(c *gin.Context, err error) {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
	case errors.Is(err, service.ErrDuplicateEmail):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUnauthorized):
		c.Header("WWW-Authenticate", "Bearer")
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrAccountInactive), errors.Is(err, service.ErrForbidden):
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "work order not found"})
	case errors.Is(err, repository.ErrNotConfigured):
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "authentication requires database configuration"})
	default:
		h.logger.WithField("request_id", requestID(c)).Errorf("internal error: %v", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		Role:     string(user.Role),
		IsActive: user.IsActive,
	}
}

func orderToResponse(order domain.WorkOrder) WorkOrderResponse {
	return WorkOrderResponse{
		ID:          order.ID,
		Title:       order.Title,
		Description: order.Description,
		Status:      string(order.Status),
	}
}
