package handlers

import (
	"net/http"

	"gamestore_backend/internal/middleware"
	"gamestore_backend/internal/models"
	"gamestore_backend/internal/services"
	"gamestore_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	*BaseHandler
	cartService services.CartService
}

func NewCartHandler(base *BaseHandler, cartService services.CartService) *CartHandler {
	return &CartHandler{
		BaseHandler: base,
		cartService: cartService,
	}
}

func (h *CartHandler) RegisterRoutes(r *gin.RouterGroup) {
	cart := r.Group("/cart")
	cart.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.RoleUser))
	{
		cart.GET("", h.GetCart)
		cart.POST("/items", h.AddItem)
		cart.PUT("/items/:itemId", h.UpdateItem)
		cart.DELETE("/items/:itemId", h.RemoveItem)
		cart.DELETE("", h.ClearCart)
		cart.POST("/checkout", h.Checkout)
	}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	cart, err := h.cartService.GetCart(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *CartHandler) AddItem(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.AddCartItemRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	cart, err := h.cartService.AddItem(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cart)
}

func (h *CartHandler) UpdateItem(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateCartItemRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	cart, err := h.cartService.UpdateItemQuantity(h.GetDB(c), userID, c.Param("itemId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	cart, err := h.cartService.RemoveItem(h.GetDB(c), userID, c.Param("itemId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.cartService.ClearCart(h.GetDB(c), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}

func (h *CartHandler) Checkout(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	result, err := h.cartService.Checkout(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
