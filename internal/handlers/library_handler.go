package handlers

import (
	"net/http"

	"gamestore_backend/internal/middleware"
	"gamestore_backend/internal/models"
	"gamestore_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// LibraryHandler exposes what a user may play and why.
type LibraryHandler struct {
	*BaseHandler
	entitlementService services.EntitlementService
}

func NewLibraryHandler(base *BaseHandler, entitlementService services.EntitlementService) *LibraryHandler {
	return &LibraryHandler{
		BaseHandler:        base,
		entitlementService: entitlementService,
	}
}

func (h *LibraryHandler) RegisterRoutes(r *gin.RouterGroup) {
	library := r.Group("/library")
	library.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.RoleUser))
	{
		library.GET("", h.GetLibrary)
		library.GET("/purchases", h.GetPurchases)
		library.GET("/games/:gameId/access", h.CheckAccess)
	}
}

func (h *LibraryHandler) GetPurchases(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	page, pageSize := ParsePagination(c)
	purchases, total, err := h.entitlementService.GetPurchaseHistory(h.GetDB(c), userID, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"purchases": purchases,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

func (h *LibraryHandler) GetLibrary(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	library, err := h.entitlementService.GetUserLibrary(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, library)
}

func (h *LibraryHandler) CheckAccess(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	result, err := h.entitlementService.CanUserAccessGame(h.GetDB(c), userID, c.Param("gameId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
