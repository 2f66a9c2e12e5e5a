package handlers

import (
	"net/http"

	"gamestore_backend/internal/middleware"
	"gamestore_backend/internal/models"
	"gamestore_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	*BaseHandler
	analyticsService services.AnalyticsService
}

func NewAdminHandler(base *BaseHandler, analyticsService services.AnalyticsService) *AdminHandler {
	return &AdminHandler{
		BaseHandler:      base,
		analyticsService: analyticsService,
	}
}

func (h *AdminHandler) RegisterRoutes(r *gin.RouterGroup) {
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.RoleAdmin))
	{
		admin.GET("/dashboard-stats", h.DashboardStats)
	}
}

func (h *AdminHandler) DashboardStats(c *gin.Context) {
	stats, err := h.analyticsService.DashboardStats(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
