package handlers

import (
	"net/http"

	"gamestore_backend/internal/middleware"
	"gamestore_backend/internal/models"
	"gamestore_backend/internal/services"
	"gamestore_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	*BaseHandler
	subscriptionService services.SubscriptionService
}

func NewSubscriptionHandler(base *BaseHandler, subscriptionService services.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{
		BaseHandler:         base,
		subscriptionService: subscriptionService,
	}
}

func (h *SubscriptionHandler) RegisterRoutes(r *gin.RouterGroup) {
	plans := r.Group("/plans")
	{
		plans.GET("", h.ListPlans)
		plans.GET("/:planId", h.GetPlan)
		plans.GET("/:planId/games", h.ListPlanGames)

		admin := plans.Group("")
		admin.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.RoleAdmin))
		{
			admin.POST("", h.CreatePlan)
			admin.PUT("/:planId", h.UpdatePlan)
			admin.DELETE("/:planId", h.DeletePlan)
			admin.POST("/:planId/games/:gameId", h.AddGameToPlan)
			admin.DELETE("/:planId/games/:gameId", h.RemoveGameFromPlan)
			admin.POST("/:planId/tiers/country", h.AddCountryTier)
			admin.POST("/:planId/tiers/region", h.AddRegionTier)
			admin.DELETE("/:planId/tiers/country/:tierId", h.RemoveCountryTier)
			admin.DELETE("/:planId/tiers/region/:tierId", h.RemoveRegionTier)
		}
	}

	subs := r.Group("/subscriptions")
	subs.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.RoleUser))
	{
		subs.POST("", h.Subscribe)
		subs.GET("", h.GetMySubscriptions)
		subs.GET("/active", h.GetActiveSubscription)
		subs.POST("/:subscriptionId/cancel", h.CancelSubscription)
	}
}

func (h *SubscriptionHandler) ListPlans(c *gin.Context) {
	plans, err := h.subscriptionService.ListPlans(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plans": plans, "total": len(plans)})
}

func (h *SubscriptionHandler) GetPlan(c *gin.Context) {
	plan, err := h.subscriptionService.GetPlan(h.GetDB(c), c.Param("planId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *SubscriptionHandler) ListPlanGames(c *gin.Context) {
	games, err := h.subscriptionService.ListPlanGames(h.GetDB(c), c.Param("planId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"games": games, "total": len(games)})
}

func (h *SubscriptionHandler) CreatePlan(c *gin.Context) {
	var req dto.CreatePlanRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	plan, err := h.subscriptionService.CreatePlan(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, plan)
}

func (h *SubscriptionHandler) UpdatePlan(c *gin.Context) {
	var req dto.UpdatePlanRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	plan, err := h.subscriptionService.UpdatePlan(h.GetDB(c), c.Param("planId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *SubscriptionHandler) DeletePlan(c *gin.Context) {
	if err := h.subscriptionService.DeletePlan(h.GetDB(c), c.Param("planId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Plan deleted successfully"})
}

func (h *SubscriptionHandler) AddGameToPlan(c *gin.Context) {
	if err := h.subscriptionService.AddGameToPlan(h.GetDB(c), c.Param("planId"), c.Param("gameId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Game added to plan"})
}

func (h *SubscriptionHandler) RemoveGameFromPlan(c *gin.Context) {
	if err := h.subscriptionService.RemoveGameFromPlan(h.GetDB(c), c.Param("planId"), c.Param("gameId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Game removed from plan"})
}

func (h *SubscriptionHandler) AddCountryTier(c *gin.Context) {
	var req dto.CreateCountryTierRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	tier, err := h.subscriptionService.AddCountryTier(h.GetDB(c), c.Param("planId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tier)
}

func (h *SubscriptionHandler) AddRegionTier(c *gin.Context) {
	var req dto.CreateRegionTierRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	tier, err := h.subscriptionService.AddRegionTier(h.GetDB(c), c.Param("planId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tier)
}

func (h *SubscriptionHandler) RemoveCountryTier(c *gin.Context) {
	if err := h.subscriptionService.RemoveCountryTier(h.GetDB(c), c.Param("planId"), c.Param("tierId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pricing tier removed"})
}

func (h *SubscriptionHandler) RemoveRegionTier(c *gin.Context) {
	if err := h.subscriptionService.RemoveRegionTier(h.GetDB(c), c.Param("planId"), c.Param("tierId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pricing tier removed"})
}

func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SubscribeRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	sub, err := h.subscriptionService.Subscribe(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sub)
}

func (h *SubscriptionHandler) GetMySubscriptions(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	subs, err := h.subscriptionService.GetUserSubscriptions(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"subscriptions": subs, "total": len(subs)})
}

func (h *SubscriptionHandler) GetActiveSubscription(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	sub, err := h.subscriptionService.GetActiveSubscription(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if sub == nil {
		c.JSON(http.StatusOK, gin.H{"active": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"active": true, "subscription": sub})
}

func (h *SubscriptionHandler) CancelSubscription(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	sub, err := h.subscriptionService.CancelSubscription(h.GetDB(c), userID, c.Param("subscriptionId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}
