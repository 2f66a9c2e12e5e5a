package handlers

import (
	"net/http"

	"gamestore_backend/internal/middleware"
	"gamestore_backend/internal/models"
	"gamestore_backend/internal/repositories"
	"gamestore_backend/internal/services"
	"gamestore_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type GameHandler struct {
	*BaseHandler
	gameService services.GameService
}

func NewGameHandler(base *BaseHandler, gameService services.GameService) *GameHandler {
	return &GameHandler{
		BaseHandler: base,
		gameService: gameService,
	}
}

func (h *GameHandler) RegisterRoutes(r *gin.RouterGroup) {
	games := r.Group("/games")
	{
		// Public catalog
		games.GET("", h.ListGames)
		games.GET("/:gameId", h.GetGame)

		admin := games.Group("")
		admin.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.RoleAdmin))
		{
			admin.POST("", h.CreateGame)
			admin.PUT("/:gameId", h.UpdateGame)
			admin.DELETE("/:gameId", h.DeleteGame)
			admin.POST("/:gameId/restore", h.RestoreGame)
			admin.PUT("/:gameId/prices", h.SetCountryPrice)
			admin.DELETE("/:gameId/prices/:countryId", h.RemoveCountryPrice)
		}
	}
}

func (h *GameHandler) ListGames(c *gin.Context) {
	page, pageSize := ParsePagination(c)

	filter := repositories.GameFilter{
		Search:     c.Query("search"),
		CategoryID: c.Query("category_id"),
		FreeToPlay: ParseQueryBool(c, "free_to_play"),
		SortBy:     c.Query("sort_by"),
		SortDesc:   c.Query("order") == "desc",
		Page:       page,
		PageSize:   pageSize,
	}

	games, total, err := h.gameService.ListGames(h.GetDB(c), filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"games":     games,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

func (h *GameHandler) GetGame(c *gin.Context) {
	game, err := h.gameService.GetGame(h.GetDB(c), c.Param("gameId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, game)
}

func (h *GameHandler) CreateGame(c *gin.Context) {
	var req dto.CreateGameRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	game, err := h.gameService.CreateGame(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, game)
}

func (h *GameHandler) UpdateGame(c *gin.Context) {
	var req dto.UpdateGameRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	game, err := h.gameService.UpdateGame(h.GetDB(c), c.Param("gameId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, game)
}

func (h *GameHandler) DeleteGame(c *gin.Context) {
	if err := h.gameService.DeleteGame(h.GetDB(c), c.Param("gameId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Game deleted successfully"})
}

func (h *GameHandler) RestoreGame(c *gin.Context) {
	if err := h.gameService.RestoreGame(h.GetDB(c), c.Param("gameId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Game restored successfully"})
}

func (h *GameHandler) SetCountryPrice(c *gin.Context) {
	var req dto.SetCountryPriceRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.gameService.SetCountryPrice(h.GetDB(c), c.Param("gameId"), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Price set successfully"})
}

func (h *GameHandler) RemoveCountryPrice(c *gin.Context) {
	if err := h.gameService.RemoveCountryPrice(h.GetDB(c), c.Param("gameId"), c.Param("countryId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Price removed successfully"})
}
