package handlers

import (
	"net/http"

	"gamestore_backend/internal/middleware"
	"gamestore_backend/internal/models"
	"gamestore_backend/internal/services"
	"gamestore_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	*BaseHandler
	categoryService services.CategoryService
}

func NewCategoryHandler(base *BaseHandler, categoryService services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		BaseHandler:     base,
		categoryService: categoryService,
	}
}

func (h *CategoryHandler) RegisterRoutes(r *gin.RouterGroup) {
	categories := r.Group("/categories")
	{
		categories.GET("", h.ListCategories)
		categories.GET("/:categoryId", h.GetCategory)

		admin := categories.Group("")
		admin.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.RoleAdmin))
		{
			admin.POST("", h.CreateCategory)
			admin.PUT("/:categoryId", h.UpdateCategory)
			admin.DELETE("/:categoryId", h.DeleteCategory)
			admin.POST("/:categoryId/restore", h.RestoreCategory)
		}
	}
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories, "total": len(categories)})
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	category, err := h.categoryService.GetCategory(h.GetDB(c), c.Param("categoryId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	category, err := h.categoryService.CreateCategory(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	var req dto.UpdateCategoryRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	category, err := h.categoryService.UpdateCategory(h.GetDB(c), c.Param("categoryId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	if err := h.categoryService.DeleteCategory(h.GetDB(c), c.Param("categoryId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}

func (h *CategoryHandler) RestoreCategory(c *gin.Context) {
	if err := h.categoryService.RestoreCategory(h.GetDB(c), c.Param("categoryId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category restored successfully"})
}
