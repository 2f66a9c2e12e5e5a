package handlers

import (
	"net/http"

	"gamestore_backend/internal/middleware"
	"gamestore_backend/internal/models"
	"gamestore_backend/internal/services"
	"gamestore_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type GeoHandler struct {
	*BaseHandler
	geoService services.GeoService
}

func NewGeoHandler(base *BaseHandler, geoService services.GeoService) *GeoHandler {
	return &GeoHandler{
		BaseHandler: base,
		geoService:  geoService,
	}
}

func (h *GeoHandler) RegisterRoutes(r *gin.RouterGroup) {
	geo := r.Group("/geo")
	{
		geo.GET("/regions", h.ListRegions)
		geo.GET("/countries", h.ListCountries)

		admin := geo.Group("")
		admin.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.RoleAdmin))
		{
			admin.POST("/regions", h.CreateRegion)
			admin.POST("/countries", h.CreateCountry)
		}
	}
}

func (h *GeoHandler) ListRegions(c *gin.Context) {
	regions, err := h.geoService.ListRegions(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"regions": regions, "total": len(regions)})
}

func (h *GeoHandler) ListCountries(c *gin.Context) {
	countries, err := h.geoService.ListCountries(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"countries": countries, "total": len(countries)})
}

func (h *GeoHandler) CreateRegion(c *gin.Context) {
	var req dto.CreateRegionRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	region, err := h.geoService.CreateRegion(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, region)
}

func (h *GeoHandler) CreateCountry(c *gin.Context) {
	var req dto.CreateCountryRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	country, err := h.geoService.CreateCountry(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, country)
}
