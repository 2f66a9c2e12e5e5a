package services

import (
	"errors"

	"gamestore_backend/internal/models"
	"gamestore_backend/internal/repositories"
	"gamestore_backend/internal/services/dto"
	"gamestore_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type GeoService interface {
	CreateRegion(db *gorm.DB, req *dto.CreateRegionRequest) (*models.Region, error)
	CreateCountry(db *gorm.DB, req *dto.CreateCountryRequest) (*models.Country, error)
	ListRegions(db *gorm.DB) ([]models.Region, error)
	ListCountries(db *gorm.DB) ([]models.Country, error)
}

type GeoServiceImpl struct {
	geoRepo repositories.GeoRepository
}

func NewGeoService(geoRepo repositories.GeoRepository) GeoService {
	return &GeoServiceImpl{geoRepo: geoRepo}
}

func (s *GeoServiceImpl) CreateRegion(db *gorm.DB, req *dto.CreateRegionRequest) (*models.Region, error) {
	region := &models.Region{
		Code:     req.Code,
		Name:     req.Name,
		Currency: req.Currency,
	}
	if err := s.geoRepo.CreateRegion(db, region); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return region, nil
}

func (s *GeoServiceImpl) CreateCountry(db *gorm.DB, req *dto.CreateCountryRequest) (*models.Country, error) {
	if _, err := s.geoRepo.FindRegionByID(db, req.RegionID); err != nil {
		if errors.Is(err, repositories.ErrRegionNotFound) {
			return nil, apperrors.NotFound("Region")
		}
		return nil, apperrors.InternalError(err)
	}

	country := &models.Country{
		Code:     req.Code,
		Name:     req.Name,
		RegionID: req.RegionID,
		Currency: req.Currency,
		TaxRate:  req.TaxRate,
	}
	if err := s.geoRepo.CreateCountry(db, country); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return country, nil
}

func (s *GeoServiceImpl) ListRegions(db *gorm.DB) ([]models.Region, error) {
	regions, err := s.geoRepo.FindAllRegions(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return regions, nil
}

func (s *GeoServiceImpl) ListCountries(db *gorm.DB) ([]models.Country, error) {
	countries, err := s.geoRepo.FindAllCountries(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return countries, nil
}
