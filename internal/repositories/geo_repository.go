package repositories

import (
	"errors"

	"gamestore_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCountryNotFound = errors.New("country not found")
	ErrRegionNotFound  = errors.New("region not found")
)

type GeoRepository interface {
	CreateRegion(db *gorm.DB, region *models.Region) error
	CreateCountry(db *gorm.DB, country *models.Country) error
	FindAllRegions(db *gorm.DB) ([]models.Region, error)
	FindAllCountries(db *gorm.DB) ([]models.Country, error)
	FindRegionByID(db *gorm.DB, id string) (*models.Region, error)
	FindCountryByID(db *gorm.DB, id string) (*models.Country, error)
	FindCountryByCode(db *gorm.DB, code string) (*models.Country, error)
}

type GeoRepositoryImpl struct{}

func NewGeoRepository() GeoRepository {
	return &GeoRepositoryImpl{}
}

func (r *GeoRepositoryImpl) CreateRegion(db *gorm.DB, region *models.Region) error {
	return db.Create(region).Error
}

func (r *GeoRepositoryImpl) CreateCountry(db *gorm.DB, country *models.Country) error {
	return db.Create(country).Error
}

func (r *GeoRepositoryImpl) FindAllRegions(db *gorm.DB) ([]models.Region, error) {
	var regions []models.Region
	err := db.Order("name ASC").Find(&regions).Error
	return regions, err
}

func (r *GeoRepositoryImpl) FindAllCountries(db *gorm.DB) ([]models.Country, error) {
	var countries []models.Country
	err := db.Preload("Region").Order("name ASC").Find(&countries).Error
	return countries, err
}

func (r *GeoRepositoryImpl) FindRegionByID(db *gorm.DB, id string) (*models.Region, error) {
	var region models.Region
	err := db.First(&region, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRegionNotFound
		}
		return nil, err
	}
	return &region, nil
}

func (r *GeoRepositoryImpl) FindCountryByID(db *gorm.DB, id string) (*models.Country, error) {
	var country models.Country
	err := db.Preload("Region").First(&country, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCountryNotFound
		}
		return nil, err
	}
	return &country, nil
}

func (r *GeoRepositoryImpl) FindCountryByCode(db *gorm.DB, code string) (*models.Country, error) {
	var country models.Country
	err := db.Preload("Region").First(&country, "code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCountryNotFound
		}
		return nil, err
	}
	return &country, nil
}
