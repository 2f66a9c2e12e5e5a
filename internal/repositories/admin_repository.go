package repositories

import (
	"errors"

	"gamestore_backend/internal/models"

	"gorm.io/gorm"
)

var ErrAdminNotFound = errors.New("admin not found")

type AdminRepository interface {
	Create(db *gorm.DB, admin *models.Admin) error
	FindByID(db *gorm.DB, id string) (*models.Admin, error)
	FindByEmail(db *gorm.DB, email string) (*models.Admin, error)
}

type AdminRepositoryImpl struct{}

func NewAdminRepository() AdminRepository {
	return &AdminRepositoryImpl{}
}

func (r *AdminRepositoryImpl) Create(db *gorm.DB, admin *models.Admin) error {
	return db.Create(admin).Error
}

func (r *AdminRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Admin, error) {
	var admin models.Admin
	err := models.Active(db).First(&admin, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.Admin, error) {
	var admin models.Admin
	err := models.Active(db).First(&admin, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}
