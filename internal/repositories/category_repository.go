package repositories

import (
	"errors"
	"time"

	"gamestore_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound      = errors.New("category not found")
	ErrCategoryAlreadyExists = errors.New("category already exists")
)

type CategoryRepository interface {
	Create(db *gorm.DB, category *models.Category) error
	FindByID(db *gorm.DB, id string) (*models.Category, error)
	FindByIDs(db *gorm.DB, ids []string) ([]models.Category, error)
	FindAll(db *gorm.DB) ([]models.Category, error)
	Update(db *gorm.DB, category *models.Category) error
	SoftDelete(db *gorm.DB, id string) error
	Restore(db *gorm.DB, id string) error
}

type CategoryRepositoryImpl struct{}

func NewCategoryRepository() CategoryRepository {
	return &CategoryRepositoryImpl{}
}

func (r *CategoryRepositoryImpl) Create(db *gorm.DB, category *models.Category) error {
	// Name must be unique among active categories; a soft-deleted
	// category with the same name does not block creation.
	var existing models.Category
	if err := models.Active(db).Where("name = ?", category.Name).First(&existing).Error; err == nil {
		return ErrCategoryAlreadyExists
	}

	return db.Create(category).Error
}

func (r *CategoryRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Category, error) {
	var category models.Category
	err := models.Active(db).First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepositoryImpl) FindByIDs(db *gorm.DB, ids []string) ([]models.Category, error) {
	var categories []models.Category
	if len(ids) == 0 {
		return categories, nil
	}
	err := models.Active(db).Where("id IN ?", ids).Find(&categories).Error
	return categories, err
}

func (r *CategoryRepositoryImpl) FindAll(db *gorm.DB) ([]models.Category, error) {
	var categories []models.Category
	err := models.Active(db).Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *CategoryRepositoryImpl) Update(db *gorm.DB, category *models.Category) error {
	result := db.Model(category).Updates(map[string]interface{}{
		"name":       category.Name,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

func (r *CategoryRepositoryImpl) SoftDelete(db *gorm.DB, id string) error {
	result := models.Active(db.Model(&models.Category{})).Where("id = ?", id).Updates(map[string]interface{}{
		"is_deleted": true,
		"deleted_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

func (r *CategoryRepositoryImpl) Restore(db *gorm.DB, id string) error {
	result := db.Model(&models.Category{}).Where("id = ? AND is_deleted = ?", id, true).Updates(map[string]interface{}{
		"is_deleted": false,
		"deleted_at": nil,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
