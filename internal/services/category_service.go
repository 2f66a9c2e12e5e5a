package services

import (
	"errors"

	"gamestore_backend/internal/models"
	"gamestore_backend/internal/repositories"
	"gamestore_backend/internal/services/dto"
	"gamestore_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type CategoryService interface {
	CreateCategory(db *gorm.DB, req *dto.CreateCategoryRequest) (*models.Category, error)
	GetCategory(db *gorm.DB, id string) (*models.Category, error)
	ListCategories(db *gorm.DB) ([]models.Category, error)
	UpdateCategory(db *gorm.DB, id string, req *dto.UpdateCategoryRequest) (*models.Category, error)
	DeleteCategory(db *gorm.DB, id string) error
	RestoreCategory(db *gorm.DB, id string) error
}

type CategoryServiceImpl struct {
	categoryRepo repositories.CategoryRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository) CategoryService {
	return &CategoryServiceImpl{categoryRepo: categoryRepo}
}

func (s *CategoryServiceImpl) CreateCategory(db *gorm.DB, req *dto.CreateCategoryRequest) (*models.Category, error) {
	category := &models.Category{Name: req.Name}
	if err := s.categoryRepo.Create(db, category); err != nil {
		if errors.Is(err, repositories.ErrCategoryAlreadyExists) {
			return nil, apperrors.ErrCategoryNameTaken
		}
		return nil, apperrors.InternalError(err)
	}
	return category, nil
}

func (s *CategoryServiceImpl) GetCategory(db *gorm.DB, id string) (*models.Category, error) {
	category, err := s.categoryRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, apperrors.NotFound("Category")
		}
		return nil, apperrors.InternalError(err)
	}
	return category, nil
}

func (s *CategoryServiceImpl) ListCategories(db *gorm.DB) ([]models.Category, error) {
	categories, err := s.categoryRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return categories, nil
}

func (s *CategoryServiceImpl) UpdateCategory(db *gorm.DB, id string, req *dto.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.GetCategory(db, id)
	if err != nil {
		return nil, err
	}
	category.Name = req.Name
	if err := s.categoryRepo.Update(db, category); err != nil {
		if errors.Is(err, repositories.ErrCategoryAlreadyExists) {
			return nil, apperrors.ErrCategoryNameTaken
		}
		return nil, apperrors.InternalError(err)
	}
	return category, nil
}

func (s *CategoryServiceImpl) DeleteCategory(db *gorm.DB, id string) error {
	if err := s.categoryRepo.SoftDelete(db, id); err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return apperrors.NotFound("Category")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *CategoryServiceImpl) RestoreCategory(db *gorm.DB, id string) error {
	if err := s.categoryRepo.Restore(db, id); err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return apperrors.NotFound("Category")
		}
		return apperrors.InternalError(err)
	}
	return nil
}
