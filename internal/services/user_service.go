package services

import (
	"errors"

	"gamestore_backend/internal/models"
	"gamestore_backend/internal/repositories"
	"gamestore_backend/internal/services/dto"
	"gamestore_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type UserService interface {
	GetUser(db *gorm.DB, id string) (*models.User, error)
	UpdateUser(db *gorm.DB, id string, req *dto.UpdateUserRequest) (*models.User, error)
	DeleteUser(db *gorm.DB, id string) error
	RestoreUser(db *gorm.DB, id string) error
	ListUsers(db *gorm.DB, search string, page, pageSize int) ([]models.User, int64, error)
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
	geoRepo  repositories.GeoRepository
}

func NewUserService(userRepo repositories.UserRepository, geoRepo repositories.GeoRepository) UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
		geoRepo:  geoRepo,
	}
}

func (s *UserServiceImpl) GetUser(db *gorm.DB, id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NotFound("User")
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *UserServiceImpl) UpdateUser(db *gorm.DB, id string, req *dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.GetUser(db, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Age != nil {
		user.Age = *req.Age
	}
	if req.CountryID != nil {
		if _, err := s.geoRepo.FindCountryByID(db, *req.CountryID); err != nil {
			if errors.Is(err, repositories.ErrCountryNotFound) {
				return nil, apperrors.NotFound("Country")
			}
			return nil, apperrors.InternalError(err)
		}
		user.CountryID = *req.CountryID
	}

	if err := s.userRepo.Update(db, user); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *UserServiceImpl) DeleteUser(db *gorm.DB, id string) error {
	if err := s.userRepo.SoftDelete(db, id); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.NotFound("User")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *UserServiceImpl) RestoreUser(db *gorm.DB, id string) error {
	if err := s.userRepo.Restore(db, id); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.NotFound("User")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *UserServiceImpl) ListUsers(db *gorm.DB, search string, page, pageSize int) ([]models.User, int64, error) {
	users, total, err := s.userRepo.FindWithFilter(db, repositories.UserFilter{
		Search:   search,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return users, total, nil
}
