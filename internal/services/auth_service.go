package services

import (
	"errors"

	"gamestore_backend/internal/auth"
	"gamestore_backend/internal/email"
	"gamestore_backend/internal/logger"
	"gamestore_backend/internal/models"
	"gamestore_backend/internal/repositories"
	"gamestore_backend/internal/services/dto"
	"gamestore_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	Signup(db *gorm.DB, req *dto.SignupRequest) (*models.User, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
	AdminLogin(db *gorm.DB, req *dto.LoginRequest) (*dto.AdminLoginResponse, error)
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	adminRepo     repositories.AdminRepository
	geoRepo       repositories.GeoRepository
	emailProvider email.Provider
}

func NewAuthService(
	userRepo repositories.UserRepository,
	adminRepo repositories.AdminRepository,
	geoRepo repositories.GeoRepository,
	emailProvider email.Provider,
) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		adminRepo:     adminRepo,
		geoRepo:       geoRepo,
		emailProvider: emailProvider,
	}
}

func (s *AuthServiceImpl) Signup(db *gorm.DB, req *dto.SignupRequest) (*models.User, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	if _, err := s.geoRepo.FindCountryByID(db, req.CountryID); err != nil {
		if errors.Is(err, repositories.ErrCountryNotFound) {
			return nil, apperrors.NotFound("Country")
		}
		return nil, apperrors.InternalError(err)
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Age:          req.Age,
		CountryID:    req.CountryID,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	// Mail delivery must never fail the signup.
	if err := s.emailProvider.SendWelcome(user.Email, user.Name); err != nil {
		logger.Warn("failed to send welcome email", "email", user.Email, "error", err)
	}

	return user, nil
}

func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	accessToken, err := auth.GenerateToken(user.ID, string(models.RoleUser))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		AccessToken: accessToken,
		User:        user,
	}, nil
}

func (s *AuthServiceImpl) AdminLogin(db *gorm.DB, req *dto.LoginRequest) (*dto.AdminLoginResponse, error) {
	admin, err := s.adminRepo.FindByEmail(db, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrAdminNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, admin.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	accessToken, err := auth.GenerateToken(admin.ID, string(models.RoleAdmin))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AdminLoginResponse{
		AccessToken: accessToken,
		Admin:       admin,
	}, nil
}
