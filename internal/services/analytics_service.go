package services

import (
	"time"

	"gamestore_backend/internal/repositories"
	"gamestore_backend/internal/services/dto"
	"gamestore_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// AnalyticsService aggregates the counters shown on the admin dashboard.
type AnalyticsService interface {
	DashboardStats(db *gorm.DB) (*dto.DashboardStats, error)
}

type AnalyticsServiceImpl struct {
	userRepo     repositories.UserRepository
	gameRepo     repositories.GameRepository
	purchaseRepo repositories.PurchaseRepository
	subRepo      repositories.SubscriptionRepository
}

func NewAnalyticsService(
	userRepo repositories.UserRepository,
	gameRepo repositories.GameRepository,
	purchaseRepo repositories.PurchaseRepository,
	subRepo repositories.SubscriptionRepository,
) AnalyticsService {
	return &AnalyticsServiceImpl{
		userRepo:     userRepo,
		gameRepo:     gameRepo,
		purchaseRepo: purchaseRepo,
		subRepo:      subRepo,
	}
}

func (s *AnalyticsServiceImpl) DashboardStats(db *gorm.DB) (*dto.DashboardStats, error) {
	stats := &dto.DashboardStats{}

	var err error
	if stats.TotalUsers, err = s.userRepo.CountAll(db); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.TotalGames, err = s.gameRepo.CountAll(db); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.TotalPurchases, err = s.purchaseRepo.CountAll(db); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.ActiveSubscriptions, err = s.subRepo.CountActiveSubscriptions(db, time.Now()); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.TotalRevenue, err = s.purchaseRepo.SumRevenue(db); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return stats, nil
}
