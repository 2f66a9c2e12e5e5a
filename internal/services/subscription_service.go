package services

import (
	"encoding/json"
	"errors"
	"time"

	"gamestore_backend/internal/models"
	"gamestore_backend/internal/repositories"
	"gamestore_backend/internal/services/dto"
	"gamestore_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SubscriptionService interface {
	CreatePlan(db *gorm.DB, req *dto.CreatePlanRequest) (*models.SubscriptionPlan, error)
	GetPlan(db *gorm.DB, id string) (*models.SubscriptionPlan, error)
	ListPlans(db *gorm.DB) ([]models.SubscriptionPlan, error)
	UpdatePlan(db *gorm.DB, id string, req *dto.UpdatePlanRequest) (*models.SubscriptionPlan, error)
	DeletePlan(db *gorm.DB, id string) error

	AddGameToPlan(db *gorm.DB, planID, gameID string) error
	RemoveGameFromPlan(db *gorm.DB, planID, gameID string) error
	ListPlanGames(db *gorm.DB, planID string) ([]models.Game, error)

	AddCountryTier(db *gorm.DB, planID string, req *dto.CreateCountryTierRequest) (*models.SubscriptionPlanCountry, error)
	AddRegionTier(db *gorm.DB, planID string, req *dto.CreateRegionTierRequest) (*models.SubscriptionPlanRegion, error)
	RemoveCountryTier(db *gorm.DB, planID, tierID string) error
	RemoveRegionTier(db *gorm.DB, planID, tierID string) error

	Subscribe(db *gorm.DB, userID string, req *dto.SubscribeRequest) (*models.UserSubscriptionPlan, error)
	GetUserSubscriptions(db *gorm.DB, userID string) ([]models.UserSubscriptionPlan, error)
	GetActiveSubscription(db *gorm.DB, userID string) (*models.UserSubscriptionPlan, error)
	CancelSubscription(db *gorm.DB, userID, subscriptionID string) (*models.UserSubscriptionPlan, error)
}

type SubscriptionServiceImpl struct {
	subRepo  repositories.SubscriptionRepository
	gameRepo repositories.GameRepository
	userRepo repositories.UserRepository
	geoRepo  repositories.GeoRepository
}

func NewSubscriptionService(
	subRepo repositories.SubscriptionRepository,
	gameRepo repositories.GameRepository,
	userRepo repositories.UserRepository,
	geoRepo repositories.GeoRepository,
) SubscriptionService {
	return &SubscriptionServiceImpl{
		subRepo:  subRepo,
		gameRepo: gameRepo,
		userRepo: userRepo,
		geoRepo:  geoRepo,
	}
}

func (s *SubscriptionServiceImpl) CreatePlan(db *gorm.DB, req *dto.CreatePlanRequest) (*models.SubscriptionPlan, error) {
	plan := &models.SubscriptionPlan{Type: req.Type}

	if req.Features != nil {
		raw, err := json.Marshal(req.Features)
		if err != nil {
			return nil, apperrors.NewBadRequestError("invalid features payload")
		}
		plan.Features = datatypes.JSON(raw)
	}

	if len(req.GameIDs) > 0 {
		games, err := s.gameRepo.FindByIDs(db, req.GameIDs)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		if len(games) != len(req.GameIDs) {
			return nil, apperrors.NotFound("Game")
		}
		plan.Games = games
	}

	if err := s.subRepo.CreatePlan(db, plan); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return plan, nil
}

func (s *SubscriptionServiceImpl) GetPlan(db *gorm.DB, id string) (*models.SubscriptionPlan, error) {
	plan, err := s.subRepo.FindPlanByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPlanNotFound) {
			return nil, apperrors.NotFound("Subscription plan")
		}
		return nil, apperrors.InternalError(err)
	}
	return plan, nil
}

func (s *SubscriptionServiceImpl) ListPlans(db *gorm.DB) ([]models.SubscriptionPlan, error) {
	plans, err := s.subRepo.FindAllPlans(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return plans, nil
}

func (s *SubscriptionServiceImpl) UpdatePlan(db *gorm.DB, id string, req *dto.UpdatePlanRequest) (*models.SubscriptionPlan, error) {
	plan, err := s.GetPlan(db, id)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		plan.Type = *req.Type
	}
	if req.Features != nil {
		raw, err := json.Marshal(req.Features)
		if err != nil {
			return nil, apperrors.NewBadRequestError("invalid features payload")
		}
		plan.Features = datatypes.JSON(raw)
	}

	if err := s.subRepo.UpdatePlan(db, plan); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return plan, nil
}

func (s *SubscriptionServiceImpl) DeletePlan(db *gorm.DB, id string) error {
	if err := s.subRepo.SoftDeletePlan(db, id); err != nil {
		if errors.Is(err, repositories.ErrPlanNotFound) {
			return apperrors.NotFound("Subscription plan")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *SubscriptionServiceImpl) AddGameToPlan(db *gorm.DB, planID, gameID string) error {
	plan, err := s.GetPlan(db, planID)
	if err != nil {
		return err
	}
	game, err := s.gameRepo.FindByID(db, gameID)
	if err != nil {
		if errors.Is(err, repositories.ErrGameNotFound) {
			return apperrors.NotFound("Game")
		}
		return apperrors.InternalError(err)
	}

	bundled, err := s.subRepo.PlanBundlesGame(db, planID, gameID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if bundled {
		return apperrors.ErrConflict(nil, "subscription", "game is already part of this plan")
	}

	if err := s.subRepo.AddGameToPlan(db, plan, game); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *SubscriptionServiceImpl) RemoveGameFromPlan(db *gorm.DB, planID, gameID string) error {
	plan, err := s.GetPlan(db, planID)
	if err != nil {
		return err
	}
	game, err := s.gameRepo.FindByIDAny(db, gameID)
	if err != nil {
		if errors.Is(err, repositories.ErrGameNotFound) {
			return apperrors.NotFound("Game")
		}
		return apperrors.InternalError(err)
	}
	if err := s.subRepo.RemoveGameFromPlan(db, plan, game); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *SubscriptionServiceImpl) ListPlanGames(db *gorm.DB, planID string) ([]models.Game, error) {
	if _, err := s.GetPlan(db, planID); err != nil {
		return nil, err
	}
	games, err := s.subRepo.FindGamesInPlan(db, planID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return games, nil
}

func (s *SubscriptionServiceImpl) AddCountryTier(db *gorm.DB, planID string, req *dto.CreateCountryTierRequest) (*models.SubscriptionPlanCountry, error) {
	if _, err := s.GetPlan(db, planID); err != nil {
		return nil, err
	}
	if _, err := s.geoRepo.FindCountryByID(db, req.CountryID); err != nil {
		if errors.Is(err, repositories.ErrCountryNotFound) {
			return nil, apperrors.NotFound("Country")
		}
		return nil, apperrors.InternalError(err)
	}

	tier := &models.SubscriptionPlanCountry{
		PlanID:         planID,
		CountryID:      req.CountryID,
		DurationMonths: req.DurationMonths,
		Price:          req.Price,
		Currency:       req.Currency,
	}
	if err := s.subRepo.CreateCountryTier(db, tier); err != nil {
		if errors.Is(err, repositories.ErrTierAlreadyExists) {
			return nil, apperrors.ErrPricingTierExists
		}
		return nil, apperrors.InternalError(err)
	}
	return tier, nil
}

func (s *SubscriptionServiceImpl) AddRegionTier(db *gorm.DB, planID string, req *dto.CreateRegionTierRequest) (*models.SubscriptionPlanRegion, error) {
	if _, err := s.GetPlan(db, planID); err != nil {
		return nil, err
	}
	if _, err := s.geoRepo.FindRegionByID(db, req.RegionID); err != nil {
		if errors.Is(err, repositories.ErrRegionNotFound) {
			return nil, apperrors.NotFound("Region")
		}
		return nil, apperrors.InternalError(err)
	}

	tier := &models.SubscriptionPlanRegion{
		PlanID:         planID,
		RegionID:       req.RegionID,
		DurationMonths: req.DurationMonths,
		Price:          req.Price,
		Currency:       req.Currency,
	}
	if err := s.subRepo.CreateRegionTier(db, tier); err != nil {
		if errors.Is(err, repositories.ErrTierAlreadyExists) {
			return nil, apperrors.ErrPricingTierExists
		}
		return nil, apperrors.InternalError(err)
	}
	return tier, nil
}

func (s *SubscriptionServiceImpl) RemoveCountryTier(db *gorm.DB, planID, tierID string) error {
	tier, err := s.subRepo.FindCountryTierByID(db, tierID)
	if err != nil {
		if errors.Is(err, repositories.ErrTierNotFound) {
			return apperrors.NotFound("Pricing tier")
		}
		return apperrors.InternalError(err)
	}
	if tier.PlanID != planID {
		return apperrors.NotFound("Pricing tier")
	}
	if err := s.subRepo.DeleteCountryTier(db, tierID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *SubscriptionServiceImpl) RemoveRegionTier(db *gorm.DB, planID, tierID string) error {
	tier, err := s.subRepo.FindRegionTierByID(db, tierID)
	if err != nil {
		if errors.Is(err, repositories.ErrTierNotFound) {
			return apperrors.NotFound("Pricing tier")
		}
		return apperrors.InternalError(err)
	}
	if tier.PlanID != planID {
		return apperrors.NotFound("Pricing tier")
	}
	if err := s.subRepo.DeleteRegionTier(db, tierID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// Subscribe starts a new subscription period from the chosen tier.
// Subscribing while another period is still active simply stacks a new
// period on top; nothing is prorated or merged.
func (s *SubscriptionServiceImpl) Subscribe(db *gorm.DB, userID string, req *dto.SubscribeRequest) (*models.UserSubscriptionPlan, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NotFound("User")
		}
		return nil, apperrors.InternalError(err)
	}

	var (
		planID         string
		price          float64
		currency       string
		durationMonths int
	)

	switch models.TierKind(req.TierKind) {
	case models.TierKindCountry:
		tier, err := s.subRepo.FindCountryTierByID(db, req.TierID)
		if err != nil {
			if errors.Is(err, repositories.ErrTierNotFound) {
				return nil, apperrors.NotFound("Pricing tier")
			}
			return nil, apperrors.InternalError(err)
		}
		if tier.CountryID != user.CountryID {
			return nil, apperrors.NewForbiddenError("pricing tier is not available in your country")
		}
		planID, price, currency, durationMonths = tier.PlanID, tier.Price, tier.Currency, tier.DurationMonths
	case models.TierKindRegion:
		tier, err := s.subRepo.FindRegionTierByID(db, req.TierID)
		if err != nil {
			if errors.Is(err, repositories.ErrTierNotFound) {
				return nil, apperrors.NotFound("Pricing tier")
			}
			return nil, apperrors.InternalError(err)
		}
		country, err := s.geoRepo.FindCountryByID(db, user.CountryID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		if tier.RegionID != country.RegionID {
			return nil, apperrors.NewForbiddenError("pricing tier is not available in your region")
		}
		planID, price, currency, durationMonths = tier.PlanID, tier.Price, tier.Currency, tier.DurationMonths
	default:
		return nil, apperrors.NewBadRequestError("unknown tier kind")
	}

	if _, err := s.GetPlan(db, planID); err != nil {
		return nil, err
	}

	now := time.Now()
	sub := &models.UserSubscriptionPlan{
		UserID:    userID,
		PlanID:    planID,
		TierID:    req.TierID,
		TierKind:  models.TierKind(req.TierKind),
		PricePaid: price,
		Currency:  currency,
		StartDate: now,
		EndDate:   now.AddDate(0, durationMonths, 0),
	}
	if err := s.subRepo.CreateUserSubscription(db, sub); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return sub, nil
}

func (s *SubscriptionServiceImpl) GetUserSubscriptions(db *gorm.DB, userID string) ([]models.UserSubscriptionPlan, error) {
	subs, err := s.subRepo.FindUserSubscriptions(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return subs, nil
}

// GetActiveSubscription returns the most recently started of the
// currently active periods, or nil when none is active.
func (s *SubscriptionServiceImpl) GetActiveSubscription(db *gorm.DB, userID string) (*models.UserSubscriptionPlan, error) {
	subs, err := s.subRepo.FindActiveSubscriptions(db, userID, time.Now())
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(subs) == 0 {
		return nil, nil
	}
	return &subs[0], nil
}

// CancelSubscription end-dates the period immediately. The row stays in
// place so past entitlement checks remain explainable.
func (s *SubscriptionServiceImpl) CancelSubscription(db *gorm.DB, userID, subscriptionID string) (*models.UserSubscriptionPlan, error) {
	sub, err := s.subRepo.FindSubscriptionByID(db, subscriptionID)
	if err != nil {
		if errors.Is(err, repositories.ErrSubscriptionNotFound) {
			return nil, apperrors.NotFound("Subscription")
		}
		return nil, apperrors.InternalError(err)
	}
	if sub.UserID != userID {
		return nil, apperrors.NotFound("Subscription")
	}
	if sub.CancelledAt != nil {
		return nil, apperrors.ErrSubscriptionCancelled
	}

	now := time.Now()
	if err := s.subRepo.EndSubscription(db, subscriptionID, now); err != nil {
		return nil, apperrors.InternalError(err)
	}
	sub.EndDate = now
	sub.CancelledAt = &now
	return sub, nil
}
