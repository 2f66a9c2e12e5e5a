package repositories

import (
	"errors"
	"time"

	"gamestore_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrPlanNotFound         = errors.New("subscription plan not found")
	ErrTierNotFound         = errors.New("pricing tier not found")
	ErrTierAlreadyExists    = errors.New("pricing tier already exists")
	ErrSubscriptionNotFound = errors.New("subscription not found")
)

type SubscriptionRepository interface {
	// Plan operations
	CreatePlan(db *gorm.DB, plan *models.SubscriptionPlan) error
	FindPlanByID(db *gorm.DB, id string) (*models.SubscriptionPlan, error)
	FindAllPlans(db *gorm.DB) ([]models.SubscriptionPlan, error)
	UpdatePlan(db *gorm.DB, plan *models.SubscriptionPlan) error
	SoftDeletePlan(db *gorm.DB, id string) error

	// Bundle membership
	AddGameToPlan(db *gorm.DB, plan *models.SubscriptionPlan, game *models.Game) error
	RemoveGameFromPlan(db *gorm.DB, plan *models.SubscriptionPlan, game *models.Game) error
	PlanBundlesGame(db *gorm.DB, planID, gameID string) (bool, error)
	FindGamesInPlan(db *gorm.DB, planID string) ([]models.Game, error)

	// Pricing tiers
	CreateCountryTier(db *gorm.DB, tier *models.SubscriptionPlanCountry) error
	CreateRegionTier(db *gorm.DB, tier *models.SubscriptionPlanRegion) error
	FindCountryTierByID(db *gorm.DB, id string) (*models.SubscriptionPlanCountry, error)
	FindRegionTierByID(db *gorm.DB, id string) (*models.SubscriptionPlanRegion, error)
	DeleteCountryTier(db *gorm.DB, id string) error
	DeleteRegionTier(db *gorm.DB, id string) error

	// User subscriptions
	CreateUserSubscription(db *gorm.DB, sub *models.UserSubscriptionPlan) error
	FindUserSubscriptions(db *gorm.DB, userID string) ([]models.UserSubscriptionPlan, error)
	FindActiveSubscriptions(db *gorm.DB, userID string, now time.Time) ([]models.UserSubscriptionPlan, error)
	FindSubscriptionByID(db *gorm.DB, id string) (*models.UserSubscriptionPlan, error)
	EndSubscription(db *gorm.DB, id string, at time.Time) error
	CountActiveSubscriptions(db *gorm.DB, now time.Time) (int64, error)
}

type SubscriptionRepositoryImpl struct{}

func NewSubscriptionRepository() SubscriptionRepository {
	return &SubscriptionRepositoryImpl{}
}

// Plan operations

func (r *SubscriptionRepositoryImpl) CreatePlan(db *gorm.DB, plan *models.SubscriptionPlan) error {
	return db.Create(plan).Error
}

func (r *SubscriptionRepositoryImpl) FindPlanByID(db *gorm.DB, id string) (*models.SubscriptionPlan, error) {
	var plan models.SubscriptionPlan
	err := models.Active(db).
		Preload("Games", models.Active).
		Preload("CountryTiers").
		Preload("RegionTiers").
		First(&plan, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return &plan, nil
}

func (r *SubscriptionRepositoryImpl) FindAllPlans(db *gorm.DB) ([]models.SubscriptionPlan, error) {
	var plans []models.SubscriptionPlan
	err := models.Active(db).
		Preload("CountryTiers").
		Preload("RegionTiers").
		Order("type ASC").Find(&plans).Error
	return plans, err
}

func (r *SubscriptionRepositoryImpl) UpdatePlan(db *gorm.DB, plan *models.SubscriptionPlan) error {
	result := db.Model(plan).Updates(map[string]interface{}{
		"type":       plan.Type,
		"features":   plan.Features,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPlanNotFound
	}
	return nil
}

func (r *SubscriptionRepositoryImpl) SoftDeletePlan(db *gorm.DB, id string) error {
	result := models.Active(db.Model(&models.SubscriptionPlan{})).Where("id = ?", id).Updates(map[string]interface{}{
		"is_deleted": true,
		"deleted_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPlanNotFound
	}
	return nil
}

// Bundle membership

func (r *SubscriptionRepositoryImpl) AddGameToPlan(db *gorm.DB, plan *models.SubscriptionPlan, game *models.Game) error {
	return db.Model(plan).Association("Games").Append(game)
}

func (r *SubscriptionRepositoryImpl) RemoveGameFromPlan(db *gorm.DB, plan *models.SubscriptionPlan, game *models.Game) error {
	return db.Model(plan).Association("Games").Delete(game)
}

func (r *SubscriptionRepositoryImpl) PlanBundlesGame(db *gorm.DB, planID, gameID string) (bool, error) {
	var count int64
	err := db.Table("game_subscriptions").
		Where("subscription_plan_id = ? AND game_id = ?", planID, gameID).
		Count(&count).Error
	return count > 0, err
}

func (r *SubscriptionRepositoryImpl) FindGamesInPlan(db *gorm.DB, planID string) ([]models.Game, error) {
	var games []models.Game
	err := models.Active(db).
		Joins("JOIN game_subscriptions gs ON gs.game_id = games.id").
		Where("gs.subscription_plan_id = ?", planID).
		Find(&games).Error
	return games, err
}

// Pricing tiers

func (r *SubscriptionRepositoryImpl) CreateCountryTier(db *gorm.DB, tier *models.SubscriptionPlanCountry) error {
	// The composite unique index is the hard guard; the lookup turns the
	// driver error into a domain one.
	var existing models.SubscriptionPlanCountry
	err := db.Where("plan_id = ? AND country_id = ? AND duration_months = ?",
		tier.PlanID, tier.CountryID, tier.DurationMonths).First(&existing).Error
	if err == nil {
		return ErrTierAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return db.Create(tier).Error
}

func (r *SubscriptionRepositoryImpl) CreateRegionTier(db *gorm.DB, tier *models.SubscriptionPlanRegion) error {
	var existing models.SubscriptionPlanRegion
	err := db.Where("plan_id = ? AND region_id = ? AND duration_months = ?",
		tier.PlanID, tier.RegionID, tier.DurationMonths).First(&existing).Error
	if err == nil {
		return ErrTierAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return db.Create(tier).Error
}

func (r *SubscriptionRepositoryImpl) FindCountryTierByID(db *gorm.DB, id string) (*models.SubscriptionPlanCountry, error) {
	var tier models.SubscriptionPlanCountry
	err := db.Preload("Country").First(&tier, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTierNotFound
		}
		return nil, err
	}
	return &tier, nil
}

func (r *SubscriptionRepositoryImpl) FindRegionTierByID(db *gorm.DB, id string) (*models.SubscriptionPlanRegion, error) {
	var tier models.SubscriptionPlanRegion
	err := db.Preload("Region").First(&tier, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTierNotFound
		}
		return nil, err
	}
	return &tier, nil
}

func (r *SubscriptionRepositoryImpl) DeleteCountryTier(db *gorm.DB, id string) error {
	result := db.Delete(&models.SubscriptionPlanCountry{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTierNotFound
	}
	return nil
}

func (r *SubscriptionRepositoryImpl) DeleteRegionTier(db *gorm.DB, id string) error {
	result := db.Delete(&models.SubscriptionPlanRegion{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTierNotFound
	}
	return nil
}

// User subscriptions

func (r *SubscriptionRepositoryImpl) CreateUserSubscription(db *gorm.DB, sub *models.UserSubscriptionPlan) error {
	return db.Create(sub).Error
}

func (r *SubscriptionRepositoryImpl) FindUserSubscriptions(db *gorm.DB, userID string) ([]models.UserSubscriptionPlan, error) {
	var subs []models.UserSubscriptionPlan
	err := db.Preload("Plan").
		Where("user_id = ?", userID).
		Order("start_date DESC").Find(&subs).Error
	return subs, err
}

func (r *SubscriptionRepositoryImpl) FindActiveSubscriptions(db *gorm.DB, userID string, now time.Time) ([]models.UserSubscriptionPlan, error) {
	var subs []models.UserSubscriptionPlan
	err := db.Preload("Plan").
		Where("user_id = ? AND start_date <= ? AND end_date >= ?", userID, now, now).
		Order("start_date DESC").Find(&subs).Error
	return subs, err
}

func (r *SubscriptionRepositoryImpl) FindSubscriptionByID(db *gorm.DB, id string) (*models.UserSubscriptionPlan, error) {
	var sub models.UserSubscriptionPlan
	err := db.Preload("Plan").First(&sub, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, err
	}
	return &sub, nil
}

// EndSubscription end-dates the row; a cancelled subscription stays in
// the history and earlier entitlement decisions remain reproducible.
func (r *SubscriptionRepositoryImpl) EndSubscription(db *gorm.DB, id string, at time.Time) error {
	result := db.Model(&models.UserSubscriptionPlan{}).Where("id = ?", id).Updates(map[string]interface{}{
		"end_date":     at,
		"cancelled_at": at,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSubscriptionNotFound
	}
	return nil
}

func (r *SubscriptionRepositoryImpl) CountActiveSubscriptions(db *gorm.DB, now time.Time) (int64, error) {
	var count int64
	err := db.Model(&models.UserSubscriptionPlan{}).
		Where("start_date <= ? AND end_date >= ?", now, now).
		Count(&count).Error
	return count, err
}
