package repositories

import (
	"errors"

	"gamestore_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPurchaseNotFound = errors.New("purchase not found")

// PurchaseRepository is append-only on purpose: the ledger exposes no
// update or delete. PricePaid is a snapshot and never recomputed.
type PurchaseRepository interface {
	Create(db *gorm.DB, purchase *models.UserPurchaseGame) error
	Exists(db *gorm.DB, userID, gameID string) (bool, error)
	FindByUserAndGame(db *gorm.DB, userID, gameID string) (*models.UserPurchaseGame, error)
	FindByUser(db *gorm.DB, userID string, limit, offset int) ([]models.UserPurchaseGame, int64, error)
	CountAll(db *gorm.DB) (int64, error)
	SumRevenue(db *gorm.DB) (float64, error)
}

type PurchaseRepositoryImpl struct{}

func NewPurchaseRepository() PurchaseRepository {
	return &PurchaseRepositoryImpl{}
}

func (r *PurchaseRepositoryImpl) Create(db *gorm.DB, purchase *models.UserPurchaseGame) error {
	return db.Create(purchase).Error
}

func (r *PurchaseRepositoryImpl) Exists(db *gorm.DB, userID, gameID string) (bool, error) {
	var count int64
	err := db.Model(&models.UserPurchaseGame{}).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		Count(&count).Error
	return count > 0, err
}

func (r *PurchaseRepositoryImpl) FindByUserAndGame(db *gorm.DB, userID, gameID string) (*models.UserPurchaseGame, error) {
	var purchase models.UserPurchaseGame
	err := db.First(&purchase, "user_id = ? AND game_id = ?", userID, gameID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPurchaseNotFound
		}
		return nil, err
	}
	return &purchase, nil
}

func (r *PurchaseRepositoryImpl) FindByUser(db *gorm.DB, userID string, limit, offset int) ([]models.UserPurchaseGame, int64, error) {
	query := db.Model(&models.UserPurchaseGame{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit <= 0 {
		limit = -1
	}

	var purchases []models.UserPurchaseGame
	err := query.Preload("Game").
		Order("purchase_date DESC").Limit(limit).Offset(offset).Find(&purchases).Error

	return purchases, total, err
}

func (r *PurchaseRepositoryImpl) CountAll(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.UserPurchaseGame{}).Count(&count).Error
	return count, err
}

func (r *PurchaseRepositoryImpl) SumRevenue(db *gorm.DB) (float64, error) {
	var total float64
	err := db.Model(&models.UserPurchaseGame{}).
		Select("COALESCE(SUM(price_paid), 0)").Scan(&total).Error
	return total, err
}
