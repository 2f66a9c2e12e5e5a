package repositories

import (
	"errors"

	"gamestore_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCartNotFound     = errors.New("cart not found")
	ErrCartItemNotFound = errors.New("cart item not found")
)

type CartRepository interface {
	FindByUser(db *gorm.DB, userID string) (*models.Cart, error)
	FindOrCreate(db *gorm.DB, userID string) (*models.Cart, error)
	UpdateTotal(db *gorm.DB, cartID string, total float64) error

	FindItemByID(db *gorm.DB, cartID, itemID string) (*models.CartItem, error)
	FindItemByGame(db *gorm.DB, cartID, gameID string) (*models.CartItem, error)
	CreateItem(db *gorm.DB, item *models.CartItem) error
	UpdateItem(db *gorm.DB, item *models.CartItem) error
	DeleteItem(db *gorm.DB, cartID, itemID string) error
	DeleteAllItems(db *gorm.DB, cartID string) error
}

type CartRepositoryImpl struct{}

func NewCartRepository() CartRepository {
	return &CartRepositoryImpl{}
}

func (r *CartRepositoryImpl) FindByUser(db *gorm.DB, userID string) (*models.Cart, error) {
	var cart models.Cart
	err := db.Preload("Items").Preload("Items.Game").
		First(&cart, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}
	return &cart, nil
}

// FindOrCreate lazily creates the user's single cart on first use.
func (r *CartRepositoryImpl) FindOrCreate(db *gorm.DB, userID string) (*models.Cart, error) {
	cart, err := r.FindByUser(db, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, ErrCartNotFound) {
		return nil, err
	}

	cart = &models.Cart{UserID: userID}
	if err := db.Create(cart).Error; err != nil {
		return nil, err
	}
	return cart, nil
}

func (r *CartRepositoryImpl) UpdateTotal(db *gorm.DB, cartID string, total float64) error {
	result := db.Model(&models.Cart{}).Where("id = ?", cartID).Update("total_amount", total)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCartNotFound
	}
	return nil
}

func (r *CartRepositoryImpl) FindItemByID(db *gorm.DB, cartID, itemID string) (*models.CartItem, error) {
	var item models.CartItem
	err := db.Preload("Game").First(&item, "id = ? AND cart_id = ?", itemID, cartID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *CartRepositoryImpl) FindItemByGame(db *gorm.DB, cartID, gameID string) (*models.CartItem, error) {
	var item models.CartItem
	err := db.First(&item, "cart_id = ? AND game_id = ?", cartID, gameID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *CartRepositoryImpl) CreateItem(db *gorm.DB, item *models.CartItem) error {
	return db.Create(item).Error
}

func (r *CartRepositoryImpl) UpdateItem(db *gorm.DB, item *models.CartItem) error {
	return db.Model(item).Updates(map[string]interface{}{
		"quantity":    item.Quantity,
		"unit_price":  item.UnitPrice,
		"total_price": item.TotalPrice,
	}).Error
}

func (r *CartRepositoryImpl) DeleteItem(db *gorm.DB, cartID, itemID string) error {
	result := db.Where("id = ? AND cart_id = ?", itemID, cartID).Delete(&models.CartItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

func (r *CartRepositoryImpl) DeleteAllItems(db *gorm.DB, cartID string) error {
	return db.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error
}
