package repositories

import (
	"errors"
	"time"

	"gamestore_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrGameNotFound      = errors.New("game not found")
	ErrGamePriceNotFound = errors.New("game price not found")
)

type GameFilter struct {
	Search     string // matches name or publisher
	CategoryID string
	FreeToPlay *bool
	SortBy     string // "name", "release_date", "created_at"
	SortDesc   bool
	Page       int
	PageSize   int
}

type GameRepository interface {
	Create(db *gorm.DB, game *models.Game) error
	FindByID(db *gorm.DB, id string) (*models.Game, error)
	FindByIDAny(db *gorm.DB, id string) (*models.Game, error)
	Update(db *gorm.DB, game *models.Game) error
	SoftDelete(db *gorm.DB, id string) error
	Restore(db *gorm.DB, id string) error
	FindWithFilter(db *gorm.DB, criteria GameFilter) ([]models.Game, int64, error)
	FindFreeGames(db *gorm.DB) ([]models.Game, error)
	FindByIDs(db *gorm.DB, ids []string) ([]models.Game, error)
	CountAll(db *gorm.DB) (int64, error)

	// Category assignment
	ReplaceCategories(db *gorm.DB, game *models.Game, categories []models.Category) error

	// Country pricing
	FindCountryPrice(db *gorm.DB, gameID, countryID string) (*models.GameCountry, error)
	UpsertCountryPrice(db *gorm.DB, price *models.GameCountry) error
	DeleteCountryPrice(db *gorm.DB, gameID, countryID string) error
}

type GameRepositoryImpl struct{}

func NewGameRepository() GameRepository {
	return &GameRepositoryImpl{}
}

func (r *GameRepositoryImpl) Create(db *gorm.DB, game *models.Game) error {
	return db.Create(game).Error
}

func (r *GameRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Game, error) {
	var game models.Game
	err := models.Active(db).
		Preload("Categories", models.Active).
		Preload("CountryPrices").
		First(&game, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	return &game, nil
}

func (r *GameRepositoryImpl) FindByIDAny(db *gorm.DB, id string) (*models.Game, error) {
	var game models.Game
	err := db.Preload("Categories").Preload("CountryPrices").First(&game, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	return &game, nil
}

func (r *GameRepositoryImpl) Update(db *gorm.DB, game *models.Game) error {
	result := db.Model(game).Updates(map[string]interface{}{
		"name":         game.Name,
		"publisher":    game.Publisher,
		"release_date": game.ReleaseDate,
		"free_to_play": game.FreeToPlay,
		"base_price":   game.BasePrice,
		"multiplayer":  game.Multiplayer,
		"updated_at":   time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGameNotFound
	}
	return nil
}

func (r *GameRepositoryImpl) SoftDelete(db *gorm.DB, id string) error {
	result := models.Active(db.Model(&models.Game{})).Where("id = ?", id).Updates(map[string]interface{}{
		"is_deleted": true,
		"deleted_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGameNotFound
	}
	return nil
}

func (r *GameRepositoryImpl) Restore(db *gorm.DB, id string) error {
	result := db.Model(&models.Game{}).Where("id = ? AND is_deleted = ?", id, true).Updates(map[string]interface{}{
		"is_deleted": false,
		"deleted_at": nil,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGameNotFound
	}
	return nil
}

func (r *GameRepositoryImpl) FindWithFilter(db *gorm.DB, criteria GameFilter) ([]models.Game, int64, error) {
	var games []models.Game
	query := models.Active(db.Model(&models.Game{}))

	if criteria.Search != "" {
		search := "%" + criteria.Search + "%"
		query = query.Where("name ILIKE ? OR publisher ILIKE ?", search, search)
	}
	if criteria.CategoryID != "" {
		query = query.Joins("JOIN game_categories gc ON gc.game_id = games.id").
			Where("gc.category_id = ?", criteria.CategoryID)
	}
	if criteria.FreeToPlay != nil {
		query = query.Where("free_to_play = ?", *criteria.FreeToPlay)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "created_at DESC"
	switch criteria.SortBy {
	case "name":
		order = "name ASC"
		if criteria.SortDesc {
			order = "name DESC"
		}
	case "release_date":
		order = "release_date ASC"
		if criteria.SortDesc {
			order = "release_date DESC"
		}
	}

	limit := criteria.PageSize
	offset := (criteria.Page - 1) * criteria.PageSize

	err := query.Preload("Categories", models.Active).
		Order(order).Limit(limit).Offset(offset).Find(&games).Error

	return games, total, err
}

func (r *GameRepositoryImpl) FindFreeGames(db *gorm.DB) ([]models.Game, error) {
	var games []models.Game
	err := models.Active(db).Where("free_to_play = ?", true).Find(&games).Error
	return games, err
}

func (r *GameRepositoryImpl) FindByIDs(db *gorm.DB, ids []string) ([]models.Game, error) {
	var games []models.Game
	if len(ids) == 0 {
		return games, nil
	}
	err := models.Active(db).Where("id IN ?", ids).Find(&games).Error
	return games, err
}

func (r *GameRepositoryImpl) CountAll(db *gorm.DB) (int64, error) {
	var count int64
	err := models.Active(db.Model(&models.Game{})).Count(&count).Error
	return count, err
}

func (r *GameRepositoryImpl) ReplaceCategories(db *gorm.DB, game *models.Game, categories []models.Category) error {
	return db.Model(game).Association("Categories").Replace(categories)
}

func (r *GameRepositoryImpl) FindCountryPrice(db *gorm.DB, gameID, countryID string) (*models.GameCountry, error) {
	var price models.GameCountry
	err := db.First(&price, "game_id = ? AND country_id = ?", gameID, countryID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGamePriceNotFound
		}
		return nil, err
	}
	return &price, nil
}

func (r *GameRepositoryImpl) UpsertCountryPrice(db *gorm.DB, price *models.GameCountry) error {
	existing, err := r.FindCountryPrice(db, price.GameID, price.CountryID)
	if err != nil {
		if errors.Is(err, ErrGamePriceNotFound) {
			return db.Create(price).Error
		}
		return err
	}

	return db.Model(existing).Update("price", price.Price).Error
}

func (r *GameRepositoryImpl) DeleteCountryPrice(db *gorm.DB, gameID, countryID string) error {
	result := db.Where("game_id = ? AND country_id = ?", gameID, countryID).Delete(&models.GameCountry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGamePriceNotFound
	}
	return nil
}
