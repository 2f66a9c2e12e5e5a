package services

import (
	"errors"

	"gamestore_backend/internal/models"
	"gamestore_backend/internal/repositories"
	"gamestore_backend/internal/services/dto"
	"gamestore_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type GameService interface {
	CreateGame(db *gorm.DB, req *dto.CreateGameRequest) (*models.Game, error)
	GetGame(db *gorm.DB, id string) (*models.Game, error)
	UpdateGame(db *gorm.DB, id string, req *dto.UpdateGameRequest) (*models.Game, error)
	DeleteGame(db *gorm.DB, id string) error
	RestoreGame(db *gorm.DB, id string) error
	ListGames(db *gorm.DB, filter repositories.GameFilter) ([]models.Game, int64, error)
	SetCountryPrice(db *gorm.DB, gameID string, req *dto.SetCountryPriceRequest) error
	RemoveCountryPrice(db *gorm.DB, gameID, countryID string) error
	ResolveUnitPrice(db *gorm.DB, game *models.Game, countryID string) (float64, error)
}

type GameServiceImpl struct {
	gameRepo     repositories.GameRepository
	categoryRepo repositories.CategoryRepository
	geoRepo      repositories.GeoRepository
}

func NewGameService(
	gameRepo repositories.GameRepository,
	categoryRepo repositories.CategoryRepository,
	geoRepo repositories.GeoRepository,
) GameService {
	return &GameServiceImpl{
		gameRepo:     gameRepo,
		categoryRepo: categoryRepo,
		geoRepo:      geoRepo,
	}
}

func (s *GameServiceImpl) CreateGame(db *gorm.DB, req *dto.CreateGameRequest) (*models.Game, error) {
	game := &models.Game{
		Name:        req.Name,
		Publisher:   req.Publisher,
		ReleaseDate: req.ReleaseDate,
		FreeToPlay:  req.FreeToPlay,
		BasePrice:   req.BasePrice,
		Multiplayer: req.Multiplayer,
	}

	if len(req.CategoryIDs) > 0 {
		categories, err := s.categoryRepo.FindByIDs(db, req.CategoryIDs)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		if len(categories) != len(req.CategoryIDs) {
			return nil, apperrors.NotFound("Category")
		}
		game.Categories = categories
	}

	if err := s.gameRepo.Create(db, game); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return game, nil
}

func (s *GameServiceImpl) GetGame(db *gorm.DB, id string) (*models.Game, error) {
	game, err := s.gameRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrGameNotFound) {
			return nil, apperrors.NotFound("Game")
		}
		return nil, apperrors.InternalError(err)
	}
	return game, nil
}

func (s *GameServiceImpl) UpdateGame(db *gorm.DB, id string, req *dto.UpdateGameRequest) (*models.Game, error) {
	game, err := s.GetGame(db, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		game.Name = *req.Name
	}
	if req.Publisher != nil {
		game.Publisher = *req.Publisher
	}
	if req.ReleaseDate != nil {
		game.ReleaseDate = *req.ReleaseDate
	}
	if req.FreeToPlay != nil {
		game.FreeToPlay = *req.FreeToPlay
	}
	if req.BasePrice != nil {
		game.BasePrice = req.BasePrice
	}
	if req.Multiplayer != nil {
		game.Multiplayer = *req.Multiplayer
	}

	if err := s.gameRepo.Update(db, game); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if req.CategoryIDs != nil {
		categories, err := s.categoryRepo.FindByIDs(db, req.CategoryIDs)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		if len(categories) != len(req.CategoryIDs) {
			return nil, apperrors.NotFound("Category")
		}
		if err := s.gameRepo.ReplaceCategories(db, game, categories); err != nil {
			return nil, apperrors.InternalError(err)
		}
		game.Categories = categories
	}

	return game, nil
}

func (s *GameServiceImpl) DeleteGame(db *gorm.DB, id string) error {
	if err := s.gameRepo.SoftDelete(db, id); err != nil {
		if errors.Is(err, repositories.ErrGameNotFound) {
			return apperrors.NotFound("Game")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *GameServiceImpl) RestoreGame(db *gorm.DB, id string) error {
	if err := s.gameRepo.Restore(db, id); err != nil {
		if errors.Is(err, repositories.ErrGameNotFound) {
			return apperrors.NotFound("Game")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *GameServiceImpl) ListGames(db *gorm.DB, filter repositories.GameFilter) ([]models.Game, int64, error) {
	games, total, err := s.gameRepo.FindWithFilter(db, filter)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return games, total, nil
}

func (s *GameServiceImpl) SetCountryPrice(db *gorm.DB, gameID string, req *dto.SetCountryPriceRequest) error {
	if _, err := s.GetGame(db, gameID); err != nil {
		return err
	}
	if _, err := s.geoRepo.FindCountryByID(db, req.CountryID); err != nil {
		if errors.Is(err, repositories.ErrCountryNotFound) {
			return apperrors.NotFound("Country")
		}
		return apperrors.InternalError(err)
	}

	price := &models.GameCountry{
		GameID:    gameID,
		CountryID: req.CountryID,
		Price:     req.Price,
	}
	if err := s.gameRepo.UpsertCountryPrice(db, price); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *GameServiceImpl) RemoveCountryPrice(db *gorm.DB, gameID, countryID string) error {
	if err := s.gameRepo.DeleteCountryPrice(db, gameID, countryID); err != nil {
		if errors.Is(err, repositories.ErrGamePriceNotFound) {
			return apperrors.NotFound("Game price")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// ResolveUnitPrice picks the price a user in the given country pays for
// one copy of the game. Free games cost nothing, a country override
// beats the base price, and a game with neither cannot be bought.
func (s *GameServiceImpl) ResolveUnitPrice(db *gorm.DB, game *models.Game, countryID string) (float64, error) {
	if game.FreeToPlay {
		return 0, nil
	}

	price, err := s.gameRepo.FindCountryPrice(db, game.ID, countryID)
	if err == nil {
		return price.Price, nil
	}
	if !errors.Is(err, repositories.ErrGamePriceNotFound) {
		return 0, apperrors.InternalError(err)
	}

	if game.BasePrice != nil {
		return *game.BasePrice, nil
	}
	return 0, apperrors.ErrGamePriceUnavailable
}
