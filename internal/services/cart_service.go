package services

import (
	"errors"
	"time"

	"gamestore_backend/internal/email"
	"gamestore_backend/internal/logger"
	"gamestore_backend/internal/models"
	"gamestore_backend/internal/repositories"
	"gamestore_backend/internal/services/dto"
	"gamestore_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type CartService interface {
	GetCart(db *gorm.DB, userID string) (*models.Cart, error)
	AddItem(db *gorm.DB, userID string, req *dto.AddCartItemRequest) (*models.Cart, error)
	UpdateItemQuantity(db *gorm.DB, userID, itemID string, req *dto.UpdateCartItemRequest) (*models.Cart, error)
	RemoveItem(db *gorm.DB, userID, itemID string) (*models.Cart, error)
	ClearCart(db *gorm.DB, userID string) error
	Checkout(db *gorm.DB, userID string) (*dto.CheckoutResult, error)
}

type CartServiceImpl struct {
	cartRepo      repositories.CartRepository
	gameRepo      repositories.GameRepository
	userRepo      repositories.UserRepository
	purchaseRepo  repositories.PurchaseRepository
	gameService   GameService
	emailProvider email.Provider
}

func NewCartService(
	cartRepo repositories.CartRepository,
	gameRepo repositories.GameRepository,
	userRepo repositories.UserRepository,
	purchaseRepo repositories.PurchaseRepository,
	gameService GameService,
	emailProvider email.Provider,
) CartService {
	return &CartServiceImpl{
		cartRepo:      cartRepo,
		gameRepo:      gameRepo,
		userRepo:      userRepo,
		purchaseRepo:  purchaseRepo,
		gameService:   gameService,
		emailProvider: emailProvider,
	}
}

func (s *CartServiceImpl) GetCart(db *gorm.DB, userID string) (*models.Cart, error) {
	cart, err := s.cartRepo.FindOrCreate(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return cart, nil
}

// AddItem puts a game into the cart at the unit price resolved for the
// user's country right now. Adding a game that is already in the cart
// bumps its quantity instead of creating a second line.
func (s *CartServiceImpl) AddItem(db *gorm.DB, userID string, req *dto.AddCartItemRequest) (*models.Cart, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NotFound("User")
		}
		return nil, apperrors.InternalError(err)
	}

	game, err := s.gameRepo.FindByID(db, req.GameID)
	if err != nil {
		if errors.Is(err, repositories.ErrGameNotFound) {
			return nil, apperrors.NotFound("Game")
		}
		return nil, apperrors.InternalError(err)
	}
	if game.FreeToPlay {
		return nil, apperrors.ErrGameFreeToPlay
	}

	owned, err := s.purchaseRepo.Exists(db, userID, game.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if owned {
		return nil, apperrors.ErrGameAlreadyOwned
	}

	unitPrice, err := s.gameService.ResolveUnitPrice(db, game, user.CountryID)
	if err != nil {
		return nil, err
	}

	cart, err := s.cartRepo.FindOrCreate(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	item, err := s.cartRepo.FindItemByGame(db, cart.ID, game.ID)
	switch {
	case err == nil:
		item.Quantity += req.Quantity
		item.Recalculate()
		if err := s.cartRepo.UpdateItem(db, item); err != nil {
			return nil, apperrors.InternalError(err)
		}
	case errors.Is(err, repositories.ErrCartItemNotFound):
		item = &models.CartItem{
			CartID:    cart.ID,
			GameID:    game.ID,
			Quantity:  req.Quantity,
			UnitPrice: unitPrice,
		}
		item.Recalculate()
		if err := s.cartRepo.CreateItem(db, item); err != nil {
			return nil, apperrors.InternalError(err)
		}
	default:
		return nil, apperrors.InternalError(err)
	}

	return s.refreshCart(db, userID)
}

func (s *CartServiceImpl) UpdateItemQuantity(db *gorm.DB, userID, itemID string, req *dto.UpdateCartItemRequest) (*models.Cart, error) {
	cart, err := s.cartRepo.FindOrCreate(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	item, err := s.cartRepo.FindItemByID(db, cart.ID, itemID)
	if err != nil {
		if errors.Is(err, repositories.ErrCartItemNotFound) {
			return nil, apperrors.NotFound("Cart item")
		}
		return nil, apperrors.InternalError(err)
	}

	item.Quantity = req.Quantity
	item.Recalculate()
	if err := s.cartRepo.UpdateItem(db, item); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.refreshCart(db, userID)
}

func (s *CartServiceImpl) RemoveItem(db *gorm.DB, userID, itemID string) (*models.Cart, error) {
	cart, err := s.cartRepo.FindOrCreate(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.cartRepo.DeleteItem(db, cart.ID, itemID); err != nil {
		if errors.Is(err, repositories.ErrCartItemNotFound) {
			return nil, apperrors.NotFound("Cart item")
		}
		return nil, apperrors.InternalError(err)
	}

	return s.refreshCart(db, userID)
}

func (s *CartServiceImpl) ClearCart(db *gorm.DB, userID string) error {
	cart, err := s.cartRepo.FindOrCreate(db, userID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.cartRepo.DeleteAllItems(db, cart.ID); err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.cartRepo.UpdateTotal(db, cart.ID, 0); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// Checkout converts cart lines into ledger rows with partial-success
// semantics: every line is re-validated, sellable lines are written
// atomically, unsellable lines are reported back with a reason, and the
// cart is emptied either way.
func (s *CartServiceImpl) Checkout(db *gorm.DB, userID string) (*dto.CheckoutResult, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NotFound("User")
		}
		return nil, apperrors.InternalError(err)
	}

	cart, err := s.cartRepo.FindByUser(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrCartNotFound) {
			return nil, apperrors.ErrCartEmpty
		}
		return nil, apperrors.InternalError(err)
	}
	if len(cart.Items) == 0 {
		return nil, apperrors.ErrCartEmpty
	}

	result, purchases, err := s.prepareCheckout(db, userID, cart)
	if err != nil {
		return nil, err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		for i := range purchases {
			if err := s.purchaseRepo.Create(tx, &purchases[i]); err != nil {
				return err
			}
		}
		if err := s.cartRepo.DeleteAllItems(tx, cart.ID); err != nil {
			return err
		}
		return s.cartRepo.UpdateTotal(tx, cart.ID, 0)
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if len(result.PurchasedGames) > 0 {
		if err := s.emailProvider.SendPurchaseReceipt(user.Email, result.PurchasedGames, result.TotalCharged); err != nil {
			logger.Warn("failed to send purchase receipt", "email", user.Email, "error", err)
		}
	}

	return result, nil
}

// prepareCheckout re-validates every line against the current catalog
// and ledger state, splitting the cart into sellable purchases and
// failures with a reason each.
func (s *CartServiceImpl) prepareCheckout(db *gorm.DB, userID string, cart *models.Cart) (*dto.CheckoutResult, []models.UserPurchaseGame, error) {
	result := &dto.CheckoutResult{
		PurchasedGames: []string{},
		FailedGames:    []dto.CheckoutFailure{},
	}

	var purchases []models.UserPurchaseGame
	now := time.Now()

	for i := range cart.Items {
		item := &cart.Items[i]

		gameName := item.GameID
		if item.Game != nil {
			gameName = item.Game.Name
		}

		game, err := s.gameRepo.FindByID(db, item.GameID)
		if err != nil {
			if errors.Is(err, repositories.ErrGameNotFound) {
				result.FailedGames = append(result.FailedGames, dto.CheckoutFailure{
					GameID:   item.GameID,
					GameName: gameName,
					Reason:   "game is no longer available",
				})
				continue
			}
			return nil, nil, apperrors.InternalError(err)
		}

		if game.FreeToPlay {
			result.FailedGames = append(result.FailedGames, dto.CheckoutFailure{
				GameID:   game.ID,
				GameName: game.Name,
				Reason:   "game became free to play",
			})
			continue
		}

		owned, err := s.purchaseRepo.Exists(db, userID, game.ID)
		if err != nil {
			return nil, nil, apperrors.InternalError(err)
		}
		if owned {
			result.FailedGames = append(result.FailedGames, dto.CheckoutFailure{
				GameID:   game.ID,
				GameName: game.Name,
				Reason:   "game is already owned",
			})
			continue
		}

		purchases = append(purchases, models.UserPurchaseGame{
			UserID:       userID,
			GameID:       game.ID,
			PricePaid:    item.UnitPrice * float64(item.Quantity),
			PurchaseDate: now,
		})
		result.PurchasedGames = append(result.PurchasedGames, game.Name)
		result.TotalCharged += item.UnitPrice * float64(item.Quantity)
	}

	return result, purchases, nil
}

// refreshCart recomputes the derived total and reloads the cart with
// its items for the response.
func (s *CartServiceImpl) refreshCart(db *gorm.DB, userID string) (*models.Cart, error) {
	cart, err := s.cartRepo.FindByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	var total float64
	for i := range cart.Items {
		total += cart.Items[i].TotalPrice
	}
	if total != cart.TotalAmount {
		if err := s.cartRepo.UpdateTotal(db, cart.ID, total); err != nil {
			return nil, apperrors.InternalError(err)
		}
		cart.TotalAmount = total
	}
	return cart, nil
}
