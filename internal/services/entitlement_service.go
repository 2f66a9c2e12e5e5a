package services

import (
	"errors"
	"time"

	"gamestore_backend/internal/models"
	"gamestore_backend/internal/repositories"
	"gamestore_backend/internal/services/dto"
	"gamestore_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type EntitlementService interface {
	CanUserAccessGame(db *gorm.DB, userID, gameID string) (*dto.AccessResult, error)
	GetUserLibrary(db *gorm.DB, userID string) (*dto.LibraryResponse, error)
	GetPurchaseHistory(db *gorm.DB, userID string, page, pageSize int) ([]models.UserPurchaseGame, int64, error)
	HasAnyEntitlements(db *gorm.DB, userID string) (bool, error)
}

type EntitlementServiceImpl struct {
	userRepo     repositories.UserRepository
	gameRepo     repositories.GameRepository
	purchaseRepo repositories.PurchaseRepository
	subRepo      repositories.SubscriptionRepository
}

func NewEntitlementService(
	userRepo repositories.UserRepository,
	gameRepo repositories.GameRepository,
	purchaseRepo repositories.PurchaseRepository,
	subRepo repositories.SubscriptionRepository,
) EntitlementService {
	return &EntitlementServiceImpl{
		userRepo:     userRepo,
		gameRepo:     gameRepo,
		purchaseRepo: purchaseRepo,
		subRepo:      subRepo,
	}
}

// accessCheck probes one access path for a (user, game) pair. It returns
// nil when the path grants nothing; any error aborts the resolution.
type accessCheck func(db *gorm.DB, user *models.User, game *models.Game) (*dto.AccessResult, error)

// CanUserAccessGame resolves access by walking the paths in priority
// order: free to play, then owned, then covered by an active
// subscription. The first hit wins.
func (s *EntitlementServiceImpl) CanUserAccessGame(db *gorm.DB, userID, gameID string) (*dto.AccessResult, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NotFound("User")
		}
		return nil, apperrors.InternalError(err)
	}

	game, err := s.gameRepo.FindByID(db, gameID)
	if err != nil {
		if errors.Is(err, repositories.ErrGameNotFound) {
			return nil, apperrors.NotFound("Game")
		}
		return nil, apperrors.InternalError(err)
	}

	checks := []accessCheck{
		s.checkFreeToPlay,
		s.checkPurchased,
		s.checkSubscription,
	}
	for _, check := range checks {
		result, err := check(db, user, game)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		if result != nil {
			return result, nil
		}
	}

	return &dto.AccessResult{
		Granted:    false,
		AccessType: models.AccessNone,
		Message:    "Game is not in your library",
	}, nil
}

func (s *EntitlementServiceImpl) checkFreeToPlay(_ *gorm.DB, _ *models.User, game *models.Game) (*dto.AccessResult, error) {
	if !game.FreeToPlay {
		return nil, nil
	}
	return &dto.AccessResult{
		Granted:    true,
		AccessType: models.AccessFree,
		Message:    "Free to play",
	}, nil
}

func (s *EntitlementServiceImpl) checkPurchased(db *gorm.DB, user *models.User, game *models.Game) (*dto.AccessResult, error) {
	purchase, err := s.purchaseRepo.FindByUserAndGame(db, user.ID, game.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrPurchaseNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &dto.AccessResult{
		Granted:      true,
		AccessType:   models.AccessPurchased,
		Message:      "Purchased",
		PurchaseDate: &purchase.PurchaseDate,
	}, nil
}

func (s *EntitlementServiceImpl) checkSubscription(db *gorm.DB, user *models.User, game *models.Game) (*dto.AccessResult, error) {
	subs, err := s.subRepo.FindActiveSubscriptions(db, user.ID, time.Now())
	if err != nil {
		return nil, err
	}
	for i := range subs {
		bundled, err := s.subRepo.PlanBundlesGame(db, subs[i].PlanID, game.ID)
		if err != nil {
			return nil, err
		}
		if !bundled {
			continue
		}
		result := &dto.AccessResult{
			Granted:    true,
			AccessType: models.AccessSubscription,
			Message:    "Included in your subscription",
			ExpiresAt:  &subs[i].EndDate,
		}
		if subs[i].Plan != nil {
			result.SubscriptionName = subs[i].Plan.Type
		}
		return result, nil
	}
	return nil, nil
}

// GetUserLibrary unions the three access paths and keeps one entry per
// game, preferring FREE over PURCHASED over SUBSCRIPTION when a game is
// reachable through more than one.
func (s *EntitlementServiceImpl) GetUserLibrary(db *gorm.DB, userID string) (*dto.LibraryResponse, error) {
	if _, err := s.userRepo.FindByID(db, userID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NotFound("User")
		}
		return nil, apperrors.InternalError(err)
	}

	entries := make(map[string]dto.LibraryEntry)

	merge := func(game models.Game, access dto.AccessResult) {
		existing, ok := entries[game.ID]
		if ok && existing.Access.AccessType.Priority() <= access.AccessType.Priority() {
			return
		}
		entries[game.ID] = dto.LibraryEntry{Game: game, Access: access}
	}

	freeGames, err := s.gameRepo.FindFreeGames(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	for _, game := range freeGames {
		merge(game, dto.AccessResult{
			Granted:    true,
			AccessType: models.AccessFree,
			Message:    "Free to play",
		})
	}

	purchases, _, err := s.purchaseRepo.FindByUser(db, userID, 0, 0)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	for i := range purchases {
		if purchases[i].Game == nil {
			continue
		}
		merge(*purchases[i].Game, dto.AccessResult{
			Granted:      true,
			AccessType:   models.AccessPurchased,
			Message:      "Purchased",
			PurchaseDate: &purchases[i].PurchaseDate,
		})
	}

	subs, err := s.subRepo.FindActiveSubscriptions(db, userID, time.Now())
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	for i := range subs {
		games, err := s.subRepo.FindGamesInPlan(db, subs[i].PlanID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		access := dto.AccessResult{
			Granted:    true,
			AccessType: models.AccessSubscription,
			Message:    "Included in your subscription",
			ExpiresAt:  &subs[i].EndDate,
		}
		if subs[i].Plan != nil {
			access.SubscriptionName = subs[i].Plan.Type
		}
		for _, game := range games {
			merge(game, access)
		}
	}

	response := &dto.LibraryResponse{Entries: make([]dto.LibraryEntry, 0, len(entries))}
	for _, entry := range entries {
		response.Entries = append(response.Entries, entry)
		switch entry.Access.AccessType {
		case models.AccessFree:
			response.Counts.Free++
		case models.AccessPurchased:
			response.Counts.Purchased++
		case models.AccessSubscription:
			response.Counts.Subscription++
		}
	}
	response.Total = len(response.Entries)
	return response, nil
}

// GetPurchaseHistory pages through the user's ledger, newest first.
func (s *EntitlementServiceImpl) GetPurchaseHistory(db *gorm.DB, userID string, page, pageSize int) ([]models.UserPurchaseGame, int64, error) {
	if _, err := s.userRepo.FindByID(db, userID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, 0, apperrors.NotFound("User")
		}
		return nil, 0, apperrors.InternalError(err)
	}

	purchases, total, err := s.purchaseRepo.FindByUser(db, userID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return purchases, total, nil
}

// HasAnyEntitlements reports whether the user owns anything or holds an
// active subscription, without building the full library.
func (s *EntitlementServiceImpl) HasAnyEntitlements(db *gorm.DB, userID string) (bool, error) {
	_, total, err := s.purchaseRepo.FindByUser(db, userID, 1, 0)
	if err != nil {
		return false, apperrors.InternalError(err)
	}
	if total > 0 {
		return true, nil
	}

	subs, err := s.subRepo.FindActiveSubscriptions(db, userID, time.Now())
	if err != nil {
		return false, apperrors.InternalError(err)
	}
	return len(subs) > 0, nil
}
