package services

import (
	"gamestore_backend/internal/email"
	"gamestore_backend/internal/repositories"
)

// ServiceContainer wires every service with its repositories once at
// startup; handlers pull services from here.
type ServiceContainer struct {
	Auth         AuthService
	User         UserService
	Geo          GeoService
	Game         GameService
	Category     CategoryService
	Subscription SubscriptionService
	Entitlement  EntitlementService
	Cart         CartService
	Analytics    AnalyticsService
}

func NewServiceContainer(emailProvider email.Provider) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	adminRepo := repositories.NewAdminRepository()
	geoRepo := repositories.NewGeoRepository()
	gameRepo := repositories.NewGameRepository()
	categoryRepo := repositories.NewCategoryRepository()
	subscriptionRepo := repositories.NewSubscriptionRepository()
	purchaseRepo := repositories.NewPurchaseRepository()
	cartRepo := repositories.NewCartRepository()

	gameService := NewGameService(gameRepo, categoryRepo, geoRepo)

	return &ServiceContainer{
		Auth:         NewAuthService(userRepo, adminRepo, geoRepo, emailProvider),
		User:         NewUserService(userRepo, geoRepo),
		Geo:          NewGeoService(geoRepo),
		Game:         gameService,
		Category:     NewCategoryService(categoryRepo),
		Subscription: NewSubscriptionService(subscriptionRepo, gameRepo, userRepo, geoRepo),
		Entitlement:  NewEntitlementService(userRepo, gameRepo, purchaseRepo, subscriptionRepo),
		Cart:         NewCartService(cartRepo, gameRepo, userRepo, purchaseRepo, gameService, emailProvider),
		Analytics:    NewAnalyticsService(userRepo, gameRepo, purchaseRepo, subscriptionRepo),
	}
}
