package handlers

import (
	"gamestore_backend/internal/services"
	"gamestore_backend/internal/validator"
)

// AppHandlers holds every handler of the application.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	UserHandler         *UserHandler
	GeoHandler          *GeoHandler
	GameHandler         *GameHandler
	CategoryHandler     *CategoryHandler
	SubscriptionHandler *SubscriptionHandler
	CartHandler         *CartHandler
	LibraryHandler      *LibraryHandler
	AdminHandler        *AdminHandler
}

func NewAppHandlers(container *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		AuthHandler:         NewAuthHandler(base, container.Auth),
		UserHandler:         NewUserHandler(base, container.User),
		GeoHandler:          NewGeoHandler(base, container.Geo),
		GameHandler:         NewGameHandler(base, container.Game),
		CategoryHandler:     NewCategoryHandler(base, container.Category),
		SubscriptionHandler: NewSubscriptionHandler(base, container.Subscription),
		CartHandler:         NewCartHandler(base, container.Cart),
		LibraryHandler:      NewLibraryHandler(base, container.Entitlement),
		AdminHandler:        NewAdminHandler(base, container.Analytics),
	}
}
