package dto

import (
	"time"

	"gamestore_backend/internal/models"
)

// AccessResult is the outcome of an entitlement check for one game.
type AccessResult struct {
	Granted          bool              `json:"granted"`
	AccessType       models.AccessType `json:"access_type"`
	Message          string            `json:"message,omitempty"`
	PurchaseDate     *time.Time        `json:"purchase_date,omitempty"`
	SubscriptionName string            `json:"subscription_name,omitempty"`
	ExpiresAt        *time.Time        `json:"expires_at,omitempty"`
}

// LibraryEntry pairs a game with the access path that grants it.
type LibraryEntry struct {
	Game   models.Game  `json:"game"`
	Access AccessResult `json:"access"`
}

type LibraryCounts struct {
	Free         int `json:"free"`
	Purchased    int `json:"purchased"`
	Subscription int `json:"subscription"`
}

type LibraryResponse struct {
	Entries []LibraryEntry `json:"entries"`
	Counts  LibraryCounts  `json:"counts"`
	Total   int            `json:"total"`
}
