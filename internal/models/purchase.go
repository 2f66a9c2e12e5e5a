package models

import "time"

// UserPurchaseGame is the immutable purchase ledger. Rows are created by
// checkout and never updated or deleted; PricePaid is the price at
// purchase time regardless of later catalog changes. The (user, game)
// unique index makes a concurrent double purchase impossible.
type UserPurchaseGame struct {
	BaseModel
	UserID       string    `gorm:"type:uuid;not null;uniqueIndex:uk_user_game" json:"user_id"`
	GameID       string    `gorm:"type:uuid;not null;uniqueIndex:uk_user_game" json:"game_id"`
	PricePaid    float64   `gorm:"not null" json:"price_paid"`
	PurchaseDate time.Time `gorm:"not null" json:"purchase_date"`

	// Relations
	Game *Game `gorm:"foreignKey:GameID" json:"game,omitempty"`
}
