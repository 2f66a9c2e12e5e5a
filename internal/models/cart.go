package models

// Cart is the single mutable cart of a user. TotalAmount is derived and
// always equals the sum of item TotalPrice values.
type Cart struct {
	BaseModel
	UserID      string  `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	TotalAmount float64 `gorm:"not null;default:0" json:"total_amount"`

	// Relations
	Items []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// CartItem caches the unit price resolved when the game was added.
// TotalPrice always equals Quantity * UnitPrice.
type CartItem struct {
	BaseModel
	CartID     string  `gorm:"type:uuid;not null;uniqueIndex:uk_cart_game" json:"cart_id"`
	GameID     string  `gorm:"type:uuid;not null;uniqueIndex:uk_cart_game" json:"game_id"`
	Quantity   int     `gorm:"not null;default:1" json:"quantity"`
	UnitPrice  float64 `gorm:"not null" json:"unit_price"`
	TotalPrice float64 `gorm:"not null" json:"total_price"`

	// Relations
	Game *Game `gorm:"foreignKey:GameID" json:"game,omitempty"`
}

// Recalculate keeps TotalPrice equal to quantity times unit price.
func (i *CartItem) Recalculate() {
	i.TotalPrice = float64(i.Quantity) * i.UnitPrice
}
