package models

import "time"

type Game struct {
	BaseModel
	Name        string    `gorm:"not null;index" json:"name"`
	Publisher   string    `gorm:"index" json:"publisher"`
	ReleaseDate time.Time `json:"release_date"`
	FreeToPlay  bool      `gorm:"not null;default:false" json:"free_to_play"`
	BasePrice   *float64  `json:"base_price,omitempty"`
	Multiplayer bool      `gorm:"not null;default:false" json:"multiplayer"`
	SoftDelete

	// Relations
	Categories    []Category    `gorm:"many2many:game_categories" json:"categories,omitempty"`
	CountryPrices []GameCountry `gorm:"foreignKey:GameID" json:"country_prices,omitempty"`
}

type Category struct {
	BaseModel
	Name string `gorm:"not null;index" json:"name"`
	SoftDelete

	// Relations
	Games []Game `gorm:"many2many:game_categories" json:"-"`
}

// GameCountry holds the country-specific price of a game.
type GameCountry struct {
	BaseModel
	GameID    string  `gorm:"type:uuid;not null;uniqueIndex:uk_game_country" json:"game_id"`
	CountryID string  `gorm:"type:uuid;not null;uniqueIndex:uk_game_country" json:"country_id"`
	Price     float64 `gorm:"not null" json:"price"`

	// Relations
	Country *Country `gorm:"foreignKey:CountryID" json:"country,omitempty"`
}
