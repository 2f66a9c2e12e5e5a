package dto

import "time"

type CreateGameRequest struct {
	Name        string    `json:"name" validate:"required,min=1,max=200"`
	Publisher   string    `json:"publisher" validate:"required,min=1,max=200"`
	ReleaseDate time.Time `json:"release_date" validate:"required"`
	FreeToPlay  bool      `json:"free_to_play"`
	BasePrice   *float64  `json:"base_price,omitempty" validate:"omitempty,gte=0"`
	Multiplayer bool      `json:"multiplayer"`
	CategoryIDs []string  `json:"category_ids,omitempty" validate:"omitempty,dive,uuid"`
}

type UpdateGameRequest struct {
	Name        *string    `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Publisher   *string    `json:"publisher,omitempty" validate:"omitempty,min=1,max=200"`
	ReleaseDate *time.Time `json:"release_date,omitempty"`
	FreeToPlay  *bool      `json:"free_to_play,omitempty"`
	BasePrice   *float64   `json:"base_price,omitempty" validate:"omitempty,gte=0"`
	Multiplayer *bool      `json:"multiplayer,omitempty"`
	CategoryIDs []string   `json:"category_ids,omitempty" validate:"omitempty,dive,uuid"`
}

type SetCountryPriceRequest struct {
	CountryID string  `json:"country_id" validate:"required,uuid"`
	Price     float64 `json:"price" validate:"gte=0"`
}
