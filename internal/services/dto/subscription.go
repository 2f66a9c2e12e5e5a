package dto

type CreatePlanRequest struct {
	Type     string                 `json:"type" validate:"required,min=1,max=100"`
	Features map[string]interface{} `json:"features,omitempty"`
	GameIDs  []string               `json:"game_ids,omitempty" validate:"omitempty,dive,uuid"`
}

type UpdatePlanRequest struct {
	Type     *string                `json:"type,omitempty" validate:"omitempty,min=1,max=100"`
	Features map[string]interface{} `json:"features,omitempty"`
}

type CreateCountryTierRequest struct {
	CountryID      string  `json:"country_id" validate:"required,uuid"`
	DurationMonths int     `json:"duration_months" validate:"required,gte=1,max=36"`
	Price          float64 `json:"price" validate:"gte=0"`
	Currency       string  `json:"currency" validate:"required,len=3"`
}

type CreateRegionTierRequest struct {
	RegionID       string  `json:"region_id" validate:"required,uuid"`
	DurationMonths int     `json:"duration_months" validate:"required,gte=1,max=36"`
	Price          float64 `json:"price" validate:"gte=0"`
	Currency       string  `json:"currency" validate:"required,len=3"`
}

type SubscribeRequest struct {
	TierID   string `json:"tier_id" validate:"required,uuid"`
	TierKind string `json:"tier_kind" validate:"required,is-tier-kind"`
}
