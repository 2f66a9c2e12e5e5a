package dto

type CreateRegionRequest struct {
	Code     string `json:"code" validate:"required,min=2,max=10"`
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Currency string `json:"currency" validate:"required,len=3"`
}

type CreateCountryRequest struct {
	Code     string   `json:"code" validate:"required,len=2"`
	Name     string   `json:"name" validate:"required,min=1,max=100"`
	RegionID string   `json:"region_id" validate:"required,uuid"`
	Currency string   `json:"currency" validate:"required,len=3"`
	TaxRate  *float64 `json:"tax_rate,omitempty" validate:"omitempty,gte=0,lte=1"`
}
