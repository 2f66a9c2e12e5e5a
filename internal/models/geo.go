package models

type Region struct {
	BaseModel
	Code     string `gorm:"uniqueIndex;not null" json:"code"`
	Name     string `gorm:"not null" json:"name"`
	Currency string `gorm:"not null" json:"currency"`
}

type Country struct {
	BaseModel
	Code     string   `gorm:"uniqueIndex;not null" json:"code"`
	Name     string   `gorm:"not null" json:"name"`
	RegionID string   `gorm:"type:uuid;index" json:"region_id"`
	Currency string   `gorm:"not null" json:"currency"`
	TaxRate  *float64 `json:"tax_rate,omitempty"`

	// Relations
	Region *Region `gorm:"foreignKey:RegionID" json:"region,omitempty"`
}
