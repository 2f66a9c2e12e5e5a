package models

import (
	"time"

	"gorm.io/datatypes"
)

type SubscriptionPlan struct {
	BaseModel
	Type     string         `gorm:"not null;uniqueIndex" json:"type"`
	Features datatypes.JSON `gorm:"type:jsonb" json:"features,omitempty"` // {"offline_play": true, ...}
	SoftDelete

	// Relations
	Games        []Game                    `gorm:"many2many:game_subscriptions" json:"games,omitempty"`
	CountryTiers []SubscriptionPlanCountry `gorm:"foreignKey:PlanID" json:"country_tiers,omitempty"`
	RegionTiers  []SubscriptionPlanRegion  `gorm:"foreignKey:PlanID" json:"region_tiers,omitempty"`
}

// SubscriptionPlanCountry is a country-level pricing tier. The composite
// unique index forbids duplicate (plan, country, duration) tiers.
type SubscriptionPlanCountry struct {
	BaseModel
	PlanID         string  `gorm:"type:uuid;not null;uniqueIndex:uk_plan_country_duration" json:"plan_id"`
	CountryID      string  `gorm:"type:uuid;not null;uniqueIndex:uk_plan_country_duration" json:"country_id"`
	DurationMonths int     `gorm:"not null;uniqueIndex:uk_plan_country_duration" json:"duration_months"`
	Price          float64 `gorm:"not null" json:"price"`
	Currency       string  `gorm:"not null" json:"currency"`

	// Relations
	Country *Country `gorm:"foreignKey:CountryID" json:"country,omitempty"`
}

// SubscriptionPlanRegion is a region-level pricing tier.
type SubscriptionPlanRegion struct {
	BaseModel
	PlanID         string  `gorm:"type:uuid;not null;uniqueIndex:uk_plan_region_duration" json:"plan_id"`
	RegionID       string  `gorm:"type:uuid;not null;uniqueIndex:uk_plan_region_duration" json:"region_id"`
	DurationMonths int     `gorm:"not null;uniqueIndex:uk_plan_region_duration" json:"duration_months"`
	Price          float64 `gorm:"not null" json:"price"`
	Currency       string  `gorm:"not null" json:"currency"`

	// Relations
	Region *Region `gorm:"foreignKey:RegionID" json:"region,omitempty"`
}

// UserSubscriptionPlan is one subscription period bought by a user.
// Cancelling end-dates the row; it is never deleted, so entitlement
// lookups made before cancellation stay reproducible.
type UserSubscriptionPlan struct {
	BaseModel
	UserID      string     `gorm:"type:uuid;not null;index" json:"user_id"`
	PlanID      string     `gorm:"type:uuid;not null;index" json:"plan_id"`
	TierID      string     `gorm:"type:uuid;not null" json:"tier_id"`
	TierKind    TierKind   `gorm:"type:varchar(10);not null" json:"tier_kind"`
	PricePaid   float64    `gorm:"not null" json:"price_paid"`
	Currency    string     `gorm:"not null" json:"currency"`
	StartDate   time.Time  `gorm:"not null" json:"start_date"`
	EndDate     time.Time  `gorm:"not null" json:"end_date"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`

	// Relations
	Plan *SubscriptionPlan `gorm:"foreignKey:PlanID" json:"plan,omitempty"`
}

// IsActiveAt reports whether the subscription covers the given instant.
func (s *UserSubscriptionPlan) IsActiveAt(t time.Time) bool {
	return !t.Before(s.StartDate) && !t.After(s.EndDate)
}
