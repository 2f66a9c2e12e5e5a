package models

type User struct {
	BaseModel
	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Age          int    `json:"age"`
	CountryID    string `gorm:"type:uuid;index" json:"country_id"`
	SoftDelete

	// Relations
	Country *Country `gorm:"foreignKey:CountryID" json:"country,omitempty"`
}
