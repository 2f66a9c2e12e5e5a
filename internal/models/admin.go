package models

// Admin accounts live in their own table; they never own carts,
// purchases or subscriptions.
type Admin struct {
	BaseModel
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	SoftDelete
}
