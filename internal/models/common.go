package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BaseModel struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// BeforeCreate assigns a uuid when the caller did not set one.
func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// SoftDelete is the explicit soft-delete pair. Deleted rows stay in the
// table so historical references (purchases, subscriptions) remain valid;
// every default read goes through the Active scope.
type SoftDelete struct {
	IsDeleted bool       `gorm:"not null;default:false;index" json:"is_deleted"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// MarkDeleted flips the record into the deleted state.
func (s *SoftDelete) MarkDeleted(now time.Time) {
	s.IsDeleted = true
	s.DeletedAt = &now
}

// Restore clears the deleted state. Explicit escape hatch, admin only.
func (s *SoftDelete) Restore() {
	s.IsDeleted = false
	s.DeletedAt = nil
}

// Active is the read-boundary predicate excluding soft-deleted rows.
// Applied explicitly in repositories instead of a hidden global filter.
func Active(db *gorm.DB) *gorm.DB {
	return db.Where("is_deleted = ?", false)
}
