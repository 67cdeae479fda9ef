package types

import (
	"time"

	"github.com/google/uuid"
)

// UserOnboarding is the profile a user submits once during onboarding.
// It is read-only for this service.
type UserOnboarding struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null;column:user_id" json:"user_id"`
	College   string    `gorm:"column:college" json:"college"`
	Year      string    `gorm:"column:year" json:"year"`
	Goal      string    `gorm:"column:goal" json:"goal"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (UserOnboarding) TableName() string {
	return "user_onboarding"
}
