package types

import (
	"time"

	"github.com/google/uuid"
)

// UserResource is one learning resource row for one missing skill.
type UserResource struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null;column:user_id" json:"user_id"`
	Skill     string    `gorm:"not null;column:skill" json:"skill"`
	Title     string    `gorm:"column:title" json:"title"`
	Provider  string    `gorm:"column:provider" json:"provider"`
	Link      string    `gorm:"column:link" json:"link"`
	Level     string    `gorm:"column:level" json:"level"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (UserResource) TableName() string {
	return "user_resources"
}
