package types

import (
	"github.com/google/uuid"
)

// CareerMarket is the authoritative catalog of permitted career roles. Any
// career assigned to a user must match one of these rows exactly.
type CareerMarket struct {
	ID       uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	RoleName string    `gorm:"not null;column:role_name" json:"role_name"`
	Position int       `gorm:"column:position" json:"position"`
}

func (CareerMarket) TableName() string {
	return "career_market"
}
