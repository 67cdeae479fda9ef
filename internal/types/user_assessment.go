package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserAssessment holds the self-reported assessment plus the two enrichment
// blobs written back after the GitHub/LeetCode fetches.
type UserAssessment struct {
	ID               uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID           uuid.UUID      `gorm:"type:uuid;uniqueIndex;not null;column:user_id" json:"user_id"`
	Interests        string         `gorm:"column:interests" json:"interests"`
	SkillSummary     string         `gorm:"column:skill_summary" json:"skill_summary"`
	GithubUsername   string         `gorm:"column:github_username" json:"github_username"`
	LeetcodeUsername string         `gorm:"column:leetcode_username" json:"leetcode_username"`
	GithubData       datatypes.JSON `gorm:"column:github_data" json:"github_data"`
	LeetcodeData     datatypes.JSON `gorm:"column:leetcode_data" json:"leetcode_data"`
	CreatedAt        time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (UserAssessment) TableName() string {
	return "user_assessment"
}
