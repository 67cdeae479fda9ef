package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UsersState is the aggregate the career pipeline writes and the coach reads.
type UsersState struct {
	ID                     uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID                 uuid.UUID      `gorm:"type:uuid;uniqueIndex;not null;column:user_id" json:"user_id"`
	FullName               string         `gorm:"column:full_name" json:"full_name"`
	CurrentCareer          string         `gorm:"column:current_career" json:"current_career"`
	CareerExplanation      string         `gorm:"column:career_explanation" json:"career_explanation"`
	CurrentSkills          datatypes.JSON `gorm:"column:current_skills" json:"current_skills"`
	MissingSkills          datatypes.JSON `gorm:"column:missing_skills" json:"missing_skills"`
	LearningPlan           datatypes.JSON `gorm:"column:learning_plan" json:"learning_plan"`
	HasCompletedOnboarding bool           `gorm:"column:has_completed_onboarding" json:"has_completed_onboarding"`
	HasCompletedAssessment bool           `gorm:"column:has_completed_assessment" json:"has_completed_assessment"`
	UpdatedAt              time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (UsersState) TableName() string {
	return "users_state"
}
