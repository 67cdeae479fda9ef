package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/ontracklabs/ontrack-backend/internal/logger"
	"github.com/ontracklabs/ontrack-backend/internal/types"
)

// CareerMatchUpdate carries the fields the pipeline writes after a successful
// match. Both completion flags flip to true in the same write.
type CareerMatchUpdate struct {
	CurrentCareer     string
	CareerExplanation string
	CurrentSkills     datatypes.JSON
	MissingSkills     datatypes.JSON
	LearningPlan      datatypes.JSON
}

type UserStateRepo interface {
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.UsersState, error)
	UpdateCareerMatch(ctx context.Context, tx *gorm.DB, userID uuid.UUID, update CareerMatchUpdate) error
}

type userStateRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserStateRepo(db *gorm.DB, baseLog *logger.Logger) UserStateRepo {
	return &userStateRepo{db: db, log: baseLog.With("repo", "UserStateRepo")}
}

func (r *userStateRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.UsersState, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.UsersState
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *userStateRepo) UpdateCareerMatch(ctx context.Context, tx *gorm.DB, userID uuid.UUID, update CareerMatchUpdate) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	return transaction.WithContext(ctx).
		Model(&types.UsersState{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"current_career":           update.CurrentCareer,
			"career_explanation":       update.CareerExplanation,
			"current_skills":           update.CurrentSkills,
			"missing_skills":           update.MissingSkills,
			"learning_plan":            update.LearningPlan,
			"has_completed_onboarding": true,
			"has_completed_assessment": true,
		}).Error
}
