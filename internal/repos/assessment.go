package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/ontracklabs/ontrack-backend/internal/logger"
	"github.com/ontracklabs/ontrack-backend/internal/types"
)

type AssessmentRepo interface {
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.UserAssessment, error)
	UpdateStats(ctx context.Context, tx *gorm.DB, userID uuid.UUID, githubData, leetcodeData datatypes.JSON) error
}

type assessmentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAssessmentRepo(db *gorm.DB, baseLog *logger.Logger) AssessmentRepo {
	return &assessmentRepo{db: db, log: baseLog.With("repo", "AssessmentRepo")}
}

func (r *assessmentRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.UserAssessment, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.UserAssessment
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *assessmentRepo) UpdateStats(ctx context.Context, tx *gorm.DB, userID uuid.UUID, githubData, leetcodeData datatypes.JSON) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	return transaction.WithContext(ctx).
		Model(&types.UserAssessment{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"github_data":   githubData,
			"leetcode_data": leetcodeData,
		}).Error
}
