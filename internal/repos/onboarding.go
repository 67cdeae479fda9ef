package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ontracklabs/ontrack-backend/internal/logger"
	"github.com/ontracklabs/ontrack-backend/internal/types"
)

type OnboardingRepo interface {
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.UserOnboarding, error)
}

type onboardingRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewOnboardingRepo(db *gorm.DB, baseLog *logger.Logger) OnboardingRepo {
	return &onboardingRepo{db: db, log: baseLog.With("repo", "OnboardingRepo")}
}

func (r *onboardingRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.UserOnboarding, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.UserOnboarding
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}
