package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ontracklabs/ontrack-backend/internal/logger"
	"github.com/ontracklabs/ontrack-backend/internal/types"
)

type UserResourceRepo interface {
	CreateBatch(ctx context.Context, tx *gorm.DB, resources []*types.UserResource) error
	ListByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.UserResource, error)
}

type userResourceRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserResourceRepo(db *gorm.DB, baseLog *logger.Logger) UserResourceRepo {
	return &userResourceRepo{db: db, log: baseLog.With("repo", "UserResourceRepo")}
}

func (r *userResourceRepo) CreateBatch(ctx context.Context, tx *gorm.DB, resources []*types.UserResource) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(resources) == 0 {
		return nil
	}

	return transaction.WithContext(ctx).Create(&resources).Error
}

func (r *userResourceRepo) ListByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.UserResource, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.UserResource
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
