package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/ontracklabs/ontrack-backend/internal/logger"
	"github.com/ontracklabs/ontrack-backend/internal/types"
)

type CareerMarketRepo interface {
	ListRoleNames(ctx context.Context, tx *gorm.DB) ([]string, error)
}

type careerMarketRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCareerMarketRepo(db *gorm.DB, baseLog *logger.Logger) CareerMarketRepo {
	return &careerMarketRepo{db: db, log: baseLog.With("repo", "CareerMarketRepo")}
}

func (r *careerMarketRepo) ListRoleNames(ctx context.Context, tx *gorm.DB) ([]string, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var names []string
	if err := transaction.WithContext(ctx).
		Model(&types.CareerMarket{}).
		Order("position").
		Pluck("role_name", &names).Error; err != nil {
		return nil, err
	}
	return names, nil
}
