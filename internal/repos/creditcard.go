package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yungbote/recordstore-backend/internal/platform/logger"
	"github.com/yungbote/recordstore-backend/internal/types"
)

type CreditCardRepo interface {
	// FindOrCreate stores the billing record for a user unless one already
	// exists. The insert is conditional on the user_id unique index, so two
	// concurrent submissions can never produce two rows. The existing record
	// wins; no update path is offered.
	FindOrCreate(ctx context.Context, tx *gorm.DB, card *types.CreditCard) (*types.CreditCard, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uint) (*types.CreditCard, error)
}

type creditCardRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCreditCardRepo(db *gorm.DB, baseLog *logger.Logger) CreditCardRepo {
	return &creditCardRepo{db: db, log: baseLog.With("repo", "CreditCardRepo")}
}

func (cc *creditCardRepo) FindOrCreate(ctx context.Context, tx *gorm.DB, card *types.CreditCard) (*types.CreditCard, error) {
	transaction := tx
	if transaction == nil {
		transaction = cc.db
	}

	if err := transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).
		Create(card).Error; err != nil {
		return nil, err
	}

	// Read back so callers always see the winning row, whether or not this
	// call inserted it.
	return cc.GetByUserID(ctx, transaction, card.UserID)
}

func (cc *creditCardRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uint) (*types.CreditCard, error) {
	transaction := tx
	if transaction == nil {
		transaction = cc.db
	}

	var result types.CreditCard
	err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}
