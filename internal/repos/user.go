package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/yungbote/recordstore-backend/internal/platform/logger"
	"github.com/yungbote/recordstore-backend/internal/types"
)

type UserRepo interface {
	List(ctx context.Context, tx *gorm.DB) ([]*types.User, error)
	GetByID(ctx context.Context, tx *gorm.DB, userID uint) (*types.User, error)
	FindOrCreate(ctx context.Context, tx *gorm.DB, user *types.User) (*types.User, bool, error)
	Create(ctx context.Context, tx *gorm.DB, user *types.User) error
	Update(ctx context.Context, tx *gorm.DB, userID uint, fields map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, userID uint) error
}

type userRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
	return &userRepo{db: db, log: baseLog.With("repo", "UserRepo")}
}

// populate is the eager-load projection used by the listing and single-user
// reads: cart rows with their albums, plus order history.
func populate(tx *gorm.DB) *gorm.DB {
	return tx.Preload("CartItems.Album").Preload("Orders")
}

func (ur *userRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.User, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}

	var results []*types.User
	if err := populate(transaction.WithContext(ctx)).
		Order("id").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ur *userRepo) GetByID(ctx context.Context, tx *gorm.DB, userID uint) (*types.User, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}

	var result types.User
	err := populate(transaction.WithContext(ctx)).
		Where("id = ?", userID).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// FindOrCreate matches on the exact registration tuple; a row is created
// only when no identical tuple exists. The second return reports creation.
func (ur *userRepo) FindOrCreate(ctx context.Context, tx *gorm.DB, user *types.User) (*types.User, bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}

	cond := map[string]interface{}{
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"email":      user.Email,
		"password":   user.Password,
	}

	var result types.User
	res := transaction.WithContext(ctx).Where(cond).FirstOrCreate(&result)
	if res.Error != nil {
		return nil, false, res.Error
	}
	return &result, res.RowsAffected > 0, nil
}

func (ur *userRepo) Create(ctx context.Context, tx *gorm.DB, user *types.User) error {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}
	return transaction.WithContext(ctx).Create(user).Error
}

func (ur *userRepo) Update(ctx context.Context, tx *gorm.DB, userID uint, fields map[string]interface{}) error {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}
	if len(fields) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Model(&types.User{}).
		Where("id = ?", userID).
		Updates(fields).Error
}

func (ur *userRepo) Delete(ctx context.Context, tx *gorm.DB, userID uint) error {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", userID).
		Delete(&types.User{}).Error
}
