package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/yungbote/recordstore-backend/internal/platform/logger"
	"github.com/yungbote/recordstore-backend/internal/types"
)

type AlbumRepo interface {
	List(ctx context.Context, tx *gorm.DB) ([]*types.Album, error)
	GetByID(ctx context.Context, tx *gorm.DB, albumID uint) (*types.Album, error)
	Create(ctx context.Context, tx *gorm.DB, album *types.Album) error
	Update(ctx context.Context, tx *gorm.DB, albumID uint, fields map[string]interface{}) (*types.Album, error)
	Delete(ctx context.Context, tx *gorm.DB, albumID uint) error
}

type albumRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAlbumRepo(db *gorm.DB, baseLog *logger.Logger) AlbumRepo {
	return &albumRepo{db: db, log: baseLog.With("repo", "AlbumRepo")}
}

func (ar *albumRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Album, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	var results []*types.Album
	if err := transaction.WithContext(ctx).
		Order("id").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ar *albumRepo) GetByID(ctx context.Context, tx *gorm.DB, albumID uint) (*types.Album, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	var result types.Album
	err := transaction.WithContext(ctx).
		Where("id = ?", albumID).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (ar *albumRepo) Create(ctx context.Context, tx *gorm.DB, album *types.Album) error {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}
	return transaction.WithContext(ctx).Create(album).Error
}

func (ar *albumRepo) Update(ctx context.Context, tx *gorm.DB, albumID uint, fields map[string]interface{}) (*types.Album, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	if len(fields) > 0 {
		if err := transaction.WithContext(ctx).
			Model(&types.Album{}).
			Where("id = ?", albumID).
			Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	return ar.GetByID(ctx, transaction, albumID)
}

func (ar *albumRepo) Delete(ctx context.Context, tx *gorm.DB, albumID uint) error {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", albumID).
		Delete(&types.Album{}).Error
}
