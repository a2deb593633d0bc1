package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yungbote/recordstore-backend/internal/platform/logger"
	"github.com/yungbote/recordstore-backend/internal/types"
)

type CartItemRepo interface {
	// AddQuantity inserts a cart row or adds qty to the existing one, as a
	// single conditional upsert against the (user_id, album_id) unique index.
	AddQuantity(ctx context.Context, tx *gorm.DB, userID, albumID uint, qty int) error
	// SetQuantity overwrites the quantity and returns the updated row.
	SetQuantity(ctx context.Context, tx *gorm.DB, userID, albumID uint, qty int) (*types.ShoppingCartItem, error)
	ListAlbums(ctx context.Context, tx *gorm.DB, userID uint) ([]*types.Album, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uint) ([]*types.ShoppingCartItem, error)
	Clear(ctx context.Context, tx *gorm.DB, userID uint) error
	Remove(ctx context.Context, tx *gorm.DB, userID, albumID uint) error
}

type cartItemRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCartItemRepo(db *gorm.DB, baseLog *logger.Logger) CartItemRepo {
	return &cartItemRepo{db: db, log: baseLog.With("repo", "CartItemRepo")}
}

func (cr *cartItemRepo) AddQuantity(ctx context.Context, tx *gorm.DB, userID, albumID uint, qty int) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	item := types.ShoppingCartItem{
		UserID:   userID,
		AlbumID:  albumID,
		Quantity: qty,
	}
	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "album_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity":   gorm.Expr(`"shopping_cart_item".quantity + excluded.quantity`),
				"updated_at": gorm.Expr("excluded.updated_at"),
			}),
		}).
		Create(&item).Error
}

func (cr *cartItemRepo) SetQuantity(ctx context.Context, tx *gorm.DB, userID, albumID uint, qty int) (*types.ShoppingCartItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	if err := transaction.WithContext(ctx).
		Model(&types.ShoppingCartItem{}).
		Where("user_id = ? AND album_id = ?", userID, albumID).
		Update("quantity", qty).Error; err != nil {
		return nil, err
	}

	var result types.ShoppingCartItem
	err := transaction.WithContext(ctx).
		Where("user_id = ? AND album_id = ?", userID, albumID).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCartItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ListAlbums flattens the cart into the album records it references.
func (cr *cartItemRepo) ListAlbums(ctx context.Context, tx *gorm.DB, userID uint) ([]*types.Album, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var results []*types.Album
	if err := transaction.WithContext(ctx).
		Model(&types.Album{}).
		Joins("JOIN shopping_cart_item ON shopping_cart_item.album_id = album.id").
		Where("shopping_cart_item.user_id = ?", userID).
		Order("album.id").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *cartItemRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uint) ([]*types.ShoppingCartItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var results []*types.ShoppingCartItem
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("album_id").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *cartItemRepo) Clear(ctx context.Context, tx *gorm.DB, userID uint) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	return transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&types.ShoppingCartItem{}).Error
}

func (cr *cartItemRepo) Remove(ctx context.Context, tx *gorm.DB, userID, albumID uint) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	return transaction.WithContext(ctx).
		Where("user_id = ? AND album_id = ?", userID, albumID).
		Delete(&types.ShoppingCartItem{}).Error
}

// ErrCartItemNotFound reports an overwrite against a row that does not exist.
var ErrCartItemNotFound = errors.New("cart item not found")
