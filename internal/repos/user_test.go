package repos

import (
	"context"
	"testing"

	"github.com/yungbote/recordstore-backend/internal/repos/testutil"
	"github.com/yungbote/recordstore-backend/internal/types"
)

func TestUserRepoFindOrCreateMatchesFullTuple(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewUserRepo(db, testutil.Logger(t))

	tuple := &types.User{FirstName: "Sam", LastName: "Cooke", Email: "sam@example.com", Password: "pw"}

	created, wasCreated, err := repo.FindOrCreate(ctx, tx, tuple)
	if err != nil {
		t.Fatalf("FindOrCreate: %v", err)
	}
	if !wasCreated {
		t.Fatalf("expected a new row on first call")
	}

	again, wasCreated, err := repo.FindOrCreate(ctx, tx, tuple)
	if err != nil {
		t.Fatalf("FindOrCreate again: %v", err)
	}
	if wasCreated {
		t.Fatalf("identical tuple must not create a second row")
	}
	if again.ID != created.ID {
		t.Fatalf("expected existing row %d, got %d", created.ID, again.ID)
	}

	// A different password is a different tuple.
	otherPw := &types.User{FirstName: "Sam", LastName: "Cooke", Email: "sam@example.com", Password: "other"}
	other, wasCreated, err := repo.FindOrCreate(ctx, tx, otherPw)
	if err != nil {
		t.Fatalf("FindOrCreate other: %v", err)
	}
	if !wasCreated || other.ID == created.ID {
		t.Fatalf("tuple with different password should create a new row")
	}
}

func TestUserRepoGetByIDPopulates(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewUserRepo(db, testutil.Logger(t))

	user := &types.User{FirstName: "Ella", LastName: "Fitzgerald", Email: "ella@example.com", Password: "pw"}
	if err := tx.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	album := &types.Album{Title: "Ella in Berlin", Artist: "Ella Fitzgerald"}
	if err := tx.Create(album).Error; err != nil {
		t.Fatalf("seed album: %v", err)
	}
	if err := tx.Create(&types.ShoppingCartItem{UserID: user.ID, AlbumID: album.ID, Quantity: 1}).Error; err != nil {
		t.Fatalf("seed cart item: %v", err)
	}

	got, err := repo.GetByID(ctx, tx, user.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got == nil {
		t.Fatalf("expected user, got nil")
	}
	if len(got.CartItems) != 1 {
		t.Fatalf("expected populated cart items, got %d", len(got.CartItems))
	}
	if got.CartItems[0].Album == nil || got.CartItems[0].Album.Title != "Ella in Berlin" {
		t.Fatalf("expected populated album on cart item, got %+v", got.CartItems[0].Album)
	}
}

func TestUserRepoGetByIDMissingReturnsNil(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewUserRepo(db, testutil.Logger(t))

	got, err := repo.GetByID(ctx, tx, 999999)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for missing user, got %+v", got)
	}
}

func TestUserRepoUpdateAndDelete(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewUserRepo(db, testutil.Logger(t))

	user := &types.User{FirstName: "Otis", LastName: "Redding", Email: "otis@example.com", Password: "pw"}
	if err := tx.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	if err := repo.Update(ctx, tx, user.ID, map[string]interface{}{"is_admin": true, "email": "otis@stax.com"}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err := repo.GetByID(ctx, tx, user.ID)
	if err != nil || got == nil {
		t.Fatalf("GetByID after update: user=%v err=%v", got, err)
	}
	if !got.IsAdmin || got.Email != "otis@stax.com" {
		t.Fatalf("update not applied: %+v", got)
	}

	if err := repo.Delete(ctx, tx, user.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	got, err = repo.GetByID(ctx, tx, user.ID)
	if err != nil {
		t.Fatalf("GetByID after delete: %v", err)
	}
	if got != nil {
		t.Fatalf("expected user gone, got %+v", got)
	}
}
