package repos

import (
	"context"
	"errors"
	"testing"

	"github.com/yungbote/recordstore-backend/internal/repos/testutil"
	"github.com/yungbote/recordstore-backend/internal/types"
	"gorm.io/gorm"
)

func seedCartFixtures(t *testing.T, tx *gorm.DB) (user, other *types.User, albums []*types.Album) {
	t.Helper()

	user = &types.User{FirstName: "Nina", LastName: "Simone", Email: "nina@example.com", Password: "pw"}
	other = &types.User{FirstName: "Miles", LastName: "Davis", Email: "miles@example.com", Password: "pw"}
	if err := tx.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	if err := tx.Create(other).Error; err != nil {
		t.Fatalf("seed other user: %v", err)
	}

	albums = []*types.Album{
		{Title: "Pastel Blues", Artist: "Nina Simone", PriceCents: 1999},
		{Title: "Kind of Blue", Artist: "Miles Davis", PriceCents: 2499},
	}
	for _, a := range albums {
		if err := tx.Create(a).Error; err != nil {
			t.Fatalf("seed album: %v", err)
		}
	}
	return user, other, albums
}

func TestCartItemRepoAddQuantityMerges(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewCartItemRepo(db, testutil.Logger(t))

	user, _, albums := seedCartFixtures(t, tx)

	if err := repo.AddQuantity(ctx, tx, user.ID, albums[0].ID, 2); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := repo.AddQuantity(ctx, tx, user.ID, albums[0].ID, 3); err != nil {
		t.Fatalf("second add: %v", err)
	}

	rows, err := repo.ListByUser(ctx, tx, user.ID)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected one merged row, got %d", len(rows))
	}
	if rows[0].Quantity != 5 {
		t.Fatalf("unexpected quantity: got=%d want=5", rows[0].Quantity)
	}

	// A different album starts its own row.
	if err := repo.AddQuantity(ctx, tx, user.ID, albums[1].ID, 1); err != nil {
		t.Fatalf("add second album: %v", err)
	}
	rows, err = repo.ListByUser(ctx, tx, user.ID)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected two rows, got %d", len(rows))
	}
}

func TestCartItemRepoSetQuantityOverwrites(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewCartItemRepo(db, testutil.Logger(t))

	user, _, albums := seedCartFixtures(t, tx)

	if err := repo.AddQuantity(ctx, tx, user.ID, albums[0].ID, 4); err != nil {
		t.Fatalf("add: %v", err)
	}

	item, err := repo.SetQuantity(ctx, tx, user.ID, albums[0].ID, 9)
	if err != nil {
		t.Fatalf("SetQuantity: %v", err)
	}
	if item.Quantity != 9 {
		t.Fatalf("overwrite expected 9, got %d", item.Quantity)
	}

	// Zero is a legal overwrite value (empty-string input upstream).
	item, err = repo.SetQuantity(ctx, tx, user.ID, albums[0].ID, 0)
	if err != nil {
		t.Fatalf("SetQuantity to zero: %v", err)
	}
	if item.Quantity != 0 {
		t.Fatalf("expected 0, got %d", item.Quantity)
	}

	if _, err := repo.SetQuantity(ctx, tx, user.ID, albums[1].ID, 1); !errors.Is(err, ErrCartItemNotFound) {
		t.Fatalf("expected ErrCartItemNotFound, got %v", err)
	}
}

func TestCartItemRepoClearLeavesOtherUsers(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewCartItemRepo(db, testutil.Logger(t))

	user, other, albums := seedCartFixtures(t, tx)

	for _, a := range albums {
		if err := repo.AddQuantity(ctx, tx, user.ID, a.ID, 1); err != nil {
			t.Fatalf("add for user: %v", err)
		}
	}
	if err := repo.AddQuantity(ctx, tx, other.ID, albums[0].ID, 2); err != nil {
		t.Fatalf("add for other: %v", err)
	}

	if err := repo.Clear(ctx, tx, user.ID); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	mine, err := repo.ListByUser(ctx, tx, user.ID)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(mine) != 0 {
		t.Fatalf("expected cleared cart, got %d rows", len(mine))
	}

	theirs, err := repo.ListByUser(ctx, tx, other.ID)
	if err != nil {
		t.Fatalf("ListByUser other: %v", err)
	}
	if len(theirs) != 1 {
		t.Fatalf("other user's cart should be untouched, got %d rows", len(theirs))
	}
}

func TestCartItemRepoListAlbumsFlattens(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewCartItemRepo(db, testutil.Logger(t))

	user, _, albums := seedCartFixtures(t, tx)

	for _, a := range albums {
		if err := repo.AddQuantity(ctx, tx, user.ID, a.ID, 1); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	got, err := repo.ListAlbums(ctx, tx, user.ID)
	if err != nil {
		t.Fatalf("ListAlbums: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 albums, got %d", len(got))
	}
	if got[0].Title != "Pastel Blues" || got[1].Title != "Kind of Blue" {
		t.Fatalf("unexpected albums: %q, %q", got[0].Title, got[1].Title)
	}
}

func TestCartItemRepoRemove(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewCartItemRepo(db, testutil.Logger(t))

	user, _, albums := seedCartFixtures(t, tx)

	if err := repo.AddQuantity(ctx, tx, user.ID, albums[0].ID, 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := repo.AddQuantity(ctx, tx, user.ID, albums[1].ID, 1); err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := repo.Remove(ctx, tx, user.ID, albums[0].ID); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	rows, err := repo.ListByUser(ctx, tx, user.ID)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(rows) != 1 || rows[0].AlbumID != albums[1].ID {
		t.Fatalf("expected only album %d to remain, got %+v", albums[1].ID, rows)
	}
}
