package repos

import (
	"context"
	"testing"

	"github.com/yungbote/recordstore-backend/internal/repos/testutil"
	"github.com/yungbote/recordstore-backend/internal/types"
)

func TestCreditCardRepoFindOrCreateIsIdempotent(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewCreditCardRepo(db, testutil.Logger(t))

	user := &types.User{FirstName: "Etta", LastName: "James", Email: "etta@example.com", Password: "pw"}
	if err := tx.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	first, err := repo.FindOrCreate(ctx, tx, &types.CreditCard{
		UserID:          user.ID,
		CardNumber:      "4111111111111111",
		ExpirationMonth: 4,
		ExpirationYear:  2031,
		CVV:             "123",
		BillingAddress:  "1 Beale St",
		BillingCity:     "Memphis",
		BillingState:    "TN",
		BillingZip:      "38103",
	})
	if err != nil {
		t.Fatalf("first FindOrCreate: %v", err)
	}

	second, err := repo.FindOrCreate(ctx, tx, &types.CreditCard{
		UserID:     user.ID,
		CardNumber: "5500000000000004",
	})
	if err != nil {
		t.Fatalf("second FindOrCreate: %v", err)
	}

	if second.ID != first.ID {
		t.Fatalf("second submission should return the first record: got=%d want=%d", second.ID, first.ID)
	}
	if second.CardNumber != "4111111111111111" {
		t.Fatalf("existing record must win, got card number %q", second.CardNumber)
	}

	var count int64
	if err := tx.Model(&types.CreditCard{}).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one billing record, got %d", count)
	}
}

func TestCreditCardRepoGetByUserIDMissing(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewCreditCardRepo(db, testutil.Logger(t))

	card, err := repo.GetByUserID(ctx, tx, 424242)
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}
	if card != nil {
		t.Fatalf("expected nil for missing record, got %+v", card)
	}
}
