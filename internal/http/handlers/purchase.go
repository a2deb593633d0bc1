package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/recordstore-backend/internal/platform/apierr"
	"github.com/yungbote/recordstore-backend/internal/repos"
	"github.com/yungbote/recordstore-backend/internal/types"
)

type PurchaseHandler struct {
	cardRepo repos.CreditCardRepo
}

func NewPurchaseHandler(cardRepo repos.CreditCardRepo) *PurchaseHandler {
	return &PurchaseHandler{cardRepo: cardRepo}
}

// POST /users/:userId/purchaseDetails
// Creates the user's billing record on first submission; later submissions
// are no-ops that still answer 201.
func (ph *PurchaseHandler) Create(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	var req struct {
		CardNumber      string `json:"card_number"`
		ExpirationMonth int    `json:"expiration_month"`
		ExpirationYear  int    `json:"expiration_year"`
		CVV             string `json:"ccv"`
		BillingAddress  string `json:"billing_address"`
		BillingCity     string `json:"billing_city"`
		BillingState    string `json:"billing_state"`
		BillingZip      string `json:"billing_zip"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "detail": err.Error()})
		return
	}

	_, err := ph.cardRepo.FindOrCreate(c.Request.Context(), nil, &types.CreditCard{
		UserID:          userID,
		CardNumber:      req.CardNumber,
		ExpirationMonth: req.ExpirationMonth,
		ExpirationYear:  req.ExpirationYear,
		CVV:             req.CVV,
		BillingAddress:  req.BillingAddress,
		BillingCity:     req.BillingCity,
		BillingState:    req.BillingState,
		BillingZip:      req.BillingZip,
	})
	if err != nil {
		_ = c.Error(apierr.Internal(err))
		return
	}
	c.Status(http.StatusCreated)
}
