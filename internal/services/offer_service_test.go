package services

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/senyabanana/quote-service/internal/models"
	"github.com/senyabanana/quote-service/internal/repository"
	"github.com/senyabanana/quote-service/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOfferService(store *repository.InMemoryStore) *OfferService {
	return NewOfferService(store, store, store, DefaultOfferListLimit)
}

func TestSubmitOfferRejectsNegativePrice(t *testing.T) {
	store := repository.NewInMemoryStore()
	service := newOfferService(store)

	seller := newSeller(t, store, "Alice", "alice@example.com", []string{"plumbing"}, []string{"north"})
	request := newRequest(t, store, "plumbing", "north", 100)

	_, err := service.SubmitOffer(context.Background(), models.OfferRequest{
		RequestId: request.ID,
		SellerId:  seller.ID,
		Price:     -5,
	})

	var errorResponse *models.ErrorResponse
	require.ErrorAs(t, err, &errorResponse)
	assert.Equal(t, http.StatusBadRequest, errorResponse.StatusCode)
}

func TestSubmitOfferUnknownRequestOrSeller(t *testing.T) {
	store := repository.NewInMemoryStore()
	service := newOfferService(store)
	ctx := context.Background()

	seller := newSeller(t, store, "Alice", "alice@example.com", []string{"plumbing"}, []string{"north"})
	request := newRequest(t, store, "plumbing", "north", 100)

	_, err := service.SubmitOffer(ctx, models.OfferRequest{RequestId: "missing", SellerId: seller.ID, Price: 100})
	var errorResponse *models.ErrorResponse
	require.ErrorAs(t, err, &errorResponse)
	assert.Equal(t, http.StatusNotFound, errorResponse.StatusCode)

	_, err = service.SubmitOffer(ctx, models.OfferRequest{RequestId: request.ID, SellerId: "missing", Price: 100})
	require.ErrorAs(t, err, &errorResponse)
	assert.Equal(t, http.StatusNotFound, errorResponse.StatusCode)
}

func TestListOffersCapsAtLimitInArrivalOrder(t *testing.T) {
	store := repository.NewInMemoryStore()
	service := newOfferService(store)
	ctx := context.Background()

	request := newRequest(t, store, "plumbing", "north", 100)

	var offerIds []string
	for i := 0; i < 5; i++ {
		seller := newSeller(t, store,
			fmt.Sprintf("Seller %d", i),
			fmt.Sprintf("seller%d@example.com", i),
			[]string{"plumbing"},
			[]string{"north"})
		// Цены убывают: при сортировке по цене порядок был бы обратным.
		offer, err := service.SubmitOffer(ctx, models.OfferRequest{
			RequestId: request.ID,
			SellerId:  seller.ID,
			Price:     float64(500 - i*50),
			Delay:     "2 weeks",
		})
		require.NoError(t, err)
		offerIds = append(offerIds, offer.ID)
	}

	views, err := service.ListOffers(ctx, request.ID)
	require.NoError(t, err)

	require.Len(t, views, 3)
	for i, view := range views {
		assert.Equal(t, offerIds[i], view.ID)
		assert.Equal(t, fmt.Sprintf("Seller %d", i), view.SellerName)
	}
}

func TestListOffersUnknownRequest(t *testing.T) {
	store := repository.NewInMemoryStore()
	service := newOfferService(store)

	_, err := service.ListOffers(context.Background(), "missing")

	var errorResponse *models.ErrorResponse
	require.ErrorAs(t, err, &errorResponse)
	assert.Equal(t, http.StatusNotFound, errorResponse.StatusCode)
}

func TestResolveFormToken(t *testing.T) {
	store := repository.NewInMemoryStore()
	service := newOfferService(store)
	ctx := context.Background()

	seller := newSeller(t, store, "Alice", "alice@example.com", []string{"plumbing"}, []string{"north"})
	request := newRequest(t, store, "plumbing", "north", 200)

	form, err := service.ResolveFormToken(ctx, utils.EncodeOfferToken(request.ID, seller.ID))
	require.NoError(t, err)

	assert.Equal(t, request.ID, form.RequestId)
	assert.Equal(t, "plumbing", form.Category)
	assert.Equal(t, seller.ID, form.SellerId)
	assert.Equal(t, "Alice", form.SellerName)
	assert.Equal(t, "Marie", form.BuyerName)
}

func TestResolveFormTokenMalformed(t *testing.T) {
	store := repository.NewInMemoryStore()
	service := newOfferService(store)

	_, err := service.ResolveFormToken(context.Background(), "not-a-token")

	var errorResponse *models.ErrorResponse
	require.ErrorAs(t, err, &errorResponse)
	assert.Equal(t, http.StatusBadRequest, errorResponse.StatusCode)
}
