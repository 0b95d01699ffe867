package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/senyabanana/quote-service/internal/models"
	"github.com/senyabanana/quote-service/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSellerDefaultsToBasicPlan(t *testing.T) {
	store := repository.NewInMemoryStore()
	service := NewSellerService(store)

	seller, err := service.CreateSeller(context.Background(), models.SellerRequest{
		Name:       "Alice",
		Email:      "alice@example.com",
		Categories: []string{"plumbing"},
		Zones:      []string{"north"},
	})

	require.NoError(t, err)
	assert.Equal(t, models.BasicPlan, seller.Plan)
	assert.True(t, seller.Active)
}

func TestCreateSellerValidation(t *testing.T) {
	store := repository.NewInMemoryStore()
	service := NewSellerService(store)
	ctx := context.Background()

	testCases := []struct {
		name      string
		sellerReq models.SellerRequest
	}{
		{
			name: "missing name",
			sellerReq: models.SellerRequest{
				Email:      "alice@example.com",
				Categories: []string{"plumbing"},
				Zones:      []string{"north"},
			},
		},
		{
			name: "no categories",
			sellerReq: models.SellerRequest{
				Name:  "Alice",
				Email: "alice@example.com",
				Zones: []string{"north"},
			},
		},
		{
			name: "unknown plan",
			sellerReq: models.SellerRequest{
				Name:       "Alice",
				Email:      "alice@example.com",
				Categories: []string{"plumbing"},
				Zones:      []string{"north"},
				Plan:       "PLATINUM",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.CreateSeller(ctx, tc.sellerReq)

			var errorResponse *models.ErrorResponse
			require.ErrorAs(t, err, &errorResponse)
			assert.Equal(t, http.StatusBadRequest, errorResponse.StatusCode)
		})
	}
}

func TestSetSellerActiveTogglesMatching(t *testing.T) {
	store := repository.NewInMemoryStore()
	service := NewSellerService(store)
	ctx := context.Background()

	seller := newSeller(t, store, "Alice", "alice@example.com", []string{"plumbing"}, []string{"north"})

	updated, err := service.SetSellerActive(ctx, seller.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.Active)

	active, err := store.ListActiveSellers(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestSetSellerActiveUnknownSeller(t *testing.T) {
	service := NewSellerService(repository.NewInMemoryStore())

	_, err := service.SetSellerActive(context.Background(), "missing", true)

	var errorResponse *models.ErrorResponse
	require.ErrorAs(t, err, &errorResponse)
	assert.Equal(t, http.StatusNotFound, errorResponse.StatusCode)
}
