package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/senyabanana/quote-service/internal/models"
	"github.com/senyabanana/quote-service/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeller(t *testing.T, store *repository.InMemoryStore, name, email string, categories, zones []string) *models.Seller {
	t.Helper()
	seller, err := store.CreateSeller(context.Background(), models.SellerRequest{
		Name:       name,
		Email:      email,
		Phone:      "0262000000",
		Categories: categories,
		Zones:      zones,
	})
	require.NoError(t, err)
	return seller
}

func newRequest(t *testing.T, store *repository.InMemoryStore, category, zone string, budget float64) *models.Request {
	t.Helper()
	request, err := store.CreateRequest(context.Background(), models.RequestData{
		Category: category,
		Budget:   budget,
		Zone:     zone,
		Deadline: "2026-09-15",
		Name:     "Marie",
		Email:    "marie@example.com",
	})
	require.NoError(t, err)
	return request
}

func TestMatchSellersFiltersByCategoryAndZone(t *testing.T) {
	store := repository.NewInMemoryStore()
	ctx := context.Background()

	matching := newSeller(t, store, "Alice", "alice@example.com", []string{"plumbing", "heating"}, []string{"north"})
	newSeller(t, store, "Bob", "bob@example.com", []string{"electrical"}, []string{"north"})
	newSeller(t, store, "Carol", "carol@example.com", []string{"plumbing"}, []string{"south"})

	inactive := newSeller(t, store, "Dave", "dave@example.com", []string{"plumbing"}, []string{"north"})
	_, err := store.SetSellerActive(ctx, inactive.ID, false)
	require.NoError(t, err)

	// Подстрока метки не считается совпадением.
	newSeller(t, store, "Eve", "eve@example.com", []string{"plumbing and heating"}, []string{"north"})

	request := newRequest(t, store, "plumbing", "north", 200)

	matcher := NewMatcherService(store, 0)
	matched, err := matcher.MatchSellers(ctx, request)
	require.NoError(t, err)

	require.Len(t, matched, 1)
	assert.Equal(t, matching.ID, matched[0].ID)
}

func TestMatchSellersKeepsRegistrationOrderAndCap(t *testing.T) {
	store := repository.NewInMemoryStore()
	ctx := context.Background()

	var ids []string
	for i := 0; i < 25; i++ {
		seller := newSeller(t, store,
			fmt.Sprintf("Seller %d", i),
			fmt.Sprintf("seller%d@example.com", i),
			[]string{"plumbing"},
			[]string{"north"})
		ids = append(ids, seller.ID)
	}

	request := newRequest(t, store, "plumbing", "north", 100)

	matcher := NewMatcherService(store, 20)
	matched, err := matcher.MatchSellers(ctx, request)
	require.NoError(t, err)

	require.Len(t, matched, 20)
	for i, seller := range matched {
		assert.Equal(t, ids[i], seller.ID)
	}
}

func TestMatchSellersEmptyResultIsNotAnError(t *testing.T) {
	store := repository.NewInMemoryStore()
	request := newRequest(t, store, "plumbing", "north", 100)

	matcher := NewMatcherService(store, 20)
	matched, err := matcher.MatchSellers(context.Background(), request)

	require.NoError(t, err)
	assert.Empty(t, matched)
}
