package services

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/senyabanana/quote-service/internal/models"
	"github.com/senyabanana/quote-service/internal/repository"
	"github.com/senyabanana/quote-service/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequestService(store *repository.InMemoryStore, transport *fakeTransport) *RequestService {
	matcher := NewMatcherService(store, 20)
	notifier := NewNotificationService(transport, testLogger(), "http://localhost:8080")
	return NewRequestService(store, store, matcher, notifier, testLogger())
}

func TestCreateRequestRequiresBuyerFields(t *testing.T) {
	store := repository.NewInMemoryStore()
	service := newRequestService(store, &fakeTransport{})

	_, err := service.CreateRequest(context.Background(), models.RequestInput{
		Category: "plumbing",
		Zone:     "north",
		Email:    "marie@example.com",
	})

	var errorResponse *models.ErrorResponse
	require.ErrorAs(t, err, &errorResponse)
	assert.Equal(t, http.StatusBadRequest, errorResponse.StatusCode)
}

func TestCreateRequestDefaultsAbsentBudgetToZero(t *testing.T) {
	store := repository.NewInMemoryStore()
	service := newRequestService(store, &fakeTransport{})

	request, err := service.CreateRequest(context.Background(), models.RequestInput{
		Category: "plumbing",
		Zone:     "north",
		Deadline: "2026-09-15",
		Name:     "Marie",
		Email:    "marie@example.com",
	})

	require.NoError(t, err)
	assert.Zero(t, request.Budget)
	assert.Equal(t, models.NewRequest, request.Status)
}

func TestCreateRequestCoercesStringBudget(t *testing.T) {
	store := repository.NewInMemoryStore()
	service := newRequestService(store, &fakeTransport{})

	request, err := service.CreateRequest(context.Background(), models.RequestInput{
		Category: "plumbing",
		Budget:   "250.50",
		Zone:     "north",
		Name:     "Marie",
		Email:    "marie@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, 250.50, request.Budget)
}

func TestCreateRequestRejectsNegativeBudget(t *testing.T) {
	store := repository.NewInMemoryStore()
	service := newRequestService(store, &fakeTransport{})

	_, err := service.CreateRequest(context.Background(), models.RequestInput{
		Category: "plumbing",
		Budget:   -10.0,
		Zone:     "north",
		Name:     "Marie",
		Email:    "marie@example.com",
	})

	var errorResponse *models.ErrorResponse
	require.ErrorAs(t, err, &errorResponse)
	assert.Equal(t, http.StatusBadRequest, errorResponse.StatusCode)
}

func TestMarkSentIsIdempotent(t *testing.T) {
	store := repository.NewInMemoryStore()
	service := newRequestService(store, &fakeTransport{})
	ctx := context.Background()

	request := newRequest(t, store, "plumbing", "north", 100)

	require.NoError(t, service.MarkSent(ctx, request.ID))
	require.NoError(t, service.MarkSent(ctx, request.ID))

	updated, err := store.GetRequest(ctx, request.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SentRequest, updated.Status)
}

func TestMarkSentUnknownRequest(t *testing.T) {
	store := repository.NewInMemoryStore()
	service := newRequestService(store, &fakeTransport{})

	err := service.MarkSent(context.Background(), "missing")

	var errorResponse *models.ErrorResponse
	require.ErrorAs(t, err, &errorResponse)
	assert.Equal(t, http.StatusNotFound, errorResponse.StatusCode)
}

func TestGetRequestUnknownId(t *testing.T) {
	store := repository.NewInMemoryStore()
	service := newRequestService(store, &fakeTransport{})

	_, err := service.GetRequest(context.Background(), "missing")

	var errorResponse *models.ErrorResponse
	require.ErrorAs(t, err, &errorResponse)
	assert.Equal(t, http.StatusNotFound, errorResponse.StatusCode)
}

func TestDispatchMarksSentWithoutSellers(t *testing.T) {
	store := repository.NewInMemoryStore()
	transport := &fakeTransport{}
	service := newRequestService(store, transport)
	ctx := context.Background()

	request := newRequest(t, store, "plumbing", "north", 100)
	results := service.Dispatch(ctx, request)

	assert.Empty(t, results)
	assert.Empty(t, transport.sentMails())

	updated, err := store.GetRequest(ctx, request.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SentRequest, updated.Status)
}

func TestDispatchToleratesPartialDeliveryFailure(t *testing.T) {
	store := repository.NewInMemoryStore()
	transport := &fakeTransport{failFor: map[string]bool{"bob@example.com": true}}
	service := newRequestService(store, transport)
	ctx := context.Background()

	alice := newSeller(t, store, "Alice", "alice@example.com", []string{"plumbing"}, []string{"north"})
	bob := newSeller(t, store, "Bob", "bob@example.com", []string{"plumbing"}, []string{"north"})

	request := newRequest(t, store, "plumbing", "north", 100)
	results := service.Dispatch(ctx, request)

	require.Len(t, results, 2)
	assert.Equal(t, alice.ID, results[0].SellerId)
	assert.True(t, results[0].Delivered)
	assert.Equal(t, bob.ID, results[1].SellerId)
	assert.False(t, results[1].Delivered)
	assert.NotEmpty(t, results[1].Reason)

	// Отказ доставки не мешает заявке перейти в SENT.
	updated, err := store.GetRequest(ctx, request.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SentRequest, updated.Status)
}

func TestDispatchMailCarriesOfferFormLink(t *testing.T) {
	store := repository.NewInMemoryStore()
	transport := &fakeTransport{}
	service := newRequestService(store, transport)
	ctx := context.Background()

	seller := newSeller(t, store, "Alice", "alice@example.com", []string{"plumbing"}, []string{"north"})
	request := newRequest(t, store, "plumbing", "north", 100)

	service.Dispatch(ctx, request)

	mails := transport.sentMails()
	require.Len(t, mails, 1)

	token := utils.EncodeOfferToken(request.ID, seller.ID)
	assert.True(t, strings.Contains(mails[0].body, token))
	assert.True(t, strings.Contains(mails[0].body, request.Zone))
	assert.True(t, strings.Contains(mails[0].body, request.Deadline))
}
