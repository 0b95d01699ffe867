package services

import (
	"context"
	"errors"
	"math"
	"net/http"

	"github.com/senyabanana/quote-service/internal/models"
	"github.com/senyabanana/quote-service/internal/repository"
	"github.com/senyabanana/quote-service/internal/utils"
)

// DefaultOfferListLimit ограничивает выдачу предложений покупателю.
// Выбираются первые по времени поступления, не самые дешевые.
const DefaultOfferListLimit = 3

// OfferService ведет учет предложений продавцов.
type OfferService struct {
	Repo      repository.OfferRepository
	Requests  repository.RequestRepository
	Sellers   repository.SellerRepository
	ListLimit int
}

// NewOfferService создает новый экземпляр OfferService.
func NewOfferService(repo repository.OfferRepository, requests repository.RequestRepository, sellers repository.SellerRepository, listLimit int) *OfferService {
	if listLimit <= 0 {
		listLimit = DefaultOfferListLimit
	}
	return &OfferService{
		Repo:      repo,
		Requests:  requests,
		Sellers:   sellers,
		ListLimit: listLimit,
	}
}

// SubmitOffer регистрирует предложение продавца по заявке.
func (s *OfferService) SubmitOffer(ctx context.Context, offerReq models.OfferRequest) (*models.Offer, error) {
	if offerReq.RequestId == "" || offerReq.SellerId == "" {
		return nil, models.NewErrorResponse(http.StatusBadRequest, "missing required fields: requestId or sellerId")
	}
	if math.IsNaN(offerReq.Price) || math.IsInf(offerReq.Price, 0) || offerReq.Price < 0 {
		return nil, models.NewErrorResponse(http.StatusBadRequest, "price must be a finite non-negative number")
	}

	if _, err := s.Requests.GetRequest(ctx, offerReq.RequestId); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, models.NewErrorResponse(http.StatusNotFound, "request not found")
		}
		return nil, err
	}
	if _, err := s.Sellers.GetSeller(ctx, offerReq.SellerId); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, models.NewErrorResponse(http.StatusNotFound, "seller not found")
		}
		return nil, err
	}

	return s.Repo.CreateOffer(ctx, offerReq)
}

// ListOffers возвращает первые по времени поступления предложения по заявке,
// не больше ListLimit, вместе с именем продавца.
func (s *OfferService) ListOffers(ctx context.Context, requestId string) ([]models.OfferView, error) {
	if requestId == "" {
		return nil, models.NewErrorResponse(http.StatusBadRequest, "missing required parameter: requestId")
	}

	if _, err := s.Requests.GetRequest(ctx, requestId); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, models.NewErrorResponse(http.StatusNotFound, "request not found")
		}
		return nil, err
	}

	return s.Repo.ListForRequest(ctx, requestId, s.ListLimit)
}

// ResolveFormToken восстанавливает контекст формы предложения из токена письма.
func (s *OfferService) ResolveFormToken(ctx context.Context, token string) (*models.OfferForm, error) {
	if token == "" {
		return nil, models.NewErrorResponse(http.StatusBadRequest, "missing required parameter: token")
	}

	requestId, sellerId, err := utils.DecodeOfferToken(token)
	if err != nil {
		return nil, models.NewErrorResponse(http.StatusBadRequest, "malformed token")
	}

	request, err := s.Requests.GetRequest(ctx, requestId)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, models.NewErrorResponse(http.StatusNotFound, "request not found")
		}
		return nil, err
	}
	seller, err := s.Sellers.GetSeller(ctx, sellerId)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, models.NewErrorResponse(http.StatusNotFound, "seller not found")
		}
		return nil, err
	}

	return &models.OfferForm{
		RequestId:  request.ID,
		Category:   request.Category,
		Budget:     request.Budget,
		Zone:       request.Zone,
		Deadline:   request.Deadline,
		BuyerName:  request.Name,
		SellerId:   seller.ID,
		SellerName: seller.Name,
	}, nil
}
