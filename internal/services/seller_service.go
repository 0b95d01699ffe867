package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/senyabanana/quote-service/internal/models"
	"github.com/senyabanana/quote-service/internal/repository"
)

// SellerService отвечает за регистрацию продавцов.
type SellerService struct {
	Repo repository.SellerRepository
}

// NewSellerService создает новый экземпляр SellerService.
func NewSellerService(repo repository.SellerRepository) *SellerService {
	return &SellerService{Repo: repo}
}

// CreateSeller проверяет данные и регистрирует продавца.
func (s *SellerService) CreateSeller(ctx context.Context, sellerReq models.SellerRequest) (*models.Seller, error) {
	if sellerReq.Name == "" || sellerReq.Email == "" {
		return nil, models.NewErrorResponse(http.StatusBadRequest, "missing required fields: name or email")
	}
	if len(sellerReq.Categories) == 0 || len(sellerReq.Zones) == 0 {
		return nil, models.NewErrorResponse(http.StatusBadRequest, "at least one category and one zone are required")
	}

	allowedPlans := map[models.SellerPlan]bool{
		models.BasicPlan: true,
		models.ProPlan:   true,
	}
	if sellerReq.Plan != "" && !allowedPlans[models.SellerPlan(sellerReq.Plan)] {
		return nil, models.NewErrorResponse(http.StatusBadRequest, "invalid plan, must be either 'BASIC' or 'PRO'")
	}

	return s.Repo.CreateSeller(ctx, sellerReq)
}

// SetSellerActive включает или выключает продавца в подборе по заявкам.
func (s *SellerService) SetSellerActive(ctx context.Context, sellerId string, active bool) (*models.Seller, error) {
	if sellerId == "" {
		return nil, models.NewErrorResponse(http.StatusBadRequest, "missing required parameter: sellerId")
	}

	seller, err := s.Repo.SetSellerActive(ctx, sellerId, active)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, models.NewErrorResponse(http.StatusNotFound, "seller not found")
		}
		return nil, err
	}
	return seller, nil
}
