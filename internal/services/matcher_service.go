package services

import (
	"context"

	"github.com/senyabanana/quote-service/internal/models"
	"github.com/senyabanana/quote-service/internal/repository"
	"github.com/senyabanana/quote-service/internal/utils"
)

// DefaultMaxSellers ограничивает размер рассылки по одной заявке.
const DefaultMaxSellers = 20

// MatcherService отбирает продавцов, подходящих под заявку.
type MatcherService struct {
	Repo       repository.SellerRepository
	MaxSellers int
}

// NewMatcherService создает новый экземпляр MatcherService.
func NewMatcherService(repo repository.SellerRepository, maxSellers int) *MatcherService {
	if maxSellers <= 0 {
		maxSellers = DefaultMaxSellers
	}
	return &MatcherService{Repo: repo, MaxSellers: maxSellers}
}

// MatchSellers возвращает активных продавцов, у которых категория и зона
// заявки входят в их наборы. Сравнение строгое, по полному совпадению метки.
// Порядок выдачи - порядок регистрации продавцов; ранжирования нет.
// Пустой результат не является ошибкой.
func (s *MatcherService) MatchSellers(ctx context.Context, request *models.Request) ([]models.Seller, error) {
	sellers, err := s.Repo.ListActiveSellers(ctx)
	if err != nil {
		return nil, err
	}

	var matched []models.Seller
	for _, seller := range sellers {
		if !utils.ContainsLabel(seller.Categories, request.Category) {
			continue
		}
		if !utils.ContainsLabel(seller.Zones, request.Zone) {
			continue
		}
		matched = append(matched, seller)
		if len(matched) == s.MaxSellers {
			break
		}
	}
	return matched, nil
}
