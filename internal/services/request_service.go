package services

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/senyabanana/quote-service/internal/models"
	"github.com/senyabanana/quote-service/internal/repository"
	"github.com/senyabanana/quote-service/internal/utils"
)

// RequestService владеет жизненным циклом заявки покупателя.
type RequestService struct {
	Repo     repository.RequestRepository
	Offers   repository.OfferRepository
	Matcher  *MatcherService
	Notifier *NotificationService
	Logger   *log.Logger
}

// NewRequestService создает новый экземпляр RequestService.
func NewRequestService(repo repository.RequestRepository, offers repository.OfferRepository, matcher *MatcherService, notifier *NotificationService, logger *log.Logger) *RequestService {
	return &RequestService{
		Repo:     repo,
		Offers:   offers,
		Matcher:  matcher,
		Notifier: notifier,
		Logger:   logger,
	}
}

// CreateRequest проверяет данные покупателя и сохраняет заявку со статусом NEW.
// Отсутствующий бюджет намеренно трактуется как 0.
func (s *RequestService) CreateRequest(ctx context.Context, input models.RequestInput) (*models.Request, error) {
	if input.Category == "" || input.Zone == "" || input.Name == "" || input.Email == "" {
		return nil, models.NewErrorResponse(http.StatusBadRequest, "missing required fields: category, zone, name or email")
	}

	budget, err := utils.ParseBudget(input.Budget)
	if err != nil {
		return nil, models.NewErrorResponse(http.StatusBadRequest, err.Error())
	}

	data := models.RequestData{
		Category: input.Category,
		Budget:   budget,
		Zone:     input.Zone,
		Deadline: input.Deadline,
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
	}
	return s.Repo.CreateRequest(ctx, data)
}

// Dispatch подбирает продавцов, рассылает уведомления и помечает заявку
// как SENT. Заявка переходит в SENT независимо от результата доставки,
// в том числе когда подходящих продавцов не нашлось.
func (s *RequestService) Dispatch(ctx context.Context, request *models.Request) []DeliveryResult {
	var results []DeliveryResult

	sellers, err := s.Matcher.MatchSellers(ctx, request)
	if err != nil {
		s.Logger.Printf("seller matching for request %s failed: %v", request.ID, err)
	}
	if len(sellers) > 0 {
		results = s.Notifier.NotifySellers(request, sellers)
	}

	if err := s.MarkSent(ctx, request.ID); err != nil {
		s.Logger.Printf("failed to mark request %s as sent: %v", request.ID, err)
	}
	return results
}

// MarkSent переводит заявку в статус SENT. Повторный вызов ничего не меняет.
func (s *RequestService) MarkSent(ctx context.Context, requestId string) error {
	request, err := s.Repo.GetRequest(ctx, requestId)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.NewErrorResponse(http.StatusNotFound, "request not found")
		}
		return err
	}

	if request.Status == models.SentRequest {
		return nil
	}

	allowedStatusTransition := map[models.RequestStatus][]models.RequestStatus{
		models.NewRequest:      {models.SentRequest, models.ClosedRequest},
		models.SentRequest:     {models.AcceptedRequest, models.ClosedRequest},
		models.AcceptedRequest: {models.ClosedRequest},
		models.ClosedRequest:   {},
	}
	if !utils.ContainsRequestStatus(allowedStatusTransition[request.Status], models.SentRequest) {
		return models.NewErrorResponse(http.StatusConflict, "invalid request status transition")
	}

	_, err = s.Repo.UpdateRequestStatus(ctx, requestId, models.SentRequest)
	return err
}

// GetRequest возвращает заявку вместе с количеством предложений по ней.
func (s *RequestService) GetRequest(ctx context.Context, requestId string) (*models.RequestDetails, error) {
	request, err := s.Repo.GetRequest(ctx, requestId)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, models.NewErrorResponse(http.StatusNotFound, "request not found")
		}
		return nil, err
	}

	count, err := s.Offers.CountForRequest(ctx, requestId)
	if err != nil {
		return nil, err
	}
	return &models.RequestDetails{Request: *request, OfferCount: count}, nil
}
