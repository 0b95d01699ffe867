package repository

import (
	"context"
	"sync"
	"time"

	"github.com/senyabanana/quote-service/internal/models"

	"github.com/google/uuid"
)

// InMemoryStore - потокобезопасное хранилище в памяти.
// Реализует все репозитории движка и подменяет Postgres в тестах.
type InMemoryStore struct {
	mu         sync.Mutex
	sellers    map[string]models.Seller
	sellerIds  []string
	requests   map[string]models.Request
	offers     map[string]models.Offer
	offerIds   []string
	payments   map[string]models.Payment
	paymentIds []string
}

// NewInMemoryStore создает пустое хранилище в памяти.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		sellers:  make(map[string]models.Seller),
		requests: make(map[string]models.Request),
		offers:   make(map[string]models.Offer),
		payments: make(map[string]models.Payment),
	}
}

// CreateSeller регистрирует нового продавца.
func (s *InMemoryStore) CreateSeller(_ context.Context, sellerReq models.SellerRequest) (*models.Seller, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	plan := models.SellerPlan(sellerReq.Plan)
	if plan == "" {
		plan = models.BasicPlan
	}
	newSeller := models.Seller{
		ID:         uuid.New().String(),
		Name:       sellerReq.Name,
		Email:      sellerReq.Email,
		Phone:      sellerReq.Phone,
		Categories: sellerReq.Categories,
		Zones:      sellerReq.Zones,
		Plan:       plan,
		Active:     true,
		CreatedAt:  time.Now().UTC(),
	}
	s.sellers[newSeller.ID] = newSeller
	s.sellerIds = append(s.sellerIds, newSeller.ID)
	return &newSeller, nil
}

// GetSeller возвращает продавца по id.
func (s *InMemoryStore) GetSeller(_ context.Context, sellerId string) (*models.Seller, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seller, ok := s.sellers[sellerId]
	if !ok {
		return nil, ErrNotFound
	}
	return &seller, nil
}

// ListActiveSellers возвращает активных продавцов в порядке их регистрации.
func (s *InMemoryStore) ListActiveSellers(_ context.Context) ([]models.Seller, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sellers []models.Seller
	for _, id := range s.sellerIds {
		if seller := s.sellers[id]; seller.Active {
			sellers = append(sellers, seller)
		}
	}
	return sellers, nil
}

// SetSellerActive включает или выключает продавца в выдаче подбора.
func (s *InMemoryStore) SetSellerActive(_ context.Context, sellerId string, active bool) (*models.Seller, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seller, ok := s.sellers[sellerId]
	if !ok {
		return nil, ErrNotFound
	}
	seller.Active = active
	s.sellers[sellerId] = seller
	return &seller, nil
}

// CreateRequest создает новую заявку со статусом NEW.
func (s *InMemoryStore) CreateRequest(_ context.Context, data models.RequestData) (*models.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	newRequest := models.Request{
		ID:        uuid.New().String(),
		Category:  data.Category,
		Budget:    data.Budget,
		Zone:      data.Zone,
		Deadline:  data.Deadline,
		Name:      data.Name,
		Email:     data.Email,
		Phone:     data.Phone,
		Status:    models.NewRequest,
		CreatedAt: time.Now().UTC(),
	}
	s.requests[newRequest.ID] = newRequest
	return &newRequest, nil
}

// GetRequest возвращает заявку по id.
func (s *InMemoryStore) GetRequest(_ context.Context, requestId string) (*models.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	request, ok := s.requests[requestId]
	if !ok {
		return nil, ErrNotFound
	}
	return &request, nil
}

// UpdateRequestStatus меняет статус заявки.
func (s *InMemoryStore) UpdateRequestStatus(_ context.Context, requestId string, status models.RequestStatus) (*models.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	request, ok := s.requests[requestId]
	if !ok {
		return nil, ErrNotFound
	}
	request.Status = status
	s.requests[requestId] = request
	return &request, nil
}

// CreateOffer создает новое предложение со статусом SENT.
func (s *InMemoryStore) CreateOffer(_ context.Context, offerReq models.OfferRequest) (*models.Offer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	newOffer := models.Offer{
		ID:        uuid.New().String(),
		RequestId: offerReq.RequestId,
		SellerId:  offerReq.SellerId,
		Price:     offerReq.Price,
		Delay:     offerReq.Delay,
		Status:    models.SentOffer,
		CreatedAt: time.Now().UTC(),
	}
	s.offers[newOffer.ID] = newOffer
	s.offerIds = append(s.offerIds, newOffer.ID)
	return &newOffer, nil
}

// GetOffer возвращает предложение по id.
func (s *InMemoryStore) GetOffer(_ context.Context, offerId string) (*models.Offer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	offer, ok := s.offers[offerId]
	if !ok {
		return nil, ErrNotFound
	}
	return &offer, nil
}

// ListForRequest возвращает предложения по заявке в порядке поступления.
func (s *InMemoryStore) ListForRequest(_ context.Context, requestId string, limit int) ([]models.OfferView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var views []models.OfferView
	for _, id := range s.offerIds {
		offer := s.offers[id]
		if offer.RequestId != requestId {
			continue
		}
		view := models.OfferView{Offer: offer}
		if seller, ok := s.sellers[offer.SellerId]; ok {
			view.SellerName = seller.Name
		}
		views = append(views, view)
		if len(views) == limit {
			break
		}
	}
	return views, nil
}

// CountForRequest возвращает количество предложений по заявке.
func (s *InMemoryStore) CountForRequest(_ context.Context, requestId string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, id := range s.offerIds {
		if s.offers[id].RequestId == requestId {
			count++
		}
	}
	return count, nil
}

// AcceptOffer атомарно переводит предложение SENT -> ACCEPTED.
func (s *InMemoryStore) AcceptOffer(_ context.Context, offerId string) (*models.Offer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	offer, ok := s.offers[offerId]
	if !ok {
		return nil, ErrNotFound
	}
	if offer.Status != models.SentOffer {
		return nil, ErrOfferTaken
	}
	offer.Status = models.AcceptedOffer
	s.offers[offerId] = offer
	return &offer, nil
}

// UpdateOfferStatus меняет статус предложения.
func (s *InMemoryStore) UpdateOfferStatus(_ context.Context, offerId string, status models.OfferStatus) (*models.Offer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	offer, ok := s.offers[offerId]
	if !ok {
		return nil, ErrNotFound
	}
	offer.Status = status
	s.offers[offerId] = offer
	return &offer, nil
}

// CreatePayment создает новый платеж со статусом PENDING.
func (s *InMemoryStore) CreatePayment(_ context.Context, paymentReq models.PaymentRequest) (*models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	newPayment := models.Payment{
		ID:        uuid.New().String(),
		RequestId: paymentReq.RequestId,
		OfferId:   paymentReq.OfferId,
		Amount:    paymentReq.Amount,
		Status:    models.PendingPayment,
		CreatedAt: time.Now().UTC(),
	}
	s.payments[newPayment.ID] = newPayment
	s.paymentIds = append(s.paymentIds, newPayment.ID)
	return &newPayment, nil
}

// GetPayment возвращает платеж по id.
func (s *InMemoryStore) GetPayment(_ context.Context, paymentId string) (*models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payment, ok := s.payments[paymentId]
	if !ok {
		return nil, ErrNotFound
	}
	return &payment, nil
}

// ListByRequest возвращает платежи по заявке с любым из указанных статусов.
func (s *InMemoryStore) ListByRequest(_ context.Context, requestId string, statuses []string) ([]models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	allowed := make(map[string]bool, len(statuses))
	for _, status := range statuses {
		allowed[status] = true
	}

	var requestPayments []models.Payment
	for _, id := range s.paymentIds {
		payment := s.payments[id]
		if payment.RequestId == requestId && allowed[string(payment.Status)] {
			requestPayments = append(requestPayments, payment)
		}
	}
	return requestPayments, nil
}

// UpdatePaymentStatus меняет статус платежа.
func (s *InMemoryStore) UpdatePaymentStatus(_ context.Context, paymentId string, status models.PaymentStatus) (*models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payment, ok := s.payments[paymentId]
	if !ok {
		return nil, ErrNotFound
	}
	payment.Status = status
	s.payments[paymentId] = payment
	return &payment, nil
}
