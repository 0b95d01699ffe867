package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"time"

	"github.com/senyabanana/quote-service/internal/models"
	"github.com/senyabanana/quote-service/internal/payments"
	"github.com/senyabanana/quote-service/internal/repository"
)

const (
	// DefaultCommissionRate - доля платформы от цены принятого предложения.
	DefaultCommissionRate = 0.10
	// DefaultProcessorTimeout ограничивает обращение к платежному провайдеру.
	DefaultProcessorTimeout = 10 * time.Second
)

// EscrowService считает комиссию по принятому предложению и создает платеж.
type EscrowService struct {
	Offers     repository.OfferRepository
	Requests   repository.RequestRepository
	Payments   repository.PaymentRepository
	Processor  payments.Processor
	Logger     *log.Logger
	Rate       float64
	SuccessURL string
	CancelURL  string
	Timeout    time.Duration
}

// NewEscrowService создает новый экземпляр EscrowService.
func NewEscrowService(offers repository.OfferRepository, requests repository.RequestRepository, paymentRepo repository.PaymentRepository, processor payments.Processor, logger *log.Logger, rate float64, successUrl, cancelUrl string, timeout time.Duration) *EscrowService {
	if rate <= 0 {
		rate = DefaultCommissionRate
	}
	if timeout <= 0 {
		timeout = DefaultProcessorTimeout
	}
	return &EscrowService{
		Offers:     offers,
		Requests:   requests,
		Payments:   paymentRepo,
		Processor:  processor,
		Logger:     logger,
		Rate:       rate,
		SuccessURL: successUrl,
		CancelURL:  cancelUrl,
		Timeout:    timeout,
	}
}

// ComputeCommission возвращает комиссию платформы в минорных единицах валюты.
// Округление до целых центов выполняется один раз, чтобы провайдеру
// не передавались дробные суммы.
func (s *EscrowService) ComputeCommission(price float64) int64 {
	return int64(math.Round(price * s.Rate * 100))
}

// AcceptOffer принимает предложение и создает платеж комиссии.
// Конфликт по уже оплаченной заявке проверяется до каких-либо изменений,
// затем перевод SENT -> ACCEPTED выполняется атомарно на стороне хранилища:
// из конкурентных вызовов ровно один проходит дальше, остальные получают
// конфликт и никаких эффектов не производят. Если провайдер недоступен,
// платеж помечается FAILED, предложение возвращается в SENT, и принятие
// можно повторить.
func (s *EscrowService) AcceptOffer(ctx context.Context, offerId string) (*models.Payment, string, error) {
	if offerId == "" {
		return nil, "", models.NewErrorResponse(http.StatusBadRequest, "missing required parameter: offerId")
	}

	offer, err := s.Offers.GetOffer(ctx, offerId)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", models.NewErrorResponse(http.StatusNotFound, "offer not found")
		}
		return nil, "", err
	}

	activeStatuses := []string{string(models.PendingPayment), string(models.CompletedPayment)}
	existing, err := s.Payments.ListByRequest(ctx, offer.RequestId, activeStatuses)
	if err != nil {
		return nil, "", err
	}
	if len(existing) > 0 {
		return nil, "", models.NewErrorResponse(http.StatusConflict, "request already has an active payment")
	}

	accepted, err := s.Offers.AcceptOffer(ctx, offerId)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", models.NewErrorResponse(http.StatusNotFound, "offer not found")
		}
		if errors.Is(err, repository.ErrOfferTaken) {
			return nil, "", models.NewErrorResponse(http.StatusConflict, "offer is already accepted")
		}
		return nil, "", err
	}

	request, err := s.Requests.GetRequest(ctx, accepted.RequestId)
	if err != nil {
		return nil, "", err
	}

	minorUnits := s.ComputeCommission(accepted.Price)
	payment, err := s.Payments.CreatePayment(ctx, models.PaymentRequest{
		RequestId: accepted.RequestId,
		OfferId:   accepted.ID,
		Amount:    float64(minorUnits) / 100,
	})
	if err != nil {
		return nil, "", err
	}

	label := fmt.Sprintf("Commission for request %s (%s)", request.ID, request.Category)
	callCtx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	sessionUrl, err := s.Processor.CreateCheckoutSession(callCtx, minorUnits, label, s.SuccessURL, s.CancelURL)
	if err != nil {
		s.Logger.Printf("checkout session for offer %s failed: %v", accepted.ID, err)
		// Компенсация идет вне контекста запроса: отмена со стороны клиента
		// не должна оставить платеж в PENDING, а предложение - в ACCEPTED.
		cleanupCtx := context.WithoutCancel(ctx)
		if _, failErr := s.Payments.UpdatePaymentStatus(cleanupCtx, payment.ID, models.FailedPayment); failErr != nil {
			s.Logger.Printf("failed to mark payment %s as failed: %v", payment.ID, failErr)
		}
		if _, revertErr := s.Offers.UpdateOfferStatus(cleanupCtx, accepted.ID, models.SentOffer); revertErr != nil {
			s.Logger.Printf("failed to revert offer %s to sent: %v", accepted.ID, revertErr)
		}
		return nil, "", models.NewErrorResponse(http.StatusBadGateway, "payment processor is unavailable")
	}

	if _, err := s.Requests.UpdateRequestStatus(ctx, accepted.RequestId, models.AcceptedRequest); err != nil {
		s.Logger.Printf("failed to mark request %s as accepted: %v", accepted.RequestId, err)
	}
	return payment, sessionUrl, nil
}

// ProcessCallback применяет итоговый статус платежа от платежного провайдера.
func (s *EscrowService) ProcessCallback(ctx context.Context, paymentId, status string) (*models.Payment, error) {
	if paymentId == "" || status == "" {
		return nil, models.NewErrorResponse(http.StatusBadRequest, "missing required parameters: paymentId or status")
	}

	allowedStatuses := map[models.PaymentStatus]bool{
		models.CompletedPayment: true,
		models.FailedPayment:    true,
	}
	if !allowedStatuses[models.PaymentStatus(status)] {
		return nil, models.NewErrorResponse(http.StatusBadRequest, "invalid status, must be either 'COMPLETED' or 'FAILED'")
	}

	payment, err := s.Payments.GetPayment(ctx, paymentId)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, models.NewErrorResponse(http.StatusNotFound, "payment not found")
		}
		return nil, err
	}
	if payment.Status != models.PendingPayment {
		return nil, models.NewErrorResponse(http.StatusConflict, "payment is already finalized")
	}

	return s.Payments.UpdatePaymentStatus(ctx, paymentId, models.PaymentStatus(status))
}
