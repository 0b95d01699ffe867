package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/senyabanana/quote-service/internal/models"
	"github.com/senyabanana/quote-service/internal/services"
	"github.com/senyabanana/quote-service/internal/utils"
)

// PaymentHandler - структура для обработки HTTP-запросов платежей.
type PaymentHandler struct {
	Service *services.EscrowService
	Logger  *log.Logger
	Timeout time.Duration
}

// NewPaymentHandler создает новый экземпляр PaymentHandler.
func NewPaymentHandler(service *services.EscrowService, logger *log.Logger, timeout time.Duration) *PaymentHandler {
	return &PaymentHandler{
		Service: service,
		Logger:  logger,
		Timeout: timeout,
	}
}

// UpdatePaymentStatus обрабатывает уведомление платежного провайдера
// об итоговом статусе платежа.
func (h *PaymentHandler) UpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	paymentId := r.PathValue("paymentId")

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	payment, err := h.Service.ProcessCallback(ctx, paymentId, body.Status)
	if err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Println(err)
			utils.SendErrorResponse(w, errorResponse.StatusCode, errorResponse.Message)
			return
		}
		h.Logger.Println(err)
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to update payment")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(payment); err != nil {
		h.Logger.Println(err)
	}
}
