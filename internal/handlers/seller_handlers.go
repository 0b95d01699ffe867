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

// SellerHandler - структура для обработки HTTP-запросов продавцов.
type SellerHandler struct {
	Service *services.SellerService
	Logger  *log.Logger
	Timeout time.Duration
}

// NewSellerHandler создает новый экземпляр SellerHandler.
func NewSellerHandler(service *services.SellerService, logger *log.Logger, timeout time.Duration) *SellerHandler {
	return &SellerHandler{
		Service: service,
		Logger:  logger,
		Timeout: timeout,
	}
}

// CreateSeller обрабатывает запросы для регистрации продавца.
func (h *SellerHandler) CreateSeller(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only POST is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	var sellerReq models.SellerRequest
	err := json.NewDecoder(r.Body).Decode(&sellerReq)
	if err != nil {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	seller, err := h.Service.CreateSeller(ctx, sellerReq)
	if err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Println(err)
			utils.SendErrorResponse(w, errorResponse.StatusCode, errorResponse.Message)
			return
		}
		h.Logger.Println(err)
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to create seller")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(seller); err != nil {
		h.Logger.Println(err)
	}
}

// SetSellerActive обрабатывает запросы на включение и выключение продавца.
func (h *SellerHandler) SetSellerActive(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	sellerId := r.PathValue("sellerId")

	var body struct {
		Active bool `json:"active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	seller, err := h.Service.SetSellerActive(ctx, sellerId, body.Active)
	if err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Println(err)
			utils.SendErrorResponse(w, errorResponse.StatusCode, errorResponse.Message)
			return
		}
		h.Logger.Println(err)
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to update seller")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(seller); err != nil {
		h.Logger.Println(err)
	}
}
