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

// OfferHandler - структура для обработки HTTP-запросов предложений.
type OfferHandler struct {
	Service *services.OfferService
	Escrow  *services.EscrowService
	Logger  *log.Logger
	Timeout time.Duration
}

// NewOfferHandler создает новый экземпляр OfferHandler.
func NewOfferHandler(service *services.OfferService, escrow *services.EscrowService, logger *log.Logger, timeout time.Duration) *OfferHandler {
	return &OfferHandler{
		Service: service,
		Escrow:  escrow,
		Logger:  logger,
		Timeout: timeout,
	}
}

// SubmitOffer обрабатывает запросы для создания предложения.
func (h *OfferHandler) SubmitOffer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only POST is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	var offerReq models.OfferRequest
	err := json.NewDecoder(r.Body).Decode(&offerReq)
	if err != nil {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	newOffer, err := h.Service.SubmitOffer(ctx, offerReq)
	if err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Println(err)
			utils.SendErrorResponse(w, errorResponse.StatusCode, errorResponse.Message)
			return
		}
		h.Logger.Println(err)
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to create offer")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(newOffer); err != nil {
		h.Logger.Println(err)
	}
}

// ListOffers обрабатывает запросы для получения предложений по заявке.
func (h *OfferHandler) ListOffers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	requestId := r.PathValue("requestId")

	offers, err := h.Service.ListOffers(ctx, requestId)
	if err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Println(err)
			utils.SendErrorResponse(w, errorResponse.StatusCode, errorResponse.Message)
			return
		}
		h.Logger.Println(err)
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to fetch offers")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(offers); err != nil {
		h.Logger.Println(err)
	}
}

// ResolveForm обрабатывает переход продавца по ссылке из письма.
func (h *OfferHandler) ResolveForm(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only GET is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	token := r.URL.Query().Get("token")

	form, err := h.Service.ResolveFormToken(ctx, token)
	if err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Println(err)
			utils.SendErrorResponse(w, errorResponse.StatusCode, errorResponse.Message)
			return
		}
		h.Logger.Println(err)
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to resolve offer form")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(form); err != nil {
		h.Logger.Println(err)
	}
}

// AcceptOffer обрабатывает принятие предложения покупателем.
func (h *OfferHandler) AcceptOffer(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	offerId := r.PathValue("offerId")

	payment, redirectUrl, err := h.Escrow.AcceptOffer(ctx, offerId)
	if err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Println(err)
			utils.SendErrorResponse(w, errorResponse.StatusCode, errorResponse.Message)
			return
		}
		h.Logger.Println(err)
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to accept offer")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	response := models.AcceptResponse{Payment: *payment, RedirectURL: redirectUrl}
	if err = json.NewEncoder(w).Encode(response); err != nil {
		h.Logger.Println(err)
	}
}
