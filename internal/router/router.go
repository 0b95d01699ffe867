package router

import (
	"net/http"

	"github.com/senyabanana/quote-service/internal/handlers"
)

func InitRoutes(sellerHandler *handlers.SellerHandler, requestHandler *handlers.RequestHandler, offerHandler *handlers.OfferHandler, paymentHandler *handlers.PaymentHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/ping", handlers.PingHandler)

	mux.HandleFunc("/api/sellers/new", sellerHandler.CreateSeller)
	mux.HandleFunc("PUT /api/sellers/{sellerId}/active", sellerHandler.SetSellerActive)

	mux.HandleFunc("/api/requests/new", requestHandler.CreateRequest)
	mux.HandleFunc("GET /api/requests/{requestId}", requestHandler.GetRequest)

	mux.HandleFunc("/api/offers/new", offerHandler.SubmitOffer)
	mux.HandleFunc("/api/offers/form", offerHandler.ResolveForm)
	mux.HandleFunc("GET /api/offers/{requestId}/list", offerHandler.ListOffers)
	mux.HandleFunc("POST /api/offers/{offerId}/accept", offerHandler.AcceptOffer)

	mux.HandleFunc("POST /api/payments/{paymentId}/status", paymentHandler.UpdatePaymentStatus)

	return mux
}
