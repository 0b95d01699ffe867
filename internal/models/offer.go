package models

import "time"

// OfferStatus - статус предложения продавца.
type OfferStatus string

const (
	SentOffer     OfferStatus = "SENT"     // Предложение отправлено покупателю
	AcceptedOffer OfferStatus = "ACCEPTED" // Предложение принято покупателем
	RejectedOffer OfferStatus = "REJECTED" // Предложение отклонено
)

// Offer представляет модель предложения продавца по заявке.
type Offer struct {
	ID        string      `json:"id"`
	RequestId string      `json:"requestId"`
	SellerId  string      `json:"sellerId"`
	Price     float64     `json:"price"`
	Delay     string      `json:"delay"`
	Status    OfferStatus `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
}

// OfferRequest представляет структуру запроса для создания предложения.
type OfferRequest struct {
	RequestId string  `json:"requestId"`
	SellerId  string  `json:"sellerId"`
	Price     float64 `json:"price"`
	Delay     string  `json:"delay"`
}

// OfferView - предложение вместе с отображаемым именем продавца.
type OfferView struct {
	Offer
	SellerName string `json:"sellerName"`
}

// OfferForm - контекст формы подачи предложения, восстановленный из токена письма.
type OfferForm struct {
	RequestId  string  `json:"requestId"`
	Category   string  `json:"category"`
	Budget     float64 `json:"budget"`
	Zone       string  `json:"zone"`
	Deadline   string  `json:"deadline"`
	BuyerName  string  `json:"buyerName"`
	SellerId   string  `json:"sellerId"`
	SellerName string  `json:"sellerName"`
}
