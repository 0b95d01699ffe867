package models

import "time"

// PaymentStatus - статус платежа комиссии.
type PaymentStatus string

const (
	PendingPayment   PaymentStatus = "PENDING"   // Платеж создан, ждет оплаты
	CompletedPayment PaymentStatus = "COMPLETED" // Платеж подтвержден провайдером
	FailedPayment    PaymentStatus = "FAILED"    // Платеж не состоялся
)

// Payment представляет модель платежа комиссии платформы.
type Payment struct {
	ID        string        `json:"id"`
	RequestId string        `json:"requestId"`
	OfferId   string        `json:"offerId"`
	Amount    float64       `json:"amount"`
	Status    PaymentStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}

// PaymentRequest представляет структуру запроса для создания платежа.
type PaymentRequest struct {
	RequestId string
	OfferId   string
	Amount    float64
}

// AcceptResponse - результат принятия предложения: платеж и ссылка на оплату.
type AcceptResponse struct {
	Payment     Payment `json:"payment"`
	RedirectURL string  `json:"redirectUrl"`
}
