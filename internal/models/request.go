package models

import "time"

// RequestStatus - статус заявки покупателя.
type RequestStatus string

const (
	NewRequest      RequestStatus = "NEW"      // Заявка создана
	SentRequest     RequestStatus = "SENT"     // Рассылка продавцам выполнена
	AcceptedRequest RequestStatus = "ACCEPTED" // Покупатель принял предложение
	ClosedRequest   RequestStatus = "CLOSED"   // Заявка закрыта
)

// Request представляет модель заявки на услугу.
type Request struct {
	ID        string        `json:"id"`
	Category  string        `json:"category"`
	Budget    float64       `json:"budget"`
	Zone      string        `json:"zone"`
	Deadline  string        `json:"deadline"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone"`
	Status    RequestStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}

// RequestInput представляет сырой запрос на создание заявки.
// Budget может прийти числом, строкой или отсутствовать вовсе.
type RequestInput struct {
	Category string      `json:"category"`
	Budget   interface{} `json:"budget"`
	Zone     string      `json:"zone"`
	Deadline string      `json:"deadline"`
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Phone    string      `json:"phone"`
}

// RequestData - проверенные данные заявки для сохранения.
type RequestData struct {
	Category string
	Budget   float64
	Zone     string
	Deadline string
	Name     string
	Email    string
	Phone    string
}

// RequestDetails - заявка вместе с количеством предложений по ней.
type RequestDetails struct {
	Request
	OfferCount int `json:"offerCount"`
}
