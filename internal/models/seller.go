package models

import "time"

// SellerPlan - тарифный план продавца.
type SellerPlan string

const (
	BasicPlan SellerPlan = "BASIC" // Базовый тариф
	ProPlan   SellerPlan = "PRO"   // Расширенный тариф
)

// Seller представляет модель продавца.
type Seller struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone"`
	Categories []string   `json:"categories"`
	Zones      []string   `json:"zones"`
	Plan       SellerPlan `json:"plan"`
	Active     bool       `json:"active"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// SellerRequest представляет структуру запроса для регистрации продавца.
type SellerRequest struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	Categories []string `json:"categories"`
	Zones      []string `json:"zones"`
	Plan       string   `json:"plan"`
}
