package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Processor создает платежную сессию у внешнего провайдера.
type Processor interface {
	CreateCheckoutSession(ctx context.Context, amountMinorUnits int64, label, successUrl, cancelUrl string) (string, error)
}

// CheckoutClient - HTTP-клиент платежного провайдера.
type CheckoutClient struct {
	APIURL string
	APIKey string
	Client *http.Client
}

// NewCheckoutClient создает новый экземпляр CheckoutClient.
func NewCheckoutClient(apiUrl, apiKey string) *CheckoutClient {
	return &CheckoutClient{
		APIURL: apiUrl,
		APIKey: apiKey,
		Client: &http.Client{},
	}
}

type checkoutSessionRequest struct {
	Amount     int64  `json:"amount"`
	Currency   string `json:"currency"`
	Label      string `json:"label"`
	SuccessURL string `json:"success_url"`
	CancelURL  string `json:"cancel_url"`
}

type checkoutSessionResponse struct {
	URL string `json:"url"`
}

// CreateCheckoutSession запрашивает сессию оплаты комиссии и возвращает URL
// для редиректа покупателя. Сумма передается в минорных единицах валюты.
func (c *CheckoutClient) CreateCheckoutSession(ctx context.Context, amountMinorUnits int64, label, successUrl, cancelUrl string) (string, error) {
	if c.APIURL == "" || c.APIKey == "" {
		return "", fmt.Errorf("payment processor is not configured: set PAYMENT_API_URL and PAYMENT_API_KEY")
	}

	payload := checkoutSessionRequest{
		Amount:     amountMinorUnits,
		Currency:   "EUR",
		Label:      label,
		SuccessURL: successUrl,
		CancelURL:  cancelUrl,
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.APIURL, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("checkout session request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		if len(body) > 0 {
			return "", fmt.Errorf("checkout session failed: status=%d body=%s", resp.StatusCode, body)
		}
		return "", fmt.Errorf("checkout session failed: status=%d", resp.StatusCode)
	}

	var session checkoutSessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return "", fmt.Errorf("checkout session decode: %w", err)
	}
	if session.URL == "" {
		return "", fmt.Errorf("checkout session response has no url")
	}
	return session.URL, nil
}
