package services

import (
	"fmt"
	"log"
	"strings"

	"github.com/senyabanana/quote-service/internal/mailer"
	"github.com/senyabanana/quote-service/internal/models"
	"github.com/senyabanana/quote-service/internal/utils"
)

// DeliveryResult - результат отправки уведомления одному продавцу.
type DeliveryResult struct {
	SellerId  string `json:"sellerId"`
	Email     string `json:"email"`
	Delivered bool   `json:"delivered"`
	Reason    string `json:"reason,omitempty"`
}

// NotificationService рассылает уведомления о новой заявке подобранным продавцам.
type NotificationService struct {
	Transport mailer.Transport
	Logger    *log.Logger
	BaseURL   string
}

// NewNotificationService создает новый экземпляр NotificationService.
func NewNotificationService(transport mailer.Transport, logger *log.Logger, baseUrl string) *NotificationService {
	return &NotificationService{
		Transport: transport,
		Logger:    logger,
		BaseURL:   baseUrl,
	}
}

// NotifySellers последовательно отправляет письмо каждому продавцу.
// Ошибка доставки одному продавцу фиксируется в отчете и не прерывает
// рассылку остальным; повторная отправка не выполняется.
func (s *NotificationService) NotifySellers(request *models.Request, sellers []models.Seller) []DeliveryResult {
	results := make([]DeliveryResult, 0, len(sellers))
	subject := fmt.Sprintf("New request in %s", request.Category)

	for _, seller := range sellers {
		result := DeliveryResult{SellerId: seller.ID, Email: seller.Email, Delivered: true}
		if err := s.Transport.Send(seller.Email, subject, s.composeMessage(request, seller)); err != nil {
			result.Delivered = false
			result.Reason = err.Error()
			s.Logger.Printf("notification to seller %s failed: %v", seller.ID, err)
		}
		results = append(results, result)
	}
	return results
}

// composeMessage собирает тело письма с деталями заявки и ссылкой
// на форму подачи предложения для конкретного продавца.
func (s *NotificationService) composeMessage(request *models.Request, seller models.Seller) string {
	link := fmt.Sprintf("%s/api/offers/form?token=%s",
		strings.TrimRight(s.BaseURL, "/"),
		utils.EncodeOfferToken(request.ID, seller.ID))

	var b strings.Builder
	b.WriteString("<html><body>")
	b.WriteString(fmt.Sprintf("<p>%s is looking for a %s service provider.</p>", request.Name, request.Category))
	b.WriteString("<ul>")
	b.WriteString(fmt.Sprintf("<li>Category: %s</li>", request.Category))
	b.WriteString(fmt.Sprintf("<li>Budget: %.2f</li>", request.Budget))
	b.WriteString(fmt.Sprintf("<li>Zone: %s</li>", request.Zone))
	b.WriteString(fmt.Sprintf("<li>Deadline: %s</li>", request.Deadline))
	b.WriteString("</ul>")
	b.WriteString(fmt.Sprintf("<p><a href=\"%s\">Submit your offer</a></p>", link))
	b.WriteString("</body></html>")
	return b.String()
}
