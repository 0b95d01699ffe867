package utils

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/senyabanana/quote-service/internal/models"
)

// SendErrorResponse отправляет ошибку в формате JSON.
func SendErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	errorResponse := models.ErrorResponse{
		StatusCode: statusCode,
		Message:    message,
	}
	if err := json.NewEncoder(w).Encode(errorResponse); err != nil {
		log.Println(err)
	}
}

// ContainsLabel проверяет точное вхождение метки в набор.
// Частичные совпадения и подстроки не считаются.
func ContainsLabel(labels []string, label string) bool {
	for _, l := range labels {
		if l == label {
			return true
		}
	}
	return false
}

// ContainsRequestStatus - функция для проверки перехода у заявок.
func ContainsRequestStatus(validTransitions []models.RequestStatus, newStatus models.RequestStatus) bool {
	for _, validStatus := range validTransitions {
		if validStatus == newStatus {
			return true
		}
	}
	return false
}

// ParseBudget приводит бюджет из произвольного JSON-значения к числу.
// Отсутствующий или пустой бюджет трактуется как 0.
func ParseBudget(raw interface{}) (float64, error) {
	switch v := raw.(type) {
	case nil:
		return 0, nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("budget must be a finite number")
		}
		if v < 0 {
			return 0, fmt.Errorf("budget must be a non-negative number")
		}
		return v, nil
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return 0, nil
		}
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid budget value: %s", v)
		}
		if parsed < 0 {
			return 0, fmt.Errorf("budget must be a non-negative number")
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("invalid budget value")
	}
}

// EncodeOfferToken упаковывает пару (requestId, sellerId) в токен
// для ссылки на форму предложения из письма.
func EncodeOfferToken(requestId, sellerId string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(requestId + "|" + sellerId))
}

// DecodeOfferToken разбирает токен обратно в пару идентификаторов.
func DecodeOfferToken(token string) (string, string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return "", "", fmt.Errorf("malformed token")
	}
	parts := strings.SplitN(string(raw), "|", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("malformed token")
	}
	return parts[0], parts[1], nil
}
