package models

// ErrorResponse описывает доменную ошибку с HTTP-кодом и сообщением для клиента.
type ErrorResponse struct {
	StatusCode int    `json:"-"`
	Message    string `json:"reason"`
}

// NewErrorResponse создает новую ошибку с кодом и сообщением.
func NewErrorResponse(statusCode int, message string) *ErrorResponse {
	return &ErrorResponse{
		StatusCode: statusCode,
		Message:    message,
	}
}

// Error реализует интерфейс error.
func (e *ErrorResponse) Error() string {
	return e.Message
}
