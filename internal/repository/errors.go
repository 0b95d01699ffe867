package repository

import "errors"

// Сигнальные ошибки хранилища. Сервисный слой переводит их в ErrorResponse.
var (
	// ErrNotFound возвращается, когда запись с указанным id отсутствует.
	ErrNotFound = errors.New("record not found")
	// ErrOfferTaken возвращается, когда предложение уже вышло из статуса SENT.
	ErrOfferTaken = errors.New("offer is no longer available for acceptance")
)
