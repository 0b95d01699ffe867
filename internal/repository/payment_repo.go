package repository

import (
	"context"
	"errors"
	"time"

	"github.com/senyabanana/quote-service/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

// PaymentRepository - интерфейс для работы с платежами комиссии.
type PaymentRepository interface {
	CreatePayment(ctx context.Context, paymentReq models.PaymentRequest) (*models.Payment, error)
	GetPayment(ctx context.Context, paymentId string) (*models.Payment, error)
	ListByRequest(ctx context.Context, requestId string, statuses []string) ([]models.Payment, error)
	UpdatePaymentStatus(ctx context.Context, paymentId string, status models.PaymentStatus) (*models.Payment, error)
}

// PostgresPaymentRepository - реализация PaymentRepository для базы данных.
type PostgresPaymentRepository struct {
	DB *pgxpool.Pool
}

// NewPostgresPaymentRepository создает новый экземпляр PostgresPaymentRepository.
func NewPostgresPaymentRepository(db *pgxpool.Pool) *PostgresPaymentRepository {
	return &PostgresPaymentRepository{DB: db}
}

// CreatePayment создает новый платеж со статусом PENDING.
func (r *PostgresPaymentRepository) CreatePayment(ctx context.Context, paymentReq models.PaymentRequest) (*models.Payment, error) {
	newPayment := models.Payment{
		ID:        uuid.New().String(),
		RequestId: paymentReq.RequestId,
		OfferId:   paymentReq.OfferId,
		Amount:    paymentReq.Amount,
		Status:    models.PendingPayment,
		CreatedAt: time.Now().UTC(),
	}
	insertQuery := `INSERT INTO payment (id, request_id, offer_id, amount, status, created_at)
                   VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.DB.Exec(
		ctx,
		insertQuery,
		newPayment.ID,
		newPayment.RequestId,
		newPayment.OfferId,
		newPayment.Amount,
		newPayment.Status,
		newPayment.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &newPayment, nil
}

// GetPayment возвращает платеж по id.
func (r *PostgresPaymentRepository) GetPayment(ctx context.Context, paymentId string) (*models.Payment, error) {
	var payment models.Payment
	query := `SELECT id, request_id, offer_id, amount, status, created_at
	          FROM payment WHERE id = $1`
	err := r.DB.QueryRow(ctx, query, paymentId).Scan(
		&payment.ID,
		&payment.RequestId,
		&payment.OfferId,
		&payment.Amount,
		&payment.Status,
		&payment.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &payment, nil
}

// ListByRequest возвращает платежи по заявке с любым из указанных статусов.
func (r *PostgresPaymentRepository) ListByRequest(ctx context.Context, requestId string, statuses []string) ([]models.Payment, error) {
	query := `SELECT id, request_id, offer_id, amount, status, created_at
	          FROM payment WHERE request_id = $1 AND status = ANY($2) ORDER BY created_at`
	rows, err := r.DB.Query(ctx, query, requestId, pq.Array(statuses))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requestPayments []models.Payment
	for rows.Next() {
		var payment models.Payment
		if err := rows.Scan(
			&payment.ID,
			&payment.RequestId,
			&payment.OfferId,
			&payment.Amount,
			&payment.Status,
			&payment.CreatedAt); err != nil {
			return nil, err
		}
		requestPayments = append(requestPayments, payment)
	}
	return requestPayments, nil
}

// UpdatePaymentStatus меняет статус платежа и возвращает обновленную запись.
func (r *PostgresPaymentRepository) UpdatePaymentStatus(ctx context.Context, paymentId string, status models.PaymentStatus) (*models.Payment, error) {
	var updatedPayment models.Payment
	updateQuery := `UPDATE payment SET status = $1 WHERE id = $2
	                RETURNING id, request_id, offer_id, amount, status, created_at`
	err := r.DB.QueryRow(ctx, updateQuery, status, paymentId).Scan(
		&updatedPayment.ID,
		&updatedPayment.RequestId,
		&updatedPayment.OfferId,
		&updatedPayment.Amount,
		&updatedPayment.Status,
		&updatedPayment.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &updatedPayment, nil
}
