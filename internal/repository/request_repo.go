package repository

import (
	"context"
	"errors"
	"time"

	"github.com/senyabanana/quote-service/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RequestRepository - интерфейс для работы с заявками.
type RequestRepository interface {
	CreateRequest(ctx context.Context, data models.RequestData) (*models.Request, error)
	GetRequest(ctx context.Context, requestId string) (*models.Request, error)
	UpdateRequestStatus(ctx context.Context, requestId string, status models.RequestStatus) (*models.Request, error)
}

// PostgresRequestRepository - реализация RequestRepository для базы данных.
type PostgresRequestRepository struct {
	DB *pgxpool.Pool
}

// NewPostgresRequestRepository создает новый экземпляр PostgresRequestRepository.
func NewPostgresRequestRepository(db *pgxpool.Pool) *PostgresRequestRepository {
	return &PostgresRequestRepository{DB: db}
}

// CreateRequest создает новую заявку со статусом NEW.
func (r *PostgresRequestRepository) CreateRequest(ctx context.Context, data models.RequestData) (*models.Request, error) {
	newRequest := models.Request{
		ID:        uuid.New().String(),
		Category:  data.Category,
		Budget:    data.Budget,
		Zone:      data.Zone,
		Deadline:  data.Deadline,
		Name:      data.Name,
		Email:     data.Email,
		Phone:     data.Phone,
		Status:    models.NewRequest,
		CreatedAt: time.Now().UTC(),
	}
	insertQuery := `INSERT INTO request (id, category, budget, zone, deadline, name, email, phone, status, created_at)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.DB.Exec(
		ctx,
		insertQuery,
		newRequest.ID,
		newRequest.Category,
		newRequest.Budget,
		newRequest.Zone,
		newRequest.Deadline,
		newRequest.Name,
		newRequest.Email,
		newRequest.Phone,
		newRequest.Status,
		newRequest.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &newRequest, nil
}

// GetRequest возвращает заявку по id.
func (r *PostgresRequestRepository) GetRequest(ctx context.Context, requestId string) (*models.Request, error) {
	var request models.Request
	query := `SELECT id, category, budget, zone, deadline, name, email, phone, status, created_at
	          FROM request WHERE id = $1`
	err := r.DB.QueryRow(ctx, query, requestId).Scan(
		&request.ID,
		&request.Category,
		&request.Budget,
		&request.Zone,
		&request.Deadline,
		&request.Name,
		&request.Email,
		&request.Phone,
		&request.Status,
		&request.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &request, nil
}

// UpdateRequestStatus меняет статус заявки и возвращает обновленную запись.
func (r *PostgresRequestRepository) UpdateRequestStatus(ctx context.Context, requestId string, status models.RequestStatus) (*models.Request, error) {
	var updatedRequest models.Request
	updateQuery := `UPDATE request SET status = $1 WHERE id = $2
	                RETURNING id, category, budget, zone, deadline, name, email, phone, status, created_at`
	err := r.DB.QueryRow(ctx, updateQuery, status, requestId).Scan(
		&updatedRequest.ID,
		&updatedRequest.Category,
		&updatedRequest.Budget,
		&updatedRequest.Zone,
		&updatedRequest.Deadline,
		&updatedRequest.Name,
		&updatedRequest.Email,
		&updatedRequest.Phone,
		&updatedRequest.Status,
		&updatedRequest.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &updatedRequest, nil
}
