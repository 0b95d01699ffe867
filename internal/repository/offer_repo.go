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

// OfferRepository - интерфейс для работы с предложениями.
type OfferRepository interface {
	CreateOffer(ctx context.Context, offerReq models.OfferRequest) (*models.Offer, error)
	GetOffer(ctx context.Context, offerId string) (*models.Offer, error)
	ListForRequest(ctx context.Context, requestId string, limit int) ([]models.OfferView, error)
	CountForRequest(ctx context.Context, requestId string) (int, error)
	AcceptOffer(ctx context.Context, offerId string) (*models.Offer, error)
	UpdateOfferStatus(ctx context.Context, offerId string, status models.OfferStatus) (*models.Offer, error)
}

// PostgresOfferRepository - реализация OfferRepository для базы данных.
type PostgresOfferRepository struct {
	DB *pgxpool.Pool
}

// NewPostgresOfferRepository создает новый экземпляр PostgresOfferRepository.
func NewPostgresOfferRepository(db *pgxpool.Pool) *PostgresOfferRepository {
	return &PostgresOfferRepository{DB: db}
}

// CreateOffer создает новое предложение со статусом SENT.
func (r *PostgresOfferRepository) CreateOffer(ctx context.Context, offerReq models.OfferRequest) (*models.Offer, error) {
	newOffer := models.Offer{
		ID:        uuid.New().String(),
		RequestId: offerReq.RequestId,
		SellerId:  offerReq.SellerId,
		Price:     offerReq.Price,
		Delay:     offerReq.Delay,
		Status:    models.SentOffer,
		CreatedAt: time.Now().UTC(),
	}
	insertQuery := `INSERT INTO offer (id, request_id, seller_id, price, delay, status, created_at)
                   VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.DB.Exec(
		ctx,
		insertQuery,
		newOffer.ID,
		newOffer.RequestId,
		newOffer.SellerId,
		newOffer.Price,
		newOffer.Delay,
		newOffer.Status,
		newOffer.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &newOffer, nil
}

// GetOffer возвращает предложение по id.
func (r *PostgresOfferRepository) GetOffer(ctx context.Context, offerId string) (*models.Offer, error) {
	var offer models.Offer
	query := `SELECT id, request_id, seller_id, price, delay, status, created_at
	          FROM offer WHERE id = $1`
	err := r.DB.QueryRow(ctx, query, offerId).Scan(
		&offer.ID,
		&offer.RequestId,
		&offer.SellerId,
		&offer.Price,
		&offer.Delay,
		&offer.Status,
		&offer.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &offer, nil
}

// ListForRequest возвращает предложения по заявке в порядке поступления,
// не больше limit штук, вместе с именем продавца.
func (r *PostgresOfferRepository) ListForRequest(ctx context.Context, requestId string, limit int) ([]models.OfferView, error) {
	query := `
		SELECT o.id, o.request_id, o.seller_id, o.price, o.delay, o.status, o.created_at, s.name
		FROM offer o
		JOIN seller s ON s.id = o.seller_id
		WHERE o.request_id = $1
		ORDER BY o.created_at
		LIMIT $2`
	rows, err := r.DB.Query(ctx, query, requestId, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var offers []models.OfferView
	for rows.Next() {
		var view models.OfferView
		if err := rows.Scan(
			&view.ID,
			&view.RequestId,
			&view.SellerId,
			&view.Price,
			&view.Delay,
			&view.Status,
			&view.CreatedAt,
			&view.SellerName); err != nil {
			return nil, err
		}
		offers = append(offers, view)
	}
	return offers, nil
}

// CountForRequest возвращает общее количество предложений по заявке.
func (r *PostgresOfferRepository) CountForRequest(ctx context.Context, requestId string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM offer WHERE request_id = $1`
	err := r.DB.QueryRow(ctx, query, requestId).Scan(&count)
	return count, err
}

// AcceptOffer атомарно переводит предложение SENT -> ACCEPTED.
// Условие по статусу в WHERE гарантирует, что из конкурентных вызовов
// пройдет ровно один.
func (r *PostgresOfferRepository) AcceptOffer(ctx context.Context, offerId string) (*models.Offer, error) {
	var acceptedOffer models.Offer
	updateQuery := `UPDATE offer SET status = $1 WHERE id = $2 AND status = $3
	                RETURNING id, request_id, seller_id, price, delay, status, created_at`
	err := r.DB.QueryRow(ctx, updateQuery, models.AcceptedOffer, offerId, models.SentOffer).Scan(
		&acceptedOffer.ID,
		&acceptedOffer.RequestId,
		&acceptedOffer.SellerId,
		&acceptedOffer.Price,
		&acceptedOffer.Delay,
		&acceptedOffer.Status,
		&acceptedOffer.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			var exists bool
			existsQuery := `SELECT EXISTS(SELECT 1 FROM offer WHERE id = $1)`
			if checkErr := r.DB.QueryRow(ctx, existsQuery, offerId).Scan(&exists); checkErr != nil {
				return nil, checkErr
			}
			if exists {
				return nil, ErrOfferTaken
			}
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &acceptedOffer, nil
}

// UpdateOfferStatus меняет статус предложения и возвращает обновленную запись.
func (r *PostgresOfferRepository) UpdateOfferStatus(ctx context.Context, offerId string, status models.OfferStatus) (*models.Offer, error) {
	var updatedOffer models.Offer
	updateQuery := `UPDATE offer SET status = $1 WHERE id = $2
	                RETURNING id, request_id, seller_id, price, delay, status, created_at`
	err := r.DB.QueryRow(ctx, updateQuery, status, offerId).Scan(
		&updatedOffer.ID,
		&updatedOffer.RequestId,
		&updatedOffer.SellerId,
		&updatedOffer.Price,
		&updatedOffer.Delay,
		&updatedOffer.Status,
		&updatedOffer.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &updatedOffer, nil
}
