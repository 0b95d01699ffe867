package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/senyabanana/quote-service/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SellerRepository - интерфейс для работы с продавцами.
type SellerRepository interface {
	CreateSeller(ctx context.Context, sellerReq models.SellerRequest) (*models.Seller, error)
	GetSeller(ctx context.Context, sellerId string) (*models.Seller, error)
	ListActiveSellers(ctx context.Context) ([]models.Seller, error)
	SetSellerActive(ctx context.Context, sellerId string, active bool) (*models.Seller, error)
}

// PostgresSellerRepository - реализация SellerRepository для базы данных.
type PostgresSellerRepository struct {
	DB *pgxpool.Pool
}

// NewPostgresSellerRepository создает новый экземпляр PostgresSellerRepository.
func NewPostgresSellerRepository(db *pgxpool.Pool) *PostgresSellerRepository {
	return &PostgresSellerRepository{DB: db}
}

// joinLabels собирает набор меток в строку для хранения.
// Наборы сериализуются только на границе хранилища.
func joinLabels(labels []string) string {
	cleaned := make([]string, 0, len(labels))
	for _, label := range labels {
		label = strings.TrimSpace(label)
		if label != "" {
			cleaned = append(cleaned, label)
		}
	}
	return strings.Join(cleaned, ",")
}

// splitLabels разбирает хранимую строку обратно в набор меток.
func splitLabels(joined string) []string {
	var labels []string
	for _, label := range strings.Split(joined, ",") {
		label = strings.TrimSpace(label)
		if label != "" {
			labels = append(labels, label)
		}
	}
	return labels
}

// CreateSeller регистрирует нового продавца.
func (r *PostgresSellerRepository) CreateSeller(ctx context.Context, sellerReq models.SellerRequest) (*models.Seller, error) {
	plan := models.SellerPlan(sellerReq.Plan)
	if plan == "" {
		plan = models.BasicPlan
	}
	newSeller := models.Seller{
		ID:         uuid.New().String(),
		Name:       sellerReq.Name,
		Email:      sellerReq.Email,
		Phone:      sellerReq.Phone,
		Categories: sellerReq.Categories,
		Zones:      sellerReq.Zones,
		Plan:       plan,
		Active:     true,
		CreatedAt:  time.Now().UTC(),
	}
	insertQuery := `INSERT INTO seller (id, name, email, phone, categories, zones, plan, active, created_at)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.DB.Exec(
		ctx,
		insertQuery,
		newSeller.ID,
		newSeller.Name,
		newSeller.Email,
		newSeller.Phone,
		joinLabels(newSeller.Categories),
		joinLabels(newSeller.Zones),
		newSeller.Plan,
		newSeller.Active,
		newSeller.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &newSeller, nil
}

// GetSeller возвращает продавца по id.
func (r *PostgresSellerRepository) GetSeller(ctx context.Context, sellerId string) (*models.Seller, error) {
	var seller models.Seller
	var categories, zones string
	query := `SELECT id, name, email, phone, categories, zones, plan, active, created_at
	          FROM seller WHERE id = $1`
	err := r.DB.QueryRow(ctx, query, sellerId).Scan(
		&seller.ID,
		&seller.Name,
		&seller.Email,
		&seller.Phone,
		&categories,
		&zones,
		&seller.Plan,
		&seller.Active,
		&seller.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	seller.Categories = splitLabels(categories)
	seller.Zones = splitLabels(zones)
	return &seller, nil
}

// ListActiveSellers возвращает активных продавцов в порядке их регистрации.
func (r *PostgresSellerRepository) ListActiveSellers(ctx context.Context) ([]models.Seller, error) {
	query := `SELECT id, name, email, phone, categories, zones, plan, active, created_at
	          FROM seller WHERE active = TRUE ORDER BY created_at`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sellers []models.Seller
	for rows.Next() {
		var seller models.Seller
		var categories, zones string
		if err := rows.Scan(
			&seller.ID,
			&seller.Name,
			&seller.Email,
			&seller.Phone,
			&categories,
			&zones,
			&seller.Plan,
			&seller.Active,
			&seller.CreatedAt); err != nil {
			return nil, err
		}
		seller.Categories = splitLabels(categories)
		seller.Zones = splitLabels(zones)
		sellers = append(sellers, seller)
	}
	return sellers, nil
}

// SetSellerActive включает или выключает продавца в выдаче подбора.
func (r *PostgresSellerRepository) SetSellerActive(ctx context.Context, sellerId string, active bool) (*models.Seller, error) {
	updateQuery := `UPDATE seller SET active = $1 WHERE id = $2`
	tag, err := r.DB.Exec(ctx, updateQuery, active, sellerId)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrNotFound
	}
	return r.GetSeller(ctx, sellerId)
}
