package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/rogerio-castellano/product-catalog/internal/models"
)

type PostgresVariationRepository struct {
	db *sql.DB
}

func NewPostgresVariationRepository(db *sql.DB) *PostgresVariationRepository {
	return &PostgresVariationRepository{db: db}
}

func (r *PostgresVariationRepository) Create(v models.ProductVariation) (models.ProductVariation, error) {
	query := `INSERT INTO product_variations
		(product_id, variation_name, color, size, material, unit_price, wholesale_price, stock_quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query,
		v.ProductID, v.VariationName, v.Color, v.Size, v.Material,
		v.UnitPrice, v.WholesalePrice, v.StockQuantity, v.CreatedAt, v.UpdatedAt).Scan(&v.ID)
	return v, err
}

func (r *PostgresVariationRepository) GetByID(id int) (models.ProductVariation, error) {
	query := `SELECT id, product_id, variation_name, color, size, material, unit_price, wholesale_price, stock_quantity, created_at, updated_at
		FROM product_variations WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var v models.ProductVariation
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&v.ID, &v.ProductID, &v.VariationName, &v.Color, &v.Size, &v.Material,
		&v.UnitPrice, &v.WholesalePrice, &v.StockQuantity, &v.CreatedAt, &v.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ProductVariation{}, ErrVariationNotFound
	}
	return v, err
}

func (r *PostgresVariationRepository) GetByProductID(productID int) ([]models.ProductVariation, error) {
	query := `SELECT id, product_id, variation_name, color, size, material, unit_price, wholesale_price, stock_quantity, created_at, updated_at
		FROM product_variations WHERE product_id = $1 ORDER BY id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	variations := []models.ProductVariation{}
	for rows.Next() {
		var v models.ProductVariation
		if err := rows.Scan(
			&v.ID, &v.ProductID, &v.VariationName, &v.Color, &v.Size, &v.Material,
			&v.UnitPrice, &v.WholesalePrice, &v.StockQuantity, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, err
		}
		variations = append(variations, v)
	}
	return variations, rows.Err()
}

func (r *PostgresVariationRepository) Update(v models.ProductVariation) (models.ProductVariation, error) {
	query := `UPDATE product_variations
		SET variation_name = $1, color = $2, size = $3, material = $4, unit_price = $5, wholesale_price = $6, stock_quantity = $7, updated_at = $8
		WHERE id = $9`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query,
		v.VariationName, v.Color, v.Size, v.Material,
		v.UnitPrice, v.WholesalePrice, v.StockQuantity, v.UpdatedAt, v.ID)
	if err != nil {
		return models.ProductVariation{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.ProductVariation{}, ErrVariationNotFound
	}
	return v, nil
}

func (r *PostgresVariationRepository) Delete(id int) error {
	query := `DELETE FROM product_variations WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
