package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rogerio-castellano/product-catalog/internal/models"
)

type PostgresProductRepository struct {
	db *sql.DB
}

func NewPostgresProductRepository(db *sql.DB) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

// Create inserts the product and its category links in one transaction.
// Every category id is verified inside the transaction before any link
// row is written, so a missing category rolls back the product insert
// as well.
func (r *PostgresProductRepository) Create(p models.Product, categoryIDs []int) (models.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Product{}, err
	}
	defer tx.Rollback()

	query := `INSERT INTO products (name, description, image_url, created_at, updated_at) VALUES ($1, $2, $3, $4, $5) RETURNING id`
	if err := tx.QueryRowContext(ctx, query, p.Name, p.Description, p.ImageURL, p.CreatedAt, p.UpdatedAt).Scan(&p.ID); err != nil {
		return models.Product{}, err
	}

	if err := insertLinks(ctx, tx, p.ID, categoryIDs); err != nil {
		return models.Product{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

func (r *PostgresProductRepository) GetAll() ([]models.Product, error) {
	query := `SELECT id, name, description, image_url, created_at, updated_at FROM products ORDER BY id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *PostgresProductRepository) GetByID(id int) (models.Product, error) {
	query := `SELECT id, name, description, image_url, created_at, updated_at FROM products WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var p models.Product
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Name, &p.Description, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

// Update writes the product row and, when categoryIDs is non-nil,
// replaces the whole association set (delete then insert) in the same
// transaction. A nil categoryIDs leaves associations untouched.
func (r *PostgresProductRepository) Update(p models.Product, categoryIDs []int) (models.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Product{}, err
	}
	defer tx.Rollback()

	query := `UPDATE products SET name = $1, description = $2, image_url = $3, updated_at = $4 WHERE id = $5`
	res, err := tx.ExecContext(ctx, query, p.Name, p.Description, p.ImageURL, p.UpdatedAt, p.ID)
	if err != nil {
		return models.Product{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Product{}, ErrProductNotFound
	}

	if categoryIDs != nil {
		if _, err := tx.ExecContext(ctx, `DELETE FROM product_categories WHERE product_id = $1`, p.ID); err != nil {
			return models.Product{}, err
		}
		if err := insertLinks(ctx, tx, p.ID, categoryIDs); err != nil {
			return models.Product{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

// Delete cascades through variations and category links before removing
// the product row, all in one transaction. The schema would cascade on
// its own, but the explicit ordered deletes keep the behavior identical
// across backing stores. Missing ids affect zero rows and succeed.
func (r *PostgresProductRepository) Delete(id int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM product_variations WHERE product_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM product_categories WHERE product_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id); err != nil {
		return err
	}
	return tx.Commit()
}

// CategoriesOf resolves the categories linked to a product. The inner
// join naturally omits links whose category no longer exists.
func (r *PostgresProductRepository) CategoriesOf(productID int) ([]models.Category, error) {
	query := `SELECT c.id, c.name, c.description, c.created_at
		FROM categories c
		JOIN product_categories pc ON pc.category_id = c.id
		WHERE pc.product_id = $1
		ORDER BY c.id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func insertLinks(ctx context.Context, tx *sql.Tx, productID int, categoryIDs []int) error {
	for _, cid := range categoryIDs {
		var exists bool
		if err := tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM categories WHERE id = $1)`, cid).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return &MissingCategoryError{ID: cid}
		}
	}
	for _, cid := range categoryIDs {
		if _, err := tx.ExecContext(ctx, `INSERT INTO product_categories (product_id, category_id) VALUES ($1, $2)`, productID, cid); err != nil {
			return fmt.Errorf("linking category %d: %w", cid, err)
		}
	}
	return nil
}
