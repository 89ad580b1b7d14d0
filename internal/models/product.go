package models

import "time"

// Product represents a product entity in the catalog.
type Product struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	ImageURL    *string   `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductCategory links a product to a category. It carries no
// attributes beyond the two foreign keys.
type ProductCategory struct {
	ProductID  int `json:"product_id"`
	CategoryID int `json:"category_id"`
}

// ProductWithRelations is the denormalized read view of a product:
// the product row plus its resolved categories and variations.
type ProductWithRelations struct {
	Product
	Categories []Category         `json:"categories"`
	Variations []ProductVariation `json:"variations"`
}
