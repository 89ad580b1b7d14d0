package repo

import "github.com/rogerio-castellano/product-catalog/internal/models"

// ProductRepository defines the interface for product data operations,
// including the product↔category association.
//
// The categoryIDs arguments distinguish nil from an empty slice: nil
// leaves existing associations untouched, an empty non-nil slice clears
// them. Every multi-row operation is atomic: a missing category id
// fails the whole call before any link row is written.
type ProductRepository interface {
	Create(product models.Product, categoryIDs []int) (models.Product, error)
	GetAll() ([]models.Product, error)
	GetByID(id int) (models.Product, error)
	Update(product models.Product, categoryIDs []int) (models.Product, error)
	// Delete removes the product together with all of its variations
	// and category links in one atomic cascade. Deleting an absent id
	// is a no-op.
	Delete(id int) error
	// CategoriesOf resolves the categories linked to a product,
	// omitting links whose category no longer exists.
	CategoriesOf(productID int) ([]models.Category, error)
}
