package repo

import "github.com/rogerio-castellano/product-catalog/internal/models"

// CategoryRepository defines the interface for category data operations.
type CategoryRepository interface {
	Create(category models.Category) (models.Category, error)
	GetAll() ([]models.Category, error)
	GetByID(id int) (models.Category, error)
	Update(category models.Category) (models.Category, error)
	// Delete removes a category. Deleting an absent id is a no-op.
	// Product links referencing the category are not touched; readers
	// must tolerate dangling links.
	Delete(id int) error
}
