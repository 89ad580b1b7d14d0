package repo

import "github.com/rogerio-castellano/product-catalog/internal/models"

// VariationRepository defines the interface for product variation data
// operations. Callers must verify the parent product exists before
// Create; the repository does not guarantee foreign-key rejection.
type VariationRepository interface {
	Create(variation models.ProductVariation) (models.ProductVariation, error)
	GetByID(id int) (models.ProductVariation, error)
	GetByProductID(productID int) ([]models.ProductVariation, error)
	Update(variation models.ProductVariation) (models.ProductVariation, error)
	// Delete removes a variation. Deleting an absent id is a no-op.
	Delete(id int) error
}
