// Package catalog implements the catalog's business operations on top
// of the entity repositories: creation, partial update and cascading
// deletion of categories, products and variations, with the invariants
// that span entities enforced here rather than left to the store.
package catalog

import (
	"strings"
	"time"

	"github.com/rogerio-castellano/product-catalog/internal/models"
	"github.com/rogerio-castellano/product-catalog/internal/money"
	"github.com/rogerio-castellano/product-catalog/internal/repo"
)

// Service composes the entity repositories into the catalog's
// multi-entity operations.
type Service struct {
	categories repo.CategoryRepository
	products   repo.ProductRepository
	variations repo.VariationRepository
}

func NewService(categories repo.CategoryRepository, products repo.ProductRepository, variations repo.VariationRepository) *Service {
	return &Service{
		categories: categories,
		products:   products,
		variations: variations,
	}
}

// CreateCategory validates and stores a new category.
func (s *Service) CreateCategory(in CreateCategoryInput) (models.Category, error) {
	verr := &ValidationError{}
	if strings.TrimSpace(in.Name) == "" {
		verr.add("name", "name is required")
	}
	if err := verr.orNil(); err != nil {
		return models.Category{}, err
	}

	return s.categories.Create(models.Category{
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   time.Now().UTC(),
	})
}

// Categories lists all categories in insertion order.
func (s *Service) Categories() ([]models.Category, error) {
	return s.categories.GetAll()
}

// UpdateCategory applies only the fields present in the patch. Returns
// repo.ErrCategoryNotFound if the id is unknown.
func (s *Service) UpdateCategory(id int, patch CategoryPatch) (models.Category, error) {
	c, err := s.categories.GetByID(id)
	if err != nil {
		return models.Category{}, err
	}

	verr := &ValidationError{}
	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			verr.add("name", "name must not be empty")
		} else {
			c.Name = *patch.Name
		}
	}
	if err := verr.orNil(); err != nil {
		return models.Category{}, err
	}
	if patch.Description.Set {
		c.Description = patch.Description.Value
	}

	return s.categories.Update(c)
}

// DeleteCategory removes a category. Unknown ids are a no-op. Products
// linked to the category are not touched; their links are resolved as
// absent from then on.
func (s *Service) DeleteCategory(id int) error {
	return s.categories.Delete(id)
}

// CreateProduct validates the input, stores the product and links it to
// the given categories atomically. A category id that does not exist
// fails the whole operation with *repo.MissingCategoryError before any
// row is written.
func (s *Service) CreateProduct(in CreateProductInput) (models.ProductWithRelations, error) {
	verr := &ValidationError{}
	if strings.TrimSpace(in.Name) == "" {
		verr.add("name", "name is required")
	}
	if in.ImageURL != nil && !validURL(*in.ImageURL) {
		verr.add("image_url", "image_url must be a valid URL")
	}
	if err := verr.orNil(); err != nil {
		return models.ProductWithRelations{}, err
	}

	now := time.Now().UTC()
	created, err := s.products.Create(models.Product{
		Name:        in.Name,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, in.CategoryIDs)
	if err != nil {
		return models.ProductWithRelations{}, err
	}

	categories, err := s.products.CategoriesOf(created.ID)
	if err != nil {
		return models.ProductWithRelations{}, err
	}

	// A product created just now has no variations.
	return models.ProductWithRelations{
		Product:    created,
		Categories: categories,
		Variations: []models.ProductVariation{},
	}, nil
}

// UpdateProduct applies only the fields present in the patch and always
// refreshes updated_at. A non-nil CategoryIDs replaces the whole
// category set; nil leaves associations untouched.
//
// The returned variations list is always empty: this operation does not
// refresh variations, callers must query them separately. This narrow
// contract is deliberate and pinned by tests.
func (s *Service) UpdateProduct(id int, patch ProductPatch) (models.ProductWithRelations, error) {
	p, err := s.products.GetByID(id)
	if err != nil {
		return models.ProductWithRelations{}, err
	}

	verr := &ValidationError{}
	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			verr.add("name", "name must not be empty")
		} else {
			p.Name = *patch.Name
		}
	}
	if patch.ImageURL.Set && patch.ImageURL.Value != nil && !validURL(*patch.ImageURL.Value) {
		verr.add("image_url", "image_url must be a valid URL")
	}
	if err := verr.orNil(); err != nil {
		return models.ProductWithRelations{}, err
	}
	if patch.Description.Set {
		p.Description = patch.Description.Value
	}
	if patch.ImageURL.Set {
		p.ImageURL = patch.ImageURL.Value
	}
	p.UpdatedAt = time.Now().UTC()

	updated, err := s.products.Update(p, patch.CategoryIDs)
	if err != nil {
		return models.ProductWithRelations{}, err
	}

	categories, err := s.products.CategoriesOf(updated.ID)
	if err != nil {
		return models.ProductWithRelations{}, err
	}

	return models.ProductWithRelations{
		Product:    updated,
		Categories: categories,
		Variations: []models.ProductVariation{},
	}, nil
}

// DeleteProduct removes a product with all of its variations and
// category links as one cascade. Unknown ids are a no-op.
func (s *Service) DeleteProduct(id int) error {
	return s.products.Delete(id)
}

// CreateVariation stores a new variation of an existing product. The
// parent product is checked explicitly before the insert since the
// store's foreign-key enforcement cannot be relied upon.
func (s *Service) CreateVariation(in CreateVariationInput) (models.ProductVariation, error) {
	if _, err := s.products.GetByID(in.ProductID); err != nil {
		return models.ProductVariation{}, err
	}

	unitPrice := money.FromFloat(in.UnitPrice)
	wholesalePrice := money.FromFloat(in.WholesalePrice)

	verr := &ValidationError{}
	if strings.TrimSpace(in.VariationName) == "" {
		verr.add("variation_name", "variation_name is required")
	}
	if !money.IsPositive(unitPrice) {
		verr.add("unit_price", "unit_price must be greater than zero")
	}
	if !money.IsPositive(wholesalePrice) {
		verr.add("wholesale_price", "wholesale_price must be greater than zero")
	}
	if in.StockQuantity < 0 {
		verr.add("stock_quantity", "stock_quantity cannot be negative")
	}
	if err := verr.orNil(); err != nil {
		return models.ProductVariation{}, err
	}

	now := time.Now().UTC()
	return s.variations.Create(models.ProductVariation{
		ProductID:      in.ProductID,
		VariationName:  in.VariationName,
		Color:          in.Color,
		Size:           in.Size,
		Material:       in.Material,
		UnitPrice:      unitPrice,
		WholesalePrice: wholesalePrice,
		StockQuantity:  in.StockQuantity,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
}

// Variations lists the variations of a product. Both "product exists
// but has no variations" and "product does not exist" yield an empty
// list; the operation does not distinguish the two.
func (s *Service) Variations(productID int) ([]models.ProductVariation, error) {
	return s.variations.GetByProductID(productID)
}

// UpdateVariation applies only the fields present in the patch and
// always refreshes updated_at. Provided prices pass through the money
// codec. Returns repo.ErrVariationNotFound if the id is unknown.
func (s *Service) UpdateVariation(id int, patch VariationPatch) (models.ProductVariation, error) {
	v, err := s.variations.GetByID(id)
	if err != nil {
		return models.ProductVariation{}, err
	}

	verr := &ValidationError{}
	if patch.VariationName != nil {
		if strings.TrimSpace(*patch.VariationName) == "" {
			verr.add("variation_name", "variation_name must not be empty")
		} else {
			v.VariationName = *patch.VariationName
		}
	}
	if patch.UnitPrice != nil {
		if price := money.FromFloat(*patch.UnitPrice); money.IsPositive(price) {
			v.UnitPrice = price
		} else {
			verr.add("unit_price", "unit_price must be greater than zero")
		}
	}
	if patch.WholesalePrice != nil {
		if price := money.FromFloat(*patch.WholesalePrice); money.IsPositive(price) {
			v.WholesalePrice = price
		} else {
			verr.add("wholesale_price", "wholesale_price must be greater than zero")
		}
	}
	if patch.StockQuantity != nil {
		if *patch.StockQuantity < 0 {
			verr.add("stock_quantity", "stock_quantity cannot be negative")
		} else {
			v.StockQuantity = *patch.StockQuantity
		}
	}
	if err := verr.orNil(); err != nil {
		return models.ProductVariation{}, err
	}

	if patch.Color.Set {
		v.Color = patch.Color.Value
	}
	if patch.Size.Set {
		v.Size = patch.Size.Value
	}
	if patch.Material.Set {
		v.Material = patch.Material.Value
	}
	v.UpdatedAt = time.Now().UTC()

	return s.variations.Update(v)
}

// DeleteVariation removes a variation. Unknown ids are a no-op.
func (s *Service) DeleteVariation(id int) error {
	return s.variations.Delete(id)
}
