package catalog

import (
	"errors"

	"github.com/rogerio-castellano/product-catalog/internal/models"
	"github.com/rogerio-castellano/product-catalog/internal/repo"
)

// Products returns every product with its resolved categories and
// variations, in insertion order of the underlying store.
func (s *Service) Products() ([]models.ProductWithRelations, error) {
	products, err := s.products.GetAll()
	if err != nil {
		return nil, err
	}

	out := make([]models.ProductWithRelations, 0, len(products))
	for _, p := range products {
		pr, err := s.assemble(p)
		if err != nil {
			return nil, err
		}
		out = append(out, pr)
	}
	return out, nil
}

// Product returns a single product with its relations, or nil when the
// id does not exist. Absence is not an error.
func (s *Service) Product(id int) (*models.ProductWithRelations, error) {
	p, err := s.products.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			return nil, nil
		}
		return nil, err
	}

	pr, err := s.assemble(p)
	if err != nil {
		return nil, err
	}
	return &pr, nil
}

// assemble resolves a product's relations with explicit fetches: the
// category join first, then the variations by product id. Relation
// lists are never nil.
func (s *Service) assemble(p models.Product) (models.ProductWithRelations, error) {
	categories, err := s.products.CategoriesOf(p.ID)
	if err != nil {
		return models.ProductWithRelations{}, err
	}
	variations, err := s.variations.GetByProductID(p.ID)
	if err != nil {
		return models.ProductWithRelations{}, err
	}
	return models.ProductWithRelations{
		Product:    p,
		Categories: categories,
		Variations: variations,
	}, nil
}
