package repo

import (
	"sync"

	"github.com/rogerio-castellano/product-catalog/internal/models"
)

// InMemoryVariationRepository is an in-memory implementation of VariationRepository.
type InMemoryVariationRepository struct {
	mu         sync.Mutex
	variations []models.ProductVariation
	nextID     int
}

// NewInMemoryVariationRepository creates a new instance of InMemoryVariationRepository.
func NewInMemoryVariationRepository() *InMemoryVariationRepository {
	return &InMemoryVariationRepository{
		variations: []models.ProductVariation{},
		nextID:     1,
	}
}

// Create adds a new variation to the repository.
func (r *InMemoryVariationRepository) Create(variation models.ProductVariation) (models.ProductVariation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	variation.ID = r.nextID
	r.nextID++
	r.variations = append(r.variations, variation)
	return variation, nil
}

// GetByID retrieves a variation by its ID.
func (r *InMemoryVariationRepository) GetByID(id int) (models.ProductVariation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, v := range r.variations {
		if v.ID == id {
			return v, nil
		}
	}
	return models.ProductVariation{}, ErrVariationNotFound
}

// GetByProductID retrieves all variations of a product in insertion
// order. An unknown product id yields an empty slice, not an error.
func (r *InMemoryVariationRepository) GetByProductID(productID int) ([]models.ProductVariation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []models.ProductVariation{}
	for _, v := range r.variations {
		if v.ProductID == productID {
			out = append(out, v)
		}
	}
	return out, nil
}

// Update modifies an existing variation in the repository.
func (r *InMemoryVariationRepository) Update(variation models.ProductVariation) (models.ProductVariation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, v := range r.variations {
		if v.ID == variation.ID {
			r.variations[i] = variation
			return variation, nil
		}
	}
	return models.ProductVariation{}, ErrVariationNotFound
}

// Delete removes a variation by its ID. Missing ids are a no-op.
func (r *InMemoryVariationRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, v := range r.variations {
		if v.ID == id {
			r.variations = append(r.variations[:i], r.variations[i+1:]...)
			return nil
		}
	}
	return nil
}

// deleteByProductID removes every variation of a product. Called by the
// product repository as part of its cascade.
func (r *InMemoryVariationRepository) deleteByProductID(productID int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.variations[:0]
	for _, v := range r.variations {
		if v.ProductID != productID {
			kept = append(kept, v)
		}
	}
	r.variations = kept
}

// Clear removes all variations. Used by tests.
func (r *InMemoryVariationRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.variations = []models.ProductVariation{}
}
