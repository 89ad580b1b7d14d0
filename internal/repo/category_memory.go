package repo

import (
	"sync"

	"github.com/rogerio-castellano/product-catalog/internal/models"
)

// InMemoryCategoryRepository is an in-memory implementation of CategoryRepository.
type InMemoryCategoryRepository struct {
	mu         sync.Mutex
	categories []models.Category
	nextID     int
}

// NewInMemoryCategoryRepository creates a new instance of InMemoryCategoryRepository.
func NewInMemoryCategoryRepository() *InMemoryCategoryRepository {
	return &InMemoryCategoryRepository{
		categories: []models.Category{},
		nextID:     1,
	}
}

// Create adds a new category to the repository.
func (r *InMemoryCategoryRepository) Create(category models.Category) (models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	category.ID = r.nextID
	r.nextID++
	r.categories = append(r.categories, category)
	return category, nil
}

// GetAll retrieves all categories in insertion order.
func (r *InMemoryCategoryRepository) GetAll() ([]models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Category, len(r.categories))
	copy(out, r.categories)
	return out, nil
}

// GetByID retrieves a category by its ID.
func (r *InMemoryCategoryRepository) GetByID(id int) (models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.getByID(id)
}

func (r *InMemoryCategoryRepository) getByID(id int) (models.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Category{}, ErrCategoryNotFound
}

// Update modifies an existing category in the repository.
func (r *InMemoryCategoryRepository) Update(category models.Category) (models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, c := range r.categories {
		if c.ID == category.ID {
			r.categories[i] = category
			return category, nil
		}
	}
	return models.Category{}, ErrCategoryNotFound
}

// Delete removes a category by its ID. Missing ids are a no-op.
// Links from products are left behind deliberately; readers omit them.
func (r *InMemoryCategoryRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, c := range r.categories {
		if c.ID == id {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return nil
		}
	}
	return nil
}

// Clear removes all categories. Used by tests.
func (r *InMemoryCategoryRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.categories = []models.Category{}
}
