package repo

import (
	"sync"

	"github.com/rogerio-castellano/product-catalog/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of
// ProductRepository. It emulates the transactional behavior of the
// Postgres implementation by performing each multi-row operation under
// a single lock hold, after verifying every referenced category.
type InMemoryProductRepository struct {
	mu         sync.Mutex
	products   []models.Product
	links      []models.ProductCategory
	nextID     int
	categories *InMemoryCategoryRepository
	variations *InMemoryVariationRepository
}

// NewInMemoryProductRepository creates a new InMemoryProductRepository
// wired to the sibling repositories it cascades into.
func NewInMemoryProductRepository(categories *InMemoryCategoryRepository, variations *InMemoryVariationRepository) *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products:   []models.Product{},
		links:      []models.ProductCategory{},
		nextID:     1,
		categories: categories,
		variations: variations,
	}
}

// Create adds a product and links it to the given categories. Every
// category id is verified before any link is recorded; a missing id
// fails the whole call and nothing is stored.
func (r *InMemoryProductRepository) Create(product models.Product, categoryIDs []int) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, cid := range categoryIDs {
		if _, err := r.categories.GetByID(cid); err != nil {
			return models.Product{}, &MissingCategoryError{ID: cid}
		}
	}

	product.ID = r.nextID
	r.nextID++
	r.products = append(r.products, product)
	for _, cid := range categoryIDs {
		r.links = append(r.links, models.ProductCategory{ProductID: product.ID, CategoryID: cid})
	}
	return product, nil
}

// GetAll retrieves all products in insertion order.
func (r *InMemoryProductRepository) GetAll() ([]models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// GetByID retrieves a product by its ID.
func (r *InMemoryProductRepository) GetByID(id int) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Update modifies a product. A non-nil categoryIDs replaces the whole
// association set (an empty slice clears it); nil leaves it untouched.
func (r *InMemoryProductRepository) Update(product models.Product, categoryIDs []int) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i, p := range r.products {
		if p.ID == product.ID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return models.Product{}, ErrProductNotFound
	}

	if categoryIDs != nil {
		for _, cid := range categoryIDs {
			if _, err := r.categories.GetByID(cid); err != nil {
				return models.Product{}, &MissingCategoryError{ID: cid}
			}
		}
	}

	r.products[idx] = product
	if categoryIDs != nil {
		r.dropLinks(product.ID)
		for _, cid := range categoryIDs {
			r.links = append(r.links, models.ProductCategory{ProductID: product.ID, CategoryID: cid})
		}
	}
	return product, nil
}

// Delete removes a product with its variations and category links.
// Missing ids are a no-op.
func (r *InMemoryProductRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.products {
		if p.ID == id {
			r.variations.deleteByProductID(id)
			r.dropLinks(id)
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return nil
}

// CategoriesOf resolves the categories linked to a product in link
// insertion order. Links whose category was deleted are omitted.
func (r *InMemoryProductRepository) CategoriesOf(productID int) ([]models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []models.Category{}
	for _, l := range r.links {
		if l.ProductID != productID {
			continue
		}
		c, err := r.categories.GetByID(l.CategoryID)
		if err != nil {
			continue // dangling link, category deleted since
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *InMemoryProductRepository) dropLinks(productID int) {
	kept := r.links[:0]
	for _, l := range r.links {
		if l.ProductID != productID {
			kept = append(kept, l)
		}
	}
	r.links = kept
}

// Clear removes all products and links. Used by tests.
func (r *InMemoryProductRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products = []models.Product{}
	r.links = []models.ProductCategory{}
}
