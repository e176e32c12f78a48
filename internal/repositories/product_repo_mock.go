package repositories

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"restoran/internal/models"
)

// MockProductRepository is an in-memory implementation of
// ProductRepository. It keeps insertion order, so listings come back in
// store order like the real thing.
type MockProductRepository struct {
	products []models.Product
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make([]models.Product, 0),
	}
}

// Count returns the total number of stored products.
func (r *MockProductRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.products)), nil
}

// GetByCategory returns all products in the category, in insertion order.
func (r *MockProductRepository) GetByCategory(category models.CategoryKey) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]models.Product, 0)
	for _, p := range r.products {
		if p.Category == category {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// GetByID returns a product by its ID.
func (r *MockProductRepository) GetByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
}

// Create adds a new product.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	r.products = append(r.products, *product)
	return nil
}

// CreateBatch adds all products in one call.
func (r *MockProductRepository) CreateBatch(products []models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range products {
		if products[i].ID == "" {
			products[i].ID = uuid.New().String()
		}
	}
	r.products = append(r.products, products...)
	return nil
}

// Update replaces an existing product.
func (r *MockProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.products {
		if p.ID == product.ID {
			r.products[i] = *product
			return nil
		}
	}
	return fmt.Errorf("product with ID %s: %w", product.ID, ErrNotFound)
}

// UpdatePriceByName sets the price on the first (category, name) match.
func (r *MockProductRepository) UpdatePriceByName(category models.CategoryKey, name string, price models.Price) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.products {
		if p.Category == category && p.Name == name {
			r.products[i].Price = price
			updated := r.products[i]
			return &updated, nil
		}
	}
	return nil, fmt.Errorf("product %q in category %s: %w", name, category, ErrNotFound)
}

// UpdatePriceByCategory sets the price on every record in the category.
func (r *MockProductRepository) UpdatePriceByCategory(category models.CategoryKey, price models.Price) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].Category == category {
			r.products[i].Price = price
		}
	}
	return nil
}

// Delete removes a product by its ID. Unknown IDs are ignored.
func (r *MockProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return nil
}
