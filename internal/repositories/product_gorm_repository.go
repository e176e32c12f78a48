package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"restoran/internal/models"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// Count returns the total number of products across all categories.
func (r *GORMProductRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

// GetByCategory retrieves all products in the given category, in store
// order. An unknown category yields an empty slice, not an error.
func (r *GORMProductRepository) GetByCategory(category models.CategoryKey) ([]models.Product, error) {
	products := make([]models.Product, 0)
	if err := r.db.Where("category = ?", category.String()).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get products for category %s: %w", category, err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// Create inserts a new product, assigning an ID when none is set.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// CreateBatch inserts products in one bulk operation, assigning IDs
// where missing. Used by the seed loader.
func (r *GORMProductRepository) CreateBatch(products []models.Product) error {
	if len(products) == 0 {
		return nil
	}
	for i := range products {
		if products[i].ID == "" {
			products[i].ID = uuid.New().String()
		}
	}
	if err := r.db.Create(&products).Error; err != nil {
		return fmt.Errorf("failed to batch create products: %w", err)
	}
	return nil
}

// Update persists every field of an existing product.
func (r *GORMProductRepository) Update(product *models.Product) error {
	res := r.db.Save(product)
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		// Save does not return ErrRecordNotFound for an update that hits
		// nothing, so check RowsAffected.
		return fmt.Errorf("product with ID %s: %w", product.ID, ErrNotFound)
	}
	return nil
}

// UpdatePriceByName sets the price on the first record matching both
// category and name.
func (r *GORMProductRepository) UpdatePriceByName(category models.CategoryKey, name string, price models.Price) (*models.Product, error) {
	var product models.Product
	err := r.db.First(&product, "category = ? AND name = ?", category.String(), name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %q in category %s: %w", name, category, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find product %q in category %s: %w", name, category, err)
	}
	product.Price = price
	if err := r.db.Model(&product).Update("price", float64(price)).Error; err != nil {
		return nil, fmt.Errorf("failed to update price for product %s: %w", product.ID, err)
	}
	return &product, nil
}

// UpdatePriceByCategory sets the price on every record in the category.
func (r *GORMProductRepository) UpdatePriceByCategory(category models.CategoryKey, price models.Price) error {
	err := r.db.Model(&models.Product{}).
		Where("category = ?", category.String()).
		Update("price", float64(price)).Error
	if err != nil {
		return fmt.Errorf("failed to update prices for category %s: %w", category, err)
	}
	return nil
}

// Delete removes a product by its ID. A missing ID is a no-op.
func (r *GORMProductRepository) Delete(id string) error {
	if err := r.db.Delete(&models.Product{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete product %s: %w", id, err)
	}
	return nil
}
