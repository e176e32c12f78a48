package repositories

import (
	"errors"

	"restoran/internal/models"
)

// ErrNotFound is returned when no record matches the given identity or
// (category, name) pair. Callers check it with errors.Is.
var ErrNotFound = errors.New("product not found")

// ProductRepository defines the interface for catalog data access.
type ProductRepository interface {
	Count() (int64, error)
	GetByCategory(category models.CategoryKey) ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	CreateBatch(products []models.Product) error
	Update(product *models.Product) error
	// UpdatePriceByName sets the price on the first record matching both
	// category and name, returning the updated record.
	UpdatePriceByName(category models.CategoryKey, name string, price models.Price) (*models.Product, error)
	// UpdatePriceByCategory sets the price on every record in the
	// category. Zero matches is not an error.
	UpdatePriceByCategory(category models.CategoryKey, price models.Price) error
	// Delete removes the record with the given id. Deleting an id that
	// does not exist is not an error.
	Delete(id string) error
}
