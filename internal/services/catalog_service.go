package services

import (
	"restoran/internal/models"
	"restoran/internal/repositories"
)

// CatalogService handles business logic for the product catalog.
type CatalogService struct {
	repo repositories.ProductRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo repositories.ProductRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

// ListByCategory retrieves all products in a category, in store order.
func (s *CatalogService) ListByCategory(category models.CategoryKey) ([]models.Product, error) {
	return s.repo.GetByCategory(category)
}

// GetProductByID retrieves a single product by its ID.
func (s *CatalogService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct persists a new product under the given category. The
// category always comes from the caller's path segment, overriding
// whatever the product carries.
func (s *CatalogService) CreateProduct(product *models.Product, category models.CategoryKey) error {
	product.Category = category
	return s.repo.Create(product)
}

// UpdateProduct persists every field of an existing product.
func (s *CatalogService) UpdateProduct(product *models.Product) error {
	return s.repo.Update(product)
}

// UpdatePriceByName sets the price on the first record matching both
// category and name.
func (s *CatalogService) UpdatePriceByName(category models.CategoryKey, name string, price models.Price) (*models.Product, error) {
	return s.repo.UpdatePriceByName(category, name, price)
}

// UpdateAllPrices sets the price on every product in the category.
func (s *CatalogService) UpdateAllPrices(category models.CategoryKey, price models.Price) error {
	return s.repo.UpdatePriceByCategory(category, price)
}

// DeleteProduct deletes a product by its ID. The id alone determines
// the target; no category filter is applied.
func (s *CatalogService) DeleteProduct(id string) error {
	return s.repo.Delete(id)
}
