package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"restoran/internal/models"
	"restoran/internal/repositories"
	"restoran/internal/services"
)

// CatalogHandler serves the generic per-category resource routes. The
// category path segment is an open set; only the reserved "orders" name
// is special-cased.
type CatalogHandler struct {
	service *services.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(service *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		service: service,
	}
}

// RegisterRoutes registers the category routes with the Fiber app.
// These are wildcard routes, so they must be registered after every
// literal route (order submission, health).
func (h *CatalogHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/:category", h.HandleList)
	app.Post("/:category", h.HandleCreate)
	app.Put("/:category/update-special", h.HandleUpdatePriceByName)
	app.Put("/:category/update-all-prices", h.HandleUpdateAllPrices)
	app.Put("/:category/update-by-id/:id", h.HandleUpdateByID)
	app.Delete("/:category/:id", h.HandleDelete)
}

// HandleList returns every product in the category, in store order. An
// unknown category yields an empty array. The reserved "orders" name is
// rejected here explicitly, so the behavior does not depend on route
// registration order.
func (h *CatalogHandler) HandleList(c *fiber.Ctx) error {
	category := models.CategoryKey(c.Params("category"))
	if category.Reserved() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "\"orders\" is a reserved route, not a category",
		})
	}

	products, err := h.service.ListByCategory(category)
	if err != nil {
		log.Printf("Error listing category %s: %v", category, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(products)
}

// HandleCreate creates a product under the path category. The path
// segment always wins over any category value in the body, and the
// store assigns the ID.
func (h *CatalogHandler) HandleCreate(c *fiber.Ctx) error {
	category := models.CategoryKey(c.Params("category"))

	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	product.ID = ""

	if err := h.service.CreateProduct(&product, category); err != nil {
		log.Printf("Error creating product in category %s: %v", category, err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdatePriceByName sets the price on the first product matching
// the path category and the body name.
func (h *CatalogHandler) HandleUpdatePriceByName(c *fiber.Ctx) error {
	category := models.CategoryKey(c.Params("category"))

	var body struct {
		Name  string       `json:"name"`
		Price models.Price `json:"price"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	updated, err := h.service.UpdatePriceByName(category, body.Name, body.Price)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		}
		log.Printf("Error updating price of %q in category %s: %v", body.Name, category, err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(updated)
}

// HandleUpdateByID merges the body fields into the product with the
// given ID. The path category is positional only and never filters:
// the id alone determines the target, even across categories. This
// looseness is deliberate; do not turn it into a filter.
func (h *CatalogHandler) HandleUpdateByID(c *fiber.Ctx) error {
	id := c.Params("id")

	product, err := h.service.GetProductByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "ID not found",
			})
		}
		log.Printf("Error fetching product %s for update: %v", id, err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	// Unmarshal over the fetched record, so only fields present in the
	// body change. The ID is restored afterwards: a merge can change any
	// field but cannot retarget the record.
	if err := c.BodyParser(product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	product.ID = id

	if err := h.service.UpdateProduct(product); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "ID not found",
			})
		}
		log.Printf("Error updating product %s: %v", id, err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(product)
}

// HandleUpdateAllPrices sets one price on every product in the path
// category. No match count is reported; zero matches is still a 200.
func (h *CatalogHandler) HandleUpdateAllPrices(c *fiber.Ctx) error {
	category := models.CategoryKey(c.Params("category"))

	var body struct {
		Price models.Price `json:"price"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err := h.service.UpdateAllPrices(category, body.Price); err != nil {
		log.Printf("Error updating all prices in category %s: %v", category, err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "All prices updated",
	})
}

// HandleDelete removes the product with the given ID. Like update-by-id
// the path category is cosmetic, and deleting an unknown ID still
// returns a confirmation.
func (h *CatalogHandler) HandleDelete(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := h.service.DeleteProduct(id); err != nil {
		log.Printf("Error deleting product %s: %v", id, err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Deleted",
	})
}
