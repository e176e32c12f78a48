package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"restoran/internal/models"
	"restoran/internal/services"
)

// OrderHandler handles order submission.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// RegisterRoutes registers the order routes with the Fiber app. This
// must run before the generic category routes are registered, or the
// /:category wildcard would shadow /orders/new.
func (h *OrderHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/orders/new", h.HandleSubmitOrder)
}

// HandleSubmitOrder accepts an order payload, renders it and pushes the
// notification. The order itself is not stored; failures of any kind
// come back as a generic 500 with the root cause logged server-side
// only.
func (h *OrderHandler) HandleSubmitOrder(c *fiber.Ctx) error {
	var order models.Order
	if err := c.BodyParser(&order); err != nil {
		log.Printf("Error parsing order payload: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to process order",
		})
	}

	if err := h.service.SubmitOrder(c.UserContext(), order); err != nil {
		log.Printf("Error submitting order: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to send order notification",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Order sent to staff",
	})
}
