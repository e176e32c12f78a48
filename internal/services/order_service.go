package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"restoran/internal/models"
)

// unknownField stands in for customer fields the payload did not
// supply. An order with a half-filled customer block is still worth
// notifying staff about.
const unknownField = "unknown"

// Notifier is the outbound notification capability: one destination,
// one text message, success or failure. No retry, no backoff: a failed
// dispatch is simply a failed dispatch.
type Notifier interface {
	Send(ctx context.Context, text string) error
}

// EventPublisher is an optional sink for order events. A nil publisher
// disables event publication entirely.
type EventPublisher interface {
	Publish(eventType string, body []byte) error
}

// OrderService renders incoming orders into staff notifications and
// dispatches them. Orders are not persisted; the notification is the
// only required effect.
type OrderService struct {
	notifier  Notifier
	publisher EventPublisher
}

// NewOrderService creates a new OrderService. publisher may be nil.
func NewOrderService(notifier Notifier, publisher EventPublisher) *OrderService {
	return &OrderService{
		notifier:  notifier,
		publisher: publisher,
	}
}

var totalPrinter = message.NewPrinter(language.English)

// RenderMessage builds the fixed-format HTML notification text for an
// order: header, customer block, 1-based numbered item lines and a
// grouped total.
func (s *OrderService) RenderMessage(order models.Order) string {
	customer := order.Customer
	name := customer.Name
	if name == "" {
		name = unknownField
	}
	phone := customer.Phone
	if phone == "" {
		phone = unknownField
	}
	address := customer.Address
	if address == "" {
		address = unknownField
	}

	var b strings.Builder
	b.WriteString("🚀 <b>NEW ORDER!</b>\n\n")
	fmt.Fprintf(&b, "👤 <b>Customer:</b> %s\n", name)
	fmt.Fprintf(&b, "📞 <b>Phone:</b> %s\n", phone)
	fmt.Fprintf(&b, "📍 <b>Address:</b> %s\n\n", address)
	b.WriteString("🛒 <b>Items:</b>\n")

	for i, item := range order.Items {
		fmt.Fprintf(&b, "%d. %s x %d\n", i+1, item.Name, item.Quantity)
	}

	total := totalPrinter.Sprintf("%v", number.Decimal(float64(order.TotalPrice)))
	fmt.Fprintf(&b, "\n💰 <b>TOTAL:</b> %s so'm", total)

	return b.String()
}

// SubmitOrder renders the order and dispatches it to the notification
// capability. On success an order.received event is additionally
// published when a publisher is configured; publish failures are logged
// and never surfaced to the caller.
func (s *OrderService) SubmitOrder(ctx context.Context, order models.Order) error {
	msg := s.RenderMessage(order)

	if err := s.notifier.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to dispatch order notification: %w", err)
	}

	if s.publisher != nil {
		event := map[string]interface{}{
			"customer":   order.Customer.Name,
			"phone":      order.Customer.Phone,
			"itemCount":  len(order.Items),
			"totalPrice": float64(order.TotalPrice),
			"receivedAt": time.Now().UTC().Format(time.RFC3339),
		}
		body, err := json.Marshal(event)
		if err != nil {
			log.Printf("Failed to marshal order event: %v", err)
		} else if err := s.publisher.Publish("order.received", body); err != nil {
			log.Printf("Warning: failed to publish order.received event: %v", err)
		}
	}

	return nil
}
