package models

// Customer identifies who placed an order. Address is optional for
// pickup orders.
type Customer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// OrderItem represents a single line of an order.
type OrderItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    Price  `json:"price"`
}

// Order is the inbound order payload. It is transient: the pipeline
// renders it into a staff notification and discards it, nothing is
// written to the catalog store.
type Order struct {
	Customer   Customer    `json:"customer"`
	Items      []OrderItem `json:"items"`
	TotalPrice Price       `json:"totalPrice"`
}
