package models

// CategoryKey is a free-form label partitioning the catalog into
// addressable groups ("foods", "drinks", ...). It is an open set: any
// path segment is a valid category, with one exception below.
type CategoryKey string

// ReservedOrders is the one category name that can never be listed
// through the generic category path, because order submission lives
// under /orders. The guard is explicit in the handler rather than
// relying on route registration order.
const ReservedOrders CategoryKey = "orders"

// Reserved reports whether the key collides with the order-submission
// namespace.
func (c CategoryKey) Reserved() bool {
	return c == ReservedOrders
}

func (c CategoryKey) String() string {
	return string(c)
}
