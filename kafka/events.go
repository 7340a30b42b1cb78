package kafka

import "time"

// CustomerCreatedEvent is emitted when a customer account is registered
type CustomerCreatedEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	CustomerID uint      `json:"customer_id"`
	Email      string    `json:"email"`
	Timestamp  time.Time `json:"timestamp"`
}

// CustomerDeletedEvent is emitted when a customer account is destroyed.
// Consumers use it to clean up the customer's favorite links.
type CustomerDeletedEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	CustomerID uint      `json:"customer_id"`
	Timestamp  time.Time `json:"timestamp"`
}

// ProductFavoritedEvent is emitted when a product lands on a favorite list
type ProductFavoritedEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	CustomerID uint      `json:"customer_id"`
	ProductID  uint      `json:"product_id"`
	Timestamp  time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeCustomerCreated  = "customer.created"
	EventTypeCustomerDeleted  = "customer.deleted"
	EventTypeProductFavorited = "product.favorited"
)

// Kafka topics
const (
	TopicCustomerCreated  = "customer-created"
	TopicCustomerDeleted  = "customer-deleted"
	TopicProductFavorited = "product-favorited"
)
