package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stream names
const (
	StreamOrdersCreated = "stream:orders:created"
)

// OrderCreatedEvent - событие о новой заявке для CRM и уведомлений
type OrderCreatedEvent struct {
	OrderID     uuid.UUID `json:"order_id"`
	ListingID   *string   `json:"listing_id,omitempty"`
	ListingType string    `json:"listing_type"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Passengers  int       `json:"passengers"`
	From        string    `json:"from"`
	To          string    `json:"to"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewOrderCreatedEvent builds the stream payload for an order.
func NewOrderCreatedEvent(o *Order) OrderCreatedEvent {
	return OrderCreatedEvent{
		OrderID:     o.ID,
		ListingID:   o.ListingID,
		ListingType: o.ListingType,
		Name:        o.Name,
		Email:       o.Email,
		Phone:       o.Phone,
		Passengers:  o.Passengers,
		From:        o.FromCity,
		To:          o.ToCity,
		CreatedAt:   o.CreatedAt,
	}
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
