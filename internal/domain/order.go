package domain

import (
	"time"

	"github.com/google/uuid"
)

// Order statuses
const (
	OrderStatusNew      = "new"
	OrderStatusNotified = "notified"
)

// Order - заявка клиента на перелёт
type Order struct {
	ID            uuid.UUID `json:"id" db:"id"`
	ListingID     *string   `json:"listingId,omitempty" db:"listing_id"`
	ListingType   string    `json:"listingType" db:"listing_type"`
	Name          string    `json:"name" db:"name"`
	Email         string    `json:"email" db:"email"`
	Phone         string    `json:"phone" db:"phone"`
	Passengers    int       `json:"passengers" db:"passengers"`
	FromCity      string    `json:"from" db:"from_city"`
	ToCity        string    `json:"to" db:"to_city"`
	DepartureDate *string   `json:"departureDate,omitempty" db:"departure_date"`
	Message       *string   `json:"message,omitempty" db:"message"`
	Status        string    `json:"status" db:"status"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}
