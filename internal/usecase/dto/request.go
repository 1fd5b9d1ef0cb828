package dto

// ListingsRequest - параметры выдачи empty legs / jet sharing
type ListingsRequest struct {
	Continent string `query:"continent" validate:"omitempty,max=32"`
	Count     int    `query:"count" validate:"omitempty,min=1,max=50"`
	City      string `query:"city" validate:"omitempty,max=100"`
	Sort      string `query:"sort" validate:"omitempty,oneof=default discount"`
}

// CreateOrderRequest - заявка на перелёт из формы сайта
type CreateOrderRequest struct {
	ListingID     string `json:"listing_id" validate:"omitempty,max=128"`
	ListingType   string `json:"listing_type" validate:"required,oneof=empty_leg jet_sharing top charter"`
	Name          string `json:"name" validate:"required,min=2,max=120"`
	Email         string `json:"email" validate:"required,email,max=254"`
	Phone         string `json:"phone" validate:"required,min=5,max=32"`
	Passengers    int    `json:"passengers" validate:"required,min=1,max=19"`
	From          string `json:"from" validate:"required,max=100"`
	To            string `json:"to" validate:"required,max=100"`
	DepartureDate string `json:"departure_date" validate:"omitempty,datetime=2006-01-02"`
	Message       string `json:"message" validate:"omitempty,max=2000"`
}
