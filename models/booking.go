package models

// Booking is a confirmed reservation record as stored in bookings.json.
type Booking struct {
	BookingID      string `json:"booking_id"`      // e.g. "RES-20250210-48213"
	RestaurantID   int    `json:"restaurant_id"`   // catalog id of the booked restaurant
	RestaurantName string `json:"restaurant_name"` // denormalised for display
	CustomerName   string `json:"customer_name"`
	Phone          string `json:"phone"`
	Date           string `json:"date"` // "YYYY-MM-DD"
	Time           string `json:"time"` // "HH:MM", 24-hour
	PartySize      int    `json:"party_size"`
	CreatedAt      string `json:"created_at"` // RFC 3339 UTC timestamp
}

// Availability describes remaining seats for one restaurant/date/time slot.
type Availability struct {
	RestaurantID   int    `json:"restaurant_id"`
	RestaurantName string `json:"restaurant_name"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	Capacity       int    `json:"capacity"`
	BookedSeats    int    `json:"booked_seats"`
	AvailableSeats int    `json:"available_seats"`
	CanAccommodate bool   `json:"can_accommodate"`
}

// BookingResult is the payload produced by the table booking tool.
// On success Booking is set; on refusal Message explains why and
// AvailableSeats carries the remaining capacity when relevant.
type BookingResult struct {
	Success        bool     `json:"success"`
	Message        string   `json:"message"`
	Booking        *Booking `json:"booking,omitempty"`
	AvailableSeats *int     `json:"available_seats,omitempty"`
}
