// File: services/tools/book.go
package tools

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"goodfoods/database/repository"
	catalogRepo "goodfoods/database/repository/catalog"
	"goodfoods/models"
)

// BookTableTool records a reservation when the slot has room. The
// capacity check and the ledger append run atomically in the ledger.
type BookTableTool struct {
	Catalog repository.CatalogRepository
	Ledger  repository.LedgerRepository

	// Overridable for deterministic tests.
	Now     func() time.Time
	RandInt func(min, max int) int
}

func NewBookTableTool(catalog repository.CatalogRepository, ledger repository.LedgerRepository) *BookTableTool {
	return &BookTableTool{
		Catalog: catalog,
		Ledger:  ledger,
		Now:     time.Now,
		RandInt: func(min, max int) int { return min + rand.Intn(max-min+1) },
	}
}

func (t *BookTableTool) Name() string {
	return "book_table"
}

func (t *BookTableTool) Description() string {
	return "Book a table at a restaurant for a customer, date, time and party size."
}

func (t *BookTableTool) Parameters() ToolParameters {
	return ToolParameters{
		Type: "object",
		Properties: map[string]Property{
			"restaurant_id": {Type: "integer", Description: "Catalog id of the restaurant"},
			"customer_name": {Type: "string", Description: "Name the reservation is under"},
			"phone":         {Type: "string", Description: "Contact phone number"},
			"date":          {Type: "string", Description: "Reservation date, YYYY-MM-DD"},
			"time":          {Type: "string", Description: "Reservation time, HH:MM"},
			"party_size":    {Type: "integer", Description: "Number of guests"},
		},
		Required: []string{"restaurant_id", "customer_name", "phone", "date", "time", "party_size"},
	}
}

func (t *BookTableTool) Execute(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	restaurantID := intArg(args, "restaurant_id")
	customerName := stringArg(args, "customer_name")
	phone := stringArg(args, "phone")
	date := stringArg(args, "date")
	slot := stringArg(args, "time")
	partySize := intArg(args, "party_size")

	restaurant, err := t.Catalog.ByID(restaurantID)
	if errors.Is(err, catalogRepo.ErrRestaurantNotFound) {
		return models.BookingResult{Success: false, Message: "Restaurant not found"}, nil
	}
	if err != nil {
		return nil, err
	}

	capacity := restaurant.Capacity
	if capacity == 0 {
		capacity = defaultCapacity
	}

	booking := models.Booking{
		BookingID:      t.newBookingID(),
		RestaurantID:   restaurantID,
		RestaurantName: restaurant.Name,
		CustomerName:   customerName,
		Phone:          phone,
		Date:           date,
		Time:           slot,
		PartySize:      partySize,
		CreatedAt:      t.Now().UTC().Format(time.RFC3339),
	}

	booked, ok, err := t.Ledger.AppendIfAvailable(ctx, booking, capacity)
	if err != nil {
		return nil, err
	}
	if !ok {
		available := capacity - booked
		if available < 0 {
			available = 0
		}
		return models.BookingResult{
			Success:        false,
			Message:        fmt.Sprintf("Not enough seats available. Only %d seats left.", available),
			AvailableSeats: &available,
		}, nil
	}

	return models.BookingResult{
		Success: true,
		Message: confirmationMessage(booking, restaurant),
		Booking: &booking,
	}, nil
}

func (t *BookTableTool) newBookingID() string {
	return fmt.Sprintf("RES-%s-%05d", t.Now().Format("20060102"), t.RandInt(10000, 99999))
}

func confirmationMessage(b models.Booking, r *models.Restaurant) string {
	people := "people"
	if b.PartySize == 1 {
		people = "person"
	}
	hours := r.OpeningHours
	if hours == "" {
		hours = "N/A"
	}
	return fmt.Sprintf(`✅ **BOOKING CONFIRMED!**

📋 **Booking Details:**
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
🎫 **Booking ID:** `+"`%s`"+`
🏪 **Restaurant:** %s
📍 **Location:** %s, %s
👤 **Name:** %s
📞 **Phone:** %s
📅 **Date:** %s
🕐 **Time:** %s
👥 **Party Size:** %d %s
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

💡 **Please save your Booking ID for reference.**
📞 Restaurant Contact: %s
`, b.BookingID, r.Name, r.Area, r.City, b.CustomerName, b.Phone, b.Date, b.Time, b.PartySize, people, hours)
}
