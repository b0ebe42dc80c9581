// File: services/tools/availability.go
package tools

import (
	"context"
	"errors"

	"goodfoods/database/repository"
	catalogRepo "goodfoods/database/repository/catalog"
	"goodfoods/models"
)

// defaultCapacity applies when a catalog entry has no capacity field.
const defaultCapacity = 50

// CheckAvailabilityTool reports remaining seats for one
// restaurant/date/time slot.
type CheckAvailabilityTool struct {
	Catalog repository.CatalogRepository
	Ledger  repository.LedgerRepository
}

func NewCheckAvailabilityTool(catalog repository.CatalogRepository, ledger repository.LedgerRepository) *CheckAvailabilityTool {
	return &CheckAvailabilityTool{Catalog: catalog, Ledger: ledger}
}

func (t *CheckAvailabilityTool) Name() string {
	return "check_availability"
}

func (t *CheckAvailabilityTool) Description() string {
	return "Check how many seats remain at a restaurant for a specific date and time."
}

func (t *CheckAvailabilityTool) Parameters() ToolParameters {
	return ToolParameters{
		Type: "object",
		Properties: map[string]Property{
			"restaurant_id": {Type: "integer", Description: "Catalog id of the restaurant"},
			"date":          {Type: "string", Description: "Reservation date, YYYY-MM-DD"},
			"time":          {Type: "string", Description: "Reservation time, HH:MM"},
			"party_size":    {Type: "integer", Description: "Seats needed"},
		},
		Required: []string{"restaurant_id", "date", "time"},
	}
}

func (t *CheckAvailabilityTool) Execute(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	restaurantID := intArg(args, "restaurant_id")
	date := stringArg(args, "date")
	slot := stringArg(args, "time")
	partySize := intArg(args, "party_size")

	restaurant, err := t.Catalog.ByID(restaurantID)
	if errors.Is(err, catalogRepo.ErrRestaurantNotFound) {
		return models.Availability{RestaurantID: restaurantID, Date: date, Time: slot}, nil
	}
	if err != nil {
		return nil, err
	}

	capacity := restaurant.Capacity
	if capacity == 0 {
		capacity = defaultCapacity
	}
	booked, err := t.Ledger.BookedSeats(ctx, restaurantID, date, slot)
	if err != nil {
		return nil, err
	}
	available := capacity - booked
	if available < 0 {
		available = 0
	}
	canFit := available >= partySize
	if partySize <= 0 {
		canFit = available > 0
	}
	return models.Availability{
		RestaurantID:   restaurantID,
		RestaurantName: restaurant.Name,
		Date:           date,
		Time:           slot,
		Capacity:       capacity,
		BookedSeats:    booked,
		AvailableSeats: available,
		CanAccommodate: canFit,
	}, nil
}
