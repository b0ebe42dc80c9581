package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"goodfoods/config"
	"goodfoods/database"
	ledgerRepo "goodfoods/database/repository/ledger"
	"goodfoods/models"
)

// randomInt returns a random integer between min and max (inclusive).
func randomInt(min, max int) int {
	return rand.Intn(max-min+1) + min
}

// Popular dining slots used for the simulated load.
var diningTimes = []string{"12:00", "13:00", "19:00", "20:00", "21:00"}

const defaultCapacity = 50

// main fills the bookings ledger with simulated reservations across the
// catalog for the coming week, so capacity refusals can be exercised
// without typing dozens of conversations.
func main() {
	rand.Seed(time.Now().UnixNano())

	config.LoadConfig()
	database.InitDataFiles()
	ledger := ledgerRepo.NewFileLedgerRepo()
	ctx := context.Background()

	restaurants := database.CatalogData
	if len(restaurants) == 0 {
		log.Fatalf("Catalog %s is empty; nothing to simulate against", config.AppConfig.CatalogPath)
	}

	// Generate dates for the next 7 days.
	var weekDates []string
	today := time.Now()
	for i := 0; i < 7; i++ {
		weekDates = append(weekDates, today.AddDate(0, 0, i).Format("2006-01-02"))
	}

	total := randomInt(40, 80)
	accepted, refused := 0, 0
	for i := 1; i <= total; i++ {
		r := restaurants[rand.Intn(len(restaurants))]
		capacity := r.Capacity
		if capacity <= 0 {
			capacity = defaultCapacity
		}

		booking := models.Booking{
			BookingID:      fmt.Sprintf("RES-%s-%05d", today.Format("20060102"), randomInt(10000, 99999)),
			RestaurantID:   r.ID,
			RestaurantName: r.Name,
			CustomerName:   fmt.Sprintf("Simulated Diner %d", i),
			Phone:          fmt.Sprintf("900000%04d", i),
			Date:           weekDates[rand.Intn(len(weekDates))],
			Time:           diningTimes[rand.Intn(len(diningTimes))],
			PartySize:      randomInt(1, 8),
			CreatedAt:      time.Now().UTC().Format(time.RFC3339),
		}

		_, ok, err := ledger.AppendIfAvailable(ctx, booking, capacity)
		if err != nil {
			log.Fatalf("Failed to append booking: %v", err)
		}
		if ok {
			accepted++
		} else {
			refused++
		}
	}

	log.Printf("Simulated %d reservations: %d accepted, %d refused at capacity", total, accepted, refused)
	printOccupancy(ledger)
}
