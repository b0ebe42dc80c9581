package main

import (
	"context"
	"fmt"
	"log"
	"sort"

	ledgerRepo "goodfoods/database/repository/ledger"
)

// printOccupancy groups the ledger by (restaurant, date, time) and
// prints the seats taken in each slot.
func printOccupancy(ledger ledgerRepo.LedgerRepository) {
	bookings, err := ledger.All(context.Background())
	if err != nil {
		log.Fatalf("Error reading ledger: %v", err)
	}

	type slotKey struct {
		restaurant string
		date       string
		slot       string
	}
	seats := make(map[slotKey]int)
	for _, b := range bookings {
		key := slotKey{restaurant: b.RestaurantName, date: b.Date, slot: b.Time}
		seats[key] += b.PartySize
	}

	keys := make([]slotKey, 0, len(seats))
	for key := range seats {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].restaurant != keys[j].restaurant {
			return keys[i].restaurant < keys[j].restaurant
		}
		if keys[i].date != keys[j].date {
			return keys[i].date < keys[j].date
		}
		return keys[i].slot < keys[j].slot
	})

	fmt.Printf("\nOccupancy across %d bookings:\n", len(bookings))
	for _, key := range keys {
		fmt.Printf("  %s  %s %s  %d seats\n", key.restaurant, key.date, key.slot, seats[key])
	}
}
