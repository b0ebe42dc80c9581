// File: database/repository/ledger/crud.go
package ledgerRepo

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"goodfoods/models"
)

func (r *fileLedgerRepo) load() ([]models.Booking, error) {
	raw, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return []models.Booking{}, nil
	}
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return []models.Booking{}, nil
	}
	var bookings []models.Booking
	if err := json.Unmarshal(raw, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *fileLedgerRepo) store(bookings []models.Booking) error {
	data, err := json.MarshalIndent(bookings, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".bookings-*.json")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

func sumSeats(bookings []models.Booking, restaurantID int, date, slot string) int {
	total := 0
	for _, b := range bookings {
		if b.RestaurantID == restaurantID && b.Date == date && b.Time == slot {
			total += b.PartySize
		}
	}
	return total
}

func (r *fileLedgerRepo) All(ctx context.Context) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// BookedSeats sums party sizes over bookings for the exact
// restaurant/date/time slot. Different times on the same date do not
// share seats.
func (r *fileLedgerRepo) BookedSeats(ctx context.Context, restaurantID int, date, slot string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	bookings, err := r.load()
	if err != nil {
		return 0, err
	}
	return sumSeats(bookings, restaurantID, date, slot), nil
}

// AppendIfAvailable appends the booking when the slot still has room
// for its party given capacity. The check and the append run under one
// lock so two in-flight bookings cannot both take the last seats.
// Returns the seats already booked before this booking, and whether the
// booking was recorded.
func (r *fileLedgerRepo) AppendIfAvailable(ctx context.Context, booking models.Booking, capacity int) (int, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	bookings, err := r.load()
	if err != nil {
		return 0, false, err
	}
	booked := sumSeats(bookings, booking.RestaurantID, booking.Date, booking.Time)
	if booked+booking.PartySize > capacity {
		return booked, false, nil
	}
	bookings = append(bookings, booking)
	if err := r.store(bookings); err != nil {
		return booked, false, err
	}
	return booked, true, nil
}
