// File: services/agent/state_test.go
package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"goodfoods/models"
)

// TestApplyPlan_AccumulatesSlots verifies values from earlier turns
// survive planner omissions in later turns.
func TestApplyPlan_AccumulatesSlots(t *testing.T) {
	sess := &models.Session{Slots: models.SlotSet{City: "Bangalore", PartySize: 4}}

	applyPlan(sess, models.Plan{
		Intent: models.IntentSearch,
		Slots:  models.SlotSet{Date: "2025-02-14", Time: "19:00"},
	})

	assert.Equal(t, "Bangalore", sess.Slots.City)
	assert.Equal(t, 4, sess.Slots.PartySize)
	assert.Equal(t, "2025-02-14", sess.Slots.Date)
	assert.Equal(t, models.PhaseSearchReady, sess.Phase)
	assert.Equal(t, models.IntentSearch, sess.Intent)
}

// TestApplyPlan_RestatedSlotWins verifies a newly stated value replaces
// the accumulated one.
func TestApplyPlan_RestatedSlotWins(t *testing.T) {
	sess := &models.Session{Slots: models.SlotSet{City: "Bangalore"}}

	applyPlan(sess, models.Plan{
		Intent: models.IntentSearch,
		Slots:  models.SlotSet{City: "Mumbai"},
	})

	assert.Equal(t, "Mumbai", sess.Slots.City)
}

// TestApplyPlan_FreshSearchClearsRestaurant verifies a new search
// drops a restaurant selected for an earlier booking attempt.
func TestApplyPlan_FreshSearchClearsRestaurant(t *testing.T) {
	sess := &models.Session{Slots: models.SlotSet{City: "Bangalore", RestaurantID: 3}}

	applyPlan(sess, models.Plan{
		Intent: models.IntentSearch,
		Slots:  models.SlotSet{City: "Mumbai"},
	})

	assert.Zero(t, sess.Slots.RestaurantID)
}

// TestApplyPlan_BookingKeepsRestaurant verifies the selected restaurant
// survives booking turns.
func TestApplyPlan_BookingKeepsRestaurant(t *testing.T) {
	sess := &models.Session{Slots: models.SlotSet{RestaurantID: 3}}

	applyPlan(sess, models.Plan{
		Intent: models.IntentBook,
		Slots:  models.SlotSet{CustomerName: "Priya Sharma"},
	})

	assert.Equal(t, 3, sess.Slots.RestaurantID)
}

// TestDerivePhase walks every dialogue phase from intent and slots.
func TestDerivePhase(t *testing.T) {
	fullSearch := models.SlotSet{City: "Bangalore", PartySize: 4, Date: "2025-02-14", Time: "19:00"}
	fullBooking := models.SlotSet{RestaurantID: 1, CustomerName: "Priya", Phone: "9876543210", Date: "2025-02-14", Time: "19:00", PartySize: 4}

	cases := []struct {
		name   string
		intent string
		slots  models.SlotSet
		want   models.DialoguePhase
	}{
		{"small talk", models.IntentOther, models.SlotSet{}, models.PhaseSmallTalk},
		{"search incomplete", models.IntentSearch, models.SlotSet{City: "Bangalore"}, models.PhaseSearchCollecting},
		{"search complete", models.IntentSearch, fullSearch, models.PhaseSearchReady},
		{"booking without restaurant", models.IntentBook, models.SlotSet{Date: "2025-02-14"}, models.PhaseBookingSelectRestaurant},
		{"booking without contact", models.IntentBook, models.SlotSet{RestaurantID: 1}, models.PhaseBookingCollectContact},
		{"booking without schedule", models.IntentBook, models.SlotSet{RestaurantID: 1, CustomerName: "Priya", Phone: "9876543210"}, models.PhaseBookingCollectSchedule},
		{"booking complete", models.IntentBook, fullBooking, models.PhaseBookingReady},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, derivePhase(tc.intent, tc.slots))
		})
	}
}
