// File: services/agent/state.go
package agent

import "goodfoods/models"

// applyPlan folds one planner reading into the session: slots merge
// into the accumulator and the dialogue phase is recomputed from what
// is now known. The planner re-reads the whole transcript every turn,
// so the accumulator only has to survive planner omissions, not drive
// the conversation on its own.
func applyPlan(sess *models.Session, plan models.Plan) {
	merged := sess.Slots.Merge(plan.Slots)
	if plan.Intent == models.IntentSearch {
		// A fresh search invalidates any previously selected restaurant.
		merged.RestaurantID = 0
	}
	sess.Slots = merged
	sess.Intent = plan.Intent
	sess.Phase = derivePhase(plan.Intent, merged)
}

func derivePhase(intent string, slots models.SlotSet) models.DialoguePhase {
	switch intent {
	case models.IntentSearch:
		if len(slots.MissingForSearch()) == 0 {
			return models.PhaseSearchReady
		}
		return models.PhaseSearchCollecting
	case models.IntentBook:
		if len(slots.MissingForBooking()) == 0 {
			return models.PhaseBookingReady
		}
		if slots.RestaurantID == 0 {
			return models.PhaseBookingSelectRestaurant
		}
		if slots.CustomerName == "" || slots.Phone == "" {
			return models.PhaseBookingCollectContact
		}
		return models.PhaseBookingCollectSchedule
	default:
		return models.PhaseSmallTalk
	}
}
