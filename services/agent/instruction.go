// File: services/agent/instruction.go
package agent

import (
	"encoding/json"
	"fmt"
	"strings"

	"goodfoods/models"
)

// searchArgs is the exact argument set handed to search_restaurants.
// Date and time are deliberately absent: they are collected for the
// booking step, not for search.
type searchArgs struct {
	City      string `json:"city"`
	PartySize int    `json:"party_size"`
	Cuisine   string `json:"cuisine,omitempty"`
}

type bookArgs struct {
	RestaurantID int    `json:"restaurant_id"`
	CustomerName string `json:"customer_name"`
	Phone        string `json:"phone"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	PartySize    int    `json:"party_size"`
}

// buildStepInstruction turns the session's phase and accumulated slots
// into a concrete directive for the executor: either the exact tool
// call to emit, or the exact question to ask.
func buildStepInstruction(sess *models.Session) string {
	slots := sess.Slots

	switch sess.Phase {
	case models.PhaseSearchReady:
		args, _ := json.Marshal(searchArgs{
			City:      slots.City,
			PartySize: slots.PartySize,
			Cuisine:   slots.Cuisine,
		})
		cuisineLine := ""
		if slots.Cuisine != "" {
			cuisineLine = fmt.Sprintf("- Cuisine: %s\n", slots.Cuisine)
		}
		return fmt.Sprintf(`Current Step: Ready to search restaurants.

Collected Info:
- City: %s
- Party Size: %d people
- Date: %s
- Time: %s
%s
YOUR ACTION: Output ONLY this JSON:
TOOL: search_restaurants
ARGS: %s`, slots.City, slots.PartySize, slots.Date, slots.Time, cuisineLine, args)

	case models.PhaseSearchCollecting:
		var missing, questions []string
		if slots.City == "" {
			missing = append(missing, "city")
			questions = append(questions, "Which city would you like to dine in?")
		}
		if slots.PartySize == 0 {
			missing = append(missing, "party size")
			questions = append(questions, "How many people will be dining?")
		}
		if slots.Date == "" || slots.Time == "" {
			missing = append(missing, "date and time")
			questions = append(questions, "What date and time? (e.g., Feb 10 at 7pm)")
		}
		return fmt.Sprintf(`Current Step: User wants to search restaurants. Missing: %s

YOUR ACTION: Ask ALL questions at once:
"%s You can also tell me your cuisine preference if you have one."

DO NOT call any tool.`, strings.Join(missing, ", "), strings.Join(questions, " "))

	case models.PhaseBookingReady:
		args, _ := json.Marshal(bookArgs{
			RestaurantID: slots.RestaurantID,
			CustomerName: slots.CustomerName,
			Phone:        slots.Phone,
			Date:         slots.Date,
			Time:         slots.Time,
			PartySize:    slots.PartySize,
		})
		return fmt.Sprintf(`Current Step: Ready to book table.

YOUR ACTION: Output ONLY this JSON:
TOOL: book_table
ARGS: %s`, args)

	case models.PhaseBookingSelectRestaurant:
		return `Current Step: User saw restaurant list. Need to collect booking details.

YOUR ACTION:
You MUST ask this EXACT question:
"Which restaurant would you like to book? Please also provide your name and phone number for the reservation."

DO NOT call any tool. DO NOT proceed without asking this question.`

	case models.PhaseBookingCollectContact:
		var needed []string
		if slots.CustomerName == "" {
			needed = append(needed, "name")
		}
		if slots.Phone == "" {
			needed = append(needed, "phone number")
		}
		return fmt.Sprintf(`Current Step: User selected restaurant (ID: %d). Still need: %s

YOUR ACTION:
You MUST ask this EXACT question:
"Great! What's your name and phone number for the reservation?"

DO NOT call any tool. DO NOT proceed without asking for name and phone.`, slots.RestaurantID, strings.Join(needed, ", "))

	case models.PhaseBookingCollectSchedule:
		var needed []string
		if slots.Date == "" || slots.Time == "" {
			needed = append(needed, "date and time")
		}
		if slots.PartySize == 0 {
			needed = append(needed, "party size")
		}
		return fmt.Sprintf(`Current Step: Have restaurant and customer details, but still need: %s.

YOUR ACTION: Ask:
"What date and time would you like to book, and for how many people? (e.g., Feb 10 at 7pm for 4)"

DO NOT call any tool.`, strings.Join(needed, ", "))
	}

	return fmt.Sprintf(`Current Step: General conversation.

YOUR ACTION: Respond naturally and help the user get started.
Ask: "%s"`, Greeting)
}
