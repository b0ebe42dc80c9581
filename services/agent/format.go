// File: services/agent/format.go
package agent

import (
	"encoding/json"
	"fmt"
	"strings"

	"goodfoods/models"
)

const noResultsReply = "I couldn't find any restaurants matching your criteria. Try adjusting your preferences."

const bookingDetailsQuestion = "Which restaurant would you like to book? Please also provide your name and phone number for the reservation."

// formatFinalAnswer turns a tool's JSON output into the user-facing
// reply. Search results are rendered directly from the payload rather
// than by the model, so the list can never drift from what the tool
// returned.
func formatFinalAnswer(toolName, toolOutput string) string {
	var data map[string]interface{}
	if err := json.Unmarshal([]byte(toolOutput), &data); err != nil {
		return fmt.Sprintf("Executed %s. Result: %s", toolName, toolOutput)
	}

	switch toolName {
	case "search_restaurants":
		if msg, ok := data["error"].(string); ok {
			return msg
		}
		var result models.SearchResult
		if err := json.Unmarshal([]byte(toolOutput), &result); err != nil {
			return fmt.Sprintf("Executed %s. Result: %s", toolName, toolOutput)
		}
		return formatSearchResults(result)

	case "book_table":
		if msg, ok := data["message"].(string); ok {
			return msg
		}
		return toolOutput

	case "check_availability":
		if msg, ok := data["error"].(string); ok {
			return msg
		}
		var avail models.Availability
		if err := json.Unmarshal([]byte(toolOutput), &avail); err != nil {
			return fmt.Sprintf("Executed %s. Result: %s", toolName, toolOutput)
		}
		return formatAvailability(avail)
	}

	return toolOutput
}

func formatSearchResults(result models.SearchResult) string {
	if result.Total == 0 {
		return noResultsReply
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "I found %d restaurants for you:\n\n", result.Total)
	for i, r := range result.Restaurants {
		cuisines := strings.Join(r.Cuisine, ", ")
		fmt.Fprintf(&sb, "%d. **%s** - %s\n", i+1, r.Name, r.Area)
		fmt.Fprintf(&sb, "   📍 %s | 🍽️ %s\n", r.City, cuisines)
		fmt.Fprintf(&sb, "   ⭐ %.1f/5 | 💰 ₹%d/person (%s)\n\n", r.Rating, r.PricePerPerson, r.PriceRange)
	}
	sb.WriteString(bookingDetailsQuestion)
	return sb.String()
}

func formatAvailability(a models.Availability) string {
	if a.RestaurantName == "" {
		return "I couldn't find that restaurant."
	}
	verdict := "Yes, that party size fits."
	if !a.CanAccommodate {
		verdict = "That party size won't fit at this time."
	}
	return fmt.Sprintf("%s has %d of %d seats available on %s at %s. %s",
		a.RestaurantName, a.AvailableSeats, a.Capacity, a.Date, a.Time, verdict)
}
