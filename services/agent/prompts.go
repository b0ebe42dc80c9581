// File: services/agent/prompts.go
package agent

import (
	"fmt"
	"time"
)

// Greeting opens every new session and doubles as the small-talk nudge.
const Greeting = "Hi! I can help you find and book restaurants. Please tell me: Which city would you like to dine in? How many people will be dining? And what date and time? (You can also mention your cuisine preference if you have one)"

// SystemPrompt is the executor's standing identity. The current date is
// injected so relative dates ("tomorrow", "next Friday") resolve
// correctly.
func SystemPrompt(now time.Time) string {
	return fmt.Sprintf(`You are the GoodFoods Reservation AI - a helpful restaurant discovery and booking assistant.

⚠️ CRITICAL: ONLY show restaurants from tool results. NEVER invent or use restaurant names from your training data.

Current date: %s`, now.Format("January 2, 2006"))
}

// PlannerPrompt instructs the planner stage to classify intent and
// extract slots from the conversation snapshot.
const PlannerPrompt = `Extract user intent and information slots from conversation.

Valid intents:
- "search_restaurants" - user wants to find restaurants
- "book_table" - user wants to book a reservation (or just selected a restaurant from search results)
- "other" - general conversation

For search_restaurants, collect these slots:
REQUIRED (must have ALL before calling tool):
- city (string)
- party_size (number)
- date (YYYY-MM-DD)
- time (HH:MM)

OPTIONAL:
- cuisine (string)

Note: date and time are required to collect, but are NOT passed to search_restaurants tool.
They are stored for later booking. Only city, party_size, and optionally cuisine go to search_restaurants.

For book_table, collect:
REQUIRED:
- restaurant_id (number) - ***CRITICAL***: When user mentions a restaurant name, look back in conversation history for the most recent search_restaurants tool result. Find the restaurant by name in the "restaurants" array and extract its "id" field. Set restaurant_id to that id.
- customer_name (string) - Extract from user message when they provide their name
- phone (string) - Extract phone number from user message
- date (YYYY-MM-DD) - Reuse from earlier conversation if available
- time (HH:MM) - Reuse from earlier conversation if available
- party_size (number) - Reuse from earlier conversation if available

***IMPORTANT***:
1. If user just saw search results and mentions a restaurant name (e.g., "Toit" or "I want to book Toit"), set intent="book_table" and extract restaurant_id by looking up the name in the previous tool results.
2. When switching to book_table intent, carry forward date, time, and party_size from the earlier search slots.

Recommend tools ONLY when all REQUIRED slots are present.

Output JSON:
{
  "intent": "...",
  "slots": {...},
  "recommended_tools": [...],
  "missing_slots": [...]
}`
