package models

import "time"

// Turn roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// Turn is one entry in a session transcript. Assistant turns that
// triggered a tool carry ToolName and the marshalled ToolArgs, and the
// tool's JSON result follows as a RoleTool turn with the same ToolName.
// Tool turns stay in the transcript so the planner can resolve a
// restaurant name back to its id from earlier search results.
type Turn struct {
	Role     string `json:"role"`
	Content  string `json:"content"`
	ToolName string `json:"tool_name,omitempty"`
	ToolArgs string `json:"tool_args,omitempty"`
}

// DialoguePhase tags where a session sits in the guided flow. The phase
// is recomputed every turn from the merged slots, never trusted blindly
// across provider restarts.
type DialoguePhase string

const (
	PhaseSmallTalk               DialoguePhase = "small_talk"
	PhaseSearchCollecting        DialoguePhase = "search_collecting"
	PhaseSearchReady             DialoguePhase = "search_ready"
	PhaseBookingSelectRestaurant DialoguePhase = "booking_select_restaurant"
	PhaseBookingCollectContact   DialoguePhase = "booking_collect_contact"
	PhaseBookingCollectSchedule  DialoguePhase = "booking_collect_schedule"
	PhaseBookingReady            DialoguePhase = "booking_ready"
)

// Session is the persisted conversation state for one chat session.
type Session struct {
	ID        string        `json:"session_id"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
	Turns     []Turn        `json:"turns"`
	Phase     DialoguePhase `json:"phase,omitempty"`
	Intent    string        `json:"intent,omitempty"`
	Slots     SlotSet       `json:"slots"`
}

// AppendTurn adds a turn and refreshes the update timestamp.
func (s *Session) AppendTurn(t Turn) {
	s.Turns = append(s.Turns, t)
	s.UpdatedAt = time.Now().UTC()
}

// RecentTurns returns up to max of the most recent turns.
func (s *Session) RecentTurns(max int) []Turn {
	if max <= 0 || len(s.Turns) <= max {
		return s.Turns
	}
	return s.Turns[len(s.Turns)-max:]
}
