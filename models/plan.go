package models

// Supported intents as classified by the planner stage.
const (
	IntentSearch = "search_restaurants"
	IntentBook   = "book_table"
	IntentOther  = "other"
)

// SlotSet accumulates structured values extracted from the conversation.
// Zero values mean the slot has not been filled yet.
type SlotSet struct {
	City         string `json:"city,omitempty"`
	Cuisine      string `json:"cuisine,omitempty"`
	Date         string `json:"date,omitempty"` // "YYYY-MM-DD"
	Time         string `json:"time,omitempty"` // "HH:MM"
	PartySize    int    `json:"party_size,omitempty"`
	RestaurantID int    `json:"restaurant_id,omitempty"`
	CustomerName string `json:"customer_name,omitempty"`
	Phone        string `json:"phone,omitempty"`
}

// Merge overlays the non-empty fields of other onto s. Values already
// collected in earlier turns survive unless the new turn restates them.
func (s SlotSet) Merge(other SlotSet) SlotSet {
	if other.City != "" {
		s.City = other.City
	}
	if other.Cuisine != "" {
		s.Cuisine = other.Cuisine
	}
	if other.Date != "" {
		s.Date = other.Date
	}
	if other.Time != "" {
		s.Time = other.Time
	}
	if other.PartySize != 0 {
		s.PartySize = other.PartySize
	}
	if other.RestaurantID != 0 {
		s.RestaurantID = other.RestaurantID
	}
	if other.CustomerName != "" {
		s.CustomerName = other.CustomerName
	}
	if other.Phone != "" {
		s.Phone = other.Phone
	}
	return s
}

// Slot names used in planner output and question prompts.
const (
	SlotCity         = "city"
	SlotCuisine      = "cuisine"
	SlotDate         = "date"
	SlotTime         = "time"
	SlotPartySize    = "party_size"
	SlotRestaurantID = "restaurant_id"
	SlotCustomerName = "customer_name"
	SlotPhone        = "phone"
)

// MissingForSearch lists the required search slots not yet filled.
// Date and time are collected up front so a follow-up booking does not
// have to re-ask for them, even though search itself ignores both.
func (s SlotSet) MissingForSearch() []string {
	var missing []string
	if s.City == "" {
		missing = append(missing, SlotCity)
	}
	if s.PartySize == 0 {
		missing = append(missing, SlotPartySize)
	}
	if s.Date == "" {
		missing = append(missing, SlotDate)
	}
	if s.Time == "" {
		missing = append(missing, SlotTime)
	}
	return missing
}

// MissingForBooking lists the required booking slots not yet filled.
func (s SlotSet) MissingForBooking() []string {
	var missing []string
	if s.RestaurantID == 0 {
		missing = append(missing, SlotRestaurantID)
	}
	if s.CustomerName == "" {
		missing = append(missing, SlotCustomerName)
	}
	if s.Phone == "" {
		missing = append(missing, SlotPhone)
	}
	if s.Date == "" {
		missing = append(missing, SlotDate)
	}
	if s.Time == "" {
		missing = append(missing, SlotTime)
	}
	if s.PartySize == 0 {
		missing = append(missing, SlotPartySize)
	}
	return missing
}

// Plan is the planner's structured reading of the conversation so far.
type Plan struct {
	Intent           string   `json:"intent"`
	Slots            SlotSet  `json:"slots"`
	RecommendedTools []string `json:"recommended_tools"`
	MissingSlots     []string `json:"missing_slots"`
}

// FallbackPlan is used when the planner output cannot be parsed; the
// agent then answers conversationally instead of failing the turn.
func FallbackPlan() Plan {
	return Plan{
		Intent:           IntentOther,
		Slots:            SlotSet{},
		RecommendedTools: []string{},
		MissingSlots:     []string{},
	}
}
