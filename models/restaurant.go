package models

// Restaurant is a single catalog entry as stored in restaurants.json.
type Restaurant struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	City           string   `json:"city"`
	Area           string   `json:"area"`
	Cuisine        []string `json:"cuisine"`
	Rating         float64  `json:"rating"`
	PriceRange     string   `json:"price_range"`
	PricePerPerson int      `json:"price_per_person"`
	Capacity       int      `json:"capacity"`
	Features       []string `json:"features"`
	OpeningHours   string   `json:"opening_hours,omitempty"`
}

// RestaurantSummary is the trimmed view returned inside search results.
type RestaurantSummary struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	City           string   `json:"city"`
	Area           string   `json:"area"`
	Cuisine        []string `json:"cuisine"`
	Rating         float64  `json:"rating"`
	PriceRange     string   `json:"price_range"`
	PricePerPerson int      `json:"price_per_person"`
	Capacity       int      `json:"capacity"`
	Features       []string `json:"features"`
}

// Summary converts a catalog entry into its search-result view.
func (r Restaurant) Summary() RestaurantSummary {
	return RestaurantSummary{
		ID:             r.ID,
		Name:           r.Name,
		City:           r.City,
		Area:           r.Area,
		Cuisine:        r.Cuisine,
		Rating:         r.Rating,
		PriceRange:     r.PriceRange,
		PricePerPerson: r.PricePerPerson,
		Capacity:       r.Capacity,
		Features:       r.Features,
	}
}

// SearchResult is the payload produced by the restaurant search tool.
// Total counts every match; Restaurants carries only the returned page.
type SearchResult struct {
	Total       int                 `json:"total"`
	Restaurants []RestaurantSummary `json:"restaurants"`
}
