// File: services/tools/search.go
package tools

import (
	"context"
	"sort"
	"strings"

	"goodfoods/database/repository"
	"goodfoods/models"
)

// maxSearchResults caps the page returned to the model; Total still
// reflects every match.
const maxSearchResults = 6

// SearchRestaurantsTool filters the catalog by city, cuisine, price
// range, minimum rating and party size, sorted by rating descending.
type SearchRestaurantsTool struct {
	Catalog repository.CatalogRepository
}

func NewSearchRestaurantsTool(catalog repository.CatalogRepository) *SearchRestaurantsTool {
	return &SearchRestaurantsTool{Catalog: catalog}
}

func (t *SearchRestaurantsTool) Name() string {
	return "search_restaurants"
}

func (t *SearchRestaurantsTool) Description() string {
	return "Search for restaurants by city, with optional cuisine, price range, minimum rating and party size filters."
}

func (t *SearchRestaurantsTool) Parameters() ToolParameters {
	return ToolParameters{
		Type: "object",
		Properties: map[string]Property{
			"city":        {Type: "string", Description: "City to search in"},
			"cuisine":     {Type: "string", Description: "Cuisine preference, e.g. Italian"},
			"price_range": {Type: "string", Description: "Price band symbol", Enum: []string{"₹", "₹₹", "₹₹₹"}},
			"min_rating":  {Type: "number", Description: "Minimum rating, 0-5"},
			"party_size":  {Type: "integer", Description: "Seats needed; excludes restaurants with smaller capacity"},
		},
		Required: []string{"city"},
	}
}

func (t *SearchRestaurantsTool) Execute(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	city := stringArg(args, "city")
	cuisine := stringArg(args, "cuisine")
	priceRange := stringArg(args, "price_range")
	minRating := floatArg(args, "min_rating")
	partySize := intArg(args, "party_size")

	var results []models.RestaurantSummary
	for _, r := range t.Catalog.All() {
		if city != "" && !strings.EqualFold(r.City, city) {
			continue
		}
		if cuisine != "" && !hasCuisine(r.Cuisine, cuisine) {
			continue
		}
		if priceRange != "" && r.PriceRange != priceRange {
			continue
		}
		if minRating > 0 && r.Rating < minRating {
			continue
		}
		if partySize > 0 && r.Capacity < partySize {
			continue
		}
		results = append(results, r.Summary())
	}

	// Rating descending; catalog order breaks ties.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Rating > results[j].Rating
	})

	out := models.SearchResult{Total: len(results), Restaurants: results}
	if len(results) > maxSearchResults {
		out.Restaurants = results[:maxSearchResults]
	}
	if out.Restaurants == nil {
		out.Restaurants = []models.RestaurantSummary{}
	}
	return out, nil
}

func hasCuisine(cuisines []string, want string) bool {
	for _, c := range cuisines {
		if strings.EqualFold(c, want) {
			return true
		}
	}
	return false
}
