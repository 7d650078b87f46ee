package domain

// Property is a single listing row as served by GET /search.
type Property struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	City            string  `json:"city"`
	Price           float64 `json:"price"`
	RoomType        string  `json:"room_type"`
	MinimumNights   int     `json:"minimum_nights"`
	NumberOfReviews *int    `json:"number_of_reviews,omitempty"`
	Image           *string `json:"image,omitempty"`

	// Listing detail carried over from Inside-Airbnb style exports.
	HostID                      *int64   `json:"host_id,omitempty"`
	HostName                    *string  `json:"host_name,omitempty"`
	NeighbourhoodGroup          *string  `json:"neighbourhood_group,omitempty"`
	Neighbourhood               *string  `json:"neighbourhood,omitempty"`
	Latitude                    *float64 `json:"latitude,omitempty"`
	Longitude                   *float64 `json:"longitude,omitempty"`
	LastReview                  *string  `json:"last_review,omitempty"` // YYYY-MM-DD
	ReviewsPerMonth             *float64 `json:"reviews_per_month,omitempty"`
	CalculatedHostListingsCount *int     `json:"calculated_host_listings_count,omitempty"`
	Availability365             *int     `json:"availability_365,omitempty"`
	NumberOfReviewsLTM          *int     `json:"number_of_reviews_ltm,omitempty"`
	License                     *string  `json:"license,omitempty"`
}
