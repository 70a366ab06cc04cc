package search

// Result-size bounds for inventory search. Limits outside [1, MaxLimit] are
// rejected or clamped at the HTTP boundary before a query is built.
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// HotelCriteria holds the optional hotel search filters. Unset fields do not
// constrain the query.
type HotelCriteria struct {
	Destination *string  // matched against location, name and address
	MinPrice    *float64 // price_per_night lower bound, inclusive
	MaxPrice    *float64 // price_per_night upper bound, inclusive
	StarRating  *int     // minimum star rating
	SortBy      string
	Limit       int
}

// FlightCriteria holds the optional flight search filters.
type FlightCriteria struct {
	DepartureCity *string
	ArrivalCity   *string
	CabinClass    *string // economy / business / first, exact match
	MaxStops      *int
	MinPrice      *float64
	MaxPrice      *float64
	SortBy        string
	Limit         int
}

// Sort keys per inventory variant. An unrecognized key yields no ORDER BY:
// row order is then whatever the storage engine returns, and the fallback is
// logged by the repository rather than silently ignored.
var (
	HotelSortColumns = map[string]string{
		"price":  "price_per_night ASC",
		"rating": "star_rating DESC",
		"name":   "name ASC",
	}
	FlightSortColumns = map[string]string{
		"price":          "price ASC",
		"duration":       "duration_minutes ASC",
		"departure_time": "departure_time ASC",
	}
)

// OrderBy renders the ORDER BY clause for key, or ("", false) when the key is
// not in the variant's sort vocabulary.
func OrderBy(columns map[string]string, key string) (string, bool) {
	col, ok := columns[key]
	if !ok {
		return "", false
	}
	return " ORDER BY " + col, true
}

// ClampLimit applies the default and the server-side maximum.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}
