package domain

// PriceRange - planner fee window in yen
type PriceRange struct {
	Min float64 `json:"min" firestore:"min"`
	Max float64 `json:"max" firestore:"max"`
}

// Budget - requested spending window in yen
type Budget struct {
	Min float64 `json:"min" firestore:"min"`
	Max float64 `json:"max" firestore:"max"`
}

// Overlaps reports whether the planner's range intersects the budget window.
func (p PriceRange) Overlaps(b Budget) bool {
	return p.Min <= b.Max && p.Max >= b.Min
}

// Widen scales the budget window to [Min*lower, Max*upper].
func (b Budget) Widen(lower, upper float64) Budget {
	return Budget{Min: b.Min * lower, Max: b.Max * upper}
}

// Planner - travel planner offering services in one or more areas
type Planner struct {
	ID             string     `json:"id" firestore:"id"`
	Name           string     `json:"name" firestore:"name"`
	Rating         float64    `json:"rating" firestore:"rating"`
	ReviewCount    int        `json:"review_count" firestore:"review_count"`
	Specialties    []string   `json:"specialties" firestore:"specialties"`
	Areas          []string   `json:"areas" firestore:"areas"`
	Categories     []string   `json:"categories" firestore:"categories"`
	PriceRange     PriceRange `json:"price_range" firestore:"price_range"`
	Availability   bool       `json:"availability" firestore:"availability"`
	Languages      []string   `json:"languages" firestore:"languages"`
	CompletedTrips int        `json:"completed_trips" firestore:"completed_trips"`
	ResponseTime   string     `json:"response_time" firestore:"response_time"`
}

// HasArea reports whether area appears verbatim in p.Areas.
func (p *Planner) HasArea(area string) bool {
	return containsString(p.Areas, area)
}

// HasCategory reports whether category appears verbatim in p.Categories.
func (p *Planner) HasCategory(category string) bool {
	return containsString(p.Categories, category)
}

// MatchCriteria - what the traveller asks for
type MatchCriteria struct {
	Areas      []string `json:"areas"`
	Categories []string `json:"categories"`
	Budget     Budget   `json:"budget"`
}

// MaxRating is the upper bound of Planner.Rating.
const MaxRating = 5.0

func containsString(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
