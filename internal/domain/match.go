package domain

// MatchStage identifies which relaxation stage produced a match result.
type MatchStage string

const (
	StageStrict           MatchStage = "strict"
	StageRelaxedUnion     MatchStage = "relaxed_union"
	StageBudgetRelaxed    MatchStage = "budget_relaxed"
	StageAreaOnly         MatchStage = "area_only"
	StageAllAvailable     MatchStage = "all_available"
	StageAllUnconditional MatchStage = "all_unconditional"
	// StageEmergency carries the synthetic generalist planner returned when
	// the dataset itself is empty.
	StageEmergency MatchStage = "emergency"
)

// DataSource tells which backend served a result. Results never mix sources.
type DataSource string

const (
	SourceRemote DataSource = "remote"
	SourceLocal  DataSource = "local"
)

// MatchResult - ranked, non-empty planner list
type MatchResult struct {
	Stage    MatchStage `json:"stage"`
	Source   DataSource `json:"source"`
	Planners []Planner  `json:"planners"`
}

// IsEmergency reports whether the result is the synthetic fallback.
func (r MatchResult) IsEmergency() bool {
	return r.Stage == StageEmergency
}

// EmergencyPlannerID is the id of the synthetic generalist planner.
const EmergencyPlannerID = "planner-emergency-generalist"

// EmergencyPlanner builds the generalist record that stands in for an empty
// dataset. It serves every canonical area and category.
func EmergencyPlanner() Planner {
	return Planner{
		ID:             EmergencyPlannerID,
		Name:           "Trip Concierge (Generalist)",
		Rating:         4.0,
		ReviewCount:    0,
		Specialties:    []string{"general travel planning"},
		Areas:          CanonicalAreas(),
		Categories:     CanonicalCategories(),
		PriceRange:     PriceRange{Min: 1000, Max: 100000},
		Availability:   true,
		Languages:      []string{"ja", "en"},
		CompletedTrips: 0,
		ResponseTime:   "within 24 hours",
	}
}
