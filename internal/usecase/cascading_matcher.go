package usecase

import (
	"sort"

	"go.uber.org/zap"

	"github.com/trip-planner-service/internal/domain"
)

const (
	budgetWidenLower = 0.5
	budgetWidenUpper = 1.5
)

type matchStage struct {
	name domain.MatchStage
	keep func(p *domain.Planner, c domain.MatchCriteria) bool
}

// CascadingMatcher ranks planners from a local dataset, relaxing the
// criteria stage by stage until something matches. The result is never
// empty.
type CascadingMatcher struct {
	areas      *domain.AliasIndex
	categories *domain.AliasIndex
	stages     []matchStage
	observe    func(domain.MatchStage)
	logger     *zap.Logger
}

// MatcherOption configures a CascadingMatcher.
type MatcherOption func(*CascadingMatcher)

// WithStageObserver registers fn to be called with every stage the matcher
// evaluates, in order.
func WithStageObserver(fn func(domain.MatchStage)) MatcherOption {
	return func(m *CascadingMatcher) {
		m.observe = fn
	}
}

// WithAliasIndexes replaces the default area and category alias indexes.
func WithAliasIndexes(areas, categories *domain.AliasIndex) MatcherOption {
	return func(m *CascadingMatcher) {
		m.areas = areas
		m.categories = categories
	}
}

func NewCascadingMatcher(logger *zap.Logger, opts ...MatcherOption) *CascadingMatcher {
	m := &CascadingMatcher{
		areas:      domain.AreaIndex,
		categories: domain.CategoryIndex,
		observe:    func(domain.MatchStage) {},
		logger:     logger,
	}
	for _, opt := range opts {
		opt(m)
	}

	m.stages = []matchStage{
		{name: domain.StageStrict, keep: m.strict},
		{name: domain.StageRelaxedUnion, keep: relaxedUnion},
		{name: domain.StageBudgetRelaxed, keep: budgetRelaxed},
		{name: domain.StageAreaOnly, keep: areaOnly},
		{name: domain.StageAllAvailable, keep: allAvailable},
		{name: domain.StageAllUnconditional, keep: allUnconditional},
	}
	return m
}

// Match returns the planners of the first stage with at least one hit,
// sorted by rating descending. An empty dataset yields the emergency
// generalist.
func (m *CascadingMatcher) Match(planners []domain.Planner, criteria domain.MatchCriteria) domain.MatchResult {
	for _, stage := range m.stages {
		m.observe(stage.name)

		matched := make([]domain.Planner, 0, len(planners))
		for i := range planners {
			if stage.keep(&planners[i], criteria) {
				matched = append(matched, planners[i])
			}
		}

		if len(matched) > 0 {
			sortByRating(matched)
			m.logger.Debug("Planner match found",
				zap.String("stage", string(stage.name)),
				zap.Int("count", len(matched)))
			return domain.MatchResult{
				Stage:    stage.name,
				Source:   domain.SourceLocal,
				Planners: matched,
			}
		}
	}

	m.observe(domain.StageEmergency)
	m.logger.Warn("Planner dataset is empty, returning emergency planner")
	return domain.MatchResult{
		Stage:    domain.StageEmergency,
		Source:   domain.SourceLocal,
		Planners: []domain.Planner{domain.EmergencyPlanner()},
	}
}

func (m *CascadingMatcher) strict(p *domain.Planner, c domain.MatchCriteria) bool {
	return p.Availability &&
		p.PriceRange.Overlaps(c.Budget) &&
		m.areas.MatchesAny(c.Areas, p.Areas) &&
		m.categories.MatchesAny(c.Categories, p.Categories)
}

func relaxedUnion(p *domain.Planner, c domain.MatchCriteria) bool {
	return p.Availability &&
		p.PriceRange.Overlaps(c.Budget) &&
		(hasAnyArea(p, c.Areas) || hasAnyCategory(p, c.Categories))
}

func budgetRelaxed(p *domain.Planner, c domain.MatchCriteria) bool {
	widened := c
	widened.Budget = c.Budget.Widen(budgetWidenLower, budgetWidenUpper)
	return relaxedUnion(p, widened)
}

func areaOnly(p *domain.Planner, c domain.MatchCriteria) bool {
	return p.Availability && hasAnyArea(p, c.Areas)
}

func allAvailable(p *domain.Planner, _ domain.MatchCriteria) bool {
	return p.Availability
}

func allUnconditional(*domain.Planner, domain.MatchCriteria) bool {
	return true
}

func hasAnyArea(p *domain.Planner, areas []string) bool {
	for _, area := range areas {
		if p.HasArea(area) {
			return true
		}
	}
	return false
}

func hasAnyCategory(p *domain.Planner, categories []string) bool {
	for _, category := range categories {
		if p.HasCategory(category) {
			return true
		}
	}
	return false
}

func sortByRating(planners []domain.Planner) {
	sort.SliceStable(planners, func(i, j int) bool {
		return planners[i].Rating > planners[j].Rating
	})
}
