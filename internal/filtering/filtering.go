// Package filtering composes the scored catalog with the active filter
// criteria and the selected sort order.
package filtering

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/spigell/jnt-tracker/internal/job"
	"github.com/spigell/jnt-tracker/internal/ledger"
	"github.com/spigell/jnt-tracker/internal/match"
)

// Filter represents a single filtering step applied to scored jobs.
type Filter interface {
	Name() string
	IsEnabled() bool
	Apply(deps Deps, jobs *job.ScoredJobs) (*job.ScoredJobs, Step, error)
}

// Deps aggregates dependencies shared across all filtering steps.
type Deps struct {
	Ledger *ledger.Ledger
	Logger *zap.Logger
}

// Step describes the result of executing a filtering step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Criteria are the user-selected filter values. Empty fields impose no
// constraint; active criteria are combined with AND.
type Criteria struct {
	Keyword     string
	Location    string
	Mode        string
	Experience  string
	Source      string
	Status      string
	MatchesOnly bool
}

// Steps builds the filter chain for the given criteria.
func Steps(criteria *Criteria, prefs *match.Preferences) []Filter {
	return []Filter{
		newKeyword(criteria.Keyword),
		newField("location", job.JobLocationField, criteria.Location),
		newField("mode", job.JobModeField, criteria.Mode),
		newField("experience", job.JobExperienceField, criteria.Experience),
		newField("source", job.JobSourceField, criteria.Source),
		newStatus(criteria.Status),
		newMinScore(criteria.MatchesOnly, prefs.MinScore()),
	}
}

// Run executes the supplied filters sequentially.
func Run(deps Deps, steps []Filter, jobs *job.ScoredJobs) (*job.ScoredJobs, error) {
	for _, step := range steps {
		if !step.IsEnabled() {
			if deps.Logger != nil {
				deps.Logger.Debug("filter inactive", zap.String("name", step.Name()))
			}
			continue
		}

		next, info, err := step.Apply(deps, jobs)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}

		if deps.Logger != nil {
			deps.Logger.Debug("filter step",
				zap.String("name", step.Name()),
				zap.Int("initial", info.Initial),
				zap.Int("dropped", info.Dropped),
				zap.Int("left", info.Left),
			)
		}

		jobs = next
	}

	return jobs, nil
}

// FilterAndSort scores every catalog entry, applies the criteria and sorts
// the result. With empty criteria it returns the whole catalog, once each.
func FilterAndSort(catalog *job.Jobs, criteria *Criteria, prefs *match.Preferences, deps Deps, key SortKey) (*job.ScoredJobs, error) {
	if criteria == nil {
		criteria = &Criteria{}
	}

	scored := &job.ScoredJobs{Items: make([]*job.ScoredJob, 0, catalog.Len())}
	for _, posting := range catalog.Items {
		scored.Items = append(scored.Items, &job.ScoredJob{
			Job:        *posting,
			MatchScore: match.Score(posting, prefs),
		})
	}

	filtered, err := Run(deps, Steps(criteria, prefs), scored)
	if err != nil {
		return nil, err
	}

	Sort(filtered, key)
	return filtered, nil
}
