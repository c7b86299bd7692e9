package filtering

import (
	"fmt"
	"strings"

	"github.com/spigell/jnt-tracker/internal/job"
	"github.com/spigell/jnt-tracker/internal/ledger"
)

type keywordFilter struct {
	keyword string
}

// newKeyword creates a filter that keeps jobs whose title or company
// contains the keyword, case-insensitively.
func newKeyword(keyword string) Filter {
	return &keywordFilter{keyword: strings.ToLower(strings.TrimSpace(keyword))}
}

func (f *keywordFilter) Name() string { return "keyword" }

func (f *keywordFilter) IsEnabled() bool { return f.keyword != "" }

func (f *keywordFilter) Apply(_ Deps, jobs *job.ScoredJobs) (*job.ScoredJobs, Step, error) {
	initial := jobs.Len()
	kept := make([]*job.ScoredJob, 0, initial)
	for _, posting := range jobs.Items {
		if strings.Contains(strings.ToLower(posting.Title), f.keyword) ||
			strings.Contains(strings.ToLower(posting.Company), f.keyword) {
			kept = append(kept, posting)
		}
	}

	jobs = &job.ScoredJobs{Items: kept}
	return jobs, Step{Initial: initial, Dropped: initial - jobs.Len(), Left: jobs.Len()}, nil
}

type fieldFilter struct {
	name  string
	field string
	value string
}

// newField creates a filter that keeps jobs whose named field equals the
// value exactly.
func newField(name, field, value string) Filter {
	return &fieldFilter{name: name, field: field, value: value}
}

func (f *fieldFilter) Name() string { return f.name }

func (f *fieldFilter) IsEnabled() bool { return f.value != "" }

func (f *fieldFilter) Apply(_ Deps, jobs *job.ScoredJobs) (*job.ScoredJobs, Step, error) {
	initial := jobs.Len()
	kept := make([]*job.ScoredJob, 0, initial)
	for _, posting := range jobs.Items {
		if posting.GetStringField(f.field) == f.value {
			kept = append(kept, posting)
		}
	}

	jobs = &job.ScoredJobs{Items: kept}
	return jobs, Step{Initial: initial, Dropped: initial - jobs.Len(), Left: jobs.Len()}, nil
}

type statusFilter struct {
	status string
}

// newStatus creates a filter that keeps jobs whose current application
// status in the ledger equals the value.
func newStatus(status string) Filter {
	return &statusFilter{status: status}
}

func (f *statusFilter) Name() string { return "status" }

func (f *statusFilter) IsEnabled() bool { return f.status != "" }

func (f *statusFilter) Apply(deps Deps, jobs *job.ScoredJobs) (*job.ScoredJobs, Step, error) {
	if deps.Ledger == nil {
		return jobs, Step{}, fmt.Errorf("status ledger is required")
	}

	initial := jobs.Len()
	kept := make([]*job.ScoredJob, 0, initial)
	for _, posting := range jobs.Items {
		if deps.Ledger.Get(posting.ID) == ledger.Status(f.status) {
			kept = append(kept, posting)
		}
	}

	jobs = &job.ScoredJobs{Items: kept}
	return jobs, Step{Initial: initial, Dropped: initial - jobs.Len(), Left: jobs.Len()}, nil
}

type minScoreFilter struct {
	enabled bool
	min     int
}

// newMinScore creates the matches-only filter: jobs below the preference
// threshold are dropped.
func newMinScore(enabled bool, min int) Filter {
	return &minScoreFilter{enabled: enabled, min: min}
}

func (f *minScoreFilter) Name() string { return "min_score" }

func (f *minScoreFilter) IsEnabled() bool { return f.enabled }

func (f *minScoreFilter) Apply(_ Deps, jobs *job.ScoredJobs) (*job.ScoredJobs, Step, error) {
	initial := jobs.Len()
	kept := make([]*job.ScoredJob, 0, initial)
	for _, posting := range jobs.Items {
		if posting.MatchScore >= f.min {
			kept = append(kept, posting)
		}
	}

	jobs = &job.ScoredJobs{Items: kept}
	return jobs, Step{Initial: initial, Dropped: initial - jobs.Len(), Left: jobs.Len()}, nil
}
