package filtering

import (
	"fmt"
	"sort"

	"github.com/spigell/jnt-tracker/internal/job"
)

// SortKey selects the ordering of filtered results.
type SortKey string

const (
	SortLatest     SortKey = "latest"
	SortOldest     SortKey = "oldest"
	SortMatchScore SortKey = "match-score"
	SortSalaryHigh SortKey = "salary-high"
	SortSalaryLow  SortKey = "salary-low"
)

// ParseSortKey validates a sort key from user input. Empty input defaults
// to latest.
func ParseSortKey(raw string) (SortKey, error) {
	switch SortKey(raw) {
	case "":
		return SortLatest, nil
	case SortLatest, SortOldest, SortMatchScore, SortSalaryHigh, SortSalaryLow:
		return SortKey(raw), nil
	default:
		return "", fmt.Errorf("unknown sort key %q", raw)
	}
}

// Sort orders jobs in place by the selected key. The sort is stable: ties
// keep their input order.
func Sort(jobs *job.ScoredJobs, key SortKey) {
	items := jobs.Items
	switch key {
	case SortLatest:
		sort.SliceStable(items, func(i, k int) bool {
			return items[i].PostedDaysAgo < items[k].PostedDaysAgo
		})
	case SortOldest:
		sort.SliceStable(items, func(i, k int) bool {
			return items[i].PostedDaysAgo > items[k].PostedDaysAgo
		})
	case SortMatchScore:
		sort.SliceStable(items, func(i, k int) bool {
			return items[i].MatchScore > items[k].MatchScore
		})
	case SortSalaryHigh:
		sort.SliceStable(items, func(i, k int) bool {
			return items[i].SalaryValue() > items[k].SalaryValue()
		})
	case SortSalaryLow:
		sort.SliceStable(items, func(i, k int) bool {
			return items[i].SalaryValue() < items[k].SalaryValue()
		})
	}
}
