// Package digest builds the once-per-day snapshot of the best-matching
// jobs. A digest is frozen at creation: later preference or status changes
// never touch it.
package digest

import (
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/spigell/jnt-tracker/internal/job"
	"github.com/spigell/jnt-tracker/internal/match"
	"github.com/spigell/jnt-tracker/internal/store"
)

const (
	keyPrefix = "jobTrackerDigest_"
	dayFormat = "2006-01-02"

	// MaxJobs caps how many postings a digest holds.
	MaxJobs = 10
)

// Digest is the frozen top-scored snapshot for one calendar day.
type Digest struct {
	Date string           `json:"date"`
	Jobs []*job.ScoredJob `json:"jobs"`
}

// Cache keys digests by calendar day and hands back stored snapshots
// verbatim.
type Cache struct {
	store  store.Store
	logger *zap.Logger
	now    func() time.Time
}

func NewCache(s store.Store, logger *zap.Logger) *Cache {
	return &Cache{store: s, logger: logger, now: time.Now}
}

// StoredForToday returns today's digest if one was already created, nil
// otherwise.
func (c *Cache) StoredForToday() *Digest {
	var d Digest
	if !store.GetJSON(c.store, c.todayKey(), &d) {
		return nil
	}
	if len(d.Jobs) == 0 {
		return nil
	}
	return &d
}

// GetOrCreateToday returns today's digest, creating and persisting it on
// the first call of the day. When the catalog yields no entries a nil
// digest is returned and nothing is persisted, so a later call the same
// day retries instead of caching emptiness.
func (c *Cache) GetOrCreateToday(catalog *job.Jobs, prefs *match.Preferences) *Digest {
	if d := c.StoredForToday(); d != nil {
		return d
	}

	top := topScored(catalog, prefs)
	if len(top) == 0 {
		return nil
	}

	d := &Digest{
		Date: c.now().Format(dayFormat),
		Jobs: top,
	}
	c.store.Set(c.todayKey(), d)

	if c.logger != nil {
		c.logger.Info("created daily digest",
			zap.String("date", d.Date),
			zap.Int("jobs", len(d.Jobs)),
		)
	}
	return d
}

func (c *Cache) todayKey() string {
	return keyPrefix + c.now().Format(dayFormat)
}

// topScored scores the whole catalog and returns up to MaxJobs entries,
// best score first. Ties go to the more recent posting; remaining ties keep
// catalog order.
func topScored(catalog *job.Jobs, prefs *match.Preferences) []*job.ScoredJob {
	scored := make([]*job.ScoredJob, 0, catalog.Len())
	for _, posting := range catalog.Items {
		scored = append(scored, &job.ScoredJob{
			Job:        *posting,
			MatchScore: match.Score(posting, prefs),
		})
	}

	sort.SliceStable(scored, func(i, k int) bool {
		if scored[i].MatchScore != scored[k].MatchScore {
			return scored[i].MatchScore > scored[k].MatchScore
		}
		return scored[i].PostedDaysAgo < scored[k].PostedDaysAgo
	})

	if len(scored) > MaxJobs {
		scored = scored[:MaxJobs]
	}
	return scored
}
