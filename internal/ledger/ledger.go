// Package ledger tracks per-job application status and the history of
// status changes.
package ledger

import (
	"time"

	"go.uber.org/zap"

	"github.com/spigell/jnt-tracker/internal/job"
	"github.com/spigell/jnt-tracker/internal/store"
)

// Status is the application status of a single job.
type Status string

const (
	StatusNotApplied Status = "Not Applied"
	StatusApplied    Status = "Applied"
	StatusRejected   Status = "Rejected"
	StatusSelected   Status = "Selected"
)

// Values lists every valid status, in display order.
func Values() []Status {
	return []Status{StatusNotApplied, StatusApplied, StatusRejected, StatusSelected}
}

func (s Status) Valid() bool {
	switch s {
	case StatusNotApplied, StatusApplied, StatusRejected, StatusSelected:
		return true
	default:
		return false
	}
}

const (
	statusMapKey = "jobTrackerStatus"
	updatesKey   = "jobTrackerStatusUpdates"

	// maxUpdates caps the history log; older entries are silently dropped.
	maxUpdates = 50
)

// Update is one entry of the status-change history, newest first.
type Update struct {
	JobID       string    `json:"jobId"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Status      Status    `json:"status"`
	DateChanged time.Time `json:"dateChanged"`
}

// Ledger reads and writes the persisted status map and history log.
type Ledger struct {
	store  store.Store
	logger *zap.Logger
	now    func() time.Time
}

func New(s store.Store, logger *zap.Logger) *Ledger {
	return &Ledger{store: s, logger: logger, now: time.Now}
}

// Get returns the status of a job. Absent or unrecognized stored values
// count as Not Applied.
func (l *Ledger) Get(jobID string) Status {
	raw := l.rawMap()
	status := Status(raw[jobID])
	if !status.Valid() {
		return StatusNotApplied
	}
	return status
}

// Map returns the sanitized status map for every job that has one stored.
func (l *Ledger) Map() map[string]Status {
	raw := l.rawMap()
	out := make(map[string]Status, len(raw))
	for id, value := range raw {
		status := Status(value)
		if !status.Valid() {
			status = StatusNotApplied
		}
		out[id] = status
	}
	return out
}

// Set records a new status for the job. Invalid statuses are ignored.
// Transitions to anything but Not Applied are appended to the front of the
// history log, which is then truncated to its cap. The posting is used to
// annotate the history entry; without it no entry is recorded.
func (l *Ledger) Set(jobID string, status Status, posting *job.Job) {
	if !status.Valid() {
		if l.logger != nil {
			l.logger.Debug("ignoring invalid status value",
				zap.String("job_id", jobID),
				zap.String("status", string(status)),
			)
		}
		return
	}

	raw := l.rawMap()
	raw[jobID] = string(status)
	l.store.Set(statusMapKey, raw)

	if status == StatusNotApplied || posting == nil {
		return
	}

	updates := l.Updates()
	updates = append([]Update{{
		JobID:       jobID,
		Title:       posting.Title,
		Company:     posting.Company,
		Status:      status,
		DateChanged: l.now(),
	}}, updates...)
	if len(updates) > maxUpdates {
		updates = updates[:maxUpdates]
	}
	l.store.Set(updatesKey, updates)
}

// Updates returns the status-change history, newest first.
func (l *Ledger) Updates() []Update {
	var updates []Update
	store.GetJSON(l.store, updatesKey, &updates)
	return updates
}

func (l *Ledger) rawMap() map[string]string {
	raw := make(map[string]string)
	store.GetJSON(l.store, statusMapKey, &raw)
	return raw
}
