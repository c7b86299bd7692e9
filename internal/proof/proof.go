// Package proof holds the built-in test checklist, the submission proof
// links and the derived ship gate.
package proof

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/jnt-tracker/internal/store"
)

const (
	checklistKey = "jnt-test-checklist"
	linksKey     = "jnt-proof-links"

	// ChecklistSize is the number of built-in test slots.
	ChecklistSize = 10
)

// ShipStatus is the derived readiness of the project.
type ShipStatus string

const (
	ShipNotStarted ShipStatus = "not-started"
	ShipInProgress ShipStatus = "in-progress"
	ShipShipped    ShipStatus = "shipped"
)

// Link keys accepted by SetLink.
const (
	LinkProject  = "project"
	LinkGitHub   = "github"
	LinkDeployed = "deployed"
)

// Links are the three required submission URLs. Raw user input is retained
// even when invalid so nothing typed is lost.
type Links struct {
	Project  string `json:"project"`
	GitHub   string `json:"github"`
	Deployed string `json:"deployed"`
}

// Tracker reads and writes checklist and link state.
type Tracker struct {
	store  store.Store
	logger *zap.Logger
}

func New(s store.Store, logger *zap.Logger) *Tracker {
	return &Tracker{store: s, logger: logger}
}

// Checklist returns the normalized checklist state: every slot 1..N is
// present, defaulting to unchecked.
func (t *Tracker) Checklist() map[int]bool {
	raw := make(map[int]bool)
	store.GetJSON(t.store, checklistKey, &raw)

	out := make(map[int]bool, ChecklistSize)
	for i := 1; i <= ChecklistSize; i++ {
		out[i] = raw[i]
	}
	return out
}

// SetChecklistItem records one slot. Ids outside 1..N are ignored.
func (t *Tracker) SetChecklistItem(id int, checked bool) {
	if id < 1 || id > ChecklistSize {
		return
	}
	state := t.Checklist()
	state[id] = checked
	t.store.Set(checklistKey, state)
}

// ResetChecklist clears every slot.
func (t *Tracker) ResetChecklist() {
	t.store.Delete(checklistKey)
}

func (t *Tracker) AllTestsPassed() bool {
	state := t.Checklist()
	for i := 1; i <= ChecklistSize; i++ {
		if !state[i] {
			return false
		}
	}
	return true
}

func (t *Tracker) anyTestChecked() bool {
	for _, checked := range t.Checklist() {
		if checked {
			return true
		}
	}
	return false
}

// Links returns the stored proof links, empty strings when unset.
func (t *Tracker) Links() Links {
	var links Links
	store.GetJSON(t.store, linksKey, &links)
	return links
}

// ErrInvalidURL marks a stored link that does not validate. The raw value
// is retained so the user's input is not lost.
var ErrInvalidURL = errors.New("not a valid http(s) URL")

// SetLink stores the trimmed value under the given key. A non-empty value
// that is not an http(s) URL is still stored but reported back as
// ErrInvalidURL.
func (t *Tracker) SetLink(key, value string) error {
	value = strings.TrimSpace(value)

	links := t.Links()
	switch key {
	case LinkProject:
		links.Project = value
	case LinkGitHub:
		links.GitHub = value
	case LinkDeployed:
		links.Deployed = value
	default:
		return fmt.Errorf("unknown proof link %q (want %s, %s or %s)",
			key, LinkProject, LinkGitHub, LinkDeployed)
	}
	t.store.Set(linksKey, links)

	if value != "" && !ValidateURL(value) {
		return fmt.Errorf("%s: %w: %q", key, ErrInvalidURL, value)
	}
	return nil
}

// AllLinksValid reports whether all three links hold valid http(s) URLs.
func (t *Tracker) AllLinksValid() bool {
	links := t.Links()
	return ValidateURL(links.Project) && ValidateURL(links.GitHub) && ValidateURL(links.Deployed)
}

// ValidateURL accepts absolute http or https URLs only.
func ValidateURL(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}
	u, err := url.Parse(value)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}

// Status derives the ship gate: shipped when every test is checked and
// every link is valid; in-progress as soon as anything was touched.
func (t *Tracker) Status() ShipStatus {
	if t.AllTestsPassed() && t.AllLinksValid() {
		return ShipShipped
	}

	links := t.Links()
	hasAnyLink := links.Project != "" || links.GitHub != "" || links.Deployed != ""
	if hasAnyLink || t.anyTestChecked() {
		return ShipInProgress
	}
	return ShipNotStarted
}
