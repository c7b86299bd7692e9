package job

import (
	"regexp"
	"sort"
	"strconv"
)

const (
	JobIDField         = "ID"
	JobLocationField   = "Location"
	JobModeField       = "Mode"
	JobExperienceField = "Experience"
	JobSourceField     = "Source"
)

// Work modes as they appear in the catalog.
const (
	ModeRemote = "Remote"
	ModeHybrid = "Hybrid"
	ModeOnsite = "Onsite"
)

// ExperienceFresher marks entry-level postings; any other value is a
// numeric band of years.
const ExperienceFresher = "Fresher"

type Jobs struct {
	Items []*Job
}

// Job is a single catalog posting. The catalog is loaded once and never
// mutated during a session.
type Job struct {
	ID            string   `json:"id,omitempty"`
	Title         string   `json:"title,omitempty"`
	Company       string   `json:"company,omitempty"`
	Location      string   `json:"location,omitempty"`
	Mode          string   `json:"mode,omitempty"`
	Experience    string   `json:"experience,omitempty"`
	SalaryRange   string   `json:"salaryRange,omitempty"`
	Skills        []string `json:"skills,omitempty"`
	Description   string   `json:"description,omitempty"`
	PostedDaysAgo int      `json:"postedDaysAgo"`
	Source        string   `json:"source,omitempty"`
	ApplyURL      string   `json:"applyUrl,omitempty"`
}

var salaryNumber = regexp.MustCompile(`\d+`)

// SalaryValue returns the first integer substring found in the salary range.
// A range without a parsable number sorts as 0.
func (j *Job) SalaryValue() int {
	match := salaryNumber.FindString(j.SalaryRange)
	if match == "" {
		return 0
	}
	value, err := strconv.Atoi(match)
	if err != nil {
		return 0
	}
	return value
}

// ExperienceText renders the experience band for user-facing output.
func (j *Job) ExperienceText() string {
	if j.Experience == ExperienceFresher {
		return ExperienceFresher
	}
	return j.Experience + " years"
}

func (j *Job) GetStringField(name string) string {
	switch name {
	case JobIDField:
		return j.ID
	case JobLocationField:
		return j.Location
	case JobModeField:
		return j.Mode
	case JobExperienceField:
		return j.Experience
	case JobSourceField:
		return j.Source

	default:
		return ""
	}
}

func (j *Jobs) Len() int {
	return len(j.Items)
}

func (j *Jobs) FindByID(id string) *Job {
	for _, posting := range j.Items {
		if posting.ID == id {
			return posting
		}
	}
	return nil
}

func (j *Jobs) IDs() []string {
	ids := make([]string, 0, len(j.Items))
	for _, posting := range j.Items {
		ids = append(ids, posting.ID)
	}
	return ids
}

// Locations returns the sorted set of distinct locations in the catalog.
func (j *Jobs) Locations() []string {
	seen := make(map[string]struct{})
	locations := make([]string, 0)
	for _, posting := range j.Items {
		if _, ok := seen[posting.Location]; ok {
			continue
		}
		seen[posting.Location] = struct{}{}
		locations = append(locations, posting.Location)
	}
	sort.Strings(locations)
	return locations
}
