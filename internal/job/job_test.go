package job

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSalaryValue(t *testing.T) {
	cases := []struct {
		salaryRange string
		want        int
	}{
		{"12-18 LPA", 12},
		{"6 LPA", 6},
		{"₹8-11 LPA", 8},
		{"Competitive", 0},
		{"", 0},
	}
	for _, tc := range cases {
		j := &Job{SalaryRange: tc.salaryRange}
		if got := j.SalaryValue(); got != tc.want {
			t.Fatalf("SalaryValue(%q) = %d, want %d", tc.salaryRange, got, tc.want)
		}
	}
}

func TestExperienceText(t *testing.T) {
	if got := (&Job{Experience: ExperienceFresher}).ExperienceText(); got != "Fresher" {
		t.Fatalf("unexpected text %q", got)
	}
	if got := (&Job{Experience: "2"}).ExperienceText(); got != "2 years" {
		t.Fatalf("unexpected text %q", got)
	}
}

func TestGetStringField(t *testing.T) {
	j := &Job{ID: "1", Location: "Remote", Mode: ModeHybrid, Experience: "2", Source: "LinkedIn"}

	cases := map[string]string{
		JobIDField:         "1",
		JobLocationField:   "Remote",
		JobModeField:       ModeHybrid,
		JobExperienceField: "2",
		JobSourceField:     "LinkedIn",
		"Unknown":          "",
	}
	for field, want := range cases {
		if got := j.GetStringField(field); got != want {
			t.Fatalf("GetStringField(%q) = %q, want %q", field, got, want)
		}
	}
}

func TestLocations(t *testing.T) {
	jobs := &Jobs{Items: []*Job{
		{ID: "1", Location: "Pune"},
		{ID: "2", Location: "Bangalore"},
		{ID: "3", Location: "Pune"},
	}}

	got := jobs.Locations()
	if len(got) != 2 || got[0] != "Bangalore" || got[1] != "Pune" {
		t.Fatalf("expected sorted distinct locations, got %v", got)
	}
}

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jobs.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestLoadCatalog(t *testing.T) {
	path := writeCatalog(t, `[
	  {"id": 1, "title": "Software Engineer", "skills": ["Go"], "postedDaysAgo": 2},
	  {"id": "2", "title": "Data Analyst", "salaryRange": "6-9 LPA"}
	]`)

	catalog, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if catalog.Len() != 2 {
		t.Fatalf("expected 2 jobs, got %d", catalog.Len())
	}

	// Numeric ids decode weakly into strings.
	first := catalog.FindByID("1")
	if first == nil || first.Title != "Software Engineer" || first.PostedDaysAgo != 2 {
		t.Fatalf("unexpected first job: %+v", first)
	}
	if len(first.Skills) != 1 || first.Skills[0] != "Go" {
		t.Fatalf("unexpected skills: %v", first.Skills)
	}
}

func TestLoadCatalogRejectsDuplicateIDs(t *testing.T) {
	path := writeCatalog(t, `[{"id": "1", "title": "A"}, {"id": "1", "title": "B"}]`)

	if _, err := LoadCatalog(path); err == nil {
		t.Fatalf("expected duplicate-id error")
	}
}

func TestLoadCatalogRejectsMissingID(t *testing.T) {
	path := writeCatalog(t, `[{"title": "No ID"}]`)

	if _, err := LoadCatalog(path); err == nil {
		t.Fatalf("expected missing-id error")
	}
}

func TestLoadCatalogMissingFile(t *testing.T) {
	if _, err := LoadCatalog(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadCatalogMalformedJSON(t *testing.T) {
	path := writeCatalog(t, `{not json`)

	if _, err := LoadCatalog(path); err == nil {
		t.Fatalf("expected parse error")
	}
}
