package proof

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/spigell/jnt-tracker/internal/store"
)

func testTracker() *Tracker {
	return New(store.NewMemory(), zap.NewNop())
}

func TestChecklistDefaults(t *testing.T) {
	tracker := testTracker()

	state := tracker.Checklist()
	if len(state) != ChecklistSize {
		t.Fatalf("expected %d slots, got %d", ChecklistSize, len(state))
	}
	for i := 1; i <= ChecklistSize; i++ {
		if state[i] {
			t.Fatalf("slot %d must default to unchecked", i)
		}
	}
	if tracker.AllTestsPassed() {
		t.Fatalf("empty checklist must not pass")
	}
}

func TestChecklistSetAndReset(t *testing.T) {
	tracker := testTracker()

	tracker.SetChecklistItem(3, true)
	if !tracker.Checklist()[3] {
		t.Fatalf("slot 3 must be checked")
	}

	tracker.SetChecklistItem(3, false)
	if tracker.Checklist()[3] {
		t.Fatalf("slot 3 must be unchecked again")
	}

	for i := 1; i <= ChecklistSize; i++ {
		tracker.SetChecklistItem(i, true)
	}
	if !tracker.AllTestsPassed() {
		t.Fatalf("full checklist must pass")
	}

	tracker.ResetChecklist()
	if tracker.AllTestsPassed() {
		t.Fatalf("reset checklist must not pass")
	}
	if tracker.Checklist()[1] {
		t.Fatalf("reset must clear every slot")
	}
}

func TestChecklistIgnoresOutOfRangeIDs(t *testing.T) {
	tracker := testTracker()

	tracker.SetChecklistItem(0, true)
	tracker.SetChecklistItem(ChecklistSize+1, true)
	tracker.SetChecklistItem(-5, true)

	for id, checked := range tracker.Checklist() {
		if checked {
			t.Fatalf("slot %d must stay unchecked", id)
		}
	}
}

func TestSetLinkAndReadBack(t *testing.T) {
	tracker := testTracker()

	if err := tracker.SetLink(LinkGitHub, "https://github.com/example/tracker"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := tracker.SetLink(LinkProject, "  https://example.com/project  "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	links := tracker.Links()
	if links.GitHub != "https://github.com/example/tracker" {
		t.Fatalf("unexpected github link: %q", links.GitHub)
	}
	if links.Project != "https://example.com/project" {
		t.Fatalf("expected trimmed value, got %q", links.Project)
	}
	if links.Deployed != "" {
		t.Fatalf("unset link must be empty, got %q", links.Deployed)
	}
}

func TestSetLinkInvalidURLStillStored(t *testing.T) {
	tracker := testTracker()

	err := tracker.SetLink(LinkDeployed, "not a url")
	if !errors.Is(err, ErrInvalidURL) {
		t.Fatalf("expected ErrInvalidURL, got %v", err)
	}
	if got := tracker.Links().Deployed; got != "not a url" {
		t.Fatalf("raw value must be retained, got %q", got)
	}
	if tracker.AllLinksValid() {
		t.Fatalf("invalid link must not count as valid")
	}
}

func TestSetLinkUnknownKey(t *testing.T) {
	tracker := testTracker()

	err := tracker.SetLink("portfolio", "https://example.com")
	if err == nil || errors.Is(err, ErrInvalidURL) {
		t.Fatalf("expected unknown-key error, got %v", err)
	}
	links := tracker.Links()
	if links.Project != "" || links.GitHub != "" || links.Deployed != "" {
		t.Fatalf("unknown key must not store anything: %+v", links)
	}
}

func TestValidateURL(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"https://example.com", true},
		{"http://example.com/path?q=1", true},
		{"  https://example.com  ", true},
		{"ftp://example.com", false},
		{"example.com", false},
		{"http://", false},
		{"not a url", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := ValidateURL(tc.value); got != tc.want {
			t.Fatalf("ValidateURL(%q) = %v, want %v", tc.value, got, tc.want)
		}
	}
}

func TestShipStatusTransitions(t *testing.T) {
	tracker := testTracker()

	if got := tracker.Status(); got != ShipNotStarted {
		t.Fatalf("expected %q, got %q", ShipNotStarted, got)
	}

	tracker.SetChecklistItem(1, true)
	if got := tracker.Status(); got != ShipInProgress {
		t.Fatalf("expected %q after one check, got %q", ShipInProgress, got)
	}

	for i := 1; i <= ChecklistSize; i++ {
		tracker.SetChecklistItem(i, true)
	}
	tracker.SetLink(LinkProject, "https://example.com/p")
	tracker.SetLink(LinkGitHub, "https://github.com/example/tracker")
	if got := tracker.Status(); got != ShipInProgress {
		t.Fatalf("expected %q with one link missing, got %q", ShipInProgress, got)
	}

	tracker.SetLink(LinkDeployed, "https://tracker.example.com")
	if got := tracker.Status(); got != ShipShipped {
		t.Fatalf("expected %q, got %q", ShipShipped, got)
	}

	// An invalid link drops the gate back.
	tracker.SetLink(LinkDeployed, "broken")
	if got := tracker.Status(); got != ShipInProgress {
		t.Fatalf("expected %q after breaking a link, got %q", ShipInProgress, got)
	}
}

func TestStepCompletion(t *testing.T) {
	tracker := testTracker()

	steps := tracker.StepCompletion(StepInputs{})
	if len(steps) != 8 {
		t.Fatalf("expected 8 steps, got %d", len(steps))
	}
	for _, always := range []int{1, 3, 6} {
		if !steps[always] {
			t.Fatalf("step %d must always be completed", always)
		}
	}
	for _, gated := range []int{2, 4, 5, 7, 8} {
		if steps[gated] {
			t.Fatalf("step %d must start pending", gated)
		}
	}

	for i := 1; i <= ChecklistSize; i++ {
		tracker.SetChecklistItem(i, true)
	}
	steps = tracker.StepCompletion(StepInputs{
		HasPreferences: true,
		DigestStored:   true,
		HasAnyStatus:   true,
	})
	for step := 1; step <= 7; step++ {
		if !steps[step] {
			t.Fatalf("step %d must be completed", step)
		}
	}
	if steps[8] {
		t.Fatalf("step 8 needs valid links")
	}
}

func TestSubmissionText(t *testing.T) {
	tracker := testTracker()

	text := tracker.SubmissionText()
	if got := strings.Count(text, "(not set)"); got != 3 {
		t.Fatalf("expected 3 placeholders, got %d:\n%s", got, text)
	}

	tracker.SetLink(LinkGitHub, "https://github.com/example/tracker")
	text = tracker.SubmissionText()
	if !strings.Contains(text, "GitHub Repository:\nhttps://github.com/example/tracker") {
		t.Fatalf("submission missing github link:\n%s", text)
	}
	if got := strings.Count(text, "(not set)"); got != 2 {
		t.Fatalf("expected 2 placeholders left, got %d", got)
	}
	for _, label := range []string{"Project:", "GitHub Repository:", "Live Deployment:", "Core Features:"} {
		if !strings.Contains(text, label) {
			t.Fatalf("submission missing %q", label)
		}
	}
}
