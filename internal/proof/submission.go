package proof

// StepInputs are the externally-derived facts the proof page cannot compute
// on its own.
type StepInputs struct {
	HasPreferences bool
	DigestStored   bool
	HasAnyStatus   bool
}

// StepCompletion reports the eight proof steps. Steps 1, 3 and 6 are
// narrative (browse, filters, saved view) and always count as done.
func (t *Tracker) StepCompletion(in StepInputs) map[int]bool {
	return map[int]bool{
		1: true,
		2: in.HasPreferences,
		3: true,
		4: in.DigestStored,
		5: in.HasAnyStatus,
		6: true,
		7: t.AllTestsPassed(),
		8: t.AllLinksValid(),
	}
}

const notSet = "(not set)"

// SubmissionText renders the final submission block with the stored links.
func (t *Tracker) SubmissionText() string {
	links := t.Links()
	return `------------------------------------------
Job Notification Tracker — Final Submission

Project:
` + orNotSet(links.Project) + `

GitHub Repository:
` + orNotSet(links.GitHub) + `

Live Deployment:
` + orNotSet(links.Deployed) + `

Core Features:
- Intelligent match scoring
- Daily digest simulation
- Status tracking
- Test checklist enforced
------------------------------------------`
}

func orNotSet(value string) string {
	if value == "" {
		return notSet
	}
	return value
}
