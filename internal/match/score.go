package match

import (
	"strings"

	"github.com/spigell/jnt-tracker/internal/job"
)

// PremiumSource earns a small bonus on top of the regular rules.
const PremiumSource = "LinkedIn"

// RecentDays is the posting age, in days, still counted as fresh.
const RecentDays = 2

const maxScore = 100

// Bonus weights. All applicable bonuses are additive; the total is clamped
// to maxScore.
const (
	titleKeywordBonus       = 25
	descriptionKeywordBonus = 15
	locationBonus           = 15
	modeBonus               = 10
	experienceBonus         = 10
	skillOverlapBonus       = 15
	recentBonus             = 5
	premiumSourceBonus      = 5
)

// Score computes the match score of a posting against the preferences.
// It is a pure function: same inputs always produce the same score.
// Without preferences every posting scores 0. Keyword matching is plain
// substring containment; a short keyword matches inside longer words.
func Score(j *job.Job, p *Preferences) int {
	if p == nil {
		return 0
	}

	score := 0
	keywords := p.RoleKeywordList()
	skills := p.SkillList()

	if len(keywords) > 0 {
		title := strings.ToLower(j.Title)
		if containsAny(title, keywords) {
			score += titleKeywordBonus
		}

		description := strings.ToLower(j.Description)
		if containsAny(description, keywords) {
			score += descriptionKeywordBonus
		}
	}

	if len(p.PreferredLocations) > 0 && member(p.PreferredLocations, j.Location) {
		score += locationBonus
	}

	if len(p.PreferredModes) > 0 && member(p.PreferredModes, j.Mode) {
		score += modeBonus
	}

	if p.ExperienceLevel != "" && j.Experience == p.ExperienceLevel {
		score += experienceBonus
	}

	if len(skills) > 0 && overlaps(skills, j.Skills) {
		score += skillOverlapBonus
	}

	if j.PostedDaysAgo <= RecentDays {
		score += recentBonus
	}

	if j.Source == PremiumSource {
		score += premiumSourceBonus
	}

	if score > maxScore {
		return maxScore
	}
	return score
}

func containsAny(haystack string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}

func member(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}

func overlaps(wanted []string, jobSkills []string) bool {
	if len(jobSkills) == 0 {
		return false
	}
	lowered := make(map[string]struct{}, len(jobSkills))
	for _, skill := range jobSkills {
		lowered[strings.ToLower(skill)] = struct{}{}
	}
	for _, skill := range wanted {
		if _, ok := lowered[skill]; ok {
			return true
		}
	}
	return false
}
