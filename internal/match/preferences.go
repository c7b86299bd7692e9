package match

import "strings"

// DefaultMinMatchScore is used when preferences are absent or do not set a
// threshold of their own.
const DefaultMinMatchScore = 40

// Preferences are the user's declared matching preferences. They are saved
// wholesale: every save overwrites the previous value. The json tags define
// the persisted shape, the mapstructure tags the config file shape.
type Preferences struct {
	RoleKeywords       string   `json:"roleKeywords" mapstructure:"role-keywords"`
	Skills             string   `json:"skills" mapstructure:"skills"`
	PreferredLocations []string `json:"preferredLocations" mapstructure:"preferred-locations"`
	PreferredModes     []string `json:"preferredMode" mapstructure:"preferred-modes"`
	ExperienceLevel    string   `json:"experienceLevel" mapstructure:"experience-level"`
	MinMatchScore      int      `json:"minMatchScore" mapstructure:"min-match-score"`
}

// RoleKeywordList splits the comma-separated role keywords, lowercased with
// empties dropped.
func (p *Preferences) RoleKeywordList() []string {
	if p == nil {
		return nil
	}
	return splitList(p.RoleKeywords)
}

// SkillList splits the comma-separated skills, lowercased with empties
// dropped.
func (p *Preferences) SkillList() []string {
	if p == nil {
		return nil
	}
	return splitList(p.Skills)
}

// HasBasics reports whether the preferences carry enough signal to produce a
// meaningful digest: role keywords or preferred locations.
func (p *Preferences) HasBasics() bool {
	if p == nil {
		return false
	}
	return strings.TrimSpace(p.RoleKeywords) != "" || len(p.PreferredLocations) > 0
}

// MinScore returns the matches-only threshold, falling back to the default
// when preferences are absent or unset.
func (p *Preferences) MinScore() int {
	if p == nil || p.MinMatchScore <= 0 {
		return DefaultMinMatchScore
	}
	return p.MinMatchScore
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}
