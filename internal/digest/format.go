package digest

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	// MaxCompactLen is the character budget of the bounded compact format,
	// sized for mailto bodies.
	MaxCompactLen = 1000

	truncationMarker = "\n\n[Truncated. Use Copy to Clipboard for full digest.]"

	mailtoSubject = "My 9AM Job Digest"
)

// PlainText renders the verbose multi-line digest report.
func PlainText(d *Digest) string {
	if d == nil || len(d.Jobs) == 0 {
		return ""
	}

	lines := []string{"Top 10 Jobs For You — 9AM Digest", d.Date, ""}
	for i, posting := range d.Jobs {
		lines = append(lines,
			fmt.Sprintf("%d. %s", i+1, posting.Title),
			"   Company: "+posting.Company,
			"   Location: "+posting.Location,
			"   Experience: "+posting.ExperienceText(),
			fmt.Sprintf("   Match Score: %d", posting.MatchScore),
			"",
		)
	}
	lines = append(lines, "This digest was generated based on your preferences.")
	return strings.Join(lines, "\n")
}

// Compact renders one line per job, suitable for size-constrained
// transports.
func Compact(d *Digest) string {
	if d == nil || len(d.Jobs) == 0 {
		return ""
	}

	lines := []string{"Top 10 Jobs For You - 9AM Digest", d.Date, ""}
	for i, posting := range d.Jobs {
		lines = append(lines, fmt.Sprintf("%d. %s | %s | %s | %s | Match: %d",
			i+1, posting.Title, posting.Company, posting.Location,
			posting.ExperienceText(), posting.MatchScore,
		))
	}
	lines = append(lines, "", "This digest was generated based on your preferences.")
	return strings.Join(lines, "\n")
}

// CompactBounded is Compact cut to the character budget, with a truncation
// marker appended when the cut happened.
func CompactBounded(d *Digest) string {
	body := Compact(d)
	if len(body) > MaxCompactLen {
		body = body[:MaxCompactLen] + truncationMarker
	}
	return body
}

// MailtoURL builds a mail-draft URL carrying the bounded compact digest.
func MailtoURL(d *Digest) string {
	return "mailto:?subject=" + encodeComponent(mailtoSubject) +
		"&body=" + encodeComponent(CompactBounded(d))
}

// encodeComponent percent-encodes like encodeURIComponent: query escaping
// with spaces as %20 rather than +.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
