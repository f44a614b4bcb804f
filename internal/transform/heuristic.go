package transform

import "regexp"

// The default heading-derived-title pattern table. A code-block title
// matching any entry is classified as coming from a heading rather than
// an explicit author-supplied attribute. The classification is
// best-effort: a short title-cased phrase could be either, and round-trip
// fidelity is only guaranteed for titles outside this table.
var defaultTitlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^step\s+\d+$`),
	regexp.MustCompile(`(?i)^(installation|configuration|usage|setup|overview|introduction|prerequisites|examples?|getting started|quick start|basic usage|advanced usage|troubleshooting|api reference|next steps)$`),
	regexp.MustCompile(`^[A-Z][a-z]+(?: [A-Z][A-Za-z0-9]+)+$`),
}

// DefaultTitlePatterns returns the built-in classification table. The
// table is a configuration surface; callers may replace it entirely via
// Options.TitlePatterns.
func DefaultTitlePatterns() []*regexp.Regexp {
	return defaultTitlePatterns
}

func (opts Options) titlePatterns() []*regexp.Regexp {
	if opts.TitlePatterns != nil {
		return opts.TitlePatterns
	}
	return defaultTitlePatterns
}

func isHeadingDerived(title string, patterns []*regexp.Regexp) bool {
	for _, pattern := range patterns {
		if pattern.MatchString(title) {
			return true
		}
	}
	return false
}
