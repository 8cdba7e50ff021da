package feed

import "regexp"

// UnknownCompany is used when no extraction rule matches.
const UnknownCompany = "Unknown Company"

// companyRule pairs a pattern with the capture group holding the company
// name. Rules are tried in order; the first match wins.
type companyRule struct {
	pattern *regexp.Regexp
	group   int
}

var companyRules = []companyRule{
	// "Senior iOS Developer at Apple"
	{regexp.MustCompile(`\w+\s+at\s+([A-Z][A-Za-z0-9]*)`), 1},
	// "Stripe is hiring backend engineers"
	{regexp.MustCompile(`([A-Z][A-Za-z0-9]*)\s+is\s+(?:hiring|seeking|looking\s+for)`), 1},
}

// ExtractCompany infers a company name from free text (typically the
// concatenated title and description of an offer). Returns UnknownCompany
// when no rule matches. Heuristic by design — swappable for a proper
// extractor without touching the parser.
func ExtractCompany(text string) string {
	for _, rule := range companyRules {
		if m := rule.pattern.FindStringSubmatch(text); m != nil {
			return m[rule.group]
		}
	}
	return UnknownCompany
}
