package ingest

import (
	"strings"

	"careerpilot/discovery-service/internal/model"
)

// Excluded returns true if any exclusion term appears (case-insensitive)
// anywhere in the combined title + company + description text.
//
// Applied after dedup — a matching offer is silently discarded.
func Excluded(j model.Job, terms []string) bool {
	if len(terms) == 0 {
		return false
	}
	combined := strings.ToLower(j.Title + " " + j.Company + " " + j.Description)
	for _, term := range terms {
		if term == "" {
			continue
		}
		if strings.Contains(combined, strings.ToLower(term)) {
			return true
		}
	}
	return false
}
