package model

import "strings"

// Normalize trims leading and trailing whitespace and newlines from the
// text fields of a Job and returns the cleaned copy. All other fields pass
// through unchanged. Idempotent: Normalize(Normalize(j)) == Normalize(j).
func Normalize(j Job) Job {
	j.Title = cleanField(j.Title)
	j.Company = cleanField(j.Company)
	j.Description = cleanField(j.Description)
	j.Location = cleanField(j.Location)
	return j
}

func cleanField(s string) string {
	return strings.Trim(s, " \t\r\n")
}
