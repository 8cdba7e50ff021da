// Package feed implements fetching and parsing of external job feeds.
package feed

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"careerpilot/discovery-service/internal/model"
)

// dateFormats are tried in order when parsing item timestamps. RSS first
// (RFC 1123 with and without a numeric zone), then Atom's ISO 8601.
var dateFormats = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC3339,
}

// Parser converts raw RSS or Atom bytes into Job candidates.
// The zero value is not usable; construct with NewParser.
type Parser struct {
	now func() time.Time
}

// NewParser constructs a Parser. The clock is only consulted for items
// whose publication date cannot be parsed.
func NewParser() *Parser {
	return &Parser{now: time.Now}
}

// Parse walks the feed document and returns one Job per item (RSS) or
// entry (Atom) that carries a non-empty title. Items without extractable
// content are dropped silently. Malformed XML aborts parsing of this
// document only: jobs accumulated before the error are still returned
// alongside it.
func (p *Parser) Parse(data []byte, source model.JobSource) ([]model.Job, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	var jobs []model.Job
	var cur *itemFields
	var field *string

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return jobs, nil
		}
		if err != nil {
			return jobs, fmt.Errorf("xml decode: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			name := t.Name.Local
			if name == "item" || name == "entry" {
				cur = &itemFields{}
				continue
			}
			if cur == nil {
				continue
			}
			switch name {
			case "title":
				field = &cur.title
			case "description", "summary":
				field = &cur.description
			case "link":
				field = &cur.link
				// Atom carries the URL in the href attribute.
				for _, attr := range t.Attr {
					if attr.Name.Local == "href" && cur.link == "" {
						cur.link = attr.Value
					}
				}
			case "pubDate", "published", "updated":
				field = &cur.date
			default:
				field = nil
			}

		case xml.CharData:
			if field != nil {
				*field += string(t)
			}

		case xml.EndElement:
			field = nil
			if t.Name.Local == "item" || t.Name.Local == "entry" {
				if job, ok := p.buildJob(cur, source); ok {
					jobs = append(jobs, job)
				}
				cur = nil
			}
		}
	}
}

// itemFields accumulates text content for one feed item.
type itemFields struct {
	title       string
	description string
	link        string
	date        string
}

// buildJob assembles a Job from accumulated fields. Items without a title
// yield nothing.
func (p *Parser) buildJob(f *itemFields, source model.JobSource) (model.Job, bool) {
	if f == nil || strings.TrimSpace(f.title) == "" {
		return model.Job{}, false
	}

	return model.Job{
		ID:          model.NewJobID(),
		Title:       f.title,
		Company:     ExtractCompany(f.title + " " + f.description),
		Description: f.description,
		PostedAt:    p.parseDate(f.date),
		URL:         strings.TrimSpace(f.link),
		Source:      source,
	}, true
}

// parseDate tries the known feed date formats; an unparseable or absent
// date falls back to the current processing time. Lenient on purpose —
// a bad timestamp is never a reason to drop an offer.
func (p *Parser) parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s != "" {
		for _, layout := range dateFormats {
			if ts, err := time.Parse(layout, s); err == nil {
				return ts
			}
		}
	}
	return p.now()
}
