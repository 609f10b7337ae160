// Package timeline derives created/modified events from resolved documents
// and turns them into the ordered sequences shown on timeline pages.
package timeline

import (
	"time"

	"git.home.luguber.info/inful/docgarden/internal/content"
	"github.com/spf13/cast"
)

// Kind is the type of a timeline event.
type Kind int

const (
	Created Kind = iota
	Modified
	// Combined replaces an adjacent created/modified pair of one document.
	Combined
)

func (k Kind) String() string {
	switch k {
	case Created:
		return "created"
	case Modified:
		return "modified"
	case Combined:
		return "combined"
	default:
		return "unknown"
	}
}

// Event is one point-in-time record tied to a document slug.
type Event struct {
	Kind      Kind
	Timestamp time.Time
	Slug      string
	Title     string
	Tags      []string
	Folder    string
}

// Derive returns a Created event iff the created date is set and a Modified
// event iff the modified date is set. Published dates never produce events.
func Derive(doc *content.Document) []Event {
	if doc == nil || doc.Meta.Dates == nil {
		return nil
	}
	base := Event{
		Slug:   doc.Slug,
		Title:  EventTitle(doc),
		Tags:   doc.Meta.Tags,
		Folder: doc.Folder(),
	}
	var events []Event
	if d := doc.Meta.Dates.Created; !d.IsZero() {
		e := base
		e.Kind, e.Timestamp = Created, d
		events = append(events, e)
	}
	if d := doc.Meta.Dates.Modified; !d.IsZero() {
		e := base
		e.Kind, e.Timestamp = Modified, d
		events = append(events, e)
	}
	return events
}

// EventTitle is the explicit frontmatter title, then the first alias, then
// the derived title, then the slug.
func EventTitle(doc *content.Document) string {
	if t := cast.ToString(doc.Frontmatter["title"]); t != "" {
		return t
	}
	if len(doc.Meta.Aliases) > 0 && doc.Meta.Aliases[0] != "" {
		return doc.Meta.Aliases[0]
	}
	if doc.Meta.Title != "" {
		return doc.Meta.Title
	}
	return doc.Slug
}
