package timeline

import (
	"slices"
	"time"

	"git.home.luguber.info/inful/docgarden/internal/content"
	"git.home.luguber.info/inful/docgarden/internal/util/sets"
)

// DefaultLimit caps the number of events on a page.
const DefaultLimit = 100

// CompactWindow is the largest gap (exclusive) between two adjacent
// same-document events that are merged into one.
const CompactWindow = 12 * time.Hour

// Options selects one view over a corpus.
type Options struct {
	// CreatedOnly drops Modified events (the "recent" view).
	CreatedOnly bool
	// Compact merges adjacent same-slug events (the "timeline" view).
	Compact         bool
	DisallowedSlugs []string
	DisallowedTags  []string
	// Limit truncates the final sequence; <= 0 means DefaultLimit.
	Limit int
}

// Filter drops documents whose slug is disallowed or that carry a disallowed tag.
func Filter(docs []*content.Document, disallowedSlugs, disallowedTags sets.Set[string]) []*content.Document {
	out := make([]*content.Document, 0, len(docs))
	for _, d := range docs {
		if d == nil || disallowedSlugs.Has(d.Slug) || disallowedTags.HasAny(d.Meta.Tags) {
			continue
		}
		out = append(out, d)
	}
	return out
}

// Extract filters the corpus and derives every event in corpus order. The
// result is the shared input of every view built from one corpus snapshot.
func Extract(corpus *content.Corpus, disallowedSlugs, disallowedTags []string) []Event {
	docs := Filter(corpus.Documents(), sets.New(disallowedSlugs...), sets.New(disallowedTags...))
	var events []Event
	for _, d := range docs {
		events = append(events, Derive(d)...)
	}
	return events
}

// Sort orders events by timestamp, most recent first. Equal timestamps keep
// their relative order.
func Sort(events []Event) {
	slices.SortStableFunc(events, func(a, b Event) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
}

// CompactEvents makes one left-to-right pass over sorted events. Two adjacent
// events with the same slug less than CompactWindow apart become one Combined
// event at the later timestamp and both are consumed; otherwise the event is
// kept as is. Only neighbours are compared, so three close events of one
// document yield one Combined event and one single event.
func CompactEvents(events []Event) []Event {
	out := make([]Event, 0, len(events))
	for i := 0; i < len(events); i++ {
		cur := events[i]
		if i+1 < len(events) {
			next := events[i+1]
			if next.Slug == cur.Slug && absDuration(cur.Timestamp.Sub(next.Timestamp)) < CompactWindow {
				merged := cur
				merged.Kind = Combined
				if next.Timestamp.After(cur.Timestamp) {
					merged.Timestamp = next.Timestamp
				}
				out = append(out, merged)
				i++
				continue
			}
		}
		out = append(out, cur)
	}
	return out
}

// Truncate returns at most limit events; limit <= 0 means DefaultLimit.
func Truncate(events []Event, limit int) []Event {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if len(events) > limit {
		return events[:limit]
	}
	return events
}

// View turns extracted events into one ordered page sequence: created-only
// filter, stable sort, optional compaction, then truncation. raw is not modified.
func View(raw []Event, opts Options) []Event {
	events := make([]Event, 0, len(raw))
	for _, e := range raw {
		if opts.CreatedOnly && e.Kind == Modified {
			continue
		}
		events = append(events, e)
	}
	Sort(events)
	if opts.Compact {
		events = CompactEvents(events)
	}
	return Truncate(events, opts.Limit)
}

// Collect is Extract followed by View.
func Collect(corpus *content.Corpus, opts Options) []Event {
	return View(Extract(corpus, opts.DisallowedSlugs, opts.DisallowedTags), opts)
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
