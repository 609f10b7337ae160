package component

import (
	"sync"

	"git.home.luguber.info/inful/docgarden/internal/config"
	"git.home.luguber.info/inful/docgarden/internal/content"
	"git.home.luguber.info/inful/docgarden/internal/timeline"
	"golang.org/x/net/html"
)

// TimelineDateLayout matches the long en-US date with time ("January 2, 2024 at 03:04 PM").
const TimelineDateLayout = "January 2, 2006 at 03:04 PM"

// Timeline renders Props.Events as the body of a timeline page.
type Timeline struct{}

func (*Timeline) Name() string { return "Timeline" }

func (*Timeline) Resources() Resources {
	return Resources{CSS: `.timeline { max-width: 100%; margin: 2rem 0; }
.timeline-container { position: relative; margin: 2rem 0; }
.timeline-event { display: flex; margin-bottom: 1.5rem; gap: 1rem; padding: 1rem; border-radius: 5px; border: 1px solid var(--lightgray); }
.timeline-date { min-width: 150px; }
.timeline-content { flex: 1; }
.timeline-title { font-weight: 600; text-decoration: none; display: block; margin-bottom: 0.25rem; }
.timeline-title:hover { text-decoration: underline; }
.timeline-type { font-size: 0.9em; color: var(--gray); }`}
}

func (*Timeline) Render(p Props) (*html.Node, error) {
	container := El("div", Attrs("class", "timeline-container"))
	if len(p.Events) == 0 {
		container.AppendChild(El("div", Attrs("class", "timeline-event"), Text("No events found")))
	}
	for _, e := range p.Events {
		container.AppendChild(El("div", Attrs("class", "timeline-event", "data-kind", e.Kind.String()),
			El("div", Attrs("class", "timeline-date"), Text(e.Timestamp.Format(TimelineDateLayout))),
			El("div", Attrs("class", "timeline-content"),
				El("a", Attrs("href", p.Href(e.Slug), "class", "timeline-title"), Text(e.Title)),
				El("div", Attrs("class", "timeline-type"), Text(KindLabel(e.Kind))),
			),
		))
	}
	return El("div", Attrs("class", "timeline"), container), nil
}

// KindLabel is the user-facing description of an event kind.
func KindLabel(k timeline.Kind) string {
	switch k {
	case timeline.Combined:
		return "Created and modified"
	case timeline.Created:
		return "Created"
	default:
		return "Last modified"
	}
}

// RecentNotes lists the newest created documents in a sidebar.
type RecentNotes struct {
	Title string
	Limit int
	// Filter applies the same slug/tag exclusions as the timeline pages.
	Filter config.TimelineConfig

	mu     sync.Mutex
	ready  bool
	corpus *content.Corpus
	events []timeline.Event
}

// DefaultRecentLimit is the number of notes shown by RecentNotes.
const DefaultRecentLimit = 5

// NewRecentNotes returns a RecentNotes sidebar using the timeline exclusions of cfg.
func NewRecentNotes(cfg config.TimelineConfig) *RecentNotes {
	return &RecentNotes{Title: "Recent Notes", Limit: DefaultRecentLimit, Filter: cfg}
}

func (*RecentNotes) Name() string { return "RecentNotes" }

func (*RecentNotes) Resources() Resources {
	return Resources{CSS: `.recent-notes > h3 { margin: 0.5rem 0 0 0; font-size: 1rem; }
.recent-ul { list-style: none; margin-top: 1rem; padding-left: 0; }
.recent-li { margin: 1rem 0; }
.recent-li .meta { margin: 0; opacity: 0.6; }`}
}

// recent returns the newest created events of corpus. The list is computed
// once per corpus and shared by every page rendered from it.
func (r *RecentNotes) recent(corpus *content.Corpus) []timeline.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.ready || r.corpus != corpus {
		r.ready, r.corpus = true, corpus
		r.events = timeline.Collect(corpus, timeline.Options{
			CreatedOnly:     true,
			DisallowedSlugs: r.Filter.DisallowedSlugs,
			DisallowedTags:  r.Filter.DisallowedTags,
			Limit:           r.Limit,
		})
	}
	return r.events
}

func (r *RecentNotes) Render(p Props) (*html.Node, error) {
	events := r.recent(p.Corpus)
	if len(events) == 0 {
		return nil, nil
	}
	ul := El("ul", Attrs("class", "recent-ul"))
	for _, e := range events {
		ul.AppendChild(El("li", Attrs("class", "recent-li"),
			El("div", Attrs("class", "section"),
				El("div", Attrs("class", "desc"),
					El("h3", nil, El("a", Attrs("href", p.Href(e.Slug), "class", "internal"), Text(e.Title)))),
				El("p", Attrs("class", "meta"), timeNode(e.Timestamp)),
			),
		))
	}
	return El("div", Attrs("class", "recent-notes"),
		El("h3", nil, Text(r.Title)),
		ul,
		El("p", nil, El("a", Attrs("href", p.Href("recent/index")), Text("See all recent notes"))),
	), nil
}
