package content

import "fmt"

// Entry is one (key, document) pair of a corpus snapshot.
type Entry struct {
	Key string
	Doc *Document
}

// Corpus is the ordered snapshot of all documents of a run with a slug index.
type Corpus struct {
	entries []Entry
	bySlug  map[string]*Document
}

// NewCorpus builds a corpus from ordered entries, rejecting duplicate slugs.
func NewCorpus(entries []Entry) (*Corpus, error) {
	c := &Corpus{
		entries: make([]Entry, 0, len(entries)),
		bySlug:  make(map[string]*Document, len(entries)),
	}
	for _, e := range entries {
		if e.Doc == nil {
			return nil, fmt.Errorf("corpus entry %q has no document", e.Key)
		}
		if prev, ok := c.bySlug[e.Doc.Slug]; ok {
			return nil, fmt.Errorf("duplicate slug %q (%s and %s)", e.Doc.Slug, prev.FilePath, e.Doc.FilePath)
		}
		c.bySlug[e.Doc.Slug] = e.Doc
		c.entries = append(c.entries, e)
	}
	return c, nil
}

// FromDocuments builds a corpus keyed by each document's file path.
func FromDocuments(docs ...*Document) (*Corpus, error) {
	entries := make([]Entry, 0, len(docs))
	for _, d := range docs {
		key := ""
		if d != nil {
			key = d.FilePath
		}
		entries = append(entries, Entry{Key: key, Doc: d})
	}
	return NewCorpus(entries)
}

// Entries returns the snapshot in load order.
func (c *Corpus) Entries() []Entry {
	if c == nil {
		return nil
	}
	return c.entries
}

// Documents returns the documents in load order.
func (c *Corpus) Documents() []*Document {
	if c == nil {
		return nil
	}
	docs := make([]*Document, len(c.entries))
	for i, e := range c.entries {
		docs[i] = e.Doc
	}
	return docs
}

// Lookup returns the document with the given slug.
func (c *Corpus) Lookup(slug string) (*Document, bool) {
	if c == nil {
		return nil, false
	}
	d, ok := c.bySlug[slug]
	return d, ok
}

// Len returns the number of documents.
func (c *Corpus) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}
