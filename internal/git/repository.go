package git

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"git.home.luguber.info/inful/docgarden/internal/logfields"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// ErrNotTracked is returned when no commit touches the requested path.
var ErrNotTracked = errors.New("file has no commit history")

// FileHistory is the first and last commit time of one path.
type FileHistory struct {
	Created  time.Time
	Modified time.Time
	Commits  int
}

// Repository is a lazily opened handle on a repository root.
type Repository struct {
	name string
	root string

	once sync.Once
	repo *git.Repository
	err  error

	// go-git object storage is not safe for concurrent traversal.
	walk sync.Mutex
}

// NewRepository creates a handle; nothing is opened until first use.
func NewRepository(name, root string) *Repository {
	return &Repository{name: name, root: filepath.Clean(root)}
}

// Name returns the handle's label ("main" or "content").
func (r *Repository) Name() string { return r.name }

// Root returns the repository root directory.
func (r *Repository) Root() string { return r.root }

// Open opens the repository on first call and returns the cached result afterwards.
func (r *Repository) Open() (*git.Repository, error) {
	r.once.Do(func() {
		r.repo, r.err = git.PlainOpen(r.root)
		if r.err != nil {
			r.err = fmt.Errorf("open %s repository at %s: %w", r.name, r.root, r.err)
			slog.Debug("Repository unavailable", logfields.Repository(r.name), logfields.Path(r.root), logfields.Error(r.err))
			return
		}
		if head, err := r.repo.Head(); err == nil {
			slog.Debug("Repository opened",
				logfields.Repository(r.name),
				logfields.Path(r.root),
				slog.String("branch", head.Name().Short()),
				slog.String("commit", head.Hash().String()))
		}
	})
	return r.repo, r.err
}

// History returns the earliest and latest commit times touching rel, a
// slash-separated path relative to the repository root.
func (r *Repository) History(rel string) (FileHistory, error) {
	repo, err := r.Open()
	if err != nil {
		return FileHistory{}, err
	}
	rel = filepath.ToSlash(rel)
	if rel == "" || rel == "." || strings.HasPrefix(rel, "../") {
		return FileHistory{}, fmt.Errorf("path %q is outside repository %s", rel, r.root)
	}

	r.walk.Lock()
	defer r.walk.Unlock()

	head, err := repo.Head()
	if err != nil {
		return FileHistory{}, fmt.Errorf("resolve HEAD of %s: %w", r.name, err)
	}
	iter, err := repo.Log(&git.LogOptions{From: head.Hash(), FileName: &rel})
	if err != nil {
		return FileHistory{}, fmt.Errorf("log %s: %w", rel, err)
	}
	defer iter.Close()

	var h FileHistory
	err = iter.ForEach(func(c *object.Commit) error {
		when := c.Committer.When
		if h.Commits == 0 || when.Before(h.Created) {
			h.Created = when
		}
		if h.Commits == 0 || when.After(h.Modified) {
			h.Modified = when
		}
		h.Commits++
		return nil
	})
	if err != nil {
		return FileHistory{}, fmt.Errorf("walk history of %s: %w", rel, err)
	}
	if h.Commits == 0 {
		return FileHistory{}, ErrNotTracked
	}
	return h, nil
}
