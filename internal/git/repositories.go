package git

import (
	"path/filepath"
	"strings"
)

// Repositories holds the two handles of a run. Paths under the content root
// resolve against the content repository, everything else against main.
type Repositories struct {
	workDir string
	main    *Repository
	content *Repository
}

// NewRepositories creates handles for workDir and workDir/contentRepo.
// contentRepo may be empty, in which case every path resolves against main.
func NewRepositories(workDir, contentRepo string) *Repositories {
	rs := &Repositories{
		workDir: filepath.Clean(workDir),
		main:    NewRepository("main", workDir),
	}
	if contentRepo != "" {
		rs.content = NewRepository("content", filepath.Join(workDir, contentRepo))
	}
	return rs
}

// Main returns the working-directory handle.
func (rs *Repositories) Main() *Repository { return rs.main }

// Content returns the content handle, nil when none is configured.
func (rs *Repositories) Content() *Repository { return rs.content }

// For picks the handle responsible for path (absolute or relative to the
// working directory) and returns the path relative to that handle's root.
func (rs *Repositories) For(path string) (*Repository, string) {
	abs := path
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(rs.workDir, path)
	}
	if rs.content != nil {
		if rel, ok := within(rs.content.Root(), abs); ok {
			return rs.content, rel
		}
	}
	rel, _ := within(rs.main.Root(), abs)
	return rs.main, rel
}

// History looks up path in the responsible repository.
func (rs *Repositories) History(path string) (FileHistory, *Repository, error) {
	repo, rel := rs.For(path)
	h, err := repo.History(rel)
	return h, repo, err
}

func within(root, abs string) (string, bool) {
	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return "", false
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return rel, false
	}
	return rel, true
}
