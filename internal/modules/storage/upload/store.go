// Package upload manages the directory-per-category attachment layout:
// collision-free filenames for incoming payloads, idempotent deletes, and the
// pending/committed reference ledger used by the orphan sweep.
package upload

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

var (
	// ErrUnknownCategory is returned for a category not present in the
	// configured enumeration.
	ErrUnknownCategory = errors.New("unknown upload category")
	// ErrUnsupportedFormat is a validation failure: the original filename's
	// extension is outside the category's allow-list. Distinguishable from
	// I/O failures so handlers can answer 400 instead of 500.
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

// Category names. The enumeration is fixed at startup; nothing creates
// categories at request time.
const (
	CategoryAlbums        = "albums"
	CategoryBlogs         = "blogs"
	CategoryResumes       = "resumes"
	CategoryBooks         = "books"
	CategoryCertificates  = "certificates"
	CategoryArticles      = "articles"
	CategoryArticleImages = "articleimages"
)

// Incoming is a payload plus its client-provided filename, the unit handed to
// Save by bulk-upload endpoints.
type Incoming struct {
	Name string
	Data io.Reader
}

// Category maps a logical upload category onto a directory below the store
// root. An empty Dir keeps files at the root itself. AllowedExts, when
// non-empty, is a case-insensitive extension allow-list checked before any
// write.
type Category struct {
	Name        string
	Dir         string
	AllowedExts []string
}

// DefaultCategories is the category layout of the portfolio site. Album files
// live at the upload root so they serve as bare /uploads/<file> URLs; only
// certificates carry a format filter.
func DefaultCategories() []Category {
	return []Category{
		{Name: CategoryAlbums, Dir: ""},
		{Name: CategoryBlogs, Dir: "blogs"},
		{Name: CategoryResumes, Dir: "resumes"},
		{Name: CategoryBooks, Dir: "books"},
		{Name: CategoryCertificates, Dir: "certificates", AllowedExts: []string{"jpg", "jpeg", "png", "gif"}},
		{Name: CategoryArticles, Dir: "articles"},
		{Name: CategoryArticleImages, Dir: "articleimages"},
	}
}

// Store writes and removes attachment files under a single root directory.
// Filename stamps are serialized so two saves within the process never
// collide.
type Store struct {
	root       string
	categories map[string]Category

	mu        sync.Mutex
	lastStamp int64
}

// New creates a Store over root with the given category enumeration.
func New(root string, categories []Category) *Store {
	cats := make(map[string]Category, len(categories))
	for _, cat := range categories {
		cats[cat.Name] = cat
	}
	return &Store{root: filepath.Clean(root), categories: cats}
}

// Root returns the store's root directory.
func (s *Store) Root() string { return s.root }

// Save validates originalName against the category filter, assigns a
// collision-free filename, and writes the payload under the category
// directory, creating it on first use. Returns the assigned filename.
func (s *Store) Save(category string, payload io.Reader, originalName string) (string, error) {
	cat, ok := s.categories[category]
	if !ok {
		return "", ErrUnknownCategory
	}
	if len(cat.AllowedExts) > 0 && !extAllowed(originalName, cat.AllowedExts) {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(originalName))
	}

	dir := filepath.Join(s.root, cat.Dir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	filename := buildFileName(s.nextStamp(), originalName)
	f, err := os.OpenFile(filepath.Join(dir, filename), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", err
	}
	_, err = io.Copy(f, payload)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(f.Name())
		return "", err
	}
	return filename, nil
}

// Remove deletes the named file in the category directory. A file that is
// already gone is not an error.
func (s *Store) Remove(category, filename string) error {
	path, ok := s.Path(category, filename)
	if !ok {
		return ErrUnknownCategory
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Path resolves the on-disk location of a stored file. Returns false for an
// unknown category or an unsafe filename.
func (s *Store) Path(category, filename string) (string, bool) {
	cat, ok := s.categories[category]
	if !ok {
		return "", false
	}
	name := safeName(filename)
	if name == "" {
		return "", false
	}
	return filepath.Join(s.root, cat.Dir, name), true
}

// nextStamp returns a unix-millisecond stamp that is strictly greater than
// every stamp handed out before it, bumping past the clock when two saves
// land in the same millisecond.
func (s *Store) nextStamp() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UnixMilli()
	if now <= s.lastStamp {
		now = s.lastStamp + 1
	}
	s.lastStamp = now
	return now
}

func extAllowed(filename string, allowed []string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(strings.TrimSpace(filename))), ".")
	if ext == "" {
		return false
	}
	for _, item := range allowed {
		if ext == strings.TrimPrefix(strings.ToLower(strings.TrimSpace(item)), ".") {
			return true
		}
	}
	return false
}
