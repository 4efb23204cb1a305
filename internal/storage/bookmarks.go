package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/mkotturi/mdscope/internal/nav"
)

// Bookmark is a titled location. There is no uniqueness constraint on
// either field; the same document may be bookmarked twice.
type Bookmark struct {
	Title    string
	Location nav.Location
}

// bookmarkRecord is the on-disk shape. Locations are stored untagged,
// the same way history entries are.
type bookmarkRecord struct {
	Title    string `json:"title"`
	Location string `json:"location"`
}

// BookmarkStore manages the persistent bookmark collection. The list is
// kept sorted by title ascending at all times and is written back to
// disk on every mutation.
type BookmarkStore struct {
	bookmarks []Bookmark
	path      string
}

// NewBookmarkStore creates a bookmark store backed by a JSON document
// in the given data directory, loading anything already persisted.
func NewBookmarkStore(dataDir string) (*BookmarkStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	bs := &BookmarkStore{path: filepath.Join(dataDir, "bookmarks.json")}
	if err := bs.load(); err != nil {
		return nil, fmt.Errorf("loading bookmarks: %w", err)
	}
	return bs, nil
}

// Add inserts a bookmark, keeping the collection sorted by title.
func (bs *BookmarkStore) Add(title string, location nav.Location) error {
	bs.bookmarks = append(bs.bookmarks, Bookmark{Title: title, Location: location})
	bs.sortByTitle()
	return bs.save()
}

// Rename changes the title of the bookmark at index and re-sorts.
// Returns false for an out-of-range index.
func (bs *BookmarkStore) Rename(index int, title string) (bool, error) {
	if index < 0 || index >= len(bs.bookmarks) {
		return false, nil
	}
	bs.bookmarks[index].Title = title
	bs.sortByTitle()
	return true, bs.save()
}

// Delete removes the bookmark at index. Returns false for an
// out-of-range index.
func (bs *BookmarkStore) Delete(index int) (bool, error) {
	if index < 0 || index >= len(bs.bookmarks) {
		return false, nil
	}
	bs.bookmarks = append(bs.bookmarks[:index], bs.bookmarks[index+1:]...)
	return true, bs.save()
}

// All returns a copy of the bookmarks, sorted by title.
func (bs *BookmarkStore) All() []Bookmark {
	out := make([]Bookmark, len(bs.bookmarks))
	copy(out, bs.bookmarks)
	return out
}

// Count returns the number of bookmarks.
func (bs *BookmarkStore) Count() int {
	return len(bs.bookmarks)
}

func (bs *BookmarkStore) sortByTitle() {
	sort.SliceStable(bs.bookmarks, func(i, j int) bool {
		return bs.bookmarks[i].Title < bs.bookmarks[j].Title
	})
}

func (bs *BookmarkStore) load() error {
	data, err := os.ReadFile(bs.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var records []bookmarkRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return err
	}

	bs.bookmarks = make([]Bookmark, len(records))
	for i, r := range records {
		bs.bookmarks[i] = Bookmark{
			Title:    r.Title,
			Location: nav.ParseLocation(r.Location),
		}
	}
	bs.sortByTitle()
	return nil
}

func (bs *BookmarkStore) save() error {
	records := make([]bookmarkRecord, len(bs.bookmarks))
	for i, b := range bs.bookmarks {
		records[i] = bookmarkRecord{Title: b.Title, Location: b.Location.String()}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling bookmarks: %w", err)
	}
	return os.WriteFile(bs.path, data, 0o644)
}
