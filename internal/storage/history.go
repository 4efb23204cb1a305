package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mkotturi/mdscope/internal/nav"
)

// HistoryFile persists the ordered list of visited locations as a JSON
// document in the data directory. Locations are stored as bare strings
// with no type tag; on load each string is reinterpreted as a remote
// URL if and only if it looks like one, local path otherwise. The file
// is read permissively (absent means empty) and overwritten wholesale
// on every save.
type HistoryFile struct {
	path string
}

// NewHistoryFile creates the persistence adapter for history in the
// given data directory.
func NewHistoryFile(dataDir string) (*HistoryFile, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	return &HistoryFile{path: filepath.Join(dataDir, "history.json")}, nil
}

// Load reads the persisted locations, oldest first. A missing file is
// an empty history, not an error.
func (hf *HistoryFile) Load() ([]nav.Location, error) {
	data, err := os.ReadFile(hf.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading history: %w", err)
	}

	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing history: %w", err)
	}

	locations := make([]nav.Location, len(raw))
	for i, s := range raw {
		locations[i] = nav.ParseLocation(s)
	}
	return locations, nil
}

// Save writes the given locations, replacing whatever was stored.
func (hf *HistoryFile) Save(locations []nav.Location) error {
	raw := make([]string, len(locations))
	for i, l := range locations {
		raw[i] = l.String()
	}

	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling history: %w", err)
	}
	return os.WriteFile(hf.path, data, 0o644)
}
