// Package snapshot owns the durable form of the library: one JSON blob that
// is replaced wholesale on every save and read back defensively on load.
//
// Load never fails. Each top-level field is decoded independently, so a
// corrupt playlists field falls back to empty without discarding valid
// favorites sitting next to it. A missing blob falls back to the legacy
// per-field sidecar files an earlier layout produced; those are read but
// never written.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/libx/internal/models"
	"github.com/desertthunder/libx/internal/shared"
)

// Legacy sidecar filenames, read when the unified blob is absent.
const (
	legacyFavoritesFile  = "favorites.json"
	legacyDownloadedFile = "downloaded.json"
	legacyPlaylistsFile  = "playlists.json"
	legacySettingsFile   = "settings.json"
)

// Store reads and writes the library snapshot at a fixed path.
type Store struct {
	path   string
	logger *log.Logger

	defaultLang  string
	defaultTheme string
}

// NewStore creates a Store for the snapshot at path.
func NewStore(path string, logger *log.Logger) *Store {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Store{path: path, logger: logger}
}

// Path returns the snapshot file location.
func (s *Store) Path() string { return s.path }

// SetDefaults overrides the lang and theme a snapshot starts with before any
// stored value is applied. Values already persisted always win. Invalid
// values are ignored with a warning.
func (s *Store) SetDefaults(lang, theme string) {
	if lang != "" {
		if models.ValidLang(lang) {
			s.defaultLang = lang
		} else {
			s.logger.Warnf("ignoring unrecognized default lang %q", lang)
		}
	}
	if theme != "" {
		if models.ValidTheme(theme) {
			s.defaultTheme = theme
		} else {
			s.logger.Warnf("ignoring unrecognized default theme %q", theme)
		}
	}
}

// newSnapshot builds the starting snapshot every load path decorates,
// with the store's configured defaults applied.
func (s *Store) newSnapshot() *models.Snapshot {
	snap := models.NewSnapshot()
	if s.defaultLang != "" {
		snap.Lang = s.defaultLang
	}
	if s.defaultTheme != "" {
		snap.Theme = s.defaultTheme
	}
	return snap
}

// rawSnapshot defers decoding of each field so one bad field cannot poison
// the rest of the blob.
type rawSnapshot struct {
	Favorites  json.RawMessage `json:"favorites"`
	Downloaded json.RawMessage `json:"downloaded"`
	Playlists  json.RawMessage `json:"playlists"`
	Lang       json.RawMessage `json:"lang"`
	Theme      json.RawMessage `json:"theme"`
}

// Load reads the snapshot from disk. It always returns a usable snapshot:
// a missing file yields the defaults, and malformed content is defaulted
// field by field.
func (s *Store) Load() *models.Snapshot {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warnf("failed to read snapshot at %s: %v", s.path, err)
			return s.newSnapshot()
		}
		return s.loadLegacy()
	}

	return s.decode(data)
}

func (s *Store) decode(data []byte) *models.Snapshot {
	snap := s.newSnapshot()

	var raw rawSnapshot
	if err := json.Unmarshal(data, &raw); err != nil {
		s.logger.Warnf("snapshot is not a JSON object, using defaults: %v", err)
		return snap
	}

	snap.Favorites = s.decodeIDs(raw.Favorites, "favorites")
	snap.Downloaded = s.decodeIDs(raw.Downloaded, "downloaded")
	snap.Playlists = s.decodePlaylists(raw.Playlists)

	if lang, ok := decodeString(raw.Lang); ok && models.ValidLang(lang) {
		snap.Lang = lang
	} else if len(raw.Lang) > 0 {
		s.logger.Warnf("ignoring unrecognized lang %s", raw.Lang)
	}

	if theme, ok := decodeString(raw.Theme); ok && models.ValidTheme(theme) {
		snap.Theme = theme
	} else if len(raw.Theme) > 0 {
		s.logger.Warnf("ignoring unrecognized theme %s", raw.Theme)
	}

	return snap
}

// decodeIDs parses a membership set, dropping empty entries and duplicates
// while preserving insertion order.
func (s *Store) decodeIDs(raw json.RawMessage, field string) []string {
	if len(raw) == 0 {
		return []string{}
	}

	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		s.logger.Warnf("snapshot field %s has the wrong shape, defaulting: %v", field, err)
		return []string{}
	}

	return dedupeIDs(ids)
}

// decodePlaylists parses the playlist list element by element so one corrupt
// entry does not drop the rest. Entries that fail validation after cleanup
// are skipped.
func (s *Store) decodePlaylists(raw json.RawMessage) []models.Playlist {
	if len(raw) == 0 {
		return []models.Playlist{}
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		s.logger.Warnf("snapshot field playlists is not a sequence, defaulting: %v", err)
		return []models.Playlist{}
	}

	playlists := make([]models.Playlist, 0, len(elements))
	seen := make(map[string]struct{}, len(elements))

	for _, el := range elements {
		var p models.Playlist
		if err := json.Unmarshal(el, &p); err != nil {
			s.logger.Warnf("skipping unreadable playlist entry: %v", err)
			continue
		}

		if _, ok := seen[p.ID]; ok {
			s.logger.Warnf("skipping playlist with duplicate id %s", p.ID)
			continue
		}

		p.Tracks = cleanTracks(p.Tracks)
		if p.Icon == "" {
			p.Icon = models.DefaultIcon
		}

		if err := p.Validate(); err != nil {
			s.logger.Warnf("skipping invalid playlist %q: %v", p.Name, err)
			continue
		}

		seen[p.ID] = struct{}{}
		playlists = append(playlists, p)
	}

	return playlists
}

// loadLegacy assembles a snapshot from the per-field sidecar files of the
// previous layout. Missing or unreadable sidecars default individually.
func (s *Store) loadLegacy() *models.Snapshot {
	dir := filepath.Dir(s.path)
	snap := s.newSnapshot()

	found := false
	if raw, err := os.ReadFile(filepath.Join(dir, legacyFavoritesFile)); err == nil {
		snap.Favorites = s.decodeIDs(raw, "favorites")
		found = true
	}
	if raw, err := os.ReadFile(filepath.Join(dir, legacyDownloadedFile)); err == nil {
		snap.Downloaded = s.decodeIDs(raw, "downloaded")
		found = true
	}
	if raw, err := os.ReadFile(filepath.Join(dir, legacyPlaylistsFile)); err == nil {
		snap.Playlists = s.decodePlaylists(raw)
		found = true
	}
	if raw, err := os.ReadFile(filepath.Join(dir, legacySettingsFile)); err == nil {
		var settings struct {
			Lang  string `json:"lang"`
			Theme string `json:"theme"`
		}
		if err := json.Unmarshal(raw, &settings); err == nil {
			if models.ValidLang(settings.Lang) {
				snap.Lang = settings.Lang
			}
			if models.ValidTheme(settings.Theme) {
				snap.Theme = settings.Theme
			}
			found = true
		}
	}

	if found {
		s.logger.Infof("restored library from legacy sidecar files in %s", dir)
	}

	return snap
}

// Save serializes the full snapshot and replaces the previous blob. The
// write goes through a temp file and rename, so readers never observe a
// partial snapshot.
func (s *Store) Save(snap *models.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".library-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close snapshot: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}

	return nil
}

func decodeString(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", false
	}
	return v, true
}

func dedupeIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// cleanTracks drops entries without an id and collapses duplicates,
// keeping the first occurrence.
func cleanTracks(tracks []models.Track) []models.Track {
	out := make([]models.Track, 0, len(tracks))
	seen := make(map[string]struct{}, len(tracks))
	for _, t := range tracks {
		if t.Validate() != nil {
			continue
		}
		if _, ok := seen[t.ID]; ok {
			continue
		}
		seen[t.ID] = struct{}{}
		out = append(out, t)
	}
	return out
}
