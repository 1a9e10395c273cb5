package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/desertthunder/libx/internal/shared"
)

// Supported snapshot settings. Anything else is rejected on load and on write.
const (
	LangRU = "ru"
	LangEN = "en"

	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Defaults for a fresh library.
const (
	DefaultLang  = LangRU
	DefaultTheme = ThemeDark
	DefaultIcon  = "🎵"
)

// MaxNameLength is the upper bound on a playlist name after trimming.
const MaxNameLength = 100

// Track is a reference to a track as supplied by the caller.
//
// Duration is m:ss text and AddedAt is RFC 3339 text; both tolerate being
// empty or malformed and sort as zero in that case.
type Track struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Artist   string `json:"artist"`
	Duration string `json:"duration"`
	AddedAt  string `json:"addedAt"`
}

// Validate checks that the track carries a usable id.
func (t Track) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return fmt.Errorf("%w: missing id", shared.ErrInvalidTrack)
	}
	return nil
}

// DurationSeconds parses the m:ss duration text into total seconds.
// Malformed durations parse to 0.
func (t Track) DurationSeconds() int {
	return shared.ParseClock(t.Duration)
}

// AddedAtTime parses the AddedAt timestamp. A missing or malformed
// timestamp returns the zero time, which sorts before everything else.
func (t Track) AddedAtTime() time.Time {
	ts, err := time.Parse(time.RFC3339, t.AddedAt)
	if err != nil {
		return time.Time{}
	}
	return ts
}

// Playlist is an ordered collection of tracks with a display name and icon.
//
// The order of Tracks is the manual order: it only changes through explicit
// add, remove, and reorder operations, never through display sorting.
type Playlist struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Icon      string  `json:"icon"`
	Tracks    []Track `json:"tracks"`
	CreatedAt string  `json:"createdAt"`
}

// Validate checks identity and uniqueness invariants for the playlist.
func (p Playlist) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("%w: playlist has no id", shared.ErrInvalidInput)
	}

	name := strings.TrimSpace(p.Name)
	if name == "" {
		return shared.ErrEmptyName
	}
	if len([]rune(name)) > MaxNameLength {
		return shared.ErrNameTooLong
	}

	seen := make(map[string]struct{}, len(p.Tracks))
	for _, t := range p.Tracks {
		if err := t.Validate(); err != nil {
			return err
		}
		if _, ok := seen[t.ID]; ok {
			return fmt.Errorf("%w: duplicate track %s in playlist %s", shared.ErrInvalidInput, t.ID, p.ID)
		}
		seen[t.ID] = struct{}{}
	}

	return nil
}

// HasTrack reports whether a track with the given id is in the playlist.
func (p Playlist) HasTrack(trackID string) bool {
	for _, t := range p.Tracks {
		if t.ID == trackID {
			return true
		}
	}
	return false
}

// TrackIDs returns the ids of the playlist's tracks in manual order.
func (p Playlist) TrackIDs() []string {
	ids := make([]string, len(p.Tracks))
	for i, t := range p.Tracks {
		ids[i] = t.ID
	}
	return ids
}

// Snapshot is the full persisted library state.
//
// Favorites and Downloaded are sets for membership purposes but are stored
// as slices so insertion order survives the round trip. Lang and theme live
// in the same blob because they share the library's save/load transaction.
type Snapshot struct {
	Favorites  []string   `json:"favorites"`
	Downloaded []string   `json:"downloaded"`
	Playlists  []Playlist `json:"playlists"`
	Lang       string     `json:"lang"`
	Theme      string     `json:"theme"`
}

// NewSnapshot returns a default-initialized snapshot: empty sets, no
// playlists, default lang and theme.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Favorites:  []string{},
		Downloaded: []string{},
		Playlists:  []Playlist{},
		Lang:       DefaultLang,
		Theme:      DefaultTheme,
	}
}

// ValidLang reports whether the given language code is supported.
func ValidLang(lang string) bool {
	return lang == LangRU || lang == LangEN
}

// ValidTheme reports whether the given theme name is supported.
func ValidTheme(theme string) bool {
	return theme == ThemeDark || theme == ThemeLight
}
