package library

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/libx/internal/models"
	"github.com/desertthunder/libx/internal/shared"
)

// Store is the persistence contract the engine saves through.
// [snapshot.Store] is the production implementation.
type Store interface {
	Load() *models.Snapshot
	Save(*models.Snapshot) error
}

// Library is the state engine for one session's favorites, downloads, and
// playlists.
type Library struct {
	snap   *models.Snapshot
	store  Store
	logger *log.Logger
}

// New constructs a Library from the store's current snapshot.
func New(store Store, logger *log.Logger) *Library {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Library{
		snap:   store.Load(),
		store:  store,
		logger: logger,
	}
}

// save persists the full snapshot. Failure is surfaced once as a warning;
// the in-memory state remains authoritative either way.
func (l *Library) save() {
	if err := l.store.Save(l.snap); err != nil {
		l.logger.Warnf("snapshot save failed, in-memory state kept: %v", err)
	}
}

// Lang returns the active language code.
func (l *Library) Lang() string { return l.snap.Lang }

// Theme returns the active theme name.
func (l *Library) Theme() string { return l.snap.Theme }

// SetLang switches the stored language. Unsupported codes are rejected and
// the prior value is retained.
func (l *Library) SetLang(lang string) error {
	if !models.ValidLang(lang) {
		return fmt.Errorf("%w: %q", shared.ErrInvalidLang, lang)
	}
	l.snap.Lang = lang
	l.save()
	return nil
}

// SetTheme switches the stored theme. Unsupported names are rejected and
// the prior value is retained.
func (l *Library) SetTheme(theme string) error {
	if !models.ValidTheme(theme) {
		return fmt.Errorf("%w: %q", shared.ErrInvalidTheme, theme)
	}
	l.snap.Theme = theme
	l.save()
	return nil
}

// Playlists returns all playlists in creation order.
func (l *Library) Playlists() []models.Playlist {
	out := make([]models.Playlist, len(l.snap.Playlists))
	for i, p := range l.snap.Playlists {
		out[i] = copyPlaylist(p)
	}
	return out
}

// Playlist returns the playlist with the given id.
func (l *Library) Playlist(id string) (models.Playlist, error) {
	p := l.find(id)
	if p == nil {
		return models.Playlist{}, fmt.Errorf("%w: %s", shared.ErrPlaylistNotFound, id)
	}
	return copyPlaylist(*p), nil
}

// CreatePlaylist creates an empty playlist and appends it to the library.
// The name is trimmed and must be non-empty; a blank icon gets the default.
func (l *Library) CreatePlaylist(name, icon string) (models.Playlist, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Playlist{}, shared.ErrEmptyName
	}
	if len([]rune(name)) > models.MaxNameLength {
		return models.Playlist{}, shared.ErrNameTooLong
	}
	if icon == "" {
		icon = models.DefaultIcon
	}

	p := models.Playlist{
		ID:        l.newPlaylistID(),
		Name:      name,
		Icon:      icon,
		Tracks:    []models.Track{},
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	l.snap.Playlists = append(l.snap.Playlists, p)
	l.save()

	return copyPlaylist(p), nil
}

// DeletePlaylist removes the playlist with the given id. Deleting an
// unknown id is a no-op.
func (l *Library) DeletePlaylist(id string) {
	for i, p := range l.snap.Playlists {
		if p.ID == id {
			l.snap.Playlists = slices.Delete(l.snap.Playlists, i, i+1)
			l.save()
			return
		}
	}
}

// RenamePlaylist updates the name and/or icon of a playlist. Blank values
// are ignored rather than applied, so the previous value is kept.
func (l *Library) RenamePlaylist(id, name, icon string) (models.Playlist, error) {
	p := l.find(id)
	if p == nil {
		return models.Playlist{}, fmt.Errorf("%w: %s", shared.ErrPlaylistNotFound, id)
	}

	if name = strings.TrimSpace(name); name != "" {
		if len([]rune(name)) > models.MaxNameLength {
			return models.Playlist{}, shared.ErrNameTooLong
		}
		p.Name = name
	}
	if icon != "" {
		p.Icon = icon
	}

	l.save()
	return copyPlaylist(*p), nil
}

// AddTrack appends a track to a playlist with AddedAt set to now. A track
// id already in the playlist makes the call a no-op, keeping membership
// at most once.
func (l *Library) AddTrack(playlistID string, track models.Track) (models.Playlist, error) {
	p := l.find(playlistID)
	if p == nil {
		return models.Playlist{}, fmt.Errorf("%w: %s", shared.ErrPlaylistNotFound, playlistID)
	}
	if err := track.Validate(); err != nil {
		return models.Playlist{}, err
	}

	if p.HasTrack(track.ID) {
		return copyPlaylist(*p), nil
	}

	track.AddedAt = time.Now().UTC().Format(time.RFC3339)
	p.Tracks = append(p.Tracks, track)
	l.save()

	return copyPlaylist(*p), nil
}

// RemoveTrack removes a track from a playlist. Removing an id that is not
// there is a no-op.
func (l *Library) RemoveTrack(playlistID, trackID string) (models.Playlist, error) {
	p := l.find(playlistID)
	if p == nil {
		return models.Playlist{}, fmt.Errorf("%w: %s", shared.ErrPlaylistNotFound, playlistID)
	}

	for i, t := range p.Tracks {
		if t.ID == trackID {
			p.Tracks = slices.Delete(p.Tracks, i, i+1)
			l.save()
			break
		}
	}

	return copyPlaylist(*p), nil
}

// Favorites returns the favorite track ids in insertion order.
func (l *Library) Favorites() []string {
	return slices.Clone(l.snap.Favorites)
}

// IsFavorite reports membership in the favorites set.
func (l *Library) IsFavorite(trackID string) bool {
	return slices.Contains(l.snap.Favorites, trackID)
}

// ToggleFavorite flips a track's favorite membership and returns the
// resulting state, so callers can refresh every affected view without
// re-querying.
func (l *Library) ToggleFavorite(trackID string) (bool, error) {
	if strings.TrimSpace(trackID) == "" {
		return false, fmt.Errorf("%w: empty track id", shared.ErrInvalidTrack)
	}

	liked := !l.IsFavorite(trackID)
	if liked {
		l.snap.Favorites = append(l.snap.Favorites, trackID)
	} else {
		l.snap.Favorites = remove(l.snap.Favorites, trackID)
	}
	l.save()

	return liked, nil
}

// AddFavorite inserts a track id into the favorites set. Idempotent.
func (l *Library) AddFavorite(trackID string) error {
	return l.addMember(&l.snap.Favorites, trackID)
}

// RemoveFavorite removes a track id from the favorites set. Idempotent.
func (l *Library) RemoveFavorite(trackID string) error {
	return l.removeMember(&l.snap.Favorites, trackID)
}

// Downloads returns the downloaded track ids in insertion order.
func (l *Library) Downloads() []string {
	return slices.Clone(l.snap.Downloaded)
}

// IsDownloaded reports membership in the downloads set.
func (l *Library) IsDownloaded(trackID string) bool {
	return slices.Contains(l.snap.Downloaded, trackID)
}

// AddDownload inserts a track id into the downloads set. Idempotent.
func (l *Library) AddDownload(trackID string) error {
	return l.addMember(&l.snap.Downloaded, trackID)
}

// RemoveDownload removes a track id from the downloads set. Idempotent.
func (l *Library) RemoveDownload(trackID string) error {
	return l.removeMember(&l.snap.Downloaded, trackID)
}

func (l *Library) addMember(set *[]string, trackID string) error {
	if strings.TrimSpace(trackID) == "" {
		return fmt.Errorf("%w: empty track id", shared.ErrInvalidTrack)
	}
	if slices.Contains(*set, trackID) {
		return nil
	}
	*set = append(*set, trackID)
	l.save()
	return nil
}

func (l *Library) removeMember(set *[]string, trackID string) error {
	if strings.TrimSpace(trackID) == "" {
		return fmt.Errorf("%w: empty track id", shared.ErrInvalidTrack)
	}
	if !slices.Contains(*set, trackID) {
		return nil
	}
	*set = remove(*set, trackID)
	l.save()
	return nil
}

// Merge folds another snapshot's contents into the library: set unions for
// favorites and downloads, playlists appended unless their id already
// exists. Used by the legacy importer.
func (l *Library) Merge(other *models.Snapshot) {
	if other == nil {
		return
	}

	for _, id := range other.Favorites {
		if id != "" && !slices.Contains(l.snap.Favorites, id) {
			l.snap.Favorites = append(l.snap.Favorites, id)
		}
	}
	for _, id := range other.Downloaded {
		if id != "" && !slices.Contains(l.snap.Downloaded, id) {
			l.snap.Downloaded = append(l.snap.Downloaded, id)
		}
	}
	for _, p := range other.Playlists {
		if l.find(p.ID) != nil {
			l.logger.Warnf("skipping imported playlist %q: id %s already exists", p.Name, p.ID)
			continue
		}
		if err := p.Validate(); err != nil {
			l.logger.Warnf("skipping imported playlist %q: %v", p.Name, err)
			continue
		}
		l.snap.Playlists = append(l.snap.Playlists, copyPlaylist(p))
	}

	l.save()
}

// find returns a pointer into the stored playlist slice, or nil.
func (l *Library) find(id string) *models.Playlist {
	for i := range l.snap.Playlists {
		if l.snap.Playlists[i].ID == id {
			return &l.snap.Playlists[i]
		}
	}
	return nil
}

// newPlaylistID generates a time-based id with a random suffix, retrying on
// the (unlikely) collision so ids stay unique within a session.
func (l *Library) newPlaylistID() string {
	for {
		id := fmt.Sprintf("p_%d_%s", time.Now().UnixMilli(), shared.GenerateID()[:8])
		if l.find(id) == nil {
			return id
		}
	}
}

func copyPlaylist(p models.Playlist) models.Playlist {
	p.Tracks = slices.Clone(p.Tracks)
	return p
}

func remove(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
