package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/libx/internal/models"
)

// Reserved ids for the two membership-set collections shown alongside
// playlists. Playlist ids never collide with these (they are p_ prefixed).
const (
	favoritesID = "favorites"
	downloadsID = "downloads"
)

var (
	_ list.Item = collectionItem{}
	_ list.Item = trackItem{}
)

// collectionItem wraps a playlist or membership set to implement [list.Item].
type collectionItem struct {
	id    string
	name  string
	icon  string
	count int
}

func playlistCollectionItem(p models.Playlist) collectionItem {
	return collectionItem{id: p.ID, name: p.Name, icon: p.Icon, count: len(p.Tracks)}
}

func (i collectionItem) FilterValue() string { return i.name }
func (i collectionItem) Title() string       { return fmt.Sprintf("%s %s", i.icon, i.name) }
func (i collectionItem) Description() string {
	return fmt.Sprintf("%d tracks", i.count)
}

// trackItem wraps [models.Track] to implement [list.Item].
type trackItem struct {
	track      models.Track
	liked      bool
	downloaded bool
}

func (i trackItem) FilterValue() string { return i.track.Name }
func (i trackItem) Title() string       { return i.track.Name }
func (i trackItem) Description() string {
	desc := i.track.Artist
	if i.track.Duration != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.track.Duration)
	}
	if i.liked {
		desc += " ❤"
	}
	if i.downloaded {
		desc += " 📥"
	}
	return desc
}
