package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/libx/internal/library"
	"github.com/desertthunder/libx/internal/models"
	"github.com/desertthunder/libx/internal/sorter"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	PlaylistListView ViewState = iota
	TrackListView
)

// Model represents the TUI application state.
type Model struct {
	lib    *library.Library
	view   ViewState
	width  int
	height int

	collections list.Model
	tracks      list.Model

	// currentID is the open collection: a playlist id, favoritesID, or
	// downloadsID.
	currentID   string
	currentName string

	// sorted is false while the track view shows the manual order.
	sorted bool
	sel    sorter.Selection

	status string
	help   help.Model
	keys   keyMap
}

// NewModel creates a new TUI model over the given library.
func NewModel(lib *library.Library) *Model {
	m := &Model{
		lib:  lib,
		view: PlaylistListView,
		help: help.New(),
		keys: newKeyMap(),
	}

	m.collections = list.New(m.collectionItems(), list.NewDefaultDelegate(), 0, 0)
	m.collections.Title = "Library"
	return m
}

// Init implements [tea.Model]. The library is local, so there is nothing to
// fetch asynchronously.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.collections.SetSize(msg.Width-4, msg.Height-8)
		m.tracks.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.quit) {
			return m, tea.Quit
		}

		switch m.view {
		case PlaylistListView:
			return m.handleCollectionKeys(msg)
		case TrackListView:
			return m.handleTrackKeys(msg)
		}
	}

	return m.updateLists(msg)
}

func (m *Model) handleCollectionKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.enter) {
		if item, ok := m.collections.SelectedItem().(collectionItem); ok {
			m.openCollection(item.id, item.name)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.collections, cmd = m.collections.Update(msg)
	return m, cmd
}

func (m *Model) handleTrackKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.back):
		m.view = PlaylistListView
		m.status = ""
		m.refreshCollections()
		return m, nil

	case key.Matches(msg, m.keys.sortName):
		m.selectSort(sorter.KeyName)
		return m, nil
	case key.Matches(msg, m.keys.sortArt):
		m.selectSort(sorter.KeyArtist)
		return m, nil
	case key.Matches(msg, m.keys.sortDate):
		m.selectSort(sorter.KeyDate)
		return m, nil
	case key.Matches(msg, m.keys.sortLen):
		m.selectSort(sorter.KeyDuration)
		return m, nil

	case key.Matches(msg, m.keys.manual):
		m.sorted = false
		m.sel = sorter.Selection{}
		m.status = "manual order"
		m.refreshTracks()
		return m, nil

	case key.Matches(msg, m.keys.favorite):
		if item, ok := m.tracks.SelectedItem().(trackItem); ok {
			liked, err := m.lib.ToggleFavorite(item.track.ID)
			if err != nil {
				m.status = styles.err.Render(err.Error())
			} else if liked {
				m.status = styles.ok.Render("added to favorites")
			} else {
				m.status = styles.warn.Render("removed from favorites")
			}
			m.refreshTracks()
		}
		return m, nil

	case key.Matches(msg, m.keys.download):
		if item, ok := m.tracks.SelectedItem().(trackItem); ok {
			if err := m.lib.AddDownload(item.track.ID); err != nil {
				m.status = styles.err.Render(err.Error())
			} else {
				m.status = styles.ok.Render("downloaded")
			}
			m.refreshTracks()
		}
		return m, nil

	case key.Matches(msg, m.keys.undl):
		if item, ok := m.tracks.SelectedItem().(trackItem); ok {
			if err := m.lib.RemoveDownload(item.track.ID); err != nil {
				m.status = styles.err.Render(err.Error())
			} else {
				m.status = styles.warn.Render("removed from downloads")
			}
			m.refreshTracks()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.tracks, cmd = m.tracks.Update(msg)
	return m, cmd
}

// selectSort applies a sort-menu choice: a new key starts ascending, the
// active key flips direction.
func (m *Model) selectSort(k sorter.Key) {
	m.sel.Select(k)
	m.sorted = true
	m.status = fmt.Sprintf("sorted by %s (%s)", m.sel.Key, m.sel.Dir)
	m.refreshTracks()
}

func (m *Model) openCollection(id, name string) {
	m.currentID = id
	m.currentName = name
	m.sorted = false
	m.sel = sorter.Selection{}
	m.status = ""

	m.tracks = list.New([]list.Item{}, list.NewDefaultDelegate(), m.width-4, m.height-8)
	m.tracks.Title = name
	m.refreshTracks()
	m.view = TrackListView
}

// collectionTracks resolves the open collection's tracks in manual/insertion
// order. Membership sets carry ids only; metadata is resolved from playlist
// entries when a track appears in one.
func (m *Model) collectionTracks() []models.Track {
	switch m.currentID {
	case favoritesID:
		return m.lookupAll(m.lib.Favorites())
	case downloadsID:
		return m.lookupAll(m.lib.Downloads())
	default:
		p, err := m.lib.Playlist(m.currentID)
		if err != nil {
			return nil
		}
		return p.Tracks
	}
}

func (m *Model) lookupAll(ids []string) []models.Track {
	tracks := make([]models.Track, len(ids))
	for i, id := range ids {
		tracks[i] = m.lookupTrack(id)
	}
	return tracks
}

// lookupTrack finds a track's metadata in any playlist, falling back to a
// bare id reference when the track is in no playlist.
func (m *Model) lookupTrack(id string) models.Track {
	for _, p := range m.lib.Playlists() {
		for _, t := range p.Tracks {
			if t.ID == id {
				return t
			}
		}
	}
	return models.Track{ID: id, Name: id}
}

func (m *Model) refreshTracks() {
	tracks := m.collectionTracks()
	if m.sorted {
		tracks = sorter.Sort(tracks, m.sel.Key, m.sel.Dir)
	}

	items := make([]list.Item, len(tracks))
	for i, t := range tracks {
		items[i] = trackItem{
			track:      t,
			liked:      m.lib.IsFavorite(t.ID),
			downloaded: m.lib.IsDownloaded(t.ID),
		}
	}
	m.tracks.SetItems(items)
}

func (m *Model) collectionItems() []list.Item {
	items := []list.Item{
		collectionItem{id: favoritesID, name: "Favorites", icon: "❤️", count: len(m.lib.Favorites())},
		collectionItem{id: downloadsID, name: "Downloaded", icon: "📥", count: len(m.lib.Downloads())},
	}
	for _, p := range m.lib.Playlists() {
		items = append(items, playlistCollectionItem(p))
	}
	return items
}

func (m *Model) refreshCollections() {
	m.collections.SetItems(m.collectionItems())
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case PlaylistListView:
		m.collections, cmd = m.collections.Update(msg)
	case TrackListView:
		m.tracks, cmd = m.tracks.Update(msg)
	}
	return m, cmd
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	switch m.view {
	case TrackListView:
		header := styles.title.Render(m.currentName)
		status := ""
		if m.status != "" {
			status = "\n" + styles.help.Render(m.status)
		}
		return fmt.Sprintf("%s\n%s%s\n%s", header, m.tracks.View(), status, m.help.View(m.keys))
	default:
		return fmt.Sprintf("%s\n%s", m.collections.View(), m.help.View(m.keys))
	}
}
