package library

import (
	"fmt"

	"github.com/desertthunder/libx/internal/models"
	"github.com/desertthunder/libx/internal/shared"
)

// CommitOrder applies a final observed id ordering to a stored track list.
//
// The commit is position-based, not an index splice: the caller hands over
// the complete ordering once a reorder gesture has settled, and the stored
// list is replaced wholesale. The new sequence must contain exactly the
// stored ids (same set, same cardinality), otherwise the commit is
// rejected and the caller keeps the prior order. That guard is what stops a
// rendering desync from silently dropping a track.
func CommitOrder(tracks []models.Track, order []string) ([]models.Track, error) {
	if len(order) != len(tracks) {
		return nil, fmt.Errorf("%w: got %d ids for %d tracks", shared.ErrOrderMismatch, len(order), len(tracks))
	}

	byID := make(map[string]models.Track, len(tracks))
	for _, t := range tracks {
		byID[t.ID] = t
	}

	out := make([]models.Track, 0, len(order))
	seen := make(map[string]struct{}, len(order))
	for _, id := range order {
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: id %s appears twice", shared.ErrOrderMismatch, id)
		}
		t, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: unknown id %s", shared.ErrOrderMismatch, id)
		}
		seen[id] = struct{}{}
		out = append(out, t)
	}

	return out, nil
}

// Reorder commits a new manual order for one playlist and persists it.
// A rejected order leaves the stored order untouched. Favorites and
// downloads have no manual order and cannot be reordered.
func (l *Library) Reorder(playlistID string, order []string) (models.Playlist, error) {
	p := l.find(playlistID)
	if p == nil {
		return models.Playlist{}, fmt.Errorf("%w: %s", shared.ErrPlaylistNotFound, playlistID)
	}

	tracks, err := CommitOrder(p.Tracks, order)
	if err != nil {
		return models.Playlist{}, err
	}

	p.Tracks = tracks
	l.save()

	return copyPlaylist(*p), nil
}

// MoveTrack is a convenience over Reorder for a single drag: it moves the
// track at position from to position to, clamping both to the list bounds.
// Moving a track onto itself is a no-op.
func (l *Library) MoveTrack(playlistID string, from, to int) (models.Playlist, error) {
	p := l.find(playlistID)
	if p == nil {
		return models.Playlist{}, fmt.Errorf("%w: %s", shared.ErrPlaylistNotFound, playlistID)
	}

	from = clamp(from, len(p.Tracks))
	to = clamp(to, len(p.Tracks))
	if from == to || len(p.Tracks) == 0 {
		return copyPlaylist(*p), nil
	}

	ids := p.TrackIDs()
	id := ids[from]
	ids = append(ids[:from], ids[from+1:]...)
	ids = append(ids[:to], append([]string{id}, ids[to:]...)...)

	return l.Reorder(playlistID, ids)
}

func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
