package library

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/desertthunder/libx/internal/models"
	"github.com/desertthunder/libx/internal/shared"
	tu "github.com/desertthunder/libx/internal/testing"
)

// seedPlaylist creates a playlist holding tracks a, b, c
func seedPlaylist(t *testing.T) (*Library, string) {
	t.Helper()

	lib := New(&tu.MemStore{}, shared.NewLogger(&bytes.Buffer{}))
	p, err := lib.CreatePlaylist("Mix", "")
	if err != nil {
		t.Fatalf("failed to create playlist: %v", err)
	}
	for _, id := range []string{"a", "b", "c"} {
		if _, err := lib.AddTrack(p.ID, models.Track{ID: id, Name: id}); err != nil {
			t.Fatalf("failed to add track %s: %v", id, err)
		}
	}
	return lib, p.ID
}

func TestCommitOrder(t *testing.T) {
	tracks := []models.Track{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	t.Run("accepts a permutation", func(t *testing.T) {
		got, err := CommitOrder(tracks, []string{"c", "a", "b"})
		if err != nil {
			t.Fatalf("expected commit to succeed: %v", err)
		}
		if got[0].ID != "c" || got[1].ID != "a" || got[2].ID != "b" {
			t.Errorf("unexpected order: %v", got)
		}
	})

	t.Run("rejects missing ids", func(t *testing.T) {
		if _, err := CommitOrder(tracks, []string{"a", "b"}); !errors.Is(err, shared.ErrOrderMismatch) {
			t.Errorf("expected ErrOrderMismatch, got %v", err)
		}
	})

	t.Run("rejects duplicated ids", func(t *testing.T) {
		if _, err := CommitOrder(tracks, []string{"a", "a", "b"}); !errors.Is(err, shared.ErrOrderMismatch) {
			t.Errorf("expected ErrOrderMismatch, got %v", err)
		}
	})

	t.Run("rejects unknown ids", func(t *testing.T) {
		if _, err := CommitOrder(tracks, []string{"a", "b", "z"}); !errors.Is(err, shared.ErrOrderMismatch) {
			t.Errorf("expected ErrOrderMismatch, got %v", err)
		}
	})

	t.Run("preserves stored track metadata", func(t *testing.T) {
		stored := []models.Track{
			{ID: "a", Name: "Alpha", Artist: "X"},
			{ID: "b", Name: "Beta", Artist: "Y"},
		}

		got, err := CommitOrder(stored, []string{"b", "a"})
		if err != nil {
			t.Fatalf("expected commit to succeed: %v", err)
		}
		if got[0].Name != "Beta" || got[1].Name != "Alpha" {
			t.Error("expected stored metadata carried through the reorder")
		}
	})
}

func TestReorder(t *testing.T) {
	t.Run("commits and persists a valid order", func(t *testing.T) {
		lib, id := seedPlaylist(t)

		got, err := lib.Reorder(id, []string{"c", "a", "b"})
		if err != nil {
			t.Fatalf("failed to reorder: %v", err)
		}
		if !reflect.DeepEqual(got.TrackIDs(), []string{"c", "a", "b"}) {
			t.Errorf("expected [c a b], got %v", got.TrackIDs())
		}

		stored, _ := lib.Playlist(id)
		if !reflect.DeepEqual(stored.TrackIDs(), []string{"c", "a", "b"}) {
			t.Errorf("expected stored order updated, got %v", stored.TrackIDs())
		}
	})

	t.Run("rejection retains the prior order", func(t *testing.T) {
		lib, id := seedPlaylist(t)

		if _, err := lib.Reorder(id, []string{"a", "b"}); !errors.Is(err, shared.ErrOrderMismatch) {
			t.Fatalf("expected ErrOrderMismatch, got %v", err)
		}

		stored, _ := lib.Playlist(id)
		if !reflect.DeepEqual(stored.TrackIDs(), []string{"a", "b", "c"}) {
			t.Errorf("expected [a b c] retained, got %v", stored.TrackIDs())
		}
	})

	t.Run("unknown playlist", func(t *testing.T) {
		lib, _ := seedPlaylist(t)

		if _, err := lib.Reorder("nope", []string{"a"}); !errors.Is(err, shared.ErrPlaylistNotFound) {
			t.Errorf("expected ErrPlaylistNotFound, got %v", err)
		}
	})
}

func TestMoveTrack(t *testing.T) {
	t.Run("moves within bounds", func(t *testing.T) {
		lib, id := seedPlaylist(t)

		got, err := lib.MoveTrack(id, 2, 0)
		if err != nil {
			t.Fatalf("failed to move track: %v", err)
		}
		if !reflect.DeepEqual(got.TrackIDs(), []string{"c", "a", "b"}) {
			t.Errorf("expected [c a b], got %v", got.TrackIDs())
		}
	})

	t.Run("moving onto itself is a no-op", func(t *testing.T) {
		lib, id := seedPlaylist(t)

		got, err := lib.MoveTrack(id, 1, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(got.TrackIDs(), []string{"a", "b", "c"}) {
			t.Errorf("expected order unchanged, got %v", got.TrackIDs())
		}
	})

	t.Run("positions clamp to the list bounds", func(t *testing.T) {
		lib, id := seedPlaylist(t)

		got, err := lib.MoveTrack(id, 0, 99)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(got.TrackIDs(), []string{"b", "c", "a"}) {
			t.Errorf("expected [b c a], got %v", got.TrackIDs())
		}

		got, err = lib.MoveTrack(id, -5, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(got.TrackIDs(), []string{"b", "c", "a"}) {
			t.Errorf("expected order unchanged when clamped onto itself, got %v", got.TrackIDs())
		}
	})

	t.Run("empty playlist is a no-op", func(t *testing.T) {
		lib := New(&tu.MemStore{}, shared.NewLogger(&bytes.Buffer{}))
		p, _ := lib.CreatePlaylist("Empty", "")

		if _, err := lib.MoveTrack(p.ID, 0, 1); err != nil {
			t.Errorf("expected no error on empty playlist, got %v", err)
		}
	})
}
