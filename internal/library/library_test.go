package library

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/desertthunder/libx/internal/models"
	"github.com/desertthunder/libx/internal/shared"
	tu "github.com/desertthunder/libx/internal/testing"
)

// newTestLibrary builds a Library over an in-memory store
func newTestLibrary(t *testing.T) (*Library, *tu.MemStore) {
	t.Helper()

	store := &tu.MemStore{}
	lib := New(store, shared.NewLogger(&bytes.Buffer{}))
	return lib, store
}

func TestCreatePlaylist(t *testing.T) {
	t.Run("creates and appends in creation order", func(t *testing.T) {
		lib, store := newTestLibrary(t)

		first, err := lib.CreatePlaylist("Morning", "")
		if err != nil {
			t.Fatalf("failed to create playlist: %v", err)
		}
		second, err := lib.CreatePlaylist("Evening", "🌙")
		if err != nil {
			t.Fatalf("failed to create playlist: %v", err)
		}

		all := lib.Playlists()
		if len(all) != 2 {
			t.Fatalf("expected 2 playlists, got %d", len(all))
		}
		if all[0].ID != first.ID || all[1].ID != second.ID {
			t.Error("expected playlists in creation order")
		}
		if store.Saves != 2 {
			t.Errorf("expected a save per mutation, got %d", store.Saves)
		}
	})

	t.Run("trims the name", func(t *testing.T) {
		lib, _ := newTestLibrary(t)

		p, err := lib.CreatePlaylist("  Chill  ", "")
		if err != nil {
			t.Fatalf("failed to create playlist: %v", err)
		}
		if p.Name != "Chill" {
			t.Errorf("expected trimmed name, got %q", p.Name)
		}
	})

	t.Run("rejects empty name before any state change", func(t *testing.T) {
		lib, store := newTestLibrary(t)

		if _, err := lib.CreatePlaylist("   ", ""); !errors.Is(err, shared.ErrEmptyName) {
			t.Errorf("expected ErrEmptyName, got %v", err)
		}
		if len(lib.Playlists()) != 0 {
			t.Error("expected no playlist created")
		}
		if store.Saves != 0 {
			t.Error("expected no save for rejected mutation")
		}
	})

	t.Run("rejects names over 100 characters", func(t *testing.T) {
		lib, _ := newTestLibrary(t)

		if _, err := lib.CreatePlaylist(strings.Repeat("x", 101), ""); !errors.Is(err, shared.ErrNameTooLong) {
			t.Errorf("expected ErrNameTooLong, got %v", err)
		}
	})

	t.Run("assigns the default icon when blank", func(t *testing.T) {
		lib, _ := newTestLibrary(t)

		p, _ := lib.CreatePlaylist("Mix", "")
		if p.Icon != models.DefaultIcon {
			t.Errorf("expected default icon, got %q", p.Icon)
		}
	})

	t.Run("generates unique ids", func(t *testing.T) {
		lib, _ := newTestLibrary(t)

		seen := map[string]bool{}
		for i := 0; i < 50; i++ {
			p, err := lib.CreatePlaylist("Mix", "")
			if err != nil {
				t.Fatalf("failed to create playlist: %v", err)
			}
			if seen[p.ID] {
				t.Fatalf("duplicate playlist id %s", p.ID)
			}
			seen[p.ID] = true
		}
	})
}

func TestDeletePlaylist(t *testing.T) {
	t.Run("removes the playlist", func(t *testing.T) {
		lib, _ := newTestLibrary(t)
		p, _ := lib.CreatePlaylist("Mix", "")

		lib.DeletePlaylist(p.ID)

		if len(lib.Playlists()) != 0 {
			t.Error("expected playlist removed")
		}
		if _, err := lib.Playlist(p.ID); !errors.Is(err, shared.ErrPlaylistNotFound) {
			t.Errorf("expected ErrPlaylistNotFound, got %v", err)
		}
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		lib, store := newTestLibrary(t)
		lib.CreatePlaylist("Mix", "")
		saves := store.Saves

		lib.DeletePlaylist("nope")

		if len(lib.Playlists()) != 1 {
			t.Error("expected playlists unchanged")
		}
		if store.Saves != saves {
			t.Error("expected no save for no-op delete")
		}
	})
}

func TestRenamePlaylist(t *testing.T) {
	t.Run("updates provided fields", func(t *testing.T) {
		lib, _ := newTestLibrary(t)
		p, _ := lib.CreatePlaylist("Mix", "🎵")

		renamed, err := lib.RenamePlaylist(p.ID, "Workout", "💪")
		if err != nil {
			t.Fatalf("failed to rename: %v", err)
		}
		if renamed.Name != "Workout" || renamed.Icon != "💪" {
			t.Errorf("unexpected rename result: %+v", renamed)
		}
	})

	t.Run("blank name keeps the previous name", func(t *testing.T) {
		lib, _ := newTestLibrary(t)
		p, _ := lib.CreatePlaylist("Mix", "")

		renamed, err := lib.RenamePlaylist(p.ID, "   ", "🔥")
		if err != nil {
			t.Fatalf("failed to rename: %v", err)
		}
		if renamed.Name != "Mix" {
			t.Errorf("expected name preserved, got %q", renamed.Name)
		}
		if renamed.Icon != "🔥" {
			t.Errorf("expected icon updated, got %q", renamed.Icon)
		}
	})

	t.Run("unknown playlist", func(t *testing.T) {
		lib, _ := newTestLibrary(t)

		if _, err := lib.RenamePlaylist("nope", "x", ""); !errors.Is(err, shared.ErrPlaylistNotFound) {
			t.Errorf("expected ErrPlaylistNotFound, got %v", err)
		}
	})
}

func TestAddTrack(t *testing.T) {
	track := models.Track{ID: "t1", Name: "Song", Artist: "Artist", Duration: "3:24"}

	t.Run("appends with addedAt set", func(t *testing.T) {
		lib, _ := newTestLibrary(t)
		p, _ := lib.CreatePlaylist("Mix", "")

		got, err := lib.AddTrack(p.ID, track)
		if err != nil {
			t.Fatalf("failed to add track: %v", err)
		}
		if len(got.Tracks) != 1 {
			t.Fatalf("expected 1 track, got %d", len(got.Tracks))
		}
		if got.Tracks[0].AddedAt == "" {
			t.Error("expected addedAt to be stamped")
		}
		if got.Tracks[0].AddedAtTime().IsZero() {
			t.Error("expected addedAt to parse as RFC 3339")
		}
	})

	t.Run("duplicate id is a no-op, not an error", func(t *testing.T) {
		lib, _ := newTestLibrary(t)
		p, _ := lib.CreatePlaylist("Mix", "")

		lib.AddTrack(p.ID, track)
		got, err := lib.AddTrack(p.ID, track)
		if err != nil {
			t.Fatalf("expected duplicate add to succeed silently, got %v", err)
		}
		if len(got.Tracks) != 1 {
			t.Errorf("expected track count unchanged, got %d", len(got.Tracks))
		}
	})

	t.Run("unknown playlist never creates state", func(t *testing.T) {
		lib, _ := newTestLibrary(t)

		if _, err := lib.AddTrack("nope", track); !errors.Is(err, shared.ErrPlaylistNotFound) {
			t.Errorf("expected ErrPlaylistNotFound, got %v", err)
		}
		if len(lib.Playlists()) != 0 {
			t.Error("expected no playlist to appear")
		}
	})

	t.Run("invalid track rejected", func(t *testing.T) {
		lib, _ := newTestLibrary(t)
		p, _ := lib.CreatePlaylist("Mix", "")

		if _, err := lib.AddTrack(p.ID, models.Track{Name: "No ID"}); !errors.Is(err, shared.ErrInvalidTrack) {
			t.Errorf("expected ErrInvalidTrack, got %v", err)
		}
	})
}

func TestRemoveTrack(t *testing.T) {
	t.Run("removes matching entry", func(t *testing.T) {
		lib, _ := newTestLibrary(t)
		p, _ := lib.CreatePlaylist("Mix", "")
		lib.AddTrack(p.ID, models.Track{ID: "t1"})
		lib.AddTrack(p.ID, models.Track{ID: "t2"})

		got, err := lib.RemoveTrack(p.ID, "t1")
		if err != nil {
			t.Fatalf("failed to remove track: %v", err)
		}
		if !reflect.DeepEqual(got.TrackIDs(), []string{"t2"}) {
			t.Errorf("expected [t2], got %v", got.TrackIDs())
		}
	})

	t.Run("absent track is a no-op", func(t *testing.T) {
		lib, _ := newTestLibrary(t)
		p, _ := lib.CreatePlaylist("Mix", "")
		lib.AddTrack(p.ID, models.Track{ID: "t1"})

		got, err := lib.RemoveTrack(p.ID, "missing")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(got.Tracks) != 1 {
			t.Error("expected tracks unchanged")
		}
	})

	t.Run("unknown playlist", func(t *testing.T) {
		lib, _ := newTestLibrary(t)

		if _, err := lib.RemoveTrack("nope", "t1"); !errors.Is(err, shared.ErrPlaylistNotFound) {
			t.Errorf("expected ErrPlaylistNotFound, got %v", err)
		}
	})
}

func TestToggleFavorite(t *testing.T) {
	t.Run("double toggle returns to the original state", func(t *testing.T) {
		lib, _ := newTestLibrary(t)

		liked, err := lib.ToggleFavorite("t1")
		if err != nil {
			t.Fatalf("failed to toggle: %v", err)
		}
		if !liked {
			t.Error("expected first toggle to like")
		}

		liked, err = lib.ToggleFavorite("t1")
		if err != nil {
			t.Fatalf("failed to toggle: %v", err)
		}
		if liked {
			t.Error("expected second toggle to unlike")
		}
		if lib.IsFavorite("t1") {
			t.Error("expected favorites empty after double toggle")
		}
	})

	t.Run("empty id rejected", func(t *testing.T) {
		lib, _ := newTestLibrary(t)

		if _, err := lib.ToggleFavorite("  "); !errors.Is(err, shared.ErrInvalidTrack) {
			t.Errorf("expected ErrInvalidTrack, got %v", err)
		}
	})

	t.Run("insertion order preserved", func(t *testing.T) {
		lib, _ := newTestLibrary(t)

		lib.ToggleFavorite("b")
		lib.ToggleFavorite("a")
		lib.ToggleFavorite("c")

		if !reflect.DeepEqual(lib.Favorites(), []string{"b", "a", "c"}) {
			t.Errorf("expected insertion order [b a c], got %v", lib.Favorites())
		}
	})
}

func TestFavoriteDirectMutations(t *testing.T) {
	lib, _ := newTestLibrary(t)

	if err := lib.AddFavorite("t1"); err != nil {
		t.Fatalf("failed to add favorite: %v", err)
	}
	if err := lib.AddFavorite("t1"); err != nil {
		t.Fatalf("expected idempotent add, got %v", err)
	}
	if got := lib.Favorites(); len(got) != 1 {
		t.Errorf("expected one favorite, got %v", got)
	}

	if err := lib.RemoveFavorite("t1"); err != nil {
		t.Fatalf("failed to remove favorite: %v", err)
	}
	if err := lib.RemoveFavorite("t1"); err != nil {
		t.Fatalf("expected idempotent remove, got %v", err)
	}
	if lib.IsFavorite("t1") {
		t.Error("expected favorite removed")
	}
}

func TestDownloads(t *testing.T) {
	t.Run("add and remove are idempotent", func(t *testing.T) {
		lib, _ := newTestLibrary(t)

		lib.AddDownload("t1")
		lib.AddDownload("t1")
		lib.AddDownload("t2")

		if !reflect.DeepEqual(lib.Downloads(), []string{"t1", "t2"}) {
			t.Errorf("expected [t1 t2], got %v", lib.Downloads())
		}

		lib.RemoveDownload("t1")
		lib.RemoveDownload("t1")

		if !reflect.DeepEqual(lib.Downloads(), []string{"t2"}) {
			t.Errorf("expected [t2], got %v", lib.Downloads())
		}
	})

	t.Run("empty id rejected", func(t *testing.T) {
		lib, _ := newTestLibrary(t)

		if err := lib.AddDownload(""); !errors.Is(err, shared.ErrInvalidTrack) {
			t.Errorf("expected ErrInvalidTrack, got %v", err)
		}
	})
}

func TestSettings(t *testing.T) {
	t.Run("valid values applied and saved", func(t *testing.T) {
		lib, store := newTestLibrary(t)

		if err := lib.SetLang(models.LangEN); err != nil {
			t.Fatalf("failed to set lang: %v", err)
		}
		if err := lib.SetTheme(models.ThemeLight); err != nil {
			t.Fatalf("failed to set theme: %v", err)
		}
		if lib.Lang() != models.LangEN || lib.Theme() != models.ThemeLight {
			t.Error("expected settings applied")
		}
		if store.Saves != 2 {
			t.Errorf("expected 2 saves, got %d", store.Saves)
		}
	})

	t.Run("invalid values rejected keeping prior", func(t *testing.T) {
		lib, _ := newTestLibrary(t)

		if err := lib.SetLang("de"); !errors.Is(err, shared.ErrInvalidLang) {
			t.Errorf("expected ErrInvalidLang, got %v", err)
		}
		if err := lib.SetTheme("sepia"); !errors.Is(err, shared.ErrInvalidTheme) {
			t.Errorf("expected ErrInvalidTheme, got %v", err)
		}
		if lib.Lang() != models.DefaultLang || lib.Theme() != models.DefaultTheme {
			t.Error("expected prior settings retained")
		}
	})
}

func TestSaveFailureKeepsMemoryAuthoritative(t *testing.T) {
	store := &tu.FailingStore{}
	logbuf := &bytes.Buffer{}
	lib := New(store, shared.NewLogger(logbuf))

	p, err := lib.CreatePlaylist("Mix", "")
	if err != nil {
		t.Fatalf("expected mutation to succeed despite save failure: %v", err)
	}
	if _, err := lib.Playlist(p.ID); err != nil {
		t.Errorf("expected playlist readable after failed save: %v", err)
	}
	if store.Attempts != 1 {
		t.Errorf("expected one save attempt with no retry, got %d", store.Attempts)
	}
	if !strings.Contains(logbuf.String(), "snapshot save failed") {
		t.Error("expected a persistence warning in the log")
	}
}

func TestMerge(t *testing.T) {
	lib, _ := newTestLibrary(t)
	existing, _ := lib.CreatePlaylist("Mine", "")
	lib.AddFavorite("f1")

	lib.Merge(&models.Snapshot{
		Favorites:  []string{"f1", "f2"},
		Downloaded: []string{"d1"},
		Playlists: []models.Playlist{
			{ID: existing.ID, Name: "Clash"},
			{ID: "legacy_1", Name: "Imported", Tracks: []models.Track{{ID: "t1"}}},
			{ID: "legacy_2", Name: "   "},
		},
	})

	if !reflect.DeepEqual(lib.Favorites(), []string{"f1", "f2"}) {
		t.Errorf("expected favorites union, got %v", lib.Favorites())
	}
	if !reflect.DeepEqual(lib.Downloads(), []string{"d1"}) {
		t.Errorf("expected downloads union, got %v", lib.Downloads())
	}

	all := lib.Playlists()
	if len(all) != 2 {
		t.Fatalf("expected existing + one imported playlist, got %d", len(all))
	}
	if all[0].Name != "Mine" || all[1].Name != "Imported" {
		t.Errorf("unexpected playlists after merge: %v", all)
	}
}
