// Package sorter computes display orderings of track collections.
//
// Sorting here is presentation-only: callers hand in tracks in their manual
// order and get a sorted copy back. Nothing is ever written to a playlist's
// stored order, so switching back to manual order is always possible.
package sorter

import (
	"sort"
	"strings"

	"github.com/desertthunder/libx/internal/models"
)

// Key selects which track attribute drives the ordering.
type Key string

const (
	KeyName     Key = "name"
	KeyArtist   Key = "artist"
	KeyDuration Key = "duration"
	KeyDate     Key = "date"
)

// Keys lists the supported sort keys in menu order.
var Keys = []Key{KeyName, KeyArtist, KeyDate, KeyDuration}

// ParseKey validates a user-supplied sort key.
func ParseKey(s string) (Key, bool) {
	switch Key(strings.ToLower(strings.TrimSpace(s))) {
	case KeyName:
		return KeyName, true
	case KeyArtist:
		return KeyArtist, true
	case KeyDuration:
		return KeyDuration, true
	case KeyDate:
		return KeyDate, true
	}
	return "", false
}

// Direction is the ordering direction.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// Selection tracks the active sort key and direction the way a sort menu
// does: picking a new key starts ascending, picking the active key again
// flips the direction.
type Selection struct {
	Key Key
	Dir Direction
}

// Select applies a key choice to the selection.
func (s *Selection) Select(k Key) {
	if s.Key == k {
		if s.Dir == Ascending {
			s.Dir = Descending
		} else {
			s.Dir = Ascending
		}
		return
	}
	s.Key = k
	s.Dir = Ascending
}

// Sort returns a copy of tracks ordered by the given key and direction.
// The sort is stable: equal keys preserve their prior relative order.
func Sort(tracks []models.Track, key Key, dir Direction) []models.Track {
	out := make([]models.Track, len(tracks))
	copy(out, tracks)

	less := lessFunc(key)
	sort.SliceStable(out, func(i, j int) bool {
		if dir == Descending {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})

	return out
}

func lessFunc(key Key) func(a, b models.Track) bool {
	switch key {
	case KeyArtist:
		return func(a, b models.Track) bool {
			return strings.ToLower(a.Artist) < strings.ToLower(b.Artist)
		}
	case KeyDuration:
		return func(a, b models.Track) bool {
			return a.DurationSeconds() < b.DurationSeconds()
		}
	case KeyDate:
		return func(a, b models.Track) bool {
			return a.AddedAtTime().Before(b.AddedAtTime())
		}
	default:
		return func(a, b models.Track) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	}
}
