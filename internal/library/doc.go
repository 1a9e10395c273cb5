// Package library implements the music-library state engine.
//
// # Ownership
//
// A [Library] owns the in-memory snapshot for one session. It is constructed
// from a store's Load at startup and is the single writer for the rest of
// the session; there are no package-level globals. Reads always observe the
// most recently completed mutation because every operation runs to
// completion before returning.
//
// # Mutations
//
// Every mutation is atomic with respect to the in-memory state and triggers
// a full-snapshot save through the [Store]. A failed save is logged as a
// warning and never rolls the mutation back; in-memory state stays
// authoritative for the session and durability is best effort.
//
// # Idempotence
//
// Adding a track that is already in a playlist, removing one that is not,
// and re-adding a download are deliberate no-ops rather than errors, so
// rapid repeated calls can never corrupt state. Unknown playlist ids are
// reported as [shared.ErrPlaylistNotFound] and never create state.
//
// A Library is not safe for concurrent use.
package library
