// Package models defines the domain entities of the libx music library.
//
// The package contains three categories of types:
//
// 1. Track references: [Track] carries the metadata a caller supplies when a
// track enters the library. The id is the join key across favorites,
// downloads, and playlist entries; everything else is display data.
//
// 2. Collections: [Playlist] is an ordered, duplicate-free (by track id)
// sequence of tracks with a name and icon. Favorites and downloads are
// membership sets of track ids, kept in insertion order for rendering.
//
// 3. The snapshot: [Snapshot] is the full persisted library state: both
// membership sets, all playlists, and the lang/theme settings that share the
// same durable blob.
//
// Validation is local to each type; nothing in this package performs I/O.
package models
