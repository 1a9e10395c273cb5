// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a two-view browser over the library:
//  1. [PlaylistListView] : Browse playlists plus the favorites and downloads collections
//  2. [TrackListView] : Inspect a collection's tracks, sort them, and toggle membership
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern. All
// mutations go through the library engine synchronously, so there are no asynchronous
// messages: every keypress runs the operation to completion and re-renders from the
// engine's state.
//
// Sorting in the track view is display-only. Selecting a sort key re-orders what is on
// screen; pressing the same key again flips the direction, and returning to manual
// order always restores the playlist's stored sequence.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
