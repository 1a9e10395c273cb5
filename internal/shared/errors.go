package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Library errors
	ErrPlaylistNotFound = fmt.Errorf("playlist not found")
	ErrTrackNotFound    = fmt.Errorf("track not found")
	ErrEmptyName        = fmt.Errorf("playlist name is empty")
	ErrNameTooLong      = fmt.Errorf("playlist name exceeds 100 characters")
	ErrInvalidTrack     = fmt.Errorf("invalid track")
	ErrOrderMismatch    = fmt.Errorf("reordered tracks do not match stored tracks")

	// Settings errors
	ErrInvalidLang  = fmt.Errorf("unsupported language")
	ErrInvalidTheme = fmt.Errorf("unsupported theme")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
