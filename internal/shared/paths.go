package shared

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
)

const appName = "libx"

// SnapshotFile is the filename of the unified library snapshot.
const SnapshotFile = "library.json"

// DefaultSnapshotPath resolves the snapshot location under the XDG data
// directory, creating parent directories as needed.
func DefaultSnapshotPath() (string, error) {
	path, err := xdg.DataFile(filepath.Join(appName, SnapshotFile))
	if err != nil {
		return "", fmt.Errorf("failed to resolve data directory: %w", err)
	}
	return path, nil
}
