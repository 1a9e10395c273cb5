// package testing contains shared testing utilities
package testing

import (
	"errors"

	"github.com/desertthunder/libx/internal/models"
)

// MemStore is an in-memory [library.Store] double. The zero value loads a
// default snapshot.
type MemStore struct {
	Snapshot *models.Snapshot
	Saves    int
}

func (m *MemStore) Load() *models.Snapshot {
	if m.Snapshot == nil {
		m.Snapshot = models.NewSnapshot()
	}
	return m.Snapshot
}

func (m *MemStore) Save(s *models.Snapshot) error {
	m.Snapshot = s
	m.Saves++
	return nil
}

// FailingStore loads a default snapshot and fails every save.
type FailingStore struct {
	Attempts int
}

func (f *FailingStore) Load() *models.Snapshot { return models.NewSnapshot() }

func (f *FailingStore) Save(*models.Snapshot) error {
	f.Attempts++
	return errors.New("save failed")
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}
