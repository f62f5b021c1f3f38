package systems

import (
	"errors"
	"testing"

	"github.com/orbit-social/orbit/components"
	cfg "github.com/orbit-social/orbit/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	items   map[string][]byte
	saveErr error
}

func (m *memStore) LoadItem(key string) ([]byte, error) {
	return m.items[key], nil
}

func (m *memStore) SaveItem(key string, data []byte) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.items[key] = data
	return nil
}

func withStore(t *testing.T, s settingsStore) {
	t.Helper()
	prev := store
	store = s
	t.Cleanup(func() { store = prev })
}

func TestSettingsRoundTrip(t *testing.T) {
	mem := &memStore{items: map[string][]byte{}}
	withStore(t, mem)

	saved, err := LoadSettings()
	require.NoError(t, err)
	assert.Nil(t, saved, "nothing saved yet")

	SaveCurrentSettings(&components.SettingsData{ResolutionIndex: 2, Bend: -3, ScrollSpeed: 1.5})
	assert.Contains(t, mem.items, cfg.SettingsMenu.StorageKey)

	saved, err = LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, &SavedSettings{ResolutionIndex: 2, Bend: -3, ScrollSpeed: 1.5}, saved)
}

func TestLoadSettingsCorrupt(t *testing.T) {
	withStore(t, &memStore{items: map[string][]byte{cfg.SettingsMenu.StorageKey: []byte("{")}})

	saved, err := LoadSettings()
	assert.Error(t, err)
	assert.Nil(t, saved)
}

func TestSaveSettingsError(t *testing.T) {
	withStore(t, &memStore{items: map[string][]byte{}, saveErr: errors.New("disk full")})
	assert.Error(t, SaveSettings(&SavedSettings{}))
}

func TestPersistenceWithoutStore(t *testing.T) {
	withStore(t, nil)

	saved, err := LoadSettings()
	assert.NoError(t, err)
	assert.Nil(t, saved)
	assert.NoError(t, SaveSettings(&SavedSettings{Bend: 1}))
}

func TestApplySavedIgnoresInvalid(t *testing.T) {
	s := components.SettingsData{ResolutionIndex: 1, ScrollSpeed: 2}
	applySaved(&s, &SavedSettings{ResolutionIndex: 99, Bend: 4, ScrollSpeed: -1})

	assert.Equal(t, 1, s.ResolutionIndex)
	assert.Equal(t, 4.0, s.Bend)
	assert.Equal(t, 2.0, s.ScrollSpeed)
}
