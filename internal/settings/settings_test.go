package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.json"))
	assert.Equal(t, Default(), store.Load())
}

func TestLoadCorruptFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	assert.Equal(t, Default(), NewStore(path).Load())
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"volume":0.25}`), 0o644))

	got := NewStore(path).Load()
	assert.Equal(t, 0.25, got.Volume)
	assert.Equal(t, Default().LinesPerLevel, got.LinesPerLevel)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.json")
	store := NewStore(path)

	require.NoError(t, store.Save(Settings{Volume: 0.5, LinesPerLevel: 4}))
	assert.Equal(t, Settings{Volume: 0.5, LinesPerLevel: 4}, store.Load())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.Contains(t, fields, "volume")
	assert.Contains(t, fields, "lines_per_level")
}

// TestClamp は範囲外の値が保存時・読み込み時にクランプされることを確認します。
func TestClamp(t *testing.T) {
	testCases := []struct {
		name string
		in   Settings
		want Settings
	}{
		{"in range", Settings{0.3, 7}, Settings{0.3, 7}},
		{"too loud", Settings{1.5, 7}, Settings{1, 7}},
		{"negative volume", Settings{-0.1, 7}, Settings{0, 7}},
		{"zero lines", Settings{0.3, 0}, Settings{0.3, 1}},
		{"too many lines", Settings{0.3, 50}, Settings{0.3, 20}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.in.Clamp())
		})
	}

	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"volume":3,"lines_per_level":-2}`), 0o644))
	assert.Equal(t, Settings{Volume: 1, LinesPerLevel: 1}, NewStore(path).Load())
}
