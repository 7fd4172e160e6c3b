package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func storeAt(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "dragonbridge", "settings.json"))
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	s := storeAt(t).Load()
	require.Equal(t, 300, s.PollIntervalMS)
	require.True(t, s.AutoSpace)
	require.True(t, s.ShowNotifications)
}

func TestLoadMalformedFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	st := storeAt(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(st.Path()), 0o755))
	require.NoError(t, os.WriteFile(st.Path(), []byte("{not json"), 0o644))

	require.Equal(t, Default(), st.Load())
}

func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	st := storeAt(t)
	require.NoError(t, st.Save(Settings{
		PollIntervalMS:    450,
		AutoSpace:         false,
		ShowNotifications: false,
	}))

	s := st.Load()
	require.Equal(t, 450, s.PollIntervalMS)
	require.False(t, s.AutoSpace)
	require.False(t, s.ShowNotifications)
}

func TestLoadClampsPollInterval(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		stored, want int
	}{
		{50, 100},
		{100, 100},
		{2000, 2000},
		{9999, 2000},
	} {
		st := storeAt(t)
		require.NoError(t, os.MkdirAll(filepath.Dir(st.Path()), 0o755))
		raw, err := json.Marshal(map[string]any{"poll_interval_ms": tc.stored})
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(st.Path(), raw, 0o644))

		require.Equal(t, tc.want, st.Load().PollIntervalMS, "stored %d", tc.stored)
	}
}

func TestSavePreservesUnknownKeys(t *testing.T) {
	t.Parallel()

	st := storeAt(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(st.Path()), 0o755))
	raw, err := json.Marshal(map[string]any{
		"poll_interval_ms": 200,
		"future_feature":   "keep me",
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(st.Path(), raw, 0o644))

	require.NoError(t, st.Save(st.Load()))

	data, err := os.ReadFile(st.Path())
	require.NoError(t, err)
	var onDisk map[string]any
	require.NoError(t, json.Unmarshal(data, &onDisk))
	require.Equal(t, "keep me", onDisk["future_feature"])
	require.EqualValues(t, 200, onDisk["poll_interval_ms"])
}

func TestClampInterval(t *testing.T) {
	t.Parallel()

	require.Equal(t, MinPollIntervalMS, ClampInterval(0))
	require.Equal(t, 300, ClampInterval(300))
	require.Equal(t, MaxPollIntervalMS, ClampInterval(1<<20))
}
