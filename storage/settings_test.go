package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The data directory is resolved once per process, so everything touching
// it runs under a single test with the override set up front.
func TestSettings(t *testing.T) {
	t.Setenv("FDIALOG_DATA_DIR", t.TempDir())

	t.Run("read missing key", func(t *testing.T) {
		s := NewSettings()
		_, ok := s.ReadSetting("nothing")
		assert.False(t, ok)
	})

	t.Run("write then read", func(t *testing.T) {
		s := NewSettings()
		s.WriteSetting("lastPath", "/tmp/somewhere")

		value, ok := s.ReadSetting("lastPath")
		require.True(t, ok)
		assert.Equal(t, "/tmp/somewhere", value)
	})

	t.Run("persists across instances", func(t *testing.T) {
		NewSettings().WriteSetting("theme", "dark")

		value, ok := NewSettings().ReadSetting("theme")
		require.True(t, ok)
		assert.Equal(t, "dark", value)
	})

	t.Run("corrupt file starts fresh", func(t *testing.T) {
		require.NoError(t, WriteDataFile(settingsFileName, []byte("{not json"), 0o644))

		s := NewSettings()
		_, ok := s.ReadSetting("anything")
		assert.False(t, ok)

		// Writing after a corrupt read works and replaces the file
		s.WriteSetting("k", "v")
		value, ok := s.ReadSetting("k")
		require.True(t, ok)
		assert.Equal(t, "v", value)
	})

	t.Run("data dir helpers", func(t *testing.T) {
		assert.Equal(t, os.Getenv("FDIALOG_DATA_DIR"), DataDir())
		assert.Equal(t, filepath.Join(DataDir(), "x.json"), DataFile("x.json"))

		require.NoError(t, WriteDataFile("nested/file.bin", []byte{1, 2, 3}, 0o644))
		data, err := ReadDataFile("nested/file.bin")
		require.NoError(t, err)
		assert.Equal(t, []byte{1, 2, 3}, data)
	})
}
