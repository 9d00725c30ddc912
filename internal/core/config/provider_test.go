package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/camtune/camtune/internal/core/observability/log"
)

func writeConfig(t *testing.T, path, doc string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
}

func TestProviderDefaultsUntilFirstLoad(t *testing.T) {
	p := NewProvider(filepath.Join(t.TempDir(), "missing.yml"), log.Nop())
	require.Equal(t, Default(), p.Current())

	err := p.Reload()
	require.Error(t, err)
	require.True(t, errors.Is(err, fs.ErrNotExist))
	require.Equal(t, Default(), p.Current())
}

func TestProviderLoadsAndKeepsLastGood(t *testing.T) {
	path := filepath.Join(t.TempDir(), "camtune.yml")
	p := NewProvider(path, log.Nop())

	writeConfig(t, path, "fov: 70\n")
	require.NoError(t, p.Reload())
	require.Equal(t, float32(70), p.Current().Quest.FOV)

	// A broken file must not disturb the settings in effect.
	writeConfig(t, path, "fov: [unclosed\n")
	require.Error(t, p.Reload())
	require.Equal(t, float32(70), p.Current().Quest.FOV)

	writeConfig(t, path, "fov: 90\n")
	require.NoError(t, p.Reload())
	require.Equal(t, float32(90), p.Current().Quest.FOV)
}

func TestProviderSkipsUnchangedContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "camtune.yml")
	writeConfig(t, path, "fov: [unclosed\n")

	p := NewProvider(path, log.Nop())
	require.Error(t, p.Reload())
	// Same bytes again: the fingerprint short-circuits, so the broken file
	// is reported once rather than every poll.
	require.NoError(t, p.Reload())
}
