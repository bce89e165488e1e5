package installer_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfinley/launchery/pkg/installer"
)

func TestUninstall(t *testing.T) {
	env := newTestEnv(t)
	repoRoot, entryFile := writeRepo(t, novaTemplate)

	_, err := env.inst.InstallAutostart(&installer.AutostartOptions{
		EntryFile:  entryFile,
		RepoRoot:   repoRoot,
		EntryPoint: "main.py",
	})
	require.NoError(t, err)

	result, err := env.inst.Uninstall("nova")
	require.NoError(t, err)
	assert.Len(t, result.Removed, 2)
	assert.Empty(t, result.Restored)

	assert.NoFileExists(t, filepath.Join(env.applicationsDir, "nova.desktop"))
	assert.NoFileExists(t, filepath.Join(env.autostartDir, "nova.desktop"))
}

func TestUninstallRestoresBackup(t *testing.T) {
	env := newTestEnv(t)
	repoRoot, entryFile := writeRepo(t, novaTemplate)

	previous := []byte("[Desktop Entry]\nType=Application\nName=Old Nova\nExec=nova\n")
	require.NoError(t, os.MkdirAll(env.applicationsDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(env.applicationsDir, "nova.desktop"), previous, 0644))

	_, err := env.inst.InstallAutostart(&installer.AutostartOptions{
		EntryFile:  entryFile,
		RepoRoot:   repoRoot,
		EntryPoint: "main.py",
	})
	require.NoError(t, err)

	result, err := env.inst.Uninstall("nova")
	require.NoError(t, err)
	assert.Contains(t, result.Restored, filepath.Join(env.applicationsDir, "nova.desktop"))

	restored, err := os.ReadFile(filepath.Join(env.applicationsDir, "nova.desktop"))
	require.NoError(t, err)
	assert.Equal(t, previous, restored)

	assert.NoFileExists(t, filepath.Join(env.applicationsDir, "nova.desktop.bak"))
}

func TestUninstallRemovesIcon(t *testing.T) {
	env := newTestEnv(t)
	venv := writeVenv(t)
	project := t.TempDir()

	result, err := env.inst.Generate(scraperOptions(venv, project))
	require.NoError(t, err)
	require.FileExists(t, result.IconPath)

	removed, err := env.inst.Uninstall("Academic RAG Scraper")
	require.NoError(t, err)
	assert.Contains(t, removed.Removed, result.IconPath)
	assert.NoFileExists(t, result.IconPath)
}

func TestUninstallNothingInstalled(t *testing.T) {
	env := newTestEnv(t)

	result, err := env.inst.Uninstall("ghost")
	require.NoError(t, err)
	assert.Empty(t, result.Removed)
	assert.Empty(t, result.Restored)
	assert.Empty(t, env.recorder.calls, "no refresh when nothing changed")
}
