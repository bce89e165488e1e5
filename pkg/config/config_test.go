package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigNewYAML(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "")

	cfg, err := New("testdata/base.yaml")
	assert.NoError(t, err)

	assert.Equal(t, "/home/test", cfg.HomePath)
	assert.Equal(t, "/home/test/.launchery", cfg.Path)
	assert.Equal(t, filepath.Join("/home/test", ".local", "share", "applications"), cfg.ApplicationsPath)
	assert.Equal(t, filepath.Join("/home/test", ".config", "autostart"), cfg.AutostartPath)
	assert.Equal(t, filepath.Join("/home/test", ".local", "share", "icons"), cfg.IconsPath)
	assert.Equal(t, "src.gui.scraper_gui", cfg.PythonModule)

	launchers := &Launchers{
		"nova": &Launcher{
			Name:   "Nova",
			Module: "src.nova.app",
		},
		"scraper": &Launcher{
			Name:       "Academic RAG Scraper",
			Comment:    "Scrape and index academic sources",
			Module:     "src.gui.scraper_gui",
			Categories: []string{"Development", "Education"},
		},
	}

	assert.EqualValues(t, launchers, cfg.Launchers)
}

func TestConfigNewTOML(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "")

	cfg, err := New("testdata/base.toml")
	assert.NoError(t, err)

	assert.Equal(t, "/home/test", cfg.HomePath)
	assert.Equal(t, "/home/test/.launchery", cfg.Path)

	launchers := &Launchers{
		"nova": &Launcher{
			Name:   "Nova",
			Module: "src.nova.app",
		},
		"scraper": &Launcher{
			Name:       "Academic RAG Scraper",
			Comment:    "Scrape and index academic sources",
			Module:     "src.gui.scraper_gui",
			Categories: []string{"Development", "Education"},
		},
	}

	assert.EqualValues(t, launchers, cfg.Launchers)
}

func TestConfigGetLauncher(t *testing.T) {
	cfg, err := New("testdata/base.yaml")
	assert.NoError(t, err)

	assert.Nil(t, cfg.GetLauncher("missing"))

	scraper := cfg.GetLauncher("scraper")
	assert.NotNil(t, scraper)
	assert.Equal(t, "Academic RAG Scraper", scraper.Name)
}

func TestConfigLoadMissingFile(t *testing.T) {
	cfg := &Config{}
	assert.NoError(t, cfg.Load("testdata/does-not-exist.yaml"))
}

func TestConfigLoadUnknownSuffix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")
	assert.NoError(t, os.WriteFile(path, []byte("home_path=/home/test"), 0644))

	cfg := &Config{}
	assert.Error(t, cfg.Load(path))
}
