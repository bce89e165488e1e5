package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pelletier/go-toml/v2"

	"github.com/mfinley/launchery/pkg/common"
	"github.com/mfinley/launchery/pkg/xdg"
)

type Config struct {
	// HomePath - the home directory all other defaults are resolved against. This is explicit
	// configuration rather than an ambient read so the installer logic stays testable without
	// touching the invoking user's real home directory.
	HomePath string `yaml:"home_path" toml:"home_path"`

	// Path - path to store the tool's own state, set by default based on your user's home
	// directory. Typically, this is set to $HOME/.launchery
	Path string `yaml:"path" toml:"path"`

	// ApplicationsPath - directory the desktop environment scans for launchers. Defaults to
	// $XDG_DATA_HOME/applications (usually $HOME/.local/share/applications)
	ApplicationsPath string `yaml:"applications_path" toml:"applications_path"`

	// AutostartPath - directory scanned at login for entries to launch automatically.
	// Defaults to $XDG_CONFIG_HOME/autostart (usually $HOME/.config/autostart)
	AutostartPath string `yaml:"autostart_path" toml:"autostart_path"`

	// IconsPath - user-level icon directory. Defaults to $XDG_DATA_HOME/icons
	IconsPath string `yaml:"icons_path" toml:"icons_path"`

	// ProjectPath - checkout of the application the generated launcher starts. The generated
	// Exec line changes into this directory before running the python module
	ProjectPath string `yaml:"project_path" toml:"project_path"`

	// VenvPath - virtual environment sourced by the generated Exec line before the module runs
	VenvPath string `yaml:"venv_path" toml:"venv_path"`

	// PythonModule - module entry point invoked via `python -m`
	PythonModule string `yaml:"python_module" toml:"python_module"`

	// Launchers - named launcher profiles for the generate command. A good example of this is
	// `scraper` -> the Academic RAG Scraper GUI
	Launchers *Launchers `yaml:"launchers" toml:"launchers"`
}

func (c *Config) GetLauncher(name string) *Launcher {
	if c.Launchers == nil {
		return nil
	}

	for short, launcher := range *c.Launchers {
		if short == name {
			return launcher
		}
	}

	return nil
}

// Load - load the configuration file
func (c *Config) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		return yaml.Unmarshal(data, c)
	} else if strings.HasSuffix(path, ".toml") {
		return toml.Unmarshal(data, c)
	}

	return fmt.Errorf("unknown configuration file suffix")
}

// New - create a new configuration object
func New(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		if err := cfg.Load(path); err != nil {
			return cfg, err
		}
	}

	if cfg.HomePath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return cfg, err
		}
		cfg.HomePath = homeDir
	}

	if cfg.Path == "" {
		cfg.Path = filepath.Join(cfg.HomePath, fmt.Sprintf(".%s", common.NAME))
	}

	if cfg.ApplicationsPath == "" {
		cfg.ApplicationsPath = xdg.ApplicationsDir(cfg.HomePath)
	}

	if cfg.AutostartPath == "" {
		cfg.AutostartPath = xdg.AutostartDir(cfg.HomePath)
	}

	if cfg.IconsPath == "" {
		cfg.IconsPath = xdg.IconsDir(cfg.HomePath)
	}

	if cfg.ProjectPath == "" {
		cfg.ProjectPath = filepath.Join(cfg.HomePath, "academic-rag-scraper")
	}

	if cfg.VenvPath == "" {
		cfg.VenvPath = filepath.Join(cfg.HomePath, ".venvs", "academic-rag-scraper")
	}

	if cfg.PythonModule == "" {
		cfg.PythonModule = "src.gui.scraper_gui"
	}

	return cfg, nil
}
