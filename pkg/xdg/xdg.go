// Package xdg resolves the freedesktop base directories used for
// desktop-entry and icon installation.
//
// https://specifications.freedesktop.org/basedir-spec/basedir-spec-0.8.html
package xdg

import (
	"os"
	"path/filepath"
)

const (
	// $XDG_DATA_HOME or $HOME/.local/share
	envDataHome = "XDG_DATA_HOME"
	defDataHome = ".local/share"

	// $XDG_CONFIG_HOME or $HOME/.config
	envConfigHome = "XDG_CONFIG_HOME"
	defConfigHome = ".config"
)

// DataHome returns $XDG_DATA_HOME, falling back to <home>/.local/share.
func DataHome(home string) string {
	if dir := os.Getenv(envDataHome); dir != "" {
		return dir
	}
	return filepath.Join(home, filepath.FromSlash(defDataHome))
}

// ConfigHome returns $XDG_CONFIG_HOME, falling back to <home>/.config.
func ConfigHome(home string) string {
	if dir := os.Getenv(envConfigHome); dir != "" {
		return dir
	}
	return filepath.Join(home, defConfigHome)
}

// ApplicationsDir is where the desktop environment discovers launchers.
func ApplicationsDir(home string) string {
	return filepath.Join(DataHome(home), "applications")
}

// AutostartDir is scanned by compliant desktop environments at login.
func AutostartDir(home string) string {
	return filepath.Join(ConfigHome(home), "autostart")
}

// IconsDir is the user-level icon search path.
func IconsDir(home string) string {
	return filepath.Join(DataHome(home), "icons")
}
