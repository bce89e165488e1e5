// Package desktopenv identifies the running desktop environment from the
// session environment variables.
package desktopenv

import (
	"os"
	"strings"
)

const (
	GNOME    = "gnome"
	KDE      = "kde"
	XFCE     = "xfce"
	Cinnamon = "cinnamon"
	MATE     = "mate"
	LXQt     = "lxqt"
	Unknown  = "unknown"
)

type Environment struct {
	Name         string
	Aliases      []string
	RefreshTools []string
}

func (e *Environment) GetNames() []string {
	return append([]string{e.Name}, e.Aliases...)
}

func (e *Environment) GetRefreshTools() []string {
	return e.RefreshTools
}

// New builds an Environment from the raw XDG_CURRENT_DESKTOP and
// DESKTOP_SESSION values.
func New(currentDesktop, session string) *Environment {
	env := &Environment{
		Name:         Unknown,
		Aliases:      []string{},
		RefreshTools: []string{"update-desktop-database"},
	}

	name := normalize(currentDesktop)
	if name == Unknown {
		name = normalize(session)
	}
	env.Name = name

	switch name {
	case GNOME:
		env.Aliases = []string{"gnome-shell", "ubuntu"}
		env.RefreshTools = append(env.RefreshTools, "gtk-update-icon-cache")
	case KDE:
		env.Aliases = []string{"plasma", "plasmashell"}
		env.RefreshTools = append(env.RefreshTools, "kbuildsycoca6")
	case XFCE:
		env.Aliases = []string{"xubuntu"}
		env.RefreshTools = append(env.RefreshTools, "gtk-update-icon-cache")
	case Cinnamon:
		env.Aliases = []string{"x-cinnamon"}
		env.RefreshTools = append(env.RefreshTools, "gtk-update-icon-cache")
	}

	return env
}

// Detect reads the environment of the current session.
func Detect() *Environment {
	return New(os.Getenv("XDG_CURRENT_DESKTOP"), os.Getenv("DESKTOP_SESSION"))
}

// normalize maps a raw value like "ubuntu:GNOME" onto a known name.
func normalize(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return Unknown
	}

	for _, part := range strings.Split(value, ":") {
		switch part {
		case GNOME, "gnome-shell", "ubuntu":
			return GNOME
		case KDE, "plasma", "kde-plasma":
			return KDE
		case XFCE:
			return XFCE
		case Cinnamon, "x-cinnamon":
			return Cinnamon
		case MATE:
			return MATE
		case LXQt:
			return LXQt
		}
	}

	return Unknown
}
