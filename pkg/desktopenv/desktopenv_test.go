package desktopenv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mfinley/launchery/pkg/desktopenv"
)

func TestEnvironmentNew(t *testing.T) {
	tests := []struct {
		name     string
		current  string
		session  string
		expected string
	}{
		{name: "GNOME", current: "GNOME", expected: desktopenv.GNOME},
		{name: "Ubuntu GNOME", current: "ubuntu:GNOME", expected: desktopenv.GNOME},
		{name: "KDE", current: "KDE", expected: desktopenv.KDE},
		{name: "Plasma session", current: "", session: "plasma", expected: desktopenv.KDE},
		{name: "XFCE", current: "XFCE", expected: desktopenv.XFCE},
		{name: "Cinnamon", current: "X-Cinnamon", expected: desktopenv.Cinnamon},
		{name: "unknown", current: "weirdwm", expected: desktopenv.Unknown},
		{name: "empty", expected: desktopenv.Unknown},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			env := desktopenv.New(tt.current, tt.session)
			assert.Equal(t, tt.expected, env.Name)
		})
	}
}

func TestEnvironmentRefreshTools(t *testing.T) {
	tests := []struct {
		name     string
		env      *desktopenv.Environment
		expected []string
	}{
		{
			name:     "GNOME",
			env:      desktopenv.New("GNOME", ""),
			expected: []string{"update-desktop-database", "gtk-update-icon-cache"},
		},
		{
			name:     "KDE",
			env:      desktopenv.New("KDE", ""),
			expected: []string{"update-desktop-database", "kbuildsycoca6"},
		},
		{
			name:     "unknown still refreshes the database",
			env:      desktopenv.New("", ""),
			expected: []string{"update-desktop-database"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.env.GetRefreshTools())
		})
	}
}

func TestEnvironmentGetNames(t *testing.T) {
	env := desktopenv.New("GNOME", "")
	assert.ElementsMatch(t, []string{"gnome", "gnome-shell", "ubuntu"}, env.GetNames())
}
