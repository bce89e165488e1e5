package desktop_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfinley/launchery/pkg/desktop"
)

func TestEntryRender(t *testing.T) {
	tests := []struct {
		name     string
		entry    *desktop.Entry
		expected string
	}{
		{
			name: "full",
			entry: &desktop.Entry{
				Version:    "1.0",
				Type:       "Application",
				Name:       "Academic RAG Scraper",
				Comment:    "Scrape and index academic sources",
				Exec:       `sh -c 'python3 -m src.gui.scraper_gui'`,
				Icon:       "/home/test/.local/share/icons/academic-rag-scraper.png",
				Terminal:   false,
				Categories: []string{"Development", "Education"},
			},
			expected: "[Desktop Entry]\n" +
				"Version=1.0\n" +
				"Type=Application\n" +
				"Name=Academic RAG Scraper\n" +
				"Comment=Scrape and index academic sources\n" +
				"Exec=sh -c 'python3 -m src.gui.scraper_gui'\n" +
				"Icon=/home/test/.local/share/icons/academic-rag-scraper.png\n" +
				"Terminal=false\n" +
				"Categories=Development;Education;\n",
		},
		{
			name: "autostart minimal",
			entry: &desktop.Entry{
				Type:      "Application",
				Name:      "Nova",
				Exec:      "/usr/bin/nova",
				Autostart: true,
			},
			expected: "[Desktop Entry]\n" +
				"Type=Application\n" +
				"Name=Nova\n" +
				"Exec=/usr/bin/nova\n" +
				"Terminal=false\n" +
				"X-GNOME-Autostart-enabled=true\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.entry.Render())
		})
	}
}

func TestEntryValidate(t *testing.T) {
	tests := []struct {
		name    string
		entry   *desktop.Entry
		wantErr string
	}{
		{
			name:  "valid",
			entry: &desktop.Entry{Type: "Application", Name: "Nova", Exec: "nova"},
		},
		{
			name:    "missing type",
			entry:   &desktop.Entry{Name: "Nova", Exec: "nova"},
			wantErr: "missing Type",
		},
		{
			name:    "missing name",
			entry:   &desktop.Entry{Type: "Application", Exec: "nova"},
			wantErr: "missing Name",
		},
		{
			name:    "missing exec",
			entry:   &desktop.Entry{Type: "Application", Name: "Nova"},
			wantErr: "missing Exec",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.entry.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestParse(t *testing.T) {
	raw := `[Desktop Entry]
Version=1.0
Type=Application
Name=Nova
Comment=Nova assistant
Exec=python3 /opt/nova/main.py
Icon=nova
Terminal=false
Categories=Utility;AI;
X-GNOME-Autostart-enabled=true
StartupNotify=false
`

	entry, err := desktop.Parse(strings.NewReader(raw))
	require.NoError(t, err)

	assert.Equal(t, "1.0", entry.Version)
	assert.Equal(t, "Application", entry.Type)
	assert.Equal(t, "Nova", entry.Name)
	assert.Equal(t, "Nova assistant", entry.Comment)
	assert.Equal(t, "python3 /opt/nova/main.py", entry.Exec)
	assert.Equal(t, "nova", entry.Icon)
	assert.False(t, entry.Terminal)
	assert.Equal(t, []string{"Utility", "AI"}, entry.Categories)
	assert.True(t, entry.Autostart)
	assert.Equal(t, map[string]string{"StartupNotify": "false"}, entry.Extra)
}

func TestParseRejectsMissingHeader(t *testing.T) {
	_, err := desktop.Parse(strings.NewReader("Name=Nova\nExec=nova\n"))
	assert.Error(t, err)
}

func TestParseIgnoresOtherGroups(t *testing.T) {
	raw := `[Desktop Entry]
Type=Application
Name=Nova
Exec=nova

[Desktop Action Open]
Name=Open Window
Exec=nova --open
`

	entry, err := desktop.Parse(strings.NewReader(raw))
	require.NoError(t, err)

	assert.Equal(t, "Nova", entry.Name)
	assert.Equal(t, "nova", entry.Exec)
}

func TestFilename(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{name: "simple", in: "nova", expected: "nova.desktop"},
		{name: "mixed case and spaces", in: "Academic RAG Scraper", expected: "academic-rag-scraper.desktop"},
		{name: "padded", in: "  Nova ", expected: "nova.desktop"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, desktop.Filename(tc.in))
		})
	}
}
