package inventory_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"

	"github.com/mfinley/launchery/pkg/inventory"
)

func entry(name string) []byte {
	return []byte("[Desktop Entry]\nType=Application\nName=" + name + "\nExec=true\n")
}

func TestInventoryNew(t *testing.T) {
	applications := fstest.MapFS{
		"nova.desktop":                 {Data: entry("Nova")},
		"nova.desktop.bak":             {Data: entry("Old Nova")},
		"academic-rag-scraper.desktop": {Data: entry("Academic RAG Scraper")},
		"notes.txt":                    {Data: []byte("not an entry")},
		"stray.desktop":                {Data: []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}},
	}
	autostart := fstest.MapFS{
		"nova.desktop": {Data: entry("Nova")},
	}

	inv := inventory.New(applications, autostart)

	assert.Equal(t, 2, inv.Count())
	assert.Equal(t, []string{"academic-rag-scraper", "nova"}, inv.Names())

	nova := inv.Entries["nova"]
	assert.Equal(t, "Nova", nova.DisplayName)
	assert.True(t, nova.Applications)
	assert.True(t, nova.Autostart)
	assert.Equal(t, 1, nova.Backups)
	assert.Equal(t, "applications, autostart", nova.Locations())

	scraper := inv.Entries["academic-rag-scraper"]
	assert.True(t, scraper.Applications)
	assert.False(t, scraper.Autostart)
	assert.Equal(t, 0, scraper.Backups)
	assert.Equal(t, "applications", scraper.Locations())
}

func TestInventoryNilFS(t *testing.T) {
	inv := inventory.New(nil, nil)
	assert.Equal(t, 0, inv.Count())
	assert.Empty(t, inv.Names())
}

func TestInventoryAutostartOnly(t *testing.T) {
	autostart := fstest.MapFS{
		"nova.desktop": {Data: entry("Nova")},
	}

	inv := inventory.New(nil, autostart)

	assert.Equal(t, 1, inv.Count())
	assert.Equal(t, "autostart", inv.Entries["nova"].Locations())
}
