package inventory

import "strings"

// Entry is one installed launcher, possibly present in both the
// applications and autostart directories.
type Entry struct {
	Name        string
	DisplayName string

	Applications bool
	Autostart    bool

	// Backups counts .bak predecessors across both directories.
	Backups int
}

// Locations renders where the entry is installed, for listing.
func (e *Entry) Locations() string {
	locations := make([]string, 0, 2)
	if e.Applications {
		locations = append(locations, "applications")
	}
	if e.Autostart {
		locations = append(locations, "autostart")
	}
	return strings.Join(locations, ", ")
}
