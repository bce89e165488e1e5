// Package inventory enumerates the launcher entries installed in the
// user's applications and autostart directories.
package inventory

import (
	"bytes"
	"io/fs"
	"sort"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/sirupsen/logrus"

	"github.com/mfinley/launchery/pkg/desktop"
	"github.com/mfinley/launchery/pkg/installer"
)

type Inventory struct {
	Entries map[string]*Entry
}

// New scans the applications and autostart directories. Either fs may be
// nil when the directory does not exist yet.
func New(applications fs.FS, autostart fs.FS) *Inventory {
	inv := &Inventory{
		Entries: make(map[string]*Entry),
	}

	inv.scan(applications, false)
	inv.scan(autostart, true)

	return inv
}

func (i *Inventory) scan(fsys fs.FS, autostart bool) {
	if fsys == nil {
		return
	}

	files, err := fs.ReadDir(fsys, ".")
	if err != nil {
		logrus.WithError(err).Debug("unable to read entry directory")
		return
	}

	for _, file := range files {
		if file.IsDir() {
			continue
		}

		name := file.Name()
		if strings.HasSuffix(name, installer.BackupSuffix) {
			continue
		}
		if !strings.HasSuffix(name, ".desktop") {
			continue
		}

		if err := i.add(fsys, name, autostart); err != nil {
			logrus.WithError(err).Warnf("skipping %s", name)
		}
	}

	// backups in a second pass, entries first regardless of sort order
	for _, file := range files {
		name := file.Name()
		if !strings.HasSuffix(name, installer.BackupSuffix) {
			continue
		}
		base := entryName(strings.TrimSuffix(name, installer.BackupSuffix))
		if entry, ok := i.Entries[base]; ok {
			entry.Backups++
		}
	}
}

func (i *Inventory) add(fsys fs.FS, name string, autostart bool) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return err
	}

	// desktop entries are plain text, anything else is a stray file
	if m := mimetype.Detect(data); !m.Is("text/plain") {
		logrus.Debugf("ignoring non-text file: %s (%s)", name, m.String())
		return nil
	}

	parsed, err := desktop.Parse(bytes.NewReader(data))
	if err != nil {
		return err
	}

	key := entryName(name)
	entry, ok := i.Entries[key]
	if !ok {
		entry = &Entry{
			Name:        key,
			DisplayName: parsed.Name,
		}
		i.Entries[key] = entry
	}

	if autostart {
		entry.Autostart = true
	} else {
		entry.Applications = true
	}

	return nil
}

// Count returns the number of distinct installed entries.
func (i *Inventory) Count() int {
	return len(i.Entries)
}

// Names returns the entry names sorted for stable output.
func (i *Inventory) Names() []string {
	names := make([]string, 0, len(i.Entries))
	for name := range i.Entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func entryName(filename string) string {
	return strings.TrimSuffix(filename, ".desktop")
}
