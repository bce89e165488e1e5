package installer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"

	"github.com/mfinley/launchery/pkg/desktop"
)

// UninstallResult reports what an Uninstall run removed and restored.
type UninstallResult struct {
	Removed  []string
	Restored []string
}

// Uninstall removes a named entry from the applications and autostart
// directories and its installed icon. A .bak predecessor is restored in
// place of the removed entry.
func (i *Installer) Uninstall(name string) (*UninstallResult, error) {
	filename := desktop.Filename(strings.TrimSuffix(name, ".desktop"))
	slug := strings.TrimSuffix(filename, ".desktop")

	result := &UninstallResult{}

	for _, dir := range []string{i.opts.ApplicationsDir, i.opts.AutostartDir} {
		if dir == "" {
			continue
		}

		path := filepath.Join(dir, filename)

		err := os.Remove(path)
		if err != nil && !os.IsNotExist(err) {
			return result, fmt.Errorf("remove %s: %w", path, err)
		}
		if err == nil {
			result.Removed = append(result.Removed, path)
			log.Infof("removed: %s", path)
		}

		backup := path + BackupSuffix
		if _, err := os.Stat(backup); err == nil {
			if err := os.Rename(backup, path); err != nil {
				return result, fmt.Errorf("restore %s: %w", backup, err)
			}
			result.Restored = append(result.Restored, path)
			log.Infof("restored previous entry: %s", path)
		}
	}

	if i.opts.IconsDir != "" {
		icon := filepath.Join(i.opts.IconsDir, slug+".png")
		if err := os.Remove(icon); err == nil {
			result.Removed = append(result.Removed, icon)
			log.Infof("removed: %s", icon)
		} else if !os.IsNotExist(err) {
			return result, fmt.Errorf("remove %s: %w", icon, err)
		}
	}

	if len(result.Removed) == 0 && len(result.Restored) == 0 {
		log.Warnf("no installed entry named %s", name)
		return result, nil
	}

	i.refreshDesktopDatabase(i.opts.ApplicationsDir)

	return result, nil
}
