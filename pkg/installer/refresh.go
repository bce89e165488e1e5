package installer

import (
	"github.com/sirupsen/logrus"
)

// refreshDesktopDatabase asks the desktop environment to rescan the
// applications directory. Best-effort: a missing helper or a failed run is
// logged and swallowed.
func (i *Installer) refreshDesktopDatabase(applicationsDir string) {
	if _, err := i.opts.LookPath("update-desktop-database"); err != nil {
		logrus.Debug("update-desktop-database not found, skipping refresh")
		return
	}

	if err := i.opts.RunCommand("update-desktop-database", applicationsDir); err != nil {
		logrus.WithError(err).Debug("update-desktop-database failed")
	}
}

// refreshIconCache rebuilds the user icon cache after an icon install.
// Best-effort for the same reason.
func (i *Installer) refreshIconCache(iconsDir string) {
	if _, err := i.opts.LookPath("gtk-update-icon-cache"); err != nil {
		logrus.Debug("gtk-update-icon-cache not found, skipping refresh")
		return
	}

	if err := i.opts.RunCommand("gtk-update-icon-cache", "-f", "-t", iconsDir); err != nil {
		logrus.WithError(err).Debug("gtk-update-icon-cache failed")
	}
}
