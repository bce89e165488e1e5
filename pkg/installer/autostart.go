package installer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/sirupsen/logrus"
)

// EntryMode is the permission mode for entries installed from a template:
// owner read-write, group read, other read, no execute bit.
const EntryMode os.FileMode = 0644

// AutostartOptions configure an autostart installation run.
type AutostartOptions struct {
	// EntryFile is the desktop-entry template, copied byte for byte.
	EntryFile string

	// RepoRoot is the application checkout the launcher points into.
	RepoRoot string

	// EntryPoint is the application file that must exist under RepoRoot
	// before anything is touched.
	EntryPoint string

	// NoAutostart installs only into the applications directory.
	NoAutostart bool
}

// InstallAutostart copies the entry template into the applications and
// autostart directories, backing up whatever was installed before. It
// returns the installed paths in install order.
//
// There is no rollback: a failure at the second target leaves the first
// copy in place.
func (i *Installer) InstallAutostart(opts *AutostartOptions) ([]string, error) {
	entryPoint := filepath.Join(opts.RepoRoot, opts.EntryPoint)
	if _, err := os.Stat(entryPoint); err != nil {
		if os.IsNotExist(err) {
			return nil, &MissingEntryPointError{Path: entryPoint}
		}
		return nil, fmt.Errorf("check entry point: %w", err)
	}

	template, err := os.ReadFile(opts.EntryFile)
	if err != nil {
		return nil, fmt.Errorf("read entry template: %w", err)
	}

	targets := []string{i.opts.ApplicationsDir}
	if !opts.NoAutostart {
		targets = append(targets, i.opts.AutostartDir)
	}

	if err := i.ensureDirs(targets...); err != nil {
		return nil, err
	}

	name := filepath.Base(opts.EntryFile)
	installed := make([]string, 0, len(targets))

	for _, dir := range targets {
		dst := filepath.Join(dir, name)

		if _, err := backupExisting(dst); err != nil {
			return installed, fmt.Errorf("back up %s: %w", dst, err)
		}

		if err := os.WriteFile(dst, template, EntryMode); err != nil {
			return installed, fmt.Errorf("install %s: %w", dst, err)
		}

		if err := os.Chmod(dst, EntryMode); err != nil {
			return installed, fmt.Errorf("set permissions on %s: %w", dst, err)
		}

		installed = append(installed, dst)
		log.Infof("installed: %s", dst)
	}

	if path, ok := i.findPython(); ok {
		logrus.Debugf("python interpreter: %s", path)
	} else {
		log.Warn("no python3 interpreter found on PATH")
		log.Warn("install python3 with your package manager or the launcher will fail at login")
	}

	return installed, nil
}
