// Package installer performs the sequential filesystem operations that
// register launcher entries with the user's desktop environment.
package installer

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/sirupsen/logrus"
)

// Options configure an Installer. All target directories are injected so
// nothing in this package reads $HOME or $PATH ambiently.
type Options struct {
	ApplicationsDir string
	AutostartDir    string
	IconsDir        string

	// LookPath resolves a command on the search path, defaults to
	// exec.LookPath. Overridable for tests.
	LookPath func(file string) (string, error)

	// RunCommand executes an external helper, defaults to exec.Command().Run().
	// Overridable for tests.
	RunCommand func(name string, args ...string) error
}

type Installer struct {
	opts *Options
}

func New(opts *Options) (*Installer, error) {
	if opts.ApplicationsDir == "" {
		return nil, fmt.Errorf("installer: applications directory is required")
	}

	if opts.LookPath == nil {
		opts.LookPath = exec.LookPath
	}
	if opts.RunCommand == nil {
		opts.RunCommand = func(name string, args ...string) error {
			return exec.Command(name, args...).Run()
		}
	}

	return &Installer{opts: opts}, nil
}

// ensureDirs creates the target directories, create-if-absent. A directory
// that exists but is not writable is reported early, before any mutation.
func (i *Installer) ensureDirs(dirs ...string) error {
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}

		if !writable(dir) {
			logrus.Warnf("target directory is not writable: %s", dir)
		}
	}

	return nil
}

func (i *Installer) copyFile(srcFile, dstFile string, perm os.FileMode) error {
	// Open the source file for reading
	src, err := os.Open(srcFile)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.OpenFile(dstFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	defer dst.Close()

	// Copy the contents of the source file to the destination file
	if _, err = io.Copy(dst, src); err != nil {
		return err
	}

	// WriteFile/OpenFile permissions are filtered through the umask, the
	// installed mode has to be exact
	return dst.Chmod(perm)
}
