// Package icons provisions the launcher icon: copy a real image, pull one
// out of an icon-pack archive, or fabricate a text placeholder.
package icons

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/h2non/filetype"
	"github.com/sirupsen/logrus"
)

// IconMode is the permission mode for installed icons.
const IconMode os.FileMode = 0644

// Result reports how the icon was provisioned.
type Result struct {
	// Placeholder is true when a plain-text stand-in was written. The
	// file at the icon path is then not a valid image, callers are
	// expected to surface that.
	Placeholder bool

	// From is the source file the icon was copied from, empty for a
	// placeholder.
	From string
}

// Provision installs an icon at dest. When source is empty or absent a
// short text label is written instead so the icon path always exists
// after a successful run.
func Provision(source, dest, label string) (*Result, error) {
	if source == "" {
		return placeholder(dest, label)
	}

	if _, err := os.Stat(source); err != nil {
		if os.IsNotExist(err) {
			logrus.Debugf("icon source does not exist: %s", source)
			return placeholder(dest, label)
		}
		return nil, fmt.Errorf("check icon source: %w", err)
	}

	if isArchive(source) {
		picked, err := FromArchive(source, dest)
		if err != nil {
			return nil, err
		}
		return &Result{From: picked}, nil
	}

	m, err := mimetype.DetectFile(source)
	if err != nil {
		return nil, fmt.Errorf("detect icon type: %w", err)
	}
	if !strings.HasPrefix(m.String(), "image/") {
		logrus.Warnf("icon source %s is %s, not an image", source, m.String())
	}

	if err := copyFile(source, dest); err != nil {
		return nil, fmt.Errorf("install icon: %w", err)
	}

	return &Result{From: source}, nil
}

func placeholder(dest, label string) (*Result, error) {
	if label == "" {
		label = "icon"
	}

	if err := os.WriteFile(dest, []byte(label+"\n"), IconMode); err != nil {
		return nil, fmt.Errorf("write placeholder icon: %w", err)
	}

	return &Result{Placeholder: true}, nil
}

func isArchive(path string) bool {
	t, err := filetype.MatchFile(path)
	if err != nil {
		logrus.WithError(err).Debug("unable to match file type")
		return false
	}

	switch t.Extension {
	case "zip", "gz", "tar", "bz2", "xz":
		return true
	}

	return false
}

func copyFile(srcFile, dstFile string) error {
	src, err := os.Open(srcFile)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.OpenFile(dstFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, IconMode)
	if err != nil {
		return err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return err
	}

	return dst.Chmod(IconMode)
}
