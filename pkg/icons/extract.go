package icons

import (
	"archive/tar"
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/h2non/filetype"
	"github.com/h2non/filetype/matchers"
	"github.com/krolaw/zipstream"
	"github.com/sirupsen/logrus"
	"github.com/xi2/xz"

	"github.com/mfinley/launchery/pkg/common"
)

// processorFunc is a function that processes a reader
type processorFunc func(io.Reader) (io.Reader, error)

type extractor struct {
	TempDir    string
	SourceName string
	Files      []string
}

// FromArchive extracts an icon-pack archive and installs the best image
// it contains at dest. Returns the archive-relative name of the file that
// was picked.
func FromArchive(archivePath, dest string) (string, error) {
	in, err := os.Open(archivePath)
	if err != nil {
		return "", err
	}
	defer in.Close()

	tempDir, err := os.MkdirTemp("", common.NAME)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = os.RemoveAll(tempDir)
	}()

	e := &extractor{TempDir: tempDir, SourceName: filepath.Base(archivePath)}

	logrus.Debugf("extracting icon pack: %s", archivePath)

	if err := e.doExtract(in); err != nil {
		return "", err
	}

	picked := e.pickIcon()
	if picked == "" {
		return "", fmt.Errorf("no image file found in archive %s", archivePath)
	}

	if err := copyFile(filepath.Join(e.TempDir, picked), dest); err != nil {
		return "", fmt.Errorf("install icon: %w", err)
	}

	return picked, nil
}

func (e *extractor) doExtract(in io.Reader) error {
	var buf bytes.Buffer
	tee := io.TeeReader(in, &buf)

	t, err := filetype.MatchReader(tee)
	if err != nil {
		return err
	}

	outputFile := io.MultiReader(&buf, in)

	logrus.Debugf("extracting file type: %s", t)

	var processor processorFunc

	switch t {
	case matchers.TypeTar:
		processor = e.processTar
	case matchers.TypeZip:
		processor = e.processZip
	case matchers.TypeBz2:
		processor = e.processBz2
	case matchers.TypeGz:
		processor = e.processGz
	case matchers.TypeXz:
		processor = e.processXz
	default:
		// e.g. the payload of a bare .png.gz
		processor = e.processDirect
	}

	newReader, err := processor(outputFile)
	if err != nil {
		return err
	}

	if newReader == nil {
		return nil
	}

	// In case of e.g. a .tar.gz, process the uncompressed archive by calling recursively
	return e.doExtract(newReader)
}

func (e *extractor) processDirect(in io.Reader) (io.Reader, error) {
	logrus.Tracef("processing direct file")

	name := strings.TrimSuffix(e.SourceName, filepath.Ext(e.SourceName))

	outFile, err := os.Create(filepath.Join(e.TempDir, name))
	if err != nil {
		return nil, err
	}
	defer outFile.Close()

	if _, err := io.Copy(outFile, in); err != nil {
		return nil, err
	}

	e.Files = append(e.Files, name)

	return nil, nil
}

func (e *extractor) processZip(in io.Reader) (io.Reader, error) {
	zr := zipstream.NewReader(in)
	e.Files = make([]string, 0)

	for {
		header, err := zr.Next()

		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}

		target, err := sanitizeArchivePath(e.TempDir, header.Name)
		if err != nil {
			return nil, err
		}
		logrus.Tracef("zip > target %s", target)

		if header.Mode().IsDir() {
			if _, err := os.Stat(target); err != nil {
				if err := os.MkdirAll(target, 0755); err != nil {
					return nil, err
				}
				logrus.Tracef("zip > create directory %s", target)
			}

			continue
		}

		// not every zip carries directory entries
		baseDir := filepath.Dir(target)
		if _, err := os.Stat(baseDir); err != nil {
			if err := os.MkdirAll(baseDir, 0755); err != nil {
				return nil, err
			}
			logrus.Tracef("zip > create directory %s", baseDir)
		}

		f, err := os.OpenFile(target, os.O_CREATE|os.O_RDWR, 0644)
		if err != nil {
			return nil, err
		}

		// copy over contents
		if _, err := io.Copy(f, zr); err != nil {
			return nil, err
		}

		// manually close here after each file operation; deferring would cause each file close
		// to wait until all operations have completed.
		f.Close()

		e.Files = append(e.Files, header.Name)
		logrus.Tracef("zip > create file %s", target)
	}

	if len(e.Files) == 0 {
		return nil, fmt.Errorf("no files found in zip archive")
	}

	return nil, nil
}

func (e *extractor) processTar(in io.Reader) (io.Reader, error) {
	logrus.Trace("processing tar file")
	tr := tar.NewReader(in)
	e.Files = make([]string, 0)

	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}

		target, err := sanitizeArchivePath(e.TempDir, header.Name)
		if err != nil {
			return nil, err
		}

		logrus.Tracef("tar > target %s", target)

		switch header.Typeflag {
		// if it's a dir, and it doesn't exist create it
		case tar.TypeDir:
			if _, err := os.Stat(target); err != nil {
				if err := os.MkdirAll(target, 0755); err != nil {
					return nil, err
				}
				logrus.Tracef("tar > create directory %s", target)
			}
		// if it's a file create it
		case tar.TypeReg:
			baseDir := filepath.Dir(target)
			if _, err := os.Stat(baseDir); err != nil {
				if err := os.MkdirAll(baseDir, 0755); err != nil {
					return nil, err
				}
				logrus.Tracef("tar > create directory %s", baseDir)
			}

			f, err := os.OpenFile(target, os.O_CREATE|os.O_RDWR, 0644)
			if err != nil {
				return nil, err
			}

			// copy over contents
			if _, err := io.Copy(f, tr); err != nil { //nolint: gosec
				return nil, err
			}

			// manually close here after each file operation; deferring would cause each file close
			// to wait until all operations have completed.
			f.Close()

			e.Files = append(e.Files, header.Name)
			logrus.Tracef("tar > create file %s", target)
		}
	}

	if len(e.Files) == 0 {
		return nil, fmt.Errorf("no files in tar archive")
	}

	return nil, nil
}

func (e *extractor) processGz(in io.Reader) (io.Reader, error) {
	gr, err := gzip.NewReader(in)
	if err != nil {
		return nil, err
	}

	return gr, nil
}

func (e *extractor) processXz(in io.Reader) (io.Reader, error) {
	xr, err := xz.NewReader(in, 0)
	if err != nil {
		return nil, err
	}

	return xr, nil
}

func (e *extractor) processBz2(in io.Reader) (io.Reader, error) {
	br := bzip2.NewReader(in)
	return br, nil
}

// pickIcon selects the best image among the extracted files, png first.
func (e *extractor) pickIcon() string {
	var fallback string

	for _, name := range e.Files {
		m, err := mimetype.DetectFile(filepath.Join(e.TempDir, name))
		if err != nil {
			logrus.WithError(err).Warn("unable to determine mimetype")
			continue
		}

		if !strings.HasPrefix(m.String(), "image/") {
			logrus.Tracef("ignoring file: %s", name)
			continue
		}

		if m.Is("image/png") {
			return name
		}

		if fallback == "" {
			fallback = name
		}
	}

	return fallback
}

// sanitizeArchivePath ensures that the path is not tainted
// thanks https://github.com/securego/gosec/issues/324#issuecomment-935927967
func sanitizeArchivePath(d, t string) (v string, err error) {
	v = filepath.Join(d, t)
	if strings.HasPrefix(v, filepath.Clean(d)) {
		return v, nil
	}

	return "", fmt.Errorf("%s: %s", "content filepath is tainted", t)
}
