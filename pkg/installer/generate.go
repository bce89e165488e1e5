package installer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"github.com/sirupsen/logrus"

	"github.com/mfinley/launchery/pkg/desktop"
	"github.com/mfinley/launchery/pkg/icons"
)

// LauncherMode marks generated entries executable, some file managers
// refuse to launch an entry without it.
const LauncherMode os.FileMode = 0755

// GenerateOptions configure a generated launcher.
type GenerateOptions struct {
	// Name is the display name, also normalized into the entry and icon
	// file names.
	Name       string
	Comment    string
	Categories []string
	Terminal   bool

	// ProjectDir is where the Exec line changes into before running.
	ProjectDir string

	// VenvDir is the virtual environment the Exec line activates.
	VenvDir string

	// Module is the python module started with `python -m`.
	Module string

	// IconSource is an optional image file or icon-pack archive. When it
	// is empty or absent a text placeholder is written instead.
	IconSource string
}

// GenerateResult reports what a Generate run produced.
type GenerateResult struct {
	EntryPath     string
	IconPath      string
	LaunchCommand string

	// IconPlaceholder is true when no usable icon source existed and a
	// plain-text stand-in was written.
	IconPlaceholder bool
}

// LaunchCommand is the shell invocation embedded in the Exec line and
// echoed to the user for manual launches: activate the virtual
// environment, enter the project and run the module.
func LaunchCommand(venvDir, projectDir, module string) string {
	return fmt.Sprintf("sh -c 'source %s && cd %s && python -m %s'",
		VenvActivateScript(venvDir), projectDir, module)
}

// Generate synthesizes a desktop entry for a python GUI module, installs
// or fabricates its icon and refreshes the desktop database. Unlike
// InstallAutostart it overwrites a pre-existing entry without backup.
func (i *Installer) Generate(opts *GenerateOptions) (*GenerateResult, error) {
	if opts.Name == "" {
		return nil, fmt.Errorf("generate: launcher name is required")
	}
	if opts.Module == "" {
		return nil, fmt.Errorf("generate: python module is required")
	}

	if venvExists(opts.VenvDir) {
		logrus.Debugf("virtual environment: %s", opts.VenvDir)
	} else {
		log.Warnf("virtual environment not found at %s, the launcher will reference it anyway", opts.VenvDir)
	}

	if err := i.ensureDirs(i.opts.ApplicationsDir, i.opts.IconsDir); err != nil {
		return nil, err
	}

	slug := strings.TrimSuffix(desktop.Filename(opts.Name), ".desktop")
	iconPath := filepath.Join(i.opts.IconsDir, slug+".png")
	launchCmd := LaunchCommand(opts.VenvDir, opts.ProjectDir, opts.Module)

	entry := &desktop.Entry{
		Version:    "1.0",
		Type:       "Application",
		Name:       opts.Name,
		Comment:    opts.Comment,
		Exec:       launchCmd,
		Icon:       iconPath,
		Terminal:   opts.Terminal,
		Categories: opts.Categories,
	}

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	entryPath := filepath.Join(i.opts.ApplicationsDir, desktop.Filename(opts.Name))
	if err := os.WriteFile(entryPath, []byte(entry.Render()), LauncherMode); err != nil {
		return nil, fmt.Errorf("write %s: %w", entryPath, err)
	}
	if err := os.Chmod(entryPath, LauncherMode); err != nil {
		return nil, fmt.Errorf("set permissions on %s: %w", entryPath, err)
	}

	iconResult, err := icons.Provision(opts.IconSource, iconPath, opts.Name)
	if err != nil {
		return nil, err
	}
	if iconResult.Placeholder {
		log.Warnf("no icon asset found, wrote a text placeholder to %s (not a valid image)", iconPath)
	}

	i.refreshDesktopDatabase(i.opts.ApplicationsDir)
	if !iconResult.Placeholder {
		i.refreshIconCache(i.opts.IconsDir)
	}

	log.Infof("launcher installed: %s", entryPath)
	log.Infof("launch manually with: %s", launchCmd)

	return &GenerateResult{
		EntryPath:       entryPath,
		IconPath:        iconPath,
		LaunchCommand:   launchCmd,
		IconPlaceholder: iconResult.Placeholder,
	}, nil
}
