package install

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
	clilog "github.com/apex/log/handlers/cli"

	"github.com/urfave/cli/v2"

	"github.com/mfinley/launchery/pkg/common"
	"github.com/mfinley/launchery/pkg/config"
	"github.com/mfinley/launchery/pkg/installer"
)

// DefaultEntryFile is the template expected beside the binary when no
// argument is given.
const DefaultEntryFile = "nova.desktop"

func Execute(c *cli.Context) error {
	log.SetHandler(clilog.Default)

	cfg, err := config.New(c.String("config"))
	if err != nil {
		return err
	}

	sourceDir := c.String("source-dir")
	if sourceDir == "" {
		exe, err := os.Executable()
		if err != nil {
			return fmt.Errorf("resolve own location: %w", err)
		}
		sourceDir = filepath.Dir(exe)
	}

	entryFile := c.Args().First()
	if entryFile == "" {
		entryFile = filepath.Join(sourceDir, DefaultEntryFile)
	}

	repoRoot := c.String("repo-root")
	if repoRoot == "" {
		repoRoot = filepath.Dir(sourceDir)
	}

	applicationsDir := c.String("applications-dir")
	if applicationsDir == "" {
		applicationsDir = cfg.ApplicationsPath
	}

	autostartDir := c.String("autostart-dir")
	if autostartDir == "" {
		autostartDir = cfg.AutostartPath
	}

	inst, err := installer.New(&installer.Options{
		ApplicationsDir: applicationsDir,
		AutostartDir:    autostartDir,
		IconsDir:        cfg.IconsPath,
	})
	if err != nil {
		return err
	}

	log.Infof("%s/%s", common.NAME, common.AppVersion.Summary)
	log.Infof("    entry: %s", entryFile)
	log.Infof("repo root: %s", repoRoot)

	installed, err := inst.InstallAutostart(&installer.AutostartOptions{
		EntryFile:   entryFile,
		RepoRoot:    repoRoot,
		EntryPoint:  c.String("entry-point"),
		NoAutostart: c.Bool("no-autostart"),
	})
	if err != nil {
		return err
	}

	log.Infof("installation complete (%d entries)", len(installed))

	return nil
}

func Before(c *cli.Context) error {
	if c.NArg() > 1 {
		return fmt.Errorf("only one entry template can be specified")
	}

	return common.Before(c)
}

func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "source-dir",
			Usage:    "Directory holding the entry template (default is the binary's own directory)",
			Category: "Source Layout",
		},
		&cli.StringFlag{
			Name:     "repo-root",
			Usage:    "Application checkout the launcher points into (default is the parent of the source dir)",
			Category: "Source Layout",
		},
		&cli.StringFlag{
			Name:     "entry-point",
			Usage:    "Application file that must exist under the repo root",
			Value:    "main.py",
			Category: "Source Layout",
		},
		&cli.StringFlag{
			Name:     "applications-dir",
			Usage:    "Override the applications target directory",
			Category: "Target Selection",
		},
		&cli.StringFlag{
			Name:     "autostart-dir",
			Usage:    "Override the autostart target directory",
			Category: "Target Selection",
		},
		&cli.BoolFlag{
			Name:     "no-autostart",
			Usage:    "Install only into the applications directory",
			Category: "Target Selection",
		},
	}
}

func init() {
	cmd := &cli.Command{
		Name:        "install",
		Usage:       "install a desktop-entry template",
		Description: `install a desktop-entry template into the applications and autostart directories, backing up any prior entry`,
		Before:      Before,
		Flags:       append(Flags(), common.Flags()...),
		Action:      Execute,
		Args:        true,
		ArgsUsage:   " [entry.desktop]",
	}

	common.RegisterCommand(cmd)
}
