package generate

import (
	"fmt"

	"github.com/apex/log"
	clilog "github.com/apex/log/handlers/cli"

	"github.com/urfave/cli/v2"

	"github.com/mfinley/launchery/pkg/common"
	"github.com/mfinley/launchery/pkg/config"
	"github.com/mfinley/launchery/pkg/installer"
)

// scraperProfile is the built-in launcher when the configuration defines
// none, matching the Academic RAG Scraper GUI layout.
func scraperProfile(cfg *config.Config) *config.Launcher {
	return &config.Launcher{
		Name:       "Academic RAG Scraper",
		Comment:    "Scrape and index academic sources",
		Module:     cfg.PythonModule,
		Categories: []string{"Development", "Education"},
	}
}

func Execute(c *cli.Context) error {
	log.SetHandler(clilog.Default)

	cfg, err := config.New(c.String("config"))
	if err != nil {
		return err
	}

	name := c.String("name")
	profile := cfg.GetLauncher(name)
	if profile == nil {
		if name != "scraper" {
			return fmt.Errorf("no launcher profile named %q in the configuration", name)
		}
		profile = scraperProfile(cfg)
	}

	projectDir := c.String("project-dir")
	if projectDir == "" {
		projectDir = cfg.ProjectPath
	}

	venvDir := c.String("venv")
	if venvDir == "" {
		venvDir = cfg.VenvPath
	}

	module := c.String("module")
	if module == "" {
		module = profile.Module
	}
	if module == "" {
		module = cfg.PythonModule
	}

	iconSource := c.String("icon")
	if iconSource == "" {
		iconSource = profile.Icon
	}

	applicationsDir := c.String("applications-dir")
	if applicationsDir == "" {
		applicationsDir = cfg.ApplicationsPath
	}

	iconsDir := c.String("icons-dir")
	if iconsDir == "" {
		iconsDir = cfg.IconsPath
	}

	inst, err := installer.New(&installer.Options{
		ApplicationsDir: applicationsDir,
		AutostartDir:    cfg.AutostartPath,
		IconsDir:        iconsDir,
	})
	if err != nil {
		return err
	}

	log.Infof("%s/%s", common.NAME, common.AppVersion.Summary)
	log.Infof("launcher: %s", profile.Name)
	log.Infof(" project: %s", projectDir)
	log.Infof("    venv: %s", venvDir)
	log.Infof("  module: %s", module)

	_, err = inst.Generate(&installer.GenerateOptions{
		Name:       profile.Name,
		Comment:    profile.Comment,
		Categories: profile.Categories,
		Terminal:   profile.Terminal || c.Bool("terminal"),
		ProjectDir: projectDir,
		VenvDir:    venvDir,
		Module:     module,
		IconSource: iconSource,
	})

	return err
}

func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "name",
			Usage: "Launcher profile from the configuration file",
			Value: "scraper",
		},
		&cli.StringFlag{
			Name:     "project-dir",
			Usage:    "Project checkout the launcher runs from",
			Category: "Launch Command",
		},
		&cli.StringFlag{
			Name:     "venv",
			Usage:    "Virtual environment activated before the module runs",
			Category: "Launch Command",
		},
		&cli.StringFlag{
			Name:     "module",
			Usage:    "Python module started via python -m",
			Category: "Launch Command",
		},
		&cli.BoolFlag{
			Name:     "terminal",
			Usage:    "Run the launcher in a terminal",
			Category: "Launch Command",
		},
		&cli.StringFlag{
			Name:  "icon",
			Usage: "Icon image or icon-pack archive (tar, zip, gz, bz2, xz)",
		},
		&cli.StringFlag{
			Name:     "applications-dir",
			Usage:    "Override the applications target directory",
			Category: "Target Selection",
		},
		&cli.StringFlag{
			Name:     "icons-dir",
			Usage:    "Override the icons target directory",
			Category: "Target Selection",
		},
	}
}

func init() {
	cmd := &cli.Command{
		Name:        "generate",
		Usage:       "generate a launcher for a python GUI module",
		Description: `synthesize a desktop entry that activates a virtual environment and runs a python module, install its icon and refresh the desktop database`,
		Before:      common.Before,
		Flags:       append(Flags(), common.Flags()...),
		Action:      Execute,
	}

	common.RegisterCommand(cmd)
}
