package uninstall

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/mfinley/launchery/pkg/common"
	"github.com/mfinley/launchery/pkg/config"
	"github.com/mfinley/launchery/pkg/installer"
)

func Execute(c *cli.Context) error {
	cfg, err := config.New(c.String("config"))
	if err != nil {
		return err
	}

	inst, err := installer.New(&installer.Options{
		ApplicationsDir: cfg.ApplicationsPath,
		AutostartDir:    cfg.AutostartPath,
		IconsDir:        cfg.IconsPath,
	})
	if err != nil {
		return err
	}

	_, err = inst.Uninstall(c.Args().First())

	return err
}

func Before(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("no entry specified")
	}

	if c.NArg() > 1 {
		return fmt.Errorf("only one entry can be specified")
	}

	return common.Before(c)
}

func init() {
	cmd := &cli.Command{
		Name:        "uninstall",
		Usage:       "uninstall launcher entries",
		Description: `remove a launcher entry from the applications and autostart directories, restoring any backup`,
		Before:      Before,
		Flags:       common.Flags(),
		Action:      Execute,
		Args:        true,
		ArgsUsage:   " entry-name",
	}

	common.RegisterCommand(cmd)
}
