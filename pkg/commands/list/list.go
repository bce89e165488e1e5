package list

import (
	"io/fs"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v2"

	"github.com/mfinley/launchery/pkg/common"
	"github.com/mfinley/launchery/pkg/config"
	"github.com/mfinley/launchery/pkg/inventory"
)

func Execute(c *cli.Context) error {
	cfg, err := config.New(c.String("config"))
	if err != nil {
		return err
	}

	inv := inventory.New(dirFS(cfg.ApplicationsPath), dirFS(cfg.AutostartPath))

	if inv.Count() == 0 {
		log.Info("no launcher entries installed")
		return nil
	}

	for _, name := range inv.Names() {
		entry := inv.Entries[name]
		if entry.Backups > 0 {
			log.Infof("%s (%s) [%s] +%d backup", name, entry.DisplayName, entry.Locations(), entry.Backups)
			continue
		}
		log.Infof("%s (%s) [%s]", name, entry.DisplayName, entry.Locations())
	}

	return nil
}

// dirFS returns nil for a directory that does not exist yet so a fresh
// home lists as empty instead of erroring.
func dirFS(dir string) fs.FS {
	if _, err := os.Stat(dir); err != nil {
		return nil
	}
	return os.DirFS(dir)
}

func init() {
	cmd := &cli.Command{
		Name:        "list",
		Usage:       "list installed launcher entries",
		Description: `list launcher entries installed in the applications and autostart directories`,
		Before:      common.Before,
		Flags:       common.Flags(),
		Action:      Execute,
	}

	common.RegisterCommand(cmd)
}
