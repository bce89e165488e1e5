package info

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/apex/log"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/urfave/cli/v2"

	"github.com/mfinley/launchery/pkg/common"
	"github.com/mfinley/launchery/pkg/config"
	"github.com/mfinley/launchery/pkg/desktopenv"
)

func Execute(c *cli.Context) error {
	cfg, err := config.New(c.String("config"))
	if err != nil {
		return err
	}

	de := desktopenv.Detect()

	log.Infof("%s/%s", common.NAME, common.AppVersion.Summary)
	fmt.Println("")
	log.Infof("system information")
	log.Infof("      os: %s", runtime.GOOS)
	log.Infof("    arch: %s", runtime.GOARCH)
	if info, err := host.Info(); err == nil {
		log.Infof("platform: %s %s", info.Platform, info.PlatformVersion)
		log.Infof("  kernel: %s", info.KernelVersion)
	}
	log.Infof(" desktop: %s", de.Name)
	log.Infof(" refresh: %s", strings.Join(de.GetRefreshTools(), ", "))
	fmt.Println("")
	log.Infof("configuration")
	log.Infof("        home: %s", cfg.HomePath)
	log.Infof("applications: %s", cfg.ApplicationsPath)
	log.Infof("   autostart: %s", cfg.AutostartPath)
	log.Infof("       icons: %s", cfg.IconsPath)
	log.Infof("     project: %s", cfg.ProjectPath)
	log.Infof("        venv: %s", cfg.VenvPath)
	fmt.Println("")
	log.Warnf("To clean up everything %s installed, remove:", common.NAME)
	log.Warnf("  - entries under %s", cfg.ApplicationsPath)
	log.Warnf("  - entries under %s", cfg.AutostartPath)
	log.Warnf("  - icons under %s", cfg.IconsPath)

	return nil
}

func Flags() []cli.Flag {
	return []cli.Flag{}
}

func init() {
	cmd := &cli.Command{
		Name:        "info",
		Usage:       "info",
		Description: fmt.Sprintf(`general information about %s and the rendered configuration`, common.NAME),
		Flags:       append(Flags(), common.Flags()...),
		Action:      Execute,
	}

	common.RegisterCommand(cmd)
}
