package main

import (
	"os"
	"path"

	"github.com/apex/log"
	"github.com/rancher/wrangler/pkg/signals"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/mfinley/launchery/pkg/common"

	_ "github.com/mfinley/launchery/pkg/commands/generate"
	_ "github.com/mfinley/launchery/pkg/commands/info"
	_ "github.com/mfinley/launchery/pkg/commands/install"
	_ "github.com/mfinley/launchery/pkg/commands/list"
	_ "github.com/mfinley/launchery/pkg/commands/uninstall"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			// log panics forces exit
			if _, ok := r.(*logrus.Entry); ok {
				os.Exit(1)
			}
			panic(r)
		}
	}()

	app := cli.NewApp()
	app.Name = path.Base(os.Args[0])
	app.Usage = `install and generate freedesktop launcher entries`
	app.Description = `install desktop-entry launchers into the user's applications, autostart and icon directories`
	app.Version = common.AppVersion.Summary

	app.Before = common.Before
	app.Flags = common.Flags()

	app.Commands = common.GetCommands()
	app.CommandNotFound = func(context *cli.Context, command string) {
		log.Fatalf("command %s not found.", command)
	}

	ctx := signals.SetupSignalContext()
	if err := app.RunContext(ctx, os.Args); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}
