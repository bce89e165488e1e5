package common

import (
	"fmt"

	"github.com/apex/log"
	clilog "github.com/apex/log/handlers/cli"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// Flags are the global flags shared by every subcommand.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Usage:   fmt.Sprintf("Path to the %s configuration file (yaml or toml)", NAME),
			EnvVars: []string{"LAUNCHERY_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "log-level",
			Aliases: []string{"l"},
			Usage:   "Log level (trace, debug, info, warn, error)",
			Value:   "info",
			EnvVars: []string{"LAUNCHERY_LOG_LEVEL"},
		},
		&cli.BoolFlag{
			Name:  "log-caller",
			Usage: "Log the caller (aka line number and file)",
		},
	}
}

// Before sets up both loggers from the global flags. apex/log carries the
// user-facing lines, logrus the internal tracing.
func Before(c *cli.Context) error {
	formatter := &logrus.TextFormatter{
		DisableTimestamp: true,
	}
	logrus.SetFormatter(formatter)
	logrus.SetReportCaller(c.Bool("log-caller"))

	log.SetHandler(clilog.Default)

	switch c.String("log-level") {
	case "trace":
		logrus.SetLevel(logrus.TraceLevel)
		log.SetLevel(log.DebugLevel)
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
		log.SetLevel(log.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
		log.SetLevel(log.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
		log.SetLevel(log.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
		log.SetLevel(log.ErrorLevel)
	default:
		return fmt.Errorf("invalid log level: %s", c.String("log-level"))
	}

	return nil
}
