package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("application failed")
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "reliefledger",
		Usage: "Disaster relief needs and resource registries",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "env-prefix",
				Aliases: []string{"p"},
				Usage:   "Environment variable prefix",
				Value:   "RELIEF",
			},
		},
		Commands: []*cli.Command{
			serveCommand,
			seedCommand,
			principalCommand,
		},
	}
}
