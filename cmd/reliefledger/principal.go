package main

import (
	"fmt"

	"reliefledger/internal/utils"

	"github.com/urfave/cli/v2"
)

var principalCommand = &cli.Command{
	Name:  "principal",
	Usage: "Generate principal identifiers for use as callers or in fixture files",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    "count",
			Aliases: []string{"c"},
			Usage:   "Number of principals to generate",
			Value:   1,
		},
	},
	Action: func(c *cli.Context) error {
		count := c.Int("count")
		for range count {
			fmt.Fprintln(c.App.Writer, utils.NewPrincipal())
		}
		return nil
	},
}
