package order

import (
	"github.com/urfave/cli/v2"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "order",
		Usage: "Manage stored orders",
		Subcommands: []*cli.Command{
			ListCommand(),
			AddCommand(),
		},
	}
}
