package cli

import (
	"github.com/go-courtside/courtside"

	"github.com/urfave/cli/v2"
)

var portFlag = &cli.IntFlag{
	Name:  "port",
	Usage: "Override the port from courtside.config.yml",
}

var DevCommand = &cli.Command{
	Name:  "dev",
	Usage: "Start Courtside in dev mode (live reload, detailed error pages)",
	Flags: []cli.Flag{portFlag},
	Action: func(c *cli.Context) error {
		return courtside.Start(courtside.RuntimeConfig{
			Env:  "dev",
			Port: c.Int("port"),
		})
	},
}

var ProdCommand = &cli.Command{
	Name:  "prod",
	Usage: "Start Courtside in production mode (minified page, gzip)",
	Flags: []cli.Flag{portFlag},
	Action: func(c *cli.Context) error {
		return courtside.Start(courtside.RuntimeConfig{
			Env:  "prod",
			Port: c.Int("port"),
		})
	},
}
