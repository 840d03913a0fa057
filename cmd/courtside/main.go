package main

import (
	"log"
	"os"

	courtsidecli "github.com/go-courtside/courtside/cli"
	clilib "github.com/urfave/cli/v2"
)

func runApp(args []string) error {
	app := &clilib.App{
		Name:  "courtside",
		Usage: "A tiny greeting server with a dev mode",
		Commands: []*clilib.Command{
			courtsidecli.InitCommand,
			courtsidecli.DevCommand,
			courtsidecli.ProdCommand,
			courtsidecli.InfoCommand,
		},
	}

	return app.Run(args)
}

func main() {
	if err := runApp(os.Args); err != nil {
		log.Fatal(err)
	}
}
