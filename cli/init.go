package cli

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

//go:embed starter/courtside.config.yml
var starterConfig []byte

var InitCommand = &cli.Command{
	Name:  "init",
	Usage: "Write a default courtside.config.yml in the current directory",
	Action: func(c *cli.Context) error {
		if _, err := os.Stat("courtside.config.yml"); err == nil {
			return fmt.Errorf("courtside.config.yml already exists")
		}

		if err := os.WriteFile("courtside.config.yml", starterConfig, 0644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}

		fmt.Println("✅ Created courtside.config.yml")
		fmt.Println("▶  Run: courtside dev")
		return nil
	},
}
