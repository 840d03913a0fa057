package cli

import (
	"fmt"
	"os"

	"github.com/go-courtside/courtside/core"
	"github.com/urfave/cli/v2"
)

var InfoCommand = &cli.Command{
	Name:  "info",
	Usage: "Print the effective server configuration",
	Action: func(c *cli.Context) error {
		config := core.LoadConfig("courtside.config.yml")

		if _, err := os.Stat("courtside.config.yml"); err != nil {
			fmt.Println("📄 Config File: (none, using defaults)")
		} else {
			fmt.Println("📄 Config File: courtside.config.yml")
		}

		fmt.Println("🔌 Port:", config.Port)
		fmt.Println("👀 Watch Directory:", config.WatchDir)
		fmt.Println("🔁 Debug Headers Enabled:", config.DebugHeaders)
		fmt.Println("🔁 Debug Logs Enabled:", config.DebugLogs)
		fmt.Println()
		fmt.Println("🗂️  Routes: / /home")

		return nil
	},
}
