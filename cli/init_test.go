package cli

import (
	"os"
	"strings"
	"testing"

	"github.com/urfave/cli/v2"
)

func TestInitCommand_WritesDefaultConfig(t *testing.T) {
	chdirTemp(t)

	app := &cli.App{Commands: []*cli.Command{InitCommand}}

	var runErr error
	output := captureOutput(func() {
		runErr = app.Run([]string{"courtside", "init"})
	})

	if runErr != nil {
		t.Fatalf("expected no error, got: %v", runErr)
	}
	if !strings.Contains(output, "Created courtside.config.yml") {
		t.Errorf("expected creation notice, got:\n%s", output)
	}

	data, err := os.ReadFile("courtside.config.yml")
	if err != nil {
		t.Fatalf("expected config file to exist: %v", err)
	}
	if !strings.Contains(string(data), "port: 8080") {
		t.Errorf("unexpected starter config:\n%s", data)
	}
}

func TestInitCommand_RefusesToOverwrite(t *testing.T) {
	chdirTemp(t)

	if err := os.WriteFile("courtside.config.yml", []byte("port: 1234\n"), 0644); err != nil {
		t.Fatalf("failed to write existing config: %v", err)
	}

	app := &cli.App{Commands: []*cli.Command{InitCommand}}

	err := app.Run([]string{"courtside", "init"})
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected already-exists error, got: %v", err)
	}

	data, _ := os.ReadFile("courtside.config.yml")
	if string(data) != "port: 1234\n" {
		t.Errorf("existing config was modified: %q", data)
	}
}
