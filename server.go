package courtside

import (
	"fmt"
	"net/http"

	"github.com/go-courtside/courtside/core"
)

type RuntimeConfig struct {
	Env  string
	Port int
}

var Start = func(cfg RuntimeConfig) error {
	fmt.Println("Starting Courtside in", cfg.Env, "mode...")

	config := core.LoadConfig("courtside.config.yml")
	if cfg.Port != 0 {
		config.Port = cfg.Port
	}

	mux, cleanup := buildMux(config, cfg.Env)
	if cleanup != nil {
		defer cleanup()
	}

	fmt.Printf("✅ Courtside running at http://localhost:%d\n", config.Port)
	return http.ListenAndServe(fmt.Sprintf(":%d", config.Port), mux)
}

// buildMux wires the page handler and, in dev mode, the reload endpoint
// and the directory watcher behind it.
func buildMux(config core.Config, env string) (*http.ServeMux, func()) {
	mux := http.NewServeMux()

	var cleanup func()

	if env == "dev" {
		reloader := core.NewLiveReloader()
		mux.HandleFunc("/__courtside_reload", reloader.Handler)

		watcher, err := core.NewWatcher(config.WatchDir, reloader.BroadcastReload)
		if err != nil {
			fmt.Println("⚠️  Live reload disabled:", err)
		} else {
			watcher.Start()
			cleanup = func() { watcher.Close() }
		}
	}

	mux.Handle("/", core.NewPageHandler(config, env))

	return mux, cleanup
}
