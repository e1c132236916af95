// Command gates runs a small logic circuit simulator on the batch renderer.
package main

import (
	"bytes"
	_ "embed"
	"flag"
	"fmt"
	"os"

	"github.com/Carmen-Shannon/gates/engine"
	"github.com/Carmen-Shannon/gates/engine/config"
	"github.com/Carmen-Shannon/gates/engine/logger"
)

//go:embed gates.toml
var defaultConfig []byte

func main() {
	configPath := flag.String("config", "", "path to a TOML settings file")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger.SetLogger(cfg.Log.NewLogger(os.Stderr))

	eng := engine.NewEngine(
		engine.WithConfig(cfg),
		engine.WithHandler(newApp()),
	)
	if err := eng.Launch(cfg.Application.Background); err != nil {
		logger.Logger().Error("gates stopped", "error", err)
		os.Exit(1)
	}
	if err := eng.EnsureClosed(); err != nil {
		logger.Logger().Error("gates stopped", "error", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Decode(bytes.NewReader(defaultConfig))
	}
	return config.Load(path)
}
