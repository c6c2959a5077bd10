package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/javiermolinar/vnote/internal/config"
	"github.com/javiermolinar/vnote/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() (err error) {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	app := ui.NewApp(nil, cfg)
	defer func() { err = errors.Join(err, app.Close()) }()
	return app.Execute()
}
