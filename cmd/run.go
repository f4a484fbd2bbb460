package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/bunkwise/internal/app"
	"github.com/abhisek/bunkwise/internal/logging"
)

// runApp loads the configuration, sets up logging, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, path, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Logging disabled:", err)
		logger = logging.Discard()
	} else {
		defer closer.Close()
	}
	logger.Info("starting", "version", version, "config", path)

	noSplash, _ := cmd.Flags().GetBool("no-splash")
	return app.Run(app.Options{Config: cfg, Logger: logger, Splash: !noSplash})
}
