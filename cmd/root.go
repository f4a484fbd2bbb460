package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/bunkwise/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "bunkwise",
	Short: "Attendance calculator for students",
	Long:  "Bunkwise works out how many lectures you can skip, or still need to attend, to meet a required attendance percentage.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (overrides BUNKWISE_CONFIG env var)")
	rootCmd.Flags().Bool("no-splash", false, "Skip the welcome animation")

	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves the configuration using --config (highest priority),
// then BUNKWISE_CONFIG, then the default XDG path.
func loadConfig(cmd *cobra.Command) (config.Config, string, error) {
	p, _ := cmd.Flags().GetString("config")
	return config.Resolve(p)
}
