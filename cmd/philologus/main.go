package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philologus/philologus-desktop/internal/config"
	"github.com/philologus/philologus-desktop/internal/launcher"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "philologus",
	Short: "Desktop client for the philolog.us Greek and Latin lexicons",
	Long:  `Philologus shows a headword search backed by philolog.us next to a preview of the site.`,
	RunE:  runApp,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "philologus %s\n", version)
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration defaults as TOML",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)

	rootCmd.PersistentFlags().String("config", "", "Path to config.toml (default: user config dir)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging to stderr")

	rootCmd.Flags().String("log-dir", "", "Directory for log files (default: user cache dir)")
	rootCmd.Flags().String("chrome-path", "", "Chrome executable used for the page preview")
	rootCmd.Flags().Bool("no-preview", false, "Disable the rendered page preview")
}

func runApp(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	debug, _ := cmd.Flags().GetBool("debug")
	logDir, _ := cmd.Flags().GetString("log-dir")
	chromePath, _ := cmd.Flags().GetString("chrome-path")
	noPreview, _ := cmd.Flags().GetBool("no-preview")

	return launcher.Run(launcher.Options{
		ConfigPath: configPath,
		LogDir:     logDir,
		Debug:      debug,
		ChromePath: chromePath,
		NoPreview:  noPreview,
		Version:    version,
	})
}

func runConfig(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		path, err := config.DefaultConfigPath()
		if err != nil {
			return err
		}
		configPath = path
	}

	defaults, err := config.LoadDefaults(configPath)
	if err != nil {
		return err
	}
	data, err := defaults.EncodeTOML()
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s", configPath, data)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
