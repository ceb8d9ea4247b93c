// Browsefield-demo shows browse path fields in a gio window.
//
// Usage:
//
//	browsefield-demo [--config browsefield.toml] [--log-level debug] [--prompt] [--cli]
//
// By default every field opens the platform's native file chooser. With
// --prompt the dialogs ask on the terminal instead, and --cli drives a single
// field from a text menu without opening a window.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Wuerfelhusten/Dynamic-Interface-Patcher/internal/config"
	"github.com/Wuerfelhusten/Dynamic-Interface-Patcher/internal/logging"
	"github.com/Wuerfelhusten/Dynamic-Interface-Patcher/ui/browsefield"
)

var version = "dev" // set via -ldflags at build time

var (
	configPath string
	logLevel   string
	usePrompt  bool
	useCLI     bool
)

var rootCmd = &cobra.Command{
	Use:   "browsefield-demo",
	Short: "Demo window for the browse path field",
	Long: `Opens a window with one browse path field per [[field]] entry in
browsefield.toml. Each field can be typed into directly or filled from a
file dialog through its folder button.`,
	Example: `  # Native dialogs, default fields
  browsefield-demo

  # Terminal dialogs with debug logging
  browsefield-demo --prompt --log-level debug

  # Headless menu
  browsefield-demo --cli`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := logging.Initialize(logLevel); err != nil {
			return err
		}
		defer logging.Sync()

		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}

		in := bufio.NewReader(cmd.InOrStdin())
		if useCLI {
			return runCLI(cfg, in, cmd.OutOrStdout())
		}

		return runGUI(cfg, dialogFactory(cmd, in))
	},
}

// dialogFactory returns the terminal dialog factory for --prompt, bound to
// the command's streams, or nil for native dialogs.
func dialogFactory(cmd *cobra.Command, in *bufio.Reader) browsefield.DialogFactory {
	if !usePrompt {
		return nil
	}
	return browsefield.PromptDialogFactory(in, cmd.OutOrStdout())
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "browsefield-demo %s\n", version)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "config file (default "+config.DefaultPath+")")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (default $"+logging.LogLevelEnvVar+")")
	rootCmd.Flags().BoolVar(&usePrompt, "prompt", false, "ask for paths on the terminal instead of native dialogs")
	rootCmd.Flags().BoolVar(&useCLI, "cli", false, "run a text menu instead of a window")
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
