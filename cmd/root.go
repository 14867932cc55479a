package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/algoselect/internal/config"
	"github.com/abhisek/algoselect/internal/logging"
)

var (
	// cfg is loaded by the root PersistentPreRunE before any command runs.
	cfg *config.Config

	logFile *os.File
)

var rootCmd = &cobra.Command{
	Use:   "algoselect",
	Short: "Find a starting ML algorithm for your problem",
	Long: "algoselect asks a few questions about your problem and your data, decides whether " +
		"machine learning is needed, and suggests a paradigm and an algorithm to start with.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logFile != nil {
			logFile.Close()
			logFile = nil
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to a YAML config file (overrides "+config.ConfigPathEnvVar+")")
	pf.String("log-level", "", "Log level: trace, debug, info, warn, error or disabled")
	pf.String("size-policy", "", "How a data size with no low-size signal is classified: high or unknown")

	rootCmd.Flags().Bool("plain", false, "Ask questions line by line instead of using the full-screen interface")
	rootCmd.Flags().Bool("no-welcome", false, "Skip the welcome screen")

	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads the configuration, applies flag overrides and starts logging.
func setup(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	c, err := config.Load(path)
	if err != nil {
		return err
	}

	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		c.Log.Level = v
	}
	if v, _ := cmd.Flags().GetString("size-policy"); v != "" {
		c.Engine.SizePolicy = v
	}
	if cmd == rootCmd {
		if plain, _ := cmd.Flags().GetBool("plain"); plain {
			c.UI.Mode = config.ModePlain
		}
		if skip, _ := cmd.Flags().GetBool("no-welcome"); skip {
			c.UI.SkipWelcome = true
		}
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	cfg = c

	return initLogging(c, cmd == rootCmd && c.UI.Mode == config.ModeTUI)
}

// initLogging points the global logger at stderr, or at log.file when set.
// The full-screen interface owns the terminal, so it logs nowhere unless a
// file is configured.
func initLogging(c *config.Config, fullScreen bool) error {
	var out io.Writer = os.Stderr
	switch {
	case c.Log.File != "":
		f, err := os.OpenFile(c.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logFile = f
		out = f
	case fullScreen:
		out = io.Discard
	}

	logging.Init(logging.Config{
		Level:     c.Log.Level,
		Format:    c.Log.Format,
		Caller:    c.Log.Caller,
		Timestamp: true,
		Output:    out,
	})
	return nil
}
