// Package cli implements the sortnet command-line interface.
//
// # Commands
//
//   - list:   print size and depth of every available (N, scheme) pair
//   - show:   draw one network as text, DOT, JSON or SVG
//   - verify: check networks exhaustively with the 0-1 principle
//   - sort:   sort numbers given as arguments or stdin lines
//
// # Configuration
//
// A TOML file passed with --config supplies defaults for scheme, format,
// max_exhaustive and workers; flags set on the command line take
// precedence. The file is validated before any command runs.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// carried in context.Context.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sortnet"
)

const appName = "sortnet"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config

	configPath string
	cache      *sortnet.Cache
}

// New creates a CLI that logs to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: DefaultConfig(),
		cache:  sortnet.NewCache(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "sortnet generates, draws and runs sorting networks",
		Long:         `sortnet builds sorting networks from classic constructions (insertion, bubble, Bose–Nelson, Batcher, bitonic) and a table of best known size-optimized networks, and verifies or applies them.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.configPath != "" {
				cfg, err := LoadConfig(c.configPath)
				if err != nil {
					return err
				}
				c.Config = cfg
				c.Logger.Debug("loaded config", "path", c.configPath, "scheme", cfg.Scheme, "workers", cfg.Workers)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))

			return nil
		},
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to a TOML config file")

	root.AddCommand(c.listCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.verifyCommand())
	root.AddCommand(c.sortCommand())

	return root
}

// schemeFlag resolves the --scheme flag, falling back to the config value.
func (c *CLI) schemeFlag(cmd *cobra.Command, flag string) (sortnet.Scheme, error) {
	if cmd.Flags().Changed("scheme") {
		return sortnet.ParseScheme(flag)
	}

	return sortnet.ParseScheme(c.Config.Scheme)
}

// schemesFlag resolves an optional --scheme filter; empty means every scheme.
func schemesFlag(flag string) ([]sortnet.Scheme, error) {
	if flag == "" {
		return sortnet.Schemes(), nil
	}
	s, err := sortnet.ParseScheme(flag)
	if err != nil {
		return nil, err
	}

	return []sortnet.Scheme{s}, nil
}
