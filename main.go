package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sheikhrachel/sparse-gol/model"
	"github.com/sheikhrachel/sparse-gol/utils"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sparse-gol",
		Short: "Conway's Game of Life on an unbounded grid",
		Long: `sparse-gol runs Conway's Game of Life over a sparse set of alive cells.

Each step prints "<generation> <population>" to stdout. Logs go to stderr.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := resolveConfig(cmd)
			if err != nil {
				return err
			}

			logger := utils.NewLogger(config.LogLevel, cmd.ErrOrStderr())

			// Handle Ctrl+C gracefully
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return runSimulation(ctx, config, cmd.OutOrStdout(), logger)
		},
	}

	defaults := utils.DefaultConfig()
	flags := cmd.Flags()
	flags.String("config", "", "Path to a JSON or YAML config file")
	flags.Int("iterations", defaults.Iterations, "Number of generations to simulate")
	flags.String("pattern", defaults.Pattern, fmt.Sprintf("Seed pattern, one of %v", model.PatternNames()))
	flags.String("log-level", defaults.LogLevel, "Log verbosity: info, debug or trace")
	flags.Bool("stop-on-stagnation", defaults.StopOnStagnation, "Stop early on extinction or a repeating generation")

	cmd.AddCommand(
		newPatternsCmd(),
		newVersionCmd(),
	)
	return cmd
}

// resolveConfig layers defaults, the optional config file, and explicitly set flags
func resolveConfig(cmd *cobra.Command) (utils.Config, error) {
	flags := cmd.Flags()

	config := utils.DefaultConfig()
	if path, _ := flags.GetString("config"); path != "" {
		loaded, err := utils.LoadConfig(path)
		if err != nil {
			return config, err
		}
		config = loaded
	}

	if flags.Changed("iterations") {
		config.Iterations, _ = flags.GetInt("iterations")
	}
	if flags.Changed("pattern") {
		config.Pattern, _ = flags.GetString("pattern")
	}
	if flags.Changed("log-level") {
		config.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("stop-on-stagnation") {
		config.StopOnStagnation, _ = flags.GetBool("stop-on-stagnation")
	}

	return config, config.Validate()
}

func newPatternsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "patterns",
		Short: "List the available seed patterns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range model.PatternNames() {
				gen, err := model.Pattern(name)
				if err != nil {
					return err
				}
				marker := ""
				if name == model.DefaultPattern {
					marker = " (default)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %d cells%s\n", name, gen.Len(), marker)
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "sparse-gol version %s\n", version)
		},
	}
}
