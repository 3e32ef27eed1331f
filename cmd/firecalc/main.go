package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rgehrsitz/firecalc/internal/calculation"
	"github.com/rgehrsitz/firecalc/internal/config"
	"github.com/rgehrsitz/firecalc/internal/logging"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	debugMode bool
	rulesFile string
	preset    string
	logger    *zap.Logger
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "firecalc",
		Short: "Coast FIRE and Freedom Number calculator",
		Long: `Deterministic financial-independence projections: FIRE and Coast FIRE numbers,
growth paths, the gross income a net budget needs, and time to freedom.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			logger, err = logging.New(debugMode)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging for detailed calculations")
	root.PersistentFlags().StringVar(&rulesFile, "rules", "", "Path to a planning rules YAML file (tax table, solver and horizon settings)")
	root.PersistentFlags().StringVar(&preset, "preset", "default", "Built-in rules preset (default, service-pricing); --rules overrides on top of it")

	root.AddCommand(
		newRunCmd(),
		newCoastCmd(),
		newFreedomCmd(),
		newIncomeCmd(),
		newTaxCmd(),
		newCompareCmd(),
		newOptimizeCmd(),
		newSensitivityCmd(),
		newValidateCmd(),
		newInitCmd(),
		newServeCmd(),
		versionCmd(),
	)
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "firecalc %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" && debugMode {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

// newEngine builds the calculation engine from --preset and --rules (if
// given) and wires the command logger into it.
func newEngine() (*calculation.Engine, error) {
	rules, err := config.RulesPreset(preset)
	if err != nil {
		return nil, err
	}
	if rulesFile != "" {
		loaded, err := config.NewInputParser().LoadRulesOver(rulesFile, rules)
		if err != nil {
			return nil, err
		}
		rules = loaded
	}
	engine := calculation.NewEngineWithConfig(rules)
	engine.SetLogger(logging.NewAdapter(logger))
	engine.Debug = debugMode
	return engine, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
