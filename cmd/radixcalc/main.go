// Command radixcalc is an interactive calculator for exact numbers in
// bases 2 to 36.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/govalues/radix/internal/shell"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgPath  string
	base     int
	prompt   string
	verbose  bool
	rational bool

	logger *zap.Logger
	cfg    shell.Config
)

var rootCmd = &cobra.Command{
	Use:   "radixcalc",
	Short: "Exact arithmetic on numbers in bases 2 to 36",
	Long: `radixcalc reads one command per line and prints the result.

Commands:
  <literal>              echo the literal in canonical form
  + <literal> <literal>  add two literals written in the same base
  exit                   leave the calculator

Literals look like [base#][-]digits[.digits[(digits)]], for example
16#1A.3(45), where the digits in parentheses repeat forever.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = loadConfig(cmd)
		if err != nil {
			return err
		}
		logger, err = shell.NewLogger(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger.Debug("configuration loaded", zap.String("path", cfgPath), zap.Int("base", cfg.Base))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return shell.New(cfg, logger, cmd.InOrStdin(), cmd.OutOrStdout()).Run()
	},
}

var evalCmd = &cobra.Command{
	Use:   "eval [command]",
	Short: "Evaluate a single command and exit",
	Example: `  radixcalc eval 16#1a.3(45)
  radixcalc eval + 0.(3) 0.(6)`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := shell.New(cfg, logger, nil, nil).Eval(strings.Join(args, " "))
		if err != nil {
			return err
		}
		if out != "" {
			fmt.Fprintln(cmd.OutOrStdout(), out)
		}
		return nil
	},
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Print the digit glyphs and a few sample literals",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return shell.Demo(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "Path to a YAML configuration file")
	rootCmd.PersistentFlags().IntVarP(&base, "base", "b", 10, "Base of literals without a base prefix")
	rootCmd.PersistentFlags().StringVar(&prompt, "prompt", "> ", "Prompt printed before each line, empty to disable")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolVarP(&rational, "rational", "r", false, "Print results as fractions too")

	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(demoCmd)
}

// loadConfig reads the configuration file, if any, and applies the flags
// that were set explicitly on top of it.
func loadConfig(cmd *cobra.Command) (shell.Config, error) {
	c := shell.DefaultConfig()
	if cfgPath != "" {
		var err error
		c, err = shell.LoadConfig(cfgPath)
		if err != nil {
			return shell.Config{}, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("base") {
		c.Base = base
	}
	if flags.Changed("prompt") {
		c.Prompt = prompt
	}
	if flags.Changed("rational") {
		c.Rational = rational
	}
	if verbose {
		c.LogLevel = "debug"
	}
	if err := c.Validate(); err != nil {
		return shell.Config{}, err
	}
	return c, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
