package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jmshea/coding/internal/cli"
	"github.com/jmshea/coding/pkg/config"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	logLevel := new(slog.LevelVar)
	logLevel.Set(slog.LevelWarn)
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	if manager, err := config.NewManager(); err == nil {
		cfg := manager.Get()
		if !cfg.UI.UseColor {
			color.NoColor = true
		}
		if cfg.UI.Verbose {
			logLevel.Set(slog.LevelDebug)
		}
	}

	rootCmd := &cobra.Command{
		Use:   "galois",
		Short: "Arithmetic over binary extension fields GF(2^m)",
		Long: `Galois computes arithmetic over binary extension fields GF(2^m), the
algebraic structures underlying Reed-Solomon and BCH codes.

A field is selected by its order (using a built-in catalog of primitive
polynomials from Appendix B of Lin and Costello) or by an explicit
primitive polynomial. Elements are written as powers of the primitive
element a: "0", "1", "a", or "a^n".

Features:
- Addition, multiplication, division, and exponentiation of elements
- Vector (polynomial basis) representation
- Conjugate orbits under the Frobenius map
- Minimal polynomial search and per-field summary tables
- Full addition and multiplication Cayley tables`,
		Version: fmt.Sprintf("%s (built %s, commit %s)", Version, BuildTime, GitCommit),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				logLevel.Set(slog.LevelDebug)
			}
		},
	}

	rootCmd.AddCommand(
		cli.NewEvalCommand(),
		cli.NewVecCommand(),
		cli.NewConjugatesCommand(),
		cli.NewMinPolyCommand(),
		cli.NewMinPolyTableCommand(),
		cli.NewAddTableCommand(),
		cli.NewMulTableCommand(),
		cli.NewConfigCommand(),
	)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "Output in JSON format")

	if err := rootCmd.Execute(); err != nil {
		slog.Error("Command execution failed", "error", err)
		os.Exit(1)
	}
}
