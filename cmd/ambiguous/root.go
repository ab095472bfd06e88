package main

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/viant/ambiguous/analyzer"
	"golang.org/x/term"
)

// logLevelEnv selects log verbosity: debug, info, warn or error
const logLevelEnv = "AMBIGUOUS_LOG"

var rootCmd = &cobra.Command{
	Use:   "ambiguous",
	Short: "Report ambiguous unary minus assignments in Ruby sources",
	Long: `ambiguous scans the current directory recursively for Ruby files and reports
assignments such as "x =- y", where the spacing reads as subtraction while the
code assigns a negated variable.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runScan,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runScan(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd.ErrOrStderr(), os.Getenv(logLevelEnv))
	srv, err := analyzer.New(
		analyzer.WithOutput(cmd.OutOrStdout()),
		analyzer.WithLogger(logger),
		analyzer.WithColor(colorEnabled(cmd.OutOrStdout())),
	)
	if err != nil {
		return err
	}
	return srv.AnalyzeDir(cmd.Context(), ".")
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: logLevel}))
}

// colorEnabled returns true when w is a terminal and NO_COLOR is unset
func colorEnabled(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
