package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"quasi/internal/version"
)

var rootCmd = &cobra.Command{
	Use:           "quasi",
	Short:         "Quasi-quotation toolkit",
	Long:          `quasi lexes, parses and quotes source fragments: node → token trees → node`,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		stopProfiling(cmd) // остаток от прошлого Execute, если команда упала
		s, err := setupProfiling(cmd)
		if err != nil {
			return err
		}
		profSession = s
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		stopProfiling(cmd)
	},
}

func init() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("config", "", "path to quasi.toml (default: search from the working directory up)")
	rootCmd.PersistentFlags().StringSlice("cfg", nil, "enable a cfg flag: name or key=value (repeatable)")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to keep")
	rootCmd.PersistentFlags().String("diag-format", "pretty", "diagnostics layout (pretty|short|json)")
	rootCmd.PersistentFlags().String("path-mode", "auto", "paths in diagnostics (auto|absolute|relative|basename)")
	rootCmd.PersistentFlags().Bool("timings", false, "print per-phase timings to stderr")

	// Профилирование
	rootCmd.PersistentFlags().String("cpu-profile", "", "write a CPU profile to this file")
	rootCmd.PersistentFlags().String("mem-profile", "", "write a heap profile to this file on exit")
	rootCmd.PersistentFlags().String("runtime-trace", "", "write a runtime trace to this file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		// PersistentPostRun не вызывается при ошибке команды
		stopProfiling(rootCmd)
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
