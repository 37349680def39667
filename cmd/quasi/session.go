package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"quasi/internal/diag"
	"quasi/internal/diagfmt"
	"quasi/internal/expand"
	"quasi/internal/source"
	"quasi/internal/token"
)

// loadConfig resolves --config (or quasi.toml found upwards) and applies
// --cfg and --max-diagnostics on top of it.
func loadConfig(cmd *cobra.Command) (*expand.Config, error) {
	flags := cmd.Root().PersistentFlags()
	path, err := flags.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	if path == "" {
		found, ok, findErr := expand.FindConfig(".")
		if findErr != nil {
			return nil, findErr
		}
		if ok {
			path = found
		}
	}

	cfg := expand.NewConfig()
	if path != "" {
		if cfg, err = expand.LoadConfig(path); err != nil {
			return nil, err
		}
	}

	extra, err := flags.GetStringSlice("cfg")
	if err != nil {
		return nil, fmt.Errorf("failed to get cfg flag: %w", err)
	}
	for _, item := range extra {
		key, value, _ := strings.Cut(item, "=")
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("invalid --cfg %q", item)
		}
		cfg.Set(key, strings.Trim(strings.TrimSpace(value), `"`))
	}

	maxDiagnostics, err := flags.GetInt("max-diagnostics")
	if err != nil {
		return nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if flags.Changed("max-diagnostics") || cfg.MaxDiagnostics == 0 {
		cfg.MaxDiagnostics = maxDiagnostics
	}
	return cfg, nil
}

func newContext(cmd *cobra.Command) (*expand.Context, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return expand.NewContext(cfg, nil), nil
}

// loadSource registers path ("-" is stdin) in the session.
func loadSource(cx *expand.Context, path string) (*source.File, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return cx.AddSource("<stdin>", string(data)), nil
	}
	id, err := cx.Sess.FileSet.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return cx.Sess.FileSet.Get(id), nil
}

// loadTrees loads path and builds its token trees.
func loadTrees(cx *expand.Context, path string) ([]token.Tree, error) {
	f, err := loadSource(cx, path)
	if err != nil {
		return nil, err
	}
	return cx.TreesOf(f)
}

func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}

// printDiagnostics renders the session bag to stderr, sorted, in the
// --diag-format layout.
func printDiagnostics(cmd *cobra.Command, sess *expand.Session) {
	if sess == nil || sess.Bag.Len() == 0 {
		return
	}
	sess.Bag.Sort()
	if err := writeDiagnostics(cmd, cmd.ErrOrStderr(), sess); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "failed to print diagnostics: %v\n", err)
	}
}

func writeDiagnostics(cmd *cobra.Command, w io.Writer, sess *expand.Session) error {
	flags := cmd.Root().PersistentFlags()
	format, err := flags.GetString("diag-format")
	if err != nil {
		return fmt.Errorf("failed to get diag-format flag: %w", err)
	}
	modeFlag, err := flags.GetString("path-mode")
	if err != nil {
		return fmt.Errorf("failed to get path-mode flag: %w", err)
	}
	mode, ok := diagfmt.ParsePathMode(modeFlag)
	if !ok {
		return fmt.Errorf("invalid --path-mode %q (expected auto|absolute|relative|basename)", modeFlag)
	}
	baseDir, _ := os.Getwd()

	switch format {
	case "pretty":
		return diagfmt.Pretty(w, sess.Bag, sess.FileSet, diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			Context:   2,
			PathMode:  mode,
			BaseDir:   baseDir,
			ShowNotes: true,
		})
	case "json":
		return diagfmt.JSON(w, sess.Bag, sess.FileSet, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         mode,
			BaseDir:          baseDir,
			IncludeNotes:     true,
		})
	case "short":
		_, err = io.WriteString(w, diag.FormatShort(sess.Bag.Items(), sess.FileSet, true)+"\n")
		return err
	}
	return fmt.Errorf("invalid --diag-format %q (expected pretty|short|json)", format)
}
