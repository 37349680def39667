package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"quasi/internal/checkpipeline"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] FILE|DIR...",
	Short: "Round-trip every item through tokens and the printer",
	Long: `check parses every item of every file, converts it to token trees,
parses the trees back and compares the printed forms. It also re-parses the
printed text of every item. Directories are searched for files matching
--glob.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	checkCmd.Flags().Var(new(uiMode), "ui", "progress view")
	checkCmd.Flags().String("glob", "**/*.rs", "files to pick up inside directory arguments")
}

// collectFiles expands directories into the files matching pattern
// (relative to the directory, doublestar syntax), sorted. Explicit file
// arguments are taken as is.
func collectFiles(args []string, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid --glob pattern %q", pattern)
	}
	var files []string
	for _, arg := range args {
		st, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to stat path: %w", err)
		}
		if !st.IsDir() {
			files = append(files, arg)
			continue
		}
		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil || d.IsDir() {
				return walkErr
			}
			rel, relErr := filepath.Rel(arg, path)
			if relErr != nil {
				return relErr
			}
			if ok, _ := doublestar.Match(pattern, filepath.ToSlash(rel)); ok {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	sort.Strings(files)
	return files, nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	mode, ok := cmd.Flags().Lookup("ui").Value.(*uiMode)
	if !ok {
		return fmt.Errorf("failed to get ui flag")
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	pattern, err := cmd.Flags().GetString("glob")
	if err != nil {
		return fmt.Errorf("failed to get glob flag: %w", err)
	}
	files, err := collectFiles(args, pattern)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no files match %q", pattern)
	}

	req := checkpipeline.Request{
		Files:          files,
		Jobs:           jobs,
		Config:         cfg,
		MaxDiagnostics: cfg.MaxDiagnostics,
	}
	var results []checkpipeline.FileResult
	if mode.enabled() {
		results, err = runCheckWithUI(cmd.Context(), "quasi check", req)
	} else {
		results, err = checkpipeline.Check(cmd.Context(), req)
	}
	if err != nil {
		return err
	}
	return reportCheck(cmd, results)
}

func reportCheck(cmd *cobra.Command, results []checkpipeline.FileResult) error {
	out := cmd.OutOrStdout()
	items, failed := 0, 0
	for _, res := range results {
		items += res.Items
		if res.Err == nil {
			continue
		}
		failed++
		fmt.Fprintf(out, "%s: %v\n", res.Path, res.Err)
		printDiagnostics(cmd, res.Sess)
		if errors.Is(res.Err, checkpipeline.ErrMismatch) {
			for _, m := range res.Mismatches {
				fmt.Fprintf(out, "item %d (%s):\n%s", m.Item, m.Stage, m.Diff())
			}
		}
	}
	fmt.Fprintf(out, "checked %d file(s), %d item(s), %d failed\n", len(results), items, failed)
	if timer := newTimer(cmd); timer != nil {
		for _, stage := range []checkpipeline.Stage{checkpipeline.StageLex, checkpipeline.StageParse, checkpipeline.StageQuote, checkpipeline.StagePrint} {
			var total time.Duration
			for _, res := range results {
				total += res.Timings.Duration(stage)
			}
			timer.Add(string(stage), total, "")
		}
		printTimings(cmd, timer)
	}
	if failed > 0 {
		return fmt.Errorf("%d file(s) failed the round trip", failed)
	}
	return nil
}
