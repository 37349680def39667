package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"quasi/internal/diagfmt"
	"quasi/internal/lexer"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] FILE",
	Short: "Dump the tokens or token trees of a file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
	tokenizeCmd.Flags().Bool("trees", false, "group tokens into delimited trees")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	formatFlag, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	format, err := diagfmt.ParseTokenFormat(formatFlag)
	if err != nil {
		return err
	}
	trees, err := cmd.Flags().GetBool("trees")
	if err != nil {
		return fmt.Errorf("failed to get trees flag: %w", err)
	}

	cx, err := newContext(cmd)
	if err != nil {
		return err
	}
	defer printDiagnostics(cmd, cx.Sess)

	f, err := loadSource(cx, args[0])
	if err != nil {
		return err
	}
	if trees {
		tts, treeErr := cx.TreesOf(f)
		if treeErr != nil {
			return fmt.Errorf("tokenization failed: %w", treeErr)
		}
		return diagfmt.FormatTrees(cmd.OutOrStdout(), format, tts, cx.Sess.FileSet)
	}
	toks := lexer.Tokenize(f, lexer.Options{Reporter: cx.Sess.Reporter(), KeepTrivia: true})
	if err := diagfmt.FormatTokens(cmd.OutOrStdout(), format, toks, cx.Sess.FileSet); err != nil {
		return err
	}
	if cx.Sess.Bag.HasErrors() {
		return fmt.Errorf("tokenization reported errors")
	}
	return nil
}
