package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/verdict-go/verdict/build"
	"github.com/verdict-go/verdict/decode"
	"github.com/verdict-go/verdict/result"
)

// errDocumentInvalid marks a run where the schema and document were both
// well-formed but validation failed. It maps to exit code 1; everything
// else (bad schema, unreadable files, bad flags) maps to exit code 2.
var errDocumentInvalid = errors.New("document is not valid against the schema")

func newRootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "verdict",
		Short:         "Validate structured documents against declarative schemas",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			})))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(newValidateCommand())
	return root
}

func newValidateCommand() *cobra.Command {
	var (
		schemaPath string
		selectPath string
	)

	cmd := &cobra.Command{
		Use:   "validate [data-file]",
		Short: "Validate a data document against a schema",
		Long: `Validate reads a YAML schema document and checks a JSON or YAML data
document against it. The data document is read from the given file, or
from stdin when no file is given. With --select, only the sub-document
at the given JSON path is validated.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schemaBytes, err := os.ReadFile(schemaPath)
			if err != nil {
				return fmt.Errorf("read schema: %w", err)
			}
			root, err := build.Load(schemaBytes)
			if err != nil {
				return fmt.Errorf("build schema: %w", err)
			}
			slog.Debug("schema loaded", "path", schemaPath)

			raw, source, err := readDocument(cmd, args)
			if err != nil {
				return err
			}

			var doc any
			if selectPath != "" {
				doc, err = decode.Select(raw, selectPath)
			} else {
				doc, err = decode.Document(raw)
			}
			if err != nil {
				return fmt.Errorf("read document: %w", err)
			}
			slog.Debug("document decoded", "source", source, "select", selectPath)

			res := root.Validate(doc)
			printReport(cmd.OutOrStdout(), source, res)
			if !res.Valid() {
				return errDocumentInvalid
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&schemaPath, "schema", "s", "", "path to the YAML schema document (required)")
	cmd.Flags().StringVar(&selectPath, "select", "", "JSON path of the sub-document to validate")
	_ = cmd.MarkFlagRequired("schema")
	return cmd
}

func readDocument(cmd *cobra.Command, args []string) (raw []byte, source string, err error) {
	if len(args) == 0 {
		raw, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, "", fmt.Errorf("read stdin: %w", err)
		}
		return raw, "stdin", nil
	}
	raw, err = os.ReadFile(args[0])
	if err != nil {
		return nil, "", fmt.Errorf("read document: %w", err)
	}
	return raw, args[0], nil
}

func printReport(w io.Writer, source string, res *result.Result) {
	pass := color.New(color.FgGreen, color.Bold)
	fail := color.New(color.FgRed, color.Bold)
	path := color.New(color.FgCyan)

	if res.Valid() {
		pass.Fprint(w, "PASS")
		fmt.Fprintf(w, " %s\n", source)
		return
	}

	fail.Fprint(w, "FAIL")
	fmt.Fprintf(w, " %s (%d error", source, len(res.Entries()))
	if len(res.Entries()) != 1 {
		fmt.Fprint(w, "s")
	}
	fmt.Fprintln(w, ")")

	for _, e := range res.Entries() {
		fmt.Fprint(w, "  ")
		path.Fprint(w, e.Path)
		fmt.Fprintf(w, ": %s\n", e.Message)
	}
}
