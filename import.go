package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fragmede/modview/internal/importer"
)

func init() {
	rootCmd.AddCommand(newImportCmd())
}

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>...",
		Short: "Import notification JSON files into the local store",
		Long: `The import command reads note files and stores every note they contain.
A file may hold a single note or an envelope of the form {"notes": [...]}.

Example:
  modview import notes/*.json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			defer e.Close()
			return runImport(cmd.Context(), os.Stdout, e, args)
		},
	}
}

func runImport(ctx context.Context, out io.Writer, e *env, paths []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	res, err := importer.Import(ctx, e.db, paths, e.cfg.ImportConcurrency, e.logger.Named("import"))
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Imported %s %s from %s %s\n",
		humanize.Comma(int64(res.Notes)), plural(res.Notes, "note", "notes"),
		humanize.Comma(int64(res.Files)), plural(res.Files, "file", "files"))

	if res.Failed > 0 {
		failed := make([]string, 0, len(res.Failures))
		for path := range res.Failures {
			failed = append(failed, path)
		}
		sort.Strings(failed)
		for _, path := range failed {
			fmt.Fprintf(out, "  skipped %s: %v\n", path, res.Failures[path])
		}
		e.logger.Warn("import finished with failures", zap.Int("failed", res.Failed))
	}
	return nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
