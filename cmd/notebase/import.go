package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"notebase/internal/vault"
)

func newImportCmd(a *app) *cobra.Command {
	var (
		exclude []string
		watch   bool
	)

	importCmd := &cobra.Command{
		Use:   "import <kb> <dir>",
		Short: "Import a folder of markdown files as notes",
		Long: `Import walks dir for .md files and adds each one as a note in kb.
The knowledge base is created if it does not exist. Files whose title
already exists in kb are skipped.

With --watch the command keeps running and follows changes: new files are
added and edited files replace the content of the note with the same title.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.checkName("knowledge base", args[0]); err != nil {
				return err
			}

			if !watch {
				stats, err := vault.NewImporter(a.store, vault.WithExclude(exclude...)).ImportDir(ctx, args[0], args[1])
				if err != nil && !errors.Is(err, vault.ErrPartialImport) {
					return fmt.Errorf("import: %w", err)
				}
				printStats(cmd, stats)
				if err != nil {
					return fmt.Errorf("import: %w", err)
				}
				return nil
			}

			w := vault.NewWatcher(a.store, vault.WithExclude(exclude...))
			stats, err := w.Start(ctx, args[0], args[1])
			if err != nil {
				return fmt.Errorf("import: %w", err)
			}
			printStats(cmd, stats)
			return w.Run(ctx)
		},
	}
	importCmd.Flags().StringSliceVar(&exclude, "exclude", nil, "Skip paths matching these glob patterns (e.g. 'drafts/**')")
	importCmd.Flags().BoolVar(&watch, "watch", false, "Keep running and import changes as files are written")

	return importCmd
}

func printStats(cmd *cobra.Command, stats vault.ImportStats) {
	fmt.Fprintf(cmd.OutOrStdout(), "Files: %d  Imported: %d  Skipped: %d  Errors: %d\n",
		stats.Files, stats.Imported, stats.Skipped, stats.Errors)
}
