package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"notebase/internal/export"
	"notebase/internal/storage"
)

func newKBCmd(a *app) *cobra.Command {
	kbCmd := &cobra.Command{
		Use:     "kb",
		Aliases: []string{"knowledge-base"},
		Short:   "Manage knowledge bases",
	}

	var listJSON bool
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all knowledge bases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kbs, err := a.store.FetchAllKnowledgeBases(cmd.Context())
			if err != nil {
				return fmt.Errorf("list knowledge bases: %w", err)
			}

			if listJSON {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(kbs)
			}
			for _, kb := range kbs {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", kb.ID, kb.Name)
			}
			return nil
		},
	}
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")

	addCmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a knowledge base",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.checkName("name", args[0]); err != nil {
				return err
			}

			kb := &storage.KnowledgeBase{Name: args[0]}
			ok, err := a.store.AddKnowledgeBase(cmd.Context(), kb)
			if err != nil {
				return fmt.Errorf("add knowledge base: %w", err)
			}
			if !ok {
				return fmt.Errorf("knowledge base %q already exists", kb.Name)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created knowledge base %q (id %d)\n", kb.Name, kb.ID)
			return nil
		},
	}

	showCmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Show a knowledge base and its note count",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			lookup, err := a.store.FetchKnowledgeBase(ctx, args[0])
			if err != nil {
				return fmt.Errorf("fetch knowledge base: %w", err)
			}
			if !lookup.Found() {
				return fmt.Errorf("knowledge base %q: %s", args[0], lookup.Status)
			}

			notes, err := a.store.FetchNotes(ctx, args[0])
			if err != nil {
				return fmt.Errorf("fetch notes: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ID:    %d\nName:  %s\nNotes: %d\n", lookup.Value.ID, lookup.Value.Name, len(notes))
			return nil
		},
	}

	renameCmd := &cobra.Command{
		Use:   "rename <name> <new-name>",
		Short: "Rename a knowledge base",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name, newName := args[0], args[1]
			if err := a.checkName("new name", newName); err != nil {
				return err
			}

			lookup, err := a.store.FetchKnowledgeBase(ctx, name)
			if err != nil {
				return fmt.Errorf("fetch knowledge base: %w", err)
			}
			if !lookup.Found() {
				return fmt.Errorf("knowledge base %q: %s", name, lookup.Status)
			}

			taken, err := a.store.ContainsKnowledgeBase(ctx, newName)
			if err != nil {
				return fmt.Errorf("check knowledge base: %w", err)
			}
			if taken {
				return fmt.Errorf("knowledge base %q already exists", newName)
			}

			updated, err := a.store.UpdateKnowledgeBase(ctx, &storage.KnowledgeBase{ID: lookup.Value.ID, Name: newName})
			if err != nil {
				return fmt.Errorf("rename knowledge base: %w", err)
			}
			if updated == nil {
				return fmt.Errorf("knowledge base %q disappeared during rename", name)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed %q to %q\n", name, updated.Name)
			return nil
		},
	}

	rmCmd := &cobra.Command{
		Use:     "rm <name>",
		Aliases: []string{"delete"},
		Short:   "Delete a knowledge base (its notes are kept)",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deleted, err := a.store.DeleteKnowledgeBase(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("delete knowledge base: %w", err)
			}
			if deleted.IsVoid() {
				fmt.Fprintf(cmd.OutOrStdout(), "Knowledge base %q not found, nothing deleted\n", args[0])
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted knowledge base %q (id %d)\n", deleted.Name, deleted.ID)
			return nil
		},
	}

	var exportOut string
	exportCmd := &cobra.Command{
		Use:   "export <name>",
		Short: "Export a knowledge base and its notes as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if exportOut == "" {
				return export.Write(cmd.Context(), cmd.OutOrStdout(), a.store, args[0])
			}

			doc, err := export.Build(cmd.Context(), a.store, args[0])
			if err != nil {
				return err
			}
			f, err := os.Create(exportOut)
			if err != nil {
				return fmt.Errorf("create export file: %w", err)
			}
			if err := export.Encode(f, doc); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("close export file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d notes to %s\n", len(doc.Notes), exportOut)
			return nil
		},
	}
	exportCmd.Flags().StringVarP(&exportOut, "output", "o", "", "Write the export to this file instead of stdout")

	kbCmd.AddCommand(listCmd, addCmd, showCmd, renameCmd, rmCmd, exportCmd)
	return kbCmd
}
