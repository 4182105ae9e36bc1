package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"notebase/internal/storage"
)

// contentFlags holds the two mutually exclusive ways of passing note content.
type contentFlags struct {
	content string
	file    string
}

func (f *contentFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.content, "content", "", "Note content")
	cmd.Flags().StringVar(&f.file, "file", "", "Read note content from this file")
	cmd.MarkFlagsMutuallyExclusive("content", "file")
}

func (f *contentFlags) read() (string, error) {
	if f.file == "" {
		return f.content, nil
	}
	data, err := os.ReadFile(f.file)
	if err != nil {
		return "", fmt.Errorf("read content file: %w", err)
	}
	return string(data), nil
}

func newNoteCmd(a *app) *cobra.Command {
	noteCmd := &cobra.Command{
		Use:   "note",
		Short: "Manage notes",
	}

	var listJSON bool
	listCmd := &cobra.Command{
		Use:   "list <kb>",
		Short: "List the notes of a knowledge base",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			notes, err := a.store.FetchNotes(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("list notes: %w", err)
			}

			if listJSON {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				if notes == nil {
					notes = []storage.Note{}
				}
				return encoder.Encode(notes)
			}
			for _, n := range notes {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", n.ID, n.Title)
			}
			return nil
		},
	}
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")

	var addContent contentFlags
	addCmd := &cobra.Command{
		Use:   "add <kb> <title>",
		Short: "Add a note to a knowledge base",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.checkName("knowledge base", args[0]); err != nil {
				return err
			}
			if err := a.checkName("title", args[1]); err != nil {
				return err
			}
			content, err := addContent.read()
			if err != nil {
				return err
			}

			note := &storage.Note{Title: args[1], Content: content, Directory: args[0]}
			if _, err := a.store.AddNote(cmd.Context(), note); err != nil {
				if errors.Is(err, storage.ErrDuplicateKey) {
					return fmt.Errorf("note %q already exists in %q", note.Title, note.Directory)
				}
				return fmt.Errorf("add note: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created note %q in %q (id %d)\n", note.Title, note.Directory, note.ID)
			return nil
		},
	}
	addContent.register(addCmd)

	showCmd := &cobra.Command{
		Use:   "show <kb> <title>",
		Short: "Print a note's content",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lookup, err := a.store.FetchNote(cmd.Context(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("fetch note: %w", err)
			}
			if !lookup.Found() {
				return fmt.Errorf("note %q in %q: %s", args[1], args[0], lookup.Status)
			}
			fmt.Fprintln(cmd.OutOrStdout(), lookup.Value.Content)
			return nil
		},
	}

	var editContent contentFlags
	editCmd := &cobra.Command{
		Use:   "edit <kb> <title>",
		Short: "Replace a note's content",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			content, err := editContent.read()
			if err != nil {
				return err
			}

			lookup, err := a.store.FetchNote(ctx, args[0], args[1])
			if err != nil {
				return fmt.Errorf("fetch note: %w", err)
			}
			if !lookup.Found() {
				return fmt.Errorf("note %q in %q: %s", args[1], args[0], lookup.Status)
			}

			latest := lookup.Value
			latest.Content = content
			updated, err := a.store.UpdateNote(ctx, &latest)
			if err != nil {
				return fmt.Errorf("update note: %w", err)
			}
			if updated == nil {
				return fmt.Errorf("note %q in %q disappeared during update", args[1], args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated note %q in %q\n", updated.Title, updated.Directory)
			return nil
		},
	}
	editContent.register(editCmd)
	editCmd.MarkFlagsOneRequired("content", "file")

	rmCmd := &cobra.Command{
		Use:     "rm <kb> <title>",
		Aliases: []string{"delete"},
		Short:   "Delete a note",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			deleted, err := a.store.DeleteNote(cmd.Context(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("delete note: %w", err)
			}
			if deleted.IsVoid() {
				fmt.Fprintf(cmd.OutOrStdout(), "Note %q not found in %q, nothing deleted\n", args[1], args[0])
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted note %q from %q (id %d)\n", deleted.Title, deleted.Directory, deleted.ID)
			return nil
		},
	}

	var existsKB string
	existsCmd := &cobra.Command{
		Use:   "exists <title>",
		Short: "Report whether a note title exists, optionally within one knowledge base",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				exists bool
				err    error
			)
			if cmd.Flags().Changed("kb") {
				exists, err = a.store.ContainsNote(cmd.Context(), existsKB, args[0])
			} else {
				exists, err = a.store.ContainsNoteAnywhere(cmd.Context(), args[0])
			}
			if err != nil {
				return fmt.Errorf("check note: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), exists)
			return nil
		},
	}
	existsCmd.Flags().StringVar(&existsKB, "kb", "", "Limit the check to this knowledge base")

	noteCmd.AddCommand(listCmd, addCmd, showCmd, editCmd, rmCmd, existsCmd)
	return noteCmd
}
