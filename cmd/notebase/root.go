package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"notebase/internal/contextutil"
	"notebase/internal/storage"
	"notebase/internal/validator"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	dbPath    string
	ephemeral bool
	verbose   bool

	store    *storage.NoteDatabase
	validate *validator.Validator
}

// newRootCmd builds the command tree around a. Each call returns fresh flag state.
func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "notebase",
		Short: "Manage knowledge bases and notes stored in SQLite",
		Long: `Notebase stores notes grouped into knowledge bases in a single SQLite file.
Notes are addressed by knowledge base name and title.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if a.verbose {
				level = slog.LevelDebug
			}

			opts := &slog.HandlerOptions{
				Level: level,
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
			slog.SetDefault(logger)

			ctx := contextutil.WithLogger(cmd.Context(), logger)
			cmd.SetContext(ctx)

			mode := storage.ModeDurable
			if a.ephemeral {
				mode = storage.ModeEphemeral
				logger.Warn("ephemeral mode: existing data will be deleted", "path", a.dbPath)
			}

			if err := os.MkdirAll(filepath.Dir(a.dbPath), 0755); err != nil {
				return fmt.Errorf("create data directory: %w", err)
			}
			store, err := storage.OpenNoteDatabase(ctx, a.dbPath, mode)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			a.store = store
			logger.Debug("database opened", "path", a.dbPath, "mode", mode)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.dbPath, "db", defaultDBPath(), "Path to the SQLite database file")
	rootCmd.PersistentFlags().BoolVar(&a.ephemeral, "ephemeral", false, "Delete the database file before opening it")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(
		newKBCmd(a),
		newNoteCmd(a),
		newImportCmd(a),
	)

	return rootCmd
}

func (a *app) close() error {
	if a.store == nil {
		return nil
	}
	err := a.store.Close()
	a.store = nil
	return err
}

// checkName rejects names that could not be addressed over the HTTP API.
func (a *app) checkName(field, value string) error {
	arg := struct {
		Value string `json:"value" validate:"required,max=200,keyname"`
	}{Value: value}
	if err := a.validate.Validate(arg); err != nil {
		return fmt.Errorf("invalid %s %q: %w", field, value, err)
	}
	return nil
}

func defaultDBPath() string {
	if path := os.Getenv("DB_PATH"); path != "" {
		return path
	}
	return "./data/notebase.db"
}

// run executes one CLI invocation and closes the database afterwards,
// whether or not the command succeeded.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	a := &app{validate: validator.New()}
	defer func() {
		_ = a.close()
	}()

	rootCmd := newRootCmd(a)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd.ExecuteContext(ctx)
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
