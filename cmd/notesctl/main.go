package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/evgeniy-krivenko/ai-notes/internal/app"
	"github.com/evgeniy-krivenko/ai-notes/internal/config"
	"github.com/evgeniy-krivenko/ai-notes/internal/entity"
	"github.com/evgeniy-krivenko/ai-notes/internal/usecase/notes"
	"github.com/evgeniy-krivenko/ai-notes/pkg/logger/slogx"
)

var errAmbiguousID = errors.New("ambiguous note id")

func main() {
	rootCmd := &cobra.Command{
		Use:           "notesctl",
		Short:         "Manage notes in the local store",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(newCmd())
	rootCmd.AddCommand(showCmd())
	rootCmd.AddCommand(editCmd())
	rootCmd.AddCommand(pinCmd())
	rootCmd.AddCommand(todoCmd())
	rootCmd.AddCommand(rmCmd())
	rootCmd.AddCommand(foldersCmd())
	rootCmd.AddCommand(folderCmd())
	rootCmd.AddCommand(aiCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(copyCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// openApp loads the store configured by the environment. A store that failed
// to load is refused so the CLI never overwrites state it could not read.
func openApp(ctx context.Context) (*app.App, error) {
	cfg, err := config.Parse()
	if err != nil {
		return nil, fmt.Errorf("parse cfg: %v", err)
	}

	if err := slogx.InitGlobal(os.Stderr, cfg.App.LogLevel, true); err != nil {
		return nil, fmt.Errorf("init logger: %v", err)
	}

	a, err := app.New(ctx, cfg)
	if err != nil {
		if a != nil {
			a.Close()
		}
		return nil, err
	}

	return a, nil
}

// withApp runs fn against an opened store and closes it afterwards.
func withApp(cmd *cobra.Command, fn func(a *app.App) error) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	return fn(a)
}

// resolveID accepts a full id or a unique prefix of one.
func resolveID(store *notes.Usecase, id string) (entity.Note, error) {
	if note, err := store.Get(id); err == nil {
		return note, nil
	}

	var found []entity.Note
	for _, n := range store.Notes() {
		if strings.HasPrefix(n.ID, id) {
			found = append(found, n)
		}
	}

	switch len(found) {
	case 0:
		return entity.Note{}, fmt.Errorf("note %s: %w", id, entity.ErrNoteNotFound)
	case 1:
		return found[0], nil
	default:
		return entity.Note{}, fmt.Errorf("%w: %s matches %d notes", errAmbiguousID, id, len(found))
	}
}
