package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/evgeniy-krivenko/ai-notes/internal/app"
	"github.com/evgeniy-krivenko/ai-notes/internal/entity"
)

type frontMatter struct {
	ID        string    `yaml:"id"`
	Title     string    `yaml:"title"`
	Folder    string    `yaml:"folder"`
	Pinned    bool      `yaml:"pinned,omitempty"`
	UpdatedAt time.Time `yaml:"updated_at"`
}

// renderMarkdown writes the note as markdown with a YAML front matter block.
func renderMarkdown(note entity.Note) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("---\n")

	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(frontMatter{
		ID:        note.ID,
		Title:     note.Title(),
		Folder:    note.Folder,
		Pinned:    note.Pinned,
		UpdatedAt: note.UpdatedAt,
	}); err != nil {
		return nil, fmt.Errorf("encode front matter: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("encode front matter: %w", err)
	}

	buf.WriteString("---\n\n")
	buf.WriteString(note.Content)

	return buf.Bytes(), nil
}

var errUnsafeID = errors.New("note id is not a valid file name")

// exportNote writes <dir>/<id>.md. Ids come from the stored blob, so one
// that could leave dir is refused.
func exportNote(note entity.Note, dir string) (string, error) {
	if note.ID == "." || !filepath.IsLocal(note.ID) || strings.ContainsAny(note.ID, `/\`) {
		return "", fmt.Errorf("export %q: %w", note.ID, errUnsafeID)
	}

	data, err := renderMarkdown(note)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	path := filepath.Join(dir, note.ID+".md")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}

	return path, nil
}

func exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <id> [dir]",
		Short: "Write a note as a markdown file",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 2 {
				dir = args[1]
			}

			return withApp(cmd, func(a *app.App) error {
				note, err := resolveID(a.Notes, args[0])
				if err != nil {
					return err
				}

				path, err := exportNote(note, dir)
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)
				return nil
			})
		},
	}
}
