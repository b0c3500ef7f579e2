package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/evgeniy-krivenko/ai-notes/internal/app"
	"github.com/evgeniy-krivenko/ai-notes/internal/entity"
)

func listCmd() *cobra.Command {
	var folder, query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notes, pinned first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(a *app.App) error {
				fmt.Fprint(cmd.OutOrStdout(), renderList(a.Notes.Query(folder, query), now()))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&folder, "folder", "f", entity.AllNotesFolder, "folder to list")
	cmd.Flags().StringVarP(&query, "query", "q", "", "case-insensitive text filter")
	return cmd
}

func newCmd() *cobra.Command {
	var folder string

	cmd := &cobra.Command{
		Use:   "new [content]",
		Short: "Create a note",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app.App) error {
				note := a.Notes.CreateNote(cmd.Context(), folder)

				if len(args) > 0 {
					var err error
					note, err = a.Notes.UpdateContent(cmd.Context(), note.ID, strings.Join(args, " "))
					if err != nil {
						return err
					}
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Created %s in %s\n", note.ID, note.Folder)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&folder, "folder", "f", entity.DefaultFolder, "folder for the new note")
	return cmd
}

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app.App) error {
				note, err := resolveID(a.Notes, args[0])
				if err != nil {
					return err
				}

				fmt.Fprint(cmd.OutOrStdout(), renderNote(note, now()))
				return nil
			})
		},
	}
}

func editCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <id> <content|->",
		Short: "Replace note content; '-' reads it from stdin",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			content := strings.Join(args[1:], " ")
			if content == "-" {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				content = string(b)
			}

			return withApp(cmd, func(a *app.App) error {
				note, err := resolveID(a.Notes, args[0])
				if err != nil {
					return err
				}

				note, err = a.Notes.UpdateContent(cmd.Context(), note.ID, content)
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Updated %s: %s\n", note.ID, note.Title())
				return nil
			})
		},
	}
}

func pinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pin <id>",
		Short: "Toggle the pinned flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app.App) error {
				note, err := resolveID(a.Notes, args[0])
				if err != nil {
					return err
				}

				note, err = a.Notes.TogglePinned(cmd.Context(), note.ID)
				if err != nil {
					return err
				}

				state := "unpinned"
				if note.Pinned {
					state = "pinned"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", note.ID, state)
				return nil
			})
		},
	}
}

const taskPrefix = "\n- [ ] "

// appendTask adds an unchecked task line at the end of content.
func appendTask(content, text string) string {
	return content + taskPrefix + text
}

func todoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "todo <id> [text]",
		Short: "Append an unchecked task line",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args[1:], " ")

			return withApp(cmd, func(a *app.App) error {
				note, err := resolveID(a.Notes, args[0])
				if err != nil {
					return err
				}

				note, err = a.Notes.TransformContent(cmd.Context(), note.ID, func(current string) string {
					return appendTask(current, text)
				})
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Updated %s: %s\n", note.ID, note.Title())
				return nil
			})
		},
	}
}

func rmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app.App) error {
				note, err := resolveID(a.Notes, args[0])
				if err != nil {
					return err
				}

				if err := a.Notes.DeleteNote(cmd.Context(), note.ID); err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", note.ID)
				return nil
			})
		},
	}
}

func foldersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "folders",
		Short: "List folders with note counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(a *app.App) error {
				fmt.Fprint(cmd.OutOrStdout(), renderFolders(a.Notes.FolderCounts()))
				return nil
			})
		},
	}
}

func folderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "folder",
		Short: "Add or remove folders",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <name>",
		Short: "Add a folder",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")
			return withApp(cmd, func(a *app.App) error {
				if err := a.Notes.AddFolder(cmd.Context(), name); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added folder %q\n", name)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rm <name>",
		Short: "Remove an empty folder",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")
			return withApp(cmd, func(a *app.App) error {
				if err := a.Notes.DeleteFolder(cmd.Context(), name); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed folder %q\n", name)
				return nil
			})
		},
	})

	return cmd
}

func aiCmd() *cobra.Command {
	actions := make([]string, 0, len(entity.Actions()))
	for _, a := range entity.Actions() {
		actions = append(actions, string(a))
	}

	return &cobra.Command{
		Use:       "ai <action> <id>",
		Short:     "Run an AI action on a note: " + strings.Join(actions, ", "),
		Args:      cobra.ExactArgs(2),
		ValidArgs: actions,
		RunE: func(cmd *cobra.Command, args []string) error {
			action := entity.Action(args[0])
			if !action.Valid() {
				return fmt.Errorf("unknown action %q, want one of %s", args[0], strings.Join(actions, ", "))
			}

			return withApp(cmd, func(a *app.App) error {
				note, err := resolveID(a.Notes, args[1])
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.ErrOrStderr(), "Running %s...\n", action)

				res, err := a.Assist.Run(cmd.Context(), note.ID, action)
				if err != nil {
					return err
				}

				if res.Status != entity.AssistApplied {
					fmt.Fprintf(cmd.OutOrStdout(), "Nothing applied (%s)\n", res.Status)
					return nil
				}

				fmt.Fprint(cmd.OutOrStdout(), renderNote(res.Note, now()))
				return nil
			})
		},
	}
}

func copyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "copy <id>",
		Short: "Copy note content to the clipboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app.App) error {
				note, err := resolveID(a.Notes, args[0])
				if err != nil {
					return err
				}

				if err := clipboard.WriteAll(note.Content); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Copied %q\n", note.Title())
				return nil
			})
		},
	}
}
