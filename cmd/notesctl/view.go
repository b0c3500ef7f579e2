package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/evgeniy-krivenko/ai-notes/internal/entity"
	"github.com/evgeniy-krivenko/ai-notes/internal/format"
)

var now = time.Now

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	pinStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	folderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
)

const idWidth = 8

func shortID(id string) string {
	if len(id) > idWidth {
		return id[:idWidth]
	}
	return id
}

func renderList(notes []entity.Note, at time.Time) string {
	if len(notes) == 0 {
		return dimStyle.Render("No notes") + "\n"
	}

	var b strings.Builder
	for _, n := range notes {
		pin := " "
		if n.Pinned {
			pin = pinStyle.Render("*")
		}

		fmt.Fprintf(&b, "%s %s  %s  %s\n",
			pin,
			dimStyle.Render(shortID(n.ID)),
			titleStyle.Render(n.Title()),
			dimStyle.Render(format.Date(n.UpdatedAt, at)+"  "+format.Preview(n.Content)),
		)
	}

	return b.String()
}

func renderNote(n entity.Note, at time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", titleStyle.Render(n.Title()))
	fmt.Fprintf(&b, "%s  %s  %s\n",
		dimStyle.Render(n.ID),
		folderStyle.Render(n.Folder),
		dimStyle.Render(format.Date(n.UpdatedAt, at)),
	)
	b.WriteString("\n")
	b.WriteString(n.Content)
	b.WriteString("\n")

	return b.String()
}

func renderFolders(counts []entity.FolderCount) string {
	var b strings.Builder
	for _, c := range counts {
		fmt.Fprintf(&b, "%s %s\n", folderStyle.Render(c.Name), dimStyle.Render(fmt.Sprintf("(%d)", c.Count)))
	}
	return b.String()
}
