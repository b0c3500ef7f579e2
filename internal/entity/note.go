package entity

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

var ErrNoteNotFound = errors.New("note not found")

// PlaceholderTitle is shown for notes whose first line is empty.
const PlaceholderTitle = "New Note"

type Note struct {
	ID        string
	Content   string
	Folder    string
	UpdatedAt time.Time
	Pinned    bool
}

// Title is always derived from the first line of Content.
func (n Note) Title() string {
	return TitleOf(n.Content)
}

func TitleOf(content string) string {
	line, _, _ := strings.Cut(content, "\n")
	line = strings.TrimSuffix(line, "\r")
	if line == "" {
		return PlaceholderTitle
	}

	return line
}

type noteJSON struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updatedAt"`
	Folder    string    `json:"folder"`
	Pinned    bool      `json:"pinned"`
}

func (n Note) MarshalJSON() ([]byte, error) {
	return json.Marshal(noteJSON{
		ID:        n.ID,
		Title:     n.Title(),
		Content:   n.Content,
		UpdatedAt: n.UpdatedAt,
		Folder:    n.Folder,
		Pinned:    n.Pinned,
	})
}

// UnmarshalJSON drops the stored title; it is recomputed from content.
func (n *Note) UnmarshalJSON(data []byte) error {
	var raw noteJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*n = Note{
		ID:        raw.ID,
		Content:   raw.Content,
		Folder:    raw.Folder,
		UpdatedAt: raw.UpdatedAt,
		Pinned:    raw.Pinned,
	}

	return nil
}

// Matches reports whether the note belongs to folder and contains text
// (case-insensitive) in its title or content.
func (n Note) Matches(folder, text string) bool {
	if folder != "" && folder != AllNotesFolder && n.Folder != folder {
		return false
	}

	if text == "" {
		return true
	}

	needle := strings.ToLower(text)

	return strings.Contains(strings.ToLower(n.Title()), needle) ||
		strings.Contains(strings.ToLower(n.Content), needle)
}
