package converter

import (
	"time"

	"github.com/evgeniy-krivenko/ai-notes/internal/entity"
	"github.com/evgeniy-krivenko/ai-notes/internal/format"
)

type Note struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Preview     string    `json:"preview"`
	Content     string    `json:"content"`
	Folder      string    `json:"folder"`
	Pinned      bool      `json:"pinned"`
	UpdatedAt   time.Time `json:"updatedAt"`
	DisplayDate string    `json:"displayDate"`
}

type Folder struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type Event struct {
	Type     string `json:"type"`
	Note     *Note  `json:"note,omitempty"`
	NoteID   string `json:"noteId,omitempty"`
	Folder   string `json:"folder,omitempty"`
	Selected string `json:"selected,omitempty"`
	Loading  bool   `json:"loading"`
	Action   string `json:"action,omitempty"`
	Status   string `json:"status,omitempty"`
	Error    string `json:"error,omitempty"`
}

const EventAssist = "assist"

// ConvertNoteToDTO renders the note with view fields relative to now.
func ConvertNoteToDTO(note entity.Note, now time.Time) Note {
	return Note{
		ID:          note.ID,
		Title:       note.Title(),
		Preview:     format.Preview(note.Content),
		Content:     note.Content,
		Folder:      note.Folder,
		Pinned:      note.Pinned,
		UpdatedAt:   note.UpdatedAt,
		DisplayDate: format.Date(note.UpdatedAt, now),
	}
}

func ConvertNotesToDTO(notes []entity.Note, now time.Time) []Note {
	out := make([]Note, 0, len(notes))
	for _, n := range notes {
		out = append(out, ConvertNoteToDTO(n, now))
	}
	return out
}

func ConvertFoldersToDTO(counts []entity.FolderCount) []Folder {
	out := make([]Folder, 0, len(counts))
	for _, c := range counts {
		out = append(out, Folder{Name: c.Name, Count: c.Count})
	}
	return out
}

func ConvertEventToDTO(ev entity.Event, now time.Time) Event {
	out := Event{
		Type:     string(ev.Kind),
		Folder:   ev.Folder,
		Selected: ev.Selected,
	}

	if ev.Note.ID != "" {
		n := ConvertNoteToDTO(ev.Note, now)
		out.Note = &n
	}

	return out
}

func ConvertAssistEventToDTO(ev entity.AssistEvent) Event {
	return Event{
		Type:    EventAssist,
		NoteID:  ev.NoteID,
		Loading: ev.Loading,
		Action:  string(ev.Action),
		Status:  string(ev.Status),
		Error:   ev.Err,
	}
}
