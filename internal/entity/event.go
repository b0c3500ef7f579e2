package entity

type EventKind string

const (
	EventStateLoaded   EventKind = "state_loaded"
	EventNoteCreated   EventKind = "note_created"
	EventNoteUpdated   EventKind = "note_updated"
	EventNoteDeleted   EventKind = "note_deleted"
	EventFolderAdded   EventKind = "folder_added"
	EventFolderDeleted EventKind = "folder_deleted"
	EventSelection     EventKind = "selection_changed"
)

// Event is published by the note store after every committed change.
type Event struct {
	Kind     EventKind
	Note     Note
	Folder   string
	Selected string
}
