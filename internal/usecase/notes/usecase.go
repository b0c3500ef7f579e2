package notes

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/imkira/go-observer"

	"github.com/evgeniy-krivenko/ai-notes/internal/entity"
	"github.com/evgeniy-krivenko/ai-notes/internal/repository"
	"github.com/evgeniy-krivenko/ai-notes/pkg/logger/slogx"
)

type stateRepository interface {
	Load(ctx context.Context) (entity.State, error)
	Save(ctx context.Context, state entity.State) error
}

//go:generate go run github.com/kazhuravlev/options-gen/cmd/options-gen@v0.55.3 -out-filename=usecase_options.gen.go -from-struct=Options
type Options struct {
	repo stateRepository `option:"mandatory" validate:"required"`

	now   func() time.Time
	newID func() string
}

// Usecase owns the notes and folders. Every committed mutation is saved
// through the repository (once Load has completed) and published to
// subscribers.
type Usecase struct {
	Options

	mu       sync.RWMutex
	state    entity.State
	selected string
	loaded   bool
	observer observer.Property
}

func New(opts Options) (*Usecase, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate notes usecase options: %v", err)
	}

	if opts.now == nil {
		opts.now = time.Now
	}
	if opts.newID == nil {
		opts.newID = uuid.NewString
	}

	return &Usecase{
		Options:  opts,
		state:    entity.State{Folders: entity.DefaultFolders()},
		observer: observer.NewProperty(entity.Event{}),
	}, nil
}

// Load replaces the in-memory state with the persisted one. Absent or
// malformed data is replaced by the default seed. Other repository errors
// are returned and keep writes suppressed so stored data is not clobbered.
func (u *Usecase) Load(ctx context.Context) error {
	state, err := u.repo.Load(ctx)
	switch {
	case err == nil:
	case errors.Is(err, repository.ErrStateNotFound):
		slogx.Info(ctx, "no saved notes, seeding default state")
		state = entity.DefaultState(u.newID(), u.clock())
	case errors.Is(err, repository.ErrStateMalformed):
		slogx.Warn(ctx, "saved notes are malformed, seeding default state", slogx.Err(err))
		state = entity.DefaultState(u.newID(), u.clock())
	default:
		return fmt.Errorf("usecase load notes: %w", err)
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	u.state = state
	u.selected = ""
	u.loaded = true
	u.commit(ctx, entity.Event{Kind: entity.EventStateLoaded})

	slogx.Info(ctx, "notes loaded", slog.Int("notes", len(state.Notes)))

	return nil
}

func (u *Usecase) Loaded() bool {
	u.mu.RLock()
	defer u.mu.RUnlock()

	return u.loaded
}

// CreateNote inserts an empty note at the head of the collection. The
// virtual or an unknown folder falls back to the default folder.
func (u *Usecase) CreateNote(ctx context.Context, activeFolder string) entity.Note {
	u.mu.Lock()
	defer u.mu.Unlock()

	folder := activeFolder
	if folder == entity.AllNotesFolder || !slices.Contains(u.state.Folders, folder) {
		folder = entity.DefaultFolder
	}

	note := entity.Note{
		ID:        u.newID(),
		Folder:    folder,
		UpdatedAt: u.clock(),
	}

	u.state.Notes = slices.Insert(u.state.Notes, 0, note)
	u.commit(ctx, entity.Event{Kind: entity.EventNoteCreated, Note: note})

	slogx.Info(ctx, "success to create note", slogx.NoteID(note.ID), slogx.Folder(folder))

	return note
}

func (u *Usecase) UpdateContent(ctx context.Context, id, content string) (entity.Note, error) {
	return u.TransformContent(ctx, id, func(string) string { return content })
}

// TransformContent is the single content update path: fn gets the current
// content under the store lock and returns the replacement.
func (u *Usecase) TransformContent(ctx context.Context, id string, fn func(current string) string) (entity.Note, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	idx := u.indexOf(id)
	if idx < 0 {
		return entity.Note{}, fmt.Errorf("usecase update note %s: %w", id, entity.ErrNoteNotFound)
	}

	note := u.state.Notes[idx]
	note.Content = fn(note.Content)
	note.UpdatedAt = u.clock()
	u.state.Notes[idx] = note

	u.commit(ctx, entity.Event{Kind: entity.EventNoteUpdated, Note: note})

	return note, nil
}

// TogglePinned flips the pinned flag and leaves UpdatedAt untouched.
func (u *Usecase) TogglePinned(ctx context.Context, id string) (entity.Note, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	idx := u.indexOf(id)
	if idx < 0 {
		return entity.Note{}, fmt.Errorf("usecase toggle pin %s: %w", id, entity.ErrNoteNotFound)
	}

	u.state.Notes[idx].Pinned = !u.state.Notes[idx].Pinned
	note := u.state.Notes[idx]

	u.commit(ctx, entity.Event{Kind: entity.EventNoteUpdated, Note: note})

	return note, nil
}

// DeleteNote removes the note for good and clears the selection if it
// pointed at it.
func (u *Usecase) DeleteNote(ctx context.Context, id string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	idx := u.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("usecase delete note %s: %w", id, entity.ErrNoteNotFound)
	}

	note := u.state.Notes[idx]
	u.state.Notes = slices.Delete(u.state.Notes, idx, idx+1)

	if u.selected == id {
		u.selected = ""
	}

	u.commit(ctx, entity.Event{Kind: entity.EventNoteDeleted, Note: note, Selected: u.selected})

	slogx.Info(ctx, "success to delete note", slogx.NoteID(id))

	return nil
}

func (u *Usecase) AddFolder(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return entity.ErrEmptyFolderName
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if slices.Contains(u.state.Folders, name) {
		return fmt.Errorf("usecase add folder %q: %w", name, entity.ErrFolderExists)
	}

	u.state.Folders = append(u.state.Folders, name)
	u.commit(ctx, entity.Event{Kind: entity.EventFolderAdded, Folder: name})

	return nil
}

// DeleteFolder removes an empty, non-reserved folder.
func (u *Usecase) DeleteFolder(ctx context.Context, name string) error {
	if entity.IsReservedFolder(name) {
		return fmt.Errorf("usecase delete folder %q: %w", name, entity.ErrFolderReserved)
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	idx := slices.Index(u.state.Folders, name)
	if idx < 0 {
		return fmt.Errorf("usecase delete folder %q: %w", name, entity.ErrFolderNotFound)
	}

	if slices.ContainsFunc(u.state.Notes, func(n entity.Note) bool { return n.Folder == name }) {
		return fmt.Errorf("usecase delete folder %q: %w", name, entity.ErrFolderNotEmpty)
	}

	u.state.Folders = slices.Delete(u.state.Folders, idx, idx+1)
	u.commit(ctx, entity.Event{Kind: entity.EventFolderDeleted, Folder: name})

	return nil
}

// Query returns the notes matching folder and text, pinned first, then most
// recently updated. Ties keep collection order.
func (u *Usecase) Query(folder, text string) []entity.Note {
	u.mu.RLock()
	defer u.mu.RUnlock()

	out := make([]entity.Note, 0, len(u.state.Notes))
	for _, n := range u.state.Notes {
		if n.Matches(folder, text) {
			out = append(out, n)
		}
	}

	slices.SortStableFunc(out, compareNotes)

	return out
}

func compareNotes(a, b entity.Note) int {
	if a.Pinned != b.Pinned {
		if a.Pinned {
			return -1
		}
		return 1
	}

	return b.UpdatedAt.Compare(a.UpdatedAt)
}

func (u *Usecase) Get(id string) (entity.Note, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	idx := u.indexOf(id)
	if idx < 0 {
		return entity.Note{}, entity.ErrNoteNotFound
	}

	return u.state.Notes[idx], nil
}

// Notes returns the collection in stored order.
func (u *Usecase) Notes() []entity.Note {
	u.mu.RLock()
	defer u.mu.RUnlock()

	return slices.Clone(u.state.Notes)
}

func (u *Usecase) Folders() []string {
	u.mu.RLock()
	defer u.mu.RUnlock()

	return slices.Clone(u.state.Folders)
}

func (u *Usecase) FolderCounts() []entity.FolderCount {
	u.mu.RLock()
	defer u.mu.RUnlock()

	counts := make([]entity.FolderCount, 0, len(u.state.Folders))
	for _, f := range u.state.Folders {
		c := 0
		for _, n := range u.state.Notes {
			if f == entity.AllNotesFolder || n.Folder == f {
				c++
			}
		}
		counts = append(counts, entity.FolderCount{Name: f, Count: c})
	}

	return counts
}

// Select marks the note the view is editing. An empty id clears it.
func (u *Usecase) Select(ctx context.Context, id string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if id != "" && u.indexOf(id) < 0 {
		return fmt.Errorf("usecase select note %s: %w", id, entity.ErrNoteNotFound)
	}

	u.selected = id
	u.observer.Update(entity.Event{Kind: entity.EventSelection, Selected: id})

	return nil
}

func (u *Usecase) Selected() (entity.Note, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	idx := u.indexOf(u.selected)
	if idx < 0 {
		return entity.Note{}, false
	}

	return u.state.Notes[idx], true
}

func (u *Usecase) SubscribeToEvents(ctx context.Context) <-chan entity.Event {
	stream := u.observer.Observe()

	result := make(chan entity.Event)
	go func() {
		defer close(result)
		for {
			select {
			case <-ctx.Done():
				return

			case <-stream.Changes():
				ev := stream.Next().(entity.Event)

				select {
				case <-ctx.Done():
					return
				case result <- ev:
				}
			}
		}
	}()

	return result
}

// commit must be called with mu held.
func (u *Usecase) commit(ctx context.Context, ev entity.Event) {
	if u.loaded {
		if err := u.repo.Save(ctx, u.state.Clone()); err != nil {
			slogx.Error(ctx, "failed to save notes", slogx.Err(err))
		}
	}

	u.observer.Update(ev)
}

func (u *Usecase) indexOf(id string) int {
	if id == "" {
		return -1
	}

	return slices.IndexFunc(u.state.Notes, func(n entity.Note) bool { return n.ID == id })
}

func (u *Usecase) clock() time.Time {
	return u.now().UTC()
}
