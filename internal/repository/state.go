package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/evgeniy-krivenko/ai-notes/internal/entity"
	"github.com/evgeniy-krivenko/ai-notes/pkg/logger/slogx"
)

var (
	ErrStateNotFound  = errors.New("state not found")
	ErrStateMalformed = errors.New("state is malformed")
)

// StateRepo persists the whole application state as one JSON blob.
type StateRepo struct {
	slot Slot
	key  string
}

func NewStateRepo(slot Slot, key string) *StateRepo {
	return &StateRepo{slot: slot, key: key}
}

func (r *StateRepo) Load(ctx context.Context) (entity.State, error) {
	data, err := r.slot.Get(ctx, r.key)
	if err != nil {
		if errors.Is(err, ErrSlotEmpty) {
			return entity.State{}, ErrStateNotFound
		}
		return entity.State{}, fmt.Errorf("load state: %w", err)
	}

	var parsed *entity.State
	if err := json.Unmarshal(data, &parsed); err != nil {
		return entity.State{}, fmt.Errorf("%w: %v", ErrStateMalformed, err)
	}
	if parsed == nil {
		return entity.State{}, fmt.Errorf("%w: null document", ErrStateMalformed)
	}

	return sanitize(ctx, *parsed), nil
}

func (r *StateRepo) Save(ctx context.Context, state entity.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	if err := r.slot.Put(ctx, r.key, data); err != nil {
		return fmt.Errorf("save state: %w", err)
	}

	return nil
}

// sanitize restores the invariants a hand-edited or older blob may break.
func sanitize(ctx context.Context, s entity.State) entity.State {
	seen := make(map[string]struct{}, len(s.Notes))
	notes := make([]entity.Note, 0, len(s.Notes))

	for _, n := range s.Notes {
		if n.ID == "" {
			slogx.Warn(ctx, "drop persisted note without id")
			continue
		}
		if _, ok := seen[n.ID]; ok {
			slogx.Warn(ctx, "drop persisted note with duplicate id", slogx.NoteID(n.ID))
			continue
		}
		seen[n.ID] = struct{}{}

		if n.Folder == "" || n.Folder == entity.AllNotesFolder {
			n.Folder = entity.DefaultFolder
		}
		notes = append(notes, n)
	}

	folders := slices.Clone(s.Folders)
	if len(folders) == 0 {
		folders = entity.DefaultFolders()
	}

	// Every note's folder must be listed.
	for _, n := range notes {
		if !slices.Contains(folders, n.Folder) {
			slogx.Warn(ctx, "restore folder missing from list", slogx.Folder(n.Folder))
			folders = append(folders, n.Folder)
		}
	}

	return entity.State{
		Notes:   notes,
		Folders: entity.NormalizeFolders(folders),
	}
}
