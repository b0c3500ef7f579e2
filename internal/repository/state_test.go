package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/evgeniy-krivenko/ai-notes/internal/entity"
)

const testKey = "notes_test"

func stateGenerator() *rapid.Generator[entity.State] {
	return rapid.Custom(func(t *rapid.T) entity.State {
		extra := rapid.SliceOfDistinct(
			rapid.StringMatching(`[A-Za-z][A-Za-z0-9 ]{0,12}`),
			rapid.ID[string],
		).Draw(t, "extraFolders")
		folders := entity.NormalizeFolders(append([]string{entity.DefaultFolder}, extra...))
		real := folders[1:]

		count := rapid.IntRange(0, 8).Draw(t, "count")
		notes := make([]entity.Note, 0, count)
		for i := range count {
			notes = append(notes, entity.Note{
				ID:        fmt.Sprintf("note-%d", i),
				Content:   rapid.String().Draw(t, "content"),
				Folder:    rapid.SampledFrom(real).Draw(t, "folder"),
				UpdatedAt: time.Unix(rapid.Int64Range(0, 4_000_000_000).Draw(t, "sec"), rapid.Int64Range(0, 999_999_999).Draw(t, "nsec")).UTC(),
				Pinned:    rapid.Bool().Draw(t, "pinned"),
			})
		}

		return entity.State{Notes: notes, Folders: folders}
	})
}

func equalStates(a, b entity.State) bool {
	if !slices.Equal(a.Folders, b.Folders) || len(a.Notes) != len(b.Notes) {
		return false
	}

	for i := range a.Notes {
		x, y := a.Notes[i], b.Notes[i]
		if x.ID != y.ID || x.Content != y.Content || x.Folder != y.Folder ||
			x.Pinned != y.Pinned || !x.UpdatedAt.Equal(y.UpdatedAt) {
			return false
		}
	}

	return true
}

func TestStateRepo_RoundTrip_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ctx := context.Background()
		repo := NewStateRepo(NewMemorySlot(), testKey)
		state := stateGenerator().Draw(t, "state")

		if err := repo.Save(ctx, state); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		loaded, err := repo.Load(ctx)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if !equalStates(state, loaded) {
			t.Fatalf("round trip mismatch:\nsaved  %+v\nloaded %+v", state, loaded)
		}
	})
}

func TestStateRepo_LoadAbsent(t *testing.T) {
	repo := NewStateRepo(NewMemorySlot(), testKey)

	_, err := repo.Load(context.Background())
	if !errors.Is(err, ErrStateNotFound) {
		t.Fatalf("expected ErrStateNotFound, got %v", err)
	}
}

func TestStateRepo_LoadMalformed(t *testing.T) {
	tests := []struct {
		name string
		blob string
	}{
		{name: "garbage", blob: "{not json"},
		{name: "null", blob: "null"},
		{name: "wrong shape", blob: `{"notes": "oops"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			slot := NewMemorySlot()
			if err := slot.Put(ctx, testKey, []byte(tt.blob)); err != nil {
				t.Fatal(err)
			}

			_, err := NewStateRepo(slot, testKey).Load(ctx)
			if !errors.Is(err, ErrStateMalformed) {
				t.Fatalf("expected ErrStateMalformed, got %v", err)
			}
		})
	}
}

func TestStateRepo_LoadSanitizes(t *testing.T) {
	ctx := context.Background()
	slot := NewMemorySlot()
	blob := `{
		"notes": [
			{"id": "a", "title": "x", "content": "first", "updatedAt": "2024-01-01T00:00:00Z", "folder": "All Notes", "pinned": true},
			{"id": "a", "title": "dup", "content": "second", "updatedAt": "2024-01-02T00:00:00Z", "folder": "Work", "pinned": false},
			{"id": "", "content": "orphan"}
		],
		"folders": ["Work", "All Notes", "Work"]
	}`
	if err := slot.Put(ctx, testKey, []byte(blob)); err != nil {
		t.Fatal(err)
	}

	state, err := NewStateRepo(slot, testKey).Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(state.Notes) != 1 || state.Notes[0].Content != "first" {
		t.Fatalf("unexpected notes: %+v", state.Notes)
	}
	if state.Notes[0].Folder != entity.DefaultFolder {
		t.Errorf("virtual folder should be replaced, got %q", state.Notes[0].Folder)
	}
	if want := []string{entity.AllNotesFolder, "Work", entity.DefaultFolder}; !slices.Equal(state.Folders, want) {
		t.Errorf("got folders %v, want %v", state.Folders, want)
	}
}

func TestStateRepo_LoadMissingFoldersUsesDefaults(t *testing.T) {
	ctx := context.Background()
	slot := NewMemorySlot()
	if err := slot.Put(ctx, testKey, []byte(`{"notes": []}`)); err != nil {
		t.Fatal(err)
	}

	state, err := NewStateRepo(slot, testKey).Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !slices.Equal(state.Folders, entity.DefaultFolders()) {
		t.Errorf("got folders %v", state.Folders)
	}
}

type failingSlot struct{ err error }

func (f failingSlot) Get(context.Context, string) ([]byte, error) { return nil, f.err }
func (f failingSlot) Put(context.Context, string, []byte) error  { return f.err }

func TestStateRepo_SlotErrorsPropagate(t *testing.T) {
	boom := errors.New("disk full")
	repo := NewStateRepo(failingSlot{err: boom}, testKey)

	if _, err := repo.Load(context.Background()); !errors.Is(err, boom) {
		t.Errorf("Load: expected wrapped slot error, got %v", err)
	}
	if err := repo.Save(context.Background(), entity.State{}); !errors.Is(err, boom) {
		t.Errorf("Save: expected wrapped slot error, got %v", err)
	}
}
