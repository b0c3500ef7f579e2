package entity

import (
	"time"
)

type State struct {
	Notes   []Note   `json:"notes"`
	Folders []string `json:"folders"`
}

const welcomeContent = `AI Notes Assistant

Tap the ✨ button to try:
1. Summarize long notes
2. Continue your writing
3. Extract a to-do checklist`

// DefaultState is the seed used when nothing valid is persisted.
func DefaultState(id string, now time.Time) State {
	return State{
		Notes: []Note{{
			ID:        id,
			Content:   welcomeContent,
			Folder:    DefaultFolder,
			UpdatedAt: now,
			Pinned:    true,
		}},
		Folders: DefaultFolders(),
	}
}

func (s State) Clone() State {
	return State{
		Notes:   append([]Note(nil), s.Notes...),
		Folders: append([]string(nil), s.Folders...),
	}
}
