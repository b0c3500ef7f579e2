package entity

import (
	"errors"
	"slices"
)

var (
	ErrEmptyFolderName = errors.New("folder name is empty")
	ErrFolderExists    = errors.New("folder already exists")
	ErrFolderNotFound  = errors.New("folder not found")
	ErrFolderReserved  = errors.New("folder is reserved")
	ErrFolderNotEmpty  = errors.New("folder still has notes")
)

const (
	// AllNotesFolder is the virtual folder that matches every note.
	// It is never stored as a note's own folder.
	AllNotesFolder = "All Notes"

	DefaultFolder = "Personal"
)

func DefaultFolders() []string {
	return []string{AllNotesFolder, DefaultFolder, "Work", "Ideas"}
}

func IsReservedFolder(name string) bool {
	return name == AllNotesFolder || name == DefaultFolder
}

// NormalizeFolders keeps the first occurrence of each name and puts the
// virtual folder first.
func NormalizeFolders(folders []string) []string {
	out := make([]string, 0, len(folders)+1)
	out = append(out, AllNotesFolder)

	for _, f := range folders {
		if f == "" || slices.Contains(out, f) {
			continue
		}
		out = append(out, f)
	}

	return out
}

type FolderCount struct {
	Name  string
	Count int
}
