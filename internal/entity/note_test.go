package entity

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"pgregory.net/rapid"
)

func TestTitleOf(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "empty", content: "", want: PlaceholderTitle},
		{name: "single line", content: "Buy milk", want: "Buy milk"},
		{name: "multi line", content: "Buy milk\nand eggs", want: "Buy milk"},
		{name: "leading newline", content: "\nbody", want: PlaceholderTitle},
		{name: "crlf", content: "Title\r\nbody", want: "Title"},
		{name: "spaces kept", content: "  x  \ny", want: "  x  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TitleOf(tt.content); got != tt.want {
				t.Errorf("TitleOf(%q) = %q, want %q", tt.content, got, tt.want)
			}
		})
	}
}

func TestTitleOf_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		content := rapid.String().Draw(t, "content")
		title := TitleOf(content)

		first, _, _ := strings.Cut(content, "\n")
		first = strings.TrimSuffix(first, "\r")

		if first == "" {
			if title != PlaceholderTitle {
				t.Fatalf("empty first line must give placeholder, got %q", title)
			}
			return
		}
		if title != first {
			t.Fatalf("title %q != first line %q", title, first)
		}
		if strings.Contains(title, "\n") {
			t.Fatalf("title contains a line break: %q", title)
		}
	})
}

func TestNote_JSONWritesDerivedTitle(t *testing.T) {
	n := Note{
		ID:        "n1",
		Content:   "Groceries\nmilk",
		Folder:    "Personal",
		UpdatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		Pinned:    true,
	}

	data, err := json.Marshal(n)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal raw: %v", err)
	}
	for _, key := range []string{"id", "title", "content", "updatedAt", "folder", "pinned"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("missing key %q in %s", key, data)
		}
	}
	if raw["title"] != "Groceries" {
		t.Errorf("got title %v, want Groceries", raw["title"])
	}
}

func TestNote_JSONIgnoresStaleTitle(t *testing.T) {
	data := []byte(`{"id":"n1","title":"stale","content":"Fresh\nbody","updatedAt":"2024-05-01T10:00:00Z","folder":"Work","pinned":false}`)

	var n Note
	if err := json.Unmarshal(data, &n); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if n.Title() != "Fresh" {
		t.Errorf("got title %q, want Fresh", n.Title())
	}
	if n.Folder != "Work" || n.ID != "n1" {
		t.Errorf("unexpected note: %+v", n)
	}
}

func TestNote_Matches(t *testing.T) {
	n := Note{Content: "Trip Plan\nBook HOTEL in Rome", Folder: "Work"}

	tests := []struct {
		folder, text string
		want         bool
	}{
		{folder: AllNotesFolder, text: "", want: true},
		{folder: "", text: "", want: true},
		{folder: "Work", text: "hotel", want: true},
		{folder: "Work", text: "TRIP", want: true},
		{folder: "Personal", text: "", want: false},
		{folder: AllNotesFolder, text: "paris", want: false},
	}

	for _, tt := range tests {
		if got := n.Matches(tt.folder, tt.text); got != tt.want {
			t.Errorf("Matches(%q, %q) = %v, want %v", tt.folder, tt.text, got, tt.want)
		}
	}
}

func TestNote_MatchesPlaceholderTitle(t *testing.T) {
	n := Note{Folder: DefaultFolder}

	if !n.Matches(AllNotesFolder, "new note") {
		t.Error("empty note should match its placeholder title")
	}
}

func TestNormalizeFolders(t *testing.T) {
	got := NormalizeFolders([]string{"Work", "", "Work", AllNotesFolder, "Ideas"})
	want := []string{AllNotesFolder, "Work", "Ideas"}

	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestAction_Valid(t *testing.T) {
	for _, a := range Actions() {
		if !a.Valid() {
			t.Errorf("%q should be valid", a)
		}
	}
	if Action("translate").Valid() {
		t.Error("translate should be invalid")
	}
}
