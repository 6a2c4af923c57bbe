package models

import (
	"bytes"
	"slices"

	"github.com/google/uuid"
)

// Snippet is a titled piece of text that can be sent to a tmux pane.
// When FromFile is set, Content holds a file name that is read at dispatch time.
type Snippet struct {
	ID       uuid.UUID `json:"uuid" yaml:"uuid"`
	Title    string    `json:"title" yaml:"title"`
	Content  string    `json:"content" yaml:"content"`
	FromFile bool      `json:"from_file" yaml:"from_file"`
}

// Is reports whether the snippet carries the given identity
func (s *Snippet) Is(id uuid.UUID) bool {
	return s != nil && s.ID == id
}

// Folder owns its subfolders and snippets. ParentID is a lookup link only;
// it is uuid.Nil on the root.
type Folder struct {
	ID         uuid.UUID  `json:"uuid" yaml:"uuid"`
	Name       string     `json:"name" yaml:"name"`
	ParentID   uuid.UUID  `json:"-" yaml:"-"`
	Subfolders []*Folder  `json:"folders,omitempty" yaml:"folders,omitempty"`
	Snippets   []*Snippet `json:"snippets,omitempty" yaml:"snippets,omitempty"`
}

// NewFolder creates a detached folder
func NewFolder(id uuid.UUID, name string) *Folder {
	return &Folder{ID: id, Name: name}
}

// CompareIDs orders identities by their raw bytes. Subfolders are kept in this order.
func CompareIDs(a, b uuid.UUID) int {
	return bytes.Compare(a[:], b[:])
}

// Subfolder returns the direct subfolder with the given id, or nil
func (f *Folder) Subfolder(id uuid.UUID) *Folder {
	if i, ok := f.subfolderIndex(id); ok {
		return f.Subfolders[i]
	}
	return nil
}

// InsertSubfolder adds child keeping identity order and sets its parent link.
// A child whose id is already present replaces the existing entry.
func (f *Folder) InsertSubfolder(child *Folder) {
	child.ParentID = f.ID
	i, ok := f.subfolderIndex(child.ID)
	if ok {
		f.Subfolders[i] = child
		return
	}
	f.Subfolders = slices.Insert(f.Subfolders, i, child)
}

// RemoveSubfolder detaches the subfolder with the given id. It reports whether one was removed.
func (f *Folder) RemoveSubfolder(id uuid.UUID) bool {
	i, ok := f.subfolderIndex(id)
	if !ok {
		return false
	}
	f.Subfolders = slices.Delete(f.Subfolders, i, i+1)
	return true
}

// SnippetIndex returns the position of the snippet with the given id, or -1
func (f *Folder) SnippetIndex(id uuid.UUID) int {
	return slices.IndexFunc(f.Snippets, func(s *Snippet) bool { return s.Is(id) })
}

// Snippet returns the snippet with the given id from this folder only
func (f *Folder) Snippet(id uuid.UUID) *Snippet {
	if i := f.SnippetIndex(id); i >= 0 {
		return f.Snippets[i]
	}
	return nil
}

// IsEmpty reports whether the folder has no children at all
func (f *Folder) IsEmpty() bool {
	return len(f.Subfolders) == 0 && len(f.Snippets) == 0
}

func (f *Folder) subfolderIndex(id uuid.UUID) (int, bool) {
	return slices.BinarySearchFunc(f.Subfolders, id, func(sf *Folder, target uuid.UUID) int {
		return CompareIDs(sf.ID, target)
	})
}
