// Package tree holds the in-memory snippet tree, the current-folder cursor,
// and the projection of a folder's children onto selectable rows.
package tree

import (
	"strings"

	"github.com/google/uuid"

	"github.com/pluqqy/snipmux/pkg/models"
)

// RootName is the display name of the tree root
const RootName = "/"

// Store owns the snippet tree and tracks the folder currently being browsed.
// Every mutation is scoped to the current folder and silently ignores ids that
// do not resolve there.
type Store struct {
	root    *models.Folder
	current *models.Folder
}

// NewStore creates a store holding only an empty root
func NewStore() *Store {
	root := models.NewFolder(uuid.New(), RootName)
	return &Store{root: root, current: root}
}

// Root returns the tree root
func (s *Store) Root() *models.Folder {
	return s.root
}

// Current returns the folder being browsed
func (s *Store) Current() *models.Folder {
	return s.current
}

// IsAtRoot reports whether the cursor is on the root folder
func (s *Store) IsAtRoot() bool {
	return s.current == s.root
}

// GoToRoot resets the cursor to the root
func (s *Store) GoToRoot() {
	s.current = s.root
}

// Ascend moves the cursor to the parent folder. No-op at the root.
func (s *Store) Ascend() {
	if s.IsAtRoot() {
		return
	}
	if parent := s.Parent(s.current); parent != nil {
		s.current = parent
		return
	}
	// The parent link no longer resolves; fall back to the only folder guaranteed to exist.
	s.current = s.root
}

// Descend moves the cursor into a direct subfolder of the current folder.
// Ids that are not direct children are ignored.
func (s *Store) Descend(id uuid.UUID) {
	if sf := s.current.Subfolder(id); sf != nil {
		s.current = sf
	}
}

// MoveTo puts the cursor on any folder in the tree. It reports false and
// leaves the cursor alone when id does not resolve.
func (s *Store) MoveTo(id uuid.UUID) bool {
	f := s.FindFolder(id)
	if f == nil {
		return false
	}
	s.current = f
	return true
}

// AddFolder creates a folder under the current folder and returns its id
func (s *Store) AddFolder(name string) uuid.UUID {
	return s.AddFolderWithID(uuid.Nil, name)
}

// AddFolderWithID is AddFolder with a caller-supplied identity. A nil id or one
// already present in the tree is replaced with a fresh one.
func (s *Store) AddFolderWithID(id uuid.UUID, name string) uuid.UUID {
	if id == uuid.Nil || s.FindFolder(id) != nil {
		id = uuid.New()
	}
	s.current.InsertSubfolder(models.NewFolder(id, name))
	return id
}

// AddSnippet appends a snippet to the current folder and returns its id
func (s *Store) AddSnippet(title, content string, fromFile bool) uuid.UUID {
	return s.AddSnippetWithID(uuid.Nil, title, content, fromFile)
}

// AddSnippetWithID is AddSnippet with a caller-supplied identity. A nil id or one
// already present in the tree is replaced with a fresh one.
func (s *Store) AddSnippetWithID(id uuid.UUID, title, content string, fromFile bool) uuid.UUID {
	if id == uuid.Nil || s.FindSnippet(id) != nil {
		id = uuid.New()
	}
	s.current.Snippets = append(s.current.Snippets, &models.Snippet{
		ID:       id,
		Title:    title,
		Content:  content,
		FromFile: fromFile,
	})
	return id
}

// DeleteFolder removes a subfolder of the current folder together with its subtree
func (s *Store) DeleteFolder(id uuid.UUID) {
	s.current.RemoveSubfolder(id)
}

// DeleteSnippet removes a snippet from the current folder
func (s *Store) DeleteSnippet(id uuid.UUID) {
	if i := s.current.SnippetIndex(id); i >= 0 {
		s.current.Snippets = append(s.current.Snippets[:i], s.current.Snippets[i+1:]...)
	}
}

// RenameFolder renames a subfolder of the current folder
func (s *Store) RenameFolder(id uuid.UUID, newName string) {
	if sf := s.current.Subfolder(id); sf != nil {
		sf.Name = newName
	}
}

// EditSnippet replaces title, content and the from-file flag of a snippet in the current folder
func (s *Store) EditSnippet(id uuid.UUID, title, content string, fromFile bool) {
	if sn := s.current.Snippet(id); sn != nil {
		sn.Title = title
		sn.Content = content
		sn.FromFile = fromFile
	}
}

// FindFolder searches the whole tree depth-first, checking each folder before its children
func (s *Store) FindFolder(id uuid.UUID) *models.Folder {
	return findFolder(s.root, id)
}

func findFolder(f *models.Folder, id uuid.UUID) *models.Folder {
	if f.ID == id {
		return f
	}
	for _, sf := range f.Subfolders {
		if found := findFolder(sf, id); found != nil {
			return found
		}
	}
	return nil
}

// FindSnippet looks in the current folder first and then searches the whole tree from the root
func (s *Store) FindSnippet(id uuid.UUID) *models.Snippet {
	if sn := s.current.Snippet(id); sn != nil {
		return sn
	}
	return findSnippet(s.root, id)
}

func findSnippet(f *models.Folder, id uuid.UUID) *models.Snippet {
	if sn := f.Snippet(id); sn != nil {
		return sn
	}
	for _, sf := range f.Subfolders {
		if found := findSnippet(sf, id); found != nil {
			return found
		}
	}
	return nil
}

// Parent resolves the parent link of f. It returns nil for the root.
func (s *Store) Parent(f *models.Folder) *models.Folder {
	if f == nil || f == s.root || f.ParentID == uuid.Nil {
		return nil
	}
	return s.FindFolder(f.ParentID)
}

// Path returns the location of the current folder, "/" for the root and "/a/b/" below it
func (s *Store) Path() string {
	var parts []string
	for f := s.current; f != nil && f != s.root; f = s.Parent(f) {
		parts = append(parts, f.Name)
	}

	var b strings.Builder
	b.WriteString(RootName)
	for i := len(parts) - 1; i >= 0; i-- {
		b.WriteString(parts[i])
		b.WriteString("/")
	}
	return b.String()
}

// Count returns the number of folders (excluding the root) and snippets in the whole tree
func (s *Store) Count() (folders, snippets int) {
	var walk func(f *models.Folder)
	walk = func(f *models.Folder) {
		snippets += len(f.Snippets)
		for _, sf := range f.Subfolders {
			folders++
			walk(sf)
		}
	}
	walk(s.root)
	return folders, snippets
}
