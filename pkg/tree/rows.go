package tree

import (
	"github.com/google/uuid"

	"github.com/pluqqy/snipmux/pkg/models"
)

// RowKind identifies what a row in a folder listing points at
type RowKind int

const (
	RowOutOfRange RowKind = iota
	RowAscend
	RowFolder
	RowSnippet
)

func (k RowKind) String() string {
	switch k {
	case RowAscend:
		return "ascend"
	case RowFolder:
		return "folder"
	case RowSnippet:
		return "snippet"
	default:
		return "out-of-range"
	}
}

// Row is the result of resolving a cursor index. ID is set for folder and snippet rows.
type Row struct {
	Kind RowKind
	ID   uuid.UUID
}

// RowCount returns the number of selectable rows in the folder listing.
// Below the root, row 0 is the ascend row.
func RowCount(f *models.Folder, atRoot bool) int {
	n := len(f.Subfolders) + len(f.Snippets)
	if !atRoot {
		n++
	}
	return n
}

// Resolve maps a cursor index to the entity it shows. Any index outside
// [0, RowCount) resolves to RowOutOfRange.
func Resolve(f *models.Folder, atRoot bool, index int) Row {
	if index < 0 || index >= RowCount(f, atRoot) {
		return Row{Kind: RowOutOfRange}
	}
	if !atRoot {
		if index == 0 {
			return Row{Kind: RowAscend}
		}
		index--
	}
	if index < len(f.Subfolders) {
		return Row{Kind: RowFolder, ID: f.Subfolders[index].ID}
	}
	return Row{Kind: RowSnippet, ID: f.Snippets[index-len(f.Subfolders)].ID}
}

// IndexOf is the inverse of Resolve for folder and snippet ids. It returns -1
// when id is not a direct child of f.
func IndexOf(f *models.Folder, atRoot bool, id uuid.UUID) int {
	offset := 0
	if !atRoot {
		offset = 1
	}
	for i, sf := range f.Subfolders {
		if sf.ID == id {
			return offset + i
		}
	}
	if i := f.SnippetIndex(id); i >= 0 {
		return offset + len(f.Subfolders) + i
	}
	return -1
}

// ClampCursor keeps cursor within [0, max(0, count-1)]
func ClampCursor(cursor, count int) int {
	if cursor >= count {
		cursor = count - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	return cursor
}
