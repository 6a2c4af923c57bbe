package tree

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/snipmux/pkg/models"
)

// buildFolder returns a detached folder with the given number of children
func buildFolder(folders, snippets int) *models.Folder {
	f := models.NewFolder(uuid.New(), "f")
	for i := 0; i < folders; i++ {
		f.InsertSubfolder(models.NewFolder(uuid.New(), fmt.Sprintf("sub-%d", i)))
	}
	for i := 0; i < snippets; i++ {
		f.Snippets = append(f.Snippets, &models.Snippet{ID: uuid.New(), Title: fmt.Sprintf("sn-%d", i)})
	}
	return f
}

func TestRowCount(t *testing.T) {
	tests := []struct {
		name     string
		folders  int
		snippets int
		atRoot   bool
		want     int
	}{
		{name: "empty root", atRoot: true, want: 0},
		{name: "empty folder has ascend row", atRoot: false, want: 1},
		{name: "root with children", folders: 2, snippets: 3, atRoot: true, want: 5},
		{name: "folder with children", folders: 2, snippets: 3, atRoot: false, want: 6},
		{name: "only snippets", snippets: 4, atRoot: false, want: 5},
		{name: "only folders", folders: 4, atRoot: true, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := buildFolder(tt.folders, tt.snippets)
			assert.Equal(t, tt.want, RowCount(f, tt.atRoot))
		})
	}
}

func TestResolve_TotalAndInjective(t *testing.T) {
	shapes := []struct{ folders, snippets int }{
		{0, 0}, {1, 0}, {0, 1}, {3, 2}, {5, 7},
	}

	for _, shape := range shapes {
		for _, atRoot := range []bool{true, false} {
			name := fmt.Sprintf("%d folders %d snippets root=%v", shape.folders, shape.snippets, atRoot)
			t.Run(name, func(t *testing.T) {
				f := buildFolder(shape.folders, shape.snippets)
				count := RowCount(f, atRoot)

				seen := make(map[uuid.UUID]int)
				ascendRows := 0
				for i := 0; i < count; i++ {
					row := Resolve(f, atRoot, i)
					switch row.Kind {
					case RowAscend:
						ascendRows++
						assert.Equal(t, 0, i, "ascend row must be first")
					case RowFolder, RowSnippet:
						_, dup := seen[row.ID]
						assert.False(t, dup, "row %d maps to an id already seen", i)
						seen[row.ID] = i
						assert.Equal(t, i, IndexOf(f, atRoot, row.ID))
					default:
						t.Fatalf("index %d inside range resolved to %v", i, row.Kind)
					}
				}

				if atRoot {
					assert.Zero(t, ascendRows)
				} else {
					assert.Equal(t, 1, ascendRows)
				}
				for _, sf := range f.Subfolders {
					assert.Contains(t, seen, sf.ID)
				}
				for _, sn := range f.Snippets {
					assert.Contains(t, seen, sn.ID)
				}

				assert.Equal(t, RowOutOfRange, Resolve(f, atRoot, -1).Kind)
				assert.Equal(t, RowOutOfRange, Resolve(f, atRoot, count).Kind)
				assert.Equal(t, RowOutOfRange, Resolve(f, atRoot, count+10).Kind)
			})
		}
	}
}

func TestResolve_FolderSnippetBoundary(t *testing.T) {
	f := buildFolder(2, 2)

	// Below the root: ascend, folder, folder, snippet, snippet
	assert.Equal(t, Row{Kind: RowAscend}, Resolve(f, false, 0))
	assert.Equal(t, Row{Kind: RowFolder, ID: f.Subfolders[0].ID}, Resolve(f, false, 1))
	assert.Equal(t, Row{Kind: RowFolder, ID: f.Subfolders[1].ID}, Resolve(f, false, 2))
	assert.Equal(t, Row{Kind: RowSnippet, ID: f.Snippets[0].ID}, Resolve(f, false, 3))
	assert.Equal(t, Row{Kind: RowSnippet, ID: f.Snippets[1].ID}, Resolve(f, false, 4))

	// At the root the folder rows start at 0
	assert.Equal(t, Row{Kind: RowFolder, ID: f.Subfolders[0].ID}, Resolve(f, true, 0))
	assert.Equal(t, Row{Kind: RowFolder, ID: f.Subfolders[1].ID}, Resolve(f, true, 1))
	assert.Equal(t, Row{Kind: RowSnippet, ID: f.Snippets[0].ID}, Resolve(f, true, 2))
	assert.Equal(t, Row{Kind: RowSnippet, ID: f.Snippets[1].ID}, Resolve(f, true, 3))
}

func TestIndexOf_Missing(t *testing.T) {
	f := buildFolder(1, 1)
	assert.Equal(t, -1, IndexOf(f, true, uuid.New()))
	assert.Equal(t, -1, IndexOf(f, false, uuid.Nil))
}

func TestClampCursor(t *testing.T) {
	tests := []struct {
		cursor, count, want int
	}{
		{0, 0, 0},
		{3, 0, 0},
		{-1, 5, 0},
		{2, 5, 2},
		{5, 5, 4},
		{9, 1, 0},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("cursor %d count %d", tt.cursor, tt.count), func(t *testing.T) {
			assert.Equal(t, tt.want, ClampCursor(tt.cursor, tt.count))
		})
	}
}

func TestRowScenario_RootThenDescend(t *testing.T) {
	s := NewStore()
	folderID := s.AddFolder("A")
	snippetID := s.AddSnippet("hi", "x", false)

	require.Equal(t, 2, RowCount(s.Root(), true))
	assert.Equal(t, Row{Kind: RowFolder, ID: folderID}, Resolve(s.Root(), true, 0))
	assert.Equal(t, Row{Kind: RowSnippet, ID: snippetID}, Resolve(s.Root(), true, 1))

	s.Descend(folderID)
	require.False(t, s.IsAtRoot())
	assert.Equal(t, 1, RowCount(s.Current(), s.IsAtRoot()))
	assert.Equal(t, Row{Kind: RowAscend}, Resolve(s.Current(), false, 0))
}

func TestRowKind_String(t *testing.T) {
	assert.Equal(t, "ascend", RowAscend.String())
	assert.Equal(t, "folder", RowFolder.String())
	assert.Equal(t, "snippet", RowSnippet.String())
	assert.Equal(t, "out-of-range", RowOutOfRange.String())
}
