package examples

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/pluqqy/snipmux/pkg/models"
	"github.com/pluqqy/snipmux/pkg/tree"
)

// Categories lists the accepted example categories, "all" last
var Categories = []string{"general", "shell", "git", "tmux", "all"}

// ExampleSet represents a collection of related examples
type ExampleSet struct {
	Category    string
	Name        string
	Description string
	Folders     []ExampleFolder
	Snippets    []ExampleSnippet // placed directly under the root
}

// ExampleFolder is a folder to create under the root, with its own children
type ExampleFolder struct {
	Name     string
	Snippets []ExampleSnippet
	Folders  []ExampleFolder
}

// ExampleSnippet is a snippet template
type ExampleSnippet struct {
	Title   string
	Content string
}

// Result reports what an installation added and what it left alone
type Result struct {
	Installed []string
	Skipped   []string
}

// GetExamples returns example sets for the given category
func GetExamples(category string) []ExampleSet {
	sources := map[string]func() []ExampleSet{
		"general": getGeneralExamples,
		"shell":   getShellExamples,
		"git":     getGitExamples,
		"tmux":    getTmuxExamples,
	}

	if category == "all" {
		var all []ExampleSet
		for _, c := range Categories[:len(Categories)-1] {
			all = append(all, GetExamples(c)...)
		}
		return all
	}

	get, ok := sources[category]
	if !ok {
		return []ExampleSet{}
	}
	sets := get()
	for i := range sets {
		sets[i].Category = category
	}
	return sets
}

// ValidCategory reports whether category is one GetExamples understands
func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// Install adds the example sets under the root of store. Folders and root snippets
// whose name already exists at the root are skipped unless force is set, in which
// case the existing entries are replaced. The cursor is restored afterwards when
// its folder still exists.
func Install(store *tree.Store, sets []ExampleSet, force bool) Result {
	var result Result

	previous := store.Current().ID
	store.GoToRoot()
	defer store.MoveTo(previous)

	for _, set := range sets {
		for _, folder := range set.Folders {
			label := tree.RootName + folder.Name + "/"
			existing := rootFolders(store.Root(), folder.Name)
			if len(existing) > 0 && !force {
				result.Skipped = append(result.Skipped, label)
				continue
			}
			for _, id := range existing {
				store.DeleteFolder(id)
			}
			installFolder(store, folder)
			result.Installed = append(result.Installed, label)
		}

		for _, snippet := range set.Snippets {
			label := tree.RootName + snippet.Title
			existing := rootSnippets(store.Root(), snippet.Title)
			if len(existing) > 0 && !force {
				result.Skipped = append(result.Skipped, label)
				continue
			}
			for _, id := range existing {
				store.DeleteSnippet(id)
			}
			store.AddSnippet(snippet.Title, snippet.Content, false)
			result.Installed = append(result.Installed, label)
		}
	}

	return result
}

// installFolder creates folder under the current folder and leaves the cursor where it was
func installFolder(store *tree.Store, folder ExampleFolder) {
	id := store.AddFolder(folder.Name)
	store.Descend(id)
	defer store.Ascend()

	for _, snippet := range folder.Snippets {
		store.AddSnippet(snippet.Title, snippet.Content, false)
	}
	for _, sub := range folder.Folders {
		installFolder(store, sub)
	}
}

func rootFolders(root *models.Folder, name string) []uuid.UUID {
	var ids []uuid.UUID
	for _, f := range root.Subfolders {
		if f.Name == name {
			ids = append(ids, f.ID)
		}
	}
	return ids
}

func rootSnippets(root *models.Folder, title string) []uuid.UUID {
	var ids []uuid.UUID
	for _, s := range root.Snippets {
		if s.Title == title {
			ids = append(ids, s.ID)
		}
	}
	return ids
}

// Describe formats a short summary of a set for listings
func Describe(set ExampleSet) string {
	snippets := len(set.Snippets)
	for _, f := range set.Folders {
		snippets += countSnippets(f)
	}
	return fmt.Sprintf("%s (%d folders, %d snippets)", set.Name, len(set.Folders), snippets)
}

func countSnippets(f ExampleFolder) int {
	n := len(f.Snippets)
	for _, sub := range f.Folders {
		n += countSnippets(sub)
	}
	return n
}
