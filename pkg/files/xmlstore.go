package files

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/pluqqy/snipmux/pkg/logging"
	"github.com/pluqqy/snipmux/pkg/models"
	"github.com/pluqqy/snipmux/pkg/tree"
)

// Document layout:
//
//	<storage>
//	  <snippet uuid="..." from_file="false"><title>..</title><content>..</content></snippet>
//	  <folder name="..." uuid="...">
//	    <snippet .../>
//	    <folder .../>
//	  </folder>
//	</storage>
type xmlDocument struct {
	XMLName  xml.Name     `xml:"storage"`
	Snippets []xmlSnippet `xml:"snippet"`
	Folders  []xmlFolder  `xml:"folder"`
}

type xmlFolder struct {
	Name     string       `xml:"name,attr"`
	UUID     string       `xml:"uuid,attr"`
	Snippets []xmlSnippet `xml:"snippet"`
	Folders  []xmlFolder  `xml:"folder"`
}

type xmlSnippet struct {
	UUID     string `xml:"uuid,attr"`
	FromFile string `xml:"from_file,attr"`
	Title    string `xml:"title"`
	Content  string `xml:"content"`
}

// XMLCodec converts a snippet tree to and from its XML document
type XMLCodec struct {
	Logger *logrus.Entry
}

// NewXMLCodec creates a codec. A nil logger discards output.
func NewXMLCodec(logger *logrus.Entry) *XMLCodec {
	return &XMLCodec{Logger: logging.OrDiscard(logger).WithField("component", "xmlstore")}
}

// Encode writes the whole tree. The store's current folder is not changed.
func (c *XMLCodec) Encode(w io.Writer, store *tree.Store) error {
	root := store.Root()
	doc := xmlDocument{
		Snippets: encodeSnippets(root.Snippets),
		Folders:  encodeFolders(root.Subfolders),
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("failed to write XML header: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "\t")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode snippet tree: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("failed to finish XML document: %w", err)
	}
	return nil
}

func encodeFolders(folders []*models.Folder) []xmlFolder {
	out := make([]xmlFolder, 0, len(folders))
	for _, f := range folders {
		out = append(out, xmlFolder{
			Name:     f.Name,
			UUID:     f.ID.String(),
			Snippets: encodeSnippets(f.Snippets),
			Folders:  encodeFolders(f.Subfolders),
		})
	}
	return out
}

func encodeSnippets(snippets []*models.Snippet) []xmlSnippet {
	out := make([]xmlSnippet, 0, len(snippets))
	for _, s := range snippets {
		out = append(out, xmlSnippet{
			UUID:     s.ID.String(),
			FromFile: strconv.FormatBool(s.FromFile),
			Title:    s.Title,
			Content:  s.Content,
		})
	}
	return out
}

// Decode builds a new store from a document. Malformed, nil or repeated
// identities are replaced with fresh ones instead of failing the load.
// The returned store's cursor is on the root.
func (c *XMLCodec) Decode(r io.Reader) (*tree.Store, error) {
	var doc xmlDocument
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse snippet document: %w", err)
	}

	store := tree.NewStore()
	c.addSnippets(store, doc.Snippets)
	c.addFolders(store, doc.Folders)
	store.GoToRoot()
	return store, nil
}

func (c *XMLCodec) addFolders(store *tree.Store, folders []xmlFolder) {
	for _, xf := range folders {
		requested := c.parseID(xf.UUID, "folder", xf.Name)
		id := store.AddFolderWithID(requested, xf.Name)
		if requested != uuid.Nil && id != requested {
			c.Logger.WithField("name", xf.Name).Warnf("duplicate folder uuid %s replaced with %s", requested, id)
		}

		store.Descend(id)
		c.addSnippets(store, xf.Snippets)
		c.addFolders(store, xf.Folders)
		store.Ascend()
	}
}

func (c *XMLCodec) addSnippets(store *tree.Store, snippets []xmlSnippet) {
	for _, xs := range snippets {
		requested := c.parseID(xs.UUID, "snippet", xs.Title)
		id := store.AddSnippetWithID(requested, xs.Title, xs.Content, parseBool(xs.FromFile))
		if requested != uuid.Nil && id != requested {
			c.Logger.WithField("title", xs.Title).Warnf("duplicate snippet uuid %s replaced with %s", requested, id)
		}
	}
}

// parseID returns uuid.Nil for anything unusable, which makes the store generate an id
func (c *XMLCodec) parseID(raw, kind, name string) uuid.UUID {
	id, err := uuid.Parse(raw)
	if err != nil {
		c.Logger.WithFields(logrus.Fields{"kind": kind, "name": name}).Warnf("invalid uuid %q, generating a new one", raw)
		return uuid.Nil
	}
	return id
}

// parseBool accepts the same spellings the document format always has:
// anything starting with 1, t, T, y or Y is true.
func parseBool(raw string) bool {
	if raw == "" {
		return false
	}
	switch raw[0] {
	case '1', 't', 'T', 'y', 'Y':
		return true
	}
	return false
}

// LoadStore reads the tree from path. A missing file yields an empty store;
// a file that exists but cannot be parsed is an error so it is never overwritten.
func LoadStore(path string, logger *logrus.Entry) (*tree.Store, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return tree.NewStore(), nil
		}
		return nil, fmt.Errorf("failed to open snippet store %s: %w", path, err)
	}
	defer f.Close()

	store, err := NewXMLCodec(logger).Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load snippet store %s: %w", path, err)
	}
	return store, nil
}

// SaveStore writes the tree to path through a temporary file in the same directory
func SaveStore(path string, store *tree.Store, logger *logrus.Entry) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return fmt.Errorf("failed to create directory for snippet store: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".storage-*.xml")
	if err != nil {
		return fmt.Errorf("failed to create temp file for snippet store: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if err := NewXMLCodec(logger).Encode(tmp, store); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write snippet store: %w", err)
	}
	if err := os.Chmod(tmpName, filePermissions); err != nil {
		return fmt.Errorf("failed to set permissions on snippet store: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to save snippet store %s: %w", path, err)
	}
	return nil
}
