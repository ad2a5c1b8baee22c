package recommend

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/taibuivan/shelfmark/internal/library"
	"github.com/taibuivan/shelfmark/pkg/slug"
)

//go:embed catalog/*.yaml
var embeddedCatalog embed.FS

// catalogFile is the on-disk layout of a catalog document.
type catalogFile struct {
	Paths []Path `yaml:"paths"`
}

// Catalog is the read-only set of curated reading paths.
type Catalog struct {
	paths []Path
	byID  map[string]int
}

// LoadCatalog reads every *.yaml document under dir. An empty dir selects the
// catalog shipped with the binary.
func LoadCatalog(dir string) (*Catalog, error) {
	var fsys fs.FS = embeddedCatalog
	pattern := "catalog/*.yaml"
	if dir != "" {
		fsys = os.DirFS(dir)
		pattern = "*.yaml"
	}

	files, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("recommend: glob catalog: %w", err)
	}
	sort.Strings(files)

	var paths []Path
	for _, name := range files {
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("recommend: read %s: %w", name, err)
		}

		var document catalogFile
		if err := yaml.Unmarshal(raw, &document); err != nil {
			return nil, fmt.Errorf("recommend: parse %s: %w", filepath.Base(name), err)
		}
		paths = append(paths, document.Paths...)
	}

	return NewCatalog(paths)
}

// NewCatalog validates paths and fills in missing path and phase ids from
// their names. Ids must be unique: path ids across the catalog, phase ids
// within their path.
func NewCatalog(paths []Path) (*Catalog, error) {
	catalog := &Catalog{
		paths: make([]Path, 0, len(paths)),
		byID:  make(map[string]int, len(paths)),
	}

	for _, path := range paths {
		if strings.TrimSpace(path.Name) == "" {
			return nil, fmt.Errorf("recommend: path without name")
		}
		if path.ID == "" {
			path.ID = slug.From(path.Name)
		}
		bookType, ok := library.ParseBookType(string(path.BookType))
		if !ok {
			return nil, fmt.Errorf("recommend: path %q: unknown book type %q", path.ID, path.BookType)
		}
		path.BookType = bookType

		if _, duplicate := catalog.byID[path.ID]; duplicate {
			return nil, fmt.Errorf("recommend: duplicate path id %q", path.ID)
		}

		phases := make([]Phase, len(path.Phases))
		seen := make(map[string]bool, len(path.Phases))
		for i, phase := range path.Phases {
			if phase.ID == "" {
				phase.ID = slug.From(phase.Name)
			}
			if phase.ID == "" || seen[phase.ID] {
				return nil, fmt.Errorf("recommend: path %q: missing or duplicate phase id %q", path.ID, phase.ID)
			}
			seen[phase.ID] = true
			phases[i] = phase
		}
		path.Phases = phases

		catalog.byID[path.ID] = len(catalog.paths)
		catalog.paths = append(catalog.paths, path)
	}

	return catalog, nil
}

// Paths returns the paths of bookType in catalog order, or every path when bookType is nil.
func (catalog *Catalog) Paths(bookType *library.BookType) []Path {
	paths := make([]Path, 0, len(catalog.paths))
	for _, path := range catalog.paths {
		if bookType == nil || path.BookType == *bookType {
			paths = append(paths, path)
		}
	}
	return paths
}

// Path looks a path up by id.
func (catalog *Catalog) Path(id string) (Path, bool) {
	index, ok := catalog.byID[id]
	if !ok {
		return Path{}, false
	}
	return catalog.paths[index], true
}
