package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/orbit-social/orbit/config"
)

var (
	//go:embed all:galleries
	galleryFS embed.FS
)

// DefaultGallery is the gallery shown when no items file is given
const DefaultGallery = "default"

// GalleryLoader reads the gallery documents bundled with the binary
type GalleryLoader struct {
	fsys  fs.FS
	cache map[string]*config.ItemsFile
}

func NewGalleryLoader() *GalleryLoader {
	return &GalleryLoader{
		fsys:  galleryFS,
		cache: make(map[string]*config.ItemsFile),
	}
}

// Names lists the bundled galleries, sorted
func (l *GalleryLoader) Names() []string {
	entries, err := fs.ReadDir(l.fsys, "galleries")
	if err != nil {
		panic(fmt.Sprintf("Failed to read galleries directory: %v", err))
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && path.Ext(entry.Name()) == ".yaml" {
			names = append(names, strings.TrimSuffix(entry.Name(), ".yaml"))
		}
	}
	sort.Strings(names)
	return names
}

// Load returns the bundled gallery with the given name
func (l *GalleryLoader) Load(name string) (*config.ItemsFile, error) {
	if f, ok := l.cache[name]; ok {
		return f, nil
	}

	f, err := config.LoadItems(l.fsys, path.Join("galleries", name+".yaml"))
	if err != nil {
		return nil, err
	}
	l.cache[name] = f
	return f, nil
}

// MustLoad is Load for galleries that ship with the binary
func (l *GalleryLoader) MustLoad(name string) *config.ItemsFile {
	f, err := l.Load(name)
	if err != nil {
		panic(fmt.Sprintf("Failed to load gallery %s: %v", name, err))
	}
	return f
}

var (
	galleryLoader = NewGalleryLoader()
)

// DefaultItems returns the bundled default gallery
func DefaultItems() *config.ItemsFile {
	return galleryLoader.MustLoad(DefaultGallery)
}
