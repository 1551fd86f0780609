package storage

import (
	"embed"
	"io/fs"
	"path"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/life-patterns/model"
)

const patternExt = ".txt"

//go:embed patterns/*.txt
var defaultPatterns embed.FS

// DefaultPatternLibrary loads the still lifes, oscillators and glider shipped with the binary
func DefaultPatternLibrary() (*model.PatternLibrary, error) {
	return LoadPatternLibrary(defaultPatterns, "patterns")
}

/*
LoadPatternLibrary turns every *.txt file of dir into a pattern named after
the file without its extension. Files are registered in lexical order, which
is the tie-break order of classification. A directory without pattern files
yields an empty library.
*/
func LoadPatternLibrary(fsys fs.FS, dir string) (*model.PatternLibrary, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadPatternLibrary] failed to read directory: %+v", dir)
	}

	lib := model.NewPatternLibrary()
	for _, entry := range entries {
		if !entry.Type().IsRegular() || path.Ext(entry.Name()) != patternExt {
			continue
		}
		p, err := loadPattern(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		if err = lib.Add(p); err != nil {
			return nil, errors.Wrapf(err, "[LoadPatternLibrary] failed to register: %+v", entry.Name())
		}
	}
	return lib, nil
}

func loadPattern(fsys fs.FS, name string) (*model.Pattern, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "[loadPattern] failed to open file: %+v", name)
	}
	defer f.Close()

	grid, err := ParseGrid(f)
	if err != nil {
		return nil, errors.Wrapf(err, "[loadPattern] failed to parse file: %+v", name)
	}

	p, err := model.NewPattern(strings.TrimSuffix(path.Base(name), patternExt), grid.Rows())
	return p, errors.Wrapf(err, "[loadPattern] invalid pattern: %+v", name)
}
