package i18n

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// NewPathAdapter returns an adapter for a catalog file or for a directory of
// catalog files. The parser follows the file extension; a directory may mix
// YAML and JSON files.
func NewPathAdapter(path string) (TranslationAdapter, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	if info.IsDir() {
		return dirAdapter{
			path: path,
			adapters: []*DirectoryAdapter{
				NewDirectoryAdapter(NewYAMLParser(), path),
				NewDirectoryAdapter(NewJSONParser(), path),
			},
		}, nil
	}

	parser := NewParserForFile(path)
	if parser == nil {
		return nil, errors.Join(ErrUnsupportedFileType, fmt.Errorf("file '%s'", path))
	}
	return NewFileAdapter(parser, path), nil
}

// dirAdapter merges the catalogs of one directory read with several parsers.
// Parsers without matching files are skipped.
type dirAdapter struct {
	path     string
	adapters []*DirectoryAdapter
}

func (d dirAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	all := make(map[string]map[string]any)
	loaded := false
	for _, a := range d.adapters {
		catalog, err := a.Load(ctx)
		if errors.Is(err, ErrNoTranslationFiles) {
			continue
		}
		if err != nil {
			return nil, err
		}
		for lang, tree := range catalog {
			if all[lang] == nil {
				all[lang] = make(map[string]any)
			}
			mergeTree(all[lang], tree)
		}
		loaded = true
	}
	if !loaded {
		return nil, errors.Join(ErrNoTranslationFiles, fmt.Errorf("directory '%s'", d.path))
	}
	return all, nil
}
