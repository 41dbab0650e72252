package i18n

import (
	"context"
	"path/filepath"
	"strings"
)

// Parser decodes catalog file content.
type Parser interface {
	// Parse returns templates keyed by language code. Each language holds a
	// nested tree of template strings.
	Parse(ctx context.Context, content string) (map[string]map[string]any, error)

	// SupportsFileExtension reports whether the parser handles ext. The leading
	// dot is optional.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns a parser based on the file extension, or nil if
// the extension is unknown.
func NewParserForFile(filename string) Parser {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")

	switch strings.ToLower(ext) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}
