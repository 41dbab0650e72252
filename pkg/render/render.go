package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrymomot/validoc/pkg/validoc"
)

// Format names an output format.
type Format string

const (
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
	FormatText     Format = "text"
	FormatHTML     Format = "html"
)

// ErrUnknownFormat is returned by New for unsupported formats.
var ErrUnknownFormat = errors.New("render: unknown format")

// Document is the documentation of one validator.
type Document struct {
	Validator string                   `json:"validator" yaml:"validator"`
	Language  string                   `json:"language,omitempty" yaml:"language,omitempty"`
	Nested    bool                     `json:"nested" yaml:"nested"`
	Members   []validoc.RuleDescriptor `json:"members" yaml:"members"`
}

// Formatter writes a Document in one format.
type Formatter interface {
	Format(w io.Writer, doc Document) error
	ContentType() string
}

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatYAML, FormatMarkdown, FormatHTML}
}

// New returns the formatter for format. Names are case-insensitive and "md"
// is accepted for Markdown.
func New(format Format) (Formatter, error) {
	switch Format(strings.ToLower(string(format))) {
	case FormatJSON:
		return &JSONFormatter{Indent: true}, nil
	case FormatYAML, "yml":
		return &YAMLFormatter{}, nil
	case FormatMarkdown, "md":
		return &MarkdownFormatter{}, nil
	case FormatText, "":
		return &TextFormatter{}, nil
	case FormatHTML:
		return &HTMLFormatter{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
