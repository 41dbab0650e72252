package render

import (
	"io"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// JSONFormatter writes the document as JSON.
type JSONFormatter struct {
	Indent bool
}

func (f *JSONFormatter) Format(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	if f.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(doc)
}

func (f *JSONFormatter) ContentType() string { return "application/json; charset=utf-8" }

// YAMLFormatter writes the document as YAML.
type YAMLFormatter struct{}

func (f *YAMLFormatter) Format(w io.Writer, doc Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

func (f *YAMLFormatter) ContentType() string { return "application/yaml; charset=utf-8" }
