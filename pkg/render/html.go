package render

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/validoc/pkg/validoc"
)

// HTMLFormatter writes a standalone HTML page.
type HTMLFormatter struct{}

func (f *HTMLFormatter) Format(w io.Writer, doc Document) error {
	return Page(doc).Render(context.Background(), w)
}

func (f *HTMLFormatter) ContentType() string { return "text/html; charset=utf-8" }

// Page renders doc as a complete HTML page.
func Page(doc Document) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		lang := doc.Language
		if lang == "" {
			lang = "en"
		}
		if _, err := fmt.Fprintf(w, "<!DOCTYPE html><html lang=\"%s\"><head><meta charset=\"utf-8\"><title>%s</title></head><body>",
			templ.EscapeString(lang), templ.EscapeString(doc.Validator)); err != nil {
			return err
		}
		if err := Table(doc).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</body></html>")
		return err
	})
}

// Table renders the members of doc as sections with one table each, for
// embedding into other pages.
func Table(doc Document) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, "<h1>%s</h1>", templ.EscapeString(doc.Validator)); err != nil {
			return err
		}
		for _, m := range doc.Members {
			if err := member(m).Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

func member(m validoc.RuleDescriptor) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			"<section data-path=\"%s\" data-depth=\"%d\"><h2>%s</h2><table><thead><tr><th>Validator</th><th>Severity</th><th>On failure</th><th>Message</th></tr></thead><tbody>",
			templ.EscapeString(m.Path), depthOf(m), templ.EscapeString(m.MemberName)); err != nil {
			return err
		}
		for _, r := range m.Rules {
			if _, err := fmt.Fprintf(w, "<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>",
				templ.EscapeString(r.ValidatorName),
				templ.EscapeString(r.FailureSeverity.String()),
				templ.EscapeString(r.OnFailure.String()),
				templ.EscapeString(r.Message()),
			); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</tbody></table></section>")
		return err
	})
}

func depthOf(m validoc.RuleDescriptor) int {
	if len(m.Rules) == 0 {
		return 0
	}
	return m.Rules[0].Depth
}
