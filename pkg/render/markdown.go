package render

import (
	"fmt"
	"io"
	"strings"
)

// MarkdownFormatter writes one table per member.
type MarkdownFormatter struct{}

var markdownEscaper = strings.NewReplacer("|", `\|`, "\n", " ", "\r", "")

func (f *MarkdownFormatter) Format(w io.Writer, doc Document) error {
	var b strings.Builder
	if doc.Validator != "" {
		fmt.Fprintf(&b, "# %s\n\n", doc.Validator)
	}
	for _, m := range doc.Members {
		heading := strings.Repeat("#", min(2+depthOf(m), 6))
		fmt.Fprintf(&b, "%s %s", heading, m.MemberName)
		if strings.Contains(m.Path, ".") {
			fmt.Fprintf(&b, " (`%s`)", m.Path)
		}
		b.WriteString("\n\n| Validator | Severity | On failure | Message |\n|---|---|---|---|\n")
		for _, r := range m.Rules {
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
				markdownEscaper.Replace(r.ValidatorName),
				r.FailureSeverity,
				r.OnFailure,
				markdownEscaper.Replace(r.Message()),
			)
		}
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func (f *MarkdownFormatter) ContentType() string { return "text/markdown; charset=utf-8" }
