package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// TextFormatter writes an aligned table, indenting nested members.
type TextFormatter struct{}

func (f *TextFormatter) Format(w io.Writer, doc Document) error {
	if doc.Validator != "" {
		if _, err := fmt.Fprintf(w, "%s\n\n", doc.Validator); err != nil {
			return err
		}
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "MEMBER\tVALIDATOR\tSEVERITY\tON FAILURE\tMESSAGE")
	for _, m := range doc.Members {
		for i, r := range m.Rules {
			member := ""
			if i == 0 {
				member = strings.Repeat("  ", r.Depth) + m.MemberName
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
				member, r.ValidatorName, r.FailureSeverity, r.OnFailure, oneLine(r.Message()))
		}
	}
	return tw.Flush()
}

func (f *TextFormatter) ContentType() string { return "text/plain; charset=utf-8" }

// oneLine folds line breaks of custom messages into spaces.
func oneLine(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}
	var b strings.Builder
	sc := bufio.NewScanner(strings.NewReader(s))
	for sc.Scan() {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strings.TrimSpace(sc.Text()))
	}
	return b.String()
}
