// Package render turns documented rules into JSON, YAML, Markdown, plain
// text or HTML.
//
//	f, err := render.New(render.FormatMarkdown)
//	if err != nil {
//		return err
//	}
//	return f.Format(os.Stdout, render.Document{Validator: "CustomerValidator", Members: members})
//
// Severity and cascade mode are stringified here and nowhere earlier; an
// undeclared severity renders as an empty cell. Missing messages render as
// null in JSON and YAML and as an empty cell elsewhere.
package render
