package main

import (
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

func newCatalogCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Print the message templates of the current language",
		Long: `Print the message templates of the language selected by --lang as JSON.

The output includes the templates merged from --catalog and can be edited and
passed back through --catalog.

Examples:
  validoc catalog --lang de
  validoc catalog --catalog ./messages > merged.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := a.catalog.ExportJSON(a.cfg.Language)
			if err != nil {
				return err
			}
			var tree map[string]any
			if err := json.Unmarshal([]byte(raw), &tree); err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]any{a.cfg.Language: tree})
		},
	}
}
