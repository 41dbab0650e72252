package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/validoc/pkg/logger"
	"github.com/dmitrymomot/validoc/pkg/render"
)

type docFlags struct {
	deep   bool
	format string
	output string
	strict bool
}

func newDocCmd(a *app) *cobra.Command {
	var f docFlags
	formats := make([]string, 0, len(render.Formats()))
	for _, format := range render.Formats() {
		formats = append(formats, string(format))
	}

	cmd := &cobra.Command{
		Use:   "doc NAME",
		Short: "Print the rules of a validator",
		Long: `Print the rules of a validator grouped by member.

Members appear in declaration order. With --deep every delegation to a nested
validator is followed by the rules of that validator, with member paths such as
"Address.Line1". Delegations that cannot be expanded are reported as warnings;
--strict turns them into an error.

Examples:
  validoc doc CustomerValidator
  validoc doc CustomerValidator --deep --format markdown -o customer.md
  validoc doc SignupValidator --format json --lang de`,
		Args: cobra.ExactArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 || a.registry == nil {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return a.registry.Names(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.document(cmd, args[0], f)
		},
	}

	cmd.Flags().BoolVar(&f.deep, "deep", false, "expand nested validators")
	cmd.Flags().StringVarP(&f.format, "format", "f", string(render.FormatText), "output format: "+strings.Join(formats, ", "))
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "write to this file instead of stdout")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "fail when a delegation cannot be expanded")
	return cmd
}

func (a *app) document(cmd *cobra.Command, name string, f docFlags) error {
	ctx := cmd.Context()

	v, err := a.registry.Get(name)
	if err != nil {
		return err
	}
	formatter, err := render.New(render.Format(f.format))
	if err != nil {
		return err
	}

	members, docErr := a.builder().Document(v, f.deep)
	if members == nil && docErr != nil {
		return docErr
	}
	if docErr != nil {
		a.logger.WarnContext(ctx, "documentation incomplete", logger.Validator(v.Name()), logger.Error(docErr))
	}

	doc := render.Document{
		Validator: v.Name(),
		Language:  a.cfg.Language,
		Nested:    f.deep,
		Members:   members,
	}
	write := func(w io.Writer) error {
		if err := formatter.Format(w, doc); err != nil {
			return fmt.Errorf("rendering %s: %w", f.format, err)
		}
		return nil
	}
	if err := writeOutput(cmd.OutOrStdout(), f.output, write); err != nil {
		return err
	}
	if f.strict && docErr != nil {
		return docErr
	}
	return nil
}

// createFile opens output files; replaced in tests.
var createFile = func(name string) (io.WriteCloser, error) { return os.Create(name) }

// writeOutput runs write against stdout, or against the file at path when
// one is given. Close errors of the file are returned.
func writeOutput(stdout io.Writer, path string, write func(io.Writer) error) error {
	if path == "" {
		return write(stdout)
	}
	file, err := createFile(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if err := write(file); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing output file: %w", err)
	}
	return nil
}
