package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"

	"github.com/vango-dev/markup/internal/errors"
)

func errorsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "errors [code]",
		Short: "List error codes or explain one",
		Example: `  markup errors
  markup errors E041`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				tw := tabwriter.NewWriter(c.stdout, 0, 4, 2, ' ', 0)
				for _, code := range errors.GetAllCodes() {
					t, _ := errors.GetTemplate(code)
					fmt.Fprintf(tw, "%s\t%s\t%s\n", code, t.Category, t.Message)
				}
				return tw.Flush()
			}

			code := strings.ToUpper(args[0])
			t, ok := errors.GetTemplate(code)
			if !ok {
				return errors.Newf(errors.CategoryCLI, "unknown error code %q", args[0]).
					WithSuggestion("Run 'markup errors' to list every code")
			}
			fmt.Fprintf(c.stdout, "%s: %s (%s)\n\n%s\n", code, t.Message, t.Category, wordwrap.String(t.Detail, 70))
			return nil
		},
	}
}
