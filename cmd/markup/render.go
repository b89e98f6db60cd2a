package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/markup/internal/config"
	"github.com/vango-dev/markup/internal/errors"
	"github.com/vango-dev/markup/pkg/handler"
)

func renderCmd(c *cli) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "render <page>",
		Short: "Render a demo page",
		Long: `Render writes one of the registered pages to standard output, a file,
or S3. Run with no arguments to list the pages.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := handler.NewRegistry()
			registerPages(reg)

			if len(args) == 0 {
				for _, name := range reg.Names() {
					fmt.Fprintln(c.stdout, name)
				}
				return nil
			}

			m, ok := reg.Lookup(args[0])
			if !ok {
				return errors.New("E040").
					WithDetail(fmt.Sprintf("No page named %q.", args[0])).
					WithSuggestion("Available pages: " + strings.Join(reg.Names(), ", "))
			}

			cfg, err := config.LoadFromWorkingDir()
			if err != nil {
				return err
			}
			return writeOutput(cmd.Context(), cfg, output, m, c.stdout, "E001")
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "-", "Output location: -, a file path, or s3://bucket/key")

	return cmd
}
