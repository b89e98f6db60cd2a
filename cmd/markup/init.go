package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vango-dev/markup/internal/config"
	"github.com/vango-dev/markup/internal/errors"
)

func initCmd(c *cli) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a markup.json with default settings",
		Long: `Init writes markup.json to the current directory with every setting at
its default value.

With --force, an existing markup.json is rewritten with its missing
settings filled in. Values already present are kept.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}

			if config.Exists(wd) {
				if !force {
					return errors.New("E023").
						WithSuggestion("Pass --force to fill in missing settings")
				}
				cfg, err := config.Load(wd)
				if err != nil {
					return err
				}
				if err := cfg.Save(); err != nil {
					return err
				}
				fmt.Fprintf(c.stdout, "Updated %s\n", cfg.Path())
				return nil
			}

			cfg := config.New()
			if err := cfg.SaveTo(filepath.Join(wd, config.ConfigFileName)); err != nil {
				return err
			}
			fmt.Fprintf(c.stdout, "Created %s\n", cfg.Path())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Rewrite an existing markup.json")

	return cmd
}
