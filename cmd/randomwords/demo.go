package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/randomwords/internal/dictionary"
	"github.com/at-ishikawa/randomwords/internal/generator"
	"github.com/at-ishikawa/randomwords/internal/terminal"
)

func newDemoCommand(flags *generatorFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print a showcase of every operation over every dictionary source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			catalog := dictionary.NewCatalog(cfg.Dictionaries.UserDirectory)
			sources, err := catalog.Sources()
			if err != nil {
				return fmt.Errorf("catalog.Sources > %w", err)
			}
			var dictionaries []*dictionary.Dictionary
			for _, source := range sources {
				d, err := catalog.Load(source.Name)
				if err != nil {
					slog.Default().Warn("skipping dictionary",
						slog.String("source", source.Name),
						slog.Any("error", err),
					)
					continue
				}
				dictionaries = append(dictionaries, d)
			}

			var opts []generator.Option
			if flags.changed("seed") {
				opts = append(opts, generator.WithRandomSource(generator.NewRandomSource(flags.seed)))
			}
			printer, err := terminal.NewPrinter(cmd.OutOrStdout(), dictionaries, opts...)
			if err != nil {
				return fmt.Errorf("terminal.NewPrinter > %w", err)
			}
			return printer.PrintAll()
		},
	}
}
