package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/randomwords/internal/config"
	"github.com/at-ishikawa/randomwords/internal/database"
	"github.com/at-ishikawa/randomwords/internal/dictionary"
	"github.com/at-ishikawa/randomwords/internal/dictionary/remote"
)

func newDictionaryCommand() *cobra.Command {
	rootCommand := cobra.Command{
		Use:   "dictionary",
		Short: "Manage dictionary sources",
	}

	var fromDatabase bool
	sourcesCommand := &cobra.Command{
		Use:   "sources",
		Short: "List available dictionary sources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			var sources []dictionary.SourceInfo
			if fromDatabase {
				err = withRepository(cmd.Context(), cfg, func(repository *dictionary.DBRepository) error {
					sources, err = repository.Sources(cmd.Context())
					return err
				})
			} else {
				sources, err = dictionary.NewCatalog(cfg.Dictionaries.UserDirectory).Sources()
			}
			if err != nil {
				return fmt.Errorf("failed to list sources: %w", err)
			}
			return printSources(cmd.OutOrStdout(), sources)
		},
	}
	sourcesCommand.Flags().BoolVar(&fromDatabase, "from-db", false, "list the sources imported into the database")

	var remoteURL string
	downloadCommand := &cobra.Command{
		Use:   "download <name>",
		Short: "Download a dictionary source into the user directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if remoteURL == "" {
				remoteURL = cfg.Dictionaries.RemoteURL
			}
			if remoteURL == "" {
				return errors.New("no remote URL. Set dictionaries.remote_url or --url")
			}

			dir, err := remote.NewDownloader(remoteURL, remote.DefaultMaxRetryAttempts).
				Download(cmd.Context(), args[0], cfg.Dictionaries.UserDirectory)
			if err != nil {
				return fmt.Errorf("remote.Downloader.Download > %w", err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "downloaded %s\n", dir)
			return err
		},
	}
	downloadCommand.Flags().StringVar(&remoteURL, "url", "", "base URL of the remote dictionaries")

	rootCommand.AddCommand(
		sourcesCommand,
		downloadCommand,
		&cobra.Command{
			Use:   "create <name>",
			Short: "Create a user dictionary from the builtin english source",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := loadConfig()
				if err != nil {
					return fmt.Errorf("failed to load configuration: %w", err)
				}
				dir, err := dictionary.NewCatalog(cfg.Dictionaries.UserDirectory).CreateUserDictionary(args[0])
				if err != nil {
					return fmt.Errorf("catalog.CreateUserDictionary > %w", err)
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", dir)
				return err
			},
		},
		&cobra.Command{
			Use:   "import [name...]",
			Short: "Import dictionary sources into the configured database",
			Long:  "Import dictionary sources into the configured database. All sources are imported when no name is given.",
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := loadConfig()
				if err != nil {
					return fmt.Errorf("failed to load configuration: %w", err)
				}

				catalog := dictionary.NewCatalog(cfg.Dictionaries.UserDirectory)
				names := args
				if len(names) == 0 {
					sources, err := catalog.Sources()
					if err != nil {
						return fmt.Errorf("catalog.Sources > %w", err)
					}
					for _, source := range sources {
						names = append(names, source.Name)
					}
				}

				ctx := cmd.Context()
				return withRepository(ctx, cfg, func(repository *dictionary.DBRepository) error {
					for _, name := range names {
						d, err := catalog.Load(name)
						if err != nil {
							return fmt.Errorf("catalog.Load(%s) > %w", name, err)
						}
						if err := repository.Save(ctx, d); err != nil {
							return fmt.Errorf("repository.Save(%s) > %w", d.Name(), err)
						}
						if _, err := fmt.Fprintf(cmd.OutOrStdout(), "imported %s (%d words)\n", d.Name(), len(d.AllWords())); err != nil {
							return err
						}
					}
					return nil
				})
			},
		},
	)
	return &rootCommand
}

func withRepository(ctx context.Context, cfg *config.Config, fn func(repository *dictionary.DBRepository) error) error {
	db, err := database.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("database.Open > %w", err)
	}
	defer func() {
		_ = db.Close()
	}()

	repository := dictionary.NewDBRepository(db)
	if err := repository.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("repository.EnsureSchema > %w", err)
	}
	return fn(repository)
}

func printSources(w io.Writer, sources []dictionary.SourceInfo) error {
	for _, source := range sources {
		kind := "user"
		if source.Builtin {
			kind = "builtin"
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t[%s]\t%s\n", source.Name, kind, strings.Join(source.Triggers, ", "), source.Description); err != nil {
			return err
		}
	}
	return nil
}
