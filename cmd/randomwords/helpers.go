package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/at-ishikawa/randomwords/internal/config"
	"github.com/at-ishikawa/randomwords/internal/dictionary"
	"github.com/at-ishikawa/randomwords/internal/generator"
)

// LengthFlag is a sentence length tier accepting any prefix of a tier name.
type LengthFlag struct {
	tier generator.LengthTier
}

var _ pflag.Value = (*LengthFlag)(nil)

func (l *LengthFlag) Set(val string) error {
	tier, err := generator.ParseLengthTier(val)
	if err != nil {
		return fmt.Errorf("invalid length: %s. Possible values are %v", val, generator.LengthTiers)
	}
	l.tier = tier
	return nil
}

func (l LengthFlag) String() string {
	return l.tier.String()
}

func (l *LengthFlag) Type() string {
	return "length"
}

// generatorFlags are the persistent flags that override config.yml.
type generatorFlags struct {
	source              string
	seed                uint64
	length              LengthFlag
	extendedPunctuation bool
	fromDatabase        bool

	flagSet *pflag.FlagSet
}

func (f *generatorFlags) register(flags *pflag.FlagSet) {
	f.flagSet = flags
	flags.StringVarP(&f.source, "source", "s", "", "dictionary source name or trigger")
	flags.Uint64Var(&f.seed, "seed", 0, "seed for reproducible output")
	flags.VarP(&f.length, "length", "l", fmt.Sprintf("sentence length. Possible values are %v", generator.LengthTiers))
	flags.BoolVarP(&f.extendedPunctuation, "extended-punctuation", "e", false, "use extended punctuation")
	flags.BoolVar(&f.fromDatabase, "from-db", false, "load the dictionary from the configured database")
}

func (f *generatorFlags) changed(name string) bool {
	return f.flagSet != nil && f.flagSet.Changed(name)
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

// newGenerator loads config.yml, applies the flags and opens a session over the
// selected dictionary.
func newGenerator(ctx context.Context, flags *generatorFlags) (*generator.Generator, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if flags.changed("source") {
		cfg.Source = flags.source
	}

	generationConfig, err := cfg.GenerationConfig()
	if err != nil {
		return nil, fmt.Errorf("cfg.GenerationConfig > %w", err)
	}
	if flags.changed("length") {
		generationConfig.SentenceLength = flags.length.tier
	}
	if flags.changed("extended-punctuation") {
		generationConfig.ExtendedPunctuation = flags.extendedPunctuation
	}

	d, err := loadDictionary(ctx, cfg, flags.fromDatabase)
	if err != nil {
		return nil, err
	}
	slog.Default().Debug("dictionary loaded",
		slog.String("source", d.Name()),
		slog.Int("words", len(d.AllWords())),
	)

	var opts []generator.Option
	if flags.changed("seed") {
		opts = append(opts, generator.WithRandomSource(generator.NewRandomSource(flags.seed)))
	}
	g, err := generator.New(d, generationConfig, opts...)
	if err != nil {
		return nil, fmt.Errorf("generator.New > %w", err)
	}
	return g, nil
}

func loadDictionary(ctx context.Context, cfg *config.Config, fromDatabase bool) (*dictionary.Dictionary, error) {
	if !fromDatabase {
		d, err := dictionary.NewCatalog(cfg.Dictionaries.UserDirectory).Load(cfg.Source)
		if err != nil {
			return nil, fmt.Errorf("dictionary.Catalog.Load(%s) > %w", cfg.Source, err)
		}
		return d, nil
	}

	var d *dictionary.Dictionary
	err := withRepository(ctx, cfg, func(repository *dictionary.DBRepository) error {
		var err error
		d, err = repository.Load(ctx, cfg.Source)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("dictionary.DBRepository.Load(%s) > %w", cfg.Source, err)
	}
	return d, nil
}
