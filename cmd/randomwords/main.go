package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	configFile string
)

func main() {
	rootCommand := newRootCommand()
	if err := rootCommand.Execute(); err != nil {
		if _, fprintfErr := fmt.Fprintf(os.Stderr, "failed to execute a command: %+v\n", err); fprintfErr != nil {
			panic(fmt.Errorf("failed to output an error: %w. Reason: %w", err, fprintfErr))
		}
		os.Exit(1)
	}
	os.Exit(0)
}

func newRootCommand() *cobra.Command {
	var debugMode bool
	flags := &generatorFlags{}

	rootCommand := &cobra.Command{
		Use:           "randomwords",
		Short:         "Generate random words, sentences and paragraphs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(debugMode)
			return nil
		},
	}
	persistentFlags := rootCommand.PersistentFlags()
	persistentFlags.StringVar(&configFile, "config", "", "config file path")
	persistentFlags.BoolVar(&debugMode, "debug", false, "Enable debug mode")
	flags.register(persistentFlags)

	rootCommand.AddCommand(
		newWordCommand(flags),
		newWordsCommand(flags),
		newCharactersCommand(flags),
		newSentenceCommand(flags),
		newSentencesCommand(flags),
		newParagraphCommand(flags),
		newNameCommand(flags),
		newDemoCommand(flags),
		newLoremCommand(flags),
		newDictionaryCommand(),
	)
	return rootCommand
}

// setupLogger configures the default logger based on debug mode
func setupLogger(debugMode bool) {
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	}

	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})),
	)
}
