package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/randomwords/internal/generator"
)

func parseCount(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", generator.ErrInvalidConfiguration, arg)
	}
	return n, nil
}

func newWordCommand(flags *generatorFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "word",
		Short: "Print one random word",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := newGenerator(cmd.Context(), flags)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), g.Word())
			return err
		},
	}
}

func newWordsCommand(flags *generatorFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "words <count>",
		Short: "Print a number of words following the sentence pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseCount(args[0])
			if err != nil {
				return err
			}
			g, err := newGenerator(cmd.Context(), flags)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), g.Words(n))
			return err
		},
	}
}

func newCharactersCommand(flags *generatorFlags) *cobra.Command {
	var (
		wholeWords bool
		whitespace bool
		article    bool
	)
	command := &cobra.Command{
		Use:   "characters <min> [max]",
		Short: "Print a string of an exact length or a length range",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			minLength, err := parseCount(args[0])
			if err != nil {
				return err
			}
			maxLength := 0
			if len(args) > 1 {
				if maxLength, err = parseCount(args[1]); err != nil {
					return err
				}
			}

			g, err := newGenerator(cmd.Context(), flags)
			if err != nil {
				return err
			}
			s, err := g.Characters(minLength, maxLength,
				generator.WholeWords(wholeWords),
				generator.Whitespace(whitespace),
				generator.StartWithArticle(article),
			)
			if err != nil {
				return fmt.Errorf("generator.Characters > %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), s)
			return err
		},
	}
	command.Flags().BoolVar(&wholeWords, "whole-words", true, "never cut the last word")
	command.Flags().BoolVar(&whitespace, "whitespace", true, "separate words with spaces")
	command.Flags().BoolVar(&article, "article", true, "start with an article")
	return command
}

func newSentenceCommand(flags *generatorFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "sentence [length]",
		Short: "Print a sentence of at least length characters, or of the configured length",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			length := 0
			if len(args) > 0 {
				var err error
				if length, err = parseCount(args[0]); err != nil {
					return err
				}
			}
			g, err := newGenerator(cmd.Context(), flags)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), g.Sentence(length))
			return err
		},
	}
}

func newSentencesCommand(flags *generatorFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "sentences <count>",
		Short: "Print sentences, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseCount(args[0])
			if err != nil {
				return err
			}
			g, err := newGenerator(cmd.Context(), flags)
			if err != nil {
				return err
			}
			for _, sentence := range g.Sentences(n) {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), sentence); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newParagraphCommand(flags *generatorFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "paragraph [sentences]",
		Short: "Print a paragraph of the configured or given number of sentences",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := newGenerator(cmd.Context(), flags)
			if err != nil {
				return err
			}

			n := g.Config().ParagraphLength
			if len(args) > 0 {
				if n, err = parseCount(args[0]); err != nil {
					return err
				}
			}
			paragraph, err := g.Paragraph(n)
			if err != nil {
				return fmt.Errorf("generator.Paragraph > %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), paragraph)
			return err
		},
	}
}

func newNameCommand(flags *generatorFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "name",
		Short: "Print a random personal name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := newGenerator(cmd.Context(), flags)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), g.Name())
			return err
		},
	}
}
