package main

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/at-ishikawa/randomwords/internal/lorem"
	"github.com/at-ishikawa/randomwords/internal/pdf"
)

const (
	formatHTML     = "html"
	formatMarkdown = "markdown"
	formatPDF      = "pdf"
)

var formats = []string{formatHTML, formatMarkdown, formatPDF}

// FormatFlag is the output format of a lorem document.
type FormatFlag struct {
	format string
}

var _ pflag.Value = (*FormatFlag)(nil)

func (f *FormatFlag) Set(val string) error {
	if !slices.Contains(formats, val) {
		return fmt.Errorf("invalid format: %s. Possible values are %v", val, formats)
	}
	f.format = val
	return nil
}

func (f FormatFlag) String() string {
	return f.format
}

func (f *FormatFlag) Type() string {
	return "format"
}

func newLoremCommand(flags *generatorFlags) *cobra.Command {
	options := lorem.DefaultOptions()
	format := FormatFlag{format: formatMarkdown}
	var output string

	command := &cobra.Command{
		Use:   "lorem [paragraphs]",
		Short: "Print a placeholder document as HTML or Markdown, or write it as a PDF",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				n, err := parseCount(args[0])
				if err != nil {
					return err
				}
				options.Paragraphs = n
			}
			if format.format == formatPDF && output == "" {
				return fmt.Errorf("--output is required for the %s format", formatPDF)
			}

			g, err := newGenerator(cmd.Context(), flags)
			if err != nil {
				return err
			}
			builder, err := lorem.New(g, options)
			if err != nil {
				return fmt.Errorf("lorem.New > %w", err)
			}
			document := builder.Build()

			var content string
			switch format.format {
			case formatPDF:
				pdfPath, err := pdf.WriteMarkdown(document.Markdown(), output)
				if err != nil {
					return fmt.Errorf("pdf.WriteMarkdown > %w", err)
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", pdfPath)
				return err
			case formatHTML:
				if content, err = document.HTML(); err != nil {
					return fmt.Errorf("document.HTML > %w", err)
				}
			default:
				content = document.Markdown()
			}

			if output == "" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), content)
				return err
			}
			if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
				return fmt.Errorf("os.MkdirAll > %w", err)
			}
			if err := os.WriteFile(output, []byte(content), 0644); err != nil {
				return fmt.Errorf("os.WriteFile(%s) > %w", output, err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", output)
			return err
		},
	}

	f := command.Flags()
	f.VarP(&format, "format", "f", fmt.Sprintf("output format. Possible values are %v", formats))
	f.StringVarP(&output, "output", "o", "", "write the document to a file")
	f.BoolVar(&options.Decorate, "decorate", options.Decorate, "add emphasis and strong text")
	f.BoolVar(&options.Links, "links", false, "add links")
	f.BoolVar(&options.Code, "code", false, "add code spans")
	f.BoolVar(&options.Mark, "mark", false, "add highlighted text")
	f.BoolVar(&options.UnorderedLists, "ul", false, "add unordered lists")
	f.BoolVar(&options.OrderedLists, "ol", false, "add ordered lists")
	f.BoolVar(&options.DefinitionLists, "dl", false, "add a definition list")
	f.BoolVar(&options.Blockquotes, "blockquote", false, "add a blockquote")
	f.BoolVar(&options.Headers, "headers", false, "add headers")
	f.BoolVar(&options.Tables, "table", false, "add a table")
	f.BoolVar(&options.HorizontalRules, "hr", false, "add a horizontal rule")
	return command
}
