package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"portfolio-backend/internal/domains/portfolio"
)

type options struct {
	inputPath    string
	outputDir    string
	siteTemplate string
	designTheme  string
	validate     bool
}

func parseOptions(args []string) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("portfolio-cli", flag.ContinueOnError)
	fs.StringVar(&opts.inputPath, "input", "", "path to a JSON profile or resume file")
	fs.StringVar(&opts.outputDir, "output-dir", "dist", "directory to write the generated site into")
	fs.StringVar(&opts.siteTemplate, "site-template", string(portfolio.DefaultTemplateMode), "site template: portfolio, cv or hybrid")
	fs.StringVar(&opts.designTheme, "design-theme", string(portfolio.DefaultDesignTheme), "design theme: classic, modern, contrast or artistic")
	fs.BoolVar(&opts.validate, "validate", false, "mark the workflow state in -output-dir as validated instead of generating")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return opts, nil
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	opts, err := parseOptions(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	if opts.validate {
		res, err := portfolio.MarkValidated(opts.outputDir)
		if err != nil {
			log.Fatal().Err(err).Msg("Validation failed")
		}
		printJSON(res)
		return
	}

	if opts.inputPath == "" {
		fmt.Fprintln(os.Stderr, "usage: portfolio-cli -input profile.json [-output-dir dir] [-site-template mode] [-design-theme theme]")
		os.Exit(2)
	}

	payload, err := os.ReadFile(opts.inputPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", opts.inputPath).Msg("Cannot read input file")
	}
	in, err := portfolio.ParseInput(payload)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot parse input file")
	}

	gen := &portfolio.Generator{}
	res, err := gen.Generate(in, opts.outputDir,
		portfolio.TemplateMode(opts.siteTemplate), portfolio.DesignTheme(opts.designTheme))
	if err != nil {
		log.Fatal().Err(err).Msg("Generation failed")
	}
	printJSON(res)
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		log.Fatal().Err(err).Msg("Cannot encode result")
	}
}
