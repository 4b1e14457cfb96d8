package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"

	"github.com/itsatony/go-templstore"
)

// validateConfig holds parsed validate command configuration
type validateConfig struct {
	filePath string
	format   string
}

func runValidate(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseValidateFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgMissingFile, err)
		return ExitCodeUsageError
	}

	load, ok := loadFuncFor(cfg.format)
	if !ok {
		fmt.Fprintf(stderr, FmtErrorWithDetail, ErrMsgInvalidFormat, cfg.format)
		return ExitCodeUsageError
	}

	text, err := readInput(cfg.filePath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
		return ExitCodeInputError
	}

	tm, err := load(string(text))
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgValidationFailed, err)
		return ExitCodeValidationError
	}

	printSummary(stdout, tm)
	return ExitCodeSuccess
}

func printSummary(stdout io.Writer, tm templstore.TemplateMap) {
	fmt.Fprintf(stdout, FmtValidSummary, len(tm), tm.Entries())

	namespaces := make([]string, 0, len(tm))
	for namespace := range tm {
		namespaces = append(namespaces, namespace)
	}
	sort.Strings(namespaces)

	for _, namespace := range namespaces {
		mapping := tm[namespace]
		fmt.Fprintf(stdout, FmtNamespaceLine, namespace, mapping.Len())

		names := make([]string, 0, mapping.Len())
		for name := range mapping {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			tmpl, _ := mapping.Get(name)
			for _, variable := range templstore.TemplateVariables(tmpl) {
				fmt.Fprintf(stdout, FmtVariableLine, namespace, name, variable)
			}
		}
	}
}

func parseValidateFlags(args []string) (*validateConfig, error) {
	fs := flag.NewFlagSet(CmdNameValidate, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	cfg := &validateConfig{}

	fs.StringVar(&cfg.filePath, FlagFile, "", "")
	fs.StringVar(&cfg.filePath, FlagFileShort, "", "")
	fs.StringVar(&cfg.format, FlagFormat, FlagDefaultFormat, "")
	fs.StringVar(&cfg.format, FlagFormatShort, FlagDefaultFormat, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.filePath == "" {
		return nil, errors.New(ErrMsgMissingFile)
	}

	return cfg, nil
}
