package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/itsatony/go-templstore"
)

// resolveConfig holds parsed resolve command configuration
type resolveConfig struct {
	filePath    string
	partialPath string
	format      string
	key         string
	args        stringList
	outputPath  string
}

func runResolve(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseResolveFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgMissingKey, err)
		return ExitCodeUsageError
	}

	load, ok := loadFuncFor(cfg.format)
	if !ok {
		fmt.Fprintf(stderr, FmtErrorWithDetail, ErrMsgInvalidFormat, cfg.format)
		return ExitCodeUsageError
	}

	namespace, name, err := splitKey(cfg.key)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithDetail, ErrMsgInvalidKey, cfg.key)
		return ExitCodeUsageError
	}

	store, code := buildStore(cfg, load, stdin, stderr)
	if code != ExitCodeSuccess {
		return code
	}

	resolver, err := templstore.NewResolver(store)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgLoadFailed, err)
		return ExitCodeInputError
	}

	tmpl, ok := resolver.Resolve(namespace, name)
	if !ok {
		fmt.Fprintf(stderr, FmtErrorWithDetail, ErrMsgNotFound, cfg.key)
		return ExitCodeNotFound
	}

	result := tmpl
	if len(cfg.args) > 0 {
		named, err := parseNamedArgs(cfg.args)
		if err != nil {
			fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidArg, err)
			return ExitCodeUsageError
		}
		result, err = templstore.Apply(tmpl, named)
		if err != nil {
			fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgApplyFailed, err)
			return ExitCodeError
		}
	}

	if err := writeOutput(cfg.outputPath, []byte(result+"\n"), stdout); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgWriteFailed, err)
		return ExitCodeError
	}

	return ExitCodeSuccess
}

// buildStore assembles the backing store for the resolve command: the
// templates file, optionally layered under a partial override file. Stdin
// input is buffered through a memory store.
func buildStore(cfg *resolveConfig, load templstore.LoadFunc, stdin io.Reader, stderr io.Writer) (templstore.TemplateStore, int) {
	var def templstore.TemplateStore
	if cfg.filePath == InputSourceStdin {
		text, err := readInput(cfg.filePath, stdin)
		if err != nil {
			fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
			return nil, ExitCodeInputError
		}
		def = templstore.NewMemoryStore(string(text), load)
	} else {
		def = templstore.NewFileStore(cfg.filePath, load)
	}

	if cfg.partialPath == "" {
		return def, ExitCodeSuccess
	}
	return templstore.NewPartialStore(def, templstore.NewFileStore(cfg.partialPath, load)), ExitCodeSuccess
}

func parseResolveFlags(args []string) (*resolveConfig, error) {
	fs := flag.NewFlagSet(CmdNameResolve, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	cfg := &resolveConfig{}

	fs.StringVar(&cfg.filePath, FlagFile, "", "")
	fs.StringVar(&cfg.filePath, FlagFileShort, "", "")
	fs.StringVar(&cfg.partialPath, FlagPartial, "", "")
	fs.StringVar(&cfg.partialPath, FlagPartialShort, "", "")
	fs.StringVar(&cfg.format, FlagFormat, FlagDefaultFormat, "")
	fs.StringVar(&cfg.format, FlagFormatShort, FlagDefaultFormat, "")
	fs.StringVar(&cfg.key, FlagKey, "", "")
	fs.StringVar(&cfg.key, FlagKeyShort, "", "")
	fs.Var(&cfg.args, FlagArg, "")
	fs.Var(&cfg.args, FlagArgShort, "")
	fs.StringVar(&cfg.outputPath, FlagOutput, FlagDefaultOutput, "")
	fs.StringVar(&cfg.outputPath, FlagOutputShort, FlagDefaultOutput, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Validation
	if cfg.filePath == "" {
		return nil, errors.New(ErrMsgMissingFile)
	}
	if cfg.key == "" {
		return nil, errors.New(ErrMsgMissingKey)
	}

	return cfg, nil
}

// splitKey splits "namespace.name" at the first dot; names may themselves
// contain dots.
func splitKey(key string) (namespace, name string, err error) {
	namespace, name, found := strings.Cut(key, ".")
	if !found || namespace == "" || name == "" {
		return "", "", errors.New(ErrMsgInvalidKey)
	}
	return namespace, name, nil
}

// parseNamedArgs converts repeated name=value flags into a map
func parseNamedArgs(pairs []string) (map[string]string, error) {
	named := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		name, value, found := strings.Cut(pair, "=")
		if !found || name == "" {
			return nil, errors.New(ErrMsgInvalidArg)
		}
		named[name] = value
	}
	return named, nil
}
