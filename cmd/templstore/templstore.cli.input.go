package main

import (
	"io"
	"os"

	"github.com/itsatony/go-templstore"
)

// readInput reads content from a file or stdin
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == InputSourceStdin {
		return io.ReadAll(stdin)
	}

	return os.ReadFile(path)
}

// writeOutput writes content to a file or stdout
func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == FlagDefaultOutput {
		_, err := stdout.Write(data)
		return err
	}

	return os.WriteFile(path, data, FilePermissions)
}

// loadFuncFor maps a format flag value to its load function
func loadFuncFor(format string) (templstore.LoadFunc, bool) {
	switch format {
	case templstore.FormatJSON:
		return templstore.LoadJSON, true
	case templstore.FormatYAML:
		return templstore.LoadYAML, true
	case templstore.FormatTOML:
		return templstore.LoadTOML, true
	default:
		return nil, false
	}
}

// stringList collects a repeatable string flag
type stringList []string

func (l *stringList) String() string {
	return ""
}

func (l *stringList) Set(value string) error {
	*l = append(*l, value)
	return nil
}
