package main

import (
	"fmt"
	"io"
	"runtime"

	"github.com/itsatony/go-templstore"
)

func runVersion(args []string, stdout io.Writer) int {
	fmt.Fprintf(stdout, "templstore %s (%s)\n", templstore.Version, runtime.Version())
	return ExitCodeSuccess
}
