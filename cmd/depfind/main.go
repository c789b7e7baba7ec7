// cmd/depfind/main.go
package main

import (
	"fmt"
	"os"

	"github.com/arc-language/depfind/internal/cli"
)

// Set via ldflags
var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	if err := cli.Execute(version, commit, date); err != nil {
		fmt.Fprintf(os.Stderr, "depfind: %v\n", err)
		os.Exit(1)
	}
}
