// Command sgdb generates and queries the space-group reflection condition
// database.
package main

import (
	"fmt"
	"os"

	"github.com/xtaldev/sgdb/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
