// Command watchctl is the operator CLI for the watcher control plane: it
// mints bearer tokens and drives the protected API without the companion UI.
package main

import (
	"os"

	"github.com/gswatch/watcher-control/cmd/watchctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
