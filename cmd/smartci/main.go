// main is the entrypoint for the smartci CLI and server.
package main

import (
	"github.com/Nemesis2003/smartci-backend/cmd"
	"github.com/Nemesis2003/smartci-backend/internal/contract"
	"github.com/Nemesis2003/smartci-backend/internal/runstore"
)

func main() {
	err := cmd.Execute()

	// Close before exiting so LogFatal's os.Exit cannot skip cleanup.
	runstore.CloseStores()

	if err != nil {
		contract.LogFatal("command failed", err)
	}
}
