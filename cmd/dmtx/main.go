// Command dmtx encodes text into ECC200 Data Matrix symbols and reads them
// back from images.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/ericlevine/ecc200/cmd/dmtx/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := cmd.NewRootCommand().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
