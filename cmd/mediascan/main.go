// Command mediascan reports the sizes of media files in a directory or manifest.
package main

import (
	"context"
	"os"

	"github.com/idelchi/mediascan/internal/cli"
)

func main() {
	if err := cli.New(version).Execute(context.Background()); err != nil {
		os.Exit(1)
	}
}
