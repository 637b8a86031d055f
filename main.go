package main

import (
	"fmt"
	"os"

	"github.com/philologus/philologus-desktop/internal/launcher"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	if err := launcher.Run(launcher.Options{Version: version}); err != nil {
		fmt.Fprintf(os.Stderr, "philologus: %v\n", err)
		os.Exit(1)
	}
}
