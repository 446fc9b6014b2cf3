package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gabapcia/walletwatch/internal/handlers/cli"
	"github.com/gabapcia/walletwatch/internal/infra/providers"
	"github.com/gabapcia/walletwatch/internal/pkg/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	err := cli.Run(context.Background(), os.Args,
		cli.WithRegistries(providers.Registries()),
		cli.WithVersion(version),
	)
	_ = logger.Sync()

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
