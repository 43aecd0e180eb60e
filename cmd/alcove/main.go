package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/alcove-ai/alcove/internal/adapters/driving/cli"
)

// version is set via -ldflags at build time.
var version = "dev"

func main() {
	// A missing .env file is not an error; environment variables win anyway.
	_ = godotenv.Load()

	if err := cli.Execute(version); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
