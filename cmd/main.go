package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/ptribble/jumble/internal/cmd"
)

func main() {
	// Settings fall back to JUMBLE_* variables; a local .env may supply them.
	_ = godotenv.Load(".env")

	if err := cmd.RootCmd(cmd.NewAppBuilder()).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
