package main

import (
	"os"

	"github.com/joho/godotenv"

	"microblog/internal/cli"
)

func main() {
	// Values from .env feed the MICROBLOG_* overrides in pkg/config.
	godotenv.Load()

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
