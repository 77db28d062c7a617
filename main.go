package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/sagekit/sage/cmd"
)

func main() {
	// Optional .env; absence is fine.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
