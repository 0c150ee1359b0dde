package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Populate the environment before viper reads it.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "readmegen:", err)
		os.Exit(1)
	}
}
