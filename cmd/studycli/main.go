package main

import (
	"fmt"
	"os"

	"github.com/akolanti/StudyAPI/internal/config"
)

func main() {
	root := rootCmd(config.LoadSettings())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
