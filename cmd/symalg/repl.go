package main

import (
	"os"

	"symalg/internal/replsym"
)

func replCommand(args []string) error {
	return replsym.Run(os.Stdin, os.Stdout)
}
