package main

import (
	"os"

	"github.com/dumpdiff/dumpdiff/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
