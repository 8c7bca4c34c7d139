package main

import (
	"os"

	"github.com/jmgilman/go/pathlist/internal/commands"
)

func main() {
	os.Exit(commands.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
