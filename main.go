package main

import (
    "github.com/cristianadrielbraun/brandqr/internal/cli"
)

func main() {
    cli.Execute()
}
