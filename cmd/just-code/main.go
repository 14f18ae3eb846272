package main

import (
	"github.com/tacogips/just-code/internal/cli"
)

func main() {
	cli.Execute()
}
