package main

import (
	"github.com/refdata/ref-oracle/cli"
)

func main() {
	cli.NewRootCommand().Execute()
}
