package main

import (
	"github.com/Ethernal-Tech/currency-converter/cli"
)

func main() {
	cli.NewRootCommand().Execute()
}
