package main

import (
	"github.com/vengine/sysprobe/pkg/cli"
)

func main() {
	cli.Execute()
}
