package main

import (
	"github.com/coapi/validator/pkg/cli"
)

func main() {
	cli.Execute()
}
