package main

import (
	"github.com/wormsign/wormsign/cmd"
)

func main() {
	cmd.Execute()
}
