package main

import (
	"github.com/sodatea/berry/cmd"
)

func main() {
	cmd.Execute()
}
