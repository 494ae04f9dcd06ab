package main

import (
	"vdcut/cmd"
)

func main() {
	cmd.Execute()
}
