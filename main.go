package main

import (
	"sweep/cmd"
)

func main() {
	cmd.Execute()
}
