package main

import (
	"dash-savior/cli"
)

func main() {
	cli.Start()
}
