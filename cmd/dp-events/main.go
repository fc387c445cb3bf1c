package main

import "github.com/cmeijn/dp-events/internal/cli"

func main() {
	cli.Execute()
}
