package main

import "github.com/aalvaropc/solid/internal/cli"

func main() {
	cli.Execute()
}
