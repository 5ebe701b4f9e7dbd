package main

import "github.com/aalvaropc/slidey/internal/cli"

func main() {
	cli.Execute()
}
