package main

import "github.com/fathomsuite/quarterdeck/pkg/cli"

func main() {
	cli.Execute()
}
