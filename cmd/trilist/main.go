package main

import "github.com/heyvito/trilist/internal/cli"

func main() {
	cli.Execute()
}
