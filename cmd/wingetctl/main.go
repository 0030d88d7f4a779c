package main

import "wingetctl/internal/cli"

func main() {
	cli.Execute()
}
