package main

import "github.com/tailcheck/tailcheck/internal/cli"

func main() {
	cli.Execute()
}
