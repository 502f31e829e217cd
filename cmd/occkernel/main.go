package main

import "github.com/ppiankov/occkernel/internal/cli"

func main() {
	cli.Execute()
}
