package main

import "github.com/zenv-lang/zenvhub/internal/cli"

func main() {
	cli.Execute()
}
