package main

import "github.com/adamluzsi/linearkit/internal/cli"

var version = "dev"

func main() {
	cli.Version = version
	cli.Execute(cli.NewRootCommand())
}
