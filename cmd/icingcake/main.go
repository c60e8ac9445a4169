package main

import "github.com/RavuAlHemio/icingcake/internal/cli"

func main() {
	cli.Execute()
}
