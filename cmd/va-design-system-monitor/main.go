package main

import "github.com/amponce/va-design-system-monitor/internal/cli"

func main() {
	cli.Execute()
}
