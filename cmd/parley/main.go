package main

import "github.com/cloudzz-dev/parley/internal/cmd"

func main() {
	cmd.Execute()
}
