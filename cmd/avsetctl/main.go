package main

import "github.com/optum/avsetctl/cmd/avsetctl/cmd"

func main() {
	cmd.Execute()
}
