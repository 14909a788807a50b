package main

import "github.com/dm/esdiag/cmd/esdiag/cli"

func main() {
	cli.InitAndExecute()
}
